package match

import (
	"github.com/jobsift/jobsift/internal/domain"
	"github.com/jobsift/jobsift/internal/refdata"
	"github.com/jobsift/jobsift/internal/textutil"
)

// TitleScorer rates role fit through a cascade of mutually exclusive
// strategies: exact variant containment, fuzzy similarity, category
// keywords, raw-title fallback and semantic keyword expansion.
type TitleScorer struct {
	cfg    TitleConfig
	tables *refdata.Tables
	steps  []strategy
}

// NewTitleScorer builds the title cascade.
func NewTitleScorer(cfg TitleConfig, tables *refdata.Tables) *TitleScorer {
	s := &TitleScorer{cfg: cfg, tables: tables}
	s.steps = []strategy{
		{tag: "exact_variant", eval: s.exactVariant},
		{tag: "fuzzy_high", eval: s.fuzzyAbove(cfg.FuzzyHigh, cfg.FuzzyHighScore)},
		{tag: "fuzzy_mid", eval: s.fuzzyAbove(cfg.FuzzyMid, cfg.FuzzyMidScore)},
		{tag: "category_keywords", eval: s.categoryKeywords},
		{tag: "raw_title", eval: s.rawTitle},
		{tag: "semantic_keywords", eval: s.semanticKeywords},
	}
	return s
}

func (s *TitleScorer) Name() string { return domain.ComponentTitle }

// Score returns the first qualifying tier's points, or zero.
func (s *TitleScorer) Score(user domain.UserProfile, job domain.JobPosting) float64 {
	score, _ := runCascade(s.steps, user, job)
	return score
}

// exactVariant matches a whole user role, or at least two free-text
// keywords, inside any title variant.
func (s *TitleScorer) exactVariant(user domain.UserProfile, job domain.JobPosting) (float64, bool) {
	for _, variant := range job.TitleVariants {
		for _, role := range user.JobRoles {
			if textutil.ContainsFold(variant, role) {
				return s.cfg.ExactScore, true
			}
		}

		hits := 0
		for _, token := range textutil.Tokens(user.UserJobFreeText) {
			if textutil.ContainsFold(variant, token) {
				hits++
			}
		}
		if hits >= 2 {
			return s.cfg.ExactScore, true
		}
	}
	return 0, false
}

// fuzzyAbove builds a strategy matching when any user role or free-text
// token is similar enough to any title variant.
func (s *TitleScorer) fuzzyAbove(threshold, score float64) func(domain.UserProfile, domain.JobPosting) (float64, bool) {
	return func(user domain.UserProfile, job domain.JobPosting) (float64, bool) {
		candidates := append([]string{}, user.JobRoles...)
		candidates = append(candidates, textutil.Tokens(user.UserJobFreeText)...)

		for _, variant := range job.TitleVariants {
			for _, candidate := range candidates {
				if textutil.Similarity(candidate, variant) > threshold {
					return score, true
				}
			}
		}
		return 0, false
	}
}

// categoryKeywords maps the user's coarse categories to keyword sets and
// checks them against the variants and the raw title.
func (s *TitleScorer) categoryKeywords(user domain.UserProfile, job domain.JobPosting) (float64, bool) {
	targets := append([]string{job.Title}, job.TitleVariants...)
	for _, category := range user.JobCategories {
		keywords, ok := s.tables.CategoryKeywords[textutil.Normalize(category)]
		if !ok {
			continue
		}
		for _, keyword := range keywords {
			for _, target := range targets {
				if textutil.ContainsFold(target, keyword) {
					return s.cfg.CategoryScore, true
				}
			}
		}
	}
	return 0, false
}

// rawTitle is the fallback when variants are absent or unhelpful: user
// roles and free-text tokens against the raw title only.
func (s *TitleScorer) rawTitle(user domain.UserProfile, job domain.JobPosting) (float64, bool) {
	if job.Title == "" {
		return 0, false
	}
	for _, role := range user.JobRoles {
		if textutil.ContainsFold(job.Title, role) {
			return s.cfg.RawTitleScore, true
		}
		for _, token := range textutil.Tokens(role) {
			if textutil.ContainsFold(job.Title, token) {
				return s.cfg.RawTitleScore, true
			}
		}
	}
	for _, token := range textutil.Tokens(user.UserJobFreeText) {
		if textutil.ContainsFold(job.Title, token) {
			return s.cfg.RawTitleScore, true
		}
	}
	return 0, false
}

// semanticKeywords expands user roles and free text through the domain
// keyword table and checks the expansion against variants and title.
func (s *TitleScorer) semanticKeywords(user domain.UserProfile, job domain.JobPosting) (float64, bool) {
	targets := append([]string{job.Title}, job.TitleVariants...)

	sources := append([]string{}, user.JobRoles...)
	sources = append(sources, user.UserJobFreeText)

	for _, source := range sources {
		for _, token := range textutil.Tokens(source) {
			expansions, ok := s.tables.SemanticKeywords[token]
			if !ok {
				continue
			}
			for _, expansion := range expansions {
				for _, target := range targets {
					if textutil.ContainsFold(target, expansion) {
						return s.cfg.SemanticScore, true
					}
				}
			}
		}
	}
	return 0, false
}
