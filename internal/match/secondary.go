package match

import (
	"github.com/jobsift/jobsift/internal/domain"
	"github.com/jobsift/jobsift/internal/refdata"
	"github.com/jobsift/jobsift/internal/textutil"
)

// The secondary scorers compute on their internal scales and are rescaled
// into their small allotments by the configured factors.

// FunctionScorer rates how well the posting's job function lines up with
// the user's categories and roles.
type FunctionScorer struct {
	cfg    SecondaryConfig
	tables *refdata.Tables
}

// NewFunctionScorer builds the scorer.
func NewFunctionScorer(cfg SecondaryConfig, tables *refdata.Tables) *FunctionScorer {
	return &FunctionScorer{cfg: cfg, tables: tables}
}

func (s *FunctionScorer) Name() string { return domain.ComponentJobFunction }

func (s *FunctionScorer) Score(user domain.UserProfile, job domain.JobPosting) float64 {
	if job.JobFunction == "" {
		return 0
	}

	for _, category := range user.JobCategories {
		if textutil.ContainsFold(job.JobFunction, category) || textutil.ContainsFold(category, job.JobFunction) {
			return s.cfg.FunctionDirectScore * s.cfg.FunctionScale
		}
	}

	keywords := s.tables.FunctionKeywords[textutil.Normalize(job.JobFunction)]
	for _, keyword := range keywords {
		for _, role := range user.JobRoles {
			if textutil.ContainsFold(role, keyword) {
				return s.cfg.FunctionKeywordScore * s.cfg.FunctionScale
			}
		}
	}
	return 0
}

// IndustryScorer rates industry fit, directly against the user's stated
// preferences or inferred from their roles.
type IndustryScorer struct {
	cfg    SecondaryConfig
	tables *refdata.Tables
}

// NewIndustryScorer builds the scorer.
func NewIndustryScorer(cfg SecondaryConfig, tables *refdata.Tables) *IndustryScorer {
	return &IndustryScorer{cfg: cfg, tables: tables}
}

func (s *IndustryScorer) Name() string { return domain.ComponentIndustry }

func (s *IndustryScorer) Score(user domain.UserProfile, job domain.JobPosting) float64 {
	if len(job.Industry) == 0 {
		return 0
	}

	for _, preference := range user.IndustryPreferences {
		for _, industry := range job.Industry {
			if textutil.ContainsFold(industry, preference) || textutil.ContainsFold(preference, industry) {
				return s.cfg.IndustryDirectScore * s.cfg.IndustryScale
			}
		}
	}

	for keyword, implied := range s.tables.IndustryKeywords {
		matched := false
		for _, role := range user.JobRoles {
			if textutil.ContainsFold(role, keyword) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		for _, inferred := range implied {
			for _, industry := range job.Industry {
				if textutil.ContainsFold(industry, inferred) {
					return s.cfg.IndustryInferredScore * s.cfg.IndustryScale
				}
			}
		}
	}
	return 0
}

// ClusterScorer maps the user's roles to role-family clusters and counts
// cluster-keyword hits in the posting, weighing the title above the
// description.
type ClusterScorer struct {
	cfg    SecondaryConfig
	tables *refdata.Tables
}

// NewClusterScorer builds the scorer.
func NewClusterScorer(cfg SecondaryConfig, tables *refdata.Tables) *ClusterScorer {
	return &ClusterScorer{cfg: cfg, tables: tables}
}

func (s *ClusterScorer) Name() string { return domain.ComponentCluster }

func (s *ClusterScorer) Score(user domain.UserProfile, job domain.JobPosting) float64 {
	clusters := s.userClusters(user)
	if len(clusters) == 0 {
		return 0
	}

	var titleHits, bodyHits int
	for _, cluster := range clusters {
		for _, keyword := range s.tables.Clusters[cluster] {
			inTitle := textutil.ContainsFold(job.Title, keyword)
			for _, variant := range job.TitleVariants {
				if inTitle {
					break
				}
				inTitle = textutil.ContainsFold(variant, keyword)
			}
			switch {
			case inTitle:
				titleHits++
			case textutil.ContainsFold(job.Description, keyword):
				bodyHits++
			}
		}
	}

	internal := s.tierScore(titleHits, s.cfg.ClusterTitleScore)
	if internal == 0 {
		internal = s.tierScore(bodyHits, s.cfg.ClusterBodyScore)
	}
	return internal * s.cfg.ClusterScale
}

// tierScore grants the full tier for two or more hits and most of it for a
// single one.
func (s *ClusterScorer) tierScore(hits int, full float64) float64 {
	switch {
	case hits >= 2:
		return full
	case hits == 1:
		return full * 0.7
	default:
		return 0
	}
}

// userClusters returns the clusters whose keyword sets intersect the
// user's roles, categories or free text.
func (s *ClusterScorer) userClusters(user domain.UserProfile) []string {
	sources := append([]string{}, user.JobRoles...)
	sources = append(sources, user.JobCategories...)
	sources = append(sources, user.UserJobFreeText)

	var clusters []string
	for name, keywords := range s.tables.Clusters {
		for _, keyword := range keywords {
			found := false
			for _, source := range sources {
				if textutil.ContainsFold(source, keyword) {
					found = true
					break
				}
			}
			if found {
				clusters = append(clusters, name)
				break
			}
		}
	}
	return clusters
}
