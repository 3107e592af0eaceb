package match

import (
	"math"

	"github.com/jobsift/jobsift/internal/domain"
	"github.com/jobsift/jobsift/internal/refdata"
)

// ExperienceScorer rates seniority fit through the level ladder and the
// posting's years range, taking the better of the two when both apply.
type ExperienceScorer struct {
	cfg ExperienceConfig
}

// NewExperienceScorer builds the scorer.
func NewExperienceScorer(cfg ExperienceConfig) *ExperienceScorer {
	return &ExperienceScorer{cfg: cfg}
}

func (s *ExperienceScorer) Name() string { return domain.ComponentExperience }

// Score returns max(level score, years score) when both are computable,
// whichever one is otherwise, and zero when neither side provides data.
func (s *ExperienceScorer) Score(user domain.UserProfile, job domain.JobPosting) float64 {
	level, levelOK := s.levelScore(user, job)
	years, yearsOK := s.yearsScore(user, job)

	switch {
	case levelOK && yearsOK:
		if level > years {
			return level
		}
		return years
	case levelOK:
		return level
	case yearsOK:
		return years
	default:
		return 0
	}
}

func (s *ExperienceScorer) levelScore(user domain.UserProfile, job domain.JobPosting) (float64, bool) {
	userRank, ok := refdata.LevelRank(user.ExperienceLevel)
	if !ok {
		return 0, false
	}

	best := -1.0
	for _, level := range job.JobLevel {
		jobRank, ok := refdata.LevelRank(level)
		if !ok {
			continue
		}
		if v := s.rankScore(userRank, jobRank); v > best {
			best = v
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// rankScore applies the ladder rules in order; the first that fits decides.
func (s *ExperienceScorer) rankScore(userRank, jobRank int) float64 {
	diff := userRank - jobRank
	abs := diff
	if abs < 0 {
		abs = -abs
	}

	switch {
	case abs == 0:
		return s.cfg.SameLevelScore
	case abs == 1:
		return s.cfg.AdjacentLevelScore
	case abs == 2:
		return s.cfg.TwoApartScore
	case diff > 0 && diff <= 3:
		return s.cfg.OverqualifiedScore
	case diff < 0 && -diff <= 2:
		return s.cfg.UnderqualifiedScore
	default:
		return 0
	}
}

func (s *ExperienceScorer) yearsScore(user domain.UserProfile, job domain.JobPosting) (float64, bool) {
	if user.YearsOfExperience == nil {
		return 0, false
	}
	if job.YearsExperienceMin == nil && job.YearsExperienceMax == nil {
		return 0, false
	}

	years := float64(*user.YearsOfExperience)

	min := 0.0
	if job.YearsExperienceMin != nil {
		min = float64(*job.YearsExperienceMin)
	}
	max := math.Inf(1)
	if job.YearsExperienceMax != nil {
		max = float64(*job.YearsExperienceMax)
	}

	switch {
	case years >= min && years <= max:
		return s.cfg.WithinYearsScore, true
	case years > max && years-max <= 2:
		return s.cfg.OverSlightScore, true
	case years > max && years-max <= 5:
		return s.cfg.OverModerateScore, true
	case years > max:
		return s.cfg.OverLargeScore, true
	case years < min && min > 0 && years >= min*s.cfg.NearMinRatio:
		return s.cfg.NearMinScore, true
	default:
		return 0, true
	}
}
