package match

import (
	"math"

	"github.com/jobsift/jobsift/internal/domain"
	"github.com/jobsift/jobsift/internal/refdata"
)

// SalaryScorer rates currency compatibility and range fit. Postings without
// pay data get flat partial credit instead of a penalty, and amounts in a
// different currency are converted through the rate table before comparison.
type SalaryScorer struct {
	cfg    SalaryConfig
	tables *refdata.Tables
}

// NewSalaryScorer builds the scorer.
func NewSalaryScorer(cfg SalaryConfig, tables *refdata.Tables) *SalaryScorer {
	return &SalaryScorer{cfg: cfg, tables: tables}
}

func (s *SalaryScorer) Name() string { return domain.ComponentSalary }

// Score returns 0 when the user stated no salary preference, the flat
// no-data score when the posting omits pay, and the currency+range sum
// otherwise, capped at the component allotment.
func (s *SalaryScorer) Score(user domain.UserProfile, job domain.JobPosting) float64 {
	if !user.HasSalaryPreference() {
		return 0
	}
	if !job.HasSalaryData() {
		return s.cfg.NoDataScore
	}

	userCur := s.tables.CanonicalCurrency(user.SalaryCurrency)
	jobCur := s.tables.CanonicalCurrency(job.SalaryCurrency)

	var currencyScore float64
	switch {
	case userCur != "" && userCur == jobCur:
		currencyScore = s.cfg.CurrencyMatchScore
	case userCur != "" && jobCur != "" && s.tables.RelatedCurrencies(userCur, jobCur):
		currencyScore = s.cfg.CurrencyRelatedScore
	}

	jobMin, jobMax := job.SalaryMin, job.SalaryMax
	if userCur != "" && jobCur != "" && userCur != jobCur {
		if rate, ok := s.tables.ConversionRate(jobCur, userCur); ok {
			jobMin = convert(jobMin, rate)
			jobMax = convert(jobMax, rate)
		}
	}

	total := currencyScore + s.rangeScore(user, jobMin, jobMax)
	return math.Min(total, s.cfg.Cap)
}

func (s *SalaryScorer) rangeScore(user domain.UserProfile, jobMin, jobMax *float64) float64 {
	userMin, userMax := user.SalaryMin, user.SalaryMax
	if userMin == nil && userMax == nil {
		return 0
	}
	if jobMin == nil && jobMax == nil {
		return 0
	}

	var score float64

	// Full overlap ratio only when both ranges are fully specified.
	if userMin != nil && userMax != nil && jobMin != nil && jobMax != nil {
		overlap := math.Min(*userMax, *jobMax) - math.Max(*userMin, *jobMin)
		smaller := math.Min(*userMax-*userMin, *jobMax-*jobMin)
		if overlap > 0 && smaller > 0 {
			score += math.Min(overlap/smaller, 1) * s.cfg.OverlapScore
		}
	}

	// One-sided satisfaction, each bound worth half the sided allotment.
	// Negotiable users tolerate a widened window.
	tolerance := 0.0
	if user.SalaryNegotiable {
		tolerance = s.cfg.NegotiableTolerance
	}
	half := s.cfg.SidedScore / 2

	// Job's ceiling reaches the user's floor.
	if userMin == nil {
		score += half
	} else {
		ceiling := jobMax
		if ceiling == nil {
			ceiling = jobMin
		}
		if ceiling != nil && *ceiling >= *userMin*(1-tolerance) {
			score += half
		}
	}

	// Job's floor stays under the user's ceiling.
	if userMax == nil {
		score += half
	} else {
		floor := jobMin
		if floor == nil {
			floor = jobMax
		}
		if floor != nil && *floor <= *userMax*(1+tolerance) {
			score += half
		}
	}

	return score
}

func convert(v *float64, rate float64) *float64 {
	if v == nil {
		return nil
	}
	converted := *v * rate
	return &converted
}
