// Package match implements the job matching engine: a location gate, a set
// of component scorers with fixed point allotments, an aggregator and the
// explanation builder, orchestrated by Service.Search. Scoring is a pure
// function of (UserProfile, JobPosting); the only shared state is the
// immutable reference-table set.
package match

import "github.com/jobsift/jobsift/internal/domain"

// Scorer is a single scoring component. Score never mutates its inputs,
// never blocks and never errors: missing data degrades to partial or zero
// credit.
type Scorer interface {
	Name() string
	Score(user domain.UserProfile, job domain.JobPosting) float64
}

// strategy is one tagged step of a scorer's cascade. Strategies are
// evaluated in priority order and the first qualifying one wins; they are
// mutually exclusive, never additive.
type strategy struct {
	tag  string
	eval func(user domain.UserProfile, job domain.JobPosting) (float64, bool)
}

// runCascade evaluates strategies in order, returning the first qualifying
// score and its tag. Zero with an empty tag means no strategy qualified.
func runCascade(steps []strategy, user domain.UserProfile, job domain.JobPosting) (float64, string) {
	for _, s := range steps {
		if score, ok := s.eval(user, job); ok {
			return score, s.tag
		}
	}
	return 0, ""
}
