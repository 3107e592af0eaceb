package domain

// Component score keys used in MatchResult.ComponentScores.
const (
	ComponentTitle           = "title"
	ComponentWorkArrangement = "work_arrangement"
	ComponentSalary          = "salary"
	ComponentExperience      = "experience"
	ComponentJobFunction     = "job_function"
	ComponentIndustry        = "industry"
	ComponentCluster         = "cluster"
)

// MatchResult is the outcome of scoring one job for one user. TotalScore is
// always within [0,100]; a job rejected by the location gate never becomes a
// MatchResult at all. Reasons hold at most three display strings and never
// influence scoring.
type MatchResult struct {
	JobID           string             `json:"job_id"`
	TotalScore      float64            `json:"total_score"`
	ComponentScores map[string]float64 `json:"component_scores"`
	Reasons         []string           `json:"reasons"`
}
