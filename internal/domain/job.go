package domain

import "time"

// Work arrangement values used by normalized job records.
const (
	ArrangementRemote = "Remote"
	ArrangementHybrid = "Hybrid"
	ArrangementOnSite = "On-site"
)

// JobPosting is a canonical job record: a posting normalized into a fixed
// schema by ingestion and enrichment collaborators before it reaches the
// engine. Optional fields stay nil/empty when the source did not provide
// them; the scorers degrade to partial or zero credit instead of failing.
type JobPosting struct {
	ID            string   `json:"job_id"`
	Title         string   `json:"title"`
	TitleVariants []string `json:"title_variants,omitempty"`
	Description   string   `json:"description,omitempty"`

	Location      string `json:"location,omitempty"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`
	Country       string `json:"country,omitempty"`
	RemoteAllowed *bool  `json:"remote_allowed,omitempty"`
	// IsRemote is the boolean flag older records carry instead of
	// RemoteAllowed. Kept so legacy pools keep scoring.
	IsRemote *bool `json:"is_remote,omitempty"`
	// WorkArrangement is one of the Arrangement* constants when the
	// enrichment stage resolved it, empty otherwise.
	WorkArrangement string `json:"work_arrangement,omitempty"`

	JobFunction string   `json:"job_function,omitempty"`
	JobLevel    []string `json:"job_level,omitempty"`
	Industry    []string `json:"industry,omitempty"`

	SalaryMin      *float64 `json:"salary_min,omitempty"`
	SalaryMax      *float64 `json:"salary_max,omitempty"`
	SalaryCurrency string   `json:"salary_currency,omitempty"`

	RequiredSkills  []string `json:"required_skills,omitempty"`
	PreferredSkills []string `json:"preferred_skills,omitempty"`

	YearsExperienceMin *int `json:"years_experience_min,omitempty"`
	YearsExperienceMax *int `json:"years_experience_max,omitempty"`

	PostedDate *time.Time `json:"posted_date,omitempty"`
}

// HasLocation reports whether any geographic field is populated.
func (j JobPosting) HasLocation() bool {
	return j.Location != "" || j.City != "" || j.State != "" || j.Country != ""
}

// HasSalaryData reports whether the posting carries any pay information.
func (j JobPosting) HasSalaryData() bool {
	return j.SalaryMin != nil || j.SalaryMax != nil || j.SalaryCurrency != ""
}

// LocationText joins every geographic field into one searchable string.
func (j JobPosting) LocationText() string {
	text := j.Location
	for _, part := range []string{j.City, j.State, j.Country} {
		if part == "" {
			continue
		}
		if text != "" {
			text += ", "
		}
		text += part
	}
	return text
}
