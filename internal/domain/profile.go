package domain

// ExperienceLevel is a rung on the seniority ladder. Levels are ordered;
// comparisons between them go through refdata.LevelRank.
type ExperienceLevel string

const (
	LevelEntry     ExperienceLevel = "entry"
	LevelJunior    ExperienceLevel = "junior"
	LevelMid       ExperienceLevel = "mid"
	LevelSenior    ExperienceLevel = "senior"
	LevelLead      ExperienceLevel = "lead"
	LevelPrincipal ExperienceLevel = "principal"
	LevelExecutive ExperienceLevel = "executive"
)

// UserProfile is one job seeker's normalized preferences. It is assembled by
// an upstream collaborator (preference storage, conversational intake) and is
// never mutated by the matching engine.
type UserProfile struct {
	JobRoles            []string `json:"job_roles,omitempty"`
	JobCategories       []string `json:"job_categories,omitempty"`
	UserJobFreeText     string   `json:"user_job_free_text,omitempty"`
	PreferredLocations  []string `json:"preferred_locations,omitempty"`
	WillingToRelocate   bool     `json:"willing_to_relocate,omitempty"`
	WorkArrangements    []string `json:"work_arrangements,omitempty"`
	TechnicalSkills     []string `json:"technical_skills,omitempty"`
	SoftSkills          []string `json:"soft_skills,omitempty"`
	SalaryMin           *float64 `json:"salary_min,omitempty"`
	SalaryMax           *float64 `json:"salary_max,omitempty"`
	SalaryCurrency      string   `json:"salary_currency,omitempty"`
	SalaryNegotiable    bool     `json:"salary_negotiable,omitempty"`
	YearsOfExperience   *int     `json:"years_of_experience,omitempty"`
	ExperienceLevel     string   `json:"experience_level,omitempty"`
	IndustryPreferences []string `json:"industry_preferences,omitempty"`
}

// HasSalaryPreference reports whether the user stated anything about pay.
func (u UserProfile) HasSalaryPreference() bool {
	return u.SalaryMin != nil || u.SalaryMax != nil || u.SalaryCurrency != ""
}

// HasSignal reports whether the profile carries any usable preference at
// all. A profile without signal is valid input and simply yields no matches.
func (u UserProfile) HasSignal() bool {
	return len(u.JobRoles) > 0 ||
		len(u.JobCategories) > 0 ||
		u.UserJobFreeText != "" ||
		len(u.TechnicalSkills) > 0 ||
		u.HasSalaryPreference() ||
		u.YearsOfExperience != nil ||
		u.ExperienceLevel != ""
}
