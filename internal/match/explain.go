package match

import (
	"fmt"

	"github.com/jobsift/jobsift/internal/domain"
	"github.com/jobsift/jobsift/internal/textutil"
)

// Explainer derives display reasons for a match. It looks at the raw
// profile and posting, never at the numeric tiers, so explanations stay
// stable when weights are retuned and can never influence scoring.
type Explainer struct {
	maxReasons int
}

// NewExplainer builds an explainer emitting at most maxReasons strings.
func NewExplainer(maxReasons int) *Explainer {
	if maxReasons <= 0 {
		maxReasons = 3
	}
	return &Explainer{maxReasons: maxReasons}
}

// Explain returns up to maxReasons human-readable reasons, most specific
// first.
func (e *Explainer) Explain(user domain.UserProfile, job domain.JobPosting) []string {
	candidates := []string{
		matchedRoleReason(user, job),
		matchedSkillReason(user, job),
		remoteReason(user, job),
		salaryReason(user, job),
		industryReason(user, job),
		locationReason(user, job),
	}

	reasons := make([]string, 0, e.maxReasons)
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		reasons = append(reasons, candidate)
		if len(reasons) == e.maxReasons {
			break
		}
	}
	return reasons
}

func matchedRoleReason(user domain.UserProfile, job domain.JobPosting) string {
	titles := append([]string{job.Title}, job.TitleVariants...)
	for _, role := range user.JobRoles {
		for _, title := range titles {
			if textutil.ContainsFold(title, role) {
				return fmt.Sprintf("Job title matches %q", role)
			}
		}
	}
	return ""
}

func matchedSkillReason(user domain.UserProfile, job domain.JobPosting) string {
	wanted := append(append([]string{}, job.RequiredSkills...), job.PreferredSkills...)
	for _, skill := range user.TechnicalSkills {
		for _, required := range wanted {
			if textutil.ContainsFold(required, skill) || textutil.ContainsFold(skill, required) {
				return fmt.Sprintf("Requires %q skill", skill)
			}
		}
	}
	return ""
}

func remoteReason(user domain.UserProfile, job domain.JobPosting) string {
	if wantsArrangement(user, "remote") && jobSignalsRemote(job) {
		return "Remote work available"
	}
	return ""
}

func salaryReason(user domain.UserProfile, job domain.JobPosting) string {
	if user.SalaryMin != nil && job.SalaryMax != nil && *job.SalaryMax >= *user.SalaryMin {
		return "Pay range meets your minimum"
	}
	return ""
}

func industryReason(user domain.UserProfile, job domain.JobPosting) string {
	for _, preference := range user.IndustryPreferences {
		for _, industry := range job.Industry {
			if textutil.ContainsFold(industry, preference) {
				return fmt.Sprintf("Industry: %s", textutil.Truncate(industry, 40))
			}
		}
	}
	return ""
}

func locationReason(user domain.UserProfile, job domain.JobPosting) string {
	for _, preferred := range user.PreferredLocations {
		if textutil.ContainsFold(job.LocationText(), preferred) {
			return fmt.Sprintf("Located in %s", textutil.Truncate(preferred, 40))
		}
	}
	return ""
}
