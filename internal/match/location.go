package match

import (
	"strings"

	"github.com/jobsift/jobsift/internal/domain"
	"github.com/jobsift/jobsift/internal/refdata"
	"github.com/jobsift/jobsift/internal/textutil"
)

// remotePhrases are scanned in job text only when the record carries no
// explicit arrangement signal. Ordered from most to least specific.
var remotePhrases = []string{
	"fully remote", "100% remote", "remote-first", "work from home",
	"work from anywhere", "remote", "wfh", "anywhere",
}

var onSitePhrases = []string{
	"on-site", "onsite", "on site", "in-office", "in office", "office-based",
}

// LocationGate is the hard geography filter. A job it rejects never enters
// the additive scoring path.
type LocationGate struct {
	tables *refdata.Tables
}

// NewLocationGate builds the gate over the supplied reference tables.
func NewLocationGate(tables *refdata.Tables) *LocationGate {
	return &LocationGate{tables: tables}
}

// IsCompatible applies the gate rules in order; the first rule that matches
// decides. No matching rule means incompatible.
func (g *LocationGate) IsCompatible(user domain.UserProfile, job domain.JobPosting) bool {
	if len(user.PreferredLocations) == 0 {
		return true
	}

	if wantsArrangement(user, "remote") && jobSignalsRemote(job) {
		return true
	}

	if user.WillingToRelocate && job.HasLocation() {
		return true
	}

	jobText := textutil.Normalize(job.LocationText())
	for _, preferred := range user.PreferredLocations {
		if g.locationMatches(preferred, job, jobText) {
			return true
		}
	}
	return false
}

func (g *LocationGate) locationMatches(preferred string, job domain.JobPosting, jobText string) bool {
	preferred = textutil.Normalize(preferred)
	if preferred == "" || jobText == "" {
		return false
	}

	// Direct containment either way.
	if strings.Contains(jobText, preferred) || strings.Contains(preferred, jobText) {
		return true
	}

	// Multi-word terms extracted from the preference against the job text.
	for _, term := range textutil.Terms(preferred) {
		if strings.Contains(jobText, term) {
			return true
		}
	}

	jobTerms := append(textutil.Terms(jobText), jobText)
	for _, field := range []string{job.City, job.State, job.Country} {
		if field != "" {
			jobTerms = append(jobTerms, textutil.Normalize(field))
		}
	}

	userTerms := append(textutil.Terms(preferred), preferred)
	for _, ut := range userTerms {
		for _, jt := range jobTerms {
			if g.tables.SameLocationGroup(ut, jt) {
				return true
			}
			if g.tables.SameRegion(ut, jt) {
				return true
			}
		}
	}
	return false
}

// wantsArrangement reports whether the user listed the given arrangement.
func wantsArrangement(user domain.UserProfile, arrangement string) bool {
	for _, a := range user.WorkArrangements {
		if textutil.Normalize(a) == arrangement {
			return true
		}
	}
	return false
}

// jobSignalsRemote prefers the explicit arrangement fields and falls back
// to a phrase scan of title, description and location only when the record
// carries no explicit signal at all.
func jobSignalsRemote(job domain.JobPosting) bool {
	if job.WorkArrangement != "" {
		return job.WorkArrangement == domain.ArrangementRemote
	}
	if job.RemoteAllowed != nil {
		return *job.RemoteAllowed
	}
	return remotePhraseIn(job) != ""
}

// remotePhraseIn returns the most specific remote phrase found in the job
// text, or empty when none occurs.
func remotePhraseIn(job domain.JobPosting) string {
	text := textutil.Normalize(job.Title + " " + job.Description + " " + job.LocationText())
	for _, phrase := range remotePhrases {
		if strings.Contains(text, phrase) {
			return phrase
		}
	}
	return ""
}

func onSitePhraseIn(job domain.JobPosting) string {
	text := textutil.Normalize(job.Title + " " + job.Description + " " + job.LocationText())
	for _, phrase := range onSitePhrases {
		if strings.Contains(text, phrase) {
			return phrase
		}
	}
	return ""
}
