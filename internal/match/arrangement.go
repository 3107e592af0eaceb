package match

import (
	"github.com/jobsift/jobsift/internal/domain"
	"github.com/jobsift/jobsift/internal/textutil"
)

// strongRemotePhrases are the explicit commitments; the remaining entries
// of remotePhrases are weaker hints and earn fewer points.
var strongRemotePhrases = map[string]struct{}{
	"fully remote": {}, "100% remote": {}, "remote-first": {}, "work from home": {},
}

// ArrangementScorer rates remote/hybrid/on-site compatibility. Each user
// preference produces a candidate score and the best one wins.
type ArrangementScorer struct {
	cfg ArrangementConfig
}

// NewArrangementScorer builds the scorer.
func NewArrangementScorer(cfg ArrangementConfig) *ArrangementScorer {
	return &ArrangementScorer{cfg: cfg}
}

func (s *ArrangementScorer) Name() string { return domain.ComponentWorkArrangement }

// Score returns the best candidate score across the user's preferences.
func (s *ArrangementScorer) Score(user domain.UserProfile, job domain.JobPosting) float64 {
	best := 0.0
	for _, preference := range user.WorkArrangements {
		var candidate float64
		switch textutil.Normalize(preference) {
		case "flexible", "hybrid", "any":
			candidate = s.flexibleScore(job)
		case "remote":
			candidate = s.remoteScore(job)
		case "on-site", "onsite", "office", "in-office":
			candidate = s.onSiteScore(job)
		}
		if candidate > best {
			best = candidate
		}
	}
	return best
}

// flexibleScore starts from how clearly the job states its arrangement and
// upgrades to a perfect match when the job resolves to any explicit value:
// a flexible user is fully served by Remote, Hybrid and On-site alike.
func (s *ArrangementScorer) flexibleScore(job domain.JobPosting) float64 {
	base := s.cfg.DefaultBase
	switch {
	case job.WorkArrangement != "":
		base = s.cfg.ExplicitBase
	case job.RemoteAllowed != nil || job.IsRemote != nil || remotePhraseIn(job) != "":
		base = s.cfg.RemoteSignalBase
	}

	switch job.WorkArrangement {
	case domain.ArrangementRemote, domain.ArrangementHybrid, domain.ArrangementOnSite:
		return s.cfg.PerfectScore
	}
	return base
}

// remoteScore tiers by signal confidence, from the resolved arrangement
// field down to phrase hints in the text.
func (s *ArrangementScorer) remoteScore(job domain.JobPosting) float64 {
	if job.WorkArrangement == domain.ArrangementRemote || (job.RemoteAllowed != nil && *job.RemoteAllowed) {
		return s.cfg.PerfectScore
	}
	if job.IsRemote != nil && *job.IsRemote {
		return s.cfg.LegacyRemoteScore
	}
	if job.WorkArrangement != "" {
		// Resolved to Hybrid or On-site; not remote.
		return 0
	}
	if phrase := remotePhraseIn(job); phrase != "" {
		if _, strong := strongRemotePhrases[phrase]; strong {
			return s.cfg.StrongPhraseScore
		}
		return s.cfg.WeakPhraseScore
	}
	return 0
}

// onSiteScore prefers the explicit field, then phrases, then the default
// assumption that a posting without any remote or hybrid signal is on-site.
func (s *ArrangementScorer) onSiteScore(job domain.JobPosting) float64 {
	if job.WorkArrangement == domain.ArrangementOnSite {
		return s.cfg.PerfectScore
	}
	if job.WorkArrangement != "" {
		return 0
	}
	if onSitePhraseIn(job) != "" {
		return s.cfg.OnSitePhraseScore
	}

	remoteSignal := (job.RemoteAllowed != nil && *job.RemoteAllowed) ||
		(job.IsRemote != nil && *job.IsRemote) ||
		remotePhraseIn(job) != ""
	if !remoteSignal {
		return s.cfg.OnSiteDefaultScore
	}
	return 0
}
