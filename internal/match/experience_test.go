package match

import (
	"testing"

	"github.com/jobsift/jobsift/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestExperienceScorer(t *testing.T) {
	t.Parallel()

	scorer := NewExperienceScorer(Defaults().Experience)

	tests := []struct {
		name   string
		user   domain.UserProfile
		job    domain.JobPosting
		expect float64
	}{
		{
			name:   "same level",
			user:   domain.UserProfile{ExperienceLevel: "mid"},
			job:    domain.JobPosting{JobLevel: []string{"Mid-level"}},
			expect: 10,
		},
		{
			name:   "adjacent level",
			user:   domain.UserProfile{ExperienceLevel: "senior"},
			job:    domain.JobPosting{JobLevel: []string{"mid"}},
			expect: 8,
		},
		{
			name:   "two ranks apart",
			user:   domain.UserProfile{ExperienceLevel: "entry"},
			job:    domain.JobPosting{JobLevel: []string{"mid"}},
			expect: 5,
		},
		{
			name:   "overqualified by three ranks",
			user:   domain.UserProfile{ExperienceLevel: "senior"},
			job:    domain.JobPosting{JobLevel: []string{"entry"}},
			expect: 3,
		},
		{
			name:   "gap too wide",
			user:   domain.UserProfile{ExperienceLevel: "executive"},
			job:    domain.JobPosting{JobLevel: []string{"entry"}},
			expect: 0,
		},
		{
			name:   "best level wins across several",
			user:   domain.UserProfile{ExperienceLevel: "senior"},
			job:    domain.JobPosting{JobLevel: []string{"entry", "senior"}},
			expect: 10,
		},
		{
			name:   "years within the posted range",
			user:   domain.UserProfile{YearsOfExperience: intPtr(4)},
			job:    domain.JobPosting{YearsExperienceMin: intPtr(3), YearsExperienceMax: intPtr(6)},
			expect: 10,
		},
		{
			name:   "slightly over the posted max",
			user:   domain.UserProfile{YearsOfExperience: intPtr(8)},
			job:    domain.JobPosting{YearsExperienceMin: intPtr(3), YearsExperienceMax: intPtr(6)},
			expect: 8,
		},
		{
			name:   "moderately over the posted max",
			user:   domain.UserProfile{YearsOfExperience: intPtr(10)},
			job:    domain.JobPosting{YearsExperienceMin: intPtr(3), YearsExperienceMax: intPtr(6)},
			expect: 6,
		},
		{
			name:   "far over the posted max",
			user:   domain.UserProfile{YearsOfExperience: intPtr(20)},
			job:    domain.JobPosting{YearsExperienceMin: intPtr(3), YearsExperienceMax: intPtr(6)},
			expect: 4,
		},
		{
			name:   "just under the posted min",
			user:   domain.UserProfile{YearsOfExperience: intPtr(4)},
			job:    domain.JobPosting{YearsExperienceMin: intPtr(5)},
			expect: 5,
		},
		{
			name:   "well under the posted min",
			user:   domain.UserProfile{YearsOfExperience: intPtr(1)},
			job:    domain.JobPosting{YearsExperienceMin: intPtr(5)},
			expect: 0,
		},
		{
			name: "better of level and years",
			user: domain.UserProfile{ExperienceLevel: "entry", YearsOfExperience: intPtr(4)},
			job: domain.JobPosting{
				JobLevel:           []string{"senior"},
				YearsExperienceMin: intPtr(3),
				YearsExperienceMax: intPtr(6),
			},
			expect: 10,
		},
		{
			name:   "no data on either side",
			user:   domain.UserProfile{},
			job:    domain.JobPosting{Title: "Backend Developer"},
			expect: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scorer.Score(tt.user, tt.job); got != tt.expect {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}
