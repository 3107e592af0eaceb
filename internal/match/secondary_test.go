package match

import (
	"testing"

	"github.com/jobsift/jobsift/internal/domain"
	"github.com/jobsift/jobsift/internal/refdata"
)

func TestFunctionScorer(t *testing.T) {
	t.Parallel()

	cfg := Defaults().Secondary
	scorer := NewFunctionScorer(cfg, refdata.Default())

	tests := []struct {
		name   string
		user   domain.UserProfile
		job    domain.JobPosting
		expect float64
	}{
		{
			name:   "direct category match",
			user:   domain.UserProfile{JobCategories: []string{"Software Engineering"}},
			job:    domain.JobPosting{JobFunction: "Engineering"},
			expect: cfg.FunctionDirectScore * cfg.FunctionScale,
		},
		{
			name:   "keyword match through roles",
			user:   domain.UserProfile{JobCategories: []string{"Marketing"}, JobRoles: []string{"Backend Developer"}},
			job:    domain.JobPosting{JobFunction: "Engineering"},
			expect: cfg.FunctionKeywordScore * cfg.FunctionScale,
		},
		{
			name:   "posting without a function",
			user:   domain.UserProfile{JobCategories: []string{"Software Engineering"}},
			job:    domain.JobPosting{Title: "Backend Developer"},
			expect: 0,
		},
		{
			name:   "nothing lines up",
			user:   domain.UserProfile{JobRoles: []string{"Nurse"}},
			job:    domain.JobPosting{JobFunction: "Engineering"},
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

func TestIndustryScorer(t *testing.T) {
	t.Parallel()

	cfg := Defaults().Secondary
	scorer := NewIndustryScorer(cfg, refdata.Default())

	tests := []struct {
		name   string
		user   domain.UserProfile
		job    domain.JobPosting
		expect float64
	}{
		{
			name:   "direct preference match",
			user:   domain.UserProfile{IndustryPreferences: []string{"Fintech"}},
			job:    domain.JobPosting{Industry: []string{"Fintech", "Banking"}},
			expect: cfg.IndustryDirectScore * cfg.IndustryScale,
		},
		{
			name:   "inferred from roles",
			user:   domain.UserProfile{JobRoles: []string{"Backend Developer"}},
			job:    domain.JobPosting{Industry: []string{"Software"}},
			expect: cfg.IndustryInferredScore * cfg.IndustryScale,
		},
		{
			name:   "posting without industries",
			user:   domain.UserProfile{IndustryPreferences: []string{"Fintech"}},
			job:    domain.JobPosting{Title: "Backend Developer"},
			expect: 0,
		},
		{
			name:   "unrelated industry",
			user:   domain.UserProfile{JobRoles: []string{"Backend Developer"}},
			job:    domain.JobPosting{Industry: []string{"Agriculture"}},
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

func TestClusterScorer(t *testing.T) {
	t.Parallel()

	cfg := Defaults().Secondary
	scorer := NewClusterScorer(cfg, refdata.Default())

	tests := []struct {
		name   string
		user   domain.UserProfile
		job    domain.JobPosting
		expect float64
	}{
		{
			name:   "several title hits take the full title tier",
			user:   domain.UserProfile{JobRoles: []string{"Backend Developer"}},
			job:    domain.JobPosting{Title: "Senior Backend Engineer"},
			expect: cfg.ClusterTitleScore * cfg.ClusterScale,
		},
		{
			name:   "single title hit takes most of the tier",
			user:   domain.UserProfile{JobRoles: []string{"Backend Developer"}},
			job:    domain.JobPosting{Title: "Platform Engineer"},
			expect: cfg.ClusterTitleScore * 0.7 * cfg.ClusterScale,
		},
		{
			name: "description hits fall back to the body tier",
			user: domain.UserProfile{JobRoles: []string{"Backend Developer"}},
			job: domain.JobPosting{
				Title:       "Team Member",
				Description: "You will build backend services and ship software daily.",
			},
			expect: cfg.ClusterBodyScore * cfg.ClusterScale,
		},
		{
			name:   "variant counts toward the title",
			user:   domain.UserProfile{JobRoles: []string{"Backend Developer"}},
			job:    domain.JobPosting{Title: "Team Member", TitleVariants: []string{"Software Engineer"}},
			expect: cfg.ClusterTitleScore * cfg.ClusterScale,
		},
		{
			name:   "user maps to no cluster",
			user:   domain.UserProfile{JobRoles: []string{"Zookeeper"}},
			job:    domain.JobPosting{Title: "Senior Backend Engineer"},
			expect: 0,
		},
		{
			name:   "posting mentions no cluster keyword",
			user:   domain.UserProfile{JobRoles: []string{"Backend Developer"}},
			job:    domain.JobPosting{Title: "Head Chef"},
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
