package match

import (
	"testing"

	"github.com/jobsift/jobsift/internal/domain"
	"github.com/jobsift/jobsift/internal/refdata"
)

func floatPtr(v float64) *float64 { return &v }

func TestSalaryScorer(t *testing.T) {
	t.Parallel()

	scorer := NewSalaryScorer(Defaults().Salary, refdata.Default())

	tests := []struct {
		name   string
		user   domain.UserProfile
		job    domain.JobPosting
		expect float64
	}{
		{
			name:   "no user preference scores zero",
			user:   domain.UserProfile{},
			job:    domain.JobPosting{SalaryMin: floatPtr(100000), SalaryCurrency: "USD"},
			expect: 0,
		},
		{
			name:   "job without salary data gets flat partial credit",
			user:   domain.UserProfile{SalaryMin: floatPtr(500000), SalaryCurrency: "NGN"},
			job:    domain.JobPosting{Title: "Backend Developer"},
			expect: 8,
		},
		{
			name: "exact currency with satisfied minimum",
			user: domain.UserProfile{SalaryMin: floatPtr(500000), SalaryCurrency: "NGN"},
			job: domain.JobPosting{
				SalaryMin:      floatPtr(600000),
				SalaryCurrency: "NGN",
			},
			expect: 10, // 4 currency + 3 ceiling + 3 floor
		},
		{
			name: "currency group spelling counts as exact",
			user: domain.UserProfile{SalaryMin: floatPtr(500000), SalaryCurrency: "Naira"},
			job: domain.JobPosting{
				SalaryMin:      floatPtr(600000),
				SalaryCurrency: "NGN",
			},
			expect: 10,
		},
		{
			name: "full overlap of both ranges",
			user: domain.UserProfile{
				SalaryMin:      floatPtr(80000),
				SalaryMax:      floatPtr(120000),
				SalaryCurrency: "USD",
			},
			job: domain.JobPosting{
				SalaryMin:      floatPtr(80000),
				SalaryMax:      floatPtr(120000),
				SalaryCurrency: "USD",
			},
			expect: 16, // 4 currency + 6 overlap + 6 sided
		},
		{
			name: "job below range fails the floor check",
			user: domain.UserProfile{
				SalaryMin:      floatPtr(100000),
				SalaryMax:      floatPtr(150000),
				SalaryCurrency: "USD",
			},
			job: domain.JobPosting{
				SalaryMin:      floatPtr(40000),
				SalaryMax:      floatPtr(60000),
				SalaryCurrency: "USD",
			},
			expect: 7, // 4 currency + floor under ceiling only
		},
		{
			name: "negotiable widens the window",
			user: domain.UserProfile{
				SalaryMin:        floatPtr(100000),
				SalaryCurrency:   "USD",
				SalaryNegotiable: true,
			},
			job: domain.JobPosting{
				SalaryMax:      floatPtr(85000),
				SalaryCurrency: "USD",
			},
			expect: 10, // 85000 >= 100000*(1-0.2)
		},
		{
			name: "non-negotiable rejects the same shortfall",
			user: domain.UserProfile{
				SalaryMin:      floatPtr(100000),
				SalaryCurrency: "USD",
			},
			job: domain.JobPosting{
				SalaryMax:      floatPtr(85000),
				SalaryCurrency: "USD",
			},
			expect: 7,
		},
		{
			name: "conversion bridges currencies",
			user: domain.UserProfile{SalaryMin: floatPtr(700000), SalaryCurrency: "NGN"},
			job: domain.JobPosting{
				SalaryMin:      floatPtr(1000),
				SalaryCurrency: "USD",
			},
			// 1000 USD is well above 700000 NGN after conversion; the
			// currencies themselves are unrelated.
			expect: 6,
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

func TestSalaryCurrencyMatchNeverScoresBelowMismatch(t *testing.T) {
	t.Parallel()

	scorer := NewSalaryScorer(Defaults().Salary, refdata.Default())

	user := domain.UserProfile{
		SalaryMin:      floatPtr(50000),
		SalaryMax:      floatPtr(90000),
		SalaryCurrency: "USD",
	}
	sameCurrency := domain.JobPosting{
		SalaryMin:      floatPtr(60000),
		SalaryMax:      floatPtr(80000),
		SalaryCurrency: "USD",
	}
	otherCurrency := sameCurrency
	otherCurrency.SalaryCurrency = "NGN"

	if same, other := scorer.Score(user, sameCurrency), scorer.Score(user, otherCurrency); same < other {
		t.Fatalf("exact currency (%v) must score at least mismatch (%v)", same, other)
	}
}
