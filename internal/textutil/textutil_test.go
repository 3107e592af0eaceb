package textutil

import (
	"testing"
)

func TestTerms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect []string
	}{
		{
			name:   "splits on commas and keeps pairs",
			input:  "Lagos, Nigeria",
			expect: []string{"lagos", "nigeria"},
		},
		{
			name:   "keeps adjacent word pairs",
			input:  "San Francisco Bay Area",
			expect: []string{"san francisco bay area", "san", "san francisco", "francisco", "francisco bay", "bay", "bay area", "area"},
		},
		{
			name:   "drops short segments and words",
			input:  "NY, US",
			expect: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Terms(tt.input)
			if len(got) != len(tt.expect) {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
			for i := range got {
				if got[i] != tt.expect[i] {
					t.Fatalf("expected %v, got %v", tt.expect, got)
				}
			}
		})
	}
}

func TestSimilarity(t *testing.T) {
	t.Parallel()

	if got := Similarity("Software Engineer", "software engineer"); got != 1 {
		t.Fatalf("expected identical strings to score 1, got %v", got)
	}

	if got := Similarity("", "developer"); got != 0 {
		t.Fatalf("expected empty input to score 0, got %v", got)
	}

	close := Similarity("software enginer", "software engineer")
	if close <= 0.85 {
		t.Fatalf("expected near-identical strings above 0.85, got %v", close)
	}

	far := Similarity("accountant", "software engineer")
	if far >= 0.5 {
		t.Fatalf("expected unrelated strings below 0.5, got %v", far)
	}

	if close <= far {
		t.Fatalf("expected similarity ordering to hold: %v vs %v", close, far)
	}
}

func TestTokens(t *testing.T) {
	t.Parallel()

	got := Tokens("Looking for a Python developer role")
	expect := []string{"python", "developer"}
	if len(got) != len(expect) {
		t.Fatalf("expected %v, got %v", expect, got)
	}
	for i := range got {
		if got[i] != expect[i] {
			t.Fatalf("expected %v, got %v", expect, got)
		}
	}
}

func TestContainsFold(t *testing.T) {
	t.Parallel()

	if !ContainsFold("Senior Backend Developer", "backend") {
		t.Fatalf("expected case-insensitive containment")
	}
	if ContainsFold("Senior Backend Developer", "") {
		t.Fatalf("empty needle must not match")
	}
	if ContainsFold("", "backend") {
		t.Fatalf("empty haystack must not match")
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	if got := Truncate("hello world", 5); got != "hello..." {
		t.Fatalf("expected truncation with ellipsis, got %q", got)
	}
	if got := Truncate("hi", 5); got != "hi" {
		t.Fatalf("expected short input unchanged, got %q", got)
	}
	if got := Truncate("hello", 0); got != "" {
		t.Fatalf("expected empty for non-positive limit, got %q", got)
	}
}
