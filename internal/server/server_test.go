package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jobsift/jobsift/internal/domain"
	"github.com/jobsift/jobsift/internal/match"
)

func testServer(token string) *Server {
	svc := match.NewService(match.Defaults(), nil, nil)
	return New(Config{Token: token}, svc, nil)
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	srv := testServer("")

	resp, err := srv.app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestMatchEndpoint(t *testing.T) {
	t.Parallel()

	srv := testServer("")

	salaryMin := 500000.0
	jobSalaryMin := 600000.0
	body, err := json.Marshal(MatchRequest{
		Profile: domain.UserProfile{
			JobRoles:           []string{"Software Developer"},
			PreferredLocations: []string{"Lagos"},
			SalaryMin:          &salaryMin,
			SalaryCurrency:     "NGN",
		},
		Jobs: []domain.JobPosting{{
			ID:             "job-1",
			Title:          "Backend Developer",
			TitleVariants:  []string{"Software Developer"},
			Location:       "Lagos, Nigeria",
			SalaryMin:      &jobSalaryMin,
			SalaryCurrency: "NGN",
		}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/match", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var reply MatchResponse
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if reply.Count != 1 || len(reply.Results) != 1 {
		t.Fatalf("expected one result, got %+v", reply)
	}
	if reply.Results[0].JobID != "job-1" {
		t.Fatalf("expected job-1, got %s", reply.Results[0].JobID)
	}
	if reply.SearchID == "" {
		t.Fatal("expected a search id")
	}
}

func TestMatchEndpointRejectsBadToken(t *testing.T) {
	t.Parallel()

	srv := testServer("sesame")

	req := httptest.NewRequest(http.MethodPost, "/v1/match", bytes.NewReader([]byte("{}")))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer wrong")

	resp, err := srv.app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestMatchEndpointRejectsMalformedBody(t *testing.T) {
	t.Parallel()

	srv := testServer("")

	req := httptest.NewRequest(http.MethodPost, "/v1/match", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
