package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestFileJobSource(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "jobs.json", `[
		{"job_id": "job-1", "title": "Backend Developer", "location": "Lagos, Nigeria"},
		{"job_id": "job-2", "title": "Data Analyst", "remote_allowed": true}
	]`)

	jobs, err := FileJobSource{Path: path}.Jobs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if jobs[0].ID != "job-1" || jobs[1].RemoteAllowed == nil || !*jobs[1].RemoteAllowed {
		t.Fatalf("fields did not decode: %+v", jobs)
	}
}

func TestFileJobSourceErrors(t *testing.T) {
	t.Parallel()

	if _, err := (FileJobSource{Path: "does/not/exist.json"}).Jobs(context.Background()); err == nil {
		t.Fatal("expected an error for a missing file")
	}

	path := writeFile(t, "broken.json", "{")
	if _, err := (FileJobSource{Path: path}).Jobs(context.Background()); err == nil {
		t.Fatal("expected an error for malformed json")
	}
}

func TestFileProfileSource(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "profile.json", `{
		"job_roles": ["Software Developer"],
		"preferred_locations": ["Lagos"],
		"salary_min": 500000,
		"salary_currency": "NGN"
	}`)

	profile, err := FileProfileSource{Path: path}.Profile(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(profile.JobRoles) != 1 || profile.SalaryMin == nil || *profile.SalaryMin != 500000 {
		t.Fatalf("fields did not decode: %+v", profile)
	}
}
