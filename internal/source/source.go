// Package source defines the collaborator interfaces the engine consumes:
// something that produces the candidate pool and something that produces
// the user profile. Ingestion pipelines and preference stores live behind
// these interfaces; the package ships file-backed implementations used by
// the CLI.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/jobsift/jobsift/internal/domain"
)

// JobSource produces the normalized candidate pool for one search. The
// pool is expected to be pre-filtered for recency upstream.
type JobSource interface {
	Jobs(ctx context.Context) ([]domain.JobPosting, error)
}

// ProfileSource produces the normalized user profile.
type ProfileSource interface {
	Profile(ctx context.Context) (domain.UserProfile, error)
}

// FileJobSource reads a JSON array of postings from disk.
type FileJobSource struct {
	Path string
}

func (f FileJobSource) Jobs(context.Context) ([]domain.JobPosting, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("reading jobs file: %w", err)
	}

	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing jobs file %q: %w", f.Path, err)
	}

	var jobs []domain.JobPosting
	if err := decode(raw, &jobs); err != nil {
		return nil, fmt.Errorf("decoding jobs file %q: %w", f.Path, err)
	}
	return jobs, nil
}

// FileProfileSource reads one user profile from a JSON file.
type FileProfileSource struct {
	Path string
}

func (f FileProfileSource) Profile(context.Context) (domain.UserProfile, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("reading profile file: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.UserProfile{}, fmt.Errorf("parsing profile file %q: %w", f.Path, err)
	}

	var profile domain.UserProfile
	if err := decode(raw, &profile); err != nil {
		return domain.UserProfile{}, fmt.Errorf("decoding profile file %q: %w", f.Path, err)
	}
	return profile, nil
}

// decode maps loosely typed records onto the domain structs. Fields that do
// not fit their type surface as decode errors here, before any scoring.
func decode(input, result any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.StringToTimeHookFunc(time.RFC3339),
		Result:     result,
		TagName:    "json",
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}
