package match

import (
	"context"
	"math"
	"runtime"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jobsift/jobsift/internal/domain"
	"github.com/jobsift/jobsift/internal/refdata"
)

const defaultLimit = 10

// Service orchestrates a search: gate, score, aggregate, threshold, rank,
// truncate. One Service is safe for concurrent use; all of its state is
// read-only after construction.
type Service struct {
	cfg       Config
	gate      *LocationGate
	scorers   []Scorer
	explainer *Explainer
	logger    *zap.Logger
}

// NewService wires the gate, the component scorers and the explainer over
// one shared reference-table set.
func NewService(cfg Config, tables *refdata.Tables, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if tables == nil {
		tables = refdata.Default()
	}

	return &Service{
		cfg:  cfg,
		gate: NewLocationGate(tables),
		scorers: []Scorer{
			NewTitleScorer(cfg.Title, tables),
			NewArrangementScorer(cfg.Arrangement),
			NewSalaryScorer(cfg.Salary, tables),
			NewExperienceScorer(cfg.Experience),
			NewFunctionScorer(cfg.Secondary, tables),
			NewIndustryScorer(cfg.Secondary, tables),
			NewClusterScorer(cfg.Secondary, tables),
		},
		explainer: NewExplainer(cfg.MaxReasons),
		logger:    logger,
	}
}

// Search scores every candidate independently on a bounded worker pool and
// returns the ranked results above minScore, truncated to limit. A negative
// minScore selects the configured default. When ctx expires mid-batch the
// jobs scored so far are ranked and returned. Results are ordered by total
// score descending, ties broken by job id ascending.
func (s *Service) Search(ctx context.Context, user domain.UserProfile, candidates []domain.JobPosting, limit int, minScore float64) ([]domain.MatchResult, error) {
	if minScore < 0 {
		minScore = s.cfg.MinScore
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	if !user.HasSignal() {
		return []domain.MatchResult{}, nil
	}

	runID := uuid.NewString()
	log := s.logger.With(zap.String("search_id", runID))

	workers := s.cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]*domain.MatchResult, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, job := range candidates {
		if gctx.Err() != nil {
			break
		}
		i, job := i, job
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			if result, ok := s.scoreJob(log, user, job); ok {
				results[i] = &result
			}
			return nil
		})
	}

	// Worker funcs never return errors; a cancelled context only stops
	// scheduling, it does not discard finished work.
	_ = g.Wait()

	matched := make([]domain.MatchResult, 0, len(candidates))
	for _, r := range results {
		if r != nil && r.TotalScore >= minScore {
			matched = append(matched, *r)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].TotalScore != matched[j].TotalScore {
			return matched[i].TotalScore > matched[j].TotalScore
		}
		return matched[i].JobID < matched[j].JobID
	})

	if len(matched) > limit {
		matched = matched[:limit]
	}

	log.Debug("search completed",
		zap.Int("candidates", len(candidates)),
		zap.Int("matched", len(matched)),
		zap.Float64("min_score", minScore),
	)
	return matched, nil
}

// scoreJob runs the gate and every component for a single posting. A panic
// caused by one malformed record is contained here: the job is logged and
// skipped so the batch survives.
func (s *Service) scoreJob(log *zap.Logger, user domain.UserProfile, job domain.JobPosting) (result domain.MatchResult, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn("scoring panicked; skipping job",
				zap.String("job_id", job.ID),
				zap.Any("panic", r),
			)
			ok = false
		}
	}()

	if !s.gate.IsCompatible(user, job) {
		return domain.MatchResult{}, false
	}

	components := make(map[string]float64, len(s.scorers))
	total := 0.0
	for _, scorer := range s.scorers {
		score := scorer.Score(user, job)
		components[scorer.Name()] = score
		total += score
	}

	return domain.MatchResult{
		JobID:           job.ID,
		TotalScore:      math.Min(math.Max(total, 0), 100),
		ComponentScores: components,
		Reasons:         s.explainer.Explain(user, job),
	}, true
}
