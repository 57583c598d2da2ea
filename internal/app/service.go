// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"runtime"
	"sync"

	"github.com/google/uuid"

	"github.com/okian/deuce/internal/adapters/repository"
	"github.com/okian/deuce/internal/domain/rank"
	"github.com/okian/deuce/internal/domain/scoring"
	"github.com/okian/deuce/pkg/logger"
	"github.com/okian/deuce/pkg/metrics"
)

// Service wires the snapshot store and the ranker behind the HTTP API.
type Service struct {
	mu sync.RWMutex

	// Core components
	store  *repository.MemoryStore
	ranker *rank.Ranker

	// Configuration
	minOverlapMinutes int
	minScore          float64
	closeLevelDelta   float64
	maxDistanceKM     float64
	maxLocationScore  float64
	surfaceBonus      float64
	weights           scoring.Weights
	evalConcurrency   int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithMinOverlapMinutes sets the overlap eligibility gate.
func WithMinOverlapMinutes(minutes int) Option {
	return func(s *Service) {
		if minutes > 0 {
			s.minOverlapMinutes = minutes
		}
	}
}

// WithMinScore sets the final acceptance gate.
func WithMinScore(min float64) Option {
	return func(s *Service) {
		s.minScore = min
	}
}

// WithCloseLevelDelta sets the close-band width for level comparison.
func WithCloseLevelDelta(delta float64) Option {
	return func(s *Service) {
		if delta > 0 {
			s.closeLevelDelta = delta
		}
	}
}

// WithLocationScoring sets the distance decay and the zero-distance bonus.
func WithLocationScoring(maxDistanceKM, maxScore float64) Option {
	return func(s *Service) {
		if maxDistanceKM > 0 {
			s.maxDistanceKM = maxDistanceKM
		}
		if maxScore > 0 {
			s.maxLocationScore = maxScore
		}
	}
}

// WithSurfaceBonus sets the surface-match bonus.
func WithSurfaceBonus(points float64) Option {
	return func(s *Service) {
		if points > 0 {
			s.surfaceBonus = points
		}
	}
}

// WithWeights sets the signal weights.
func WithWeights(w scoring.Weights) Option {
	return func(s *Service) {
		s.weights = w
	}
}

// WithEvalConcurrency bounds the parallel candidate evaluation fan-out.
func WithEvalConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.evalConcurrency = n
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		minOverlapMinutes: scoring.DefaultMinOverlapMinutes,
		minScore:          scoring.DefaultMinScore,
		closeLevelDelta:   scoring.DefaultCloseLevelDelta,
		maxDistanceKM:     scoring.DefaultMaxDistanceKM,
		maxLocationScore:  scoring.DefaultMaxLocationScore,
		surfaceBonus:      scoring.DefaultSurfaceBonus,
		weights:           scoring.DefaultWeights(),
		evalConcurrency:   runtime.NumCPU(),
		logger:            nil, // resolved at Start
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the store and the ranker.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.store = repository.NewMemoryStore()
	s.ranker = rank.New(s.store,
		rank.WithOverlapCalculator(scoring.NewOverlapCalculator(
			scoring.WithMinOverlapMinutes(s.minOverlapMinutes),
		)),
		rank.WithLevelScorer(scoring.NewLevelScorer(
			scoring.WithCloseLevelDelta(s.closeLevelDelta),
		)),
		rank.WithLocationScorer(scoring.NewLocationScorer(
			scoring.WithMaxDistanceKM(s.maxDistanceKM),
			scoring.WithMaxLocationScore(s.maxLocationScore),
		)),
		rank.WithSurfaceScorer(scoring.NewSurfaceScorer(
			scoring.WithSurfaceBonus(s.surfaceBonus),
		)),
		rank.WithWeights(s.weights),
		rank.WithMinScore(s.minScore),
		rank.WithConcurrency(s.evalConcurrency),
		rank.WithLogger(s.logger.Named("rank")),
	)

	s.started = true
	s.logger.Info(ctx, "matchmaking service started",
		logger.Int("minOverlapMinutes", s.minOverlapMinutes),
		logger.Float64("minScore", s.minScore),
		logger.Int("evalConcurrency", s.evalConcurrency),
	)

	return nil
}

// Stop shuts the service down. The engine holds no partial state, so
// this only flips the flag and logs.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "matchmaking service stopped")
}

// Store exposes the seedable snapshot store for fixtures and tests.
func (s *Service) Store() *repository.MemoryStore {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store
}

// Suggest ranks candidates for one requester availability.
func (s *Service) Suggest(ctx context.Context, userID, availabilityID uuid.UUID) (rank.Result, error) {
	s.mu.RLock()
	ranker := s.ranker
	s.mu.RUnlock()
	return ranker.Suggest(ctx, userID, availabilityID)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":           s.started,
		"minOverlapMinutes": s.minOverlapMinutes,
		"minScore":          s.minScore,
		"evalConcurrency":   s.evalConcurrency,
	}

	if s.started {
		availabilities, players, friendships, matches := s.store.Counts()
		stats["availabilities"] = availabilities
		stats["players"] = players
		stats["friendships"] = friendships
		stats["matches"] = matches

		metrics.UpdatePoolSizes(availabilities, players, friendships, matches)
	}

	return stats
}
