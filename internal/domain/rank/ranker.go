// Package rank orchestrates the five signal scorers into a ranked,
// explainable suggestion list for one requester availability.
package rank

import (
	"context"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/deuce/internal/domain/model"
	"github.com/okian/deuce/internal/domain/scoring"
	"github.com/okian/deuce/internal/domain/types"
	"github.com/okian/deuce/pkg/logger"
	"github.com/okian/deuce/pkg/metrics"
)

// Directory abstracts the snapshot reads the ranker needs. The in-memory
// store in adapters/repository satisfies it; tests use fixtures.
type Directory interface {
	Availability(ctx context.Context, id uuid.UUID) (model.Availability, bool, error)
	OtherAvailabilities(ctx context.Context, excludeUserID uuid.UUID) ([]model.Availability, error)
	PlayerByUserID(ctx context.Context, userID uuid.UUID) (model.Player, bool, error)
	AreFriends(ctx context.Context, a, b uuid.UUID) (bool, error)
	HavePlayed(ctx context.Context, a, b uuid.UUID) (bool, error)
	SurfacePreference(ctx context.Context, userID uuid.UUID) (string, bool, error)
}

// Result is the response for one suggestion request.
type Result struct {
	AvailabilityID uuid.UUID               `json:"availability_id"`
	Candidates     []types.ScoredCandidate `json:"candidates"`
}

// Ranker combines the scorers over a directory snapshot. It holds no
// per-request state; a single Ranker serves concurrent requests.
type Ranker struct {
	dir Directory

	overlap  *scoring.OverlapCalculator
	level    *scoring.LevelScorer
	location *scoring.LocationScorer
	surface  *scoring.SurfaceScorer

	weights     scoring.Weights
	minScore    float64
	concurrency int

	logger logger.Logger
}

// New creates a Ranker over dir with default scorers and options applied.
func New(dir Directory, opts ...Option) *Ranker {
	r := &Ranker{
		dir:         dir,
		overlap:     scoring.NewOverlapCalculator(),
		level:       scoring.NewLevelScorer(),
		location:    scoring.NewLocationScorer(),
		surface:     scoring.NewSurfaceScorer(),
		weights:     scoring.DefaultWeights(),
		minScore:    scoring.DefaultMinScore,
		concurrency: runtime.NumCPU(),
		logger:      logger.Get().Named("rank"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// requester bundles the per-request data resolved once up front.
type requester struct {
	userID       uuid.UUID
	availability model.Availability
	level        *float64
	surface      string
	hasSurface   bool
	lat, lon     float64
	hasCoords    bool
}

// Suggest ranks every other user's availability against the requester's
// window. A requester or availability that cannot be resolved propagates
// a not-found error; a candidate record that cannot be resolved is
// skipped so one bad row does not sink the whole request.
func (r *Ranker) Suggest(ctx context.Context, userID, availabilityID uuid.UUID) (Result, error) {
	start := time.Now()
	metrics.RecordSuggestionRequest()

	avail, found, err := r.dir.Availability(ctx, availabilityID)
	if err != nil {
		return Result{}, err
	}
	if !found {
		return Result{}, ErrAvailabilityNotFound
	}
	if avail.UserID != userID {
		return Result{}, ErrWrongOwner
	}

	req := requester{userID: userID, availability: avail}
	if p, ok, perr := r.dir.PlayerByUserID(ctx, userID); perr == nil && ok {
		req.level = p.LevelValue
		if req.lat, req.lon, req.hasCoords = avail.Coordinates(); !req.hasCoords {
			req.lat, req.lon, req.hasCoords = p.Coordinates()
		}
	} else {
		req.lat, req.lon, req.hasCoords = avail.Coordinates()
	}
	if s, ok, serr := r.dir.SurfacePreference(ctx, userID); serr == nil && ok {
		req.surface, req.hasSurface = s, true
	}

	pool, err := r.dir.OtherAvailabilities(ctx, userID)
	if err != nil {
		return Result{}, err
	}
	metrics.RecordCandidatesConsidered(len(pool))

	// Each candidate scores independently; fan out with bounded
	// concurrency and merge at the sort, the single ordering point.
	scored := make([]*types.ScoredCandidate, len(pool))
	sem := make(chan struct{}, r.concurrency)
	var wg sync.WaitGroup
	for i, cand := range pool {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, cand model.Availability) {
			defer wg.Done()
			defer func() { <-sem }()
			if sc, ok := r.evaluate(ctx, req, cand); ok {
				scored[i] = &sc
			}
		}(i, cand)
	}
	wg.Wait()

	candidates := make([]types.ScoredCandidate, 0, len(pool))
	for _, sc := range scored {
		if sc == nil {
			continue
		}
		if sc.Score < r.minScore {
			metrics.RecordCandidateBelowMinScore()
			continue
		}
		candidates = append(candidates, *sc)
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.CandidateUserID != b.CandidateUserID {
			return a.CandidateUserID.String() < b.CandidateUserID.String()
		}
		return a.CandidateAvailabilityID.String() < b.CandidateAvailabilityID.String()
	})

	metrics.RecordCandidatesReturned(len(candidates))
	metrics.RecordRankingLatency(float64(time.Since(start).Milliseconds()))
	r.logger.Debug(ctx, "ranked suggestions",
		logger.String("availabilityID", availabilityID.String()),
		logger.Int("pool", len(pool)),
		logger.Int("returned", len(candidates)),
	)

	return Result{AvailabilityID: availabilityID, Candidates: candidates}, nil
}

// evaluate scores one candidate availability. ok is false when the
// candidate is ineligible or its records cannot be resolved.
func (r *Ranker) evaluate(ctx context.Context, req requester, cand model.Availability) (types.ScoredCandidate, bool) {
	// Defensive: the directory already excludes the requester's own
	// rows, but a self-match must never slip through.
	if cand.UserID == req.userID || cand.ID == req.availability.ID {
		return types.ScoredCandidate{}, false
	}

	rng, minutes, eligible := r.overlap.Overlap(req.availability.Window, cand.Window)
	if !eligible {
		return types.ScoredCandidate{}, false
	}

	reasons := []types.Reason{{Code: types.ReasonOverlap, Detail: float64(minutes)}}
	breakdown := types.Breakdown{Overlap: float64(minutes)}

	friends, err := r.dir.AreFriends(ctx, req.userID, cand.UserID)
	if err != nil {
		metrics.RecordCandidateSkipped()
		r.logger.Warn(ctx, "skipping candidate: friendship lookup failed",
			logger.String("candidateUserID", cand.UserID.String()), logger.Error(err))
		return types.ScoredCandidate{}, false
	}
	played, err := r.dir.HavePlayed(ctx, req.userID, cand.UserID)
	if err != nil {
		metrics.RecordCandidateSkipped()
		r.logger.Warn(ctx, "skipping candidate: match history lookup failed",
			logger.String("candidateUserID", cand.UserID.String()), logger.Error(err))
		return types.ScoredCandidate{}, false
	}
	social := scoring.ClassifySocial(friends, played)
	breakdown.Social = social.Points()
	if reason, ok := social.Reason(); ok {
		reasons = append(reasons, reason)
	}

	var candPlayerID *uuid.UUID
	var candLevel *float64
	candLat, candLon, candHasCoords := cand.Coordinates()
	if p, ok, perr := r.dir.PlayerByUserID(ctx, cand.UserID); perr == nil && ok {
		id := p.ID
		candPlayerID = &id
		candLevel = p.LevelValue
		if !candHasCoords {
			candLat, candLon, candHasCoords = p.Coordinates()
		}
	}

	level := r.level.Compare(req.level, candLevel, req.availability.MinLevel, req.availability.MaxLevel)
	breakdown.Level = level.Points()
	reasons = append(reasons, level.Reason())

	if req.hasCoords && candHasCoords {
		dist := scoring.Haversine(req.lat, req.lon, candLat, candLon)
		if pts := r.location.Score(dist); pts > 0 {
			breakdown.Location = pts
			reasons = append(reasons, types.Reason{Code: types.ReasonNearby, Detail: dist})
		}
	}

	if req.hasSurface {
		if candSurface, ok, serr := r.dir.SurfacePreference(ctx, cand.UserID); serr == nil && ok {
			if pts, surface, matched := r.surface.Score(req.surface, candSurface); matched {
				breakdown.Surface = pts
				reasons = append(reasons, types.Reason{Code: types.ReasonSurfaceMatch, Surface: surface})
			}
		}
	}

	score := r.weights.Combine(breakdown.Overlap, breakdown.Social, breakdown.Level, breakdown.Location, breakdown.Surface)

	return types.ScoredCandidate{
		CandidateUserID:         cand.UserID,
		CandidatePlayerID:       candPlayerID,
		CandidateAvailabilityID: cand.ID,
		RequesterAvailabilityID: req.availability.ID,
		OverlapStart:            rng.Start,
		OverlapEnd:              rng.End,
		OverlapMinutes:          minutes,
		Score:                   score,
		Breakdown:               breakdown,
		Reasons:                 types.RenderReasons(reasons),
	}, true
}
