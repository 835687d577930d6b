package simulation

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/okian/decile/internal/adapters/mq/queue"
	"github.com/okian/decile/internal/adapters/stream"
	"github.com/okian/decile/internal/domain/model"
	"github.com/okian/decile/internal/domain/rank"
	"github.com/okian/decile/pkg/logger"
	"github.com/okian/decile/pkg/metrics"
)

// Algorithm labels used for logs and metrics.
const (
	algoHeap        = "heap"
	algoQuickSelect = "quickselect"
	algoOnline      = "online"
)

// Report summarizes one simulation run.
type Report struct {
	RosterSize         int
	TopSize            int
	Checkpoints        int
	HeapElapsed        time.Duration
	QuickSelectElapsed time.Duration
	OnlineElapsed      time.Duration
}

// Runner generates a roster and feeds it through all three ranking
// algorithms.
type Runner struct {
	rosterSize        int
	reportingInterval int
	queueSize         int
	generatorWorkers  int

	logger logger.Logger
}

// Option applies a configuration option to the Runner.
type Option func(*Runner)

// WithRosterSize sets how many players are generated.
func WithRosterSize(size int) Option {
	return func(r *Runner) {
		if size >= 0 {
			r.rosterSize = size
		}
	}
}

// WithReportingInterval sets the online engine's capacity and checkpoint
// period.
func WithReportingInterval(interval int) Option {
	return func(r *Runner) {
		if interval > 0 {
			r.reportingInterval = interval
		}
	}
}

// WithQueueSize bounds the player queue feeding the online engine.
func WithQueueSize(size int) Option {
	return func(r *Runner) {
		if size > 0 {
			r.queueSize = size
		}
	}
}

// WithGeneratorWorkers sets the number of roster generation goroutines.
func WithGeneratorWorkers(workers int) Option {
	return func(r *Runner) {
		if workers > 0 {
			r.generatorWorkers = workers
		}
	}
}

// WithLogger sets a custom logger for the runner.
func WithLogger(l logger.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRunner constructs a Runner with default configuration.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		rosterSize:        100_000,
		reportingInterval: 1_000,
		queueSize:         200_000,
		generatorWorkers:  runtime.NumCPU(),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = logger.Get().Named("simulation")
	}

	return r
}

// Run executes one full simulation: generate, rank three ways, verify.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	if r.rosterSize > r.queueSize {
		return nil, fmt.Errorf("queue size %d cannot hold roster of %d", r.queueSize, r.rosterSize)
	}

	roster, err := GenerateRoster(ctx, r.rosterSize, r.generatorWorkers)
	if err != nil {
		return nil, fmt.Errorf("generate roster: %w", err)
	}
	metrics.UpdateRosterSize(len(roster))

	// The offline selectors consume their input, so each gets its own copy.
	heapRes := rank.HeapRank(clone(roster))
	r.recordRun(ctx, algoHeap, len(roster), heapRes)

	quickRes := rank.QuickSelectRank(clone(roster))
	r.recordRun(ctx, algoQuickSelect, len(roster), quickRes)

	onlineRes, err := r.runOnline(ctx, roster)
	if err != nil {
		return nil, err
	}
	r.recordRun(ctx, algoOnline, len(roster), onlineRes)
	metrics.RecordCutoffSnapshots(len(onlineRes.Cutoffs))

	if err := verify(heapRes, quickRes, onlineRes, len(roster), r.reportingInterval); err != nil {
		metrics.RecordErrorByComponent("simulation", "verification_failed")
		return nil, fmt.Errorf("verify results: %w", err)
	}

	metrics.RecordSimulationRun()

	return &Report{
		RosterSize:         len(roster),
		TopSize:            len(heapRes.Top),
		Checkpoints:        len(onlineRes.Cutoffs),
		HeapElapsed:        heapRes.Elapsed,
		QuickSelectElapsed: quickRes.Elapsed,
		OnlineElapsed:      onlineRes.Elapsed,
	}, nil
}

// runOnline loads the roster into a queue, closes it, and drains it through
// the online engine via a queue-backed stream.
func (r *Runner) runOnline(ctx context.Context, roster []model.Player) (rank.Result, error) {
	q := queue.NewInMemoryQueue(
		queue.WithCapacity(r.queueSize),
		queue.WithBufferSize(r.queueSize),
	)

	for _, p := range roster {
		if !q.Enqueue(ctx, p) {
			return rank.Result{}, fmt.Errorf("enqueue player %s: queue rejected it", p.ID)
		}
	}
	if err := q.Close(); err != nil {
		return rank.Result{}, fmt.Errorf("close queue: %w", err)
	}

	s := stream.NewQueueStream(ctx, q)
	metrics.UpdateStreamBacklog(s.Remaining())

	res, err := rank.RankIncoming(ctx, s, r.reportingInterval)
	if err != nil {
		metrics.RecordErrorByComponent("simulation", "online_ranking_failed")
		return rank.Result{}, fmt.Errorf("online ranking: %w", err)
	}
	metrics.UpdateStreamBacklog(s.Remaining())

	return res, nil
}

// recordRun logs and records telemetry for a completed algorithm run.
func (r *Runner) recordRun(ctx context.Context, algorithm string, rosterSize int, res rank.Result) {
	metrics.RecordRankingDuration(algorithm, float64(res.Elapsed.Microseconds())/1e3)
	metrics.RecordPlayersRanked(algorithm, rosterSize)

	r.logger.Info(ctx, "ranking completed",
		logger.String("algorithm", algorithm),
		logger.Int("roster", rosterSize),
		logger.Int("top", len(res.Top)),
		logger.Int("checkpoints", len(res.Cutoffs)),
		logger.Duration("elapsed", res.Elapsed),
	)
}

// clone copies a roster so a destructive selector cannot touch the original.
func clone(roster []model.Player) []model.Player {
	out := make([]model.Player, len(roster))
	copy(out, roster)
	return out
}
