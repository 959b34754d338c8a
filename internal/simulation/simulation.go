// Package simulation animates the settlement of one transfer on both rails:
// two independent progress counters advance from a recorded start timestamp,
// polled on a fixed tick interval and capped at 100%. The run is complete
// when the second counter finishes; the in-progress flag is cleared exactly
// once. Starting a new run halts all outstanding polling first so a stale
// tick can never resurrect finished progress.
package simulation

import (
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/railcompare/rail-compare/pkg/constants"
	"github.com/railcompare/rail-compare/pkg/mathutil"
	"go.uber.org/zap"
)

// Rail identifies one of the two simulated transfers.
type Rail string

const (
	// RailSEPA is the regional leg of the run.
	RailSEPA Rail = "sepa"
	// RailSWIFT is the correspondent-banking leg of the run.
	RailSWIFT Rail = "swift"
)

// Snapshot is a point-in-time view of the runner for rendering.
type Snapshot struct {
	RunID         string
	Running       bool
	SEPAProgress  float64
	SWIFTProgress float64
	SEPADone      bool
	SWIFTDone     bool
	Balance       float64
}

type railState struct {
	progress float64
	done     bool
}

type run struct {
	id      string
	sepa    railState
	swift   railState
	running bool
	stop    chan struct{}
	wg      sync.WaitGroup
}

// Runner owns the display-only balance and at most one active run. All state
// is guarded by a single mutex; the per-rail goroutines only ever write to
// their own run, so a goroutine from a cancelled run cannot touch a newer one.
type Runner struct {
	mu            sync.Mutex
	logger        *zap.Logger
	clock         Clock
	sepaDuration  time.Duration
	swiftDuration time.Duration
	tick          time.Duration
	balance       float64
	cur           *run
}

// Config carries the runner's fixed parameters. Zero values fall back to the
// demo defaults.
type Config struct {
	SEPADuration    time.Duration
	SWIFTDuration   time.Duration
	TickInterval    time.Duration
	StartingBalance float64
}

// NewRunner constructs a Runner. A nil logger is replaced with a no-op
// logger; a nil clock gets the system clock.
func NewRunner(logger *zap.Logger, clock Clock, cfg Config) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clock == nil {
		clock = NewClock()
	}
	if cfg.SEPADuration <= 0 {
		cfg.SEPADuration = constants.SEPAStandardDuration
	}
	if cfg.SWIFTDuration <= 0 {
		cfg.SWIFTDuration = constants.SWIFTDuration
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = constants.ProgressTickInterval
	}
	if cfg.StartingBalance == 0 {
		cfg.StartingBalance = constants.DefaultStartingBalance
	}
	return &Runner{
		logger:        logger,
		clock:         clock,
		sepaDuration:  cfg.SEPADuration,
		swiftDuration: cfg.SWIFTDuration,
		tick:          cfg.TickInterval,
		balance:       cfg.StartingBalance,
	}
}

// Start begins a new simulated run, deducting amount plus the regional fee
// from the display balance. It is a guarded no-op, returning ok=false, when
// the amount is non-positive, exceeds the balance, or a run is still active.
// Any prior, finished run's outstanding polling is halted before progress is
// reset.
func (r *Runner) Start(amount, sepaFee float64, sepaDuration time.Duration) (id string, ok bool) {
	if sepaDuration <= 0 {
		sepaDuration = r.sepaDuration
	}

	next := &run{
		id:      uuid.NewString(),
		running: true,
		stop:    make(chan struct{}),
	}

	// Guard, balance deduction, and run installation form one critical
	// section so concurrent Start calls cannot both pass the guard and
	// deduct twice.
	r.mu.Lock()
	if amount <= 0 || amount > r.balance || (r.cur != nil && r.cur.running) {
		r.mu.Unlock()
		return "", false
	}
	prev := r.cur
	r.balance = mathutil.Round(r.balance - amount - sepaFee)
	r.cur = next
	r.mu.Unlock()

	// Halt all outstanding polling from the previous run before the new
	// counters start. The swap above already hides it from snapshots; its
	// goroutines only ever write to their own run struct.
	if prev != nil {
		close(prev.stop)
		prev.wg.Wait()
	}

	r.logger.Info("simulation run started",
		zap.String("op", "simulation.Start"),
		zap.String("runId", next.id),
		zap.Float64("amount", amount),
		zap.Float64("sepaFee", sepaFee),
	)

	next.wg.Add(2)
	go r.track(next, RailSEPA, sepaDuration)
	go r.track(next, RailSWIFT, r.swiftDuration)

	return next.id, true
}

// track advances one rail's progress until it completes or the run is
// stopped.
func (r *Runner) track(rn *run, rail Rail, duration time.Duration) {
	defer rn.wg.Done()

	start := r.clock.Now()
	ticker := r.clock.NewTicker(r.tick)
	defer ticker.Stop()

	for {
		select {
		case <-rn.stop:
			return
		case now := <-ticker.C():
			elapsed := now.Sub(start)
			pct := math.Min(float64(elapsed)/float64(duration)*100, 100)
			if r.advance(rn, rail, pct) {
				return
			}
		}
	}
}

// advance records progress for one rail and reports whether that rail is
// finished. The in-progress flag is cleared exactly once, by whichever rail
// observes both counters complete first; the done checks guard against
// double-clearing when both rails finish on the same tick.
func (r *Runner) advance(rn *run, rail Rail, pct float64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	state := &rn.sepa
	if rail == RailSWIFT {
		state = &rn.swift
	}
	if state.done {
		return true
	}
	state.progress = pct
	if pct < 100 {
		return false
	}
	state.done = true

	if rn.sepa.done && rn.swift.done && rn.running {
		rn.running = false
		r.logger.Info("simulation run complete",
			zap.String("op", "simulation.advance"),
			zap.String("runId", rn.id),
		)
	}
	return true
}

// Snapshot returns the current progress state and balance.
func (r *Runner) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := Snapshot{Balance: r.balance}
	if r.cur != nil {
		s.RunID = r.cur.id
		s.Running = r.cur.running
		s.SEPAProgress = r.cur.sepa.progress
		s.SWIFTProgress = r.cur.swift.progress
		s.SEPADone = r.cur.sepa.done
		s.SWIFTDone = r.cur.swift.done
	}
	return s
}

// Active reports whether a run is currently in progress.
func (r *Runner) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cur != nil && r.cur.running
}

// Stop halts any outstanding polling. Used on shutdown.
func (r *Runner) Stop() {
	r.mu.Lock()
	cur := r.cur
	r.cur = nil
	r.mu.Unlock()

	if cur != nil {
		close(cur.stop)
		cur.wg.Wait()
	}
}
