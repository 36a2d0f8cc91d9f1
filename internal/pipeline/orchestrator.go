package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/meza-digital/dniscan/internal/capture"
	"github.com/meza-digital/dniscan/internal/common"
	"github.com/meza-digital/dniscan/internal/fields"
	"github.com/meza-digital/dniscan/internal/recognizer"
	"github.com/meza-digital/dniscan/internal/rectify"
)

// State describes what the orchestrator is currently doing.
type State int

const (
	StateIdle State = iota
	StateScanning
	StateAutoScanning
	StateStopped
)

// String implements fmt.Stringer for log output.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateScanning:
		return "scanning"
	case StateAutoScanning:
		return "auto-scanning"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// ErrStopped is returned when a pass is requested after Close.
var ErrStopped = errors.New("pipeline: orchestrator stopped")

// Orchestrator runs scan passes over a frame source. At most one pass is in
// flight at a time; auto-scan re-arms its timer only after the previous pass
// has fully completed, so slow passes stretch the cycle instead of stacking.
type Orchestrator struct {
	cfg       Config
	source    capture.FrameSource
	rectifier *rectify.Rectifier
	rec       recognizer.TextRecognizer
	form      Form
	now       func() time.Time

	passMu sync.Mutex // serializes scan passes

	mu        sync.Mutex // guards state, timer, generation
	state     State
	autoTimer *time.Timer
	gen       uint64
}

func newOrchestrator(cfg Config, src capture.FrameSource, rec recognizer.TextRecognizer, form Form) *Orchestrator {
	return &Orchestrator{
		cfg:       cfg,
		source:    src,
		rectifier: rectify.New(cfg.Rectification),
		rec:       rec,
		form:      form,
		now:       time.Now,
	}
}

// State returns the current orchestrator state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// ScanOnce runs a single pass: acquire, rectify, recognize, parse, populate.
// Only frame acquisition can fail the pass; rectification always degrades to
// the raw frame and recognition errors are absorbed as empty text, so the
// form is populated on every pass that got a frame.
func (o *Orchestrator) ScanOnce(ctx context.Context) (ScanResult, error) {
	o.passMu.Lock()
	defer o.passMu.Unlock()

	o.mu.Lock()
	if o.state == StateStopped {
		o.mu.Unlock()
		return ScanResult{}, ErrStopped
	}
	if o.state == StateIdle {
		o.state = StateScanning
		defer o.setStateIfScanning(StateIdle)
	}
	o.mu.Unlock()

	frame, err := o.source.Frame(ctx)
	if err != nil {
		return ScanResult{}, err
	}

	rectTimer := common.NewNamedTimer("rectify")
	encoded, err := o.rectifier.Apply(frame)
	rectTimer.Stop()
	if err != nil {
		// Even the raw-frame fallback failed to encode; proceed with no
		// preview so the pass still reaches the form.
		slog.Warn("rectification produced no image", "error", err)
		encoded = nil
	}

	var lines []string
	recTimer := common.NewNamedTimer("recognize")
	if encoded != nil {
		lines, err = o.rec.Recognize(ctx, encoded)
		if err != nil {
			slog.Warn("recognition failed, treating as empty text", "error", err)
			lines = nil
		}
	}
	recTimer.Stop()

	parsed := fields.Parse(lines)
	result := ScanResult{
		Fields:            parsed,
		AgeRange:          fields.RangeFromDOB(parsed.DOB, o.now()),
		Lines:             lines,
		Preview:           encoded,
		RectifyDuration:   rectTimer.Duration(),
		RecognizeDuration: recTimer.Duration(),
	}

	slog.Debug("scan pass complete",
		"rectify", rectTimer.Duration(),
		"recognize", recTimer.Duration(),
		"lines", len(lines),
		"dni", parsed.DNI != "",
		"dob", parsed.DOB != "")

	o.form.Populate(result)
	return result, nil
}

// StartAutoScan begins periodic passes. The first pass fires one interval
// after the call, and each subsequent pass one interval after the previous
// pass finished. Calling it while already auto-scanning is a no-op.
func (o *Orchestrator) StartAutoScan(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	switch o.state {
	case StateStopped:
		return ErrStopped
	case StateAutoScanning:
		return nil
	}
	o.state = StateAutoScanning
	o.gen++
	o.armLocked(ctx, o.gen)
	slog.Info("auto-scan started", "interval", o.cfg.AutoScanInterval)
	return nil
}

// StopAutoScan cancels any pending pass and returns to idle. A pass already
// running completes; no new pass starts afterwards. Stopping before the
// first timer fires means zero passes ran.
func (o *Orchestrator) StopAutoScan() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.cancelAutoLocked()
	if o.state == StateAutoScanning {
		o.state = StateIdle
		slog.Info("auto-scan stopped")
	}
}

// Close stops all activity and releases the frame source. The orchestrator
// cannot be reused afterwards.
func (o *Orchestrator) Close() error {
	o.mu.Lock()
	o.cancelAutoLocked()
	o.state = StateStopped
	o.mu.Unlock()

	// Wait for an in-flight pass before closing the source under it.
	o.passMu.Lock()
	defer o.passMu.Unlock()
	return o.source.Close()
}

// armLocked schedules the next auto pass. Callers hold o.mu.
func (o *Orchestrator) armLocked(ctx context.Context, gen uint64) {
	o.autoTimer = time.AfterFunc(o.cfg.AutoScanInterval, func() {
		o.autoPass(ctx, gen)
	})
}

// cancelAutoLocked invalidates the pending timer and any fire already racing
// for the generation check. Callers hold o.mu.
func (o *Orchestrator) cancelAutoLocked() {
	if o.autoTimer != nil {
		o.autoTimer.Stop()
		o.autoTimer = nil
	}
	o.gen++
}

func (o *Orchestrator) autoPass(ctx context.Context, gen uint64) {
	o.mu.Lock()
	if o.state != StateAutoScanning || gen != o.gen {
		o.mu.Unlock()
		return
	}
	o.mu.Unlock()

	if _, err := o.ScanOnce(ctx); err != nil {
		if errors.Is(err, capture.ErrExhausted) || errors.Is(err, context.Canceled) ||
			errors.Is(err, context.DeadlineExceeded) || errors.Is(err, ErrStopped) {
			slog.Info("auto-scan ending", "reason", err)
			o.StopAutoScan()
			return
		}
		slog.Warn("auto-scan pass failed", "error", err)
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state == StateAutoScanning && gen == o.gen {
		o.armLocked(ctx, gen)
	}
}

func (o *Orchestrator) setStateIfScanning(next State) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state == StateScanning {
		o.state = next
	}
}
