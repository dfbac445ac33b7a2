package countup

import (
	"context"
	"sync"
	"time"

	"countup/internal/logging"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultDuration matches the landing page's stat counters.
	DefaultDuration = time.Second
	// DefaultFrameInterval approximates one display repaint at 60 Hz.
	DefaultFrameInterval = 16 * time.Millisecond
)

// Sink receives display text. It stands in for the element being written
// to; a sink whose element is gone should simply ignore the write. SetText
// must not call Cancel on the animation writing to it.
type Sink interface {
	SetText(text string)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(text string)

// SetText calls f(text).
func (f SinkFunc) SetText(text string) { f(text) }

// Options tune a headless animation.
type Options struct {
	Duration      time.Duration
	FrameInterval time.Duration
	// Clock overrides the time source used for elapsed time; ticks still
	// come from a real ticker.
	Clock Clock
}

func (o Options) withDefaults() Options {
	if o.Duration <= 0 {
		o.Duration = DefaultDuration
	}
	if o.FrameInterval <= 0 {
		o.FrameInterval = DefaultFrameInterval
	}
	if o.Clock == nil {
		o.Clock = SystemClock
	}
	return o
}

// Animation is a running count-up driven by a ticker. It owns a single
// goroutine that exits on completion, Cancel, or context cancellation.
type Animation struct {
	id   uuid.UUID
	seq  *Sequence
	sink Sink

	cancel context.CancelFunc
	done   chan struct{}

	// writeMu serializes sink writes with Cancel.
	writeMu sync.Mutex
	frames  int

	mu    sync.Mutex
	state State
	err   error
}

// Animate starts animating text into sink. A label that cannot animate is
// skipped: the sink is never written and the animation is done at once.
func Animate(ctx context.Context, sink Sink, text string, opts Options) *Animation {
	opts = opts.withDefaults()
	ctx, cancel := context.WithCancel(ctx)

	a := &Animation{
		id:     uuid.New(),
		seq:    NewSequence(text, opts.Duration, opts.Clock),
		sink:   sink,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	log := logging.Get(logging.CategoryAnimation).With("id", a.id.String(), "label", text)

	if a.seq.State() == StateSkipped {
		log.Debug("label not animatable, keeping static text")
		a.state = StateSkipped
		cancel()
		close(a.done)
		return a
	}

	a.state = StateRunning
	go a.run(ctx, opts.FrameInterval, log)
	return a
}

func (a *Animation) run(ctx context.Context, interval time.Duration, log *logging.Logger) {
	defer close(a.done)
	defer a.cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		more, err := a.step(ctx)
		if err != nil {
			a.finish(StateCancelled, err)
			log.Debug("cancelled after %d frames", a.frames)
			return
		}
		if !more {
			a.finish(StateComplete, nil)
			log.Debug("completed after %d frames", a.frames)
			return
		}

		select {
		case <-ctx.Done():
			a.finish(StateCancelled, ctx.Err())
			log.Debug("cancelled after %d frames", a.frames)
			return
		case <-ticker.C:
		}
	}
}

// step writes the next frame unless the context is already done. It holds
// writeMu so a write never lands after Cancel returns.
func (a *Animation) step(ctx context.Context) (bool, error) {
	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	if err := ctx.Err(); err != nil {
		return false, err
	}
	f, ok := a.seq.Next()
	if !ok {
		return false, nil
	}
	a.sink.SetText(f.Text)
	a.frames++
	return !f.Done, nil
}

func (a *Animation) finish(s State, err error) {
	a.mu.Lock()
	a.state = s
	a.err = err
	a.mu.Unlock()
}

// ID identifies the animation in logs.
func (a *Animation) ID() uuid.UUID { return a.id }

// Label returns the parsed label being animated.
func (a *Animation) Label() Label { return a.seq.Label() }

// State returns the current lifecycle state.
func (a *Animation) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Done is closed once the animation can no longer write to its sink.
func (a *Animation) Done() <-chan struct{} { return a.done }

// Cancel stops the animation. Once it returns the sink receives no further
// writes. Safe to call more than once and after completion.
func (a *Animation) Cancel() {
	a.writeMu.Lock()
	defer a.writeMu.Unlock()
	a.cancel()
}

// Wait blocks until the animation finishes and returns context.Canceled
// (or the context's error) if it was stopped early.
func (a *Animation) Wait() error {
	<-a.done
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.err
}

// Target pairs a label with the sink that displays it.
type Target struct {
	Text string
	Sink Sink
}

// AnimateAll runs independent animations for every target and waits for
// all of them. The first cancellation error is returned.
func AnimateAll(ctx context.Context, targets []Target, opts Options) error {
	timer := logging.StartTimer(logging.CategoryAnimation, "animate all")
	// finishing far past the duration means frames were starved
	defer timer.StopWithThreshold(2 * opts.withDefaults().Duration)

	logging.AnimationDebug("animating %d targets", len(targets))

	g, gctx := errgroup.WithContext(ctx)
	for _, t := range targets {
		g.Go(func() error {
			return Animate(gctx, t.Sink, t.Text, opts).Wait()
		})
	}
	if err := g.Wait(); err != nil {
		logging.Animation("animations stopped early: %v", err)
		return err
	}
	return nil
}
