package countup

import (
	"iter"
	"sync"
	"time"
)

// State is the lifecycle of a sequence or animation.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateComplete
	StateSkipped   // label cannot animate; nothing is ever yielded
	StateCancelled // host stopped before completion
)

var stateNames = [...]string{"idle", "running", "complete", "skipped", "cancelled"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Terminal reports whether no further frames can be produced.
func (s State) Terminal() bool {
	return s == StateComplete || s == StateSkipped || s == StateCancelled
}

// Clock is the time source a Sequence measures elapsed time against.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads wall-clock time.
var SystemClock Clock = systemClock{}

// SteppedClock advances by a fixed step on every reading. It makes
// sequences deterministic: frame n (from 0) is sampled at n*step.
type SteppedClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// MinStep is the smallest step a SteppedClock takes. A clock that never
// advances would keep a Sequence running forever.
const MinStep = time.Nanosecond

// NewSteppedClock returns a clock starting at an arbitrary fixed instant.
// Steps below MinStep are raised to MinStep.
func NewSteppedClock(step time.Duration) *SteppedClock {
	if step < MinStep {
		step = MinStep
	}
	return &SteppedClock{
		now:  time.Unix(0, 0),
		step: step,
	}
}

// Now returns the current instant, then advances by one step.
func (c *SteppedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

// Sequence lazily produces the frames of one label. It is finite and
// cannot be restarted: the clock starts on the first Next and once the
// final frame (the original text) has been yielded, Next reports false.
type Sequence struct {
	label    Label
	duration time.Duration
	clock    Clock

	start time.Time
	state State
	last  Frame
}

// NewSequence parses text and prepares its frames. A nil clock means
// SystemClock.
func NewSequence(text string, duration time.Duration, clock Clock) *Sequence {
	if clock == nil {
		clock = SystemClock
	}
	l, _ := ParseLabel(text)
	s := &Sequence{
		label:    l,
		duration: duration,
		clock:    clock,
	}
	if !l.Animatable() {
		s.state = StateSkipped
	}
	return s
}

// Label returns the parsed label.
func (s *Sequence) Label() Label { return s.label }

// State returns the current lifecycle state.
func (s *Sequence) State() State { return s.state }

// Last returns the most recent frame yielded.
func (s *Sequence) Last() Frame { return s.last }

// Next samples the clock and returns the frame for that instant.
func (s *Sequence) Next() (Frame, bool) {
	switch s.state {
	case StateIdle, StateRunning:
	default:
		return Frame{}, false
	}

	now := s.clock.Now()
	if s.state == StateIdle {
		s.start = now
		s.state = StateRunning
	}

	f := FrameAt(s.label, now.Sub(s.start), s.duration)
	if f.Value < s.last.Value {
		// clocks that step backwards must not make the count drop
		f.Value = s.last.Value
		f.Text = s.label.Format(f.Value)
	}
	if f.Done {
		s.state = StateComplete
	}
	s.last = f
	return f, true
}

// All yields the remaining frames.
func (s *Sequence) All() iter.Seq[Frame] {
	return func(yield func(Frame) bool) {
		for {
			f, ok := s.Next()
			if !ok || !yield(f) {
				return
			}
		}
	}
}

// Texts yields the remaining display strings.
func (s *Sequence) Texts() iter.Seq[string] {
	return func(yield func(string) bool) {
		for f := range s.All() {
			if !yield(f.Text) {
				return
			}
		}
	}
}
