// Package progress converts raw per-unit iteration counts into bounded
// external notifications on two independent channels: a numeric
// percentage feed and an interactive step counter.
package progress

// Sink receives coalesced percentage notifications. Implementations are
// fire-and-forget; Notify must not block the generation sweep.
type Sink interface {
	Notify(percent float64, message string)
}

// Nop discards all notifications.
type Nop struct{}

func (Nop) Notify(percent float64, message string) {}

// emitThreshold is the minimum accumulated percentage delta between two
// emissions within a phase.
const emitThreshold = 0.25

// Tracker drives one run's percentage feed. Percent values passed to the
// sink are non-decreasing; 100 is reached only through a final Mark.
type Tracker struct {
	sink        Sink
	current     float64
	lastEmitted float64
}

func NewTracker(sink Sink) *Tracker {
	if sink == nil {
		sink = Nop{}
	}
	return &Tracker{sink: sink}
}

// Mark emits a fixed phase boundary unconditionally and resets the
// emission baseline to it.
func (t *Tracker) Mark(percent float64, message string) {
	if percent < t.current {
		percent = t.current
	}
	t.current = percent
	t.lastEmitted = percent
	t.sink.Notify(percent, message)
}

// Phase returns a stepper that advances the percentage by span/units per
// Step, emitting only when the accumulated delta since the last emission
// exceeds the threshold. A phase with zero units is a defined no-op: no
// increment is computed and Step never emits.
func (t *Tracker) Phase(span float64, units int) *Phase {
	p := &Phase{t: t}
	if units > 0 {
		p.inc = span / float64(units)
	}
	return p
}

type Phase struct {
	t   *Tracker
	inc float64
}

func (p *Phase) Step() {
	if p.inc == 0 {
		return
	}
	t := p.t
	t.current += p.inc
	if t.current-t.lastEmitted > emitThreshold {
		t.sink.Notify(t.current, "")
		t.lastEmitted = t.current
	}
}
