package progress

import "testing"

type captureSink struct {
	percents []float64
}

func (c *captureSink) Notify(percent float64, message string) {
	c.percents = append(c.percents, percent)
}

func TestPhaseEmitsOnlyPastThreshold(t *testing.T) {
	sink := &captureSink{}
	tr := NewTracker(sink)
	tr.Mark(11, "start")

	// 1000 units over a 49-point span: 0.049 per unit, so an emission at
	// most every 6 steps.
	p := tr.Phase(49, 1000)
	for i := 0; i < 1000; i++ {
		p.Step()
	}

	if len(sink.percents) < 2 {
		t.Fatalf("expected threshold emissions, got %v", sink.percents)
	}
	// Bounded volume: 49 points / 0.25 threshold ~= 196 emissions max,
	// far below the 1000 raw steps.
	if len(sink.percents) > 200 {
		t.Fatalf("emissions not coalesced: %d", len(sink.percents))
	}
	for i := 1; i < len(sink.percents); i++ {
		if sink.percents[i] < sink.percents[i-1] {
			t.Fatalf("percent decreased: %v", sink.percents)
		}
		if d := sink.percents[i] - sink.percents[i-1]; i > 1 && d < emitThreshold {
			t.Fatalf("emission %d below threshold delta: %v", i, d)
		}
	}
}

func TestPhaseZeroUnitsIsNoOp(t *testing.T) {
	sink := &captureSink{}
	tr := NewTracker(sink)
	tr.Mark(11, "")

	p := tr.Phase(49, 0)
	for i := 0; i < 10; i++ {
		p.Step()
	}

	if len(sink.percents) != 1 {
		t.Fatalf("zero-unit phase must not emit, got %v", sink.percents)
	}
}

func TestMarkNeverDecreases(t *testing.T) {
	sink := &captureSink{}
	tr := NewTracker(sink)
	tr.Mark(60, "")
	tr.Mark(11, "late mark must clamp up")

	if sink.percents[1] < sink.percents[0] {
		t.Fatalf("mark decreased: %v", sink.percents)
	}
}

func TestTrackerNilSink(t *testing.T) {
	tr := NewTracker(nil)
	tr.Mark(11, "")
	p := tr.Phase(49, 5)
	for i := 0; i < 5; i++ {
		p.Step()
	}
	tr.Mark(100, "")
}

type sumSink struct {
	total int
	calls int
}

func (s *sumSink) Add(n int) {
	s.total += n
	s.calls++
}

func TestCounterIncrementsSumToTotal(t *testing.T) {
	// Increments must sum exactly to the unit count for any total,
	// including totals smaller than, equal to, and far above the batch
	// boundary.
	totals := []int{0, 1, 2, 1499, 1500, 1501, 3000, 100000, 123457}
	for _, total := range totals {
		sink := &sumSink{}
		c := NewCounter(sink, total)
		for i := 0; i < total; i++ {
			c.Step()
		}
		c.Finish()
		if sink.total != total {
			t.Fatalf("total %d: increments sum to %d", total, sink.total)
		}
	}
}

func TestCounterBoundsSinkCalls(t *testing.T) {
	sink := &sumSink{}
	total := 1000000
	c := NewCounter(sink, total)
	for i := 0; i < total; i++ {
		c.Step()
	}
	c.Finish()
	if sink.total != total {
		t.Fatalf("increments sum to %d, want %d", sink.total, total)
	}
	// batch = total/1500, so roughly 1500 calls plus the remainder.
	if sink.calls > desiredUpdates+2 {
		t.Fatalf("sink called %d times, want <= %d", sink.calls, desiredUpdates+2)
	}
}

func TestCounterNilSink(t *testing.T) {
	c := NewCounter(nil, 10)
	for i := 0; i < 10; i++ {
		c.Step()
	}
	c.Finish()
}
