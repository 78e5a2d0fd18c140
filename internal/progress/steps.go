package progress

// StepSink receives batched increments for an interactive step counter
// (typically a console bar).
type StepSink interface {
	Add(n int)
}

// desiredUpdates bounds how many times a Counter forwards to its sink
// over a full phase.
const desiredUpdates = 1500

// Counter batches raw unit counts so the sink sees at most roughly
// desiredUpdates increments regardless of total size. The increments
// forwarded between NewCounter and Finish sum exactly to the number of
// Step calls.
type Counter struct {
	sink    StepSink
	batch   int
	count   int
	emitted int
}

func NewCounter(sink StepSink, total int) *Counter {
	batch := total / desiredUpdates
	if batch < 1 {
		batch = 1
	}
	return &Counter{sink: sink, batch: batch}
}

func (c *Counter) Step() {
	c.count++
	if c.count%c.batch == 0 {
		if c.sink != nil {
			c.sink.Add(c.batch)
		}
		c.emitted += c.batch
	}
}

// Finish flushes the leftover partial batch.
func (c *Counter) Finish() {
	if rem := c.count - c.emitted; rem > 0 {
		if c.sink != nil {
			c.sink.Add(rem)
		}
		c.emitted = c.count
	}
}
