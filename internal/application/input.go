package application

import (
	"io"
	"sync"

	"github.com/bnema/asne/internal/ports"
	"github.com/rs/zerolog"
)

// ChildInput is the single writer to the child's stdin. Forwarded parent
// input and synthetic keystrokes are queued and written in arrival order, so
// a slow child never stalls the output relay. Write failures close the sink
// and later input is dropped silently.
type ChildInput struct {
	w      io.WriteCloser
	logger zerolog.Logger

	mu      sync.Mutex
	cond    *sync.Cond
	queue   [][]byte
	closing bool
	closed  bool
	done    chan struct{}
}

var _ ports.InputSink = (*ChildInput)(nil)

func NewChildInput(w io.WriteCloser, logger zerolog.Logger) *ChildInput {
	c := &ChildInput{w: w, logger: logger, done: make(chan struct{})}
	c.cond = sync.NewCond(&c.mu)
	go c.run()
	return c
}

func (c *ChildInput) Send(input string) {
	_, _ = c.Write([]byte(input))
}

func (c *ChildInput) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.closing {
		return len(p), nil
	}

	buf := make([]byte, len(p))
	copy(buf, p)
	c.queue = append(c.queue, buf)
	c.cond.Signal()

	return len(p), nil
}

// CloseWhenDrained closes the child's stdin once queued input is written.
func (c *ChildInput) CloseWhenDrained() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closing = true
	c.cond.Signal()
}

// Close discards pending input and closes the child's stdin immediately.
func (c *ChildInput) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.queue = nil
	c.cond.Signal()
	c.mu.Unlock()

	_ = c.w.Close()
}

// Done is closed when the writer goroutine exits.
func (c *ChildInput) Done() <-chan struct{} {
	return c.done
}

func (c *ChildInput) run() {
	defer close(c.done)

	for {
		c.mu.Lock()
		for len(c.queue) == 0 && !c.closing && !c.closed {
			c.cond.Wait()
		}
		if c.closed {
			c.mu.Unlock()
			return
		}
		if len(c.queue) == 0 {
			c.closed = true
			c.mu.Unlock()
			_ = c.w.Close()
			return
		}
		buf := c.queue[0]
		c.queue = c.queue[1:]
		c.mu.Unlock()

		if _, err := c.w.Write(buf); err != nil {
			c.logger.Trace().Err(err).Msg("child stdin closed")
			c.Close()
			return
		}
	}
}
