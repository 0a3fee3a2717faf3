package recording

import (
	"context"
	"sync"
	"time"
)

// AudioStream is a live microphone stream. Chunks delivers captured blocks in
// order until Stop is called, after which the channel is closed.
type AudioStream interface {
	Chunks() <-chan []byte
	Stop() error
}

// AudioCapture opens microphone capture sessions. Implementations return
// ErrPermissionDenied when device access is refused.
type AudioCapture interface {
	Start(ctx context.Context) (AudioStream, error)
}

// Controller drives a Session from a device-backed AudioCapture. The HTTP
// handlers feed the Session directly from uploaded chunks; the controller
// serves embedders that own the microphone themselves.
type Controller struct {
	capture AudioCapture
	now     func() time.Time

	mu      sync.Mutex
	session *Session
	stream  AudioStream
	drained chan struct{}
}

func NewController(capture AudioCapture) *Controller {
	return &Controller{
		capture: capture,
		now:     time.Now,
		session: NewSession(),
	}
}

func (c *Controller) State() State { return c.session.State() }

func (c *Controller) Elapsed() int { return c.session.Elapsed(c.now()) }

// Start opens the device and begins accumulating chunks. On
// ErrPermissionDenied the controller stays idle.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session.State() == StateRecording {
		return ErrAlreadyRecording
	}
	stream, err := c.capture.Start(ctx)
	if err != nil {
		return err
	}
	if err := c.session.Start(c.now()); err != nil {
		stream.Stop()
		return err
	}
	c.stream = stream
	c.drained = make(chan struct{})
	go func(s AudioStream, done chan struct{}) {
		for chunk := range s.Chunks() {
			c.session.Append(chunk)
		}
		close(done)
	}(stream, c.drained)
	return nil
}

// Stop halts capture, waits for the stream to drain and returns the encoded
// payload. The device is released before the session closes so no chunk is
// appended after the state flips back to idle.
func (c *Controller) Stop() (Payload, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session.State() != StateRecording {
		return Payload{}, ErrNotRecording
	}
	if err := c.stream.Stop(); err != nil {
		return Payload{}, err
	}
	<-c.drained
	c.stream = nil
	return c.session.Stop(c.now())
}
