package recording

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"
)

func TestSessionLifecycle(t *testing.T) {
	s := NewSession()
	if s.State() != StateIdle {
		t.Fatalf("new session state %q", s.State())
	}
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	if err := s.Start(start); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := s.Start(start); !errors.Is(err, ErrAlreadyRecording) {
		t.Fatalf("second start: %v", err)
	}
	if err := s.Append([]byte("abc")); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.Append([]byte("def")); err != nil {
		t.Fatalf("append: %v", err)
	}
	if got := s.Elapsed(start.Add(2500 * time.Millisecond)); got != 2 {
		t.Fatalf("elapsed %d, want 2", got)
	}

	p, err := s.Stop(start.Add(3 * time.Second))
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	if s.State() != StateIdle {
		t.Fatalf("state after stop %q", s.State())
	}
	decoded, err := base64.StdEncoding.DecodeString(p.Base64)
	if err != nil {
		t.Fatalf("payload base64: %v", err)
	}
	if string(decoded) != "abcdef" {
		t.Fatalf("joined chunks %q", decoded)
	}
	if p.Bytes != 6 || p.Seconds != 3 {
		t.Fatalf("payload meta %+v", p)
	}
	// The counter must stop moving the moment the session goes idle.
	if got := s.Elapsed(start.Add(time.Hour)); got != 0 {
		t.Fatalf("elapsed after stop %d", got)
	}
}

func TestImmediateStopWithoutChunks(t *testing.T) {
	s := NewSession()
	now := time.Now()
	if err := s.Start(now); err != nil {
		t.Fatalf("start: %v", err)
	}
	p, err := s.Stop(now)
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	if p.Base64 != "" || p.Bytes != 0 {
		t.Fatalf("empty recording must yield an empty payload, got %+v", p)
	}
}

func TestStopAndAppendWhileIdle(t *testing.T) {
	s := NewSession()
	if _, err := s.Stop(time.Now()); !errors.Is(err, ErrNotRecording) {
		t.Fatalf("stop while idle: %v", err)
	}
	if err := s.Append([]byte{1}); !errors.Is(err, ErrNotRecording) {
		t.Fatalf("append while idle: %v", err)
	}
}

type fakeStream struct {
	ch      chan []byte
	stopped bool
}

func (f *fakeStream) Chunks() <-chan []byte { return f.ch }

func (f *fakeStream) Stop() error {
	if !f.stopped {
		f.stopped = true
		close(f.ch)
	}
	return nil
}

type fakeCapture struct {
	denied bool
	stream *fakeStream
}

func (f *fakeCapture) Start(ctx context.Context) (AudioStream, error) {
	if f.denied {
		return nil, ErrPermissionDenied
	}
	return f.stream, nil
}

func TestControllerCapturesStream(t *testing.T) {
	stream := &fakeStream{ch: make(chan []byte, 4)}
	stream.ch <- []byte("uno")
	stream.ch <- []byte("dos")
	c := NewController(&fakeCapture{stream: stream})
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	p, err := c.Stop()
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	decoded, _ := base64.StdEncoding.DecodeString(p.Base64)
	if string(decoded) != "unodos" {
		t.Fatalf("captured %q", decoded)
	}
	if c.State() != StateIdle {
		t.Fatalf("controller state %q", c.State())
	}
}

func TestControllerPermissionDenied(t *testing.T) {
	c := NewController(&fakeCapture{denied: true})
	err := c.Start(context.Background())
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("want ErrPermissionDenied, got %v", err)
	}
	if c.State() != StateIdle {
		t.Fatalf("denied start must leave controller idle, state %q", c.State())
	}
}
