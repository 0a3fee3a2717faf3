package recording

import (
	"encoding/base64"
	"errors"
	"sync"
	"time"
)

// State models the recorder lifecycle.
type State string

const (
	StateIdle      State = "idle"
	StateRecording State = "recording"
)

var (
	// ErrPermissionDenied means microphone access was refused. The session
	// stays idle and the message is surfaced inline.
	ErrPermissionDenied = errors.New("acceso al micrófono denegado")

	ErrAlreadyRecording = errors.New("recording already in progress")
	ErrNotRecording     = errors.New("no recording in progress")
)

// Payload is the result of a finished recording, in the same shape an
// uploaded audio file takes after encoding.
type Payload struct {
	Base64  string `json:"payload"`
	Bytes   int    `json:"bytes"`
	Seconds int    `json:"seconds"`
}

// Session accumulates audio chunks between Start and Stop. It is safe for the
// chunk producer and the UI side to touch it concurrently.
type Session struct {
	mu        sync.Mutex
	state     State
	startedAt time.Time
	chunks    [][]byte
}

func NewSession() *Session {
	return &Session{state: StateIdle}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start transitions idle→recording and allocates a fresh chunk sequence.
func (s *Session) Start(now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateRecording {
		return ErrAlreadyRecording
	}
	s.state = StateRecording
	s.startedAt = now
	s.chunks = nil
	return nil
}

// Append stores one captured chunk. Chunks arrive in delivery order; empty
// deliveries are ignored.
func (s *Session) Append(chunk []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateRecording {
		return ErrNotRecording
	}
	if len(chunk) == 0 {
		return nil
	}
	buf := make([]byte, len(chunk))
	copy(buf, chunk)
	s.chunks = append(s.chunks, buf)
	return nil
}

// Elapsed is the cosmetic whole-second counter shown while recording. It
// stops moving once the session leaves the recording state.
func (s *Session) Elapsed(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateRecording {
		return 0
	}
	sec := int(now.Sub(s.startedAt) / time.Second)
	if sec < 0 {
		return 0
	}
	return sec
}

// Stop transitions recording→idle, concatenates the accumulated chunks and
// returns them base64-encoded. With no captured chunks the payload is empty;
// submission validation rejects it downstream.
func (s *Session) Stop(now time.Time) (Payload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateRecording {
		return Payload{}, ErrNotRecording
	}
	total := 0
	for _, c := range s.chunks {
		total += len(c)
	}
	joined := make([]byte, 0, total)
	for _, c := range s.chunks {
		joined = append(joined, c...)
	}
	sec := int(now.Sub(s.startedAt) / time.Second)
	if sec < 0 {
		sec = 0
	}
	s.state = StateIdle
	s.chunks = nil

	p := Payload{Bytes: total, Seconds: sec}
	if total > 0 {
		p.Base64 = base64.StdEncoding.EncodeToString(joined)
	}
	return p, nil
}
