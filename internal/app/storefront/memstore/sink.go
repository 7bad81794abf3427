package memstore

import (
	"bytes"
	"errors"
	"sync"

	"github.com/murkotick/storefront-service/internal/app/storefront/contracts"
)

var errSinkClosed = errors.New("memstore: sink already closed")

// BufferSink is a contracts.Sink that keeps everything in memory. Bytes
// becomes visible only after a successful Commit.
type BufferSink struct {
	mu        sync.Mutex
	buf       bytes.Buffer
	committed []byte
	done      bool
	closed    bool
	aborted   bool

	WriteErr  error
	CommitErr error

	onCommit func([]byte)
}

func NewBufferSink() *BufferSink {
	return &BufferSink{}
}

func (s *BufferSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, errSinkClosed
	}
	if s.WriteErr != nil {
		return 0, s.WriteErr
	}
	return s.buf.Write(p)
}

func (s *BufferSink) Commit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errSinkClosed
	}
	if s.CommitErr != nil {
		return s.CommitErr
	}
	s.closed = true
	s.done = true
	s.committed = append([]byte(nil), s.buf.Bytes()...)
	if s.onCommit != nil {
		s.onCommit(s.committed)
	}
	return nil
}

func (s *BufferSink) Abort() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed && !s.aborted {
		// Abort after Commit is a no-op.
		return nil
	}
	s.closed = true
	s.aborted = true
	s.buf.Reset()
	return nil
}

// Bytes returns the committed content, or nil before Commit.
func (s *BufferSink) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.committed
}

func (s *BufferSink) Committed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}

func (s *BufferSink) Aborted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.aborted
}

var _ contracts.Sink = (*BufferSink)(nil)
