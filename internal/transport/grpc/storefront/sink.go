package storefront

import (
	"bytes"
	"errors"
	"sync"

	"github.com/murkotick/storefront-service/internal/app/storefront/domain"
)

// invoiceChunkSize bounds the payload of one streamed message.
const invoiceChunkSize = 32 * 1024

var errStreamSinkClosed = errors.New("response sink already closed")

// streamSink buffers the invoice and streams it only on Commit, so an
// aborted delivery sends nothing to the client.
type streamSink struct {
	mu     sync.Mutex
	stream InvoiceStream
	name   string
	buf    bytes.Buffer
	closed bool
}

func newStreamSink(stream InvoiceStream, orderID string) *streamSink {
	return &streamSink{stream: stream, name: domain.InvoiceName(orderID)}
}

func (s *streamSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, errStreamSinkClosed
	}
	return s.buf.Write(p)
}

func (s *streamSink) Commit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errStreamSinkClosed
	}
	s.closed = true

	data := s.buf.Bytes()
	first := true
	for first || len(data) > 0 {
		n := len(data)
		if n > invoiceChunkSize {
			n = invoiceChunkSize
		}
		chunk := &InvoiceChunk{Data: data[:n]}
		if first {
			chunk.Name = s.name
			chunk.ContentType = domain.InvoiceContentType
			first = false
		}
		if err := s.stream.Send(chunk); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

func (s *streamSink) Abort() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.buf.Reset()
	return nil
}
