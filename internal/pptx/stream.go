package pptx

import (
	"io"
	"strings"
)

// Stream buffers the text of one output document and hands out the
// sequence ids used by its time nodes. A Stream is one document: ids are
// never shared between streams. It is not safe for concurrent use.
type Stream struct {
	buf    strings.Builder
	nextID int
}

// NewStream creates a stream whose first sequence id is base.
func NewStream(base int) *Stream {
	return &Stream{nextID: base}
}

// Print appends text to the document.
func (s *Stream) Print(text string) {
	s.buf.WriteString(text)
}

// NextSequenceID returns the next id and advances the counter.
func (s *Stream) NextSequenceID() int {
	id := s.nextID
	s.nextID++
	return id
}

// PeekSequenceID returns the id the next call to NextSequenceID will hand out.
func (s *Stream) PeekSequenceID() int {
	return s.nextID
}

func (s *Stream) String() string {
	return s.buf.String()
}

func (s *Stream) Len() int {
	return s.buf.Len()
}

// WriteTo writes the buffered document to w.
func (s *Stream) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.buf.String())
	return int64(n), err
}
