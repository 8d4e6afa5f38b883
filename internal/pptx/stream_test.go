package pptx

import (
	"bytes"
	"testing"
)

func TestStreamSequenceIDs(t *testing.T) {
	s := NewStream(1)

	prev := 0
	for i := 0; i < 10; i++ {
		id := s.NextSequenceID()
		if id <= prev {
			t.Fatalf("id %d not greater than previous %d", id, prev)
		}
		prev = id
	}

	if s.PeekSequenceID() != 11 {
		t.Errorf("Expected next id 11, got %d", s.PeekSequenceID())
	}
}

func TestStreamsAreIndependent(t *testing.T) {
	a := NewStream(1)
	b := NewStream(1)

	a.NextSequenceID()
	a.NextSequenceID()

	if got := b.NextSequenceID(); got != 1 {
		t.Errorf("Expected second stream to start at 1, got %d", got)
	}
}

func TestStreamPrint(t *testing.T) {
	s := NewStream(100)
	s.Print("<p:par>")
	s.Print("</p:par>")

	if s.String() != "<p:par></p:par>" {
		t.Errorf("Unexpected buffer: %s", s.String())
	}
	if s.Len() != len("<p:par></p:par>") {
		t.Errorf("Unexpected length %d", s.Len())
	}

	var out bytes.Buffer
	n, err := s.WriteTo(&out)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if n != int64(s.Len()) || out.String() != s.String() {
		t.Errorf("WriteTo wrote %d bytes: %q", n, out.String())
	}
}
