package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriterSink(&buf)
	s.Print("Resep")
	s.Print("")
	assert.Equal(t, "Resep\n\n", buf.String())
}

func TestBufferSink(t *testing.T) {
	s := &BufferSink{}
	s.Print("a")
	s.Print("b")

	lines := s.Lines()
	lines[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, s.Lines())
	assert.Equal(t, "a\nb", s.String())
}

func TestPrintBlock(t *testing.T) {
	s := &BufferSink{}
	printBlock(s, "x\ny\n")
	assert.Equal(t, []string{"x", "y"}, s.Lines())
}
