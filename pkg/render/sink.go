// Copyright (c) 2025, The resep Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package render

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Sink receives rendered output one line at a time.
type Sink interface {
	Print(line string)
}

// WriterSink writes each line to an io.Writer followed by a newline.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink returns a Sink backed by w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Print implements Sink. Write errors are ignored; a terminal that went away
// has nowhere to report them.
func (s *WriterSink) Print(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintln(s.w, line)
}

// BufferSink captures printed lines in memory.
type BufferSink struct {
	mu    sync.Mutex
	lines []string
}

// Print implements Sink.
func (s *BufferSink) Print(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, line)
}

// Lines returns a copy of the captured lines.
func (s *BufferSink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// String returns the captured output joined by newlines.
func (s *BufferSink) String() string {
	return strings.Join(s.Lines(), "\n")
}

// printBlock sends a multi-line block to the sink line by line.
func printBlock(sink Sink, block string) {
	for _, line := range strings.Split(strings.TrimRight(block, "\n"), "\n") {
		sink.Print(line)
	}
}
