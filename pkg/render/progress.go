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

	"github.com/charmbracelet/bubbles/progress"

	"github.com/resepfinder/resep/pkg/defaults"
)

// Progress tracks how many items of a batch have been processed.
type Progress interface {
	// Advance marks one more item as processed.
	Advance()
}

// ProgressFactory creates a Progress for a batch of total items.
type ProgressFactory func(total int) Progress

// Bar is a Progress that prints a bubbles progress bar to a Sink after each
// step.
type Bar struct {
	sink  Sink
	label string
	total int
	done  int
	model progress.Model
}

// NewBar returns a Bar for total items.
func NewBar(sink Sink, label string, total int) *Bar {
	return &Bar{
		sink:  sink,
		label: label,
		total: total,
		model: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(defaults.ProgressWidth),
			progress.WithoutPercentage(),
		),
	}
}

// Advance implements Progress. Calls past total are ignored.
func (b *Bar) Advance() {
	if b.done >= b.total {
		return
	}
	b.done++
	b.sink.Print(fmt.Sprintf("%s %s %d/%d", b.label, b.model.ViewAs(b.Percent()), b.done, b.total))
}

// Done returns the number of processed items.
func (b *Bar) Done() int {
	return b.done
}

// Percent returns the completed fraction in [0, 1].
func (b *Bar) Percent() float64 {
	if b.total <= 0 {
		return 1
	}
	return float64(b.done) / float64(b.total)
}

// NoProgress discards progress updates.
type NoProgress struct{}

// Advance implements Progress.
func (NoProgress) Advance() {}
