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
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/resepfinder/resep/pkg/defaults"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("2"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("6"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")).
			Width(defaults.TableLabelWidth)

	detailStyle = lipgloss.NewStyle().
			Width(defaults.TableDetailWidth)

	tableStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	separator = " │ "
)

// row is one label/detail pair of a table.
type row struct {
	label  string
	detail string
}

// table is a titled two-column table.
type table struct {
	title  string
	header row
	rows   []row
}

// String lays the table out with lipgloss. Detail text wider than the detail
// column is wrapped.
func (t table) String() string {
	width := defaults.TableLabelWidth + len([]rune(separator)) + defaults.TableDetailWidth

	lines := make([]string, 0, len(t.rows)*2+3)
	lines = append(lines,
		lipgloss.PlaceHorizontal(width, lipgloss.Center, titleStyle.Render(t.title)),
		joinRow(headerStyle.Copy().Width(defaults.TableLabelWidth).Render(t.header.label),
			headerStyle.Copy().Width(defaults.TableDetailWidth).Render(t.header.detail)),
		strings.Repeat("─", width),
	)
	for i, r := range t.rows {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, joinRow(labelStyle.Render(r.label), detailStyle.Render(r.detail)))
	}

	return tableStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func joinRow(label, detail string) string {
	height := lipgloss.Height(detail)
	if h := lipgloss.Height(label); h > height {
		height = h
	}
	sep := strings.TrimSuffix(strings.Repeat(separator+"\n", height), "\n")
	return lipgloss.JoinHorizontal(lipgloss.Top, label, sep, detail)
}
