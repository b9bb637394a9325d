// Copyright (c) 2026 The recfmt Authors.
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"

	"github.com/recfmt/recfmtgo/internal/config"
	"github.com/recfmt/recfmtgo/internal/record"
)

// noDataLine is what an empty batch writes to the table stream.
const noDataLine = "No data."

// candidateHeaders is the fixed console projection for scored candidates.
var candidateHeaders = []string{"name", "date_of_birth", "overall_score", "primary_match_type"}

// TableRenderer turns a header and pre-stringified rows into console text.
// Two implementations exist: GridRenderer draws an aligned grid and
// BasicRenderer emits tab-separated lines. The caller picks one at
// composition time.
type TableRenderer interface {
	Render(w io.Writer, headers []string, rows [][]string) error
}

// NewTableRenderer selects a renderer by style name ("grid" or "basic").
// An unrecognized style logs a warning and degrades to the basic renderer.
func NewTableRenderer(style string, color bool, titles bool) TableRenderer {
	switch style {
	case "grid", "":
		return &GridRenderer{Color: color, Titles: titles}
	case "basic":
		return &BasicRenderer{Titles: titles}
	default:
		log.Warnf("unknown table style %q, falling back to basic", style)
		return &BasicRenderer{Titles: titles}
	}
}

// WriteTable renders the batch as a console table on w. Empty input writes
// a single informational line. Scored candidates use the fixed 4-column
// name / date_of_birth / overall_score / primary_match_type projection;
// plain batches use the first record's field order as headers. The stream
// is assumed to be exclusively ours for the duration of the call.
func WriteTable(rows []record.Row, w io.Writer, tr TableRenderer) error {
	if w == nil {
		w = os.Stdout
	}

	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, noDataLine)
		return err
	}

	headers, cells := projectRows(rows)
	return tr.Render(w, headers, cells)
}

// projectRows builds the header set and the stringified cell grid. The
// first row decides the header shape; every row fills by header key lookup
// against its flattened record, so a stray variant in either direction gets
// its matching fields and empty cells for the rest.
func projectRows(rows []record.Row) ([]string, [][]string) {
	_, candidateBatch := rows[0].(record.ScoredCandidate)

	headers := candidateHeaders
	if !candidateBatch {
		headers = rows[0].Flatten().Keys()
	}

	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		line := make([]string, len(headers))
		if c, ok := row.(record.ScoredCandidate); ok && candidateBatch {
			line[0] = Stringify(c.Base.Value("name"))
			line[1] = Stringify(c.Base.Value("date_of_birth"))
			line[2] = Stringify(c.OverallScore)
			line[3] = c.PrimaryMatchType
		} else {
			rec := row.Flatten()
			for i, key := range headers {
				if v, ok := rec.Get(key); ok {
					line[i] = Stringify(v)
				}
			}
		}
		cells = append(cells, line)
	}

	return headers, cells
}

// GridRenderer draws an aligned grid with optional header titles, coloring
// and padding per the colors.* and padding config keys.
type GridRenderer struct {
	Color  bool
	Titles bool
}

func (g *GridRenderer) Render(w io.Writer, headers []string, rows [][]string) error {
	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if g.Color {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(lipgloss.Color(headerColor))
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(evenColor))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(oddColor))
	}

	pad, _ := config.GetInt("padding", 0)

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers().
		Rows(rows...)

	if g.Titles {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(headers...).BorderHeader(false)
	}

	_, err := fmt.Fprintln(w, t)
	return err
}

// BasicRenderer is the degraded fallback: a tab-separated header line
// followed by tab-joined values per row. Titles controls the header line,
// mirroring GridRenderer.
type BasicRenderer struct {
	Titles bool
}

func (b *BasicRenderer) Render(w io.Writer, headers []string, rows [][]string) error {
	if b.Titles {
		if _, err := fmt.Fprintln(w, strings.Join(headers, "\t")); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}

// getColors returns configured color values for grid rendering.
func getColors(key string) (header string, even string, odd string) {
	header, _ = config.GetString(fmt.Sprintf("%s.title", key), "#f6be00")
	even, _ = config.GetString(fmt.Sprintf("%s.even", key), "#ffffff")
	odd, _ = config.GetString(fmt.Sprintf("%s.odd", key), "#00c8f0")
	return
}
