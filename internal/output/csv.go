// Copyright (c) 2026 The recfmt Authors.
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/recfmt/recfmtgo/internal/record"
)

// ExtraFieldError reports a row carrying a field that is absent from the
// header row. Misaligned columns are surfaced, never silently truncated.
type ExtraFieldError struct {
	Field string
}

func (e *ExtraFieldError) Error() string {
	return fmt.Sprintf("row field %q is not in the header", e.Field)
}

// RenderCSV emits a header row built from the first record's field order
// followed by one comma-delimited data row per record. Empty input yields
// an empty string.
func RenderCSV(rows []record.Row) (string, error) {
	return renderDelimited(rows, ',')
}

// RenderTSV is RenderCSV with a tab delimiter.
func RenderTSV(rows []record.Row) (string, error) {
	return renderDelimited(rows, '\t')
}

func renderDelimited(rows []record.Row, comma rune) (string, error) {
	if len(rows) == 0 {
		return "", nil
	}

	flat := record.FlattenAll(rows)

	header := flat[0].Keys()
	inHeader := make(map[string]bool, len(header))
	for _, key := range header {
		inHeader[key] = true
	}

	var buf strings.Builder
	w := csv.NewWriter(&buf)
	w.Comma = comma

	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, rec := range flat {
		for _, key := range rec.Keys() {
			if !inHeader[key] {
				return "", &ExtraFieldError{Field: key}
			}
		}

		// Missing header fields render as empty cells.
		row := make([]string, len(header))
		for i, key := range header {
			if v, ok := rec.Get(key); ok {
				row[i] = Stringify(v)
			}
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
