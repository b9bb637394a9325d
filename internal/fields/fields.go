// Copyright (c) 2026 The recfmt Authors.
// SPDX-License-Identifier: MIT

// Package fields implements output column projection: which record fields
// appear in the rendering, in what order, and under what title.
package fields

import (
	"fmt"
	"strings"

	"github.com/recfmt/recfmtgo/internal/record"
)

// Field is one projected output column.
type Field struct {
	// The record field to extract.
	Key string
	// The key to use in the output. This is also the column title for table
	// output.
	OutputKey string
	// Should this Field appear in output or is it just intended for
	// filtering and sorting?
	Include bool
}

// FieldList is an ordered set of projected columns.
type FieldList []Field

// Set parses a comma-separated projection spec and appends the entries.
// Each entry is key[=title]; a leading "." keeps the field available to
// sorting and filtering but excludes it from output.
func (fl *FieldList) Set(spec string) error {
	for _, entry := range strings.Split(spec, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		include := true
		if strings.HasPrefix(entry, ".") {
			include = false
			entry = strings.TrimPrefix(entry, ".")
		}

		key, title, _ := strings.Cut(entry, "=")
		if key == "" {
			return fmt.Errorf("invalid field spec: %q", entry)
		}
		if title == "" {
			title = key
		}

		*fl = append(*fl, Field{Key: key, OutputKey: title, Include: include})
	}
	return nil
}

// Apply projects each row onto the listed columns, in list order, under
// their output keys. Fields absent from a record project to nil. An empty
// list is the identity projection.
func (fl FieldList) Apply(rows []record.Row) []record.Row {
	if len(fl) == 0 {
		return rows
	}

	projected := make([]record.Row, 0, len(rows))
	for _, row := range rows {
		rec := row.Flatten()
		out := record.New()
		for _, f := range fl {
			if !f.Include {
				continue
			}
			out.Set(f.OutputKey, rec.Value(f.Key))
		}
		projected = append(projected, record.Plain{Record: out})
	}
	return projected
}
