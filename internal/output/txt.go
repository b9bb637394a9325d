// Copyright (c) 2026 The recfmt Authors.
// SPDX-License-Identifier: MIT

package output

import (
	"strings"

	"github.com/recfmt/recfmtgo/internal/record"
)

// RenderTXT flattens the batch into a bare word list: every scalar field
// value of every record, split on whitespace, one token per line. Nils and
// composite values contribute nothing; so do whitespace-only strings. The
// result carries no headers and no per-record grouping.
func RenderTXT(rows []record.Row) string {
	var tokens []string
	for _, rec := range record.FlattenAll(rows) {
		for _, key := range rec.Keys() {
			value := rec.Value(key)
			if value == nil {
				continue
			}
			s, ok := scalarString(value)
			if !ok {
				continue
			}
			tokens = append(tokens, strings.Fields(s)...)
		}
	}
	return strings.Join(tokens, "\n")
}
