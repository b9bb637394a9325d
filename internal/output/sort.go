// Copyright (c) 2026 The recfmt Authors.
// SPDX-License-Identifier: MIT

package output

import (
	"sort"
	"strings"

	"github.com/recfmt/recfmtgo/internal/record"
)

// SortRows orders the batch in place for display by a comma-separated sort
// spec. Each key sorts ascending; a leading "-" flips it to descending.
// Numeric values compare numerically, everything else compares as
// case-insensitive strings. An empty spec leaves the batch untouched.
func SortRows(rows []record.Row, spec string) {
	if spec == "" {
		return
	}

	keys := strings.Split(spec, ",")

	sort.SliceStable(rows, func(i, j int) bool {
		ri, rj := rows[i].Flatten(), rows[j].Flatten()
		for _, key := range keys {
			desc := strings.HasPrefix(key, "-")
			k := strings.TrimPrefix(key, "-")

			c := compareValues(ri.Value(k), rj.Value(k))
			if c == 0 {
				continue
			}
			if desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}

// compareValues orders two field values: numbers numerically, nil first,
// and everything else by lowercase string form.
func compareValues(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}

	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}

	return strings.Compare(
		strings.ToLower(Stringify(a)),
		strings.ToLower(Stringify(b)))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
