// Copyright (c) 2026 The recfmt Authors.
// SPDX-License-Identifier: MIT

package output

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recfmt/recfmtgo/internal/record"
)

func TestRenderTXT(t *testing.T) {
	tests := []struct {
		name string
		rows []record.Row
		want string
	}{
		{
			name: "empty batch",
			rows: nil,
			want: "",
		},
		{
			name: "splits values into tokens",
			rows: []record.Row{
				record.Plain{Record: record.FromPairs("a", "hello world", "b", 42)},
			},
			want: "hello\nworld\n42",
		},
		{
			name: "skips nil and composite values",
			rows: []record.Row{
				record.Plain{Record: record.FromPairs(
					"a", nil,
					"b", []any{"nested"},
					"c", map[string]any{"k": 1},
					"d", "kept")},
			},
			want: "kept",
		},
		{
			name: "whitespace-only values contribute nothing",
			rows: []record.Row{
				record.Plain{Record: record.FromPairs("a", "   ", "b", "one  two")},
			},
			want: "one\ntwo",
		},
		{
			name: "booleans coerce to words",
			rows: []record.Row{
				record.Plain{Record: record.FromPairs("ok", false)},
			},
			want: "false",
		},
		{
			name: "all records contribute in order",
			rows: []record.Row{
				record.Plain{Record: record.FromPairs("a", "first")},
				record.Plain{Record: record.FromPairs("a", "second third")},
			},
			want: "first\nsecond\nthird",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderTXT(tt.rows))
		})
	}
}

func TestRenderYAML(t *testing.T) {
	rows := []record.Row{
		record.Plain{Record: record.FromPairs("name", "alpha", "count", 2)},
	}

	out, err := RenderYAML(rows)
	require.NoError(t, err)
	assert.Equal(t, "- name: alpha\n  count: 2\n", out)

	empty, err := RenderYAML(nil)
	require.NoError(t, err)
	assert.Equal(t, "", empty)
}

func TestSortRows(t *testing.T) {
	testData := []record.Row{
		record.Plain{Record: record.FromPairs("name", "zebra", "count", 3.0)},
		record.Plain{Record: record.FromPairs("name", "alpha", "count", 1.0)},
		record.Plain{Record: record.FromPairs("name", "beta", "count", 2.0)},
	}

	tests := []struct {
		name      string
		spec      string
		wantOrder []string
	}{
		{
			name:      "ascending by name",
			spec:      "name",
			wantOrder: []string{"alpha", "beta", "zebra"},
		},
		{
			name:      "descending by name",
			spec:      "-name",
			wantOrder: []string{"zebra", "beta", "alpha"},
		},
		{
			name:      "ascending by count",
			spec:      "count",
			wantOrder: []string{"alpha", "beta", "zebra"},
		},
		{
			name:      "descending by count",
			spec:      "-count",
			wantOrder: []string{"zebra", "beta", "alpha"},
		},
		{
			name:      "multiple fields",
			spec:      "count,name",
			wantOrder: []string{"alpha", "beta", "zebra"},
		},
		{
			name:      "empty spec",
			spec:      "",
			wantOrder: []string{"zebra", "alpha", "beta"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := make([]record.Row, len(testData))
			copy(rows, testData)
			SortRows(rows, tt.spec)
			for i, expectedName := range tt.wantOrder {
				assert.Equal(t, expectedName, rows[i].Flatten().Value("name"), "at index %d", i)
			}
		})
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		emptyVal string
		want     string
	}{
		{
			name:  "string",
			value: "hello",
			want:  "hello",
		},
		{
			name:  "int",
			value: 42,
			want:  "42",
		},
		{
			name:  "float64 integral",
			value: 42.0,
			want:  "42",
		},
		{
			name:  "float64 with decimal",
			value: 42.7,
			want:  "42.7",
		},
		{
			name:  "bool false",
			value: false,
			want:  "false",
		},
		{
			name:  "zero int",
			value: 0,
			want:  "0",
		},
		{
			name:  "nil default",
			value: nil,
			want:  "",
		},
		{
			name:     "nil custom",
			value:    nil,
			emptyVal: "-",
			want:     "-",
		},
		{
			name:  "time",
			value: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
			want:  "2024-03-15T10:30:00",
		},
		{
			name:  "slice",
			value: []string{"a", "b"},
			want:  `["a","b"]`,
		},
		{
			name:  "map",
			value: map[string]int{"x": 1},
			want:  `{"x":1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			if tt.emptyVal != "" {
				got = Stringify(tt.value, tt.emptyVal)
			} else {
				got = Stringify(tt.value)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func BenchmarkSortRows(b *testing.B) {
	testData := []record.Row{
		record.Plain{Record: record.FromPairs("name", "zebra", "count", 3.0)},
		record.Plain{Record: record.FromPairs("name", "alpha", "count", 1.0)},
		record.Plain{Record: record.FromPairs("name", "beta", "count", 2.0)},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rows := make([]record.Row, len(testData))
		copy(rows, testData)
		SortRows(rows, "name")
	}
}
