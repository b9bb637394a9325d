// Copyright (c) 2026 The recfmt Authors.
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recfmt/recfmtgo/internal/record"
)

func TestRenderJSONEnvelope(t *testing.T) {
	rows := []record.Row{
		record.Plain{Record: record.FromPairs("a", "one", "b", 2.0)},
		record.Plain{Record: record.FromPairs("a", "two", "b", 3.0)},
	}

	out, err := RenderJSON(rows, map[string]any{"x": 1}, nil)
	require.NoError(t, err)

	var parsed struct {
		Metadata map[string]any   `json:"metadata"`
		Data     []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))

	assert.Equal(t, float64(1), parsed.Metadata["x"])
	require.Len(t, parsed.Data, 2)
	assert.Equal(t, "one", parsed.Data[0]["a"])
	assert.Equal(t, 3.0, parsed.Data[1]["b"])
}

func TestRenderJSONIndent(t *testing.T) {
	rows := []record.Row{record.Plain{Record: record.FromPairs("a", 1)}}

	tests := []struct {
		name   string
		indent *int
		check  func(t *testing.T, out string)
	}{
		{
			name:   "default is 4-space pretty printing",
			indent: nil,
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "\n    \"metadata\"")
			},
		},
		{
			name:   "explicit width",
			indent: Indent(2),
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "\n  \"metadata\"")
			},
		},
		{
			name:   "compact is single line",
			indent: Compact(),
			check: func(t *testing.T, out string) {
				assert.NotContains(t, out, "\n")
				assert.Equal(t, `{"metadata":{},"data":[{"a":1}]}`, out)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := RenderJSON(rows, nil, tt.indent)
			require.NoError(t, err)
			tt.check(t, out)
		})
	}
}

func TestRenderJSONEmptyBatch(t *testing.T) {
	out, err := RenderJSON(nil, nil, Compact())
	require.NoError(t, err)
	// JSON always returns a well-formed envelope, even with no data.
	assert.Equal(t, `{"metadata":{},"data":[]}`, out)
}

func TestRenderJSONTime(t *testing.T) {
	rows := []record.Row{record.Plain{Record: record.FromPairs(
		"at", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC))}}

	out, err := RenderJSON(rows, nil, Compact())
	require.NoError(t, err)
	assert.Contains(t, out, `"at":"2024-03-15T10:30:00"`)
}

func TestRenderJSONRoundTrip(t *testing.T) {
	rows := []record.Row{
		record.Plain{Record: record.FromPairs("s", "text", "n", 1.5, "b", true, "z", nil)},
	}

	out, err := RenderJSON(rows, nil, nil)
	require.NoError(t, err)

	var parsed struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	require.Len(t, parsed.Data, 1)
	assert.Equal(t, map[string]any{"s": "text", "n": 1.5, "b": true, "z": nil}, parsed.Data[0])
}

func TestRenderJSONKeyOrder(t *testing.T) {
	rows := []record.Row{record.Plain{Record: record.FromPairs("zz", 1, "aa", 2, "mm", 3)}}

	out, err := RenderJSON(rows, nil, Compact())
	require.NoError(t, err)

	// Field order is insertion order, not lexical.
	zz := strings.Index(out, `"zz"`)
	aa := strings.Index(out, `"aa"`)
	mm := strings.Index(out, `"mm"`)
	assert.True(t, zz < aa && aa < mm, "unexpected key order in %s", out)
}

func TestRenderJSONFlattensCandidates(t *testing.T) {
	rows := []record.Row{record.ScoredCandidate{
		Base:             record.FromPairs("name", "Jane Doe"),
		OverallScore:     0.9,
		PrimaryMatchType: "exact",
		FieldMatches: []record.FieldMatch{
			{FieldName: "name", InputValue: "Jane Doe", DBValue: "Jane Doe",
				MatchType: "exact", Similarity: 1.0},
		},
	}}

	out, err := RenderJSON(rows, nil, Compact())
	require.NoError(t, err)

	var parsed struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	require.Len(t, parsed.Data, 1)

	flat := parsed.Data[0]
	assert.Equal(t, 0.9, flat["overall_score"])
	assert.Equal(t, "exact", flat["primary_match_type"])
	assert.Equal(t, 1.0, flat["name_similarity"])
	assert.Equal(t, "exact", flat["name_match_type"])
}

func TestRenderJSONSerializationError(t *testing.T) {
	rows := []record.Row{record.Plain{Record: record.FromPairs("bad", func() {})}}

	_, err := RenderJSON(rows, nil, nil)
	require.Error(t, err)

	var serr *record.SerializationError
	require.True(t, errors.As(err, &serr))
	assert.Contains(t, err.Error(), "func()")
}

func BenchmarkRenderJSON(b *testing.B) {
	rows := []record.Row{
		record.Plain{Record: record.FromPairs("name", "zebra", "count", 3.0)},
		record.Plain{Record: record.FromPairs("name", "alpha", "count", 1.0)},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = RenderJSON(rows, nil, Compact())
	}
}
