// Copyright (c) 2026 The recfmt Authors.
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/recfmt/recfmtgo/internal/record"
)

// Envelope is the JSON document shape: caller-supplied metadata plus the
// flattened rows under data.
type Envelope struct {
	Metadata map[string]any   `json:"metadata"`
	Data     []*record.Record `json:"data"`
}

// Indent returns a pointer to n for RenderJSON's indent argument.
func Indent(n int) *int {
	return &n
}

// Compact requests single-line JSON output.
func Compact() *int {
	return Indent(0)
}

// RenderJSON wraps the rows in a {"metadata": ..., "data": ...} envelope.
// A nil metadata mapping serializes as {}. Scored candidates are flattened
// first; time values become ISO-8601 strings. indent semantics: nil means
// the default 4-space pretty printing, an explicit indent <= 0 means compact
// single-line output. A value with no JSON representation aborts with a
// *record.SerializationError and no partial output.
func RenderJSON(rows []record.Row, metadata map[string]any, indent *int) (string, error) {
	if metadata == nil {
		metadata = map[string]any{}
	}

	env := Envelope{
		Metadata: metadata,
		Data:     record.FlattenAll(rows),
	}
	if env.Data == nil {
		env.Data = []*record.Record{}
	}

	width := 4
	if indent != nil {
		width = *indent
	}

	var (
		jsonBytes []byte
		err       error
	)
	if width <= 0 {
		jsonBytes, err = json.Marshal(env)
	} else {
		jsonBytes, err = json.MarshalIndent(env, "", strings.Repeat(" ", width))
	}
	if err != nil {
		return "", fmt.Errorf("render json: %w", err)
	}

	return string(jsonBytes), nil
}
