// Copyright (c) 2026 The recfmt Authors.
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/recfmt/recfmtgo/internal/record"
)

// RenderYAML emits the batch as a YAML list of mappings, one per record,
// with field order preserved. Empty input yields an empty string.
func RenderYAML(rows []record.Row) (string, error) {
	if len(rows) == 0 {
		return "", nil
	}

	docs := make([]yaml.MapSlice, 0, len(rows))
	for _, rec := range record.FlattenAll(rows) {
		ms := make(yaml.MapSlice, 0, rec.Len())
		for _, key := range rec.Keys() {
			ms = append(ms, yaml.MapItem{Key: key, Value: yamlValue(rec.Value(key))})
		}
		docs = append(docs, ms)
	}

	yamlBytes, err := yaml.Marshal(docs)
	if err != nil {
		return "", fmt.Errorf("render yaml: %w", err)
	}
	return string(yamlBytes), nil
}

func yamlValue(v any) any {
	if t, ok := v.(time.Time); ok {
		return record.FormatTime(t)
	}
	return v
}
