// Copyright (c) 2026 The recfmt Authors.
// SPDX-License-Identifier: MIT

package record

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// FromJSON decodes a JSON array of objects into Plain rows. Key order within
// each object follows the document, which is what makes headers and JSON
// output stable across a decode/render round trip.
func FromJSON(data []byte) ([]Row, error) {
	doc, err := parseArray(data)
	if err != nil {
		return nil, err
	}

	var rows []Row
	for i, obj := range doc {
		if !obj.IsObject() {
			return nil, fmt.Errorf("element %d is not an object", i)
		}
		rows = append(rows, Plain{objectToRecord(obj)})
	}
	return rows, nil
}

// CandidatesFromJSON decodes a JSON array of scored-candidate documents.
// Each element carries overall_score, primary_match_type, a base object and
// an optional field_matches array.
func CandidatesFromJSON(data []byte) ([]Row, error) {
	doc, err := parseArray(data)
	if err != nil {
		return nil, err
	}

	var rows []Row
	for i, obj := range doc {
		if !obj.IsObject() {
			return nil, fmt.Errorf("element %d is not an object", i)
		}

		c := ScoredCandidate{
			OverallScore:     obj.Get("overall_score").Float(),
			PrimaryMatchType: obj.Get("primary_match_type").String(),
			Base:             New(),
		}
		if base := obj.Get("base"); base.IsObject() {
			c.Base = objectToRecord(base)
		}

		obj.Get("field_matches").ForEach(func(_, fm gjson.Result) bool {
			c.FieldMatches = append(c.FieldMatches, FieldMatch{
				FieldName:  fm.Get("field_name").String(),
				InputValue: fm.Get("input_value").Value(),
				DBValue:    fm.Get("db_value").Value(),
				MatchType:  fm.Get("match_type").String(),
				Similarity: fm.Get("similarity_score").Float(),
				Details:    fm.Get("details").String(),
			})
			return true
		})

		rows = append(rows, c)
	}
	return rows, nil
}

func parseArray(data []byte) ([]gjson.Result, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("input is not valid JSON")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return nil, fmt.Errorf("input is not a JSON array")
	}
	return doc.Array(), nil
}

// objectToRecord copies a gjson object into a Record, keeping document key
// order via ForEach.
func objectToRecord(obj gjson.Result) *Record {
	rec := New()
	obj.ForEach(func(key, value gjson.Result) bool {
		rec.Set(key.String(), value.Value())
		return true
	})
	return rec
}
