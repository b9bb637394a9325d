// Copyright (c) 2026 The recfmt Authors.
// SPDX-License-Identifier: MIT

package record

import "fmt"

// Row is one result row handed to the formatter. There are exactly two
// variants — Plain and ScoredCandidate — and the producer decides which one
// to construct. Formatters dispatch on the variant and never sniff shapes.
type Row interface {
	// Flatten returns the row as a plain Record. Plain rows return their
	// underlying record; scored candidates expand their score and per-field
	// match provenance into flat fields.
	Flatten() *Record

	sealed()
}

// Plain wraps an ordinary result record.
type Plain struct {
	*Record
}

func (p Plain) Flatten() *Record { return p.Record }

func (Plain) sealed() {}

// FieldMatch is the per-field provenance of one matched attribute of a
// scored candidate.
type FieldMatch struct {
	FieldName  string
	InputValue any
	DBValue    any
	MatchType  string
	Similarity float64
	Details    string
}

// ScoredCandidate is a result record augmented with an overall match score,
// a primary match classification, and per-field match annotations.
type ScoredCandidate struct {
	Base             *Record
	OverallScore     float64
	PrimaryMatchType string
	FieldMatches     []FieldMatch
}

func (ScoredCandidate) sealed() {}

// Flatten expands the candidate into a plain record: the base fields first,
// then overall_score and primary_match_type, then the per-field annotations
// as <field>_input_value, <field>_db_value, <field>_match_type,
// <field>_similarity and, when non-empty, <field>_details.
func (c ScoredCandidate) Flatten() *Record {
	flat := New()
	if c.Base != nil {
		for _, key := range c.Base.Keys() {
			flat.Set(key, c.Base.Value(key))
		}
	}
	flat.Set("overall_score", c.OverallScore)
	flat.Set("primary_match_type", c.PrimaryMatchType)
	for _, fm := range c.FieldMatches {
		flat.Set(fmt.Sprintf("%s_input_value", fm.FieldName), fm.InputValue)
		flat.Set(fmt.Sprintf("%s_db_value", fm.FieldName), fm.DBValue)
		flat.Set(fmt.Sprintf("%s_match_type", fm.FieldName), fm.MatchType)
		flat.Set(fmt.Sprintf("%s_similarity", fm.FieldName), fm.Similarity)
		if fm.Details != "" {
			flat.Set(fmt.Sprintf("%s_details", fm.FieldName), fm.Details)
		}
	}
	return flat
}

// FlattenAll flattens every row in a batch, preserving order.
func FlattenAll(rows []Row) []*Record {
	flat := make([]*Record, len(rows))
	for i, row := range rows {
		flat[i] = row.Flatten()
	}
	return flat
}
