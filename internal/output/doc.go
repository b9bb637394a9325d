// Copyright (c) 2026 The recfmt Authors.
// SPDX-License-Identifier: MIT

// Package output renders record batches into their target representations:
// a metadata/data JSON envelope, CSV, TSV, YAML, a flat word-per-line text
// stream, and console tables. All renderers are stateless; only the table
// writer touches a caller-supplied stream.
package output
