// Copyright (c) 2026 The recfmt Authors.
// SPDX-License-Identifier: MIT

// Package record defines the result-row data model shared by all output
// modes: an order-preserving field mapping and the two row variants
// (plain rows and scored match candidates) produced by upstream callers.
package record
