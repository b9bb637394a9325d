// Copyright (c) 2026 The recfmt Authors.
// SPDX-License-Identifier: MIT

// Package command wires the recfmt CLI: flag definitions, config-backed
// value sources, and the format action that feeds decoded rows into the
// output package. The formatter itself lives in internal/output; this
// package is the external caller that owns argument parsing and I/O.
package command
