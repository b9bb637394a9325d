// Copyright (c) 2026 The recfmt Authors.
// SPDX-License-Identifier: MIT

// recfmtgo is the main package for the recfmt command line tool. It wires
// the CLI, delegates to internal packages, and serves as the entry point.
package main
