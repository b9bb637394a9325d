// Copyright (c) 2026 The recfmt Authors.
// SPDX-License-Identifier: MIT

package version

// Version is overridden at build time via -ldflags.
var Version = "dev"
