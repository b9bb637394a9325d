// Copyright (c) 2026 The recfmt Authors.
// SPDX-License-Identifier: MIT

// docgen converts the markdown command docs under docs/commands into man
// pages under docs/man/share/man1. Run from the repo root (or pass -root).
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	md2man "github.com/cpuguy83/go-md2man/v2/md2man"
)

func main() {
	var repoRoot string
	var onlyIfChanged bool

	flag.StringVar(&repoRoot, "root", ".", "repo root (default current dir)")
	flag.BoolVar(&onlyIfChanged, "only-if-changed", true, "only write files if content changed")
	flag.Parse()

	commandsDir := filepath.Join(repoRoot, "docs", "commands")
	manOutDir := filepath.Join(repoRoot, "docs", "man", "share", "man1")

	if err := os.MkdirAll(manOutDir, 0o755); err != nil {
		fatalf("creating man output dir: %v", err)
	}

	entries, err := os.ReadDir(commandsDir)
	if err != nil {
		fatalf("reading commands dir %s: %v", commandsDir, err)
	}

	var processed int
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}

		name := strings.TrimSuffix(e.Name(), ".md")
		raw, err := os.ReadFile(filepath.Join(commandsDir, e.Name()))
		if err != nil {
			fatalf("reading %s: %v", e.Name(), err)
		}

		manBytes := md2man.Render(raw)
		manPath := filepath.Join(manOutDir, fmt.Sprintf("%s.1", name))
		if err := writeFileIfChanged(manPath, manBytes, onlyIfChanged); err != nil {
			fatalf("writing man page for %s: %v", name, err)
		}
		processed++
	}

	fmt.Printf("docgen: processed %d command doc(s)\n", processed)
}

func writeFileIfChanged(path string, content []byte, onlyIfChanged bool) error {
	if onlyIfChanged {
		if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, content) {
			return nil
		}
	}
	return os.WriteFile(path, content, 0o644)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "docgen: "+format+"\n", args...)
	os.Exit(1)
}
