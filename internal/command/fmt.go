// Copyright (c) 2026 The recfmt Authors.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"golang.org/x/term"

	"github.com/recfmt/recfmtgo/internal/fields"
	"github.com/recfmt/recfmtgo/internal/output"
	"github.com/recfmt/recfmtgo/internal/record"
	"github.com/urfave/cli/v3"
)

// FormatAction reads the input document, decodes it into rows, applies the
// display-side filter/sort/projection options, and renders the requested
// output mode to stdout.
func FormatAction(ctx context.Context, cmd *cli.Command) error {
	data, err := readInput(cmd)
	if err != nil {
		return err
	}

	// The producer decides the row variant, not the formatter.
	var rows []record.Row
	if cmd.Bool("candidates") {
		rows, err = record.CandidatesFromJSON(data)
	} else {
		rows, err = record.FromJSON(data)
	}
	if err != nil {
		return err
	}

	rows = output.FilterRows(rows, cmd.String("filter"))
	output.SortRows(rows, cmd.String("sort"))

	if spec := cmd.String("fields"); spec != "" {
		var fl fields.FieldList
		if err := fl.Set(spec); err != nil {
			return err
		}
		rows = fl.Apply(rows)
	}

	mode := cmd.String("output")
	log.Debugf("rendering %s rows as %s", humanize.Comma(int64(len(rows))), mode)

	switch mode {
	case "json":
		metadata, err := parseMetadata(cmd.StringSlice("metadata"))
		if err != nil {
			return err
		}
		rendered, err := output.RenderJSON(rows, metadata, indentOption(cmd))
		if err != nil {
			return err
		}
		fmt.Println(rendered)
	case "yaml":
		rendered, err := output.RenderYAML(rows)
		if err != nil {
			return err
		}
		fmt.Print(rendered)
	case "csv":
		rendered, err := output.RenderCSV(rows)
		if err != nil {
			return err
		}
		fmt.Print(rendered)
	case "tsv":
		rendered, err := output.RenderTSV(rows)
		if err != nil {
			return err
		}
		fmt.Print(rendered)
	case "txt":
		if rendered := output.RenderTXT(rows); rendered != "" {
			fmt.Println(rendered)
		}
	case "table":
		tr := output.NewTableRenderer(tableStyle(cmd), cmd.Bool("color"), cmd.Bool("titles"))
		return output.WriteTable(rows, os.Stdout, tr)
	default:
		return fmt.Errorf("unsupported output mode: %q", mode)
	}

	return nil
}

// readInput returns the contents of the file argument, or stdin when no
// argument was given.
func readInput(cmd *cli.Command) ([]byte, error) {
	if path := cmd.Args().First(); path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(os.Stdin)
}

// parseMetadata turns repeated key=value flags into the envelope mapping.
func parseMetadata(entries []string) (map[string]any, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	metadata := make(map[string]any, len(entries))
	for _, entry := range entries {
		key, value, found := strings.Cut(entry, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid metadata entry: %q", entry)
		}
		metadata[key] = value
	}
	return metadata, nil
}

// indentOption resolves --compact/--indent into the RenderJSON indent
// argument. A non-integer indent falls back to the default instead of
// failing.
func indentOption(cmd *cli.Command) *int {
	if cmd.Bool("compact") {
		return output.Compact()
	}

	raw := cmd.String("indent")
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Debugf("non-integer indent %q, using default", raw)
		return nil
	}
	return output.Indent(n)
}

// tableStyle picks the renderer style: the flag/config value when set,
// otherwise grid on a terminal and basic everywhere else.
func tableStyle(cmd *cli.Command) string {
	if style := cmd.String("table-style"); style != "" {
		return style
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return "grid"
	}
	return "basic"
}
