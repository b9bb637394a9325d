// Copyright (c) 2026 The recfmt Authors.
// SPDX-License-Identifier: MIT

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/recfmt/recfmtgo/internal/config"
)

// NewFormatFlags builds the flag set for the format action. String options
// with a config file counterpart read their fallback from recfmt.yaml via
// the altsrc value sources; the file was already loaded by the config
// package's own init.
func NewFormatFlags() []cli.Flag {
	cfg := config.Config
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output mode: json, yaml, csv, tsv, txt or table",
			Value:   "json",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("RECFMT_OUTPUT"),
				yaml.YAML("output", altsrc.StringSourcer(cfg.Source)),
			),
		},
		&cli.StringFlag{
			Name:  "indent",
			Usage: "JSON indent width; non-integer values fall back to the default",
			Value: "4",
		},
		&cli.BoolFlag{
			Name:        "compact",
			Usage:       "single-line JSON output",
			HideDefault: true,
		},
		&cli.StringSliceFlag{
			Name:    "metadata",
			Aliases: []string{"m"},
			Usage:   "metadata entry key=value for the JSON envelope (repeatable)",
		},
		&cli.BoolFlag{
			Name:        "candidates",
			Usage:       "decode input as scored match candidates",
			HideDefault: true,
		},
		&cli.StringFlag{
			Name:    "fields",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of fields to include, each key[=title]",
		},
		&cli.StringFlag{
			Name:  "filter",
			Usage: "filter expression(s) applied to the rows before rendering",
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated sort keys, prefix with - for descending",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("sort", altsrc.StringSourcer(cfg.Source)),
			),
		},
		&cli.BoolWithInverseFlag{
			Name:  "titles",
			Usage: "show column titles in table output",
			Value: true,
			Sources: cli.NewValueSourceChain(
				yaml.YAML("titles", altsrc.StringSourcer(cfg.Source)),
			),
		},
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored table output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("color", altsrc.StringSourcer(cfg.Source)),
			),
		},
		&cli.StringFlag{
			Name:  "table-style",
			Usage: "table renderer: grid or basic (default: grid on a terminal)",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("RECFMT_TABLE_STYLE"),
				yaml.YAML("table.style", altsrc.StringSourcer(cfg.Source)),
			),
		},
	}
}
