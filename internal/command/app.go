// Copyright (c) 2026 The recfmt Authors.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"sort"

	"github.com/urfave/cli/v3"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	app := &cli.Command{
		Name:      "recfmt",
		Usage:     "format record query results",
		UsageText: `recfmt [options] [file]`,
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "recfmt version info",
				HideDefault: true,
			},
		}, NewFormatFlags()...),
		Action: FormatAction,
	}

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app, nil
}
