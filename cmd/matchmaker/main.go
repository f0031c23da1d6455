// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "matchmaker",
		Usage: "Fairly place students in categories",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored output",
			},
		},
		Before: func(ctx *cli.Context) error {
			if ctx.Bool("no-color") {
				color.NoColor = true
			}
			return nil
		},
		Commands: []*cli.Command{
			matchCmd,
			validateCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
}

var matchCmd = &cli.Command{
	Name:    "match",
	Usage:   "Place the students of an input file",
	Aliases: []string{"m"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "input",
			Required: true,
			Usage:    "specify the input file (.json, .yaml)",
		},
		&cli.StringFlag{
			Name:     "output",
			Required: false,
			Usage:    "specify the output report.json",
		},
		&cli.BoolFlag{
			Name:  "multiple",
			Usage: "place students in every category they prefer",
		},
		&cli.BoolFlag{
			Name:  "fill-open",
			Usage: "put students left out in a random open category",
		},
		&cli.Uint64Flag{
			Name:  "seed",
			Usage: "specify the seed of the priority draw (random when unset)",
		},
		&cli.StringFlag{
			Name:     "metrics",
			Required: false,
			Usage:    "specify the output metrics file (prometheus text format)",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"vv"},
			Usage:   "trace every round",
		},
	},
	Action: func(ctx *cli.Context) error {
		opts := matchOptions{
			inputFile:   ctx.String("input"),
			outputFile:  ctx.String("output"),
			metricsFile: ctx.String("metrics"),
			verbose:     ctx.Bool("verbose"),
		}
		if ctx.IsSet("multiple") {
			multiple := ctx.Bool("multiple")
			opts.multiple = &multiple
		}
		if ctx.IsSet("fill-open") {
			fillOpen := ctx.Bool("fill-open")
			opts.fillOpen = &fillOpen
		}
		if ctx.IsSet("seed") {
			seed := ctx.Uint64("seed")
			opts.seed = &seed
		}
		if opts.inputFile == "" {
			return errors.New("invalid input")
		}
		return doMatch(ctx.Context, ctx.App.Writer, opts)
	},
}

var validateCmd = &cli.Command{
	Name:    "validate",
	Usage:   "Check an input file without matching",
	Aliases: []string{"v"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "input",
			Required: true,
			Usage:    "specify the input file (.json, .yaml)",
		},
	},
	Action: func(ctx *cli.Context) error {
		return doValidate(ctx.Context, ctx.App.Writer, ctx.String("input"))
	},
}
