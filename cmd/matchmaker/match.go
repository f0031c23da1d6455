// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"
	"k8s.io/klog/v2"

	"github.com/someonegg/matchmaker/roster"
)

type matchOptions struct {
	inputFile   string
	outputFile  string
	metricsFile string

	// nil keeps what the input file says
	multiple *bool
	fillOpen *bool
	seed     *uint64

	verbose bool
}

func doMatch(ctx context.Context, w io.Writer, opts matchOptions) error {
	setVerbose(opts.verbose)
	defer klog.Flush()

	in, err := roster.LoadInput(opts.inputFile)
	if err != nil {
		return fmt.Errorf("load input file failed: %w", err)
	}

	matcher := in.Matcher
	if matcher == nil {
		matcher = &roster.Matcher{}
	}
	if opts.multiple != nil {
		matcher.Multiple = *opts.multiple
	}
	if opts.fillOpen != nil {
		matcher.FillOpen = *opts.fillOpen
	}
	if opts.seed != nil {
		matcher.Seed = opts.seed
	}

	var registry *prometheus.Registry
	if opts.metricsFile != "" {
		registry = prometheus.NewRegistry()
		matcher.Metrics = roster.NewMetrics(registry)
	}

	report, err := matcher.Match(in)
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	printReport(w, report)

	if opts.outputFile != "" {
		if err := roster.WriteReport(opts.outputFile, report); err != nil {
			return fmt.Errorf("write report file failed: %w", err)
		}
	}

	if registry != nil {
		if err := roster.WriteMetrics(opts.metricsFile, registry); err != nil {
			return fmt.Errorf("write metrics file failed: %w", err)
		}
	}

	return nil
}

func doValidate(ctx context.Context, w io.Writer, inputFile string) error {
	in, err := roster.LoadInput(inputFile)
	if err != nil {
		return fmt.Errorf("load input file failed: %w", err)
	}

	if err := roster.Check(in); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	color.New(color.FgGreen).Fprintf(w, "%s is valid: %d categories, %d students\n",
		inputFile, len(in.Categories), len(in.Students))
	return nil
}

func setVerbose(verbose bool) {
	if !verbose {
		return
	}
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	_ = fs.Set("v", "4")
}

func printReport(w io.Writer, report *roster.Report) {
	var (
		title = color.New(color.Bold)
		full  = color.New(color.FgYellow)
		good  = color.New(color.FgGreen)
		bad   = color.New(color.FgRed)
	)

	fmt.Fprintf(w, "Run %s (mode: %s, seed: %d)\n\n", report.RunID, report.Mode, report.Seed)

	for _, assignment := range report.Categories {
		title.Fprintf(w, "%s:", assignment.Name)
		usage := fmt.Sprintf(" %d/%d", len(assignment.Students), assignment.Capacity)
		if len(assignment.Students) >= assignment.Capacity {
			full.Fprintln(w, usage)
		} else {
			fmt.Fprintln(w, usage)
		}
		for _, student := range assignment.Students {
			fmt.Fprintln(w, " -", student)
		}
	}
	fmt.Fprintln(w)

	if len(report.NotPlaceable) == 0 {
		good.Fprintln(w, "All students could be placed.")
		return
	}

	bad.Fprintln(w, "Not placeable:")
	for _, student := range report.NotPlaceable {
		fmt.Fprintln(w, " -", student)
	}
}
