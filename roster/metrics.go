// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roster

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultMatched = "matched"
	resultInvalid = "invalid"
)

// Metrics records match runs. A nil *Metrics records nothing.
type Metrics struct {
	runs         *prometheus.CounterVec
	placements   prometheus.Counter
	notPlaceable prometheus.Counter
	openSpots    prometheus.Gauge
	duration     prometheus.Histogram
}

// NewMetrics creates the match metrics and registers them on registerer.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	m := &Metrics{
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "matchmaker_runs_total",
				Help: "Total number of match runs",
			},
			[]string{"mode", "result"},
		),
		placements: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "matchmaker_placements_total",
			Help: "Total number of students placed in a category",
		}),
		notPlaceable: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "matchmaker_not_placeable_total",
			Help: "Total number of students left without any category",
		}),
		openSpots: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "matchmaker_open_spots",
			Help: "Spots left open by the last match run",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "matchmaker_run_duration_seconds",
			Help:    "Time taken by a match run",
			Buckets: prometheus.DefBuckets,
		}),
	}

	registerer.MustRegister(m.runs, m.placements, m.notPlaceable, m.openSpots, m.duration)

	return m
}

func (m *Metrics) observe(report *Report, took time.Duration) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(report.Mode, resultMatched).Inc()
	m.placements.Add(float64(report.Summary.Placements))
	m.notPlaceable.Add(float64(report.Summary.NotPlaceableCount))
	m.openSpots.Set(float64(report.Summary.OpenSpots))
	m.duration.Observe(took.Seconds())
}

func (m *Metrics) observeFailure(mode string) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(mode, resultInvalid).Inc()
}

// WriteMetrics writes everything gathered by g to file in the text format.
func WriteMetrics(file string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(file, g)
}
