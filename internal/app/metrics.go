// SPDX-License-Identifier: MIT

package app

import (
	"github.com/prometheus/client_golang/prometheus"
)

// metrics are registered on a per-run registry, never the global one.
type metrics struct {
	registry      *prometheus.Registry
	reads         prometheus.Counter
	bases         prometheus.Counter
	kmers         prometheus.Gauge
	resizes       prometheus.Gauge
	contigs       *prometheus.GaugeVec
	phaseDuration *prometheus.GaugeVec
	n50           prometheus.Gauge
}

func newMetrics(runID string) *metrics {
	labels := prometheus.Labels{"run": runID}
	m := &metrics{
		registry: prometheus.NewRegistry(),
		reads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lvlasm", Name: "reads_total",
			Help: "Reads ingested into the graph.", ConstLabels: labels,
		}),
		bases: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lvlasm", Name: "bases_total",
			Help: "Bases ingested into the graph.", ConstLabels: labels,
		}),
		kmers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "lvlasm", Name: "kmers",
			Help: "Distinct canonical k-mers in the graph.", ConstLabels: labels,
		}),
		resizes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "lvlasm", Name: "table_resizes",
			Help: "Times the k-mer table grew.", ConstLabels: labels,
		}),
		contigs: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "lvlasm", Name: "contigs",
			Help: "Contigs after each assembly phase.", ConstLabels: labels,
		}, []string{"phase"}),
		phaseDuration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "lvlasm", Name: "phase_duration_seconds",
			Help: "Wall time of each assembly phase.", ConstLabels: labels,
		}, []string{"phase"}),
		n50: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "lvlasm", Name: "n50_bases",
			Help: "N50 of the final contigs.", ConstLabels: labels,
		}),
	}
	m.registry.MustRegister(m.reads, m.bases, m.kmers, m.resizes, m.contigs, m.phaseDuration, m.n50)
	return m
}

func (m *metrics) write(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
