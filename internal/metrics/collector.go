// Package metrics exposes the contents of an argument registry as Prometheus
// metrics. Values are read from a registry snapshot at scrape time.
package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vk/getarg/internal/argreg"
)

var (
	flagsDesc = prometheus.NewDesc(
		"getarg_flags",
		"Number of distinct flag names recorded by the last parse",
		nil, nil,
	)
	occurrencesDesc = prometheus.NewDesc(
		"getarg_flag_occurrences",
		"Number of times each flag was passed",
		[]string{"flag"}, nil,
	)
)

// Collector implements prometheus.Collector over an argument registry.
type Collector struct {
	reg *argreg.Registry
}

// NewCollector returns a collector reading from reg.
func NewCollector(reg *argreg.Registry) *Collector {
	return &Collector{reg: reg}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- flagsDesc
	ch <- occurrencesDesc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	snap := c.reg.Snapshot()
	ch <- prometheus.MustNewConstMetric(flagsDesc, prometheus.GaugeValue, float64(len(snap)))

	// Label values must be valid UTF-8. Names that only differ in invalid
	// bytes share one series.
	occurrences := make(map[string]float64, len(snap))
	for name, values := range snap {
		occurrences[flagLabel(name)] += float64(len(values))
	}
	for label, count := range occurrences {
		m, err := prometheus.NewConstMetric(occurrencesDesc, prometheus.GaugeValue, count, label)
		if err != nil {
			m = prometheus.NewInvalidMetric(occurrencesDesc, err)
		}
		ch <- m
	}
}

// flagLabel turns a flag name into a label value.
func flagLabel(name string) string {
	return strings.ToValidUTF8(name, "\uFFFD")
}

// NewRegistry returns a dedicated Prometheus registry with a collector for reg.
func NewRegistry(reg *argreg.Registry) *prometheus.Registry {
	promReg := prometheus.NewRegistry()
	promReg.MustRegister(NewCollector(reg))
	return promReg
}
