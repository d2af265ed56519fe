package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// NewRegistry returns a registry carrying build, go runtime and process metrics.
// The extra collectors (the db pool stats, for instance) get constLabels attached.
func NewRegistry(constLabels prometheus.Labels, extra ...prometheus.Collector) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(collectors.WithGoCollectorRuntimeMetrics(collectors.MetricsGC)),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: "lifedash"}),
	)

	labeled := prometheus.WrapRegistererWith(constLabels, reg)
	for _, c := range extra {
		labeled.MustRegister(c)
	}
	return reg
}
