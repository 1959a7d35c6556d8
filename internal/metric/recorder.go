package metric

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Recorder holds the counters refnav exposes on /metrics.
type Recorder struct {
	Registry      *prometheus.Registry
	PagesRendered *Counter
	NotFound      *Counter
}

// NewRecorder creates a private registry with the Go and process collectors
// plus the refnav counters.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return &Recorder{
		Registry: reg,
		PagesRendered: NewCounterWithRegistry(reg, "refnav_pages_rendered_total",
			"Reference pages rendered, by library and version.", "library", "version"),
		NotFound: NewCounterWithRegistry(reg, "refnav_not_found_total",
			"Reference requests that matched no library or entry.", "library"),
	}
}
