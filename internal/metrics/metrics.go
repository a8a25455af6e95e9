// Package metrics records the outcomes of the search view's network
// operations and the sizes of its record sets.
//
// [Prometheus] keeps every collector in a private registry exposed through
// [Prometheus.Handler]. [Nop] discards everything and is used by tests and
// by the terminal front end.
package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels.
const (
	StatusOK       = "ok"
	StatusFailed   = "failed"
	StatusDeclined = "declined"
)

// Recorder is the metrics sink used by the view-model.
type Recorder interface {
	// LoadDone counts one finished load with the given outcome.
	LoadDone(status string)
	// DeleteDone counts one finished delete intent with the given outcome.
	DeleteDone(status string)
	// SetSetSizes publishes the current working and filtered set sizes.
	SetSetSizes(working, filtered int)
}

// Prometheus is a [Recorder] backed by client_golang collectors.
type Prometheus struct {
	reg *prometheus.Registry

	loadCounter   *prometheus.CounterVec // "records_load_total"
	deleteCounter *prometheus.CounterVec // "records_delete_total"
	workingSet    prometheus.Gauge       // "records_working_set_size"
	filteredSet   prometheus.Gauge       // "records_filtered_set_size"
}

// NewPrometheus registers all collectors in a fresh registry.
func NewPrometheus() (*Prometheus, error) {
	reg := prometheus.NewRegistry()

	p := &Prometheus{
		reg: reg,
		loadCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "records_load_total",
				Help: "Number of working set loads, partitioned by outcome.",
			},
			[]string{"status"},
		),
		deleteCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "records_delete_total",
				Help: "Number of delete intents, partitioned by outcome (ok, failed, declined).",
			},
			[]string{"status"},
		),
		workingSet: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "records_working_set_size",
			Help: "Size of the most recently changed working set.",
		}),
		filteredSet: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "records_filtered_set_size",
			Help: "Size of the most recently changed filtered set.",
		}),
	}

	for name, c := range map[string]prometheus.Collector{
		"load counter":   p.loadCounter,
		"delete counter": p.deleteCounter,
		"working set":    p.workingSet,
		"filtered set":   p.filteredSet,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: register %s: %w", name, err)
		}
	}

	return p, nil
}

func (p *Prometheus) LoadDone(status string) {
	p.loadCounter.WithLabelValues(status).Inc()
}

func (p *Prometheus) DeleteDone(status string) {
	p.deleteCounter.WithLabelValues(status).Inc()
}

func (p *Prometheus) SetSetSizes(working, filtered int) {
	p.workingSet.Set(float64(working))
	p.filteredSet.Set(float64(filtered))
}

// Handler serves the private registry in the Prometheus exposition format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.reg, promhttp.HandlerOpts{})
}

// Nop is a [Recorder] that discards everything.
type Nop struct{}

func (Nop) LoadDone(string)      {}
func (Nop) DeleteDone(string)    {}
func (Nop) SetSetSizes(int, int) {}
