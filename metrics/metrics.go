// Package metrics records Prometheus counters for database loads.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/arloliu/mii/format"
)

// Recorder tracks load outcomes and per-slot decode states.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	LoadsTotal   *prometheus.CounterVec
	LoadDuration *prometheus.HistogramVec
	SlotsTotal   *prometheus.CounterVec
}

// New creates a Recorder with all metrics registered on reg.
// A nil reg registers on prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Recorder{
		LoadsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mii_database_loads_total",
			Help: "Total number of database loads by variant and result",
		}, []string{"variant", "result"}),
		LoadDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mii_database_load_duration_seconds",
			Help:    "Duration of database loads including decompression and decoding",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"variant"}),
		SlotsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mii_slots_decoded_total",
			Help: "Total number of database slots decoded by variant and state",
		}, []string{"variant", "state"}),
	}
}

// ObserveLoad records one load attempt.
// Call with time.Now() at the start of the load.
func (r *Recorder) ObserveLoad(v format.Variant, start time.Time, err error) {
	if r == nil {
		return
	}

	result := "ok"
	if err != nil {
		result = "error"
	}

	r.LoadsTotal.WithLabelValues(v.String(), result).Inc()
	r.LoadDuration.WithLabelValues(v.String()).Observe(time.Since(start).Seconds())
}

// ObserveSlot records the decode state of one slot.
func (r *Recorder) ObserveSlot(v format.Variant, state string) {
	if r == nil {
		return
	}

	r.SlotsTotal.WithLabelValues(v.String(), state).Inc()
}
