package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/mii/format"
)

// counterValue sums every sample of the named counter whose labels include want.
func counterValue(t *testing.T, reg *prometheus.Registry, name string, want map[string]string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	var total float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	metric:
		for _, m := range mf.GetMetric() {
			labels := make(map[string]string)
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			for k, v := range want {
				if labels[k] != v {
					continue metric
				}
			}
			total += m.GetCounter().GetValue()
		}
	}

	return total
}

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := New(reg)

	rec.ObserveLoad(format.WiiPlaza, time.Now(), nil)
	rec.ObserveLoad(format.WiiPlaza, time.Now(), errors.New("boom"))
	rec.ObserveSlot(format.WiiPlaza, "valid")
	rec.ObserveSlot(format.WiiPlaza, "valid")
	rec.ObserveSlot(format.WiiPlaza, "empty")

	variant := format.WiiPlaza.String()
	require.InDelta(t, 1, counterValue(t, reg, "mii_database_loads_total", map[string]string{"variant": variant, "result": "ok"}), 0)
	require.InDelta(t, 1, counterValue(t, reg, "mii_database_loads_total", map[string]string{"variant": variant, "result": "error"}), 0)
	require.InDelta(t, 2, counterValue(t, reg, "mii_slots_decoded_total", map[string]string{"variant": variant, "state": "valid"}), 0)
	require.InDelta(t, 1, counterValue(t, reg, "mii_slots_decoded_total", map[string]string{"variant": variant, "state": "empty"}), 0)
}

func TestRecorder_NilIsNoOp(t *testing.T) {
	var rec *Recorder
	require.NotPanics(t, func() {
		rec.ObserveLoad(format.WiiUMaker, time.Now(), nil)
		rec.ObserveSlot(format.WiiUMaker, "valid")
	})
}
