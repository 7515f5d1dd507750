package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/trpycore/atomiccell/config"
	"github.com/trpycore/atomiccell/counter"
)

func TestCollector(t *testing.T) {
	counters := counter.NewAtomicCounters(config.Counters{Names: []string{"requests"}}, zap.NewNop())
	counters.Increment("requests", 3)
	counters.Decrement("errors", 2)

	c := NewCollector(counters, config.Prometheus{Namespace: "app", Subsystem: "stats"})

	expected := `
# HELP app_stats_value Current value of a named counter.
# TYPE app_stats_value gauge
app_stats_value{counter="errors"} -2
app_stats_value{counter="requests"} 3
`
	assert.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected), "app_stats_value"))

	// counters created after the collector are exported too
	counters.Set("late", 11)
	assert.Equal(t, 3, testutil.CollectAndCount(c, "app_stats_value"))
}

func TestRegister(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	counters := counter.NewAtomicCounters(config.Counters{InitialValue: 4, Names: []string{"a"}}, zap.NewNop())

	_, err := Register(reg, counters, config.New().Prometheus)
	require.NoError(t, err)

	expected := `
# HELP atomiccell_counter_value Current value of a named counter.
# TYPE atomiccell_counter_value gauge
atomiccell_counter_value{counter="a"} 4
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "atomiccell_counter_value"))

	_, err = Register(reg, counters, config.New().Prometheus)
	assert.Error(t, err, "same descriptor registered twice")
}
