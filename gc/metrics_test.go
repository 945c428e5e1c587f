package gc_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"github.com/tangzhangming/tracegc/gc"
)

func TestMetricsDescribeAndCollect(t *testing.T) {
	c := gc.New()
	_, err := c.AllocRoot(8)
	require.NoError(t, err)
	require.NoError(t, c.Collect())

	m := c.Metrics()

	descs := make(chan *prometheus.Desc, 16)
	m.Describe(descs)
	close(descs)
	count := 0
	for range descs {
		count++
	}
	require.Equal(t, 8, count)

	metrics := make(chan prometheus.Metric, 16)
	m.Collect(metrics)
	close(metrics)
	count = 0
	for range metrics {
		count++
	}
	require.Equal(t, 8, count)
}
