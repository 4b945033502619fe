// Package boxmetrics exports boxarena pool counters to Prometheus and
// OpenTelemetry.
//
// Both exporters read a Source on every scrape. A plain boxarena.Pool is not
// goroutine-safe, so pools scraped from another goroutine must be a
// SafePool or a ShardedPool.
package boxmetrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pavanmanishd/boxarena"
)

// Source is anything that can report pool metrics.
type Source interface {
	Metrics() boxarena.PoolMetrics
}

// Collector is a prometheus.Collector for one pool.
type Collector struct {
	src Source

	acquires *prometheus.Desc
	reuses   *prometheus.Desc
	allocs   *prometheus.Desc
	chunks   *prometheus.Desc
	releases *prometheus.Desc
	discards *prometheus.Desc
	free     *prometheus.Desc
}

// NewCollector creates a collector reporting src under the given namespace,
// labelled with pool=name.
func NewCollector(namespace, name string, src Source) *Collector {
	labels := prometheus.Labels{"pool": name}
	desc := func(metric, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "boxpool", metric), help, nil, labels)
	}
	return &Collector{
		src:      src,
		acquires: desc("acquires_total", "Total number of boxes handed out"),
		reuses:   desc("reuses_total", "Total number of acquires served from a free box"),
		allocs:   desc("allocs_total", "Total number of boxes created by the allocator"),
		chunks:   desc("chunks_total", "Total number of allocator calls"),
		releases: desc("releases_total", "Total number of boxes returned to the pool"),
		discards: desc("discards_total", "Total number of released boxes dropped because the pool was full"),
		free:     desc("free_boxes", "Number of free boxes currently held"),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.acquires
	ch <- c.reuses
	ch <- c.allocs
	ch <- c.chunks
	ch <- c.releases
	ch <- c.discards
	ch <- c.free
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	m := c.src.Metrics()
	ch <- prometheus.MustNewConstMetric(c.acquires, prometheus.CounterValue, float64(m.Acquires))
	ch <- prometheus.MustNewConstMetric(c.reuses, prometheus.CounterValue, float64(m.Reuses))
	ch <- prometheus.MustNewConstMetric(c.allocs, prometheus.CounterValue, float64(m.Allocs))
	ch <- prometheus.MustNewConstMetric(c.chunks, prometheus.CounterValue, float64(m.Chunks))
	ch <- prometheus.MustNewConstMetric(c.releases, prometheus.CounterValue, float64(m.Releases))
	ch <- prometheus.MustNewConstMetric(c.discards, prometheus.CounterValue, float64(m.Discards))
	ch <- prometheus.MustNewConstMetric(c.free, prometheus.GaugeValue, float64(m.Free))
}
