package boxmetrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Register reports src through observable instruments on meter, tagged with
// pool=name. Unregister the returned registration to stop reporting.
func Register(meter metric.Meter, name string, src Source) (metric.Registration, error) {
	counter := func(metricName, desc string) (metric.Int64ObservableCounter, error) {
		return meter.Int64ObservableCounter(metricName,
			metric.WithDescription(desc),
			metric.WithUnit("{box}"))
	}

	acquires, err := counter("boxarena.pool.acquires", "Boxes handed out by the pool")
	if err != nil {
		return nil, fmt.Errorf("boxmetrics: acquires counter: %w", err)
	}
	reuses, err := counter("boxarena.pool.reuses", "Acquires served from a free box")
	if err != nil {
		return nil, fmt.Errorf("boxmetrics: reuses counter: %w", err)
	}
	allocs, err := counter("boxarena.pool.allocs", "Boxes created by the allocator")
	if err != nil {
		return nil, fmt.Errorf("boxmetrics: allocs counter: %w", err)
	}
	chunks, err := counter("boxarena.pool.chunks", "Allocator calls made by the pool")
	if err != nil {
		return nil, fmt.Errorf("boxmetrics: chunks counter: %w", err)
	}
	releases, err := counter("boxarena.pool.releases", "Boxes returned to the pool")
	if err != nil {
		return nil, fmt.Errorf("boxmetrics: releases counter: %w", err)
	}
	discards, err := counter("boxarena.pool.discards", "Released boxes dropped because the pool was full")
	if err != nil {
		return nil, fmt.Errorf("boxmetrics: discards counter: %w", err)
	}
	free, err := meter.Int64ObservableGauge("boxarena.pool.free",
		metric.WithDescription("Free boxes currently held"),
		metric.WithUnit("{box}"))
	if err != nil {
		return nil, fmt.Errorf("boxmetrics: free gauge: %w", err)
	}

	attrs := metric.WithAttributes(attribute.String("pool", name))
	reg, err := meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		m := src.Metrics()
		o.ObserveInt64(acquires, int64(m.Acquires), attrs)
		o.ObserveInt64(reuses, int64(m.Reuses), attrs)
		o.ObserveInt64(allocs, int64(m.Allocs), attrs)
		o.ObserveInt64(chunks, int64(m.Chunks), attrs)
		o.ObserveInt64(releases, int64(m.Releases), attrs)
		o.ObserveInt64(discards, int64(m.Discards), attrs)
		o.ObserveInt64(free, int64(m.Free), attrs)
		return nil
	}, acquires, reuses, allocs, chunks, releases, discards, free)
	if err != nil {
		return nil, fmt.Errorf("boxmetrics: register callback: %w", err)
	}
	return reg, nil
}
