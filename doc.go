// Package boxarena recycles the storage of individually allocated values of
// a single type.
//
// # Overview
//
// Code that allocates many short-lived values of one type pays for a fresh
// allocation every time and leaves the garbage collector to reclaim each one.
// A Pool keeps the storage of released values and fills it again on the next
// Acquire. This is particularly useful for:
//
//   - Hot paths that box one value per message or request
//   - Large fixed-size values (buffers, frames, records)
//   - Code already built around one-owner heap values
//
// # Basic Usage
//
//	p := boxarena.New[Frame]() // No allocation until first use
//	defer p.Close()
//
//	// Instead of f := &Frame{...}
//	b := p.Acquire(Frame{Seq: 1})
//	b.Value().Seq++
//
//	// Instead of dropping the last reference
//	p.Release(b)
//
// Acquire after Release reuses the released storage without allocating.
// Released boxes panic on use, and releasing a box twice panics. After Close,
// Acquire panics, while boxes still out are torn down and discarded on Release.
//
// # Teardown
//
// Release runs the value's teardown exactly once. A value whose pointer
// implements Dropper has Drop called; WithDrop installs an explicit hook
// instead. Unbox moves the value out without teardown. Either way the
// storage is reset to the zero value before it is kept for reuse.
//
// # Thread Safety
//
// The basic Pool type is not thread-safe. For concurrent access, use SafePool
// or ShardedPool:
//
//	sp := boxarena.NewSafePool[Frame]()
//	b := sp.Acquire(Frame{})
//	sp.Release(b)
//
// # Growth
//
// A pool grows without bound by default: every released box is kept.
// WithMaxFree caps the number of free boxes; surplus releases are torn down
// and left to the collector. Resize and Trim adjust the free count directly,
// and NewWithCapacity pre-reserves boxes in a single allocation.
//
// # Metrics and Monitoring
//
// Every pool counts acquires, reuses, allocations and releases:
//
//	m := p.Metrics()
//	fmt.Printf("Hit rate: %.2f%%\n", m.HitRate()*100)
//	fmt.Printf("Free boxes: %d\n", m.Free)
//
// Package boxmetrics exports the same counters to Prometheus and
// OpenTelemetry.
package boxarena
