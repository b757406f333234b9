// ABOUTME: Metrics hooks for allocation and collection activity
// ABOUTME: Noop and atomic in-memory collectors

package gc

import (
	"sync/atomic"
	"time"
)

// MetricsCollector receives collector events. Implement it to export
// arena activity to a monitoring system. Methods are called with the
// arena lock held and must not call back into the arena.
type MetricsCollector interface {
	// RecordAllocate is called after each allocation.
	RecordAllocate()

	// RecordRelease is called when a handle is released by the host.
	RecordRelease()

	// RecordSweep is called after each sweep with its statistics.
	RecordSweep(stats SweepStats)
}

// NoopMetricsCollector discards all events.
type NoopMetricsCollector struct{}

// RecordAllocate implements MetricsCollector.
func (NoopMetricsCollector) RecordAllocate() {}

// RecordRelease implements MetricsCollector.
func (NoopMetricsCollector) RecordRelease() {}

// RecordSweep implements MetricsCollector.
func (NoopMetricsCollector) RecordSweep(SweepStats) {}

// BasicMetricsCollector keeps running totals in memory.
type BasicMetricsCollector struct {
	Allocations   atomic.Int64
	Releases      atomic.Int64
	Sweeps        atomic.Int64
	Evicted       atomic.Int64
	DanglingEdges atomic.Int64
	SweepNanos    atomic.Int64
}

// RecordAllocate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAllocate() {
	b.Allocations.Add(1)
}

// RecordRelease implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRelease() {
	b.Releases.Add(1)
}

// RecordSweep implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSweep(stats SweepStats) {
	b.Sweeps.Add(1)
	b.Evicted.Add(int64(stats.Evicted))
	b.DanglingEdges.Add(int64(stats.DanglingEdges))
	b.SweepNanos.Add(stats.Duration.Nanoseconds())
}

// AverageSweep returns the mean sweep duration, or 0 before the first sweep.
func (b *BasicMetricsCollector) AverageSweep() time.Duration {
	n := b.Sweeps.Load()
	if n == 0 {
		return 0
	}
	return time.Duration(b.SweepNanos.Load() / n)
}
