// ABOUTME: Tests for arena configuration, metrics, and concurrent use
// ABOUTME: Exercises options and the arena-wide lock

package gc

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestOptions(t *testing.T) {
	a := New(WithInitialCapacity(64), WithLogger(nil), WithMetrics(nil))

	assert.Equal(t, 64, cap(a.slots))
	assert.NotNil(t, a.cfg.logger)
	assert.IsType(t, NoopMetricsCollector{}, a.cfg.metrics)
	assert.False(t, a.cfg.debugChecks)
}

func TestBasicMetricsCollector(t *testing.T) {
	m := &BasicMetricsCollector{}
	a := New(WithMetrics(m))
	assert.Zero(t, m.AverageSweep())

	keep := newNode(a, "keep")
	for i := 0; i < 4; i++ {
		newNode(a, "garbage").Release()
	}
	a.Sweep()
	a.Sweep()

	assert.Equal(t, int64(5), m.Allocations.Load())
	assert.Equal(t, int64(4), m.Releases.Load())
	assert.Equal(t, int64(2), m.Sweeps.Load())
	assert.Equal(t, int64(4), m.Evicted.Load())
	assert.Zero(t, m.DanglingEdges.Load())
	assert.True(t, keep.Alive())
}

type countingCollector struct {
	NoopMetricsCollector
	sweeps atomic.Int32
	last   SweepStats
}

func (c *countingCollector) RecordSweep(s SweepStats) {
	c.sweeps.Add(1)
	c.last = s
}

func TestNoopMetricsCollector(t *testing.T) {
	var c MetricsCollector = NoopMetricsCollector{}
	a := New(WithMetrics(c))
	newNode(a, "x").Release()
	assert.NotPanics(t, a.Sweep)
	assert.Equal(t, 0, a.AllocationCount())
}

func TestCustomMetricsCollector(t *testing.T) {
	c := &countingCollector{}
	a := New(WithMetrics(c))
	newNode(a, "x").Release()
	a.Sweep()

	assert.Equal(t, int32(1), c.sweeps.Load())
	assert.Equal(t, 1, c.last.Evicted)
}

func TestConcurrentUse(t *testing.T) {
	a := New()
	anchor := newNode(a, "anchor")

	var g errgroup.Group
	for w := 0; w < 8; w++ {
		g.Go(func() error {
			for i := 0; i < 200; i++ {
				h := newNode(a, fmt.Sprintf("w%d-%d", w, i))
				if err := anchor.Borrow(func(n *node) {}); err != nil {
					return err
				}
				v, err := h.Resolve()
				if err != nil {
					return err
				}
				if v.Value().name == "" {
					return fmt.Errorf("empty name for %d", h.Address())
				}
				v.Release()
				h.Release()
			}
			return nil
		})
	}
	g.Go(func() error {
		for i := 0; i < 50; i++ {
			a.Sweep()
		}
		return nil
	})
	require.NoError(t, g.Wait())

	a.Sweep()
	assert.Equal(t, 1, a.AllocationCount())
	assert.True(t, anchor.Alive())
	assert.NoError(t, a.Check())
}
