// ABOUTME: Consistency checks over the Scanner contract
// ABOUTME: Flags dangling edges and edges not backed by a handle

package gc

import (
	"context"
	"log/slog"
)

// Check scans the arena without changing it and returns a
// *ConsistencyError describing edges that point outside the arena and
// slots with more in-edges than outstanding handles. Either finding means
// some Scanner reports a reference it does not hold through its own
// handle. Check returns nil when the graph is consistent.
func (a *Arena) Check() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.findings(a.buildEdges()); err != nil {
		return err
	}
	return nil
}

// findings must be called with a.mu held.
func (a *Arena) findings(g edgeGraph) *ConsistencyError {
	var overclaimed []Overclaim
	for i, s := range a.slots {
		if g.inEdges[i] > s.handles {
			overclaimed = append(overclaimed, Overclaim{
				Addr:    s.addr,
				InEdges: g.inEdges[i],
				Handles: s.handles,
			})
		}
	}
	if len(g.dangling) == 0 && len(overclaimed) == 0 {
		return nil
	}
	return &ConsistencyError{
		Dangling:    append([]DanglingEdge(nil), g.dangling...),
		Overclaimed: overclaimed,
	}
}

func (a *Arena) logFindings(err *ConsistencyError) {
	if err == nil {
		return
	}
	ctx := context.Background()
	for _, d := range err.Dangling {
		a.cfg.logger.LogAttrs(ctx, slog.LevelWarn, "dangling edge",
			slog.Uint64("from", uint64(d.From)),
			slog.Uint64("to", uint64(d.To)),
		)
	}
	for _, o := range err.Overclaimed {
		a.cfg.logger.LogAttrs(ctx, slog.LevelWarn, "edge not backed by a handle",
			slog.Uint64("addr", uint64(o.Addr)),
			slog.Int("in_edges", o.InEdges),
			slog.Int("handles", o.Handles),
		)
	}
}
