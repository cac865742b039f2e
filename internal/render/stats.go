package render

import "sync/atomic"

// Stats accumulates tile-level counters across a render: each worker bumps
// its counters directly with atomic adds, and snapshot reads a consistent
// copy once the errgroup has joined. This plays the same role the old
// job-pool metrics counters did for a heterogeneous task queue, narrowed
// to the three outcomes a tile can have.
type Stats struct {
	TilesFilled    atomic.Int64
	TilesRecursed  atomic.Int64
	TilesEvaluated atomic.Int64
}

// StatsSnapshot is a point-in-time, non-atomic copy of Stats suitable for
// logging or JSON encoding.
type StatsSnapshot struct {
	TilesFilled    int64
	TilesRecursed  int64
	TilesEvaluated int64
}

func (s *Stats) snapshot() StatsSnapshot {
	return StatsSnapshot{
		TilesFilled:    s.TilesFilled.Load(),
		TilesRecursed:  s.TilesRecursed.Load(),
		TilesEvaluated: s.TilesEvaluated.Load(),
	}
}
