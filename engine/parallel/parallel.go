// Copyright (C) 2026 The rust-game-of-life Authors.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package parallel implements the same sparse-hash semantics as
// package sparse, sharding the key set across a fixed pool of worker
// goroutines. The caller must serialize its own calls into a single
// Engine; internally, AdvanceBy and CleanUp fan work out to N = 2 *
// runtime.NumCPU() workers and join before returning.
package parallel

import (
	"math/rand"
	"runtime"
	"sync"

	"github.com/newgrp/rust-game-of-life/board"
)

// Engine is the sharded sparse-hash board.
type Engine struct {
	cells      map[board.Coordinate]bool
	shards     []map[board.Coordinate]struct{}
	generation uint64
	bounds     board.Bounds
	pool       *workerPool
	mu         sync.Mutex // held by Clear, Set, Value and LiveCells; AdvanceBy and CleanUp do not take it
}

var _ board.Board = (*Engine)(nil)

// shardCount returns twice the reported logical CPU count, floored at 1.
func shardCount() int {
	n := runtime.NumCPU() * 2
	if n < 1 {
		n = 1
	}
	return n
}

// New returns an empty parallel engine with N = 2*runtime.NumCPU() shards.
func New() *Engine {
	e := &Engine{pool: newWorkerPool(shardCount())}
	e.Clear()
	return e
}

// Close releases the engine's worker goroutines. Not part of the
// Board contract; callers that construct many short-lived parallel
// engines should call it to avoid leaking goroutines.
func (e *Engine) Close() {
	e.pool.close()
}

func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cells = make(map[board.Coordinate]bool)
	e.shards = make([]map[board.Coordinate]struct{}, shardCount())
	for i := range e.shards {
		e.shards[i] = make(map[board.Coordinate]struct{})
	}
	e.generation = 0
	e.bounds = board.Bounds{}
}

// Set inserts directly into the cell map and assigns the key to a
// random shard. This is the only mutation path outside AdvanceBy/CleanUp.
func (e *Engine) Set(x, y int64, alive bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	c := board.Coordinate{X: x, Y: y}
	if _, ok := e.cells[c]; !ok {
		e.shards[rand.Intn(len(e.shards))][c] = struct{}{}
	}
	e.cells[c] = alive
}

func (e *Engine) Generation() uint64 { return e.generation }

func (e *Engine) Bounds() board.Bounds { return e.bounds }

func (e *Engine) Value(x, y int64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cells[board.Coordinate{X: x, Y: y}]
}

func (e *Engine) LiveCells() []board.Coordinate {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]board.Coordinate, 0, len(e.cells))
	for c, alive := range e.cells {
		if alive {
			out = append(out, c)
		}
	}
	return out
}

func (e *Engine) AdvanceBy(count uint64) {
	for i := uint64(0); i < count; i++ {
		e.step()
	}
}

// step fans out one task per shard, each taking a shallow snapshot of
// the whole cell map (safe to read concurrently: no mutator runs
// during the fan-out) and ownership of its shard's key set; each task
// returns a partial next-state map for its keys. The coordinator is
// the sole mutator between fan-outs, merging all partial maps back
// into the shared cell map before running clean_up.
func (e *Engine) step() {
	snapshot := e.cells
	partials := make([]map[board.Coordinate]bool, len(e.shards))
	tasks := make([]func(), len(e.shards))
	for i, shard := range e.shards {
		i, shard := i, shard
		tasks[i] = func() {
			partial := make(map[board.Coordinate]bool, len(shard))
			for c := range shard {
				live := 0
				for _, n := range board.Neighbors(c.X, c.Y) {
					if snapshot[n] {
						live++
					}
				}
				partial[c] = board.NextValue(snapshot[c], live)
			}
			partials[i] = partial
		}
	}
	e.pool.run(tasks)

	for _, partial := range partials {
		for c, v := range partial {
			e.cells[c] = v
		}
	}
	e.CleanUp()
	e.generation++
}

type cleanupResult struct {
	bounds board.Bounds
	set    bool
	toAdd  []board.Coordinate
	toDel  []board.Coordinate
}

// CleanUp fans out one task per shard; each returns a partial bounds,
// a to_add list (dead neighbors of its shard's live cells not yet in
// the map) and a to_del list (barren dead cells in its shard). The
// coordinator merges bounds via componentwise min/max, applies to_add
// (inserting new dead neighbors into the map and into a
// randomly-chosen shard) and to_del (removing cells from the map and
// their current shard).
func (e *Engine) CleanUp() {
	snapshot := e.cells
	results := make([]cleanupResult, len(e.shards))
	tasks := make([]func(), len(e.shards))
	for i, shard := range e.shards {
		i, shard := i, shard
		tasks[i] = func() {
			var res cleanupResult
			update := func(x, y int64) {
				if !res.set {
					res.bounds = board.Bounds{XMin: x, XMax: x, YMin: y, YMax: y}
					res.set = true
					return
				}
				res.bounds.Update(x, y)
			}
			for c := range shard {
				if snapshot[c] {
					update(c.X, c.Y)
					for _, n := range board.Neighbors(c.X, c.Y) {
						if _, ok := snapshot[n]; !ok {
							res.toAdd = append(res.toAdd, n)
						}
					}
					continue
				}
				barren := true
				for _, n := range board.Neighbors(c.X, c.Y) {
					if snapshot[n] {
						barren = false
						break
					}
				}
				if barren {
					res.toDel = append(res.toDel, c)
				} else {
					update(c.X, c.Y)
				}
			}
			results[i] = res
		}
	}
	e.pool.run(tasks)

	merged := board.Bounds{}
	first := true
	for _, res := range results {
		if !res.set {
			continue
		}
		if first {
			merged = res.bounds
			first = false
			continue
		}
		merged.Merge(res.bounds)
	}
	e.bounds = merged

	for _, res := range results {
		for _, c := range res.toAdd {
			if _, ok := e.cells[c]; !ok {
				e.cells[c] = false
				e.shards[rand.Intn(len(e.shards))][c] = struct{}{}
				if first {
					e.bounds = board.Bounds{XMin: c.X, XMax: c.X, YMin: c.Y, YMax: c.Y}
					first = false
				} else {
					e.bounds.Update(c.X, c.Y)
				}
			}
		}
	}
	for shardIdx, res := range results {
		for _, c := range res.toDel {
			delete(e.cells, c)
			delete(e.shards[shardIdx], c)
		}
	}
}
