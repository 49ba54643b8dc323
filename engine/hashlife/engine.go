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

package hashlife

import "github.com/newgrp/rust-game-of-life/board"

// Engine is the memoizing quadtree implementation of board.Board.
// Every node it ever builds is interned, so structurally identical
// regions of the universe — including regions that recur after a
// period of simulated time — share a single *node and a single
// advanced_center memo entry.
type Engine struct {
	table       *hashTable
	dead        *deadCache
	advanceMemo *memo

	root       *node
	generation uint64
}

// New returns an engine holding an empty (all-dead) board.
func New() *Engine {
	e := &Engine{}
	e.Clear()
	return e
}

// Clear resets the board to all-dead at generation 0. Per §4.4.1 the
// engine starts with a single dead leaf padded to level 3; since
// padding a dead leaf only ever produces more canonical-dead nodes,
// this is equivalent to, and implemented directly as, the interned
// level-3 dead node.
func (e *Engine) Clear() {
	e.table = newHashTable()
	e.dead = newDeadCache(e.table)
	e.advanceMemo = newMemo(e.table, e.dead)
	e.root = e.dead.at(3)
	e.generation = 0
}

// Set records a single cell's value, padding the root as needed so
// (x, y) lies inside the root's span, then rewriting O(level) nodes
// from the leaf up to the root.
func (e *Engine) Set(x, y int64, alive bool) {
	e.ensureSpans(x, y)
	e.root = e.changeValueAt(e.root, x, y, alive)
}

func (e *Engine) changeValueAt(n *node, x, y int64, alive bool) *node {
	if n.isLeaf() {
		return e.table.newLeaf(alive)
	}
	half := n.sideLength() / 2
	quarter := half / 2
	switch {
	case x >= 0 && y >= 0:
		return e.table.withComponents(e.changeValueAt(n.NE(), x-quarter, y-quarter, alive), n.NW(), n.SW(), n.SE())
	case x < 0 && y >= 0:
		return e.table.withComponents(n.NE(), e.changeValueAt(n.NW(), x+quarter, y-quarter, alive), n.SW(), n.SE())
	case x < 0 && y < 0:
		return e.table.withComponents(n.NE(), n.NW(), e.changeValueAt(n.SW(), x+quarter, y+quarter, alive), n.SE())
	default:
		return e.table.withComponents(n.NE(), n.NW(), n.SW(), e.changeValueAt(n.SE(), x-quarter, y+quarter, alive))
	}
}

// Value reports whether (x, y) is alive. Coordinates outside the
// root's current span are dead by definition; Value never errors.
func (e *Engine) Value(x, y int64) bool {
	half := e.root.sideLength() / 2
	if x < -half || x >= half || y < -half || y >= half {
		return false
	}
	return e.getValueAt(e.root, x, y)
}

func (e *Engine) getValueAt(n *node, x, y int64) bool {
	if n.isLeaf() {
		return n.alive
	}
	half := n.sideLength() / 2
	quarter := half / 2
	switch {
	case x >= 0 && y >= 0:
		return e.getValueAt(n.NE(), x-quarter, y-quarter)
	case x < 0 && y >= 0:
		return e.getValueAt(n.NW(), x+quarter, y-quarter)
	case x < 0 && y < 0:
		return e.getValueAt(n.SW(), x+quarter, y+quarter)
	default:
		return e.getValueAt(n.SE(), x-quarter, y+quarter)
	}
}

// CleanUp is a no-op: the quadtree carries no transient to-add/to-del
// state between generations the way the sparse engines do, so there
// is nothing to flush.
func (e *Engine) CleanUp() {}

// Generation returns the number of elapsed generations.
func (e *Engine) Generation() uint64 { return e.generation }

// Bounds returns the root's current span. This is a loose bound —
// the root always carries at least one ring of dead padding around
// any live content (two after an AdvanceBy) — not a tight bounding
// box of live cells.
func (e *Engine) Bounds() board.Bounds {
	half := e.root.sideLength() / 2
	return board.Bounds{XMin: -half, XMax: half - 1, YMin: -half, YMax: half - 1}
}

// AdvanceBy evolves the board by n generations. Per §4.4.4: while
// generations remain, each iteration advances by the largest amount a
// single operation can deliver — advanced_center's native
// 2^(root.level-2) step when n is at least that large, otherwise the
// tiled sub-native-step path — re-establishing the root invariant
// after every shrink.
func (e *Engine) AdvanceBy(n uint64) {
	for n > 0 {
		native := uint64(e.root.sideLength() / 4)
		if n >= native {
			e.root = e.advanceMemo.advancedCenter(e.root)
			e.generation += native
			n -= native
			e.restoreInvariant()
			continue
		}
		n -= e.advanceByLessThanNative(n)
		e.restoreInvariant()
	}
}

// LiveCells walks the quadtree, pruning canonical-dead subtrees, and
// returns the coordinates of every live cell.
//
// Recursion tracks each node's southwest corner rather than its
// center: a center-based offset would need to shift by a quarter of
// the node's side per step, which is fractional for a level-1 node
// (two children to a side). Corner tracking only ever adds an exact
// half-side, which is always a whole number down to the leaves.
func (e *Engine) LiveCells() []board.Coordinate {
	var out []board.Coordinate
	half := e.root.sideLength() / 2
	e.collectLiveCells(e.root, -half, -half, &out)
	return out
}

func (e *Engine) collectLiveCells(n *node, minX, minY int64, out *[]board.Coordinate) {
	if n == e.dead.at(n.level) {
		return
	}
	if n.isLeaf() {
		if n.alive {
			*out = append(*out, board.Coordinate{X: minX, Y: minY})
		}
		return
	}
	half := n.sideLength() / 2
	e.collectLiveCells(n.NE(), minX+half, minY+half, out)
	e.collectLiveCells(n.NW(), minX, minY+half, out)
	e.collectLiveCells(n.SW(), minX, minY, out)
	e.collectLiveCells(n.SE(), minX+half, minY, out)
}
