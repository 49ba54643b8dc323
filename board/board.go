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

package board

import "golang.org/x/exp/slices"

// Board is the capability set every evolution engine provides. A
// driver selects one implementation at construction and thereafter
// only calls through this interface; the engines are interchangeable
// and yield identical live_cells enumerations for identical call
// sequences.
//
// Implementations: sparse (sequential), parallel (sharded worker
// pool), hashlife (hash-consed quadtree).
type Board interface {
	// Clear resets the board to empty, generation 0. Preserves the
	// engine's identity; an implementation may keep or discard any
	// interned state it holds.
	Clear()

	// Set writes the alive bit at (x, y). Engines accept any
	// coordinate representable by Coordinate.
	Set(x, y int64, alive bool)

	// CleanUp performs whatever bookkeeping makes subsequent queries
	// self-consistent. Sparse engines use this to materialize dead
	// neighbor placeholders and drop barren ones; hashlife is a no-op.
	CleanUp()

	// AdvanceBy advances the generation counter by exactly count
	// generations and computes the resulting board state.
	AdvanceBy(count uint64)

	// Generation returns the current generation counter.
	Generation() uint64

	// Bounds returns a rectangle containing every live cell. It may be
	// larger than the tight enclosing rectangle; callers must treat it
	// as a drawing extent, not as a claim about emptiness.
	Bounds() Bounds

	// Value reports the alive bit at (x, y). Coordinates outside the
	// representable region are reported dead, never an error.
	Value(x, y int64) bool

	// LiveCells returns every currently-alive coordinate. The slice is
	// unordered and need not be safe to request twice from the same
	// underlying snapshot in sequence — callers that need a stable
	// view should keep the first result.
	LiveCells() []Coordinate
}

// Neighbors returns the eight Moore-neighborhood coordinates of
// (x, y), in a fixed but otherwise unspecified order. Shared by every
// sparse-hash engine so both sequential and parallel implementations
// agree on adjacency.
func Neighbors(x, y int64) [8]Coordinate {
	return [8]Coordinate{
		{X: x + 1, Y: y},
		{X: x + 1, Y: y + 1},
		{X: x, Y: y + 1},
		{X: x - 1, Y: y + 1},
		{X: x - 1, Y: y},
		{X: x - 1, Y: y - 1},
		{X: x, Y: y - 1},
		{X: x + 1, Y: y - 1},
	}
}

// NextValue applies B3/S23 given the current value and its living
// neighbor count.
func NextValue(alive bool, liveNeighbors int) bool {
	return liveNeighbors == 3 || (liveNeighbors == 2 && alive)
}

// SortCoordinates orders cells in row-major (y, then x) order in
// place, giving callers a stable, reproducible ordering for diagnostic
// output and for comparing two LiveCells results irrespective of the
// unordered contract Board.LiveCells documents.
func SortCoordinates(cells []Coordinate) {
	slices.SortFunc(cells, func(a, b Coordinate) int {
		if a.Y != b.Y {
			return int(a.Y - b.Y)
		}
		return int(a.X - b.X)
	})
}
