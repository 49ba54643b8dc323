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

// Package sparse implements the sequential reference Life engine: a
// map from coordinate to alive bit, covering every live cell and every
// dead cell adjacent to a live one.
package sparse

import "github.com/newgrp/rust-game-of-life/board"

// Engine is the sequential sparse-hash board. The zero value is not
// usable; construct with New.
type Engine struct {
	cells      map[board.Coordinate]bool
	generation uint64
	bounds     board.Bounds
}

var _ board.Board = (*Engine)(nil)

// New returns an empty sparse engine.
func New() *Engine {
	e := &Engine{}
	e.Clear()
	return e
}

func (e *Engine) Clear() {
	e.cells = make(map[board.Coordinate]bool)
	e.generation = 0
	e.bounds = board.Bounds{}
}

func (e *Engine) Set(x, y int64, alive bool) {
	e.cells[board.Coordinate{X: x, Y: y}] = alive
}

func (e *Engine) Generation() uint64 { return e.generation }

func (e *Engine) Bounds() board.Bounds { return e.bounds }

func (e *Engine) Value(x, y int64) bool {
	return e.cells[board.Coordinate{X: x, Y: y}]
}

func (e *Engine) LiveCells() []board.Coordinate {
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

// step computes one generation: every key in the map (alive or a dead
// candidate) gets its next value from its eight Moore neighbors, the
// map is replaced wholesale, clean_up restores the §3.2 invariant, and
// the generation counter advances by one.
func (e *Engine) step() {
	next := make(map[board.Coordinate]bool, len(e.cells))
	for c := range e.cells {
		live := 0
		for _, n := range board.Neighbors(c.X, c.Y) {
			if e.cells[n] {
				live++
			}
		}
		next[c] = board.NextValue(e.cells[c], live)
	}
	e.cells = next
	e.CleanUp()
	e.generation++
}

// CleanUp recomputes the bounding rectangle and enforces: every live
// cell has all eight neighbors present (inserting dead placeholders as
// needed); every dead cell with no live neighbor is removed. Additions
// and removals are computed before mutating so the pass never observes
// its own edits mid-iteration.
func (e *Engine) CleanUp() {
	e.bounds = board.Bounds{}
	first := true
	update := func(x, y int64) {
		if first {
			e.bounds = board.Bounds{XMin: x, XMax: x, YMin: y, YMax: y}
			first = false
			return
		}
		e.bounds.Update(x, y)
	}

	var toAdd, toDel []board.Coordinate
	for c, alive := range e.cells {
		if alive {
			update(c.X, c.Y)
			for _, n := range board.Neighbors(c.X, c.Y) {
				if _, ok := e.cells[n]; !ok {
					toAdd = append(toAdd, n)
				}
			}
			continue
		}
		barren := true
		for _, n := range board.Neighbors(c.X, c.Y) {
			if e.cells[n] {
				barren = false
				break
			}
		}
		if barren {
			toDel = append(toDel, c)
		} else {
			update(c.X, c.Y)
		}
	}
	for _, c := range toAdd {
		if _, ok := e.cells[c]; !ok {
			e.cells[c] = false
			update(c.X, c.Y)
		}
	}
	for _, c := range toDel {
		delete(e.cells, c)
	}
}
