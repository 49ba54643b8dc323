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

import (
	"fmt"

	"github.com/newgrp/rust-game-of-life/board"
)

// memo is the advance-center memo table: a mapping from a node at
// level >= 2 to the centered half-side square of that node advanced
// by 2^(level-2) generations. Entries are a pure function of the key,
// so once computed they never need to be recomputed for the lifetime
// of the engine.
type memo struct {
	table *hashTable
	dead  *deadCache
	cache map[*node]*node
}

func newMemo(t *hashTable, d *deadCache) *memo {
	return &memo{table: t, dead: d, cache: make(map[*node]*node)}
}

// advancedCenter returns the node at level n.level-1 representing the
// centered half-side square of n advanced by 2^(n.level-2) generations.
// Fatal if n.level < 2.
func (m *memo) advancedCenter(n *node) *node {
	if out, ok := m.cache[n]; ok {
		return out
	}
	if n.level < 2 {
		panic(fmt.Sprintf("hashlife: advanced_center on node of level %d, want >= 2", n.level))
	}

	var out *node
	if n.level == 2 {
		out = m.advanceBaseCase(n)
	} else {
		out = m.advanceRecursive(n)
	}
	m.cache[n] = out
	return out
}

// advanceBaseCase handles a level-2 node: a 4x4 block of leaves. Each
// of the four center cells is evolved one generation from its eight
// Moore neighbors, all of which lie inside the 4x4 block.
func (m *memo) advanceBaseCase(n *node) *node {
	g := gridOf(n)
	next := func(col, row int) *node {
		live := 0
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				if g[row+2+dy][col+2+dx] {
					live++
				}
			}
		}
		return m.table.newLeaf(board.NextValue(g[row+2][col+2], live))
	}
	newNE := next(0, 0)
	newNW := next(-1, 0)
	newSW := next(-1, -1)
	newSE := next(0, -1)
	return m.table.withComponents(newNE, newNW, newSW, newSE)
}

// gridOf flattens a level-2 node (4x4 leaves) into a grid indexed
// g[row+2][col+2] for col, row in [-2, 1].
func gridOf(n *node) (g [4][4]bool) {
	ne, nw, sw, se := n.NE(), n.NW(), n.SW(), n.SE()

	g[3][2] = ne.NW().isAlive()
	g[3][3] = ne.NE().isAlive()
	g[2][2] = ne.SW().isAlive()
	g[2][3] = ne.SE().isAlive()

	g[3][0] = nw.NW().isAlive()
	g[3][1] = nw.NE().isAlive()
	g[2][0] = nw.SW().isAlive()
	g[2][1] = nw.SE().isAlive()

	g[1][0] = sw.NW().isAlive()
	g[1][1] = sw.NE().isAlive()
	g[0][0] = sw.SW().isAlive()
	g[0][1] = sw.SE().isAlive()

	g[1][2] = se.NW().isAlive()
	g[1][3] = se.NE().isAlive()
	g[0][2] = se.SW().isAlive()
	g[0][3] = se.SE().isAlive()
	return g
}

// advanceRecursive handles a level-L >= 3 node via the standard
// macrocell construction: the nine overlapping level-(L-1) regions of
// N are each advanced once (producing nine level-(L-2) results
// advanced by 2^(L-3) generations), four adjacent-quad composites of
// those results are formed and advanced again, and the four final
// level-(L-2) nodes compose the level-(L-1) answer advanced by
// 2^(L-3) + 2^(L-3) = 2^(L-2) generations.
func (m *memo) advanceRecursive(n *node) *node {
	nw, ne, sw, se := n.NW(), n.NE(), n.SW(), n.SE()

	regionNW := nw
	regionNE := ne
	regionSW := sw
	regionSE := se
	regionNC := m.horizontalForward(nw, ne)
	regionSC := m.horizontalForward(sw, se)
	regionCW := m.verticalForward(nw, sw)
	regionCE := m.verticalForward(ne, se)
	regionCC := m.centeredSquare(n)

	aNW := m.advancedCenter(regionNW)
	aNC := m.advancedCenter(regionNC)
	aNE := m.advancedCenter(regionNE)
	aCW := m.advancedCenter(regionCW)
	aCC := m.advancedCenter(regionCC)
	aCE := m.advancedCenter(regionCE)
	aSW := m.advancedCenter(regionSW)
	aSC := m.advancedCenter(regionSC)
	aSE := m.advancedCenter(regionSE)

	quadNW := m.table.withComponents(aNC, aNW, aCW, aCC)
	quadNE := m.table.withComponents(aNE, aNC, aCC, aCE)
	quadSW := m.table.withComponents(aCC, aCW, aSW, aSC)
	quadSE := m.table.withComponents(aCE, aCC, aSC, aSE)

	finalNE := m.advancedCenter(quadNE)
	finalNW := m.advancedCenter(quadNW)
	finalSW := m.advancedCenter(quadSW)
	finalSE := m.advancedCenter(quadSE)

	return m.table.withComponents(finalNE, finalNW, finalSW, finalSE)
}

// horizontalForward returns the L-1 node whose children are
// (e.NW, w.NE, w.SE, e.SW): the east half of w joined to the west
// half of e. Fatal if w and e disagree in level or are level 0.
func (m *memo) horizontalForward(w, e *node) *node {
	if w.level != e.level {
		panic(fmt.Sprintf("hashlife: horizontal_forward level mismatch: %d vs %d", w.level, e.level))
	}
	if w.level < 1 {
		panic("hashlife: horizontal_forward on level-0 nodes")
	}
	return m.table.withComponents(e.NW(), w.NE(), w.SE(), e.SW())
}

// verticalForward returns the L-1 node whose children are
// (n.SE, n.SW, s.NW, s.NE): the south half of n joined to the north
// half of s. Fatal if n and s disagree in level or are level 0.
func (m *memo) verticalForward(n, s *node) *node {
	if n.level != s.level {
		panic(fmt.Sprintf("hashlife: vertical_forward level mismatch: %d vs %d", n.level, s.level))
	}
	if n.level < 1 {
		panic("hashlife: vertical_forward on level-0 nodes")
	}
	return m.table.withComponents(n.SE(), n.SW(), s.NW(), s.NE())
}

// centeredSquare returns the L-1 node representing the centered
// half-side square of N, composed of the inner corners of N's four
// children. Fatal if N.level < 2.
func (m *memo) centeredSquare(n *node) *node {
	if n.level < 2 {
		panic(fmt.Sprintf("hashlife: centered_square on node of level %d, want >= 2", n.level))
	}
	return m.table.withComponents(n.NE().SW(), n.NW().SE(), n.SW().NE(), n.SE().NW())
}

// diagonalForward is centeredSquare generalized to four separate,
// diagonally-adjacent siblings instead of one node's own children: it
// returns the node straddling the shared corner of ne, nw, sw and se,
// built from each one's innermost corner. Fatal if the four disagree
// in level or are level 0.
func (m *memo) diagonalForward(ne, nw, sw, se *node) *node {
	if ne.level != nw.level || nw.level != sw.level || sw.level != se.level {
		panic("hashlife: diagonal_forward level mismatch")
	}
	if ne.level < 1 {
		panic("hashlife: diagonal_forward on level-0 nodes")
	}
	return m.table.withComponents(ne.SW(), nw.SE(), sw.NE(), se.NW())
}
