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

import "math/bits"

// pad embeds the current root as the centered content of a new root
// one level taller. Each of the new root's four children is built
// from canonical-dead filler plus the correspondingly-positioned
// child of the old root placed at the sub-quadrant nearest the
// center, so the whole pattern stays centered as the universe
// doubles.
func (e *Engine) pad() {
	old := e.root
	filler := e.dead.at(old.level - 1)

	newNE := e.table.withComponents(filler, filler, old.NE(), filler)
	newNW := e.table.withComponents(filler, filler, filler, old.NW())
	newSW := e.table.withComponents(old.SW(), filler, filler, filler)
	newSE := e.table.withComponents(filler, old.SE(), filler, filler)

	e.root = e.table.withComponents(newNE, newNW, newSW, newSE)
}

// expandToFit grows the root until two rings of dead padding separate
// any live content from the root's own border, per §4.4.2: if the
// outer ring of twelve level-(root.level-2) border sub-nodes is not
// uniformly dead, pad twice; else if the next ring inward (the twelve
// level-(root.level-3) nodes around the central four) is not
// uniformly dead, pad once; else leave the root unchanged.
func (e *Engine) expandToFit() {
	root := e.root
	level := root.level

	outerRing := [12]*node{
		root.NW().NW(), root.NW().NE(), root.NE().NW(), root.NE().NE(),
		root.SW().SW(), root.SW().SE(), root.SE().SW(), root.SE().SE(),
		root.NW().SW(), root.SW().NW(),
		root.NE().SE(), root.SE().NE(),
	}
	dead2 := e.dead.at(level - 2)
	for _, nd := range outerRing {
		if nd != dead2 {
			e.pad()
			e.pad()
			return
		}
	}

	a, b, c, d := root.NW().SE(), root.NE().SW(), root.SW().NE(), root.SE().NW()
	innerRing := [12]*node{
		a.NW(), a.NE(), a.SW(), b.NW(), b.NE(), b.SE(),
		c.NW(), c.SW(), c.SE(), d.NE(), d.SW(), d.SE(),
	}
	dead3 := e.dead.at(level - 3)
	for _, nd := range innerRing {
		if nd != dead3 {
			e.pad()
			return
		}
	}
}

// ensureSpans pads until the root's span strictly contains (x, y)
// within the central square of level root.level-1, restoring the
// §3.3 root invariant before a write at (x, y). The required level is
// computed from the coordinates' bit length rather than by looping on
// a materialized side_length(level)/4: that value is an int64 shift
// of 1, which overflows (wraps to a negative number, or to zero) once
// level passes 62 — exactly the range §3.1's +-2^62 coordinate
// headroom drives this engine into — and a loop comparing against a
// wrapped value never terminates.
func (e *Engine) ensureSpans(x, y int64) {
	need := requiredLevel(x, y)
	for e.root.level < need {
		e.pad()
	}
}

// requiredLevel returns the smallest level whose central square
// (side_length(level)/4 = 2^(level-2)) strictly contains both x and
// y: the smallest level with 2^(level-2) > max(|x|, |y|).
func requiredLevel(x, y int64) int {
	m := absUint64(x)
	if a := absUint64(y); a > m {
		m = a
	}
	// bits.Len64(m) is the smallest k with m < 2^k, so level-2 = k
	// always satisfies the strict inequality, including when m is
	// itself a power of two.
	return bits.Len64(m) + 2
}

// absUint64 returns |v| as a uint64, correct even for
// v == math.MinInt64, where the naive -v overflows int64.
func absUint64(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}

// restoreInvariant re-establishes "root.level >= 3" after an advance
// that may have shrunk the root, then runs expand_to_fit.
func (e *Engine) restoreInvariant() {
	for e.root.level < 3 {
		e.pad()
	}
	e.expandToFit()
}
