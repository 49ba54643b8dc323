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

import "fmt"

// chunkAt descends from the root by the same quadrant-dispatch
// pattern as getValueAt, stopping at the given level and returning
// that natural, tree-aligned sub-node. Fatal if level is out of the
// root's range.
func (e *Engine) chunkAt(level int, x, y int64) *node {
	n := e.root
	for n.level > level {
		half := n.sideLength() / 2
		quarter := half / 2
		switch {
		case x >= 0 && y >= 0:
			n, x, y = n.NE(), x-quarter, y-quarter
		case x < 0 && y >= 0:
			n, x, y = n.NW(), x+quarter, y-quarter
		case x < 0 && y < 0:
			n, x, y = n.SW(), x+quarter, y+quarter
		default:
			n, x, y = n.SE(), x-quarter, y+quarter
		}
	}
	if n.level != level {
		panic(fmt.Sprintf("hashlife: get_chunk level %d out of range (root level %d)", level, e.root.level))
	}
	return n
}

// overlapGrid tiles the entire current root with overlapping
// level-`level` windows spaced by half a window side, so that each
// window's advanced_center lands edge-to-edge with its neighbors'.
// grid[i][j] increases i eastward and j northward; natural,
// tree-aligned chunks land on even (i, j), the rest are built by
// stitching adjacent naturals together exactly as advanceRecursive
// stitches a single node's four children into nine regions, only
// generalized across the whole board instead of one macrocell.
func (e *Engine) overlapGrid(level int) [][]*node {
	root := e.root
	windowSide := int64(1) << uint(level)
	half := root.sideLength() / 2
	m := root.sideLength() / windowSide
	if m < 1 {
		m = 1
	}

	natural := make([][]*node, m)
	for a := int64(0); a < m; a++ {
		natural[a] = make([]*node, m)
		for b := int64(0); b < m; b++ {
			cx := -half + a*windowSide + windowSide/2
			cy := -half + b*windowSide + windowSide/2
			natural[a][b] = e.chunkAt(level, cx, cy)
		}
	}

	size := int(2*m - 1)
	grid := make([][]*node, size)
	for i := range grid {
		grid[i] = make([]*node, size)
	}
	for a := int64(0); a < m; a++ {
		for b := int64(0); b < m; b++ {
			grid[2*a][2*b] = natural[a][b]
		}
	}
	for a := int64(0); a < m-1; a++ {
		for b := int64(0); b < m; b++ {
			grid[2*a+1][2*b] = e.advanceMemo.horizontalForward(natural[a][b], natural[a+1][b])
		}
	}
	for a := int64(0); a < m; a++ {
		for b := int64(0); b < m-1; b++ {
			grid[2*a][2*b+1] = e.advanceMemo.verticalForward(natural[a][b+1], natural[a][b])
		}
	}
	for a := int64(0); a < m-1; a++ {
		for b := int64(0); b < m-1; b++ {
			grid[2*a+1][2*b+1] = e.advanceMemo.diagonalForward(
				natural[a+1][b+1], natural[a][b+1], natural[a][b], natural[a+1][b])
		}
	}
	return grid
}

// recompose assembles a square grid of equal-level nodes (indexed
// [x][y], x east and y north) into a single node one level up per
// halving, padding with canonical-dead filler up to the next power of
// two before quartering and recursing. The grid must be non-empty and
// square.
func (m *memo) recompose(grid [][]*node) *node {
	size := len(grid)
	level := grid[0][0].level

	target := 1
	for target < size {
		target *= 2
	}
	if target > size {
		dead := m.dead.at(level)
		padded := make([][]*node, target)
		for i := range padded {
			padded[i] = make([]*node, target)
			for j := range padded[i] {
				if i < size && j < size {
					padded[i][j] = grid[i][j]
				} else {
					padded[i][j] = dead
				}
			}
		}
		grid = padded
		size = target
	}

	if size == 1 {
		return grid[0][0]
	}

	h := size / 2
	quadrant := func(i0, j0 int) [][]*node {
		out := make([][]*node, h)
		for di := 0; di < h; di++ {
			out[di] = make([]*node, h)
			for dj := 0; dj < h; dj++ {
				out[di][dj] = grid[i0+di][j0+dj]
			}
		}
		return out
	}

	ne := m.recompose(quadrant(h, h))
	nw := m.recompose(quadrant(0, h))
	sw := m.recompose(quadrant(0, 0))
	se := m.recompose(quadrant(h, 0))
	return m.table.withComponents(ne, nw, sw, se)
}

// advanceByLessThanNative advances the whole board by B = 2^k
// generations, where k is the position of the highest set bit of the
// remaining step count n (so B is the largest power of two not
// exceeding n). It mutates e.root and returns B.
//
// This is the sub-native-step path described in §4.4.4: the root is
// too large for a single advanced_center call to advance it by
// exactly B generations, so the board is tiled with overlapping
// level-(k+2) windows (each window's own native step is exactly B),
// every window is advanced once, and the results are recomposed into
// the new root. The source draft's arbitrary-step indexing is known
// to be unreliable (see DESIGN.md); this tiling is derived from the
// speed-of-light bound directly: a level-(k+2) window has exactly
// enough margin around its centered level-(k+1) output to determine
// that output B generations later regardless of what lies outside the
// window.
func (e *Engine) advanceByLessThanNative(n uint64) uint64 {
	k := 0
	for (uint64(1) << uint(k+1)) <= n {
		k++
	}
	b := uint64(1) << uint(k)
	level := k + 2

	grid := e.overlapGrid(level)
	// Each advanced tile sits b cells in from its window's southwest
	// corner, so the tiles are split into level-k quarters and shifted
	// one quarter east and north to line up with the root's own grid.
	dead := e.dead.at(k)
	fine := make([][]*node, 2*len(grid)+2)
	for i := range fine {
		fine[i] = make([]*node, len(fine))
		for j := range fine[i] {
			fine[i][j] = dead
		}
	}
	for i, row := range grid {
		for j, w := range row {
			t := e.advanceMemo.advancedCenter(w)
			fine[2*i+1][2*j+1], fine[2*i+2][2*j+1] = t.SW(), t.SE()
			fine[2*i+1][2*j+2], fine[2*i+2][2*j+2] = t.NW(), t.NE()
		}
	}

	e.root = e.advanceMemo.recompose(fine)
	e.generation += b
	return b
}
