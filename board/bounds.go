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

// Package board defines the coordinate system and the polymorphic
// board contract that every Life engine (sparse, parallel, hashlife)
// implements.
package board

import "golang.org/x/exp/constraints"

// Coordinate is a signed grid position. x grows east, y grows north.
type Coordinate struct {
	X, Y int64
}

// Bounds is an inclusive axis-aligned rectangle. The zero Bounds is
// the single point (0,0), matching a freshly-cleared board.
type Bounds struct {
	XMin, XMax, YMin, YMax int64
}

// FromHalfSide returns the square [-s,s] x [-s,s].
func FromHalfSide[T constraints.Signed](s T) Bounds {
	h := int64(s)
	return Bounds{XMin: -h, XMax: h, YMin: -h, YMax: h}
}

// Update expands b to include (x, y).
func (b *Bounds) Update(x, y int64) {
	if x < b.XMin {
		b.XMin = x
	}
	if x > b.XMax {
		b.XMax = x
	}
	if y < b.YMin {
		b.YMin = y
	}
	if y > b.YMax {
		b.YMax = y
	}
}

// Merge grows b to the componentwise min/max of b and other.
func (b *Bounds) Merge(other Bounds) {
	if other.XMin < b.XMin {
		b.XMin = other.XMin
	}
	if other.XMax > b.XMax {
		b.XMax = other.XMax
	}
	if other.YMin < b.YMin {
		b.YMin = other.YMin
	}
	if other.YMax > b.YMax {
		b.YMax = other.YMax
	}
}

// Contains reports whether (x, y) lies within b, inclusive.
func (b Bounds) Contains(x, y int64) bool {
	return x >= b.XMin && x <= b.XMax && y >= b.YMin && y <= b.YMax
}

// Empty reports whether b encloses no area at all (a single point).
func (b Bounds) Empty() bool {
	return b.XMin == b.XMax && b.YMin == b.YMax
}
