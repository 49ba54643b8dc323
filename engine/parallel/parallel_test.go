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

package parallel

import (
	"testing"

	"github.com/newgrp/rust-game-of-life/board"
)

func liveSet(e *Engine) map[board.Coordinate]bool {
	out := make(map[board.Coordinate]bool)
	for _, c := range e.LiveCells() {
		out[c] = true
	}
	return out
}

func seed(e *Engine, cells []board.Coordinate) {
	e.Clear()
	for _, c := range cells {
		e.Set(c.X, c.Y, true)
	}
	e.CleanUp()
}

func equalSets(a, b map[board.Coordinate]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

func TestBlockIsStillLife(t *testing.T) {
	e := New()
	defer e.Close()
	block := []board.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	seed(e, block)
	e.AdvanceBy(10)
	want := map[board.Coordinate]bool{}
	for _, c := range block {
		want[c] = true
	}
	if got := liveSet(e); !equalSets(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestBlinkerOscillates(t *testing.T) {
	e := New()
	defer e.Close()
	seed(e, []board.Coordinate{{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}})
	e.AdvanceBy(2)
	want := map[board.Coordinate]bool{{X: -1, Y: 0}: true, {X: 0, Y: 0}: true, {X: 1, Y: 0}: true}
	if got := liveSet(e); !equalSets(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
	if e.Generation() != 2 {
		t.Fatalf("generation = %d, want 2", e.Generation())
	}
}

func TestSplitAdvanceMatchesCombined(t *testing.T) {
	glider := []board.Coordinate{{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 1}, {X: 1, Y: 0}}

	combined := New()
	defer combined.Close()
	seed(combined, glider)
	combined.AdvanceBy(7)

	split := New()
	defer split.Close()
	seed(split, glider)
	split.AdvanceBy(3)
	split.AdvanceBy(4)

	if got, want := liveSet(combined), liveSet(split); !equalSets(got, want) {
		t.Fatalf("advance_by(7) != advance_by(3)+advance_by(4): %v vs %v", got, want)
	}
}

func TestClearIsIdempotent(t *testing.T) {
	e := New()
	defer e.Close()
	e.Set(0, 0, true)
	e.Clear()
	e.Clear()
	if e.Generation() != 0 || len(e.LiveCells()) != 0 {
		t.Fatalf("expected empty board after clear;clear")
	}
}
