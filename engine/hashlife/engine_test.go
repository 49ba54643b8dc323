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
	block := []board.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	seed(e, block)
	e.AdvanceBy(25)
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

func TestGliderTranslates(t *testing.T) {
	glider := []board.Coordinate{{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 1}, {X: 1, Y: 0}}
	e := New()
	seed(e, glider)
	e.AdvanceBy(4)
	want := map[board.Coordinate]bool{}
	for _, c := range glider {
		want[board.Coordinate{X: c.X + 1, Y: c.Y - 1}] = true
	}
	if got := liveSet(e); !equalSets(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

// TestSplitAdvanceMatchesCombined is P1: advancing by n+m generations
// in two calls must match advancing by n+m in one call, regardless of
// how the split lands relative to the root's native power-of-two step.
func TestSplitAdvanceMatchesCombined(t *testing.T) {
	glider := []board.Coordinate{{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 1}, {X: 1, Y: 0}}

	combined := New()
	seed(combined, glider)
	combined.AdvanceBy(7)

	split := New()
	seed(split, glider)
	split.AdvanceBy(3)
	split.AdvanceBy(4)

	if got, want := liveSet(combined), liveSet(split); !equalSets(got, want) {
		t.Fatalf("advance_by(7) != advance_by(3)+advance_by(4): %v vs %v", got, want)
	}
}

// TestOddStepsAccumulate is P1 against a run of single-generation
// steps, which only ever exercises the sub-native-step tiling path
// (the root's native step is always >= 2), compared against one
// larger combined call.
func TestOddStepsAccumulate(t *testing.T) {
	glider := []board.Coordinate{{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 1}, {X: 1, Y: 0}}

	stepwise := New()
	seed(stepwise, glider)
	for i := 0; i < 5; i++ {
		stepwise.AdvanceBy(1)
	}

	combined := New()
	seed(combined, glider)
	combined.AdvanceBy(5)

	if got, want := liveSet(stepwise), liveSet(combined); !equalSets(got, want) {
		t.Fatalf("five advance_by(1) != advance_by(5): %v vs %v", got, want)
	}
	if stepwise.Generation() != combined.Generation() {
		t.Fatalf("generation mismatch: %d vs %d", stepwise.Generation(), combined.Generation())
	}
}

// TestRPentominoStabilizes is S4: the R-pentomino is a classic
// long-running methuselah that settles into a population of 116 live
// cells after 1103 generations.
func TestRPentominoStabilizes(t *testing.T) {
	rPentomino := []board.Coordinate{
		{X: 1, Y: 2}, {X: 2, Y: 2},
		{X: 0, Y: 1}, {X: 1, Y: 1},
		{X: 1, Y: 0},
	}
	e := New()
	seed(e, rPentomino)
	e.AdvanceBy(1103)
	if got := len(e.LiveCells()); got != 116 {
		t.Fatalf("population after 1103 generations = %d, want 116", got)
	}
}

// TestLargeStepMatchesUnitSteps is S5: advancing by a large power of
// two in one call must match the same number of single-generation
// advances.
func TestLargeStepMatchesUnitSteps(t *testing.T) {
	rPentomino := []board.Coordinate{
		{X: 1, Y: 2}, {X: 2, Y: 2},
		{X: 0, Y: 1}, {X: 1, Y: 1},
		{X: 1, Y: 0},
	}
	const steps = 64

	bulk := New()
	seed(bulk, rPentomino)
	bulk.AdvanceBy(steps)

	unit := New()
	seed(unit, rPentomino)
	for i := 0; i < steps; i++ {
		unit.AdvanceBy(1)
	}

	if got, want := liveSet(bulk), liveSet(unit); !equalSets(got, want) {
		t.Fatalf("advance_by(%d) != %d x advance_by(1)", steps, steps)
	}
}

// TestFarSetThenAdvanceSettles is S6: setting a single live cell far
// from the origin forces many padding rounds; advancing once from
// there must still behave like an isolated cell (dies of loneliness).
func TestFarSetThenAdvanceSettles(t *testing.T) {
	e := New()
	e.Set(1_000_000_000, 1_000_000_000, true)
	e.AdvanceBy(1)
	if got := len(e.LiveCells()); got != 0 {
		t.Fatalf("isolated live cell should die after one generation, got %d live cells", got)
	}
}

// TestHashConsingSharesIdenticalNodes is H1: within one engine,
// rebuilding a structurally identical pattern interns it to the same
// pointer.
func TestHashConsingSharesIdenticalNodes(t *testing.T) {
	block := []board.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	e := New()
	seed(e, block)
	first := e.root
	e.Set(0, 0, false)
	e.Set(0, 0, true)
	if e.root != first {
		t.Fatalf("rebuilding an equal pattern interned a different root pointer")
	}
}

// TestDeadSubtreesPrune is H2: a live cell far from a second, distant
// live cell must not force traversal of the (all-dead) space between
// them to come out wrong — both live cells are still reported, and
// nothing spurious appears in between.
func TestDeadSubtreesPrune(t *testing.T) {
	e := New()
	e.Set(-100, -100, true)
	e.Set(100, 100, true)
	cells := liveSet(e)
	if !cells[board.Coordinate{X: -100, Y: -100}] || !cells[board.Coordinate{X: 100, Y: 100}] {
		t.Fatalf("expected both far-apart cells alive, got %v", cells)
	}
	if len(cells) != 2 {
		t.Fatalf("expected exactly 2 live cells, got %d: %v", len(cells), cells)
	}
}

// TestRootStaysPaddedAfterSet checks the root invariant after a Set:
// the root is at least level 3 and the written cell lies strictly
// inside its central square, so the outer ring of sub-nodes is dead.
func TestRootStaysPaddedAfterSet(t *testing.T) {
	e := New()
	e.Set(5, -3, true)
	if e.root.level < 3 {
		t.Fatalf("root level = %d, want >= 3", e.root.level)
	}
	half := e.root.sideLength() / 2
	inner := half / 2
	if 5 >= inner || -3 <= -inner {
		t.Fatalf("live cell not strictly inside central square: half=%d inner=%d", half, inner)
	}
}
