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

package seed

import (
	"strings"
	"testing"

	"github.com/newgrp/rust-game-of-life/board"
	"golang.org/x/exp/slices"
)

func TestLoadParsesGliderAndSkipsComments(t *testing.T) {
	const glider = `!Name: Glider
!comment line
.O.
..O
OOO
`
	p, err := Load(strings.NewReader(glider))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []board.Coordinate{
		{X: 1, Y: 0},
		{X: 2, Y: -1},
		{X: 0, Y: -2}, {X: 1, Y: -2}, {X: 2, Y: -2},
	}
	got := append([]board.Coordinate(nil), p.Live...)
	board.SortCoordinates(got)
	board.SortCoordinates(want)
	if !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLoadRejectsMalformedCharacter(t *testing.T) {
	if _, err := Load(strings.NewReader(".O?\n")); err == nil {
		t.Fatal("expected error for malformed character, got nil")
	}
}

func TestLoadTreatsBlankLineAsEmptyRow(t *testing.T) {
	p, err := Load(strings.NewReader("O\n\nO\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []board.Coordinate{{X: 0, Y: 0}, {X: 0, Y: -2}}
	if !slices.Equal(p.Live, want) {
		t.Fatalf("got %v, want %v", p.Live, want)
	}
}
