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

// Package seed loads .cells plaintext patterns and the bundled asset
// manifest describing them.
package seed

import (
	"bufio"
	"fmt"
	"io"

	"github.com/newgrp/rust-game-of-life/board"
	"golang.org/x/exp/constraints"
)

// Pattern is a parsed .cells file: the coordinates of its live cells.
type Pattern struct {
	Live []board.Coordinate
}

// Load parses a .cells plaintext pattern from r. Lines beginning with
// '!' are comments. Other lines form a rectangular grid, one
// character per cell: 'O' is alive, '.' is dead; any other non-empty
// character is a malformed-seed error. Blank lines are empty rows.
//
// Coordinate convention (§9 Open Question, resolved): the first
// non-comment line is row 0, column c maps to x = c, and row r maps
// to y = −r, so the pattern reads top-to-bottom the way it's written,
// north is +y.
func Load(r io.Reader) (*Pattern, error) {
	p := &Pattern{}
	scanner := bufio.NewScanner(r)
	row := 0
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) > 0 && line[0] == '!' {
			continue
		}
		for col, ch := range line {
			switch ch {
			case 'O':
				p.Live = append(p.Live, board.Coordinate{X: int64(col), Y: -int64(row)})
			case '.':
				// dead; nothing to record
			default:
				return nil, fmt.Errorf("seed: malformed character %q at row %d, column %d", ch, row, col)
			}
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("seed: reading pattern: %w", err)
	}
	return p, nil
}

// Apply clears b and writes every live cell of the pattern into it,
// translated so that row 0, column 0 of the file lands at the given
// offset, then calls CleanUp to commit the seed.
func Apply[T constraints.Signed](p *Pattern, b board.Board, offsetX, offsetY T) {
	b.Clear()
	for _, c := range p.Live {
		b.Set(c.X+int64(offsetX), c.Y+int64(offsetY), true)
	}
	b.CleanUp()
}
