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

// Command life runs a headless Game of Life simulation using one of
// three interchangeable engines, seeded from a bundled .cells pattern.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/newgrp/rust-game-of-life/board"
	"github.com/newgrp/rust-game-of-life/engine/hashlife"
	"github.com/newgrp/rust-game-of-life/engine/parallel"
	"github.com/newgrp/rust-game-of-life/engine/sparse"
	"github.com/newgrp/rust-game-of-life/seed"
)

var (
	dashn    uint64
	dashdir  string
	dashquit bool
)

func init() {
	flag.Uint64Var(&dashn, "n", 100, "number of generations to run headlessly")
	flag.StringVar(&dashdir, "assets", "assets", "directory containing the bundled seed patterns and manifest")
	flag.BoolVar(&dashquit, "q", false, "suppress the final live-cell report")
}

func exitf(f string, args ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", args...)
	os.Exit(1)
}

// newEngine selects one of the three interchangeable §4.1
// implementations by name. Unknown names abort with a diagnostic.
func newEngine(name string) board.Board {
	switch name {
	case "sequential":
		return sparse.New()
	case "parallel":
		return parallel.New()
	case "hashlife":
		return hashlife.New()
	default:
		exitf("unknown engine %q (want sequential, parallel, or hashlife)", name)
		panic("unreachable")
	}
}

func main() {
	flag.Parse()
	args := flag.Args()

	patternName := "r_pentomino"
	if len(args) > 0 {
		patternName = args[0]
	}
	engineName := "sequential"
	if len(args) > 1 {
		engineName = args[1]
	}

	b := newEngine(engineName)
	if closer, ok := b.(interface{ Close() }); ok {
		defer closer.Close()
	}

	dir, err := filepath.Abs(dashdir)
	if err != nil {
		exitf("resolving assets directory: %s", err)
	}
	pattern, err := seed.LoadNamed(dir, patternName)
	if err != nil {
		exitf("loading seed %q: %s", patternName, err)
	}
	seed.Apply(pattern, b, 0, 0)

	b.AdvanceBy(dashn)

	if !dashquit {
		cells := b.LiveCells()
		fmt.Printf("generation %d: %d live cells\n", b.Generation(), len(cells))
	}
}
