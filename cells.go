// seehuhn.de/go/gds - read, flatten and write GDSII layout files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package gds

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Cell returns the cell with the given name, or nil if the database
// contains no such cell.  Names are compared byte for byte.
func (db *Database) Cell(name string) *Cell {
	for _, c := range db.Cells {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// AllCells returns all cells of the database, in file order.
func (db *Database) AllCells() []*Cell {
	return slices.Clone(db.Cells)
}

// TopCells returns the cells which no other cell refers to.  A cell
// referring to itself still counts as a top cell.
func (db *Database) TopCells() []*Cell {
	var tops []*Cell
	for _, c := range db.Cells {
		if !db.isReferenced(c) {
			tops = append(tops, c)
		}
	}
	return tops
}

func (db *Database) isReferenced(c *Cell) bool {
	for _, other := range db.Cells {
		if other == c {
			continue
		}
		for _, r := range other.SRefs {
			if r.SName == c.Name {
				return true
			}
		}
		for _, r := range other.ARefs {
			if r.SName == c.Name {
				return true
			}
		}
	}
	return false
}

// Layers returns the sorted set of layers used by boundary and path
// elements anywhere in the database.
func (db *Database) Layers() []uint16 {
	seen := make(map[uint16]bool)
	for _, c := range db.Cells {
		for _, b := range c.Boundaries {
			seen[b.Layer] = true
		}
		for _, p := range c.Paths {
			seen[p.Layer] = true
		}
	}
	layers := maps.Keys(seen)
	slices.Sort(layers)
	return layers
}

// resolve looks up the referenced cell, caching the result.  A nil
// return means the name does not occur in the database; the flattener
// then skips the reference.
func (r *SRef) resolve(db *Database) *Cell {
	if r.cell == nil {
		r.cell = db.Cell(r.SName)
	}
	return r.cell
}

func (r *ARef) resolve(db *Database) *Cell {
	if r.cell == nil {
		r.cell = db.Cell(r.SName)
	}
	return r.cell
}
