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

// Package gds provides support for reading, flattening and writing
// GDSII layout files.
//
// A GDSII file describes a hierarchy of cells.  Each cell contains
// polygons (boundary elements), wire segments (path elements), and
// references to other cells, possibly transformed and arranged in
// regular arrays.  [Open] or [Read] parse such a file into a
// [Database]:
//
//	db, err := gds.Open("chip.gds")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// [Database.Extract] resolves the hierarchy below one cell into a flat
// list of polygons with absolute coordinates:
//
//	polys, err := db.Extract("TOP_CELL", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The extraction can be restricted to a rectangular window, capped at
// a maximum number of polygons, and monitored or aborted through a
// progress callback; see [ExtractOptions].  [Database.WritePolys]
// stores the flattened geometry as a new single-cell GDSII file.
//
// All coordinates are in database units.  [Database.GetUU] returns the
// size of one database unit in user units (usually micrometres).
package gds
