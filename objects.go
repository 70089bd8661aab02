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

// MaxNameLen is the maximum length of a structure name, in bytes.
// The GDSII standard allows up to 32 characters; longer names found
// in the input are kept as-is.
const MaxNameLen = 32

// Point is a coordinate pair in database units.
type Point struct {
	X, Y int32
}

// Poly is a flat polygon on a single layer.  Pairs forms a closed ring:
// the last vertex repeats the first.
type Poly struct {
	Layer uint16
	Pairs []Point
}

// Boundary is a GDSII BOUNDARY element, a closed polygon on a layer.
// The first and last entry of Pairs coincide.
type Boundary struct {
	Layer uint16
	Pairs []Point
}

// Path is a GDSII PATH element: an open centerline with a width and an
// endcap style.
//
// Expanded is filled in after parsing and holds the centerline offset
// by half the width on either side, as a closed ring of 2*len(Pairs)+1
// vertices.
type Path struct {
	Layer    uint16
	Width    uint32
	PathType uint16
	Pairs    []Point
	Expanded []Point
}

// SRef is a single reference to another structure, placed at (X, Y)
// with an optional magnification, rotation and mirroring.
//
// Bit 0x8000 of Strans selects reflection about the x axis, applied
// before the rotation.
type SRef struct {
	SName  string
	X, Y   int32
	Mag    float32 // default 1
	Angle  float32 // radians
	Strans uint16

	cell *Cell // resolved on first use
}

// ARef is a rectangular array of references to another structure.
//
// (X1, Y1) is the array origin; (X2, Y2) and (X3, Y3) are the ends of
// the column and row axes, so that element (c, r) of the array is
// placed at the origin plus c/Col times the column axis plus r/Row
// times the row axis.
type ARef struct {
	SName    string
	X1, Y1   int32
	X2, Y2   int32
	X3, Y3   int32
	Col, Row int32
	Mag      float32 // default 1
	Angle    float32 // radians
	Strans   uint16

	cell *Cell // resolved on first use
}

// Cell is a named GDSII structure: a container of geometry and of
// references to other cells.
type Cell struct {
	Name       string
	Boundaries []*Boundary
	Paths      []*Path
	SRefs      []*SRef
	ARefs      []*ARef
}

// Database is the in-memory form of a GDSII library.  It is created by
// [Open] or [Read] and is not modified afterwards, except that SRef and
// ARef elements cache the cell they resolve to.
type Database struct {
	// Version is the format version from the HEADER record.
	Version uint16

	// UUPerDBUnit is the size of one database unit in user units.
	UUPerDBUnit float64

	// MeterPerDBUnit is the size of one database unit in meters.
	// The value is carried along but takes no part in any geometry.
	MeterPerDBUnit float64

	// UnitsRaw is the payload of the UNITS record, byte for byte.
	// The writer copies it into output files unchanged, so that
	// flattened output uses exactly the scale of the source library.
	UnitsRaw [16]byte

	// Cells lists the structures of the library in file order.
	Cells []*Cell

	// Path is the name of the file the database was read from, if any.
	Path string
}

// GetUU returns the size of one database unit in user units.
func (db *Database) GetUU() float64 {
	return db.UUPerDBUnit
}

// GetPath returns the name of the file the database was read from, or
// the empty string if the database was read from a stream.
func (db *Database) GetPath() string {
	return db.Path
}
