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
	"errors"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// maxDepth bounds the recursion of the flattener.  The limit is only
// ever reached when the cell reference graph contains a cycle, which
// the GDSII format does not allow.
const maxDepth = 1024

// progressInterval is the number of scanned polygons between two calls
// of the progress callback.
const progressInterval = 1_000_000

// Transform is an affine map of database coordinates: reflection about
// the x axis (if Mirror is set), then rotation by Angle, then scaling
// by Mag, then translation by (TX, TY).  Transformed coordinates are
// truncated to int32; translations accumulated across very deep
// hierarchies can overflow.
type Transform struct {
	TX, TY int32
	Mag    float32
	Angle  float32 // radians
	Mirror bool
}

// matrix returns the transform as an affine matrix.
func (t Transform) matrix() matrix.Matrix {
	s := 1.0
	if t.Mirror {
		s = -1
	}
	sin, cos := math.Sincos(float64(t.Angle))
	mag := float64(t.Mag)
	return matrix.Matrix{
		mag * cos, mag * sin,
		-mag * s * sin, mag * s * cos,
		float64(t.TX), float64(t.TY),
	}
}

// Apply transforms a point, truncating the result to integer
// coordinates.
func (t Transform) Apply(p Point) Point {
	x, y := t.matrix().Apply(float64(p.X), float64(p.Y))
	return Point{X: int32(x), Y: int32(y)}
}

// ProgressFunc is called by Extract once every million scanned
// polygons, with the number of polygons emitted so far and the number
// scanned so far.  Returning true aborts the extraction.
type ProgressFunc func(emitted, scanned uint64) bool

// Bounds is an axis-aligned box in user units: the corner (X, Y)
// together with the widths DX and DY.
type Bounds struct {
	X, Y   float64
	DX, DY float64
}

// ExtractOptions modifies the behavior of Extract.  The zero value
// flattens the whole cell with no polygon limit.
type ExtractOptions struct {
	// Bounds restricts the output to polygons whose bounding box
	// intersects the given box.  Polygons are kept or dropped whole;
	// no clipping takes place.
	Bounds *Bounds

	// MaxPolys, if positive, stops the extraction cleanly once this
	// many polygons have been emitted.
	MaxPolys int

	// Progress, if non-nil, is invoked periodically and may abort the
	// extraction.
	Progress ProgressFunc

	// TranslateToBounds shifts all emitted polygons so that the lower
	// left corner of Bounds becomes the origin.  It has no effect
	// without Bounds.
	TranslateToBounds bool
}

// errLimit stops the traversal when MaxPolys is reached.  It never
// escapes to the caller.
var errLimit = errors.New("polygon limit reached")

// Extract flattens the named cell: it recursively expands all cell
// references and returns the geometry as a list of polygons with
// absolute coordinates.  Paths appear in the output as their expanded
// outlines.
//
// References to names that do not exist in the database are skipped.
// On ErrInterrupted and ErrDepthExceeded the polygons collected so far
// are returned along with the error.
func (db *Database) Extract(cellName string, opt *ExtractOptions) ([]*Poly, error) {
	if db == nil || cellName == "" {
		return nil, ErrInvalidArgument
	}
	if opt == nil {
		opt = &ExtractOptions{}
	}

	top := db.Cell(cellName)
	if top == nil {
		return nil, ErrCellNotFound
	}

	f := &flattener{
		db:        db,
		maxPolys:  opt.MaxPolys,
		progress:  opt.Progress,
		translate: opt.TranslateToBounds,
	}
	if opt.Bounds != nil {
		uu := db.UUPerDBUnit
		f.clip = &rect.IntRect{
			XMin: int(int32(opt.Bounds.X / uu)),
			YMin: int(int32(opt.Bounds.Y / uu)),
			XMax: int(int32((opt.Bounds.X + opt.Bounds.DX) / uu)),
			YMax: int(int32((opt.Bounds.Y + opt.Bounds.DY) / uu)),
		}
	}

	err := f.collapse(top, Transform{Mag: 1})
	if err == errLimit {
		err = nil
	}
	return f.out, err
}

// flattener carries the state of one extraction down the recursion.
type flattener struct {
	db        *Database
	out       []*Poly
	clip      *rect.IntRect
	translate bool
	maxPolys  int
	progress  ProgressFunc

	scanned uint64
	emitted uint64
	depth   int
}

func (f *flattener) collapse(cell *Cell, tra Transform) error {
	if f.depth >= maxDepth {
		return ErrDepthExceeded
	}
	f.depth++
	defer func() { f.depth-- }()

	m := tra.matrix()

	for _, b := range cell.Boundaries {
		err := f.add(b.Pairs, b.Layer, m)
		if err != nil {
			return err
		}
	}

	for _, p := range cell.Paths {
		err := f.add(p.Expanded, p.Layer, m)
		if err != nil {
			return err
		}
	}

	for _, r := range cell.SRefs {
		target := r.resolve(f.db)
		if target == nil {
			continue
		}

		origin := tra.Apply(Point{X: r.X, Y: r.Y})
		sub := Transform{
			TX:     origin.X,
			TY:     origin.Y,
			Mag:    tra.Mag * r.Mag,
			Angle:  tra.Angle + r.Angle,
			Mirror: tra.Mirror != (r.Strans&0x8000 != 0),
		}
		err := f.collapse(target, sub)
		if err != nil {
			return err
		}
	}

	for _, a := range cell.ARefs {
		target := a.resolve(f.db)
		if target == nil || a.Col <= 0 || a.Row <= 0 {
			continue
		}

		colX := float64(a.X2-a.X1) / float64(a.Col)
		colY := float64(a.Y2-a.Y1) / float64(a.Col)
		rowX := float64(a.X3-a.X1) / float64(a.Row)
		rowY := float64(a.Y3-a.Y1) / float64(a.Row)

		for c := int32(0); c < a.Col; c++ {
			for r := int32(0); r < a.Row; r++ {
				x := float64(a.X1) + float64(c)*colX + float64(r)*rowX
				y := float64(a.Y1) + float64(c)*colY + float64(r)*rowY
				tx, ty := m.Apply(x, y)

				sub := Transform{
					TX:     int32(tx),
					TY:     int32(ty),
					Mag:    tra.Mag * a.Mag,
					Angle:  tra.Angle + a.Angle,
					Mirror: tra.Mirror != (a.Strans&0x8000 != 0),
				}
				err := f.collapse(target, sub)
				if err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// add transforms one ring and emits it, subject to the clip box and
// the polygon limit.
func (f *flattener) add(ring []Point, layer uint16, m matrix.Matrix) error {
	if len(ring) == 0 {
		return nil
	}

	pairs := make([]Point, len(ring))
	for i, p := range ring {
		x, y := m.Apply(float64(p.X), float64(p.Y))
		pairs[i] = Point{X: int32(x), Y: int32(y)}
	}

	f.scanned++

	if f.clip == nil || overlapsClip(pairs, f.clip) {
		if f.clip != nil && f.translate {
			for i := range pairs {
				pairs[i].X -= int32(f.clip.XMin)
				pairs[i].Y -= int32(f.clip.YMin)
			}
		}
		f.out = append(f.out, &Poly{Layer: layer, Pairs: pairs})
		f.emitted++
	}

	if f.progress != nil && f.scanned%progressInterval == 0 {
		if f.progress(f.emitted, f.scanned) {
			return ErrInterrupted
		}
	}

	if f.maxPolys > 0 && f.emitted >= uint64(f.maxPolys) {
		return errLimit
	}
	return nil
}

// overlapsClip reports whether the bounding box of the ring intersects
// the clip box.  Each of the four extremes is computed separately so
// that a miss is detected as early as possible.  The closing vertex is
// not needed for this.
func overlapsClip(pairs []Point, clip *rect.IntRect) bool {
	n := len(pairs) - 1
	if n < 1 {
		return false
	}

	maxX := pairs[0].X
	for _, p := range pairs[1:n] {
		if p.X > maxX {
			maxX = p.X
		}
	}
	if int(maxX) < clip.XMin {
		return false
	}

	maxY := pairs[0].Y
	for _, p := range pairs[1:n] {
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	if int(maxY) < clip.YMin {
		return false
	}

	minX := pairs[0].X
	for _, p := range pairs[1:n] {
		if p.X < minX {
			minX = p.X
		}
	}
	if int(minX) > clip.XMax {
		return false
	}

	minY := pairs[0].Y
	for _, p := range pairs[1:n] {
		if p.Y < minY {
			minY = p.Y
		}
	}
	return int(minY) <= clip.YMax
}
