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
	"math"

	"seehuhn.de/go/geom/vec"
)

// line is the implicit form a*x + b*y + c = 0.
type line struct {
	a, b, c float64
}

// lineThrough returns the line through p and q, with
// a = q.Y-p.Y, b = -(q.X-p.X), c = -b*p.Y - a*p.X.
func lineThrough(p, q Point) line {
	a := float64(q.Y - p.Y)
	b := -float64(q.X - p.X)
	return line{a: a, b: b, c: -b*float64(p.Y) - a*float64(p.X)}
}

// intersect returns the intersection of two lines, computed in
// homogeneous coordinates and truncated to integer coordinates.  For
// parallel lines the third homogeneous coordinate vanishes and the
// result is unusable; callers must avoid this case.
func intersect(l1, l2 line) Point {
	xh := l1.b*l2.c - l2.b*l1.c
	yh := l2.a*l1.c - l1.a*l2.c
	wh := l1.a*l2.b - l2.a*l1.b
	return Point{X: int32(xh / wh), Y: int32(yh / wh)}
}

// project returns the orthogonal projection of p onto l.
func project(p Point, l line) Point {
	// The normal to a*x+b*y+c = 0 through (x1, y1) is
	// a'*x+b'*y+c' = 0 with a' = b, b' = -a, c' = a*y1 - b*x1.
	normal := line{
		a: l.b,
		b: -l.a,
		c: l.a*float64(p.Y) - l.b*float64(p.X),
	}
	return intersect(l, normal)
}

// extend moves tail away from head by the given length.  A zero-length
// segment is left alone.
func extend(tail, head Point, length float64) Point {
	seg := vec.Vec2{
		X: float64(tail.X - head.X),
		Y: float64(tail.Y - head.Y),
	}
	norm := math.Hypot(seg.X, seg.Y)
	if norm == 0 {
		return tail
	}
	seg = seg.Mul(length / norm)
	return Point{
		X: tail.X + int32(seg.X),
		Y: tail.Y + int32(seg.Y),
	}
}

// expandPath offsets an open centerline by half the path width on
// either side and returns the result as a closed ring of 2n+1 vertices:
// entry i (for i < n) is the positive-side offset of centerline vertex
// i, entry 2n-1-i the matching negative-side offset, and entry 2n
// closes the ring.
//
// Path type 2 extends the centerline by half the width beyond both
// endpoints; every other path type gets flush endcaps.  (Round caps,
// path type 1, are not supported and fall back to flush caps.)
//
// Nearly parallel consecutive segments make the joint intersection
// shoot off; duplicate consecutive centerline points divide by zero.
// Neither case is detected.
func expandPath(pairs []Point, width uint32, pathtype uint16) []Point {
	n := len(pairs)
	if n < 2 {
		return nil
	}
	hwidth := float64(width) / 2

	// For each centerline segment, the two parallels at distance
	// hwidth: a*x + b*y + (c +/- hwidth*sqrt(a^2+b^2)) = 0.
	plines := make([]line, n-1)
	mlines := make([]line, n-1)
	for i := range plines {
		l := lineThrough(pairs[i], pairs[i+1])
		shift := hwidth * math.Hypot(l.a, l.b)
		plines[i] = line{a: l.a, b: l.b, c: l.c + shift}
		mlines[i] = line{a: l.a, b: l.b, c: l.c - shift}
	}

	out := make([]Point, 2*n+1)

	head := pairs[0]
	if pathtype == 2 {
		head = extend(pairs[0], pairs[1], hwidth)
	}
	out[0] = project(head, plines[0])
	out[2*n-1] = project(head, mlines[0])
	out[2*n] = out[0]

	for i := 1; i < n-1; i++ {
		out[i] = intersect(plines[i-1], plines[i])
		out[2*n-1-i] = intersect(mlines[i-1], mlines[i])
	}

	tail := pairs[n-1]
	if pathtype == 2 {
		tail = extend(pairs[n-1], pairs[n-2], hwidth)
	}
	out[n-1] = project(tail, plines[n-2])
	out[n] = project(tail, mlines[n-2])

	return out
}
