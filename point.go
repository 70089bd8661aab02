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

// PointInPolygon reports whether p lies inside the polygon, using the
// even-odd rule with a vertical ray from p.  The polygon is given as a
// closed ring, with the last vertex repeating the first.
//
// Points exactly on a polygon edge may be classified either way.
func PointInPolygon(poly []Point, p Point) bool {
	inside := false
	for i := 0; i+1 < len(poly); i++ {
		a := poly[i]
		b := poly[i+1]
		if (a.X <= p.X && b.X > p.X) || (a.X > p.X && b.X <= p.X) {
			y := float64(a.Y) + float64(p.X-a.X)*float64(b.Y-a.Y)/float64(b.X-a.X)
			if float64(p.Y) < y {
				inside = !inside
			}
		}
	}
	return inside
}
