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
	"io"
	"math"
	"os"
)

// Open reads the named GDSII file into a new Database.
func Open(name string) (*Database, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	db, err := Read(fd)
	if err != nil {
		return nil, err
	}
	db.Path = name
	return db, nil
}

// Read reads a GDSII stream into a new Database.
//
// The parser is forgiving: record types it does not know are skipped,
// text, node and box elements are read and discarded, and a stream
// which ends in the middle of a record yields the database built from
// the well-formed prefix.
func Read(r io.Reader) (*Database, error) {
	db := &Database{}
	records := NewRecordReader(r)

	// The parser keeps one current cell and at most one current
	// element.  Attribute records apply to the current element of the
	// matching kind and are dropped otherwise.
	var (
		curCell     *Cell
		curBoundary *Boundary
		curPath     *Path
		curSRef     *SRef
		curARef     *ARef
	)

readLoop:
	for {
		rt, buf, err := records.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch rt {
		case RecHeader:
			if len(buf) >= 2 {
				db.Version = beUint16(buf, 0)
			}

		case RecUnits:
			if len(buf) >= 16 {
				db.UUPerDBUnit = DecodeReal(buf)
				db.MeterPerDBUnit = DecodeReal(buf[8:])
				copy(db.UnitsRaw[:], buf)
			}

		case RecBgnStr:
			curCell = &Cell{}

		case RecStrName:
			if curCell != nil {
				curCell.Name = decodeName(buf)
			}

		case RecEndStr:
			if curCell != nil {
				db.Cells = append(db.Cells, curCell)
				curCell = nil
			}

		case RecBoundary:
			curBoundary = &Boundary{}

		case RecPath:
			curPath = &Path{}

		case RecSRef:
			curSRef = &SRef{Mag: 1}

		case RecARef:
			curARef = &ARef{Mag: 1}

		case RecLayer:
			if len(buf) < 2 {
				break
			}
			if curBoundary != nil {
				curBoundary.Layer = beUint16(buf, 0)
			} else if curPath != nil {
				curPath.Layer = beUint16(buf, 0)
			}

		case RecWidth:
			if curPath != nil && len(buf) >= 4 {
				curPath.Width = uint32(beInt32(buf, 0))
			}

		case RecPathType:
			if curPath != nil && len(buf) >= 2 {
				curPath.PathType = beUint16(buf, 0)
			}

		case RecXY:
			switch {
			case curBoundary != nil:
				curBoundary.Pairs = decodePairs(buf)
			case curSRef != nil:
				if len(buf) >= 8 {
					curSRef.X = beInt32(buf, 0)
					curSRef.Y = beInt32(buf, 4)
				}
			case curARef != nil:
				if len(buf) >= 24 {
					curARef.X1 = beInt32(buf, 0)
					curARef.Y1 = beInt32(buf, 4)
					curARef.X2 = beInt32(buf, 8)
					curARef.Y2 = beInt32(buf, 12)
					curARef.X3 = beInt32(buf, 16)
					curARef.Y3 = beInt32(buf, 20)
				}
			case curPath != nil:
				curPath.Pairs = decodePairs(buf)
			}

		case RecSName:
			if curSRef != nil {
				curSRef.SName = decodeName(buf)
			} else if curARef != nil {
				curARef.SName = decodeName(buf)
			}

		case RecColRow:
			if curARef != nil && len(buf) >= 4 {
				curARef.Col = int32(beUint16(buf, 0))
				curARef.Row = int32(beUint16(buf, 2))
			}

		case RecStrans:
			if len(buf) < 2 {
				break
			}
			if curSRef != nil {
				curSRef.Strans = beUint16(buf, 0)
			} else if curARef != nil {
				curARef.Strans = beUint16(buf, 0)
			}

		case RecAngle:
			if len(buf) < 8 {
				break
			}
			angle := float32(DecodeReal(buf) / 180 * math.Pi)
			if curSRef != nil {
				curSRef.Angle = angle
			} else if curARef != nil {
				curARef.Angle = angle
			}

		case RecMag:
			if len(buf) < 8 {
				break
			}
			mag := float32(DecodeReal(buf))
			if curSRef != nil {
				curSRef.Mag = mag
			} else if curARef != nil {
				curARef.Mag = mag
			}

		case RecEndEl:
			if curCell != nil {
				switch {
				case curBoundary != nil:
					curCell.Boundaries = append(curCell.Boundaries, curBoundary)
				case curPath != nil:
					curCell.Paths = append(curCell.Paths, curPath)
				case curSRef != nil:
					curCell.SRefs = append(curCell.SRefs, curSRef)
				case curARef != nil:
					curCell.ARefs = append(curCell.ARefs, curARef)
				}
			}
			curBoundary = nil
			curPath = nil
			curSRef = nil
			curARef = nil

		case RecEndLib:
			break readLoop

		default:
			// TEXT, NODE, BOX, properties, vendor extensions: skipped
		}
	}

	// All path elements are expanded once, up front, so that the
	// flattener only ever deals with closed rings.
	for _, cell := range db.Cells {
		for _, p := range cell.Paths {
			p.Expanded = expandPath(p.Pairs, p.Width, p.PathType)
		}
	}

	return db, nil
}

// decodeName converts a GDSII string payload, dropping NUL padding.
func decodeName(buf []byte) string {
	name := make([]byte, 0, len(buf))
	for _, c := range buf {
		if c != 0 {
			name = append(name, c)
		}
	}
	return string(name)
}

// decodePairs converts an XY payload into coordinate pairs.
func decodePairs(buf []byte) []Point {
	n := len(buf) / 8
	pairs := make([]Point, n)
	for i := range pairs {
		pairs[i].X = beInt32(buf, 8*i)
		pairs[i].Y = beInt32(buf, 8*i+4)
	}
	return pairs
}
