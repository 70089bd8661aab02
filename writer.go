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
	"bufio"
	"io"
	"os"
)

// WritePolys writes the polygons to the named file as a GDSII stream
// with a single cell "TOP".  The units records are copied from the
// database the polygons came from, so coordinates keep their meaning.
func (db *Database) WritePolys(name string, polys []*Poly) error {
	fd, err := os.Create(name)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(fd)
	err = db.WritePolysTo(w, polys)
	if err != nil {
		fd.Close()
		return err
	}
	err = w.Flush()
	if err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}

// WritePolysTo writes the polygons to w as a GDSII stream with a
// single cell "TOP".
func (db *Database) WritePolysTo(w io.Writer, polys []*Poly) error {
	rw := &recordWriter{w: w}

	// Access and modification times are not tracked; both BGNLIB and
	// BGNSTR carry twelve zero words.
	var zeroDates [24]byte

	err := rw.uint16Record(RecHeader, 600)
	if err != nil {
		return err
	}
	err = rw.bytesRecord(RecBgnLib, zeroDates[:])
	if err != nil {
		return err
	}
	err = rw.stringRecord(RecLibName, "")
	if err != nil {
		return err
	}
	err = rw.bytesRecord(RecUnits, db.UnitsRaw[:])
	if err != nil {
		return err
	}
	err = rw.bytesRecord(RecBgnStr, zeroDates[:])
	if err != nil {
		return err
	}
	err = rw.stringRecord(RecStrName, "TOP")
	if err != nil {
		return err
	}

	for _, p := range polys {
		err = rw.record(RecBoundary)
		if err != nil {
			return err
		}
		err = rw.uint16Record(RecLayer, p.Layer)
		if err != nil {
			return err
		}
		err = rw.uint16Record(RecDataType, 0)
		if err != nil {
			return err
		}
		buf := make([]byte, 8*len(p.Pairs))
		for i, pt := range p.Pairs {
			putInt32(buf, 8*i, pt.X)
			putInt32(buf, 8*i+4, pt.Y)
		}
		err = rw.bytesRecord(RecXY, buf)
		if err != nil {
			return err
		}
		err = rw.record(RecEndEl)
		if err != nil {
			return err
		}
	}

	err = rw.record(RecEndStr)
	if err != nil {
		return err
	}
	return rw.record(RecEndLib)
}
