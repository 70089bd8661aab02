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
	"strconv"
)

// A GDSII file is a sequence of records.  Each record starts with a
// four byte header: a big-endian record length (which includes the
// header itself), followed by one byte of record type and one byte of
// data type.  RecordType combines the two type bytes into a single
// value, so that the constants below match the record headers found in
// files.
type RecordType uint16

// The record types of the GDSII stream format.
const (
	RecHeader       RecordType = 0x0002
	RecBgnLib       RecordType = 0x0102
	RecLibName      RecordType = 0x0206
	RecUnits        RecordType = 0x0305
	RecEndLib       RecordType = 0x0400
	RecBgnStr       RecordType = 0x0502
	RecStrName      RecordType = 0x0606
	RecEndStr       RecordType = 0x0700
	RecBoundary     RecordType = 0x0800
	RecPath         RecordType = 0x0900
	RecSRef         RecordType = 0x0a00
	RecARef         RecordType = 0x0b00
	RecText         RecordType = 0x0c00
	RecLayer        RecordType = 0x0d02
	RecDataType     RecordType = 0x0e02
	RecWidth        RecordType = 0x0f03
	RecXY           RecordType = 0x1003
	RecEndEl        RecordType = 0x1100
	RecSName        RecordType = 0x1206
	RecColRow       RecordType = 0x1302
	RecTextNode     RecordType = 0x1400
	RecNode         RecordType = 0x1500
	RecTextType     RecordType = 0x1602
	RecPresentation RecordType = 0x1701
	RecString       RecordType = 0x1906
	RecStrans       RecordType = 0x1a01
	RecMag          RecordType = 0x1b05
	RecAngle        RecordType = 0x1c05
	RecRefLibs      RecordType = 0x1f06
	RecFonts        RecordType = 0x2006
	RecPathType     RecordType = 0x2102
	RecGenerations  RecordType = 0x2202
	RecAttrTable    RecordType = 0x2306
	RecElFlags      RecordType = 0x2601
	RecNodeType     RecordType = 0x2a02
	RecPropAttr     RecordType = 0x2b02
	RecPropValue    RecordType = 0x2c06
	RecBox          RecordType = 0x2d00
	RecBoxType      RecordType = 0x2e02
	RecPlex         RecordType = 0x2f03
	RecBgnExtn      RecordType = 0x3003
	RecEndExtn      RecordType = 0x3103
	RecFormat       RecordType = 0x3602
)

var recordNames = map[RecordType]string{
	RecHeader:       "HEADER",
	RecBgnLib:       "BGNLIB",
	RecLibName:      "LIBNAME",
	RecUnits:        "UNITS",
	RecEndLib:       "ENDLIB",
	RecBgnStr:       "BGNSTR",
	RecStrName:      "STRNAME",
	RecEndStr:       "ENDSTR",
	RecBoundary:     "BOUNDARY",
	RecPath:         "PATH",
	RecSRef:         "SREF",
	RecARef:         "AREF",
	RecText:         "TEXT",
	RecLayer:        "LAYER",
	RecDataType:     "DATATYPE",
	RecWidth:        "WIDTH",
	RecXY:           "XY",
	RecEndEl:        "ENDEL",
	RecSName:        "SNAME",
	RecColRow:       "COLROW",
	RecTextNode:     "TEXTNODE",
	RecNode:         "NODE",
	RecTextType:     "TEXTTYPE",
	RecPresentation: "PRESENTATION",
	RecString:       "STRING",
	RecStrans:       "STRANS",
	RecMag:          "MAG",
	RecAngle:        "ANGLE",
	RecRefLibs:      "REFLIBS",
	RecFonts:        "FONTS",
	RecPathType:     "PATHTYPE",
	RecGenerations:  "GENERATIONS",
	RecAttrTable:    "ATTRTABLE",
	RecElFlags:      "ELFLAGS",
	RecNodeType:     "NODETYPE",
	RecPropAttr:     "PROPATTR",
	RecPropValue:    "PROPVALUE",
	RecBox:          "BOX",
	RecBoxType:      "BOXTYPE",
	RecPlex:         "PLEX",
	RecBgnExtn:      "BGNEXTN",
	RecEndExtn:      "ENDEXTN",
	RecFormat:       "FORMAT",
}

// String returns the name of the record type as used in the GDSII
// standard, or a hexadecimal form for unknown types.
func (rt RecordType) String() string {
	if name, ok := recordNames[rt]; ok {
		return name
	}
	return "0x" + strconv.FormatUint(uint64(rt), 16)
}

// A RecordReader reads a GDSII file record by record.
type RecordReader struct {
	r    *bufio.Reader
	pos  int64
	head [4]byte
}

// NewRecordReader returns a RecordReader which reads records from r.
func NewRecordReader(r io.Reader) *RecordReader {
	return &RecordReader{r: bufio.NewReader(r)}
}

// Pos returns the file offset of the next record.
func (r *RecordReader) Pos() int64 {
	return r.pos
}

// Next reads the next record and returns its type together with the
// payload bytes.  At the end of the input, or when the input ends in
// the middle of a record, Next returns io.EOF.
//
// The returned payload is only valid until the following call to Next.
func (r *RecordReader) Next() (RecordType, []byte, error) {
	_, err := io.ReadFull(r.r, r.head[:])
	if err != nil {
		if err == io.ErrUnexpectedEOF {
			err = io.EOF
		}
		return 0, nil, err
	}
	length := int(r.head[0])<<8 | int(r.head[1])
	rt := RecordType(uint16(r.head[2])<<8 | uint16(r.head[3]))
	if length < 4 {
		// A header this short cannot describe a record.  Treat the
		// remainder of the file as garbage, like a truncated record.
		return 0, nil, io.EOF
	}

	buf := make([]byte, length-4)
	_, err = io.ReadFull(r.r, buf)
	if err != nil {
		if err == io.ErrUnexpectedEOF {
			err = io.EOF
		}
		return 0, nil, err
	}
	r.pos += int64(length)
	return rt, buf, nil
}

func beUint16(buf []byte, pos int) uint16 {
	return uint16(buf[pos])<<8 | uint16(buf[pos+1])
}

func beInt32(buf []byte, pos int) int32 {
	return int32(uint32(buf[pos])<<24 |
		uint32(buf[pos+1])<<16 |
		uint32(buf[pos+2])<<8 |
		uint32(buf[pos+3]))
}

func putUint16(buf []byte, pos int, val uint16) {
	buf[pos] = byte(val >> 8)
	buf[pos+1] = byte(val)
}

func putInt32(buf []byte, pos int, val int32) {
	buf[pos] = byte(val >> 24)
	buf[pos+1] = byte(val >> 16)
	buf[pos+2] = byte(val >> 8)
	buf[pos+3] = byte(val)
}

// recordWriter emits GDSII records with the framing described above.
type recordWriter struct {
	w io.Writer
}

// record writes a record without payload.
func (w *recordWriter) record(rt RecordType) error {
	var buf [4]byte
	putUint16(buf[:], 0, 4)
	putUint16(buf[:], 2, uint16(rt))
	_, err := w.w.Write(buf[:])
	return err
}

// uint16Record writes a record with a single two-byte payload.
func (w *recordWriter) uint16Record(rt RecordType, val uint16) error {
	var buf [6]byte
	putUint16(buf[:], 0, 6)
	putUint16(buf[:], 2, uint16(rt))
	putUint16(buf[:], 4, val)
	_, err := w.w.Write(buf[:])
	return err
}

// bytesRecord writes a record with the given payload.  The caller must
// make sure the payload has even length.
func (w *recordWriter) bytesRecord(rt RecordType, data []byte) error {
	var buf [4]byte
	putUint16(buf[:], 0, uint16(len(data)+4))
	putUint16(buf[:], 2, uint16(rt))
	_, err := w.w.Write(buf[:])
	if err != nil {
		return err
	}
	_, err = w.w.Write(data)
	return err
}

// stringRecord writes a record holding a string, padded with a zero
// byte to even length.  The pad byte is included in the record length.
func (w *recordWriter) stringRecord(rt RecordType, s string) error {
	n := len(s)
	if n%2 != 0 {
		n++
	}
	buf := make([]byte, 4+n)
	putUint16(buf, 0, uint16(n+4))
	putUint16(buf, 2, uint16(rt))
	copy(buf[4:], s)
	_, err := w.w.Write(buf)
	return err
}
