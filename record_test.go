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
	"bytes"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestByteOrder(t *testing.T) {
	if got := beUint16([]byte{0x01, 0x02}, 0); got != 0x0102 {
		t.Errorf("beUint16 = %#04x, want 0x0102", got)
	}
	if got := beInt32([]byte{0, 0, 0, 1}, 0); got != 1 {
		t.Errorf("beInt32 = %d, want 1", got)
	}
	if got := beInt32([]byte{0xff, 0xff, 0xff, 0xff}, 0); got != -1 {
		t.Errorf("beInt32 = %d, want -1", got)
	}

	var buf [4]byte
	putInt32(buf[:], 0, -123456789)
	if got := beInt32(buf[:], 0); got != -123456789 {
		t.Errorf("putInt32 round trip = %d, want -123456789", got)
	}
}

func TestStringRecordPadding(t *testing.T) {
	buf := &bytes.Buffer{}
	w := &recordWriter{w: buf}
	err := w.stringRecord(RecStrName, "TOP")
	if err != nil {
		t.Fatal(err)
	}

	want := []byte{0x00, 0x08, 0x06, 0x06, 'T', 'O', 'P', 0x00}
	if d := cmp.Diff(want, buf.Bytes()); d != "" {
		t.Errorf("odd-length string record (-want +got):\n%s", d)
	}

	buf.Reset()
	err = w.stringRecord(RecLibName, "")
	if err != nil {
		t.Fatal(err)
	}
	want = []byte{0x00, 0x04, 0x02, 0x06}
	if d := cmp.Diff(want, buf.Bytes()); d != "" {
		t.Errorf("empty string record (-want +got):\n%s", d)
	}
}

func TestRecordReader(t *testing.T) {
	buf := &bytes.Buffer{}
	w := &recordWriter{w: buf}
	w.uint16Record(RecHeader, 600)
	w.record(RecEndLib)

	r := NewRecordReader(buf)
	rt, data, err := r.Next()
	if err != nil {
		t.Fatal(err)
	}
	if rt != RecHeader || beUint16(data, 0) != 600 {
		t.Errorf("got %s %v", rt, data)
	}
	if r.Pos() != 6 {
		t.Errorf("Pos() = %d, want 6", r.Pos())
	}

	rt, data, err = r.Next()
	if err != nil {
		t.Fatal(err)
	}
	if rt != RecEndLib || len(data) != 0 {
		t.Errorf("got %s %v", rt, data)
	}

	_, _, err = r.Next()
	if err != io.EOF {
		t.Errorf("got %v, want io.EOF", err)
	}
}

func TestRecordReaderTruncated(t *testing.T) {
	// A record header which promises more payload than the stream
	// holds reads as end of input.
	stream := []byte{0x00, 0x10, 0x10, 0x03, 0x01, 0x02}
	r := NewRecordReader(bytes.NewReader(stream))
	_, _, err := r.Next()
	if err != io.EOF {
		t.Errorf("truncated record: got %v, want io.EOF", err)
	}

	// A length below 4 cannot describe a record.
	stream = []byte{0x00, 0x02, 0x10, 0x03}
	r = NewRecordReader(bytes.NewReader(stream))
	_, _, err = r.Next()
	if err != io.EOF {
		t.Errorf("short length: got %v, want io.EOF", err)
	}
}

func TestRecordTypeString(t *testing.T) {
	if got := RecBoundary.String(); got != "BOUNDARY" {
		t.Errorf("got %q, want BOUNDARY", got)
	}
	if got := RecordType(0xabcd).String(); got != "0xabcd" {
		t.Errorf("got %q, want 0xabcd", got)
	}
}
