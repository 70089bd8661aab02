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
	"testing"
)

func TestEncodeRealKnown(t *testing.T) {
	cases := []struct {
		x    float64
		want [8]byte
	}{
		{0, [8]byte{}},
		{1.0, [8]byte{0x41, 0x10, 0, 0, 0, 0, 0, 0}},
		{-2.5, [8]byte{0xc1, 0x28, 0, 0, 0, 0, 0, 0}},
		{16.0, [8]byte{0x42, 0x10, 0, 0, 0, 0, 0, 0}},
		{0.5, [8]byte{0x40, 0x80, 0, 0, 0, 0, 0, 0}},
	}
	for _, c := range cases {
		got := EncodeReal(c.x)
		if got != c.want {
			t.Errorf("EncodeReal(%g) = % 02x, want % 02x",
				c.x, got, c.want)
		}
	}
}

func TestDecodeRealKnown(t *testing.T) {
	cases := []struct {
		buf  [8]byte
		want float64
	}{
		{[8]byte{}, 0},
		{[8]byte{0x41, 0x10, 0, 0, 0, 0, 0, 0}, 1.0},
		{[8]byte{0xc1, 0x28, 0, 0, 0, 0, 0, 0}, -2.5},
		{[8]byte{0x40, 0x80, 0, 0, 0, 0, 0, 0}, 0.5},
	}
	for _, c := range cases {
		got := DecodeReal(c.buf[:])
		if got != c.want {
			t.Errorf("DecodeReal(% 02x) = %g, want %g",
				c.buf, got, c.want)
		}
	}
}

func TestRealRoundTrip(t *testing.T) {
	probes := []float64{
		1.0, -1.0, 0.5, 2.5, 16.0, 255.0,
		1e-3, 1e-9, 1e-6, 3.141592653589793,
		1e10, -1e-10, 1.0 / 3.0,
	}
	for _, x := range probes {
		buf := EncodeReal(x)
		y := DecodeReal(buf[:])
		var relErr float64
		if x != 0 {
			relErr = math.Abs((y - x) / x)
		}
		if relErr > math.Ldexp(1, -52) {
			t.Errorf("round trip %g -> % 02x -> %g (relative error %g)",
				x, buf, y, relErr)
		}
	}
}

func TestEncodeRealExtremes(t *testing.T) {
	// Values too large for the format are clamped rather than wrapped;
	// NaN and values too small for the format become zero.
	if got := EncodeReal(math.Inf(1)); got[0] != 0x7f {
		t.Errorf("EncodeReal(+Inf) exponent byte = %02x, want 7f", got[0])
	}
	if got := EncodeReal(math.Inf(-1)); got[0] != 0xff {
		t.Errorf("EncodeReal(-Inf) exponent byte = %02x, want ff", got[0])
	}
	if got := EncodeReal(math.NaN()); got != ([8]byte{}) {
		t.Errorf("EncodeReal(NaN) = % 02x, want zeros", got)
	}
	if got := EncodeReal(1e-100); got != ([8]byte{}) {
		t.Errorf("EncodeReal(1e-100) = % 02x, want zeros", got)
	}
}
