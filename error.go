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

import "errors"

var (
	// ErrInvalidArgument indicates a nil database or an empty cell
	// name.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrCellNotFound indicates that the requested top cell does not
	// exist in the database.
	ErrCellNotFound = errors.New("cell not found")

	// ErrInterrupted indicates that the progress callback requested
	// termination.
	ErrInterrupted = errors.New("extraction interrupted")

	// ErrDepthExceeded indicates that cell references nest deeper than
	// the flattener allows.  This normally means the reference graph
	// contains a cycle.
	ErrDepthExceeded = errors.New("cell references nested too deeply")
)
