// Copyright 2025 go-transpose Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package transpose

// FlipMode selects whether input rows are read bottom to top.
type FlipMode bool

const (
	NoFlip   FlipMode = false
	FlipRows FlipMode = true
)

// FlopMode selects whether output rows are written bottom to top.
type FlopMode bool

const (
	NoFlop      FlopMode = false
	FlopColumns FlopMode = true
)

// Orientation is the geometric transform produced by a transpose with a
// given pair of flags.
type Orientation uint8

const (
	// PlainTranspose mirrors across the main diagonal (EXIF 5).
	PlainTranspose Orientation = iota
	// RotateClockwise is a quarter turn clockwise (EXIF 6).
	RotateClockwise
	// RotateCounterClockwise is a quarter turn counter-clockwise (EXIF 8).
	RotateCounterClockwise
	// Transverse mirrors across the anti-diagonal (EXIF 7).
	Transverse

	numOrientations
)

// OrientationOf folds the two flags into their orientation.
func OrientationOf(flip FlipMode, flop FlopMode) Orientation {
	var o Orientation
	if flip {
		o |= RotateClockwise
	}
	if flop {
		o |= RotateCounterClockwise
	}
	return o
}

// Flags returns the flag pair producing o.
func (o Orientation) Flags() (FlipMode, FlopMode) {
	return FlipMode(o&RotateClockwise != 0), FlopMode(o&RotateCounterClockwise != 0)
}

func (o Orientation) String() string {
	switch o {
	case PlainTranspose:
		return "transpose"
	case RotateClockwise:
		return "rotate-cw"
	case RotateCounterClockwise:
		return "rotate-ccw"
	case Transverse:
		return "transverse"
	default:
		return "invalid"
	}
}
