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

// Package orient corrects the orientation of standard library images
// according to their EXIF/TIFF orientation tag.
//
// The tag describes how the stored pixels relate to the intended view.
// Apply undoes it, so that a camera image tagged RightTop (6) comes out
// upright after a quarter turn clockwise.
package orient

import (
	"errors"
	"fmt"
	"image"

	"github.com/ajroetker/go-transpose/transpose"
	"github.com/ajroetker/go-transpose/workerpool"
)

var (
	// ErrUnsupported is returned for image types other than the ones listed
	// on Apply, or when dst and src have different types.
	ErrUnsupported = errors.New("orient: unsupported image type")
	// ErrBounds is returned when dst does not have the oriented size of src.
	ErrBounds = errors.New("orient: destination size mismatch")
	// ErrInvalid is returned for tag values outside 1 to 8.
	ErrInvalid = errors.New("orient: invalid orientation")
)

// Orientation is an EXIF orientation tag value. The names give the visual
// position of the stored image's 0th row and 0th column.
type Orientation int

const (
	TopLeft     Orientation = 1 + iota // upright, nothing to do
	TopRight                           // mirrored left to right
	BottomRight                        // rotated by 180 degrees
	BottomLeft                         // mirrored top to bottom
	LeftTop                            // mirrored across the main diagonal
	RightTop                           // needs a quarter turn clockwise
	RightBottom                        // mirrored across the anti-diagonal
	LeftBottom                         // needs a quarter turn counter-clockwise
)

// Valid reports whether o is one of the eight defined values.
func (o Orientation) Valid() bool { return o >= TopLeft && o <= LeftBottom }

// SwapsAxes reports whether correcting o exchanges width and height.
func (o Orientation) SwapsAxes() bool { return o >= LeftTop && o <= LeftBottom }

// Inverse returns the orientation whose correction undoes o's.
func (o Orientation) Inverse() Orientation {
	switch o {
	case RightTop:
		return LeftBottom
	case LeftBottom:
		return RightTop
	}
	return o
}

func (o Orientation) String() string {
	names := [...]string{"TopLeft", "TopRight", "BottomRight", "BottomLeft", "LeftTop", "RightTop", "RightBottom", "LeftBottom"}
	if !o.Valid() {
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
	return names[o-1]
}

// transposeFlags returns the transpose producing the correction of an axis
// swapping orientation.
func (o Orientation) transposeFlags() (transpose.FlipMode, transpose.FlopMode) {
	switch o {
	case RightTop:
		return transpose.RotateClockwise.Flags()
	case RightBottom:
		return transpose.Transverse.Flags()
	case LeftBottom:
		return transpose.RotateCounterClockwise.Flags()
	}
	return transpose.PlainTranspose.Flags()
}

// Bounds returns the bounds of the corrected image of src, anchored at the
// origin.
func Bounds(src image.Rectangle, o Orientation) image.Rectangle {
	w, h := src.Dx(), src.Dy()
	if o.SwapsAxes() {
		w, h = h, w
	}
	return image.Rect(0, 0, w, h)
}

// Apply writes src with orientation o corrected into dst. dst must have the
// same type as src and the size of Bounds(src.Bounds(), o); its origin may
// be anywhere. Supported types are *image.Gray, *image.Alpha,
// *image.Gray16, *image.Alpha16, *image.RGBA, *image.NRGBA and *image.CMYK.
// dst and src must not overlap.
func Apply(dst, src image.Image, o Orientation) error {
	return ApplyParallel(nil, dst, src, o)
}

// ApplyParallel is Apply with the transposing orientations spread over pool.
func ApplyParallel(pool *workerpool.Pool, dst, src image.Image, o Orientation) error {
	if !o.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalid, int(o))
	}
	s, ok := pixelsOf(src)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnsupported, src)
	}
	d, ok := pixelsOf(dst)
	if !ok || d.kind != s.kind {
		return fmt.Errorf("%w: %T into %T", ErrUnsupported, src, dst)
	}
	if want := Bounds(s.rect, o); d.rect.Size() != want.Size() {
		return fmt.Errorf("%w: %v oriented %v is %v, got %v", ErrBounds, s.rect, o, want.Size(), d.rect.Size())
	}
	return s.orientInto(pool, d, o)
}

// New allocates an image of src's type and writes the corrected src into
// it.
func New(src image.Image, o Orientation) (image.Image, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalid, int(o))
	}
	r := Bounds(src.Bounds(), o)
	var dst image.Image
	switch src.(type) {
	case *image.Gray:
		dst = image.NewGray(r)
	case *image.Alpha:
		dst = image.NewAlpha(r)
	case *image.Gray16:
		dst = image.NewGray16(r)
	case *image.Alpha16:
		dst = image.NewAlpha16(r)
	case *image.RGBA:
		dst = image.NewRGBA(r)
	case *image.NRGBA:
		dst = image.NewNRGBA(r)
	case *image.CMYK:
		dst = image.NewCMYK(r)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, src)
	}
	if err := Apply(dst, src, o); err != nil {
		return nil, err
	}
	return dst, nil
}
