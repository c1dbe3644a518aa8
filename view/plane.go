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

// Package view provides a strided, multi-channel 2D buffer type that knows
// how to transpose and rotate itself.
//
// A Plane keeps the flat slice, the stride and the channel count together,
// so callers do not have to repeat the length arithmetic that package
// transpose validates:
//
//	src := view.New[uint8](640, 480, 4)
//	dst := view.New[uint8](480, 640, 4)
//	if err := src.TransposeInto(dst, transpose.FlipRows, transpose.NoFlop); err != nil {
//	    return err
//	}
package view

import (
	"errors"
	"fmt"
	"math"
	"unsafe"

	"github.com/ajroetker/go-transpose/dispatch"
	"github.com/ajroetker/go-transpose/transpose"
)

// ErrLayout is returned for a buffer whose length, stride or channel count
// does not describe a valid plane, and for operations between planes of
// incompatible shapes.
var ErrLayout = errors.New("view: invalid layout")

// Plane is a width×height image of pixels with Channels interleaved
// elements each. Rows start every Stride elements; the elements between the
// end of a row's pixels and the next row are padding.
type Plane[T transpose.Element] struct {
	data     []T
	width    int
	height   int
	channels int
	stride   int // elements per row, including padding
}

// New allocates a zeroed plane. Rows are padded to a whole number of vector
// registers of the best dispatch level, and to a whole number of pixels.
// Non-positive sizes give an empty plane. New panics if channels is not in
// 1..transpose.MaxChannels or the plane would not fit in memory.
func New[T transpose.Element](width, height, channels int) *Plane[T] {
	if channels < 1 || channels > transpose.MaxChannels {
		panic(fmt.Sprintf("view: New with %d channels", channels))
	}
	if width <= 0 || height <= 0 {
		return &Plane[T]{channels: channels}
	}
	var zero T
	lanes := max(1, dispatch.Best().VectorBytes()/int(unsafe.Sizeof(zero)))
	unit := lcm(lanes, channels)
	if !fits(width, channels*unit) {
		panic(fmt.Sprintf("view: New with huge width %d", width))
	}
	stride := (width*channels + unit - 1) / unit * unit
	if !fits(stride, height) {
		panic(fmt.Sprintf("view: New with huge size %dx%d", width, height))
	}
	return &Plane[T]{
		data:     make([]T, stride*height),
		width:    width,
		height:   height,
		channels: channels,
		stride:   stride,
	}
}

// FromSlice wraps an existing buffer without copying it. The stride may
// leave padding that is not a whole number of pixels.
func FromSlice[T transpose.Element](data []T, width, height, channels, stride int) (*Plane[T], error) {
	switch {
	case channels < 1 || channels > transpose.MaxChannels:
		return nil, fmt.Errorf("%w: %d channels", ErrLayout, channels)
	case width < 0 || height < 0 || stride < 0:
		return nil, fmt.Errorf("%w: size %dx%d with stride %d", ErrLayout, width, height, stride)
	case !fits(width, channels) || !fits(stride, height):
		return nil, fmt.Errorf("%w: size %dx%d with stride %d overflows", ErrLayout, width, height, stride)
	case stride < width*channels:
		return nil, fmt.Errorf("%w: stride %d for %d pixels of %d channels", ErrLayout, stride, width, channels)
	case len(data) != stride*height:
		return nil, fmt.Errorf("%w: length %d, want %d", ErrLayout, len(data), stride*height)
	}
	return &Plane[T]{data: data, width: width, height: height, channels: channels, stride: stride}, nil
}

// fits reports whether a*b fits in an int. a and b are non-negative.
func fits(a, b int) bool {
	return b == 0 || a <= math.MaxInt/b
}

func lcm(a, b int) int {
	x, y := a, b
	for y != 0 {
		x, y = y, x%y
	}
	return a / x * b
}

func (p *Plane[T]) Width() int    { return p.width }
func (p *Plane[T]) Height() int   { return p.height }
func (p *Plane[T]) Channels() int { return p.channels }

// Stride returns the number of elements per row, including padding.
func (p *Plane[T]) Stride() int { return p.stride }

// Data returns the underlying buffer.
func (p *Plane[T]) Data() []T { return p.data }

// Row returns row y including its padding, or nil if y is out of range.
func (p *Plane[T]) Row(y int) []T {
	if y < 0 || y >= p.height {
		return nil
	}
	return p.data[y*p.stride : (y+1)*p.stride]
}

// RowSlice returns the pixels of row y without padding, or nil if y is out
// of range.
func (p *Plane[T]) RowSlice(y int) []T {
	if y < 0 || y >= p.height {
		return nil
	}
	start := y * p.stride
	return p.data[start : start+p.width*p.channels]
}

func (p *Plane[T]) inside(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

// At returns the channels of pixel (x, y), aliasing the plane, or nil
// outside the plane.
func (p *Plane[T]) At(x, y int) []T {
	if !p.inside(x, y) {
		return nil
	}
	i := y*p.stride + x*p.channels
	return p.data[i : i+p.channels : i+p.channels]
}

// Set copies px into pixel (x, y). Extra values are ignored and missing ones
// leave their channel unchanged. Out of range coordinates are ignored.
func (p *Plane[T]) Set(x, y int, px ...T) {
	if !p.inside(x, y) {
		return
	}
	copy(p.At(x, y), px)
}

// TransposeInto writes the transpose of p into dst, which must be
// p.Height() wide, p.Width() tall and have the same channel count.
func (p *Plane[T]) TransposeInto(dst *Plane[T], flip transpose.FlipMode, flop transpose.FlopMode) error {
	if dst.width != p.height || dst.height != p.width || dst.channels != p.channels {
		return fmt.Errorf("%w: cannot transpose %v into %v", ErrLayout, p, dst)
	}
	return transpose.Transpose(p.data, p.stride, dst.data, dst.stride, p.width, p.height, p.channels, flip, flop)
}

// Transposed returns a new plane holding the transpose of p.
func (p *Plane[T]) Transposed(flip transpose.FlipMode, flop transpose.FlopMode) (*Plane[T], error) {
	dst := New[T](p.height, p.width, p.channels)
	if err := p.TransposeInto(dst, flip, flop); err != nil {
		return nil, err
	}
	return dst, nil
}

// Rotate180Into writes p rotated by half a turn into dst, which must have
// p's shape.
func (p *Plane[T]) Rotate180Into(dst *Plane[T]) error {
	if err := p.sameShape(dst); err != nil {
		return err
	}
	return transpose.Rotate180(p.data, p.stride, dst.data, dst.stride, p.width, p.height, p.channels)
}

// FlipInto writes the rows of p into dst in reverse order.
func (p *Plane[T]) FlipInto(dst *Plane[T]) error {
	if err := p.sameShape(dst); err != nil {
		return err
	}
	return transpose.Flip(p.data, p.stride, dst.data, dst.stride, p.width, p.height, p.channels)
}

// FlopInto writes p mirrored left to right into dst.
func (p *Plane[T]) FlopInto(dst *Plane[T]) error {
	if err := p.sameShape(dst); err != nil {
		return err
	}
	return transpose.Flop(p.data, p.stride, dst.data, dst.stride, p.width, p.height, p.channels)
}

func (p *Plane[T]) sameShape(dst *Plane[T]) error {
	if dst.width != p.width || dst.height != p.height || dst.channels != p.channels {
		return fmt.Errorf("%w: shapes %v and %v differ", ErrLayout, p, dst)
	}
	return nil
}

// String describes the plane's shape, e.g. "640x480x4/2560".
func (p *Plane[T]) String() string {
	return fmt.Sprintf("%dx%dx%d/%d", p.width, p.height, p.channels, p.stride)
}
