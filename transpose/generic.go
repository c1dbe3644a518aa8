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

import (
	"fmt"

	"github.com/ajroetker/go-transpose/workerpool"
)

// Transpose transposes a width×height image with the given number of
// interleaved channels into out, which is height pixels wide and width rows
// tall. Strides are in elements.
func Transpose[T Element](in []T, inStride int, out []T, outStride, width, height, channels int, flip FlipMode, flop FlopMode) error {
	return transposeByFormat(nil, in, inStride, out, outStride, width, height, channels, flip, flop)
}

// TransposeParallel is Transpose with the leaf regions spread over pool.
// A nil pool runs on the calling goroutine. The output is identical to
// Transpose.
func TransposeParallel[T Element](pool *workerpool.Pool, in []T, inStride int, out []T, outStride, width, height, channels int, flip FlipMode, flop FlopMode) error {
	return transposeByFormat(pool, in, inStride, out, outStride, width, height, channels, flip, flop)
}

// Rotate180 rotates a width×height image by half a turn into out, which has
// the same dimensions.
func Rotate180[T Element](in []T, inStride int, out []T, outStride, width, height, channels int) error {
	return mirrorByChannels(halfTurn, in, inStride, out, outStride, width, height, channels)
}

// Flip writes the rows of in to out in reverse order.
func Flip[T Element](in []T, inStride int, out []T, outStride, width, height, channels int) error {
	return mirrorByChannels(reverseRows, in, inStride, out, outStride, width, height, channels)
}

// Flop writes every row of in to out with its pixels in reverse order.
func Flop[T Element](in []T, inStride int, out []T, outStride, width, height, channels int) error {
	return mirrorByChannels(reverseColumns, in, inStride, out, outStride, width, height, channels)
}

func mirrorByChannels[T Element](m mirror, in []T, inStride int, out []T, outStride, width, height, channels int) error {
	switch channels {
	case 1:
		return mirrorGroups[[1]T](m, in, inStride, out, outStride, width, height)
	case 2:
		return mirrorGroups[[2]T](m, in, inStride, out, outStride, width, height)
	case 3:
		return mirrorGroups[[3]T](m, in, inStride, out, outStride, width, height)
	case 4:
		return mirrorGroups[[4]T](m, in, inStride, out, outStride, width, height)
	}
	return fmt.Errorf("%w: %d channels", ErrDimensionMismatch, channels)
}
