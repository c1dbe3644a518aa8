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
	"math"
)

// MaxChannels is the largest supported number of interleaved channels.
const MaxChannels = 4

// checkTranspose validates a transpose of a width×height image with n
// channels. Lengths and strides are in elements. Strides need not be a
// multiple of n.
func checkTranspose(inLen, inStride, outLen, outStride, width, height, n int) error {
	if err := checkShape(inStride, outStride, width, height, n); err != nil {
		return err
	}
	if err := checkProducts(inStride, height, outStride, width, width, height, n); err != nil {
		return err
	}
	if inLen != inStride*height {
		return fmt.Errorf("%w: input length %d, want stride %d * height %d", ErrDimensionMismatch, inLen, inStride, height)
	}
	if outLen != outStride*width {
		return fmt.Errorf("%w: output length %d, want stride %d * width %d", ErrDimensionMismatch, outLen, outStride, width)
	}
	if inStride < width*n {
		return fmt.Errorf("%w: input stride %d shorter than %d pixels of %d channels", ErrDimensionMismatch, inStride, width, n)
	}
	if outStride < height*n {
		return fmt.Errorf("%w: output stride %d shorter than %d pixels of %d channels", ErrDimensionMismatch, outStride, height, n)
	}
	return nil
}

// checkSameShape validates operations whose output has the input's shape:
// Rotate180, Flip and Flop.
func checkSameShape(inLen, inStride, outLen, outStride, width, height, n int) error {
	if err := checkShape(inStride, outStride, width, height, n); err != nil {
		return err
	}
	if err := checkProducts(inStride, height, outStride, height, width, height, n); err != nil {
		return err
	}
	if inLen != inStride*height {
		return fmt.Errorf("%w: input length %d, want stride %d * height %d", ErrDimensionMismatch, inLen, inStride, height)
	}
	if outLen != outStride*height {
		return fmt.Errorf("%w: output length %d, want stride %d * height %d", ErrDimensionMismatch, outLen, outStride, height)
	}
	if inStride < width*n || outStride < width*n {
		return fmt.Errorf("%w: strides %d and %d must hold %d pixels of %d channels", ErrDimensionMismatch, inStride, outStride, width, n)
	}
	return nil
}

func checkShape(inStride, outStride, width, height, n int) error {
	if n < 1 || n > MaxChannels {
		return fmt.Errorf("%w: %d channels", ErrDimensionMismatch, n)
	}
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: negative size %dx%d", ErrDimensionMismatch, width, height)
	}
	if inStride < 0 || outStride < 0 {
		return fmt.Errorf("%w: negative stride", ErrDimensionMismatch)
	}
	return nil
}

// mulFits reports whether a*b fits in an int. a and b are non-negative.
func mulFits(a, b int) bool {
	return b == 0 || a <= math.MaxInt/b
}

// checkProducts rejects sizes whose buffer or row lengths overflow an int.
func checkProducts(inStride, inRows, outStride, outRows, width, height, n int) error {
	if !mulFits(inStride, inRows) || !mulFits(outStride, outRows) || !mulFits(width, n) || !mulFits(height, n) {
		return fmt.Errorf("%w: %dx%d pixels with strides %d and %d overflow", ErrDimensionMismatch, width, height, inStride, outStride)
	}
	return nil
}
