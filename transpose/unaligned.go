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

import "github.com/ajroetker/go-transpose/workerpool"

// transposeElements transposes an image whose strides are not a whole
// number of pixels, e.g. RGB8 rows padded to 4 bytes. Pixels are copied as
// n elements from element offsets, one output row per input column. Runs of
// output rows are spread over pool.
func transposeElements[T Element](pool *workerpool.Pool, in []T, inStride int, out []T, outStride, width, height, n int, o Orientation) {
	flip, flop := o.Flags()
	pool.ParallelFor(width, func(x0, x1 int) {
		for x := x0; x < x1; x++ {
			r := x
			if flop {
				r = width - 1 - x
			}
			d := out[r*outStride:][:height*n]
			for y := range height {
				sy := y
				if flip {
					sy = height - 1 - y
				}
				s := in[sy*inStride+x*n:][:n]
				copy(d[y*n:], s)
			}
		}
	})
}
