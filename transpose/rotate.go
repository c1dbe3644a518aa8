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

// mirror is an orientation change that keeps the image's shape.
type mirror uint8

const (
	// halfTurn rotates by 180 degrees.
	halfTurn mirror = iota
	// reverseRows writes the rows bottom to top (vertical flip).
	reverseRows
	// reverseColumns reverses the pixels of each row (horizontal flop).
	reverseColumns
)

// mirrorGroups validates a call in elements, then applies m in pixels.
func mirrorGroups[G any, T Element](m mirror, in []T, inStride int, out []T, outStride, width, height int) error {
	n := groupLen[G, T]()
	if err := checkSameShape(len(in), inStride, len(out), outStride, width, height, n); err != nil {
		return err
	}
	if width == 0 || height == 0 {
		return nil
	}
	row := width * n
	for y := range height {
		// Rows are reinterpreted one at a time, so strides may split pixels.
		s := asGroups[G](in[y*inStride:][:row])
		target := y
		if m != reverseColumns {
			target = height - 1 - y
		}
		d := asGroups[G](out[target*outStride:][:row])
		if m == reverseRows {
			copy(d, s)
			continue
		}
		for x, g := range s {
			d[width-1-x] = g
		}
	}
	return nil
}
