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

package kernel

import (
	"unsafe"

	"github.com/ajroetker/go-transpose/dispatch"
)

// asmTile adapts an assembly kernel to the Tile interface.
type asmTile[G any] struct {
	name  string
	level dispatch.Level
	size  int
	width int // bytes per group
	fn    asmFunc
}

func (k asmTile[G]) Size() int             { return k.size }
func (k asmTile[G]) Level() dispatch.Level { return k.level }
func (k asmTile[G]) Name() string          { return k.name }

func (k asmTile[G]) Transpose(src []G, srcOff, srcStride int, dst []G, dstOff, dstStride int) {
	n := k.size
	// The assembly does no bounds checking. Tiles leaving either slice go
	// through the checked loop, which panics like any index expression.
	if !tileInBounds(len(src), srcOff, srcStride, n) || !tileInBounds(len(dst), dstOff, dstStride, n) {
		transposeScalar(src, srcOff, srcStride, dst, dstOff, dstStride, n)
		return
	}
	w := k.width
	k.fn(
		(*byte)(unsafe.Pointer(&src[srcOff])), srcStride*w,
		(*byte)(unsafe.Pointer(&dst[dstOff])), dstStride*w,
	)
}

// tileInBounds reports whether every row of an n×n tile starting at off with
// the given stride lies inside [0, length).
func tileInBounds(length, off, stride, n int) bool {
	first, last := off, off+(n-1)*stride
	if first > last {
		first, last = last, first
	}
	return first >= 0 && last+n <= length
}
