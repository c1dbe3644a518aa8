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

// Package kernel provides fixed-size tile transposers.
//
// A tile kernel transposes a square block of groups between two strided
// buffers. The group type G is opaque to the kernel: a single uint8, a [3]uint8
// RGB pixel and a [2]float32 pair are all moved as one unit. The portable
// kernel works for any G; accelerated kernels are registered per group byte
// width by the architecture files and only run when dispatch reports their
// level.
package kernel

import (
	"cmp"
	"slices"
	"strconv"
	"unsafe"

	"github.com/ajroetker/go-transpose/dispatch"
)

// PortableSize is the edge length of the portable kernel's tile.
const PortableSize = 4

// Tile transposes a Size()×Size() tile of groups.
//
// Row r of the source tile starts at src[srcOff+r*srcStride] and row c of the
// destination tile starts at dst[dstOff+c*dstStride]. Strides are in groups
// and may be negative. After the call
//
//	dst[dstOff+c*dstStride+r] == src[srcOff+r*srcStride+c]
//
// for every r, c in [0, Size()). The caller guarantees every touched index is
// inside the slices.
type Tile[G any] interface {
	Size() int
	Level() dispatch.Level
	Name() string
	Transpose(src []G, srcOff, srcStride int, dst []G, dstOff, dstStride int)
}

// Portable is the reference 4×4 kernel built from plain indexed copies.
type Portable[G any] struct{}

func (Portable[G]) Size() int             { return PortableSize }
func (Portable[G]) Level() dispatch.Level { return dispatch.LevelScalar }
func (Portable[G]) Name() string          { return "portable4x4" }

func (Portable[G]) Transpose(src []G, srcOff, srcStride int, dst []G, dstOff, dstStride int) {
	transposeScalar(src, srcOff, srcStride, dst, dstOff, dstStride, PortableSize)
}

// transposeScalar is the element-by-element tile transpose shared by the
// portable kernel and the bounds-check fallback of the assembly wrappers.
func transposeScalar[G any](src []G, srcOff, srcStride int, dst []G, dstOff, dstStride int, n int) {
	for c := range n {
		d := dstOff + c*dstStride
		s := srcOff + c
		for r := range n {
			dst[d+r] = src[s+r*srcStride]
		}
	}
}

// Compose builds a kernel of twice the inner size from four inner
// transposes, using
//
//	[ A B ]ᵗ   [ Aᵗ Cᵗ ]
//	[ C D ]  = [ Bᵗ Dᵗ ]
func Compose[G any](inner Tile[G]) Tile[G] {
	return composed[G]{inner: inner, half: inner.Size()}
}

type composed[G any] struct {
	inner Tile[G]
	half  int
}

func (k composed[G]) Size() int             { return 2 * k.half }
func (k composed[G]) Level() dispatch.Level { return k.inner.Level() }

func (k composed[G]) Name() string {
	n := k.Size()
	return k.inner.Name() + "x2=" + strconv.Itoa(n) + "x" + strconv.Itoa(n)
}

func (k composed[G]) Transpose(src []G, srcOff, srcStride int, dst []G, dstOff, dstStride int) {
	h := k.half
	// A -> top left.
	k.inner.Transpose(src, srcOff, srcStride, dst, dstOff, dstStride)
	// B (top right of src) -> bottom left.
	k.inner.Transpose(src, srcOff+h, srcStride, dst, dstOff+h*dstStride, dstStride)
	// C (bottom left of src) -> top right.
	k.inner.Transpose(src, srcOff+h*srcStride, srcStride, dst, dstOff+h, dstStride)
	// D -> bottom right.
	k.inner.Transpose(src, srcOff+h*srcStride+h, srcStride, dst, dstOff+h*dstStride+h, dstStride)
}

// asmFunc is the signature shared by all assembly tile kernels. Strides are
// in bytes and may be negative.
type asmFunc func(src *byte, srcStride int, dst *byte, dstStride int)

// accelerated describes one assembly kernel registered by an architecture
// file.
type accelerated struct {
	name    string
	level   dispatch.Level
	width   uintptr // group size in bytes
	size    int     // native tile edge
	doubled int     // how many times Compose is applied on top
	fn      asmFunc
}

// registry is appended to by the init functions in z_kernel_*.go.
var registry []accelerated

// All returns every kernel able to transpose groups of type G on this
// machine: accelerated kernels whose level dispatch reports, by priority
// rank then larger tiles first, followed by the portable kernel.
func All[G any]() []Tile[G] {
	var zero G
	width := unsafe.Sizeof(zero)

	var out []Tile[G]
	for _, a := range registry {
		if a.width != width || !dispatch.Has(a.level) {
			continue
		}
		var k Tile[G] = asmTile[G]{name: a.name, level: a.level, size: a.size, width: int(width), fn: a.fn}
		for range a.doubled {
			k = Compose(k)
		}
		out = append(out, k)
	}
	slices.SortStableFunc(out, func(a, b Tile[G]) int {
		if c := cmp.Compare(dispatch.Rank(a.Level()), dispatch.Rank(b.Level())); c != 0 {
			return c
		}
		return cmp.Compare(b.Size(), a.Size())
	})
	return append(out, Portable[G]{})
}

// Best returns the preferred kernel for groups of type G.
func Best[G any]() Tile[G] {
	return All[G]()[0]
}
