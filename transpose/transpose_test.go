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
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-transpose/kernel"
	"github.com/ajroetker/go-transpose/workerpool"
)

var orientations = []Orientation{PlainTranspose, RotateClockwise, RotateCounterClockwise, Transverse}

// sizes covers block-aligned, block+1, leaf-limit crossings and degenerate
// shapes.
var sizes = []struct{ w, h int }{
	{1, 1}, {1, 7}, {7, 1}, {2, 300}, {300, 2},
	{4, 4}, {8, 8}, {16, 16}, {17, 16}, {16, 17}, {33, 31},
	{128, 128}, {129, 128}, {128, 129}, {257, 130},
}

func fill[T Element](n int) []T {
	s := make([]T, n)
	for i := range s {
		s[i] = T(i*31 + 7)
	}
	return s
}

// reference is the definition of the transpose, one pixel at a time.
func reference[T Element](in []T, inStride int, out []T, outStride, w, h, n int, flip FlipMode, flop FlopMode) {
	for y := range h {
		for x := range w {
			iy, ox := y, x
			if flip {
				iy = h - 1 - y
			}
			if flop {
				ox = w - 1 - x
			}
			copy(out[ox*outStride+y*n:][:n], in[iy*inStride+x*n:][:n])
		}
	}
}

func TestConcreteScenario(t *testing.T) {
	in := []uint8{
		0, 1, 2, 3,
		4, 5, 6, 7,
		8, 9, 10, 11,
	}
	out := make([]uint8, 12)
	require.NoError(t, TransposePlane8(in, 4, out, 3, 4, 3, NoFlip, NoFlop))
	assert.Equal(t, []uint8{
		0, 4, 8,
		1, 5, 9,
		2, 6, 10,
		3, 7, 11,
	}, out)
}

func TestGroupedScenario(t *testing.T) {
	// A B
	// C D
	in := []uint8{
		1, 2, 3, 4 /* A */, 5, 6, 7, 8, /* B */
		9, 10, 11, 12 /* C */, 13, 14, 15, 16, /* D */
	}
	out := make([]uint8, 16)
	require.NoError(t, TransposeRGBA8(in, 8, out, 8, 2, 2, NoFlip, FlopColumns))
	// B D
	// A C
	assert.Equal(t, []uint8{
		5, 6, 7, 8, 13, 14, 15, 16,
		1, 2, 3, 4, 9, 10, 11, 12,
	}, out)
}

func testMappingLaw[T Element](t *testing.T) {
	for n := 1; n <= MaxChannels; n++ {
		for _, sz := range sizes {
			for _, o := range orientations {
				t.Run(fmt.Sprintf("c%d/%dx%d/%v", n, sz.w, sz.h, o), func(t *testing.T) {
					flip, flop := o.Flags()
					in := fill[T](sz.w * sz.h * n)
					got := make([]T, len(in))
					want := make([]T, len(in))
					reference(in, sz.w*n, want, sz.h*n, sz.w, sz.h, n, flip, flop)
					require.NoError(t, Transpose(in, sz.w*n, got, sz.h*n, sz.w, sz.h, n, flip, flop))
					if !slices.Equal(got, want) {
						for i := range got {
							if got[i] != want[i] {
								t.Fatalf("first difference at %d: got %v, want %v", i, got[i], want[i])
							}
						}
					}
				})
			}
		}
	}
}

func TestMappingLawUint8(t *testing.T)   { testMappingLaw[uint8](t) }
func TestMappingLawUint16(t *testing.T)  { testMappingLaw[uint16](t) }
func TestMappingLawFloat32(t *testing.T) { testMappingLaw[float32](t) }

func TestPerFormatFunctions(t *testing.T) {
	const w, h = 19, 35
	type call func(in []uint16, inStride int, out []uint16, outStride, width, height int, flip FlipMode, flop FlopMode) error
	for n, fn := range map[int]call{
		1: TransposePlane16,
		2: TransposePlaneWithAlpha16,
		3: TransposeRGB16,
		4: TransposeRGBA16,
	} {
		in := fill[uint16](w * h * n)
		got := make([]uint16, len(in))
		want := make([]uint16, len(in))
		reference(in, w*n, want, h*n, w, h, n, FlipRows, NoFlop)
		require.NoError(t, fn(in, w*n, got, h*n, w, h, FlipRows, NoFlop))
		assert.Equal(t, want, got, "%d channels", n)
	}
}

func TestInvolution(t *testing.T) {
	for _, sz := range sizes {
		for n := 1; n <= MaxChannels; n++ {
			in := fill[float32](sz.w * sz.h * n)
			mid := make([]float32, len(in))
			back := make([]float32, len(in))
			require.NoError(t, Transpose(in, sz.w*n, mid, sz.h*n, sz.w, sz.h, n, NoFlip, NoFlop))
			require.NoError(t, Transpose(mid, sz.h*n, back, sz.w*n, sz.h, sz.w, n, NoFlip, NoFlop))
			require.Equal(t, in, back, "%dx%d c%d", sz.w, sz.h, n)
		}
	}
}

func TestQuarterTurnsCompose(t *testing.T) {
	// Clockwise then counter-clockwise is the identity.
	const w, h = 45, 23
	in := fill[uint8](w * h * 3)
	mid := make([]uint8, len(in))
	back := make([]uint8, len(in))
	require.NoError(t, TransposeRGB8(in, w*3, mid, h*3, w, h, FlipRows, NoFlop))
	require.NoError(t, TransposeRGB8(mid, h*3, back, w*3, h, w, NoFlip, FlopColumns))
	assert.Equal(t, in, back)
}

func TestStridedBuffers(t *testing.T) {
	const w, h, n = 37, 21, 2
	inStride, outStride := w*n+6, h*n+4
	in := fill[uint8](inStride * h)
	for _, o := range orientations {
		flip, flop := o.Flags()
		got := make([]uint8, outStride*w)
		want := make([]uint8, outStride*w)
		for i := range got {
			got[i], want[i] = 0xAB, 0xAB
		}
		reference(in, inStride, want, outStride, w, h, n, flip, flop)
		require.NoError(t, TransposePlaneWithAlpha8(in, inStride, got, outStride, w, h, flip, flop))
		// Padding bytes keep their value.
		assert.Equal(t, want, got, o.String())
	}
}

func TestValidation(t *testing.T) {
	const w, h = 5, 3
	cases := []struct {
		name                    string
		inLen, inStride         int
		outLen, outStride       int
		width, height, channels int
	}{
		{"short input", w*h - 1, w, w * h, h, w, h, 1},
		{"long input", w*h + 1, w, w * h, h, w, h, 1},
		{"short output", w * h, w, w*h - 1, h, w, h, 1},
		{"input stride too small", (w - 1) * h, w - 1, w * h, h, w, h, 1},
		{"output stride too small", w * h, w, (h - 1) * w, h - 1, w, h, 1},
		{"negative width", 0, 0, 0, 0, -1, h, 1},
		{"negative height", 0, w, 0, 0, w, -1, 1},
		{"zero channels", w * h, w, w * h, h, w, h, 0},
		{"five channels", 5 * w * h, 5 * w, 5 * w * h, 5 * h, w, h, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := fill[uint8](max(c.inLen, 0))
			out := make([]uint8, max(c.outLen, 0))
			for i := range out {
				out[i] = 0x5A
			}
			before := slices.Clone(out)
			err := Transpose(in, c.inStride, out, c.outStride, c.width, c.height, c.channels, FlipRows, FlopColumns)
			require.ErrorIs(t, err, ErrDimensionMismatch)
			assert.Equal(t, before, out, "output modified on error")
		})
	}
}

func TestOverflowingSizes(t *testing.T) {
	out := make([]uint8, 4)
	huge := 1 << 62
	for _, c := range []struct {
		name string
		call func() error
	}{
		{"input stride times height", func() error {
			return TransposePlane8(nil, huge, out, 4, 1, 4, NoFlip, NoFlop)
		}},
		{"output stride times width", func() error {
			return TransposePlane8(out, 1, nil, huge, 4, 1, NoFlip, NoFlop)
		}},
		{"width times channels", func() error {
			return TransposeRGBA8(nil, 0, nil, 0, huge, 0, NoFlip, NoFlop)
		}},
		{"height times channels", func() error {
			return TransposeRGBA8(nil, 0, nil, 0, 0, huge, NoFlip, NoFlop)
		}},
		{"rotate strides", func() error {
			return Rotate180Plane8(nil, huge, nil, huge, 1, 4)
		}},
		{"flip strides", func() error {
			return Flip[uint16](nil, huge, nil, huge, 1, 8, 2)
		}},
	} {
		t.Run(c.name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() { err = c.call() })
			require.ErrorIs(t, err, ErrDimensionMismatch)
		})
	}
	assert.Equal(t, make([]uint8, 4), out)
}

// testPaddedStrides transposes images whose rows are padded by a number of
// elements that is not a multiple of the channel count.
func testPaddedStrides[T Element](t *testing.T, fn func(in []T, inStride int, out []T, outStride, w, h int, flip FlipMode, flop FlopMode) error) {
	const n = 3
	pool := workerpool.New(3)
	defer pool.Close()
	for _, sz := range []struct{ w, h, padIn, padOut int }{
		{2, 2, 1, 1}, {5, 3, 2, 0}, {17, 9, 0, 1}, {40, 33, 1, 2},
	} {
		inStride, outStride := sz.w*n+sz.padIn, sz.h*n+sz.padOut
		in := fill[T](inStride * sz.h)
		for _, o := range orientations {
			t.Run(fmt.Sprintf("%dx%d+%d+%d/%v", sz.w, sz.h, sz.padIn, sz.padOut, o), func(t *testing.T) {
				flip, flop := o.Flags()
				want := make([]T, outStride*sz.w)
				got := make([]T, len(want))
				par := make([]T, len(want))
				for i := range want {
					want[i], got[i], par[i] = 99, 99, 99
				}
				reference(in, inStride, want, outStride, sz.w, sz.h, n, flip, flop)
				require.NoError(t, fn(in, inStride, got, outStride, sz.w, sz.h, flip, flop))
				assert.Equal(t, want, got)
				require.NoError(t, TransposeParallel(pool, in, inStride, par, outStride, sz.w, sz.h, n, flip, flop))
				assert.Equal(t, want, par)
			})
		}
	}
}

func TestPaddedStridesRGB8(t *testing.T)  { testPaddedStrides(t, TransposeRGB8) }
func TestPaddedStridesRGB16(t *testing.T) { testPaddedStrides(t, TransposeRGB16) }

func TestZeroSize(t *testing.T) {
	out := []uint16{1, 2, 3}
	require.NoError(t, TransposePlane16(nil, 0, nil, 0, 0, 0, NoFlip, NoFlop))
	require.NoError(t, TransposePlane16(nil, 4, nil, 0, 0, 0, FlipRows, FlopColumns))
	// 0 wide, 3 tall: the output has no rows.
	require.NoError(t, TransposePlane16(nil, 0, out[:0], 3, 0, 3, NoFlip, NoFlop))
	// 3 wide, 0 tall: the output has 3 rows of stride 0.
	require.NoError(t, TransposeRGB16(nil, 9, nil, 0, 3, 0, NoFlip, NoFlop))
	assert.Equal(t, []uint16{1, 2, 3}, out)
}

func TestParallelMatchesSequential(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	const w, h, n = 611, 397, 4
	in := fill[uint8](w * h * n)
	for _, o := range orientations {
		flip, flop := o.Flags()
		seq := make([]uint8, len(in))
		par := make([]uint8, len(in))
		require.NoError(t, Transpose(in, w*n, seq, h*n, w, h, n, flip, flop))
		require.NoError(t, TransposeParallel(pool, in, w*n, par, h*n, w, h, n, flip, flop))
		require.Equal(t, seq, par, o.String())
	}
	// A nil pool is sequential.
	out := make([]uint8, len(in))
	require.NoError(t, TransposeParallel[uint8](nil, in, w*n, out, h*n, w, h, n, NoFlip, NoFlop))
}

// testKernelsAgree runs every kernel available for G through the engine and
// compares with the portable kernel, on packed and on padded buffers.
func testKernelsAgree[G comparable](t *testing.T, mk func(i int) G) {
	shapes := []struct{ w, h, padIn, padOut int }{
		{16, 16, 0, 0}, {17, 33, 0, 0}, {200, 131, 0, 0}, {1, 40, 0, 0},
		{16, 16, 3, 5}, {24, 40, 1, 7}, {33, 17, 8, 1}, {130, 129, 5, 3},
	}
	for _, k := range kernel.All[G]() {
		for _, o := range orientations {
			for _, sz := range shapes {
				t.Run(fmt.Sprintf("%s/%v/%dx%d+%d+%d", k.Name(), o, sz.w, sz.h, sz.padIn, sz.padOut), func(t *testing.T) {
					srcStride, dstStride := sz.w+sz.padIn, sz.h+sz.padOut
					src := make([]G, srcStride*sz.h)
					for i := range src {
						src[i] = mk(i)
					}
					got := make([]G, dstStride*sz.w)
					want := make([]G, len(got))
					for i := range got {
						got[i], want[i] = mk(-1), mk(-1)
					}
					NewExecutor(o, kernel.Tile[G](kernel.Portable[G]{})).Run(nil, src, srcStride, want, dstStride, sz.w, sz.h)
					NewExecutor(o, k).Run(nil, src, srcStride, got, dstStride, sz.w, sz.h)
					require.Equal(t, want, got)
				})
			}
		}
	}
}

func TestKernelsAgree(t *testing.T) {
	t.Run("1byte", func(t *testing.T) { testKernelsAgree(t, func(i int) [1]uint8 { return [1]uint8{uint8(i)} }) })
	t.Run("2byte", func(t *testing.T) { testKernelsAgree(t, func(i int) [1]uint16 { return [1]uint16{uint16(i)} }) })
	t.Run("3byte", func(t *testing.T) {
		testKernelsAgree(t, func(i int) [3]uint8 { return [3]uint8{uint8(i), uint8(i >> 8), 9} })
	})
	t.Run("4byte", func(t *testing.T) {
		testKernelsAgree(t, func(i int) [4]uint8 { return [4]uint8{uint8(i), uint8(i >> 8), 1, 2} })
	})
	t.Run("8byte", func(t *testing.T) {
		testKernelsAgree(t, func(i int) [2]float32 { return [2]float32{float32(i), float32(-i)} })
	})
	t.Run("16byte", func(t *testing.T) {
		testKernelsAgree(t, func(i int) [4]float32 { return [4]float32{float32(i), 0, 1, 2} })
	})
}

func TestSelectedKernels(t *testing.T) {
	ks := SelectedKernels()
	require.Len(t, ks, 12)
	seen := map[string]bool{}
	for _, k := range ks {
		assert.False(t, seen[k.Format], "duplicate format %s", k.Format)
		seen[k.Format] = true
		assert.NotEmpty(t, k.Kernel)
		assert.Zero(t, blockSize%k.TileSize, "%s: tile %d", k.Format, k.TileSize)
	}
	for _, f := range []string{"Plane8", "PlaneWithAlphaF32", "RGB16", "RGBA8"} {
		assert.True(t, seen[f], f)
	}
	// RGB groups have no accelerated kernel.
	for _, k := range ks {
		if k.Format == "RGB8" {
			assert.Equal(t, kernel.PortableSize, k.TileSize)
		}
	}
}

func TestOrientation(t *testing.T) {
	for _, o := range orientations {
		flip, flop := o.Flags()
		assert.Equal(t, o, OrientationOf(flip, flop))
	}
	assert.Equal(t, PlainTranspose, OrientationOf(NoFlip, NoFlop))
	assert.Equal(t, RotateClockwise, OrientationOf(FlipRows, NoFlop))
	assert.Equal(t, RotateCounterClockwise, OrientationOf(NoFlip, FlopColumns))
	assert.Equal(t, Transverse, OrientationOf(FlipRows, FlopColumns))
	assert.Equal(t, "invalid", numOrientations.String())
}

func TestLeavesCoverImage(t *testing.T) {
	for _, sz := range []struct{ w, h int }{{1000, 3}, {513, 700}, {128, 129}, {3, 3}} {
		ls := leaves(region{0, sz.w, 0, sz.h}, nil)
		area := 0
		for _, r := range ls {
			require.True(t, isLeaf(r), "%+v", r)
			area += r.width() * r.height()
		}
		assert.Equal(t, sz.w*sz.h, area, "%dx%d", sz.w, sz.h)
	}
	a, b := split(region{0, 300, 0, 300})
	assert.Equal(t, region{0, 300, 0, 150}, a, "ties split y")
	assert.Equal(t, region{0, 300, 150, 300}, b)
}

func BenchmarkTransposePlane8(b *testing.B) {
	for _, size := range []int{64, 256, 1024, 4096} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			in := make([]uint8, size*size)
			out := make([]uint8, size*size)
			b.SetBytes(int64(size * size * 2))
			for b.Loop() {
				_ = TransposePlane8(in, size, out, size, size, size, FlipRows, NoFlop)
			}
		})
	}
}

func BenchmarkTransposeRGBA8(b *testing.B) {
	for _, size := range []int{256, 1024, 2048} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			in := make([]uint8, size*size*4)
			out := make([]uint8, size*size*4)
			b.SetBytes(int64(size * size * 4 * 2))
			for b.Loop() {
				_ = TransposeRGBA8(in, size*4, out, size*4, size, size, NoFlip, NoFlop)
			}
		})
	}
}

func BenchmarkTransposeParallel(b *testing.B) {
	pool := workerpool.New(0)
	defer pool.Close()
	const size = 4096
	in := make([]float32, size*size)
	out := make([]float32, size*size)
	b.SetBytes(int64(size * size * 4 * 2))
	for b.Loop() {
		_ = TransposeParallel(pool, in, size, out, size, size, size, 1, NoFlip, FlopColumns)
	}
}
