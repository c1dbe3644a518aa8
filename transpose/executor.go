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
	"sync"

	"github.com/ajroetker/go-transpose/dispatch"
	"github.com/ajroetker/go-transpose/kernel"
	"github.com/ajroetker/go-transpose/workerpool"
)

// Executor is a transpose bound to one orientation and one tile kernel.
type Executor[G any] struct {
	orientation Orientation
	tile        kernel.Tile[G]
}

// NewExecutor binds an orientation to a kernel. Most callers use the
// per-format functions, which pick the best kernel; this is for running a
// specific kernel, e.g. to compare kernels against each other.
func NewExecutor[G any](o Orientation, tile kernel.Tile[G]) Executor[G] {
	return Executor[G]{orientation: o, tile: tile}
}

func (e Executor[G]) Orientation() Orientation { return e.orientation }
func (e Executor[G]) Kernel() kernel.Tile[G]   { return e.tile }

// Run transposes a width×height image of pixels. Strides are in pixels.
// The buffers must already satisfy the length and stride rules the
// per-format functions check; Run panics otherwise.
func (e Executor[G]) Run(pool *workerpool.Pool, src []G, srcStride int, dst []G, dstStride int, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	j := newJob(e.orientation, e.tile, src, srcStride, dst, dstStride, width, height)
	if pool.NumWorkers() <= 1 {
		j.run(j.all())
		return
	}
	work := leaves(j.all(), nil)
	pool.ParallelForAtomic(len(work), func(i int) {
		j.leaf(work[i])
	})
}

// dispatcher memoizes the executors of one pixel format. The zero value is
// ready to use.
type dispatcher[G any] struct {
	once  sync.Once
	execs [numOrientations]Executor[G]
}

func (d *dispatcher[G]) executor(o Orientation) Executor[G] {
	d.once.Do(func() {
		tile := kernel.Best[G]()
		for k := range numOrientations {
			d.execs[k] = NewExecutor(k, tile)
		}
	})
	return d.execs[o]
}

// FormatKernel reports the kernel chosen for one pixel format.
type FormatKernel struct {
	Format   string
	Kernel   string
	Level    dispatch.Level
	TileSize int
}

func (d *dispatcher[G]) describe(format string) FormatKernel {
	t := d.executor(PlainTranspose).Kernel()
	return FormatKernel{Format: format, Kernel: t.Name(), Level: t.Level(), TileSize: t.Size()}
}

// transposeGroups validates a call in elements, then runs it in pixels.
// Strides that start rows in the middle of a pixel take the element path.
func transposeGroups[G any, T Element](d *dispatcher[G], pool *workerpool.Pool, in []T, inStride int, out []T, outStride, width, height int, flip FlipMode, flop FlopMode) error {
	n := groupLen[G, T]()
	if err := checkTranspose(len(in), inStride, len(out), outStride, width, height, n); err != nil {
		return err
	}
	if width == 0 || height == 0 {
		return nil
	}
	o := OrientationOf(flip, flop)
	if inStride%n != 0 || outStride%n != 0 {
		transposeElements(pool, in, inStride, out, outStride, width, height, n, o)
		return nil
	}
	d.executor(o).Run(pool, asGroups[G](in), inStride/n, asGroups[G](out), outStride/n, width, height)
	return nil
}
