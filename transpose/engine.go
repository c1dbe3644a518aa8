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

import "github.com/ajroetker/go-transpose/kernel"

const (
	// leafLimit is the region edge below which recursion stops.
	leafLimit = 128
	// blockSize is the edge of the square blocks a leaf is cut into.
	blockSize = 16
	// stripes is the number of horizontal stripes per block. A stripe is
	// never shorter than one kernel tile, so blocks run through 8×8 tiles
	// are cut into 2 stripes instead.
	stripes = 4
)

// region is the half-open rectangle [x0, x1) × [y0, y1) of input
// coordinates.
type region struct {
	x0, x1, y0, y1 int
}

func (r region) width() int  { return r.x1 - r.x0 }
func (r region) height() int { return r.y1 - r.y0 }

// job is a validated transpose in group units.
//
// The orientation is folded into origins and signed steps, so input pixel
// (x, y) sits at src[srcBase+y*srcStep+x] and lands at
// dst[dstBase+x*dstStep+y]. Nothing below branches on the flags.
type job[G any] struct {
	src, dst         []G
	srcBase, srcStep int
	dstBase, dstStep int
	width, height    int
	tile             kernel.Tile[G]
	stripeHeight     int
}

func newJob[G any](o Orientation, tile kernel.Tile[G], src []G, srcStride int, dst []G, dstStride int, width, height int) *job[G] {
	j := &job[G]{
		src:          src,
		dst:          dst,
		srcStep:      srcStride,
		dstStep:      dstStride,
		width:        width,
		height:       height,
		tile:         tile,
		stripeHeight: max(blockSize/stripes, tile.Size()),
	}
	flip, flop := o.Flags()
	if flip {
		j.srcBase, j.srcStep = (height-1)*srcStride, -srcStride
	}
	if flop {
		j.dstBase, j.dstStep = (width-1)*dstStride, -dstStride
	}
	return j
}

func (j *job[G]) all() region { return region{0, j.width, 0, j.height} }

// isLeaf reports whether r is processed directly.
func isLeaf(r region) bool {
	w, h := r.width(), r.height()
	return (w <= leafLimit && h <= leafLimit) || w <= 2 || h <= 2
}

// split halves the longer side of r, y on ties.
func split(r region) (region, region) {
	if r.width() > r.height() {
		mid := r.x0 + r.width()/2
		return region{r.x0, mid, r.y0, r.y1}, region{mid, r.x1, r.y0, r.y1}
	}
	mid := r.y0 + r.height()/2
	return region{r.x0, r.x1, r.y0, mid}, region{r.x0, r.x1, mid, r.y1}
}

// run transposes r on the calling goroutine.
func (j *job[G]) run(r region) {
	if r.width() <= 0 || r.height() <= 0 {
		return
	}
	if isLeaf(r) {
		j.leaf(r)
		return
	}
	a, b := split(r)
	j.run(a)
	j.run(b)
}

// leaves appends the leaf regions of r in the order run visits them.
func leaves(r region, out []region) []region {
	if r.width() <= 0 || r.height() <= 0 {
		return out
	}
	if isLeaf(r) {
		return append(out, r)
	}
	a, b := split(r)
	return leaves(b, leaves(a, out))
}

// leaf cuts r into whole blocks and copies the right and bottom remainders
// one pixel at a time.
func (j *job[G]) leaf(r region) {
	bx1 := r.x0 + r.width()/blockSize*blockSize
	by1 := r.y0 + r.height()/blockSize*blockSize
	for by := r.y0; by < by1; by += blockSize {
		for bx := r.x0; bx < bx1; bx += blockSize {
			j.block(bx, by)
		}
	}
	j.edge(region{bx1, r.x1, r.y0, by1})
	j.edge(region{r.x0, r.x1, by1, r.y1})
}

// block transposes the blockSize square at (bx, by) stripe by stripe.
func (j *job[G]) block(bx, by int) {
	n := j.tile.Size()
	for sy := by; sy < by+blockSize; sy += j.stripeHeight {
		for x := bx; x < bx+blockSize; x += n {
			dstCol := j.dstBase + x*j.dstStep
			for y := sy; y < sy+j.stripeHeight; y += n {
				j.tile.Transpose(j.src, j.srcBase+y*j.srcStep+x, j.srcStep, j.dst, dstCol+y, j.dstStep)
			}
		}
	}
}

// edge copies r pixel by pixel, writing each output row contiguously.
func (j *job[G]) edge(r region) {
	for x := r.x0; x < r.x1; x++ {
		d := j.dst[j.dstBase+x*j.dstStep:]
		s := j.srcBase + x
		for y := r.y0; y < r.y1; y++ {
			d[y] = j.src[s+y*j.srcStep]
		}
	}
}
