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

package orient

import (
	"image"

	"github.com/ajroetker/go-transpose/transpose"
	"github.com/ajroetker/go-transpose/workerpool"
)

// pixels is the raw layout of one of the supported image types. 16-bit
// samples are moved as byte pairs, so their byte order does not matter.
type pixels struct {
	kind   string
	pix    []uint8 // starts at rect.Min
	stride int
	rect   image.Rectangle
	bpp    int // bytes per pixel
}

func pixelsOf(img image.Image) (pixels, bool) {
	switch m := img.(type) {
	case *image.Gray:
		return pixels{"gray", m.Pix, m.Stride, m.Rect, 1}, true
	case *image.Alpha:
		return pixels{"alpha", m.Pix, m.Stride, m.Rect, 1}, true
	case *image.Gray16:
		return pixels{"gray16", m.Pix, m.Stride, m.Rect, 2}, true
	case *image.Alpha16:
		return pixels{"alpha16", m.Pix, m.Stride, m.Rect, 2}, true
	case *image.RGBA:
		return pixels{"rgba", m.Pix, m.Stride, m.Rect, 4}, true
	case *image.NRGBA:
		return pixels{"nrgba", m.Pix, m.Stride, m.Rect, 4}, true
	case *image.CMYK:
		return pixels{"cmyk", m.Pix, m.Stride, m.Rect, 4}, true
	}
	return pixels{}, false
}

// packed reports whether p's buffer can be handed to package transpose as
// is. Sub-images touching their parent's last row have a Pix shorter than
// stride*height.
func (p pixels) packed() bool {
	return len(p.pix) >= p.stride*p.rect.Dy()
}

// input returns p's pixels with a length of exactly stride*height, copying
// into a packed buffer when needed.
func (p pixels) input() ([]uint8, int) {
	h := p.rect.Dy()
	if p.packed() {
		return p.pix[:p.stride*h], p.stride
	}
	row := p.rect.Dx() * p.bpp
	buf := make([]uint8, row*h)
	for y := range h {
		copy(buf[y*row:(y+1)*row], p.pix[y*p.stride:])
	}
	return buf, row
}

// output is input for a destination: flush copies a temporary buffer back.
func (p pixels) output() (buf []uint8, stride int, flush func()) {
	h := p.rect.Dy()
	if p.packed() {
		return p.pix[:p.stride*h], p.stride, func() {}
	}
	row := p.rect.Dx() * p.bpp
	buf = make([]uint8, row*h)
	return buf, row, func() {
		for y := range h {
			copy(p.pix[y*p.stride:y*p.stride+row], buf[y*row:])
		}
	}
}

func (p pixels) orientInto(pool *workerpool.Pool, dst pixels, o Orientation) error {
	w, h, n := p.rect.Dx(), p.rect.Dy(), p.bpp
	in, inStride := p.input()
	out, outStride, flush := dst.output()

	var err error
	switch o {
	case TopLeft:
		pool.ParallelFor(h, func(y0, y1 int) {
			for y := y0; y < y1; y++ {
				copy(out[y*outStride:y*outStride+w*n], in[y*inStride:])
			}
		})
	case TopRight:
		err = transpose.Flop(in, inStride, out, outStride, w, h, n)
	case BottomRight:
		err = transpose.Rotate180(in, inStride, out, outStride, w, h, n)
	case BottomLeft:
		err = transpose.Flip(in, inStride, out, outStride, w, h, n)
	default:
		flip, flop := o.transposeFlags()
		err = transpose.TransposeParallel(pool, in, inStride, out, outStride, w, h, n, flip, flop)
	}
	if err != nil {
		return err
	}
	flush()
	return nil
}
