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
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/go-transpose/workerpool"
)

var all = []Orientation{TopLeft, TopRight, BottomRight, BottomLeft, LeftTop, RightTop, RightBottom, LeftBottom}

// sourceOf maps corrected coordinates (x, y) back to the stored image of
// size w×h.
func sourceOf(o Orientation, x, y, w, h int) (int, int) {
	switch o {
	case TopRight:
		return w - 1 - x, y
	case BottomRight:
		return w - 1 - x, h - 1 - y
	case BottomLeft:
		return x, h - 1 - y
	case LeftTop:
		return y, x
	case RightTop:
		return y, h - 1 - x
	case RightBottom:
		return w - 1 - y, h - 1 - x
	case LeftBottom:
		return w - 1 - y, x
	}
	return x, y
}

// want builds the expected output with image.Image accessors only.
func want(src draw.Image, fresh func(image.Rectangle) draw.Image, o Orientation) draw.Image {
	b := src.Bounds()
	r := Bounds(b, o)
	dst := fresh(r)
	for y := range r.Dy() {
		for x := range r.Dx() {
			sx, sy := sourceOf(o, x, y, b.Dx(), b.Dy())
			dst.Set(x, y, src.At(b.Min.X+sx, b.Min.Y+sy))
		}
	}
	return dst
}

func paint(m draw.Image) {
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := uint8(x*17 + y*5)
			m.Set(x, y, color.NRGBA{v, v ^ 0x5a, uint8(y*3 + x), 200 + uint8(x%50)})
		}
	}
}

var kinds = []struct {
	name  string
	fresh func(image.Rectangle) draw.Image
}{
	{"gray", func(r image.Rectangle) draw.Image { return image.NewGray(r) }},
	{"alpha", func(r image.Rectangle) draw.Image { return image.NewAlpha(r) }},
	{"gray16", func(r image.Rectangle) draw.Image { return image.NewGray16(r) }},
	{"alpha16", func(r image.Rectangle) draw.Image { return image.NewAlpha16(r) }},
	{"rgba", func(r image.Rectangle) draw.Image { return image.NewRGBA(r) }},
	{"nrgba", func(r image.Rectangle) draw.Image { return image.NewNRGBA(r) }},
	{"cmyk", func(r image.Rectangle) draw.Image { return image.NewCMYK(r) }},
}

func TestApply(t *testing.T) {
	for _, k := range kinds {
		for _, o := range all {
			for _, r := range []image.Rectangle{image.Rect(0, 0, 7, 5), image.Rect(3, -2, 40, 19)} {
				t.Run(fmt.Sprintf("%s/%v/%v", k.name, o, r), func(t *testing.T) {
					src := k.fresh(r)
					paint(src)
					got, err := New(src, o)
					if err != nil {
						t.Fatalf("New: %v", err)
					}
					if diff := cmp.Diff(want(src, k.fresh, o), got); diff != "" {
						t.Errorf("mismatch (-want +got):\n%s", diff)
					}
				})
			}
		}
	}
}

func TestApplySubImages(t *testing.T) {
	parent := image.NewRGBA(image.Rect(0, 0, 30, 20))
	paint(parent)
	// Touches the parent's last row, so Pix is shorter than Stride*Dy.
	src := parent.SubImage(image.Rect(11, 9, 30, 20)).(*image.RGBA)

	for _, o := range all {
		t.Run(o.String(), func(t *testing.T) {
			r := Bounds(src.Bounds(), o)
			canvas := image.NewRGBA(image.Rect(0, 0, r.Dx()+5, r.Dy()+4))
			draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.RGBA{1, 2, 3, 4}), image.Point{}, draw.Src)
			dst := canvas.SubImage(image.Rect(5, 4, r.Dx()+5, r.Dy()+4)).(*image.RGBA)

			if err := Apply(dst, src, o); err != nil {
				t.Fatalf("Apply: %v", err)
			}
			expect := want(src, func(r image.Rectangle) draw.Image { return image.NewRGBA(r) }, o).(*image.RGBA)
			for y := range r.Dy() {
				for x := range r.Dx() {
					if g, w := dst.At(5+x, 4+y), expect.At(x, y); g != w {
						t.Fatalf("(%d,%d): got %v, want %v", x, y, g, w)
					}
				}
			}
			// The rest of the canvas is untouched.
			if c := canvas.RGBAAt(0, 0); c != (color.RGBA{1, 2, 3, 4}) {
				t.Errorf("canvas corner changed to %v", c)
			}
		})
	}
}

func TestApplyUnevenStrides(t *testing.T) {
	// Rows of 5 Gray16 pixels padded to 11 bytes, so rows start mid-pixel.
	r := image.Rect(0, 0, 5, 4)
	src := &image.Gray16{Pix: make([]uint8, 11*r.Dy()), Stride: 11, Rect: r}
	paint(src)
	fresh := func(r image.Rectangle) draw.Image { return image.NewGray16(r) }
	pool := workerpool.New(2)
	defer pool.Close()

	for _, o := range all {
		t.Run(o.String(), func(t *testing.T) {
			b := Bounds(r, o)
			dst := &image.Gray16{Pix: make([]uint8, (2*b.Dx()+3)*b.Dy()), Stride: 2*b.Dx() + 3, Rect: b}
			if err := ApplyParallel(pool, dst, src, o); err != nil {
				t.Fatalf("Apply: %v", err)
			}
			expect := want(src, fresh, o)
			for y := range b.Dy() {
				for x := range b.Dx() {
					if g, w := dst.At(x, y), expect.At(x, y); g != w {
						t.Fatalf("(%d,%d): got %v, want %v", x, y, g, w)
					}
				}
			}
		})
	}
}

func TestRoundTrips(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 33, 18))
	paint(src)
	pool := workerpool.New(3)
	defer pool.Close()

	for _, o := range all {
		mid := image.NewNRGBA(Bounds(src.Bounds(), o))
		if err := ApplyParallel(pool, mid, src, o); err != nil {
			t.Fatalf("%v: %v", o, err)
		}
		back := image.NewNRGBA(src.Bounds())
		if err := ApplyParallel(pool, back, mid, o.Inverse()); err != nil {
			t.Fatalf("%v inverse: %v", o, err)
		}
		if diff := cmp.Diff(src, back); diff != "" {
			t.Errorf("%v then %v is not the identity:\n%s", o, o.Inverse(), diff)
		}
	}
}

func TestErrors(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 3))
	if err := Apply(image.NewGray(image.Rect(0, 0, 4, 3)), src, RightTop); !errors.Is(err, ErrBounds) {
		t.Errorf("wrong size: got %v", err)
	}
	if err := Apply(image.NewRGBA(image.Rect(0, 0, 3, 4)), src, RightTop); !errors.Is(err, ErrUnsupported) {
		t.Errorf("type mismatch: got %v", err)
	}
	if err := Apply(image.NewRGBA64(image.Rect(0, 0, 4, 3)), image.NewRGBA64(image.Rect(0, 0, 4, 3)), TopLeft); !errors.Is(err, ErrUnsupported) {
		t.Errorf("RGBA64: got %v", err)
	}
	for _, o := range []Orientation{0, 9, -1} {
		if err := Apply(src, src, o); !errors.Is(err, ErrInvalid) {
			t.Errorf("Orientation(%d): got %v", int(o), err)
		}
		if _, err := New(src, o); !errors.Is(err, ErrInvalid) {
			t.Errorf("New with Orientation(%d): got %v", int(o), err)
		}
	}
}

func TestOrientationMethods(t *testing.T) {
	for i, o := range all {
		if int(o) != i+1 || !o.Valid() {
			t.Errorf("%v has value %d", o, int(o))
		}
		if o.SwapsAxes() != (o >= 5) {
			t.Errorf("%v.SwapsAxes() = %v", o, o.SwapsAxes())
		}
		if o.Inverse().Inverse() != o {
			t.Errorf("%v: inverse is not an involution", o)
		}
	}
	if got := Orientation(12).String(); got != "Orientation(12)" {
		t.Errorf("String() = %q", got)
	}
	if got := Bounds(image.Rect(2, 3, 12, 8), RightTop); got != image.Rect(0, 0, 5, 10) {
		t.Errorf("Bounds = %v", got)
	}
}
