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

// Package transpose transposes and rotates strided pixel buffers.
//
// Buffers are flat slices of uint8, uint16 or float32 with a row stride in
// elements. A pixel is a group of 1 to 4 interleaved channels and is always
// moved as a unit. The output buffer is supplied by the caller.
//
// # Transpose
//
// For a width×height input, the output is height wide and width tall. With
// input coordinates x in [0, width) and y in [0, height):
//
//	inputRow  = y            or height-1-y with FlipRows
//	outputRow = x            or width-1-x  with FlopColumns
//	out[outputRow][y] = in[inputRow][x]
//
// The four flag combinations give the plain transpose, the two quarter turns
// and the transverse:
//
//	NoFlip,   NoFlop       PlainTranspose
//	FlipRows, NoFlop       RotateClockwise
//	NoFlip,   FlopColumns  RotateCounterClockwise
//	FlipRows, FlopColumns  Transverse
//
// The transpose walks the image with a recursive, cache-aware decomposition
// and hands 16×16 blocks to the fastest tile kernel the CPU supports (see
// package kernel). Every kernel produces identical output.
//
// # Entry points
//
// Per-format functions such as TransposeRGBA8 or Rotate180PlaneF32 fix the
// element type and channel count. The generic Transpose, TransposeParallel,
// Rotate180, Flip and Flop take the channel count as an argument.
//
// # Errors
//
// Size and stride problems are reported as errors wrapping
// ErrDimensionMismatch before anything is written.
package transpose
