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

//go:build amd64 && !noasm

package kernel

import "github.com/ajroetker/go-transpose/dispatch"

// Assembly tile kernels, implemented in kernel_amd64.s. Row strides are in
// bytes and may be negative.

//go:noescape
func transpose8x8u8SSE2(src *byte, srcStride int, dst *byte, dstStride int)

//go:noescape
func transpose8x8u16SSE2(src *byte, srcStride int, dst *byte, dstStride int)

//go:noescape
func transpose4x4u32SSE2(src *byte, srcStride int, dst *byte, dstStride int)

//go:noescape
func transpose2x2u64SSE2(src *byte, srcStride int, dst *byte, dstStride int)

//go:noescape
func transpose8x8u32AVX2(src *byte, srcStride int, dst *byte, dstStride int)

func init() {
	registry = append(registry,
		accelerated{name: "avx2_8x8x32", level: dispatch.LevelAVX2, width: 4, size: 8, fn: transpose8x8u32AVX2},
		accelerated{name: "sse2_8x8x8", level: dispatch.LevelSSE2, width: 1, size: 8, fn: transpose8x8u8SSE2},
		accelerated{name: "sse2_8x8x16", level: dispatch.LevelSSE2, width: 2, size: 8, fn: transpose8x8u16SSE2},
		// 4x4 of 32-bit groups composed to 8x8.
		accelerated{name: "sse2_4x4x32", level: dispatch.LevelSSE2, width: 4, size: 4, doubled: 1, fn: transpose4x4u32SSE2},
		// 2x2 of 64-bit groups composed to 4x4.
		accelerated{name: "sse2_2x2x64", level: dispatch.LevelSSE2, width: 8, size: 2, doubled: 1, fn: transpose2x2u64SSE2},
	)
}
