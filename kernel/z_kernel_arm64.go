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

//go:build arm64 && !noasm

package kernel

import "github.com/ajroetker/go-transpose/dispatch"

//go:noescape
func transpose8x8u8NEON(src *byte, srcStride int, dst *byte, dstStride int)

//go:noescape
func transpose8x8u16NEON(src *byte, srcStride int, dst *byte, dstStride int)

//go:noescape
func transpose4x4u32NEON(src *byte, srcStride int, dst *byte, dstStride int)

//go:noescape
func transpose2x2u64NEON(src *byte, srcStride int, dst *byte, dstStride int)

func init() {
	registry = append(registry,
		accelerated{name: "neon_8x8x8", level: dispatch.LevelNEON, width: 1, size: 8, fn: transpose8x8u8NEON},
		accelerated{name: "neon_8x8x16", level: dispatch.LevelNEON, width: 2, size: 8, fn: transpose8x8u16NEON},
		accelerated{name: "neon_4x4x32", level: dispatch.LevelNEON, width: 4, size: 4, fn: transpose4x4u32NEON},
		accelerated{name: "neon_2x2x64", level: dispatch.LevelNEON, width: 8, size: 2, doubled: 1, fn: transpose2x2u64NEON},
	)
}
