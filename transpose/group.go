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

import "unsafe"

// Element is a channel type the package can move.
type Element interface {
	uint8 | uint16 | float32
}

// groupLen returns how many elements of type T make up one G. G is always
// an array [N]T.
func groupLen[G any, T Element]() int {
	var g G
	var t T
	return int(unsafe.Sizeof(g) / unsafe.Sizeof(t))
}

// asGroups views s as pixels of type G sharing s's memory. len(s) must be a
// multiple of groupLen[G, T]. [N]T has T's alignment, so s may start at any
// element.
func asGroups[G any, T Element](s []T) []G {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*G)(unsafe.Pointer(unsafe.SliceData(s))), len(s)/groupLen[G, T]())
}
