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

//go:build amd64

package dispatch

import "golang.org/x/sys/cpu"

func detect() {
	// SSE2 is part of the amd64 baseline, but check anyway so a broken
	// cpuid never enables it.
	available[LevelSSE2] = cpu.X86.HasSSE2

	// x/sys/cpu only reports AVX2 when the OS saves the YMM state.
	available[LevelAVX2] = cpu.X86.HasAVX && cpu.X86.HasAVX2
}
