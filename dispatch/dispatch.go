// Package dispatch reports which instruction-set levels the running CPU
// supports and in which order kernels should prefer them.
//
// Probing happens once, in init, and the result never changes afterwards.
// Two environment variables narrow the result, mostly for testing and
// debugging:
//
//	TRANSPOSE_NO_SIMD=1        only the portable scalar level is reported
//	TRANSPOSE_MAX_LEVEL=sse2   levels ranked above sse2 are dropped
package dispatch

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Level represents an instruction set a kernel may require.
type Level int

const (
	// LevelScalar indicates no SIMD, pure Go implementation.
	LevelScalar Level = iota

	// LevelSSE2 indicates SSE2 instructions (128-bit, x86-64 baseline).
	LevelSSE2

	// LevelAVX2 indicates AVX2 instructions (256-bit SIMD).
	LevelAVX2

	// LevelNEON indicates ARM NEON instructions (128-bit SIMD).
	LevelNEON

	numLevels
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelAVX2:
		return "avx2"
	case LevelNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// VectorBytes returns the register width in bytes for the level.
// The scalar level reports 16 so buffers sized for it stay aligned the same
// way as for the 128-bit levels.
func (l Level) VectorBytes() int {
	if l == LevelAVX2 {
		return 32
	}
	return 16
}

// ParseLevel returns the level whose String matches name, ignoring case.
func ParseLevel(name string) (Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for l := range numLevels {
		if l.String() == name {
			return l, nil
		}
	}
	return LevelScalar, fmt.Errorf("dispatch: unknown level %q", name)
}

// priority lists every level from most to least preferred: widest vectors
// first, the portable level last.
var priority = [...]Level{LevelAVX2, LevelSSE2, LevelNEON, LevelScalar}

// available is filled by detect() in the dispatch_*.go files.
var available [numLevels]bool

// levels caches the available levels in priority order.
var levels []Level

func init() {
	available[LevelScalar] = true
	detect()

	if NoSimdEnv() {
		restrict(LevelScalar)
	} else if v := os.Getenv("TRANSPOSE_MAX_LEVEL"); v != "" {
		if maxLevel, err := ParseLevel(v); err == nil {
			restrict(maxLevel)
		}
	}

	for _, l := range priority {
		if available[l] {
			levels = append(levels, l)
		}
	}
}

// restrict marks every level ranked above maxLevel as unavailable.
func restrict(maxLevel Level) {
	for _, l := range priority {
		if l == maxLevel {
			return
		}
		available[l] = false
	}
}

// Has reports whether kernels requiring l may run on this machine.
// LevelScalar is always available.
func Has(l Level) bool {
	if l < 0 || l >= numLevels {
		return false
	}
	return available[l]
}

// Levels returns the available levels, most preferred first.
// The last element is always LevelScalar.
func Levels() []Level {
	return append([]Level(nil), levels...)
}

// Best returns the most preferred available level.
func Best() Level {
	return levels[0]
}

// Rank returns the position of l in the fixed priority order; lower ranks
// are preferred. Unknown levels rank after LevelScalar.
func Rank(l Level) int {
	for i, p := range priority {
		if p == l {
			return i
		}
	}
	return len(priority)
}

// NoSimdEnv checks if the TRANSPOSE_NO_SIMD environment variable is set.
// Any non-empty value that does not parse as false counts as set.
func NoSimdEnv() bool {
	val := os.Getenv("TRANSPOSE_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
