// Copyright © 2025 The xdrop Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package xdrop

import "math"

// vectorWidth is the SIMD width in 8-bit lanes we emulate (AVX2's 32).
// logicalWidth reserves the top lane as an off-band sentinel.
const (
	vectorWidth  = 32
	logicalWidth = vectorWidth - 1
	middleLane   = logicalWidth / 2
)

// ninf is a sentinel value that loses every comparison against a real
// DP score. cutoff is the rebase threshold: once the running max crosses
// it, the anti-diagonals get shifted back down (see aligner.go).
const (
	ninf   int8 = -100
	cutoff int8 = math.MaxInt8 - 20
)

// vectorRegister is W lanes of signed 8-bit DP scores, held as a plain
// array. Real SIMD intrinsics aren't reachable from portable Go, so this
// is the scalar fallback the algorithm explicitly allows: every method
// below corresponds 1:1 to a single AVX2/SSE4.2 instruction in the
// vectorised original.
type vectorRegister [vectorWidth]int8

// clampAdd8 and clampSub8 saturate at the int8 bounds instead of wrapping,
// so NINF never needs to be chosen relative to a wraparound margin.
func clampAdd8(a, b int8) int8 {
	v := int16(a) + int16(b)
	return clampInt16(v)
}

func clampSub8(a, b int8) int8 {
	v := int16(a) - int16(b)
	return clampInt16(v)
}

func clampInt16(v int16) int8 {
	if v > math.MaxInt8 {
		return math.MaxInt8
	}
	if v < math.MinInt8 {
		return math.MinInt8
	}
	return int8(v)
}

// clampToInt8 saturates a plain int (used by phase 1's scalar DP triangle,
// which is computed outside the 8-bit lanes) into int8 range.
func clampToInt8(v int) int8 {
	if v > math.MaxInt8 {
		return math.MaxInt8
	}
	if v < math.MinInt8 {
		return math.MinInt8
	}
	return int8(v)
}

// broadcast returns a register with every lane set to v.
func broadcast(v int8) vectorRegister {
	var r vectorRegister
	for i := range r {
		r[i] = v
	}
	return r
}

// addReg returns the lane-wise saturating sum of a and b.
func addReg(a, b vectorRegister) vectorRegister {
	var r vectorRegister
	for i := range r {
		r[i] = clampAdd8(a[i], b[i])
	}
	return r
}

// subReg returns the lane-wise saturating difference a - b.
func subReg(a, b vectorRegister) vectorRegister {
	var r vectorRegister
	for i := range r {
		r[i] = clampSub8(a[i], b[i])
	}
	return r
}

// maxReg returns the lane-wise maximum of a and b.
func maxReg(a, b vectorRegister) vectorRegister {
	var r vectorRegister
	for i := range r {
		if a[i] > b[i] {
			r[i] = a[i]
		} else {
			r[i] = b[i]
		}
	}
	return r
}

// cmpEq returns a boolean lane mask: true where a[i] == b[i].
func cmpEq(a, b vectorRegister) [vectorWidth]bool {
	var mask [vectorWidth]bool
	for i := range mask {
		mask[i] = a[i] == b[i]
	}
	return mask
}

// blend selects onTrue[i] where mask[i] is set, else onFalse[i].
func blend(mask [vectorWidth]bool, onTrue, onFalse vectorRegister) vectorRegister {
	var r vectorRegister
	for i := range r {
		if mask[i] {
			r[i] = onTrue[i]
		} else {
			r[i] = onFalse[i]
		}
	}
	return r
}

// lshift moves every lane one position toward index 0, discarding lane 0.
// The freed top lane (index vectorWidth-1, the sentinel lane logicalWidth) is
// NINF-filled so invariant I4 (out-of-band lanes hold NINF) holds even
// before a caller writes a real value into it.
func lshift(v vectorRegister) vectorRegister {
	var r vectorRegister
	copy(r[:vectorWidth-1], v[1:])
	r[vectorWidth-1] = ninf
	return r
}

// rshift moves every lane one position toward the top, discarding the
// top lane. The freed lane 0 is NINF-filled for the same reason as lshift.
func rshift(v vectorRegister) vectorRegister {
	var r vectorRegister
	copy(r[1:], v[:vectorWidth-1])
	r[0] = ninf
	return r
}

// maxReduce returns the maximum value across all W lanes.
func maxReduce(v vectorRegister) int8 {
	m := int8(math.MinInt8)
	for _, x := range v {
		if x > m {
			m = x
		}
	}
	return m
}

// minReduce returns the minimum value across the first L logical lanes,
// deliberately excluding the sentinel lane (which holds NINF and would
// otherwise dominate every rebase).
func minReduce(v vectorRegister) int8 {
	m := int8(math.MaxInt8)
	for i := 0; i < logicalWidth; i++ {
		if v[i] < m {
			m = v[i]
		}
	}
	return m
}

// argMax returns the lowest-indexed lane holding the register's maximum
// value, scanning all W lanes. Seeding max at MinInt8 (rather than 0, as
// the original C++ does) avoids reporting an uninitialised position when
// every lane is non-positive after a rebase.
func argMax(v vectorRegister) int {
	max := int8(math.MinInt8)
	pos := 0
	for i, x := range v {
		if x > max {
			max = x
			pos = i
		}
	}
	return pos
}
