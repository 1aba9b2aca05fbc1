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

const (
	dirRight = 0
	dirDown  = 1
)

// Options bundles the knobs the top-level entry points need, mirroring the
// teacher's Penalties/Options struct-of-flags idiom so the CLI has a single
// value to bind pflag flags into.
type Options struct {
	Scoring ScoringScheme
	DropOff int64
}

// DefaultOptions matches DefaultScoringScheme with a drop-off generous
// enough to tolerate a handful of consecutive mismatches before quitting.
var DefaultOptions = Options{
	Scoring: DefaultScoringScheme,
	DropOff: 20,
}

// Align runs SemiGlobalAlignment under opts.
func (opts Options) Align(h, v []byte) AlignmentResult {
	return SemiGlobalAlignment(h, v, opts.Scoring, opts.DropOff)
}

// phase1 fills the (logicalWidth+2)x(logicalWidth+2) scalar DP triangle that
// seeds the vectorised sweep: it establishes the initial window contents,
// the first two anti-diagonals, and the running best score before a single
// register instruction runs.
func phase1(st *state, scoring ScoringScheme) {
	const n = logicalWidth + 2

	var dp [n][n]int
	for i := 1; i < n; i++ {
		dp[0][i] = -i
		dp[i][0] = -i
	}

	dpMax := 0
	for i := 1; i < n; i++ {
		for j := 1; j <= n-i; j++ {
			var step int16
			if st.queryH[i-1] == st.queryV[j-1] {
				step = scoring.MatchScore
			} else {
				step = scoring.MismatchScore
			}
			diag := dp[i-1][j-1] + int(step)

			indel := dp[i-1][j]
			if dp[i][j-1] > indel {
				indel = dp[i][j-1]
			}
			indel += int(scoring.GapScore)

			v := diag
			if indel > v {
				v = indel
			}
			dp[i][j] = v
			if v > dpMax {
				dpMax = v
			}
		}
	}

	for i := 0; i < logicalWidth; i++ {
		st.vqueryh[i] = st.queryH[i+1]
		st.vqueryv[i] = st.queryV[logicalWidth-i]
	}
	st.vqueryh[logicalWidth] = ninf
	st.vqueryv[logicalWidth] = ninf

	antiMax := int8(ninf)
	for i := 1; i <= logicalWidth; i++ {
		st.antiDiag1[i-1] = clampToInt8(dp[i][logicalWidth-i+1])
		st.antiDiag2[i] = clampToInt8(dp[i+1][logicalWidth-i+1])
		if st.antiDiag1[i-1] > antiMax {
			antiMax = st.antiDiag1[i-1]
		}
	}
	st.antiDiag1[logicalWidth] = ninf
	st.antiDiag2[0] = ninf
	st.antiDiag3 = broadcast(ninf)

	st.bestScore = int64(dpMax)
	st.currScore = int64(antiMax)

	if st.currScore < st.bestScore-st.scoreDropOff {
		st.xDropCond = true
		st.seed.EndH = uint32(st.hoffset)
		st.seed.EndV = uint32(st.voffset)
	}
}

// sweepStep runs one anti-diagonal of the vectorised core shared by phase 2
// and the phase 4 tail: diagonal (match/mismatch) term, gap term, the
// combined max, the X-drop check, and the cutoff-triggered rebase. It
// reports whether the X-drop condition fired; callers own moving the window
// and recording seed endpoints, since the two phases differ there.
func sweepStep(st *state) bool {
	mask := cmpEq(st.vqueryh, st.vqueryv)
	contrib := blend(mask, st.vMatch, st.vMismatch)
	diag := addReg(st.antiDiag1, contrib)

	gapSource := maxReg(lshift(st.antiDiag2), st.antiDiag2)
	indel := addReg(gapSource, st.vGap)

	st.antiDiag3 = maxReg(diag, indel)
	st.antiDiag3[logicalWidth] = ninf

	localBest := maxReduce(st.antiDiag3)
	st.currScore = int64(localBest) + st.scoreOffset

	if st.currScore < st.bestScore-st.scoreDropOff {
		st.xDropCond = true
		return true
	}

	if localBest > cutoff {
		// currScore (localBest + scoreOffset) is invariant across this
		// rebase: subtracting floor from the lanes and adding it back into
		// scoreOffset cancels out exactly (see the package's P2 property).
		floor := minReduce(st.antiDiag3)
		offset := broadcast(floor)
		st.antiDiag2 = subReg(st.antiDiag2, offset)
		st.antiDiag3 = subReg(st.antiDiag3, offset)
		st.scoreOffset += int64(floor)
	}

	if st.currScore > st.bestScore {
		st.bestScore = st.currScore
	}

	return false
}

// phase2 runs the main sweep until either sequence is exhausted, choosing
// each step's direction from the lane holding antiDiag3's maximum.
func phase2(st *state) {
	for st.hoffset < st.hlength && st.voffset < st.vlength {
		if sweepStep(st) {
			st.seed.BegH, st.seed.BegV = 0, 0
			st.seed.EndH = uint32(st.hoffset)
			st.seed.EndV = uint32(st.voffset)
			return
		}

		st.seed.EndH = uint32(st.hoffset)
		st.seed.EndV = uint32(st.voffset)

		if argMax(st.antiDiag3) > middleLane {
			st.moveRight()
		} else {
			st.moveDown()
		}
	}
}

// phase4 runs the tail sweep for exactly logicalWidth-3 iterations once one
// sequence has run out, alternating direction instead of following argMax
// (there's no longer a second sequence to steer toward). It never touches
// seed endpoints on X-drop, unlike phase 2.
func phase4(st *state) {
	dir := dirRight
	if st.hoffset >= st.hlength {
		dir = dirDown
	}

	for i := 0; i < logicalWidth-3; i++ {
		if sweepStep(st) {
			return
		}
		if dir == dirRight {
			st.moveRight()
		} else {
			st.moveDown()
		}
		dir ^= 1
	}
}

// SemiGlobalAlignment extends h against v from their start, running phase 1
// through phase 4 (or skipping straight to a zero-score result whose
// endpoints are the sequence lengths when either sequence is shorter than
// logicalWidth). Endpoints are relative to the start of h and v, not an
// outer seed, and never exceed len(h) and len(v).
func SemiGlobalAlignment(h, v []byte, scoring ScoringScheme, dropOff int64) AlignmentResult {
	st := newState(Seed{}, h, v, scoring, dropOff)
	if st.skip {
		return AlignmentResult{EndH: st.seed.EndH, EndV: st.seed.EndV}
	}

	phase1(st, scoring)
	if !st.xDropCond {
		phase2(st)
	}
	if !st.xDropCond {
		phase4(st)
	}

	return AlignmentResult{
		BestScore: st.bestScore,
		ExitScore: st.currScore,
		BegH:      st.seed.BegH,
		BegV:      st.seed.BegV,
		EndH:      uint32(min(st.hoffset, len(h))),
		EndV:      uint32(min(st.voffset, len(v))),
	}
}

// reversed returns a newly allocated reverse copy of b.
func reversed(b []byte) []byte {
	r := make([]byte, len(b))
	for i, c := range b {
		r[len(b)-1-i] = c
	}
	return r
}

// SeedAndExtend extends a seed in both directions: split H and V at
// (seed.EndH, seed.EndV), reverse the left halves so both extensions run
// as a forward sweep, then recombine the two half-alignments into one
// result spanning both.
func SeedAndExtend(h, v []byte, scoring ScoringScheme, dropOff int64, seed Seed) (AlignmentResult, error) {
	if err := seed.validate(len(h), len(v)); err != nil {
		return AlignmentResult{}, err
	}

	left := SemiGlobalAlignment(reversed(h[:seed.EndH]), reversed(v[:seed.EndV]), scoring, dropOff)
	right := SemiGlobalAlignment(h[seed.EndH:], v[seed.EndV:], scoring, dropOff)

	return AlignmentResult{
		BestScore: left.BestScore + right.BestScore,
		ExitScore: left.ExitScore + right.ExitScore,
		BegH:      seed.EndH - left.EndH,
		BegV:      seed.EndV - left.EndV,
		EndH:      seed.EndH + right.EndH,
		EndV:      seed.EndV + right.EndV,
	}, nil
}

// SeedAndExtendLeft runs only the left half of SeedAndExtend; the right
// endpoints are copied from the seed unchanged.
func SeedAndExtendLeft(h, v []byte, scoring ScoringScheme, dropOff int64, seed Seed) (AlignmentResult, error) {
	if err := seed.validate(len(h), len(v)); err != nil {
		return AlignmentResult{}, err
	}

	left := SemiGlobalAlignment(reversed(h[:seed.EndH]), reversed(v[:seed.EndV]), scoring, dropOff)

	return AlignmentResult{
		BestScore: left.BestScore,
		ExitScore: left.ExitScore,
		BegH:      seed.EndH - left.EndH,
		BegV:      seed.EndV - left.EndV,
		EndH:      seed.EndH,
		EndV:      seed.EndV,
	}, nil
}

// SeedAndExtendRight runs only the right half of SeedAndExtend; the left
// endpoints are copied from the seed unchanged.
func SeedAndExtendRight(h, v []byte, scoring ScoringScheme, dropOff int64, seed Seed) (AlignmentResult, error) {
	if err := seed.validate(len(h), len(v)); err != nil {
		return AlignmentResult{}, err
	}

	right := SemiGlobalAlignment(h[seed.EndH:], v[seed.EndV:], scoring, dropOff)

	return AlignmentResult{
		BestScore: right.BestScore,
		ExitScore: right.ExitScore,
		BegH:      seed.BegH,
		BegV:      seed.BegV,
		EndH:      seed.EndH + right.EndH,
		EndV:      seed.EndV + right.EndV,
	}, nil
}
