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

// state is the alignment-in-progress: the two extended sequence buffers,
// the sliding window of bases currently loaded into registers, the three
// most recent anti-diagonals of the DP band, and the running scores. It
// is owned exclusively by whichever Aligner-level call constructed it —
// never shared or mutated from more than one goroutine.
type state struct {
	queryH, queryV []int8 // extended with vectorWidth lanes of ninf past the real sequence
	hlength, vlength int  // len(H)+1, len(V)+1
	hoffset, voffset int  // next H / V position to load

	vqueryh, vqueryv vectorRegister // current window; vqueryv is stored reversed

	antiDiag1, antiDiag2, antiDiag3 vectorRegister

	vMatch, vMismatch, vGap vectorRegister

	bestScore, currScore int64
	scoreOffset          int64
	scoreDropOff         int64
	xDropCond            bool

	seed Seed

	// skip is set when either sequence is empty or shorter than logicalWidth
	// (so that len+1 is below vectorWidth): phase 1
	// and the vectorised sweep never run, per spec §4.4 step 2.
	skip bool
}

// newState builds a state for extending seed over hseq/vseq under scoring,
// stopping the sweep once the running score falls more than dropOff below
// its running best.
func newState(seed Seed, hseq, vseq []byte, scoring ScoringScheme, dropOff int64) *state {
	st := &state{
		hlength:      len(hseq) + 1,
		vlength:      len(vseq) + 1,
		scoreDropOff: dropOff,
		seed:         seed,
	}

	// An empty sequence on either side can't be extended at all: the result
	// is the trivial zero-length alignment, regardless of how long the
	// other side is.
	if len(hseq) == 0 || len(vseq) == 0 {
		st.skip = true
		return st
	}

	if st.hlength < vectorWidth || st.vlength < vectorWidth {
		st.seed.EndH = uint32(len(hseq))
		st.seed.EndV = uint32(len(vseq))
		st.skip = true
		return st
	}

	st.queryH = extendWithSentinel(hseq, st.hlength)
	st.queryV = extendWithSentinel(vseq, st.vlength)

	st.hoffset = logicalWidth
	st.voffset = logicalWidth

	st.vMatch = scoring.broadcastMatch()
	st.vMismatch = scoring.broadcastMismatch()
	st.vGap = scoring.broadcastGap()

	return st
}

// newStateInto is newState, but it reuses dst's backing arrays when they're
// already large enough instead of allocating fresh ones. Used by Pool to
// keep a batch of alignments from re-allocating the sentinel-extended
// buffers on every call.
func newStateInto(dst *state, seed Seed, hseq, vseq []byte, scoring ScoringScheme, dropOff int64) *state {
	*dst = state{
		hlength:      len(hseq) + 1,
		vlength:      len(vseq) + 1,
		scoreDropOff: dropOff,
		seed:         seed,
		queryH:       dst.queryH,
		queryV:       dst.queryV,
	}

	if len(hseq) == 0 || len(vseq) == 0 {
		dst.skip = true
		return dst
	}

	if dst.hlength < vectorWidth || dst.vlength < vectorWidth {
		dst.seed.EndH = uint32(len(hseq))
		dst.seed.EndV = uint32(len(vseq))
		dst.skip = true
		return dst
	}

	dst.queryH = extendWithSentinelInto(dst.queryH, hseq, dst.hlength)
	dst.queryV = extendWithSentinelInto(dst.queryV, vseq, dst.vlength)

	dst.hoffset = logicalWidth
	dst.voffset = logicalWidth

	dst.vMatch = scoring.broadcastMatch()
	dst.vMismatch = scoring.broadcastMismatch()
	dst.vGap = scoring.broadcastGap()

	return dst
}

// extendWithSentinelInto is extendWithSentinel, reusing buf's backing array
// when its capacity already covers n+vectorWidth bytes.
func extendWithSentinelInto(buf []int8, seq []byte, n int) []int8 {
	need := n + vectorWidth
	if cap(buf) < need {
		buf = make([]int8, need)
	} else {
		buf = buf[:need]
	}
	for i, b := range seq {
		buf[i] = int8(b)
	}
	for i := len(seq); i < len(buf); i++ {
		buf[i] = ninf
	}
	return buf
}

// extendWithSentinel copies seq into an int8 buffer of length n+vectorWidth,
// filling everything from len(seq) on with ninf so unchecked reads past the real
// sequence always lose every comparison.
func extendWithSentinel(seq []byte, n int) []int8 {
	buf := make([]int8, n+vectorWidth)
	for i, b := range seq {
		buf[i] = int8(b)
	}
	for i := len(seq); i < len(buf); i++ {
		buf[i] = ninf
	}
	return buf
}

// moveRight advances the window toward increasing H: it loads the next H
// base and re-aligns antiDiag1 as a left-aligned copy of the old antiDiag2.
func (st *state) moveRight() {
	st.vqueryh = lshift(st.vqueryh)
	st.vqueryh[logicalWidth-1] = st.queryH[st.hoffset]
	st.hoffset++

	st.antiDiag1 = st.antiDiag2
	st.antiDiag2 = st.antiDiag3
	st.antiDiag1 = lshift(st.antiDiag1)
}

// moveDown advances the window toward increasing V: it loads the next V
// base and re-aligns antiDiag2 as a right-aligned copy of the old antiDiag3.
func (st *state) moveDown() {
	st.vqueryv = rshift(st.vqueryv)
	st.vqueryv[0] = st.queryV[st.voffset]
	st.voffset++

	st.antiDiag1 = st.antiDiag2
	st.antiDiag2 = st.antiDiag3
	st.antiDiag2 = rshift(st.antiDiag2)
}
