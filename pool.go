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

import "sync"

// Pool recycles state buffers across alignments so a high-throughput batch
// driver doesn't allocate the H/V sentinel-extended buffers on every call.
// The teacher keeps one sync.Pool per recycled type (Component, WaveFront);
// here there's a single hot allocation (state's two []int8 buffers), so one
// pool covers it.
type Pool struct {
	raw sync.Pool
}

// NewPool returns an empty Pool ready for use.
func NewPool() *Pool {
	return &Pool{}
}

// get returns a zeroed state, reusing a previous one's buffers when possible.
func (p *Pool) get() *state {
	if v := p.raw.Get(); v != nil {
		st := v.(*state)
		*st = state{queryH: st.queryH[:0], queryV: st.queryV[:0]}
		return st
	}
	return &state{}
}

// put returns st to the pool for reuse by a later alignment.
func (p *Pool) put(st *state) {
	p.raw.Put(st)
}

// SemiGlobalAlignment is like the package-level function of the same name,
// but it draws its state from the pool instead of allocating a fresh one.
func (p *Pool) SemiGlobalAlignment(h, v []byte, scoring ScoringScheme, dropOff int64) AlignmentResult {
	st := p.get()
	defer p.put(st)

	st = newStateInto(st, Seed{}, h, v, scoring, dropOff)
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
