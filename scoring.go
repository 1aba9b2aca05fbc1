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

// ScoringScheme holds the linear-gap penalties the core uses: a positive
// match score, a (usually negative) mismatch score, and a (usually
// negative) per-base gap score. Affine gap-open/extend is out of scope
// for this core (see Non-goals) — there is deliberately no GapOpen field.
//
// Fields are int16, matching the external interface: scalar bookkeeping
// (Score, Validate, phase 1's DP triangle) runs at this width. Only
// broadcastMatch/broadcastMismatch/broadcastGap narrow a score down to
// the int8 lanes the vectorised sweep actually runs in, saturating at
// that one boundary instead of at every scalar use.
type ScoringScheme struct {
	MatchScore    int16
	MismatchScore int16
	GapScore      int16
}

// DefaultScoringScheme is a commonly used scheme for nucleotide alignment.
var DefaultScoringScheme = ScoringScheme{
	MatchScore:    1,
	MismatchScore: -1,
	GapScore:      -1,
}

// Score returns MatchScore if a and b are equal, MismatchScore otherwise.
func (s ScoringScheme) Score(a, b byte) int16 {
	if a == b {
		return s.MatchScore
	}
	return s.MismatchScore
}

// Validate reports whether the scheme is sane enough to produce a
// meaningful alignment. The core never calls this itself — per spec, a
// scheme that fails validation still runs, it just produces meaningless
// scores — so callers opt in explicitly (the CLI does, before aligning).
func (s ScoringScheme) Validate() error {
	if s.GapScore >= 0 {
		return ErrInvalidScoring
	}
	if s.MatchScore <= s.MismatchScore {
		return ErrInvalidScoring
	}
	return nil
}

func (s ScoringScheme) broadcastMatch() vectorRegister {
	return broadcast(clampToInt8(int(s.MatchScore)))
}

func (s ScoringScheme) broadcastMismatch() vectorRegister {
	return broadcast(clampToInt8(int(s.MismatchScore)))
}

func (s ScoringScheme) broadcastGap() vectorRegister {
	return broadcast(clampToInt8(int(s.GapScore)))
}
