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

import (
	"bytes"
	"fmt"
)

// AlignmentResult is the output of every top-level entry point: the best
// score reached during the extension, the score of the last anti-diagonal
// the sweep computed (never above bestScore, and more than the drop-off
// below it only when the sweep X-dropped), and the half-open endpoints of
// the extension in both sequences.
type AlignmentResult struct {
	BestScore int64
	ExitScore int64
	BegH      uint32
	EndH      uint32
	BegV      uint32
	EndV      uint32
}

// String renders a one-line summary, in the spirit of the teacher's CLI
// summary line ("length: %d, matches: %d (%.2f%%), gaps: %d, ...").
func (r AlignmentResult) String() string {
	return fmt.Sprintf("best=%d exit=%d h=[%d,%d) v=[%d,%d)",
		r.BestScore, r.ExitScore, r.BegH, r.EndH, r.BegV, r.EndV)
}

// Ruler renders a three-line query/match-bar/target view over the result's
// endpoints. Because the X-drop core keeps no backtrace pointers (affine
// gaps and full traceback are out of scope), this is a straight byte-wise
// comparison over the extension window, not a DP-derived alignment path:
// it reads as a gapless ruler, useful for eyeballing how clean an
// extension was, not as a CIGAR replacement.
func (r AlignmentResult) Ruler(hseq, vseq []byte) string {
	h := hseq[r.BegH:r.EndH]
	v := vseq[r.BegV:r.EndV]

	n := len(h)
	if len(v) < n {
		n = len(v)
	}

	var bar bytes.Buffer
	for i := 0; i < n; i++ {
		if h[i] == v[i] {
			bar.WriteByte('|')
		} else {
			bar.WriteByte(' ')
		}
	}

	var out bytes.Buffer
	fmt.Fprintf(&out, "%s\n%s\n%s", h, bar.String(), v)
	return out.String()
}
