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

// SeedPair names one seed-anchored extension job within a batch: BegH/BegV
// and EndH/EndV mark the seed itself, relative to the same h/v the batch
// is run against.
type SeedPair struct {
	Seed Seed
}

// AlignBatch runs SeedAndExtend for every seed in pairs against the same
// h/v pair, reusing a single Pool across the batch. A seed that fails
// validation produces a zero-value result at its index rather than aborting
// the rest of the batch — batches are typically produced by an upstream
// seeding stage the caller doesn't want one bad anchor to derail.
func AlignBatch(pairs []SeedPair, h, v []byte, scoring ScoringScheme, dropOff int64) []AlignmentResult {
	pool := NewPool()
	results := make([]AlignmentResult, len(pairs))

	for i, pair := range pairs {
		if err := pair.Seed.validate(len(h), len(v)); err != nil {
			continue
		}

		left := pool.SemiGlobalAlignment(reversed(h[:pair.Seed.EndH]), reversed(v[:pair.Seed.EndV]), scoring, dropOff)
		right := pool.SemiGlobalAlignment(h[pair.Seed.EndH:], v[pair.Seed.EndV:], scoring, dropOff)

		results[i] = AlignmentResult{
			BestScore: left.BestScore + right.BestScore,
			ExitScore: left.ExitScore + right.ExitScore,
			BegH:      pair.Seed.EndH - left.EndH,
			BegV:      pair.Seed.EndV - left.EndV,
			EndH:      pair.Seed.EndH + right.EndH,
			EndV:      pair.Seed.EndV + right.EndV,
		}
	}

	return results
}
