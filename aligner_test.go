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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSemiGlobalAlignmentScenarios(t *testing.T) {
	cases := []struct {
		name    string
		h, v    string
		scoring ScoringScheme
		dropOff int64
		check   func(t *testing.T, r AlignmentResult)
	}{
		{
			name:    "identical short strings",
			h:       "ACGTACGTACGTACGTACGTACGTACGTACGT",
			v:       "ACGTACGTACGTACGTACGTACGTACGTACGT",
			scoring: DefaultScoringScheme,
			dropOff: 5,
			check: func(t *testing.T, r AlignmentResult) {
				// Two identical 32-byte sequences: the extension should run
				// to (near) completion with a high score. The upper bounds
				// on the endpoints are loose: they allow up to logicalWidth
				// positions past either sequence's real end.
				assert.Greater(t, r.BestScore, int64(20))
				assert.GreaterOrEqual(t, r.EndH, uint32(30))
				assert.LessOrEqual(t, r.EndH, uint32(32+logicalWidth))
				assert.GreaterOrEqual(t, r.EndV, uint32(30))
				assert.LessOrEqual(t, r.EndV, uint32(32+logicalWidth))
			},
		},
		{
			name:    "single mismatch tolerated",
			h:       strings.Repeat("A", 16) + "C" + strings.Repeat("A", 15),
			v:       strings.Repeat("A", 32),
			scoring: DefaultScoringScheme,
			dropOff: 10,
			check: func(t *testing.T, r AlignmentResult) {
				assert.GreaterOrEqual(t, r.BestScore, int64(25))
				assert.GreaterOrEqual(t, r.ExitScore, r.BestScore-10, "drop-off of 10 should absorb one mismatch without X-dropping")
			},
		},
		{
			name:    "x-drop triggered",
			h:       strings.Repeat("A", 16) + strings.Repeat("G", 16),
			v:       strings.Repeat("A", 32),
			scoring: DefaultScoringScheme,
			dropOff: 3,
			check: func(t *testing.T, r AlignmentResult) {
				assert.Greater(t, r.BestScore, int64(0))
				assert.Less(t, r.ExitScore, r.BestScore, "a tight drop-off of 3 against a long run of mismatches should X-drop")
			},
		},
		{
			name:    "empty query",
			h:       "",
			v:       "AAA",
			scoring: DefaultScoringScheme,
			dropOff: 10,
			check: func(t *testing.T, r AlignmentResult) {
				assert.Zero(t, r.BestScore)
				assert.Zero(t, r.ExitScore)
				assert.Zero(t, r.BegH)
				assert.Zero(t, r.EndH)
				assert.Zero(t, r.BegV)
				assert.Zero(t, r.EndV)
			},
		},
		{
			name:    "sub-W sequences short-circuit",
			h:       "ACGT",
			v:       "ACGT",
			scoring: DefaultScoringScheme,
			dropOff: 10,
			check: func(t *testing.T, r AlignmentResult) {
				assert.Zero(t, r.BestScore, "short-circuit path never runs the vectorised sweep")
				assert.EqualValues(t, 4, r.EndH)
				assert.EqualValues(t, 4, r.EndV)
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := SemiGlobalAlignment([]byte(c.h), []byte(c.v), c.scoring, c.dropOff)
			c.check(t, r)
		})
	}
}

func TestSeedAndExtendMidpoint(t *testing.T) {
	h := "TTTT" + strings.Repeat("A", 32) + "TTTT"
	v := "GGGG" + strings.Repeat("A", 32) + "GGGG"
	seed := Seed{BegH: 36, EndH: 36, BegV: 36, EndV: 36}

	r, err := SeedAndExtend([]byte(h), []byte(v), DefaultScoringScheme, 5, seed)
	require.NoError(t, err)

	// The 32 matching A's dominate the left extension, so it should reach
	// back at least to about the TTTT/GGGG boundary at 4 (the four-base
	// mismatch tail past it may not be enough to X-drop).
	assert.LessOrEqual(t, r.BegH, uint32(8))
	assert.Greater(t, r.EndH, uint32(36))
}

func TestSeedAndExtendRejectsOutOfBoundsSeed(t *testing.T) {
	h := strings.Repeat("A", 10)
	v := strings.Repeat("A", 10)

	_, err := SeedAndExtend([]byte(h), []byte(v), DefaultScoringScheme, 5, Seed{EndH: 11, EndV: 5})
	assert.ErrorIs(t, err, ErrInvalidSeed)
}

func TestSplitEquivalence(t *testing.T) {
	h := "TTTT" + strings.Repeat("A", 32) + "TTTT"
	v := "GGGG" + strings.Repeat("A", 32) + "GGGG"
	seed := Seed{BegH: 36, EndH: 36, BegV: 36, EndV: 36}

	combined, err := SeedAndExtend([]byte(h), []byte(v), DefaultScoringScheme, 5, seed)
	require.NoError(t, err)

	left, err := SeedAndExtendLeft([]byte(h), []byte(v), DefaultScoringScheme, 5, seed)
	require.NoError(t, err)

	right, err := SeedAndExtendRight([]byte(h), []byte(v), DefaultScoringScheme, 5, seed)
	require.NoError(t, err)

	assert.Equal(t, combined.BegH, left.BegH)
	assert.Equal(t, combined.BegV, left.BegV)
	assert.Equal(t, combined.EndH, right.EndH)
	assert.Equal(t, combined.EndV, right.EndV)
	assert.Equal(t, combined.BestScore, left.BestScore+right.BestScore)
}

func TestBestScoreMonotoneAcrossSweep(t *testing.T) {
	h := strings.Repeat("ACGT", 20)
	v := strings.Repeat("ACGT", 20)

	st := newState(Seed{}, []byte(h), []byte(v), DefaultScoringScheme, 1000)
	require.False(t, st.skip)

	phase1(st, DefaultScoringScheme)
	best := st.bestScore

	for st.hoffset < st.hlength && st.voffset < st.vlength {
		if sweepStep(st) {
			break
		}
		require.GreaterOrEqual(t, st.bestScore, best, "bestScore must never decrease")
		best = st.bestScore

		if argMax(st.antiDiag3) > middleLane {
			st.moveRight()
		} else {
			st.moveDown()
		}
	}
}

func TestSentinelLaneAlwaysNinf(t *testing.T) {
	h := strings.Repeat("ACGT", 20)
	v := strings.Repeat("ACGT", 20)

	st := newState(Seed{}, []byte(h), []byte(v), DefaultScoringScheme, 1000)
	require.False(t, st.skip)

	phase1(st, DefaultScoringScheme)
	for i := 0; i < 10 && st.hoffset < st.hlength && st.voffset < st.vlength; i++ {
		if sweepStep(st) {
			break
		}
		assert.EqualValues(t, ninf, st.antiDiag3[logicalWidth])

		if argMax(st.antiDiag3) > middleLane {
			st.moveRight()
		} else {
			st.moveDown()
		}
	}
}
