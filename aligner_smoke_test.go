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
	"testing"
)

func TestSemiGlobalAlignment(_t *testing.T) {
	q := []byte("acgatcctgacgatgctagtcgatcgtagctagctagggatcgatcgatcgatcgatcgtagctagctacgatcgatcgtagc")
	t := []byte("acgatcctgatgatgctagtcgatcgtagctagctagggatccatcgatcgatcgatcgtagctagctacgatcgatcgtagc")

	q = bytes.ToUpper(q)
	t = bytes.ToUpper(t)

	result := SemiGlobalAlignment(q, t, DefaultScoringScheme, 20)

	fmt.Println()
	fmt.Println(result.Ruler(q, t))
	fmt.Println()
	fmt.Println(result)

	if result.EndH == 0 || result.EndV == 0 {
		_t.Error("expected a non-trivial extension on two near-identical sequences")
	}
}

func TestSeedAndExtend(_t *testing.T) {
	q := []byte("TTTTTTTTTTACGATCCTGACGATGCTAGTCGATCGTAGCTAGCTAGGGATCGATCGATCGATCGATCGTAGCTAGCTACGATCGATCGTAGCTTTTTTTTTT")
	t := []byte("GGGGGGGGGGACGATCCTGATGATGCTAGTCGATCGTAGCTAGCTAGGGATCCATCGATCGATCGATCGTAGCTAGCTACGATCGATCGTAGCGGGGGGGGGG")

	seed := Seed{BegH: 10, EndH: 10, BegV: 10, EndV: 10}
	result, err := SeedAndExtend(q, t, DefaultScoringScheme, 20, seed)
	if err != nil {
		_t.Fatal(err)
	}

	fmt.Println()
	fmt.Println(result)

	if result.BegH >= seed.BegH || result.EndH <= seed.EndH {
		_t.Errorf("expected the extension to grow past the seed in both directions, got %s", result)
	}
}
