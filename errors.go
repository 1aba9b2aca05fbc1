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

import "fmt"

// ErrInvalidSeed means a seed's endpoints fall outside the sequences it
// was built against.
var ErrInvalidSeed = fmt.Errorf("xdrop: seed endpoints out of bounds")

// ErrInvalidScoring means the scoring scheme isn't one ScoringScheme.Validate
// considers sane (gap score non-negative, or match no better than mismatch).
// The aligner itself never returns this: it's surfaced only to callers that
// opt into Validate.
var ErrInvalidScoring = fmt.Errorf("xdrop: invalid scoring scheme")

// MaxSeqLen is the longest sequence length whose endpoints fit the uint32
// fields of Seed and AlignmentResult. The core functions do not check it;
// the CLI rejects longer input up front rather than silently truncate.
const MaxSeqLen = 1<<32 - 1

// ErrSeqTooLong means a sequence handed to the CLI exceeds MaxSeqLen.
var ErrSeqTooLong = fmt.Errorf("xdrop: sequence longer than %d is not supported", MaxSeqLen)
