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

package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/xdrop-align/xdrop"
	"github.com/xdrop-align/xdrop/internal/xlog"
)

var version = "0.1.0"

var (
	infile   string
	match    int16
	mismatch int16
	gap      int16
	dropOff  int64
	noOutput bool
	cpuProf  bool
	memProf  bool
	verbose  bool
	debug    bool

	seedBegH, seedEndH uint32
	seedBegV, seedEndV uint32
	useSeed            bool
)

func main() {
	root := &cobra.Command{
		Use:     "xdrop-align [flags] <query> <target>",
		Short:   "X-drop adaptive banded pairwise alignment",
		Version: version,
		Args:    cobra.MaximumNArgs(2),
		RunE:    run,
	}

	flags := root.Flags()
	flags.StringVarP(&infile, "input", "i", "", "input file of alternating query/target lines prefixed with > and <")
	flags.Int16Var(&match, "match", xdrop.DefaultScoringScheme.MatchScore, "match score")
	flags.Int16Var(&mismatch, "mismatch", xdrop.DefaultScoringScheme.MismatchScore, "mismatch score")
	flags.Int16Var(&gap, "gap", xdrop.DefaultScoringScheme.GapScore, "gap score")
	flags.Int64Var(&dropOff, "x-drop", 20, "score drop-off that stops an extension")
	flags.BoolVarP(&noOutput, "quiet", "N", false, "do not print alignment results (for benchmarking)")
	flags.BoolVarP(&cpuProf, "cpu-profile", "p", false, "write a CPU profile (cpu.pprof)")
	flags.BoolVarP(&memProf, "mem-profile", "m", false, "write a memory profile (mem.pprof)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log at info level")
	flags.BoolVarP(&debug, "debug", "d", false, "log at debug level")

	flags.Uint32Var(&seedBegH, "seed-beg-h", 0, "seed start in query (enables seed-and-extend mode)")
	flags.Uint32Var(&seedEndH, "seed-end-h", 0, "seed end in query")
	flags.Uint32Var(&seedBegV, "seed-beg-v", 0, "seed start in target")
	flags.Uint32Var(&seedEndV, "seed-end-v", 0, "seed end in target")
	flags.BoolVar(&useSeed, "seed", false, "extend from the seed flags instead of a full semi-global alignment")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	xlog.SetVerbose(verbose, debug)
	log := xlog.L()

	if cpuProf {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	} else if memProf {
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	opts := xdrop.Options{
		Scoring: xdrop.ScoringScheme{MatchScore: match, MismatchScore: mismatch, GapScore: gap},
		DropOff: dropOff,
	}
	if err := opts.Scoring.Validate(); err != nil {
		log.WithError(err).Warn("scoring scheme failed validation, continuing anyway")
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	align := func(q, t string) error {
		h, v := []byte(q), []byte(t)
		if len(h) > xdrop.MaxSeqLen || len(v) > xdrop.MaxSeqLen {
			return errors.Wrap(xdrop.ErrSeqTooLong, "align")
		}

		var result xdrop.AlignmentResult
		if useSeed {
			seed := xdrop.Seed{BegH: seedBegH, EndH: seedEndH, BegV: seedBegV, EndV: seedEndV}
			var err error
			result, err = xdrop.SeedAndExtend(h, v, opts.Scoring, opts.DropOff, seed)
			if err != nil {
				return errors.Wrap(err, "seed-and-extend")
			}
		} else {
			result = opts.Align(h, v)
		}

		if !noOutput {
			fmt.Fprintln(out, result.Ruler(h, v))
			fmt.Fprintln(out, result.String())
			fmt.Fprintln(out)
		}
		return nil
	}

	if infile == "" {
		if len(args) != 2 {
			return errors.New("if --input is not given, pass exactly two sequences")
		}
		return align(args[0], args[1])
	}

	fh, err := os.Open(infile)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", infile)
	}
	defer fh.Close()

	scanner := bufio.NewScanner(fh)
	for scanner.Scan() {
		q := scanner.Text()
		if !scanner.Scan() {
			break
		}
		t := scanner.Text()

		if len(q) < 1 || len(t) < 1 {
			continue
		}
		if err := align(q[1:], t[1:]); err != nil {
			log.WithError(err).Error("alignment failed")
		}
	}
	return errors.Wrapf(scanner.Err(), "failed to read %s", infile)
}
