// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package unpack implements a command to collapse
// poorly supported,
// or short,
// branches of a tree into polytomies.
package unpack

import (
	"math"

	"github.com/js-arias/command"
	"github.com/js-arias/phytree/cmd/phytree/internal/treefile"
	"github.com/js-arias/phytree/newick"
	"github.com/js-arias/phytree/tree"
)

var Command = &command.Command{
	Usage: `unpack [--support <value>] [--length <value>]
	[--format <file>] [-o|--output <file>] [--verbose]
	[<tree-file>]`,
	Short: "collapse branches into polytomies",
	Long: `
Command unpack reads one or more trees, and collapses the internal branches
with a low support value, or a short length, so the descendants of the
collapsed node become descendants of its parent. The length of the collapsed
branch is added to the branches of its descendants.

The argument of the command is the name of a newick file. If no file is
given, the trees will be read from the standard input.

The flag --support sets the minimum support value: nodes with a support
below that value are collapsed. Support values are read from the labels of
the internal nodes (type "phytree help supports" for more information).

The flag --length sets the minimum branch length: nodes with a branch
shorter than that value are collapsed. Branches without length are never
collapsed.

At least one of the flags must be defined.

By default, the trees will be written in the standard output, keeping the
precision of the input branch lengths. Use the flag --output, or -o, to define
an output file. The flag --format can be used to define a format file for the
output trees.

Use the flag --verbose to report the number of internal nodes before and after
collapsing the branches.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var minSupport float64
var minLength float64
var verbose bool
var formatFile string
var output string

func setFlags(c *command.Command) {
	c.Flags().Float64Var(&minSupport, "support", math.NaN(), "")
	c.Flags().Float64Var(&minLength, "length", math.NaN(), "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
	c.Flags().StringVar(&formatFile, "format", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if math.IsNaN(minSupport) && math.IsNaN(minLength) {
		return c.UsageError("expecting flag --support or --length")
	}

	var input string
	if len(args) > 0 {
		input = args[0]
	}
	ts, err := treefile.Read(c, input)
	if err != nil {
		return err
	}

	var f newick.Format
	if formatFile != "" {
		f, err = treefile.Format(formatFile)
		if err != nil {
			return err
		}
	}

	logger := treefile.Logger(c, verbose)
	res := make([]*tree.Tree, 0, len(ts))
	for i, t := range ts {
		if formatFile == "" {
			mf, me := newick.Digits(t)
			f.MaxF = max(f.MaxF, mf)
			f.MaxE = max(f.MaxE, me)
		}

		nt := t.UnpackFunc(collapse)

		logger.Debug("unpacked tree", "tree", i+1, "before", internal(t), "after", internal(nt))
		res = append(res, nt)
	}

	return treefile.Write(c, output, f, res...)
}

func collapse(t *tree.Tree, id int) bool {
	if !math.IsNaN(minSupport) {
		if s, ok := t.LabelSupport(id); ok && s < minSupport {
			return true
		}
	}
	if !math.IsNaN(minLength) {
		if l, ok := t.Length(id); ok && l < minLength {
			return true
		}
	}
	return false
}

func internal(t *tree.Tree) int {
	n := 0
	for _, id := range t.Nodes() {
		if !t.IsTerm(id) {
			n++
		}
	}
	return n
}
