// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package shear implements a command to reduce a tree
// to a set of taxa.
package shear

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/phytree/cmd/phytree/internal/treefile"
	"github.com/js-arias/phytree/tree"
)

var Command = &command.Command{
	Usage: `shear [--taxa <file>] [--with <tree-file>] [--clade]
	[--format <file>] [-o|--output <file>] [--verbose]
	[<tree-file>]`,
	Short: "reduce a tree to a set of taxa",
	Long: `
Command shear reads one or more trees, and removes all the terminals that are
not in a given set of taxa. Internal nodes left with a single descendant are
removed, and their branch lengths are added to the branch of the
descendant.

The argument of the command is the name of a newick file. If no file is
given, the trees will be read from the standard input.

The taxa to be kept are defined with the flag --taxa, with a file that
contains a list of taxa (type "phytree help taxon-files" for more
information).

Alternatively, the flag --with can be used to define a newick file. In that
case, each tree is reduced to the taxa shared with the first tree of that
file.

If the flag --clade is set, the trees are not modified, and the command
prints whether the taxa form a clade ("mono"), do not form a clade ("poly"),
or is a single terminal ("uni").

By default, the trees will be written in the standard output. Use the flag
--output, or -o, to define an output file. The flag --format can be used to
define a format file for the output trees.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var clade bool
var verbose bool
var taxaFile string
var withFile string
var formatFile string
var output string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&clade, "clade", false, "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
	c.Flags().StringVar(&taxaFile, "taxa", "", "")
	c.Flags().StringVar(&withFile, "with", "", "")
	c.Flags().StringVar(&formatFile, "format", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if taxaFile == "" && withFile == "" {
		return c.UsageError("expecting flag --taxa or --with")
	}
	if clade && taxaFile == "" {
		return c.UsageError("flag --clade requires flag --taxa")
	}

	var input string
	if len(args) > 0 {
		input = args[0]
	}
	ts, err := treefile.Read(c, input)
	if err != nil {
		return err
	}
	f, err := treefile.Format(formatFile)
	if err != nil {
		return err
	}
	logger := treefile.Logger(c, verbose)

	if withFile != "" {
		other, err := treefile.ReadOne(c, withFile)
		if err != nil {
			return err
		}
		res := make([]*tree.Tree, 0, len(ts))
		for i, t := range ts {
			nt, _, err := tree.Intersect(t, other)
			if err != nil {
				return fmt.Errorf("tree %d: %w", i+1, err)
			}
			logger.Debug("sheared tree", "tree", i+1, "taxa", len(nt.Terms()))
			res = append(res, nt)
		}
		return treefile.Write(c, output, f, res...)
	}

	taxa, err := treefile.Taxa(taxaFile)
	if err != nil {
		return err
	}

	if clade {
		for i, t := range ts {
			cl, err := t.Cladistic(taxa.Taxa())
			if err != nil {
				return fmt.Errorf("tree %d: %w", i+1, err)
			}
			fmt.Fprintf(c.Stdout(), "%s\n", cl)
		}
		return nil
	}

	res := make([]*tree.Tree, 0, len(ts))
	for i, t := range ts {
		nt, err := t.Shear(taxa.Taxa())
		if err != nil {
			return fmt.Errorf("tree %d: %w", i+1, err)
		}
		logger.Debug("sheared tree", "tree", i+1, "taxa", len(nt.Terms()))
		res = append(res, nt)
	}
	return treefile.Write(c, output, f, res...)
}
