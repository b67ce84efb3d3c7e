// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package root implements a command to root a tree
// using an outgroup.
package root

import (
	"fmt"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/phytree/cmd/phytree/internal/treefile"
	"github.com/js-arias/phytree/reroot"
	"github.com/js-arias/phytree/taxon"
	"github.com/js-arias/phytree/tree"
)

var Command = &command.Command{
	Usage: `root [--outgroup <file>] [--taxa <list>]
	[--strict] [--unroot] [--supports]
	[--format <file>] [-o|--output <file>] [--verbose]
	[<tree-file>]`,
	Short: "root trees with an outgroup",
	Long: `
Command root reads one or more trees, and roots them at the branch that
separates the taxa of an outgroup from the rest of the taxa in the tree.

The argument of the command is the name of a newick file. If no file is
given, the trees will be read from the standard input.

The outgroup is defined with the flag --outgroup, with a file that contains
the list of taxa in the outgroup, or with the flag --taxa, with a list of taxa
separated by commas. Both flags can be used at the same time.

By default, outgroup taxa not found in a tree are ignored. If the flag
--strict is set, all the outgroup taxa must be present in the tree.

By default, the resulting trees are rooted. If the flag --unroot is set, the
resulting trees will be unrooted, and the outgroup will be a descendant of
the basal node.

If the flag --supports is set, the labels of the internal nodes are read as
support values, so the support values are moved with their branches when the
tree is rerooted.

By default, the trees will be written in the standard output. Use the flag
--output, or -o, to define an output file.

The flag --format can be used to define a format file for the output trees.

Use the flag --verbose to report the outgroup taxa absent from each tree.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var strict bool
var unroot bool
var supports bool
var verbose bool
var outgroupFile string
var taxaList string
var formatFile string
var output string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&strict, "strict", false, "")
	c.Flags().BoolVar(&unroot, "unroot", false, "")
	c.Flags().BoolVar(&supports, "supports", false, "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
	c.Flags().StringVar(&outgroupFile, "outgroup", "", "")
	c.Flags().StringVar(&taxaList, "taxa", "", "")
	c.Flags().StringVar(&formatFile, "format", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	og := taxon.New()
	if outgroupFile != "" {
		s, err := treefile.Taxa(outgroupFile)
		if err != nil {
			return err
		}
		og.Add(s.Taxa()...)
	}
	for _, tx := range strings.Split(taxaList, ",") {
		og.Add(strings.Join(strings.Fields(tx), " "))
	}
	if og.Len() == 0 {
		return c.UsageError("expecting outgroup, flag --outgroup or --taxa")
	}

	var input string
	if len(args) > 0 {
		input = args[0]
	}
	f, err := treefile.Format(formatFile)
	if err != nil {
		return err
	}
	ts, err := treefile.Read(c, input)
	if err != nil {
		return err
	}

	logger := treefile.Logger(c, verbose)
	rooted := make([]*tree.Tree, 0, len(ts))
	for i, t := range ts {
		inTree := taxon.New()
		inTree.AddFrom(t)
		for _, tx := range og.Taxa() {
			if !inTree.Has(tx) {
				logger.Debug("outgroup taxon not in tree", "tree", i+1, "taxon", tx)
			}
		}

		if supports {
			t.AssignSupports(tree.Lenient)
		}
		nt, err := reroot.RootByOutgroup(t, og.Taxa(), strict, unroot)
		if err != nil {
			return fmt.Errorf("tree %d: %w", i+1, err)
		}
		if supports {
			nt.SupportToLabel()
		}
		rooted = append(rooted, nt)
	}

	return treefile.Write(c, output, f, rooted...)
}
