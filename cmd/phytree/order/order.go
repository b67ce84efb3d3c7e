// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package order implements a command to sort
// the descendants of each node of a tree
// by their number of terminals.
package order

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/phytree/cmd/phytree/internal/treefile"
	"github.com/js-arias/phytree/tree"
)

var Command = &command.Command{
	Usage: `order [--decrease] [--check]
	[--format <file>] [-o|--output <file>]
	[<tree-file>]`,
	Short: "sort nodes by the number of terminals",
	Long: `
Command order reads one or more trees, and sorts the descendants of each node
by their number of descendant terminals. Nodes with the same number of
terminals keep their original order.

The argument of the command is the name of a newick file. If no file is
given, the trees will be read from the standard input.

By default, smaller clades are placed first. If the flag --decrease is set,
larger clades are placed first.

If the flag --check is set, the trees are not sorted, instead, the command
prints whether each tree is already sorted.

By default, the trees will be written in the standard output. Use the flag
--output, or -o, to define an output file.

The flag --format can be used to define a format file for the output trees.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var decrease bool
var check bool
var formatFile string
var output string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&decrease, "decrease", false, "")
	c.Flags().BoolVar(&check, "check", false, "")
	c.Flags().StringVar(&formatFile, "format", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	var input string
	if len(args) > 0 {
		input = args[0]
	}
	ts, err := treefile.Read(c, input)
	if err != nil {
		return err
	}
	if check {
		for i, t := range ts {
			fmt.Fprintf(c.Stdout(), "tree %d: sorted: %v\n", i+1, t.IsOrdered(decrease))
		}
		return nil
	}

	f, err := treefile.Format(formatFile)
	if err != nil {
		return err
	}

	res := make([]*tree.Tree, 0, len(ts))
	for _, t := range ts {
		res = append(res, t.Order(decrease))
	}
	return treefile.Write(c, output, f, res...)
}
