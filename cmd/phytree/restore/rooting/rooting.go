// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package rooting implements a command to root trees
// as a source tree.
package rooting

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/phytree/align"
	"github.com/js-arias/phytree/cmd/phytree/internal/treefile"
	"github.com/js-arias/phytree/tree"
)

var Command = &command.Command{
	Usage: `rooting [--supports] [--format <file>] [-o|--output <file>]
	<source-file> [<target-file>]`,
	Short: "root trees as a source tree",
	Long: `
Command rooting reads a source tree, and one or more target trees, and roots
the target trees in the same way as the source tree.

The first argument of the command is the name of the file with the source
tree. Only the first tree of the file is used. The second argument is the
name of the file with the target trees. If no target file is given, the
target trees will be read from the standard input.

The smallest clade descendant from the root of the source tree is used as the
outgroup. If the source tree is unrooted, the resulting trees will be also
unrooted. The source and target trees must have the same taxa.

If the flag --supports is set, the labels of the internal nodes of the
target trees are read as support values, so the support values are moved with
their branches when the tree is rerooted.

By default, the trees will be written in the standard output. Use the flag
--output, or -o, to define an output file.

The flag --format can be used to define a format file for the output trees.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var supports bool
var formatFile string
var output string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&supports, "supports", false, "")
	c.Flags().StringVar(&formatFile, "format", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting source tree file")
	}
	source, err := treefile.ReadOne(c, args[0])
	if err != nil {
		return err
	}
	var input string
	if len(args) > 1 {
		input = args[1]
	}
	ts, err := treefile.Read(c, input)
	if err != nil {
		return err
	}
	f, err := treefile.Format(formatFile)
	if err != nil {
		return err
	}

	res := make([]*tree.Tree, 0, len(ts))
	for i, t := range ts {
		if supports {
			t.AssignSupports(tree.Lenient)
		}
		nt, err := align.RestoreRooting(source, t)
		if err != nil {
			return fmt.Errorf("tree %d: %w", i+1, err)
		}
		if supports {
			nt.SupportToLabel()
		}
		res = append(res, nt)
	}
	return treefile.Write(c, output, f, res...)
}
