// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package assign implements a command to remove
// the support values from the node labels of a tree.
package assign

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phytree/cmd/phytree/internal/treefile"
	"github.com/js-arias/phytree/tree"
)

var Command = &command.Command{
	Usage: `assign [--lenient] [--format <file>] [-o|--output <file>]
	[<tree-file>]`,
	Short: "remove support values from node labels",
	Long: `
Command assign reads the support values stored in the labels of the internal
nodes of a tree, and removes them, so the nodes keep only their names.

The argument of the command is the name of a newick file. If no file is
given, the trees will be read from the standard input.

By default, only plain decimal numbers are read as supports. If the flag
--lenient is set, blanks around the number are ignored, and any number,
including scientific notation, is accepted.

By default, the trees will be written in the standard output. Use the flag
--output, or -o, to define an output file.

The flag --format can be used to define a format file for the output trees.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var lenient bool
var formatFile string
var output string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&lenient, "lenient", false, "")
	c.Flags().StringVar(&formatFile, "format", "", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
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

	mode := tree.Strict
	if lenient {
		mode = tree.Lenient
	}
	for _, t := range ts {
		t.AssignSupports(mode)
	}

	return treefile.Write(c, output, f, ts...)
}
