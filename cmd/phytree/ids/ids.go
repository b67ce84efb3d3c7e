// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package ids implements a command to assign IDs
// to the internal nodes of a tree.
package ids

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phytree/cmd/phytree/internal/treefile"
)

var Command = &command.Command{
	Usage: `ids [--prefix <string>] [--format <file>] [-o|--output <file>]
	[<tree-file>]`,
	Short: "assign IDs to internal nodes",
	Long: `
Command ids reads one or more trees, and assigns a unique ID to each internal
node, numbered in level order (for example, "N1" for the root, "N2" for its
first descendant, and so on). If an internal node already has a label, the ID
is appended to the label, separated by a colon (for example "95:N2").

The argument of the command is the name of a newick file. If no file is
given, the trees will be read from the standard input.

The flag --prefix sets the prefix of the IDs. By default it is "N".

By default, the trees will be written in the standard output. Use the flag
--output, or -o, to define an output file.

The flag --format can be used to define a format file for the output trees.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var prefix string
var formatFile string
var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&prefix, "prefix", "N", "")
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
	f, err := treefile.Format(formatFile)
	if err != nil {
		return err
	}

	for _, t := range ts {
		t.AssignIDs(prefix)
	}
	return treefile.Write(c, output, f, ts...)
}
