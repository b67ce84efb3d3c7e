// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package labels implements a command to copy
// the names of the internal nodes
// of a source tree into other trees.
package labels

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/phytree/align"
	"github.com/js-arias/phytree/cmd/phytree/internal/treefile"
	"github.com/js-arias/phytree/tree"
)

var Command = &command.Command{
	Usage: `labels [--format <file>] [-o|--output <file>]
	<source-file> [<target-file>]`,
	Short: "copy node labels from a source tree",
	Long: `
Command labels reads a source tree, and one or more target trees, and copies
the names of the internal nodes of the source tree into the nodes of the
target trees with the same descendant terminals.

The first argument of the command is the name of the file with the source
tree. Only the first tree of the file is used. The second argument is the
name of the file with the target trees. If no target file is given, the
target trees will be read from the standard input.

Nodes of the target trees without a matching named node in the source tree
keep their names. The name of the root is never modified. Internal nodes of
the source tree must have unique names.

By default, the trees will be written in the standard output. Use the flag
--output, or -o, to define an output file.

The flag --format can be used to define a format file for the output trees.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var formatFile string
var output string

func setFlags(c *command.Command) {
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
		nt, err := align.RestoreLabels(source, t)
		if err != nil {
			return fmt.Errorf("tree %d: %w", i+1, err)
		}
		res = append(res, nt)
	}
	return treefile.Write(c, output, f, res...)
}
