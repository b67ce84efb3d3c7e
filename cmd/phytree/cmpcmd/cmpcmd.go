// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package cmpcmd implements a command to compare
// two trees.
package cmpcmd

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/phytree/cmd/phytree/internal/treefile"
	"github.com/js-arias/phytree/compare"
)

var Command = &command.Command{
	Usage: "compare [--lengths] [--exact] <tree-file> <tree-file>",
	Short: "compare two trees",
	Long: `
Command compare reads two trees, and prints "true" if both trees are equal,
or "false" otherwise.

The arguments of the command are the names of the files with the trees. Only
the first tree of each file is used.

By default, only the topology is compared. As nodes are matched by their
names, all nodes of both trees (including internal nodes) must have unique
names. The order of the descendants of a node is ignored.

If the flag --lengths is set, the branch lengths are also compared. In this
case, only the names of the terminals are used, and lengths are compared
with a relative tolerance of 1e-9.

If the flag --exact is set, the trees must be identical, including the
order of the nodes, the names, the branch lengths, and the labels.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var lengths bool
var exact bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&lengths, "lengths", false, "")
	c.Flags().BoolVar(&exact, "exact", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 2 {
		return c.UsageError("expecting two tree files")
	}
	t1, err := treefile.ReadOne(c, args[0])
	if err != nil {
		return err
	}
	t2, err := treefile.ReadOne(c, args[1])
	if err != nil {
		return err
	}

	var eq bool
	switch {
	case exact:
		eq = compare.Exact(t1, t2)
	case lengths:
		eq = compare.BranchLengths(t1, t2)
	default:
		if dup, err := t1.HasDuplicates(); err != nil || dup {
			return fmt.Errorf("on file %q: terminal names must be unique", args[0])
		}
		eq = compare.Topology(t1, t2)
	}
	fmt.Fprintf(c.Stdout(), "%v\n", eq)
	return nil
}
