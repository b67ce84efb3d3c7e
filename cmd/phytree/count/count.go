// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package count implements a command to count
// the terminals and internal nodes of a tree.
package count

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/phytree/cmd/phytree/internal/treefile"
	"github.com/js-arias/phytree/taxon"
)

var Command = &command.Command{
	Usage: "count [--taxa <file>] [--verbose] [<tree-file>]",
	Short: "count terminals and internal nodes",
	Long: `
Command count reads one or more trees, and prints the number of terminals and
internal nodes of each tree.

The argument of the command is the name of a newick file. If no file is
given, the trees will be read from the standard input.

A warning is reported if a tree has terminals without names, or with
duplicated names. Use the flag --verbose to report if the tree is rooted.

The flag --taxa defines a file in which the names of the terminals of all the
trees will be written as a taxon list (type "phytree help taxon-files" for
more information).
	`,
	SetFlags: setFlags,
	Run:      run,
}

var verbose bool
var taxaFile string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&verbose, "verbose", false, "")
	c.Flags().StringVar(&taxaFile, "taxa", "", "")
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

	logger := treefile.Logger(c, verbose)
	taxa := taxon.New()
	for i, t := range ts {
		taxa.AddFrom(t)

		dup, err := t.HasDuplicates()
		if err != nil {
			logger.Warn("invalid terminals", "tree", i+1, "err", err)
		} else if dup {
			logger.Warn("duplicated terminal names", "tree", i+1)
		}
		logger.Debug("tree root", "tree", i+1, "rooted", t.IsRooted())

		n := len(t.Terms())
		fmt.Fprintf(c.Stdout(), "Tree has %d tips and %d internal nodes.\n", n, t.Len()-n)
	}

	if taxaFile == "" {
		return nil
	}
	return treefile.WriteTaxa(taxaFile, taxa)
}
