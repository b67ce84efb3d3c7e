// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package split implements a command to print
// the topological metrics of the nodes of a tree.
package split

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"
	"time"

	"github.com/js-arias/command"
	"github.com/js-arias/phytree/cmd/phytree/internal/treefile"
	"github.com/js-arias/phytree/metrics"
	"github.com/js-arias/phytree/tree"
)

var Command = &command.Command{
	Usage: "split [<tree-file>]",
	Short: "print topological node metrics",
	Long: `
Command split reads a tree, and prints the following metrics for each node,
as a tab-delimited table in the standard output:

	- name        the name of the node
	- n           the number of descendant terminals
	- splits      the number of internal nodes in the clade
	- postlevels  the maximum number of nodes from the node to a terminal
	- prelevels   the number of nodes from the root to the node

The argument of the command is the name of a newick file. If no file is
given, the tree will be read from the standard input. Only the first tree of
the file is used.

Nodes are printed in level order. All nodes must have a name (use "phytree
ids" to assign IDs to the internal nodes).
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	var input string
	if len(args) > 0 {
		input = args[0]
	}
	t, err := treefile.ReadOne(c, input)
	if err != nil {
		return err
	}
	return write(c.Stdout(), t, metrics.Splits(t))
}

func write(w io.Writer, t *tree.Tree, m map[int]metrics.Split) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# topological node metrics\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))

	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true
	if err := tsv.Write([]string{"name", "n", "splits", "postlevels", "prelevels"}); err != nil {
		return err
	}
	for _, id := range t.LevelOrder() {
		s := m[id]
		row := []string{
			t.Name(id),
			strconv.Itoa(s.N),
			strconv.Itoa(s.Splits),
			strconv.Itoa(slices.Max(s.PostLevels)),
			strconv.Itoa(s.PreLevel),
		}
		if err := tsv.Write(row); err != nil {
			return err
		}
	}
	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}
