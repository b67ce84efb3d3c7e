// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package bidi implements a command to print
// the bidirectional minimum levels and depths
// of the nodes of a tree.
package bidi

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/js-arias/command"
	"github.com/js-arias/phytree/cmd/phytree/internal/treefile"
	"github.com/js-arias/phytree/metrics"
	"github.com/js-arias/phytree/tree"
)

var Command = &command.Command{
	Usage: "bidi [<tree-file>]",
	Short: "print bidirectional minimum levels and depths",
	Long: `
Command bidi reads a tree, and prints, for each node, the minimum number of
nodes, and the minimum sum of branch lengths, to reach any terminal, either
descendant of the node, or by going up in the tree. The output is a
tab-delimited table with the following columns:

	- name      the name of the node
	- minlevel  the minimum number of nodes (including both ends) to reach a
	            terminal
	- mindepth  the minimum sum of branch lengths to reach a terminal

The argument of the command is the name of a newick file. If no file is
given, the tree will be read from the standard input. Only the first tree of
the file is used.

Branches without length are taken as of length 0. Nodes are printed in level
order.
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
	return write(c.Stdout(), t, metrics.MinLevels(t), metrics.MinDepths(t))
}

func write(w io.Writer, t *tree.Tree, levels map[int]int, depths map[int]float64) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# bidirectional node metrics\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))

	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true
	if err := tsv.Write([]string{"name", "minlevel", "mindepth"}); err != nil {
		return err
	}
	for _, id := range t.LevelOrder() {
		row := []string{
			t.Name(id),
			strconv.Itoa(levels[id]),
			strconv.FormatFloat(depths[id], 'f', 6, 64),
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
