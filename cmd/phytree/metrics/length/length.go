// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package length implements a command to print
// the branch length metrics of the nodes of a tree.
package length

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/js-arias/command"
	"github.com/js-arias/phytree/cmd/phytree/internal/treefile"
	"github.com/js-arias/phytree/metrics"
	"github.com/js-arias/phytree/tree"
)

var Command = &command.Command{
	Usage: "length [<tree-file>]",
	Short: "print branch length node metrics",
	Long: `
Command length reads a tree, and prints the following metrics for each node,
as a tab-delimited table in the standard output:

	- name          the name of the node
	- length        the length of the branch of the node
	- height        the sum of branch lengths from the root to the node
	- depth_min     the minimum sum of branch lengths from the node to a
	                terminal
	- depth_max     the maximum sum of branch lengths from the node to a
	                terminal
	- depth_mean    the mean of the sums of branch lengths from the node to
	                its terminals
	- depth_median  the median of the sums of branch lengths from the node
	                to its terminals
	- depth_stdev   the sample standard deviation of the sums of branch
	                lengths from the node to its terminals
	- red           the relative evolutionary divergence (RED) of the node
	                (Parks et al. 2018, Nat. Biotechnol. 36: 996)

The argument of the command is the name of a newick file. If no file is
given, the tree will be read from the standard input. Only the first tree of
the file is used.

Branches without length are taken as of length 0. Nodes are printed in level
order. Depth statistics of terminals are printed as "na".
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
	return write(c.Stdout(), t, metrics.Lengths(t))
}

var headerFields = []string{
	"name",
	"length",
	"height",
	"depth_min",
	"depth_max",
	"depth_mean",
	"depth_median",
	"depth_stdev",
	"red",
}

func write(w io.Writer, t *tree.Tree, m map[int]metrics.Length) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# branch length node metrics\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))

	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true
	if err := tsv.Write(headerFields); err != nil {
		return err
	}
	for _, id := range t.LevelOrder() {
		lm := m[id]
		l, _ := t.Length(id)
		row := []string{
			t.Name(id),
			strconv.FormatFloat(l, 'f', 6, 64),
			strconv.FormatFloat(lm.Height, 'f', 6, 64),
		}
		if t.IsTerm(id) {
			row = append(row, "na", "na", "na", "na", "na")
		} else {
			s := metrics.DepthStats(lm.Depths)
			row = append(row,
				strconv.FormatFloat(s.Min, 'f', 6, 64),
				strconv.FormatFloat(s.Max, 'f', 6, 64),
				strconv.FormatFloat(s.Mean, 'f', 6, 64),
				strconv.FormatFloat(s.Median, 'f', 6, 64),
				formatStdDev(s.StdDev),
			)
		}
		row = append(row, strconv.FormatFloat(lm.RED, 'f', 5, 64))
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

func formatStdDev(v float64) string {
	if math.IsNaN(v) {
		return "na"
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}
