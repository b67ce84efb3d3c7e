// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package export implements a command to export
// the support values of the nodes of a tree
// into a table.
package export

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/js-arias/command"
	"github.com/js-arias/phytree/cmd/phytree/internal/treefile"
	"github.com/js-arias/phytree/tree"
	"golang.org/x/exp/slices"
)

var Command = &command.Command{
	Usage: "export [<tree-file>]",
	Short: "export support values into a table",
	Long: `
Command export reads the labels of the internal nodes of a tree, and prints
the support values as a tab-delimited table in the standard output.

The argument of the command is the name of a newick file. If no file is
given, the tree will be read from the standard input. Only the first tree of
the file is used.

Nodes must have IDs (for example, as assigned by "phytree ids"), so the label
of a node is in the form "<support>:<ID>" (i.e., "N1" is the ID of
"(a,b)'100:N1'"). Labels without an ID are ignored.

The following support formats are recognized:

	- a single number: 100, 0.99
	- multiple numbers separated by slashes: 100/0.99
	- multiple key-value pairs in brackets: [bs=100;rell=0.95;alrt=0.99]
	- other key-value pairs: [&taxon="Ecoli",support=95,range={91,98}]

For single numbers, or numbers separated by slashes, the output table has no
header, and has a row for each node, with the ID of the node, and the support
values. For key-value pairs, the table has a header with the column "node",
and a column for each key.
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

	labels := nodeLabels(t)
	if len(labels) == 0 {
		return nil
	}

	if !isKeyValue(labels[0].support) {
		return writeSimple(c.Stdout(), labels)
	}
	return writeKeyValue(c.Stdout(), labels)
}

type label struct {
	id      string
	support string
}

func nodeLabels(t *tree.Tree) []label {
	var ls []label
	for _, id := range t.LevelOrder() {
		if t.IsRoot(id) || t.IsTerm(id) {
			continue
		}
		i := strings.LastIndexByte(t.Name(id), ':')
		if i < 0 {
			continue
		}
		ls = append(ls, label{
			id:      t.Name(id)[i+1:],
			support: t.Name(id)[:i],
		})
	}
	return ls
}

func isKeyValue(s string) bool {
	return strings.Contains(s, "[")
}

func writeSimple(w io.Writer, labels []label) error {
	bw := bufio.NewWriter(w)
	for _, l := range labels {
		fmt.Fprintf(bw, "%s\t%s\n", l.id, strings.ReplaceAll(l.support, "/", "\t"))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}

// KeyValues splits a label of key-value pairs,
// such as [&taxon=Ecoli,support=95;range={91,98}].
func keyValues(s string) map[string]string {
	s = strings.TrimPrefix(strings.TrimSuffix(strings.TrimPrefix(s, "["), "]"), "&")
	s = strings.TrimRight(strings.ReplaceAll(s, ";", ","), ",")

	kv := make(map[string]string)
	var pairs []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
		case ',':
			if depth > 0 {
				continue
			}
			pairs = append(pairs, s[start:i])
			start = i + 1
		}
	}
	pairs = append(pairs, s[start:])

	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok {
			continue
		}
		kv[k] = v
	}
	return kv
}

func writeKeyValue(w io.Writer, labels []label) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# node supports\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))

	rows := make([]map[string]string, 0, len(labels))
	keys := make(map[string]bool)
	for _, l := range labels {
		kv := keyValues(l.support)
		for k := range kv {
			keys[k] = true
		}
		rows = append(rows, kv)
	}
	fields := make([]string, 0, len(keys))
	for k := range keys {
		fields = append(fields, k)
	}
	slices.Sort(fields)

	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true
	if err := tsv.Write(append([]string{"node"}, fields...)); err != nil {
		return err
	}
	for i, l := range labels {
		row := []string{l.id}
		for _, f := range fields {
			row = append(row, rows[i][f])
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
