// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package importcmd implements a command to convert
// time calibrated trees,
// or newick trees from other programs,
// into newick trees.
package importcmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	gtnewick "github.com/evolbioinfo/gotree/io/newick"
	"github.com/js-arias/command"
	"github.com/js-arias/phytree/cmd/phytree/internal/treefile"
	"github.com/js-arias/phytree/tree"
	"github.com/js-arias/timetree"
)

var Command = &command.Command{
	Usage: `import [--tree <name>] [--newick]
	[--format <file>] [-o|--output <file>]
	[<tree-file>]`,
	Short: "import trees from other formats",
	Long: `
Command import reads one or more time calibrated trees from a tab-delimited
file, and writes them in newick format. Branch lengths are in million years.

The time calibrated tree file is a tab-delimited file with the following
columns:

	-tree    for the name of the tree.
	-node    for the ID of the node.
	-parent  for of ID of the parent node (-1 is used for the root).
	-age     the age of the node (in years).
	-taxon   the taxonomic name of the node.

The argument of the command is the name of the time calibrated tree file. If
no file is given, the trees will be read from the standard input.

By default, all trees in the file will be imported. Use the flag --tree to
import only the indicated tree.

If the flag --newick is set, the input file is a newick file written by other
programs. Numeric labels of internal nodes are read as support values, and
comments are discarded. The supports are written back as node labels (type
"phytree help supports" for more information). The flag --tree is ignored.

By default, the trees will be written in the standard output. Use the flag
--output, or -o, to define an output file.

The flag --format can be used to define a format file for the output trees.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeName string
var isNewick bool
var formatFile string
var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeName, "tree", "", "")
	c.Flags().BoolVar(&isNewick, "newick", false, "")
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

	if isNewick {
		ts, err := readNewick(c.Stdin(), input)
		if err != nil {
			return err
		}
		return treefile.Write(c, output, f, ts...)
	}

	tc, err := readCollection(c.Stdin(), input)
	if err != nil {
		return err
	}

	names := tc.Names()
	if treeName != "" {
		names = []string{treeName}
	}

	var ts []*tree.Tree
	for _, tn := range names {
		tt := tc.Tree(tn)
		if tt == nil {
			return fmt.Errorf("tree %q not found", tn)
		}
		ts = append(ts, tree.FromTimeTree(tt))
	}
	return treefile.Write(c, output, f, ts...)
}

func readCollection(r io.Reader, name string) (*timetree.Collection, error) {
	if name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		name = "stdin"
	}

	c, err := timetree.ReadTSV(r)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return c, nil
}

func readNewick(r io.Reader, name string) ([]*tree.Tree, error) {
	if name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		name = "stdin"
	}

	var ts []*tree.Tree
	br := bufio.NewReader(r)
	for {
		s, err := br.ReadString(';')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("while reading file %q: %v", name, err)
		}
		if strings.TrimSpace(s) != "" {
			gt, perr := gtnewick.NewParser(strings.NewReader(s)).Parse()
			if perr != nil {
				return nil, fmt.Errorf("while reading file %q: tree %d: %v", name, len(ts)+1, perr)
			}
			t := tree.FromGotree(gt)
			t.SupportToLabel()
			ts = append(ts, t)
		}
		if errors.Is(err, io.EOF) {
			break
		}
	}
	if len(ts) == 0 {
		return nil, fmt.Errorf("while reading file %q: no trees found", name)
	}
	return ts, nil
}
