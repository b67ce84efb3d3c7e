// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package plot implements a command to draw
// a histogram of the relative evolutionary divergence
// of the nodes of a tree.
package plot

import (
	"fmt"

	"github.com/js-arias/blind"
	"github.com/js-arias/command"
	"github.com/js-arias/phytree/cmd/phytree/internal/treefile"
	"github.com/js-arias/phytree/metrics"
	"github.com/js-arias/phytree/tree"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var Command = &command.Command{
	Usage: `plot [--bins <number>] [-o|--output <file>]
	[<tree-file>]`,
	Short: "draw a histogram of node RED values",
	Long: `
Command plot reads a tree, and draws a histogram with the relative
evolutionary divergence (RED) of its internal nodes (excluding the root).

The argument of the command is the name of a newick file. If no file is
given, the tree will be read from the standard input. Only the first tree of
the file is used.

The flag --bins sets the number of bins of the histogram. By default, 20 bins
are used.

By default, the image will be saved as "red.png". Use the flag --output, or
-o, to define a different file name. The format of the image is defined by
the extension of the file (for example, ".png", ".svg", or ".pdf").
	`,
	SetFlags: setFlags,
	Run:      run,
}

var numBins int
var output string

func setFlags(c *command.Command) {
	c.Flags().IntVar(&numBins, "bins", 20, "")
	c.Flags().StringVar(&output, "output", "red.png", "")
	c.Flags().StringVar(&output, "o", "red.png", "")
}

func run(c *command.Command, args []string) error {
	if numBins < 1 {
		return c.UsageError("flag --bins must be a positive number")
	}

	var input string
	if len(args) > 0 {
		input = args[0]
	}
	t, err := treefile.ReadOne(c, input)
	if err != nil {
		return err
	}

	red := nodeRED(t)
	if len(red) == 0 {
		if input == "" {
			input = "stdin"
		}
		return fmt.Errorf("on file %q: tree without internal nodes", input)
	}
	return redPlot(red, output)
}

func nodeRED(t *tree.Tree) plotter.Values {
	m := metrics.Lengths(t)
	var v plotter.Values
	for _, id := range t.Nodes() {
		if t.IsRoot(id) || t.IsTerm(id) {
			continue
		}
		v = append(v, m[id].RED)
	}
	return v
}

func redPlot(red plotter.Values, name string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("mean RED: %.5f", stat.Mean(red, nil))
	p.X.Label.Text = "RED"
	p.Y.Label.Text = "nodes"
	p.X.Min = 0
	p.X.Max = 1

	h, err := plotter.NewHist(red, numBins)
	if err != nil {
		return fmt.Errorf("while building histogram: %v", err)
	}
	h.FillColor = blind.Sequential(blind.Iridescent, 0.5)
	h.LineStyle.Width = vg.Length(0.5)
	p.Add(h)

	if err := p.Save(5*vg.Inch, 3*vg.Inch, name); err != nil {
		return err
	}
	return nil
}
