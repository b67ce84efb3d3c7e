// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(formatGuide)
	app.Add(supportGuide)
	app.Add(taxonFilesGuide)
	app.Add(treeFilesGuide)
}

var treeFilesGuide = &command.Command{
	Usage: "tree-files",
	Short: "about tree files",
	Long: `
PhyTree reads and writes phylogenetic trees in newick (parenthetical) format.
A newick file can contain one or more trees, each one terminated by a
semicolon. Most commands that read a tree accept the name of the file as an
argument; if no file is given, or the name is "-", the trees are read from the
standard input.

Here is an example file:

	((a:1.0,b:2.0)n3:0.5,(c:1.5,'Drosophila melanogaster':0.7)n4:0.1)n1;

A label without quotes can not contain blanks or any of the characters

	, : ( ) ; [ ]

and an underscore in an unquoted label is read as a blank. A label can be
enclosed in single quotes, and a single quote inside a quoted label is
written as two single quotes. Comments are enclosed in square brackets, and
they are ignored.

A tree is rooted if its root has exactly two descendants. If the root has a
single descendant, or three or more descendants, the tree is unrooted, and
the root is just the node used to anchor the tree.

Use "phytree import" to convert time-calibrated trees stored in a
tab-delimited file into newick format.
	`,
}

var supportGuide = &command.Command{
	Usage: "supports",
	Short: "about support values",
	Long: `
The support of a branch (for example, a bootstrap frequency, or a posterior
probability) is stored in newick files as a label of the descendant node of
the branch. If the node also has a name, both values are separated by a colon
and, as the colon is a reserved character, the whole label is quoted:

	((a,b)95,(c,d)'80:Dmel');

In the example, the first clade has a support of 95, and the second clade
has a support of 80 and the name "Dmel".

In strict mode, only plain decimal numbers (for example "95" or "0.95") are
read as supports. In lenient mode, blanks around the number are ignored, and
any number, including scientific notation, is read as a support.

The support of terminals and of the root is always ignored.
	`,
}

var taxonFilesGuide = &command.Command{
	Usage: "taxon-files",
	Short: "about taxon list files",
	Long: `
Some commands (for example "phytree root", or "phytree shear") require a list
of taxa. A taxon list is a tab-delimited file without header, in which the
first column contains the name of a taxon. Any other columns will be
ignored. Lines starting with '#' are comments.

Here is an example file:

	# outgroup
	Drosophila melanogaster
	Drosophila simulans
	`,
}

var formatGuide = &command.Command{
	Usage: "format-files",
	Short: "about newick format files",
	Long: `
Commands that write trees in newick format accept the flag --format, with a
format file, a TOML file that defines how the trees will be written. The
following keys are recognized:

	keep-space  if true, blanks in labels are kept (and the label is quoted),
	            by default, blanks are replaced by underscores.
	max-f       maximum number of significant digits of branch lengths
	            written in plain decimal notation.
	max-e       maximum number of significant digits of branch lengths
	            written in scientific notation.

If the maximum number of digits is zero, or is not defined, the shortest
representation that reads back to the same value is used.

Here is an example file:

	# newick output format
	keep-space = true
	max-f = 6
	max-e = 3
	`,
}
