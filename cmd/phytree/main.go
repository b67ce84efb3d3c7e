// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// PhyTree is a tool to manipulate phylogenetic trees.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phytree/cmd/phytree/cmpcmd"
	"github.com/js-arias/phytree/cmd/phytree/count"
	"github.com/js-arias/phytree/cmd/phytree/ids"
	"github.com/js-arias/phytree/cmd/phytree/importcmd"
	"github.com/js-arias/phytree/cmd/phytree/metrics"
	"github.com/js-arias/phytree/cmd/phytree/order"
	"github.com/js-arias/phytree/cmd/phytree/restore"
	"github.com/js-arias/phytree/cmd/phytree/root"
	"github.com/js-arias/phytree/cmd/phytree/shear"
	"github.com/js-arias/phytree/cmd/phytree/support"
	"github.com/js-arias/phytree/cmd/phytree/unpack"
)

var app = &command.Command{
	Usage: "phytree <command> [<argument>...]",
	Short: "a tool to manipulate phylogenetic trees",
}

func init() {
	app.Add(cmpcmd.Command)
	app.Add(count.Command)
	app.Add(ids.Command)
	app.Add(importcmd.Command)
	app.Add(metrics.Command)
	app.Add(order.Command)
	app.Add(restore.Command)
	app.Add(root.Command)
	app.Add(shear.Command)
	app.Add(support.Command)
	app.Add(unpack.Command)
}

func main() {
	app.Main()
}
