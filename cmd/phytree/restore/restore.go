// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package restore is a metapackage for commands
// that copy the rooting,
// the node labels,
// or the node order,
// from a source tree into other trees.
package restore

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phytree/cmd/phytree/restore/labels"
	"github.com/js-arias/phytree/cmd/phytree/restore/order"
	"github.com/js-arias/phytree/cmd/phytree/restore/rooting"
)

var Command = &command.Command{
	Usage: "restore <command> [<argument>...]",
	Short: "commands to restore properties of a source tree",
}

func init() {
	Command.Add(labels.Command)
	Command.Add(order.Command)
	Command.Add(rooting.Command)
}
