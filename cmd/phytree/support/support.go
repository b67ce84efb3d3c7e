// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package support is a metapackage for commands
// that dealt with branch support values.
package support

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phytree/cmd/phytree/support/assign"
	"github.com/js-arias/phytree/cmd/phytree/support/export"
)

var Command = &command.Command{
	Usage: "support <command> [<argument>...]",
	Short: "commands for branch support values",
}

func init() {
	Command.Add(assign.Command)
	Command.Add(export.Command)
}
