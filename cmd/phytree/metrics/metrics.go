// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package metrics is a metapackage for commands
// that calculate node metrics.
package metrics

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phytree/cmd/phytree/metrics/bidi"
	"github.com/js-arias/phytree/cmd/phytree/metrics/length"
	"github.com/js-arias/phytree/cmd/phytree/metrics/plot"
	"github.com/js-arias/phytree/cmd/phytree/metrics/split"
)

var Command = &command.Command{
	Usage: "metrics <command> [<argument>...]",
	Short: "commands for node metrics",
}

func init() {
	Command.Add(bidi.Command)
	Command.Add(length.Command)
	Command.Add(plot.Command)
	Command.Add(split.Command)
}
