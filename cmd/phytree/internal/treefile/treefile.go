// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package treefile implements functions
// shared by the phytree commands
// to read and write newick files,
// and to report progress.
package treefile

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/js-arias/command"
	"github.com/js-arias/phytree/newick"
	"github.com/js-arias/phytree/taxon"
	"github.com/js-arias/phytree/tree"
)

// Logger returns a logger that writes
// into the standard error of the command.
// If verbose is true,
// debug messages are also reported.
func Logger(c *command.Command, verbose bool) *log.Logger {
	lvl := log.WarnLevel
	if verbose {
		lvl = log.DebugLevel
	}
	return log.NewWithOptions(c.Stderr(), log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           lvl,
		Prefix:          "phytree",
	})
}

// Read reads the trees from a newick file.
// If the name is empty or "-",
// the trees are read from the standard input.
func Read(c *command.Command, name string) ([]*tree.Tree, error) {
	var r io.Reader = c.Stdin()
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

	ts, err := newick.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return ts, nil
}

// ReadOne reads the first tree of a newick file.
func ReadOne(c *command.Command, name string) (*tree.Tree, error) {
	ts, err := Read(c, name)
	if err != nil {
		return nil, err
	}
	return ts[0], nil
}

// Format returns the newick output format
// defined in a TOML file.
// If the name is empty,
// it returns the default format.
func Format(name string) (newick.Format, error) {
	if name == "" {
		return newick.Format{}, nil
	}
	return newick.ReadFormat(name)
}

// Write writes one or more trees in newick format.
// If the name is empty,
// the trees are written in the standard output.
func Write(c *command.Command, name string, f newick.Format, ts ...*tree.Tree) (err error) {
	var w io.Writer = c.Stdout()
	if name != "" {
		file, err := os.Create(name)
		if err != nil {
			return err
		}
		defer func() {
			e := file.Close()
			if err == nil && e != nil {
				err = e
			}
		}()
		w = file
	} else {
		name = "stdout"
	}

	for _, t := range ts {
		if err := newick.Write(w, t, f); err != nil {
			return fmt.Errorf("on file %q: %v", name, err)
		}
	}
	return nil
}

// Taxa reads a list of taxon names from a file.
func Taxa(name string) (taxon.Set, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := taxon.Read(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return s, nil
}

// WriteTaxa writes a list of taxon names into a file.
func WriteTaxa(name string, s taxon.Set) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if err == nil && e != nil {
			err = e
		}
	}()

	if err := s.Write(f); err != nil {
		return fmt.Errorf("on file %q: %v", name, err)
	}
	return nil
}
