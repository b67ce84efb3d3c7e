// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package taxon implements a set of taxon names,
// for example,
// the taxa of an outgroup.
package taxon

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"
)

// A Taxer is an interface for types
// that return a list of taxon names.
type Taxer interface {
	Taxa() []string
}

// Set is a set of taxon names.
type Set map[string]bool

// New returns a new set with the indicated taxa.
func New(names ...string) Set {
	s := Set(make(map[string]bool, len(names)))
	s.Add(names...)
	return s
}

// Read reads a set of taxon names from a TSV file.
//
// The TSV must be without header
// and the first column should be the name of the taxon.
// Any other columns will be ignored.
//
// Here is an example file
//
//	# outgroup
//	Drosophila melanogaster
//	Drosophila simulans
func Read(r io.Reader) (Set, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'
	tsv.FieldsPerRecord = -1
	tsv.LazyQuotes = true

	s := New()
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on line %d: %v", ln, err)
		}

		name := strings.Join(strings.Fields(row[0]), " ")
		if name == "" {
			continue
		}
		s.Add(name)
	}
	return s, nil
}

// Add adds one or more taxon names.
// Empty names are ignored.
func (s Set) Add(names ...string) {
	for _, n := range names {
		if n == "" {
			continue
		}
		s[n] = true
	}
}

// AddFrom adds the taxon names from a taxer
// (for example, a tree).
func (s Set) AddFrom(tx Taxer) {
	s.Add(tx.Taxa()...)
}

// Has returns true if the taxon is in the set.
func (s Set) Has(name string) bool {
	return s[name]
}

// Len returns the number of taxa in the set.
func (s Set) Len() int {
	return len(s)
}

// Taxa returns a sorted slice
// with the names in the set.
func (s Set) Taxa() []string {
	ls := make([]string, 0, len(s))
	for n := range s {
		ls = append(ls, n)
	}
	slices.Sort(ls)
	return ls
}

// Write writes a set of taxon names
// into a tab-delimited file.
func (s Set) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# taxon list\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))

	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	for _, n := range s.Taxa() {
		if err := tsv.Write([]string{n}); err != nil {
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
