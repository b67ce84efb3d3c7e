// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package align transfers the rooting,
// the node labels,
// or the order of nodes,
// between two trees with the same taxa.
//
// Nodes of both trees are matched by their signature:
// the sorted list of the names of their descendant terminals.
package align

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/js-arias/phytree/reroot"
	"github.com/js-arias/phytree/tree"
)

// Errors returned when aligning trees.
var (
	ErrTaxaMismatch   = errors.New("source and target trees have different taxa")
	ErrDuplicateLabel = errors.New("duplicated node label")
	ErrSize           = errors.New("two trees have different sizes")
	ErrTopology       = errors.New("two trees have different topologies")
)

// Signatures returns the signature of each node of a tree:
// the comma-joined sorted list
// of the names of its descendant terminals.
func Signatures(t *tree.Tree) map[int]string {
	taxa := make(map[int][]string, t.Len())
	sig := make(map[int]string, t.Len())
	for _, id := range t.PostOrder() {
		if t.IsTerm(id) {
			taxa[id] = []string{t.Name(id)}
			sig[id] = t.Name(id)
			continue
		}
		var ls []string
		for _, c := range t.Children(id) {
			ls = append(ls, taxa[c]...)
			delete(taxa, c)
		}
		slices.Sort(ls)
		taxa[id] = ls
		sig[id] = strings.Join(ls, ",")
	}
	return sig
}

// RestoreRooting returns a copy of the target tree
// rooted as the source tree.
//
// The smallest clade of the root of the source tree
// is used as the outgroup.
// If the source tree is unrooted
// (i.e., its root has more than two children),
// the result is also unrooted.
func RestoreRooting(source, target *tree.Tree) (*tree.Tree, error) {
	if !slices.Equal(source.Taxa(), target.Taxa()) {
		return nil, ErrTaxaMismatch
	}

	children := source.Children(source.Root())
	if len(children) == 0 {
		return nil, fmt.Errorf("source tree %q: root without children", source.TreeName())
	}
	var outgroup []string
	for _, c := range children {
		tips := source.TipsUnder(c)
		if outgroup == nil || len(tips) < len(outgroup) {
			outgroup = tips
		}
	}

	return reroot.RootByOutgroup(target, outgroup, true, len(children) > 2)
}

// RestoreLabels returns a copy of the target tree
// in which the internal nodes
// (excluding the root)
// are named after the nodes of the source tree
// with the same signature.
// Nodes without a matching named node
// keep their names.
func RestoreLabels(source, target *tree.Tree) (*tree.Tree, error) {
	ss := Signatures(source)
	labels := make(map[string]string)
	used := make(map[string]bool)
	for _, id := range source.Nodes() {
		if source.IsRoot(id) || source.IsTerm(id) {
			continue
		}
		name := source.Name(id)
		if name == "" {
			continue
		}
		if used[name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, name)
		}
		used[name] = true
		labels[ss[id]] = name
	}

	nt := target.Copy()
	ts := Signatures(nt)
	for _, id := range nt.Nodes() {
		if nt.IsRoot(id) || nt.IsTerm(id) {
			continue
		}
		if name, ok := labels[ts[id]]; ok {
			nt.SetName(id, name)
		}
	}
	return nt, nil
}

// RestoreOrder returns a copy of the target tree
// in which the children of each node
// are sorted as in the source tree.
// Both trees must have the same topology.
func RestoreOrder(source, target *tree.Tree) (*tree.Tree, error) {
	if source.Len() != target.Len() {
		return nil, ErrSize
	}

	ss := Signatures(source)
	bySig := make(map[string]int, len(ss))
	for id, s := range ss {
		bySig[s] = id
	}

	nt := target.Copy()
	ts := Signatures(nt)
	for _, s := range ts {
		if _, ok := bySig[s]; !ok {
			return nil, ErrTopology
		}
	}

	for _, id := range nt.Nodes() {
		if nt.IsTerm(id) {
			continue
		}
		pos := make(map[string]int)
		for i, c := range source.Children(bySig[ts[id]]) {
			pos[ss[c]] = i
		}
		children := nt.Children(id)
		slices.SortStableFunc(children, func(a, b int) int {
			return pos[ts[a]] - pos[ts[b]]
		})
		if err := nt.SetChildren(id, children); err != nil {
			return nil, err
		}
	}
	return nt, nil
}
