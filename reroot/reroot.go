// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package reroot implements re-rooting of phylogenetic trees.
//
// All operations produce a new tree,
// the source tree is never modified.
// The basic operation is a directional copy
// (WalkCopy),
// that copies a node
// as seen when walking into it from one of its neighbors.
package reroot

import (
	"errors"
	"fmt"

	"github.com/js-arias/phytree/tree"
)

// Errors returned by walking operations.
var (
	ErrRootedRoot   = errors.New("cannot walk from root of a rooted tree")
	ErrNotNeighbors = errors.New("source and node are not neighbors")
	ErrRootAbove    = errors.New("cannot root above the root")
)

// Move is the direction of a walk
// from a source node into a node.
type move int

const (
	// from the parent into a child
	down move = iota

	// from a child into its parent
	up

	// from a child into a basal node of a rooted tree
	top

	// from a basal node into its sibling,
	// crossing the root of a rooted tree
	bottom
)

// Classify returns the direction of a walk
// from src into node.
func classify(t *tree.Tree, node, src int) (move, error) {
	parent := t.Parent(node)
	isChild := src >= 0 && t.Parent(src) == node

	if t.IsRoot(node) {
		if t.IsRooted() {
			return 0, ErrRootedRoot
		}
		if !isChild {
			return 0, ErrNotNeighbors
		}
		return up, nil
	}

	if t.IsRoot(parent) && t.IsRooted() {
		if src == sibling(t, node) {
			return bottom, nil
		}
		if isChild {
			return top, nil
		}
		return 0, ErrNotNeighbors
	}

	if src == parent {
		return down, nil
	}
	if isChild {
		return up, nil
	}
	return 0, ErrNotNeighbors
}

// Sibling returns the other basal node
// of a rooted tree.
func sibling(t *tree.Tree, node int) int {
	sibs := t.Siblings(node)
	if len(sibs) != 1 {
		return -1
	}
	return sibs[0]
}

// IsBasalRooted returns true if the node is a child
// of the root of a rooted tree.
func isBasalRooted(t *tree.Tree, node int) bool {
	return !t.IsRoot(node) && t.IsRoot(t.Parent(node)) && t.IsRooted()
}

// UpNeighbor returns the neighbor of a node
// towards the root.
// For a basal node of a rooted tree
// it is the sibling,
// as the root is not a real node.
func upNeighbor(t *tree.Tree, node int) int {
	if isBasalRooted(t, node) {
		return sibling(t, node)
	}
	return t.Parent(node)
}

// AddLength returns the sum of two branch lengths.
// An unspecified length is treated as zero,
// unless both lengths are unspecified.
func addLength(a float64, aOK bool, b float64, bOK bool) (float64, bool) {
	if !aOK && !bOK {
		return 0, false
	}
	return a + b, true
}

// EdgeLength returns the length of the branch
// between a node and its up neighbor.
func edgeLength(t *tree.Tree, node int) (float64, bool) {
	l, ok := t.Length(node)
	if isBasalRooted(t, node) {
		sl, sok := t.Length(sibling(t, node))
		return addLength(l, ok, sl, sok)
	}
	return l, ok
}

type step struct {
	node, src int

	// parent in the destination tree,
	// -1 if the node is the root of the destination
	dst int
}

// Walk copies node,
// as seen when walking from src,
// into the destination tree,
// as a child of dst
// (or as the root of the destination tree if dst is -1).
// It returns the ID of the copy of node.
func walk(dt *tree.Tree, dst int, t *tree.Tree, node, src int) (int, error) {
	first := -1
	stack := []step{{node: node, src: src, dst: dst}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		mv, err := classify(t, s.node, s.src)
		if err != nil {
			return -1, err
		}

		id := dt.Root()
		if s.dst >= 0 {
			id = dt.Add(s.dst)
		}
		if first < 0 {
			first = id
		}
		dt.SetName(id, t.Name(s.node))

		l, lok := t.Length(s.node)
		sl, slok := t.Length(s.src)
		switch mv {
		case down:
		case bottom:
			l, lok = addLength(sl, slok, l, lok)
		default:
			l, lok = sl, slok
		}
		if lok {
			dt.SetLength(id, l)
		} else {
			dt.ClearLength(id)
		}

		sup := t.Support(s.node)
		if mv == up || mv == top {
			sup = t.Support(s.src)
		}
		dt.SetSupport(id, sup)

		var next []int
		for _, c := range t.Children(s.node) {
			if c == s.src {
				continue
			}
			next = append(next, c)
		}
		if mv == up && !t.IsRoot(s.node) {
			next = append(next, t.Parent(s.node))
		}
		if mv == top {
			next = append(next, sibling(t, s.node))
		}

		// reverse order,
		// so the first neighbor is copied first
		for i := len(next) - 1; i >= 0; i-- {
			stack = append(stack, step{node: next[i], src: s.node, dst: id})
		}
	}
	return first, nil
}

// WalkCopy returns a copy of a node and its neighbors
// as seen when walking from src into node.
// In the resulting tree,
// node is the root,
// and all its neighbors
// (except src)
// are its descendants.
//
// For an unrooted tree,
// its root is retained as a regular node;
// for a rooted tree,
// its root is removed
// and the basal nodes are connected directly.
// A tree is rooted if its root has exactly two children.
//
// The branch length of the copied node
// is the length of the edge between node and src.
func WalkCopy(t *tree.Tree, node, src int) (*tree.Tree, error) {
	nt := tree.New(t.TreeName())
	if _, err := walk(nt, -1, t, node, src); err != nil {
		return nil, err
	}
	return nt, nil
}

// RootAbove returns a new rooted tree
// with the root placed at the midpoint
// of the branch between a node and its parent.
// The new root will be named with the given name.
//
// If the node is a basal node of a rooted tree,
// the branch is the one formed by both basal nodes.
func RootAbove(t *tree.Tree, node int, name string) (*tree.Tree, error) {
	if t.IsRoot(node) {
		return nil, ErrRootAbove
	}
	if t.Parent(node) < 0 {
		return nil, fmt.Errorf("node %d not in tree", node)
	}
	other := upNeighbor(t, node)
	l, lok := edgeLength(t, node)

	nt := tree.New(t.TreeName())
	root := nt.Root()
	nt.SetName(root, name)

	left, err := walk(nt, root, t, node, other)
	if err != nil {
		return nil, err
	}
	right, err := walk(nt, root, t, other, node)
	if err != nil {
		return nil, err
	}
	if lok {
		nt.SetLength(left, l/2)
		nt.SetLength(right, l/2)
	}
	return nt, nil
}

// UnrootAt returns a new unrooted tree
// with the indicated node as the anchor
// (i.e., the root of an unrooted tree).
func UnrootAt(t *tree.Tree, node int) (*tree.Tree, error) {
	if t.IsRoot(node) && t.IsRooted() {
		return nil, ErrRootedRoot
	}
	if !t.IsRoot(node) && t.Parent(node) < 0 {
		return nil, fmt.Errorf("node %d not in tree", node)
	}

	nt := tree.New(t.TreeName())
	root := nt.Root()
	nt.SetName(root, t.Name(node))

	if !t.IsRoot(node) {
		if _, err := walk(nt, root, t, upNeighbor(t, node), node); err != nil {
			return nil, err
		}
	}
	for _, c := range t.Children(node) {
		if _, err := walk(nt, root, t, c, node); err != nil {
			return nil, err
		}
	}
	return nt, nil
}
