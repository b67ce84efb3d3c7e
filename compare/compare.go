// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package compare implements comparisons
// between two phylogenetic trees.
package compare

import (
	"maps"
	"math"
	"slices"

	"github.com/js-arias/phytree/tree"
)

// Topology returns true if two trees have the same topology.
//
// Nodes are identified by their names,
// so all nodes of both trees
// (including internal nodes)
// must have unique names,
// for example,
// as assigned by (*tree.Tree).AssignIDs.
// The order of the children
// and the branch lengths are ignored.
func Topology(t1, t2 *tree.Tree) bool {
	return maps.Equal(parents(t1), parents(t2))
}

func parents(t *tree.Tree) map[string]string {
	p := make(map[string]string, t.Len())
	for _, id := range t.Nodes() {
		if t.IsRoot(id) {
			continue
		}
		p[t.Name(id)] = t.Name(t.Parent(id))
	}
	return p
}

// BranchLengths returns true if two trees
// have the same topology
// and each pair of corresponding nodes
// has the same branch length.
//
// Terminals are matched by name,
// internal nodes are matched by their position in the tree,
// so the order of the children is ignored.
// Lengths are compared with a relative tolerance of 1e-9.
// The length of the root is ignored.
func BranchLengths(t1, t2 *tree.Tree) bool {
	if t1.Len() != t2.Len() {
		return false
	}

	// anchors are the internal nodes already reached
	// from a descendant,
	// and they are identified by the post-order
	// index of the first descendant that reaches them
	anchor1 := make(map[int]int)
	anchor2 := make(map[int]int)
	var stack []int

	count := 0
	for _, n := range t1.PostOrder() {
		if t1.IsRoot(n) {
			continue
		}

		var cur int
		if t1.IsTerm(n) {
			id, ok := t2.TaxonNode(t1.Name(n))
			if !ok {
				return false
			}
			cur = id
		} else {
			if len(stack) == 0 {
				return false
			}
			top := stack[len(stack)-1]
			a1, ok1 := anchor1[n]
			a2, ok2 := anchor2[top]
			if !ok1 || !ok2 || a1 != a2 {
				return false
			}
			cur = top
			stack = stack[:len(stack)-1]
		}
		if t2.IsRoot(cur) {
			return false
		}

		if !sameLength(t1, n, t2, cur) {
			return false
		}

		p1, p2 := t1.Parent(n), t2.Parent(cur)
		_, ok1 := anchor1[p1]
		_, ok2 := anchor2[p2]
		if !ok1 && !ok2 {
			anchor1[p1] = count
			anchor2[p2] = count
		} else if ok1 != ok2 {
			return false
		}
		if !slices.Contains(stack, p2) {
			stack = append(stack, p2)
		}
		count++
	}
	return true
}

func sameLength(t1 *tree.Tree, n1 int, t2 *tree.Tree, n2 int) bool {
	l1, ok1 := t1.Length(n1)
	l2, ok2 := t2.Length(n2)
	if !ok1 && !ok2 {
		return true
	}
	if ok1 != ok2 {
		return false
	}
	return isClose(l1, l2)
}

const relTolerance = 1e-9

func isClose(a, b float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	return math.Abs(a-b) <= relTolerance*math.Max(math.Abs(a), math.Abs(b))
}

// Exact returns true if both trees are identical,
// including the order of the nodes.
// For each pair of nodes,
// visited in post-order,
// the name,
// the branch length,
// and the support
// must be the same.
func Exact(t1, t2 *tree.Tree) bool {
	if t1.Len() != t2.Len() {
		return false
	}
	po1 := t1.PostOrder()
	po2 := t2.PostOrder()
	for i, n1 := range po1 {
		n2 := po2[i]
		if t1.Name(n1) != t2.Name(n2) {
			return false
		}
		l1, ok1 := t1.Length(n1)
		l2, ok2 := t2.Length(n2)
		if ok1 != ok2 || (ok1 && l1 != l2) {
			return false
		}
		if !t1.Support(n1).Equal(t2.Support(n2)) {
			return false
		}
		if len(t1.Children(n1)) != len(t2.Children(n2)) {
			return false
		}
	}
	return true
}
