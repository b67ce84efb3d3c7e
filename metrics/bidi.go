// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package metrics

import (
	"math"

	"github.com/js-arias/phytree/tree"
)

// MinLevels returns, for each node of a tree,
// the minimum number of nodes
// (including both ends)
// between the node and any terminal,
// either descendant of the node,
// or reached by going up in the tree.
//
// In a rooted tree the root is not counted,
// as it is not a real node,
// so a basal node reaches its sibling directly.
// In an unrooted tree the root is a regular node,
// and a root with a single child
// is a terminal.
func MinLevels(t *tree.Tree) map[int]int {
	down := make(map[int]int, t.Len())
	for _, id := range t.PostOrder() {
		if t.IsTerm(id) {
			down[id] = 1
			continue
		}
		m := math.MaxInt
		for _, c := range t.Children(id) {
			m = min(m, down[c])
		}
		down[id] = m + 1
	}

	res := make(map[int]int, t.Len())
	for _, id := range t.Nodes() {
		if t.IsRoot(id) {
			res[id] = down[id]
			if len(t.Children(id)) == 1 {
				res[id] = 1
			}
			continue
		}
		p := t.Parent(id)
		if !t.IsRoot(p) {
			res[id] = min(down[id], res[p]+1)
			continue
		}

		// basal nodes
		sibs := t.Siblings(id)
		if t.IsRooted() {
			res[id] = min(down[id], 1+down[sibs[0]])
			continue
		}
		up := 2
		if len(sibs) > 0 {
			m := math.MaxInt
			for _, s := range sibs {
				m = min(m, down[s])
			}
			up = m + 2
		}
		res[id] = min(down[id], up)
	}
	return res
}

// MinDepths returns, for each node of a tree,
// the minimum sum of branch lengths
// between the node and any terminal,
// either descendant of the node,
// or reached by going up in the tree.
// Unspecified lengths are taken as 0.
//
// In a rooted tree,
// a basal node reaches its sibling
// through the branch that crosses the root.
// A root with a single child
// is a terminal.
func MinDepths(t *tree.Tree) map[int]float64 {
	length := func(id int) float64 {
		l, _ := t.Length(id)
		return l
	}

	down := make(map[int]float64, t.Len())
	for _, id := range t.PostOrder() {
		if t.IsTerm(id) {
			down[id] = 0
			continue
		}
		m := math.Inf(1)
		for _, c := range t.Children(id) {
			m = math.Min(m, down[c]+length(c))
		}
		down[id] = m
	}

	res := make(map[int]float64, t.Len())
	for _, id := range t.Nodes() {
		if t.IsRoot(id) {
			res[id] = down[id]
			if len(t.Children(id)) == 1 {
				res[id] = 0
			}
			continue
		}
		p := t.Parent(id)
		if !t.IsRoot(p) {
			res[id] = math.Min(down[id], res[p]+length(id))
			continue
		}

		// basal nodes
		sibs := t.Siblings(id)
		if t.IsRooted() {
			s := sibs[0]
			res[id] = math.Min(down[id], length(id)+length(s)+down[s])
			continue
		}
		up := length(id)
		if len(sibs) > 0 {
			m := math.Inf(1)
			for _, s := range sibs {
				m = math.Min(m, length(s)+down[s])
			}
			up += m
		}
		res[id] = math.Min(down[id], up)
	}
	return res
}
