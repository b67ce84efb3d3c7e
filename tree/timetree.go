// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import "github.com/js-arias/timetree"

// MillionYears is the unit of the branch lengths
// of trees converted from time trees.
const MillionYears = 1_000_000

// FromTimeTree creates a new tree
// from a time calibrated tree.
// Branch lengths are the age differences
// between a node and its parent,
// in million years.
func FromTimeTree(tt *timetree.Tree) *Tree {
	t := New(tt.Name())

	type pair struct {
		src, dst int
	}
	stack := []pair{{src: tt.Root(), dst: t.Root()}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		t.SetName(p.dst, tt.Taxon(p.src))
		if tt.IsTerm(p.src) {
			continue
		}

		age := tt.Age(p.src)
		children := tt.Children(p.src)
		ids := make([]int, len(children))
		for i, c := range children {
			ids[i] = t.Add(p.dst)
			t.SetLength(ids[i], float64(age-tt.Age(c))/MillionYears)
		}
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, pair{src: children[i], dst: ids[i]})
		}
	}
	return t
}
