// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import gotree "github.com/evolbioinfo/gotree/tree"

// FromGotree creates a new tree
// from a tree of the gotree library.
//
// Branch supports of gotree
// (numeric labels of internal nodes in newick files)
// are stored as the support of the node.
func FromGotree(gt *gotree.Tree) *Tree {
	t := New("")

	type pair struct {
		src, from *gotree.Node
		dst       int
	}
	stack := []pair{{src: gt.Root(), dst: t.Root()}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		t.SetName(p.dst, p.src.Name())

		// edges are in the same order
		// as the neighbors
		edges := p.src.Edges()
		var next []pair
		for i, n := range p.src.Neigh() {
			if n == p.from {
				continue
			}
			id := t.Add(p.dst)
			if l := edges[i].Length(); l != gotree.NIL_LENGTH {
				t.SetLength(id, l)
			}
			if s := edges[i].Support(); s != gotree.NIL_SUPPORT {
				t.SetSupport(id, NewSupport(s))
			}
			next = append(next, pair{src: n, from: p.src, dst: id})
		}
		for i := len(next) - 1; i >= 0; i-- {
			stack = append(stack, next[i])
		}
	}
	return t
}
