// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package reroot

import (
	"errors"

	"github.com/js-arias/phytree/tree"
)

// Errors returned by outgroup rooting.
var (
	ErrNoOutgroup      = errors.New("none of outgroup taxa are present in tree")
	ErrNotSubset       = errors.New("outgroup is not a subset of tree taxa")
	ErrWholeTree       = errors.New("outgroup constitutes the entire tree")
	ErrNotMonophyletic = errors.New("outgroup is not monophyletic in tree")
)

// RootByOutgroup returns a new tree
// rooted at the branch that separates
// the taxa of the outgroup
// from the rest of the taxa in the tree.
//
// Outgroup taxa not found in the tree are ignored,
// unless strict is true.
// If unroot is true,
// the result is an unrooted tree,
// in which the outgroup is a child of the anchor node.
// If the ingroup is a single terminal,
// the anchor is the outgroup node itself,
// with the ingroup terminal as its first child,
// so the outgroup is split across the other children of the anchor.
func RootByOutgroup(t *tree.Tree, outgroup []string, strict, unroot bool) (*tree.Tree, error) {
	og := make(map[string]bool, len(outgroup))
	for _, tx := range outgroup {
		og[tx] = true
	}

	var tips []int
	inTree := make(map[string]bool)
	for _, id := range t.Terms() {
		name := t.Name(id)
		inTree[name] = true
		if og[name] {
			tips = append(tips, id)
		}
	}
	found := 0
	for tx := range og {
		if inTree[tx] {
			found++
		}
	}
	if found == 0 {
		return nil, ErrNoOutgroup
	}
	if strict && found < len(og) {
		return nil, ErrNotSubset
	}
	if found == len(inTree) {
		return nil, ErrWholeTree
	}

	cur := t
	lca, err := outgroupLCA(cur, og)
	if err != nil {
		return nil, err
	}

	// the outgroup is split across basal clades,
	// so the tree is re-rooted at an ingroup taxon
	// before searching the LCA again
	if cur.IsRoot(lca) {
		for _, id := range t.Terms() {
			if og[t.Name(id)] {
				continue
			}
			cur, err = RootAbove(t, id, "")
			if err != nil {
				return nil, err
			}
			break
		}
		lca, err = outgroupLCA(cur, og)
		if err != nil {
			return nil, err
		}
		if cur.IsRoot(lca) {
			return nil, ErrNotMonophyletic
		}
	}
	if len(cur.TipsUnder(lca)) > len(tips) {
		return nil, ErrNotMonophyletic
	}

	if !unroot {
		return RootAbove(cur, lca, "")
	}

	p := cur.Parent(lca)
	if isBasalRooted(cur, lca) {
		// the root is not a real node,
		// so the anchor is the sibling,
		// or the outgroup node itself,
		// if the sibling is a terminal
		if sib := sibling(cur, lca); !cur.IsTerm(sib) {
			return UnrootAt(cur, sib)
		}
		return UnrootAt(cur, lca)
	}
	return UnrootAt(cur, p)
}

func outgroupLCA(t *tree.Tree, og map[string]bool) (int, error) {
	var tips []int
	for _, id := range t.Terms() {
		if og[t.Name(id)] {
			tips = append(tips, id)
		}
	}
	return t.LCA(tips...)
}
