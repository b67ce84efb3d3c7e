// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnpackRoot is returned when unpacking the root.
var ErrUnpackRoot = errors.New("cannot unpack root")

// Unpack removes an internal node
// and attaches its children to its parent.
// The branch length of the node
// is added to the length of each child
// (unspecified lengths count as zero
// and a zero sum is kept unspecified).
//
// The tree is modified in place.
func (t *Tree) Unpack(id int) error {
	n, ok := t.nodes[id]
	if !ok {
		return fmt.Errorf("node %d not in tree", id)
	}
	if t.IsRoot(id) {
		return ErrUnpackRoot
	}
	if len(n.children) == 0 {
		return fmt.Errorf("node %d: cannot unpack a terminal", id)
	}

	blen := 0.0
	if n.hasLen {
		blen = n.length
	}
	for _, c := range n.children {
		cn := t.nodes[c]
		clen := 0.0
		if cn.hasLen {
			clen = cn.length
		}
		if sum := clen + blen; sum != 0 {
			cn.length = sum
			cn.hasLen = true
		} else {
			cn.length = 0
			cn.hasLen = false
		}
		cn.parent = n.parent
	}

	p := t.nodes[n.parent]
	i := slices.Index(p.children, id)
	p.children = slices.Delete(p.children, i, i+1)
	p.children = append(p.children, n.children...)
	delete(t.nodes, id)
	return nil
}

// UnpackFunc returns a copy of the tree
// in which all internal nodes
// (excluding the root)
// for which fn returns true
// are unpacked.
func (t *Tree) UnpackFunc(fn func(t *Tree, id int) bool) *Tree {
	nt := t.Copy()
	var ls []int
	for _, id := range nt.PostOrder() {
		if nt.IsRoot(id) || nt.IsTerm(id) {
			continue
		}
		if fn(nt, id) {
			ls = append(ls, id)
		}
	}
	for _, id := range ls {
		if err := nt.Unpack(id); err != nil {
			// only internal, non root nodes are in the list
			panic(fmt.Sprintf("tree: unpack node %d: %v", id, err))
		}
	}
	return nt
}

// NumTerms returns the number of terminals
// descendant of each node.
func (t *Tree) numTerms() map[int]int {
	n := make(map[int]int, len(t.nodes))
	for _, id := range t.PostOrder() {
		ch := t.nodes[id].children
		if len(ch) == 0 {
			n[id] = 1
			continue
		}
		for _, c := range ch {
			n[id] += n[c]
		}
	}
	return n
}

// Order returns a copy of the tree
// in which the children of each node
// are sorted by their number of terminals.
// If largeFirst is true,
// the children with more terminals are placed first,
// otherwise,
// the children with fewer terminals are placed first.
// Ties keep their original order.
func (t *Tree) Order(largeFirst bool) *Tree {
	nt := t.Copy()
	n := nt.numTerms()
	for _, nd := range nt.nodes {
		slices.SortStableFunc(nd.children, func(a, b int) int {
			if largeFirst {
				return n[b] - n[a]
			}
			return n[a] - n[b]
		})
	}
	return nt
}

// IsOrdered returns true if the children of each node
// are sorted by their number of terminals
// (see Order).
func (t *Tree) IsOrdered(largeFirst bool) bool {
	n := t.numTerms()
	for _, nd := range t.nodes {
		for i := 1; i < len(nd.children); i++ {
			prev, cur := n[nd.children[i-1]], n[nd.children[i]]
			if largeFirst && prev < cur {
				return false
			}
			if !largeFirst && prev > cur {
				return false
			}
		}
	}
	return true
}

// Clade is the cladistic property
// of a set of taxa in a tree.
type Clade string

// Valid clade types.
const (
	// Uni is a single terminal.
	Uni Clade = "uni"

	// Mono is a monophyletic group.
	Mono Clade = "mono"

	// Poly is a non-monophyletic group
	// (paraphyly is not distinguished from polyphyly).
	Poly Clade = "poly"
)

// ErrTaxaNotFound is returned when a taxon
// is not in the tree.
var ErrTaxaNotFound = errors.New("taxa not found in the tree")

// Cladistic returns the cladistic property
// of a set of taxa.
func (t *Tree) Cladistic(taxa []string) (Clade, error) {
	set := make(map[string]bool, len(taxa))
	for _, tx := range taxa {
		set[tx] = true
	}
	var tips []int
	for _, id := range t.Terms() {
		if set[t.nodes[id].name] {
			tips = append(tips, id)
		}
	}
	if len(tips) < len(set) || len(set) == 0 {
		return "", ErrTaxaNotFound
	}
	if len(set) == 1 {
		return Uni, nil
	}
	lca, err := t.LCA(tips...)
	if err != nil {
		return "", err
	}
	if len(t.TipsUnder(lca)) == len(set) {
		return Mono, nil
	}
	return Poly, nil
}

// Shear returns a copy of the tree
// that only contains the indicated taxa.
// Internal nodes left with a single child are removed,
// and their branch length is added to the child.
func (t *Tree) Shear(taxa []string) (*Tree, error) {
	set := make(map[string]bool, len(taxa))
	for _, tx := range taxa {
		set[tx] = true
	}
	found := false
	for _, id := range t.Terms() {
		if set[t.nodes[id].name] {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrTaxaNotFound
	}

	nt := t.Copy()
	for _, id := range nt.PostOrder() {
		n, ok := nt.nodes[id]
		if !ok || nt.IsRoot(id) {
			continue
		}
		if len(n.children) == 0 && (n.name == "" || !set[n.name]) {
			nt.detach(id)
		}
	}
	nt.prune()
	return nt, nil
}

// Detach removes a node from its parent
// and deletes it.
// Internal nodes left without children
// are removed too.
func (t *Tree) detach(id int) {
	for !t.IsRoot(id) {
		n := t.nodes[id]
		p := t.nodes[n.parent]
		i := slices.Index(p.children, id)
		p.children = slices.Delete(p.children, i, i+1)
		delete(t.nodes, id)
		if len(p.children) > 0 {
			return
		}
		id = p.id
	}
}

// Prune removes the nodes with a single child.
func (t *Tree) prune() {
	for _, id := range t.PostOrder() {
		n := t.nodes[id]
		if len(n.children) != 1 {
			continue
		}
		c := t.nodes[n.children[0]]
		if t.IsRoot(id) {
			c.parent = -1
			c.length = 0
			c.hasLen = false
			c.support = Support{}
			t.root = c.id
			delete(t.nodes, id)
			continue
		}
		switch {
		case n.hasLen && c.hasLen:
			c.length += n.length
		case n.hasLen:
			c.length = n.length
			c.hasLen = true
		}
		c.parent = n.parent
		p := t.nodes[n.parent]
		i := slices.Index(p.children, id)
		p.children[i] = c.id
		delete(t.nodes, id)
	}
}

// ErrNoOverlap is returned when two trees
// do not share any taxa.
var ErrNoOverlap = errors.New("trees have no overlapping taxa")

// Intersect returns copies of two trees
// that only contain their shared taxa.
func Intersect(t1, t2 *Tree) (*Tree, *Tree, error) {
	for _, t := range []*Tree{t1, t2} {
		dup, err := t.HasDuplicates()
		if err != nil {
			return nil, nil, fmt.Errorf("tree %q: %w", t.TreeName(), err)
		}
		if dup {
			return nil, nil, fmt.Errorf("tree %q: duplicated taxa", t.TreeName())
		}
	}

	in2 := make(map[string]bool)
	for _, tx := range t2.Taxa() {
		in2[tx] = true
	}
	var shared []string
	for _, tx := range t1.Taxa() {
		if in2[tx] {
			shared = append(shared, tx)
		}
	}
	if len(shared) == 0 {
		return nil, nil, ErrNoOverlap
	}

	s1, err := t1.Shear(shared)
	if err != nil {
		return nil, nil, err
	}
	s2, err := t2.Shear(shared)
	if err != nil {
		return nil, nil, err
	}
	return s1, s2, nil
}

// AssignIDs names the internal nodes of the tree
// with incremental IDs
// in level-order,
// starting from the root
// (e.g., N1, N2, N3, ...).
// If a node already has a name,
// the ID is appended after a colon.
//
// The tree is modified in place.
func (t *Tree) AssignIDs(prefix string) {
	i := 1
	for _, id := range t.LevelOrder() {
		n := t.nodes[id]
		if len(n.children) == 0 {
			continue
		}
		nid := fmt.Sprintf("%s%d", prefix, i)
		if n.name != "" {
			nid = n.name + ":" + nid
		}
		n.name = nid
		i++
	}
}
