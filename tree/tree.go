// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tree implements phylogenetic trees
// with a mutable topology.
//
// A tree is a collection of nodes
// identified by an integer ID.
// The root is the only node without a parent.
// Rootedness is a property of the topology:
// if the root has exactly two children,
// the tree is rooted,
// otherwise
// (i.e., the root has one, or three or more children)
// the tree is unrooted
// and the root is just an anchor node.
//
// Node attributes are the name
// (a taxon name for terminals,
// or a label for internal nodes),
// the branch length to the parent
// (that can be unspecified),
// and the support of the branch.
package tree

import (
	"errors"
	"fmt"
	"slices"
)

// A Tree is a phylogenetic tree.
type Tree struct {
	name  string
	root  int
	next  int
	nodes map[int]*node
}

type node struct {
	id       int
	parent   int
	children []int

	name    string
	length  float64
	hasLen  bool
	support Support
}

// New creates a new tree
// with a single root node.
func New(name string) *Tree {
	t := &Tree{
		name:  name,
		nodes: make(map[int]*node),
	}
	t.root = t.newNode(-1)
	return t
}

func (t *Tree) newNode(parent int) int {
	n := &node{
		id:     t.next,
		parent: parent,
	}
	t.next++
	t.nodes[n.id] = n
	return n.id
}

// Add adds a new node as the last child
// of the indicated parent,
// and returns the ID of the new node.
//
// It panics if the parent is not in the tree.
func (t *Tree) Add(parent int) int {
	p, ok := t.nodes[parent]
	if !ok {
		panic(fmt.Sprintf("tree: adding a child to an unknown node %d", parent))
	}
	id := t.newNode(parent)
	p.children = append(p.children, id)
	return id
}

// TreeName returns the name of the tree.
func (t *Tree) TreeName() string {
	return t.name
}

// SetTreeName sets the name of the tree.
func (t *Tree) SetTreeName(name string) {
	t.name = name
}

// Root returns the ID of the root node.
func (t *Tree) Root() int {
	return t.root
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Parent returns the ID of the parent of a node.
// It returns -1 for the root,
// or a node not in the tree.
func (t *Tree) Parent(id int) int {
	n, ok := t.nodes[id]
	if !ok {
		return -1
	}
	return n.parent
}

// Children returns the IDs of the children of a node,
// in their current order.
func (t *Tree) Children(id int) []int {
	n, ok := t.nodes[id]
	if !ok {
		return nil
	}
	return slices.Clone(n.children)
}

// SetChildren changes the order of the children of a node.
// The new list must be a permutation
// of the current children.
func (t *Tree) SetChildren(id int, children []int) error {
	n, ok := t.nodes[id]
	if !ok {
		return fmt.Errorf("node %d not in tree", id)
	}
	if len(children) != len(n.children) {
		return fmt.Errorf("node %d: got %d children, want %d", id, len(children), len(n.children))
	}
	seen := make(map[int]bool, len(children))
	for _, c := range children {
		if !slices.Contains(n.children, c) {
			return fmt.Errorf("node %d: node %d is not a child", id, c)
		}
		if seen[c] {
			return fmt.Errorf("node %d: repeated child %d", id, c)
		}
		seen[c] = true
	}
	n.children = slices.Clone(children)
	return nil
}

// IsRoot returns true if the node is the root of the tree.
func (t *Tree) IsRoot(id int) bool {
	return id == t.root
}

// IsTerm returns true if the node is a terminal
// (i.e., a node without children).
func (t *Tree) IsTerm(id int) bool {
	n, ok := t.nodes[id]
	if !ok {
		return false
	}
	return len(n.children) == 0
}

// IsRooted returns true if the root of the tree
// has exactly two children.
func (t *Tree) IsRooted() bool {
	return len(t.nodes[t.root].children) == 2
}

// Name returns the name of a node.
func (t *Tree) Name(id int) string {
	n, ok := t.nodes[id]
	if !ok {
		return ""
	}
	return n.name
}

// SetName sets the name of a node.
func (t *Tree) SetName(id int, name string) {
	n, ok := t.nodes[id]
	if !ok {
		return
	}
	n.name = name
}

// Length returns the branch length of a node.
// If the length is unspecified,
// it returns false.
func (t *Tree) Length(id int) (float64, bool) {
	n, ok := t.nodes[id]
	if !ok {
		return 0, false
	}
	return n.length, n.hasLen
}

// SetLength sets the branch length of a node.
func (t *Tree) SetLength(id int, length float64) {
	n, ok := t.nodes[id]
	if !ok {
		return
	}
	n.length = length
	n.hasLen = true
}

// ClearLength sets the branch length of a node
// as unspecified.
func (t *Tree) ClearLength(id int) {
	n, ok := t.nodes[id]
	if !ok {
		return
	}
	n.length = 0
	n.hasLen = false
}

// Support returns the support value of a node.
func (t *Tree) Support(id int) Support {
	n, ok := t.nodes[id]
	if !ok {
		return Support{}
	}
	return n.support
}

// SetSupport sets the support value of a node.
func (t *Tree) SetSupport(id int, s Support) {
	n, ok := t.nodes[id]
	if !ok {
		return
	}
	n.support = s
}

// Nodes returns the IDs of the nodes of the tree
// in pre-order.
func (t *Tree) Nodes() []int {
	ids := make([]int, 0, len(t.nodes))
	stack := []int{t.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		ids = append(ids, id)

		ch := t.nodes[id].children
		for i := len(ch) - 1; i >= 0; i-- {
			stack = append(stack, ch[i])
		}
	}
	return ids
}

// PostOrder returns the IDs of the nodes of the tree
// in post-order
// (i.e., children before their parents).
func (t *Tree) PostOrder() []int {
	ids := make([]int, 0, len(t.nodes))
	type visit struct {
		id   int
		done bool
	}
	stack := []visit{{id: t.root}}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if v.done {
			ids = append(ids, v.id)
			continue
		}
		stack = append(stack, visit{id: v.id, done: true})
		ch := t.nodes[v.id].children
		for i := len(ch) - 1; i >= 0; i-- {
			stack = append(stack, visit{id: ch[i]})
		}
	}
	return ids
}

// LevelOrder returns the IDs of the nodes of the tree
// in level-order
// (i.e., breadth first).
func (t *Tree) LevelOrder() []int {
	ids := make([]int, 0, len(t.nodes))
	ids = append(ids, t.root)
	for i := 0; i < len(ids); i++ {
		ids = append(ids, t.nodes[ids[i]].children...)
	}
	return ids
}

// Terms returns the IDs of the terminals of the tree
// in pre-order.
func (t *Tree) Terms() []int {
	var terms []int
	for _, id := range t.Nodes() {
		if t.IsTerm(id) {
			terms = append(terms, id)
		}
	}
	return terms
}

// Taxa returns a sorted list of the taxon names
// (i.e., the names of the terminals)
// of the tree.
func (t *Tree) Taxa() []string {
	var taxa []string
	for _, id := range t.Terms() {
		taxa = append(taxa, t.nodes[id].name)
	}
	slices.Sort(taxa)
	return taxa
}

// TaxonNode returns the ID of the terminal
// with the given name.
func (t *Tree) TaxonNode(name string) (int, bool) {
	for _, id := range t.Terms() {
		if t.nodes[id].name == name {
			return id, true
		}
	}
	return -1, false
}

// TipsUnder returns the names of the terminals
// descendant of a node,
// in pre-order.
// For a terminal it returns its own name.
func (t *Tree) TipsUnder(id int) []string {
	if _, ok := t.nodes[id]; !ok {
		return nil
	}
	var names []string
	stack := []int{id}
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.nodes[x]
		if len(n.children) == 0 {
			names = append(names, n.name)
			continue
		}
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i])
		}
	}
	return names
}

// Ancestors returns the IDs of the ancestors of a node,
// from its parent to the root.
func (t *Tree) Ancestors(id int) []int {
	var anc []int
	for p := t.Parent(id); p >= 0; p = t.Parent(p) {
		anc = append(anc, p)
	}
	return anc
}

// Siblings returns the IDs of the other children
// of the parent of a node.
func (t *Tree) Siblings(id int) []int {
	p := t.Parent(id)
	if p < 0 {
		return nil
	}
	var sibs []int
	for _, c := range t.nodes[p].children {
		if c == id {
			continue
		}
		sibs = append(sibs, c)
	}
	return sibs
}

// LCA returns the lowest common ancestor
// of a set of nodes.
func (t *Tree) LCA(ids ...int) (int, error) {
	if len(ids) == 0 {
		return -1, errors.New("empty node list")
	}
	for _, id := range ids {
		if _, ok := t.nodes[id]; !ok {
			return -1, fmt.Errorf("node %d not in tree", id)
		}
	}

	path := append([]int{ids[0]}, t.Ancestors(ids[0])...)
	pos := make(map[int]int, len(path))
	for i, id := range path {
		pos[id] = i
	}

	best := 0
	for _, id := range ids[1:] {
		for x := id; x >= 0; x = t.Parent(x) {
			i, ok := pos[x]
			if !ok {
				continue
			}
			if i > best {
				best = i
			}
			break
		}
	}
	return path[best], nil
}

// ErrRootBase is returned when the base
// of the root is requested.
var ErrRootBase = errors.New("root has no base")

// Base returns the basal node
// (i.e., a child of the root)
// that is the ancestor of a node,
// or the node itself if it is a basal node.
func (t *Tree) Base(id int) (int, error) {
	if _, ok := t.nodes[id]; !ok {
		return -1, fmt.Errorf("node %d not in tree", id)
	}
	if t.IsRoot(id) {
		return -1, ErrRootBase
	}
	for !t.IsRoot(t.Parent(id)) {
		id = t.Parent(id)
	}
	return id, nil
}

// ErrEmptyTaxon is returned when a terminal
// has no name.
var ErrEmptyTaxon = errors.New("empty taxon name(s) found")

// HasDuplicates returns true if there are duplicated taxon names
// in the tree.
// It returns an error if a terminal has no name.
func (t *Tree) HasDuplicates() (bool, error) {
	taxa := make(map[string]bool)
	dup := false
	for _, id := range t.Terms() {
		name := t.nodes[id].name
		if name == "" {
			return false, ErrEmptyTaxon
		}
		if taxa[name] {
			dup = true
		}
		taxa[name] = true
	}
	return dup, nil
}

// Copy returns an independent copy of the tree.
// Node IDs are preserved.
func (t *Tree) Copy() *Tree {
	nt := &Tree{
		name:  t.name,
		root:  t.root,
		next:  t.next,
		nodes: make(map[int]*node, len(t.nodes)),
	}
	for id, n := range t.nodes {
		cp := *n
		cp.children = slices.Clone(n.children)
		nt.nodes[id] = &cp
	}
	return nt
}
