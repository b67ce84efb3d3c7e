// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package metrics calculates node metrics
// of a phylogenetic tree,
// based on the topology,
// or on the branch lengths.
//
// Metrics are returned as maps
// indexed by the node IDs of the tree.
package metrics

import (
	"math"
	"slices"

	"github.com/js-arias/phytree/tree"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// A Split stores the topological metrics of a node.
type Split struct {
	// Number of terminals descendant of the node
	N int

	// Number of internal nodes in the clade of the node
	// (including the node)
	Splits int

	// Number of nodes from the root to the node
	// (including both)
	PreLevel int

	// Number of nodes from the node to each descendant terminal
	// (including both),
	// in the order of the terminals in the tree
	PostLevels []int
}

// Splits returns the topological metrics
// of each node of a tree.
func Splits(t *tree.Tree) map[int]Split {
	m := make(map[int]Split, t.Len())
	for _, id := range t.PostOrder() {
		if t.IsTerm(id) {
			m[id] = Split{
				N:          1,
				PostLevels: []int{1},
			}
			continue
		}
		s := Split{Splits: 1}
		for _, c := range t.Children(id) {
			cs := m[c]
			s.N += cs.N
			s.Splits += cs.Splits
			for _, l := range cs.PostLevels {
				s.PostLevels = append(s.PostLevels, l+1)
			}
		}
		m[id] = s
	}

	for _, id := range t.Nodes() {
		s := m[id]
		s.PreLevel = 1
		if !t.IsRoot(id) {
			s.PreLevel = m[t.Parent(id)].PreLevel + 1
		}
		m[id] = s
	}
	return m
}

// A Length stores the branch length metrics of a node.
type Length struct {
	// Sum of branch lengths
	// from each descendant terminal to the node,
	// in the order of the terminals in the tree
	Depths []float64

	// Sum of branch lengths
	// from the root to the node
	Height float64

	// Relative evolutionary divergence
	// (Parks et al. 2018, Nat. Biotechnol. 36: 996)
	RED float64
}

// Lengths returns the branch length metrics
// of each node of a tree.
//
// Nodes without a branch length
// are assigned a length of 0,
// so the tree is modified.
func Lengths(t *tree.Tree) map[int]Length {
	for _, id := range t.Nodes() {
		if _, ok := t.Length(id); !ok {
			t.SetLength(id, 0)
		}
	}

	m := make(map[int]Length, t.Len())
	for _, id := range t.PostOrder() {
		if t.IsTerm(id) {
			m[id] = Length{Depths: []float64{0}}
			continue
		}
		var d []float64
		for _, c := range t.Children(id) {
			l, _ := t.Length(c)
			for _, v := range m[c].Depths {
				d = append(d, v+l)
			}
		}
		m[id] = Length{Depths: d}
	}

	for _, id := range t.Nodes() {
		lm := m[id]
		if t.IsRoot(id) {
			lm.Height = 0
			lm.RED = 0
			m[id] = lm
			continue
		}
		p := m[t.Parent(id)]
		l, _ := t.Length(id)
		lm.Height = p.Height + l
		switch {
		case t.IsTerm(id):
			lm.RED = 1
		default:
			lm.RED = p.RED
			if den := l + stat.Mean(lm.Depths, nil); den != 0 {
				lm.RED += l / den * (1 - p.RED)
			}
		}
		m[id] = lm
	}
	return m
}

// Stats are the summary statistics
// of the depths of a node.
type Stats struct {
	N      int
	Min    float64
	Max    float64
	Mean   float64
	Median float64

	// Sample standard deviation,
	// NaN if there are less than two depths
	StdDev float64
}

// DepthStats returns the summary statistics
// of a set of depths.
func DepthStats(depths []float64) Stats {
	if len(depths) == 0 {
		nan := math.NaN()
		return Stats{Min: nan, Max: nan, Mean: nan, Median: nan, StdDev: nan}
	}

	s := Stats{
		N:      len(depths),
		Min:    floats.Min(depths),
		Max:    floats.Max(depths),
		Mean:   stat.Mean(depths, nil),
		StdDev: math.NaN(),
	}
	if len(depths) > 1 {
		s.StdDev = stat.StdDev(depths, nil)
	}

	sorted := slices.Clone(depths)
	slices.Sort(sorted)
	mid := len(sorted) / 2
	s.Median = sorted[mid]
	if len(sorted)%2 == 0 {
		s.Median = (sorted[mid-1] + sorted[mid]) / 2
	}
	return s
}
