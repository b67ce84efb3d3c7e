// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package metrics_test

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/phytree/metrics"
	"github.com/js-arias/phytree/newick"
	"github.com/js-arias/phytree/tree"
)

func TestSplits(t *testing.T) {
	// Fig. 9a of Puigbo et al. (2009) J. Biol. 8: 59
	tr := mustRead(t, "((((A,B)n9,C)n8,(D,E)n7)n4,((F,G)n6,(H,I)n5)n3,(J,K)n2)n1;")
	got := metrics.Splits(tr)

	want := map[string]metrics.Split{
		"n1": {N: 11, Splits: 9, PreLevel: 1, PostLevels: []int{5, 5, 4, 4, 4, 4, 4, 4, 4, 3, 3}},
		"n4": {N: 5, Splits: 4, PreLevel: 2, PostLevels: []int{4, 4, 3, 3, 3}},
		"n3": {N: 4, Splits: 3, PreLevel: 2, PostLevels: []int{3, 3, 3, 3}},
		"n2": {N: 2, Splits: 1, PreLevel: 2, PostLevels: []int{2, 2}},
		"n8": {N: 3, Splits: 2, PreLevel: 3, PostLevels: []int{3, 3, 2}},
		"n7": {N: 2, Splits: 1, PreLevel: 3, PostLevels: []int{2, 2}},
		"n6": {N: 2, Splits: 1, PreLevel: 3, PostLevels: []int{2, 2}},
		"n5": {N: 2, Splits: 1, PreLevel: 3, PostLevels: []int{2, 2}},
		"J":  {N: 1, Splits: 0, PreLevel: 3, PostLevels: []int{1}},
		"K":  {N: 1, Splits: 0, PreLevel: 3, PostLevels: []int{1}},
		"n9": {N: 2, Splits: 1, PreLevel: 4, PostLevels: []int{2, 2}},
		"C":  {N: 1, Splits: 0, PreLevel: 4, PostLevels: []int{1}},
		"I":  {N: 1, Splits: 0, PreLevel: 4, PostLevels: []int{1}},
		"A":  {N: 1, Splits: 0, PreLevel: 5, PostLevels: []int{1}},
		"B":  {N: 1, Splits: 0, PreLevel: 5, PostLevels: []int{1}},
	}

	if len(got) != tr.Len() {
		t.Errorf("nodes: got %d, want %d", len(got), tr.Len())
	}
	for _, id := range tr.Nodes() {
		w, ok := want[tr.Name(id)]
		if !ok {
			continue
		}
		if !reflect.DeepEqual(got[id], w) {
			t.Errorf("node %q: got %v, want %v", tr.Name(id), got[id], w)
		}
	}
}

func TestLengths(t *testing.T) {
	// Fig. 1a of Parks et al. (2018) Nat. Biotechnol. 36: 996
	tr := mustRead(t, "(((A:1,B:1)n3:1,(C:1,D:2)n4:2)n2:2,E:3)n1;")
	got := metrics.Lengths(tr)

	want := map[string]metrics.Length{
		"n1": {Height: 0, Depths: []float64{4, 4, 5, 6, 3}, RED: 0},
		"n2": {Height: 2, Depths: []float64{2, 2, 3, 4}, RED: 0.4210526},
		"n3": {Height: 3, Depths: []float64{1, 1}, RED: 0.7105263},
		"n4": {Height: 4, Depths: []float64{1, 2}, RED: 0.7518797},
		"A":  {Height: 4, Depths: []float64{0}, RED: 1},
		"B":  {Height: 4, Depths: []float64{0}, RED: 1},
		"C":  {Height: 5, Depths: []float64{0}, RED: 1},
		"D":  {Height: 6, Depths: []float64{0}, RED: 1},
		"E":  {Height: 3, Depths: []float64{0}, RED: 1},
	}
	for _, id := range tr.Nodes() {
		name := tr.Name(id)
		w := want[name]
		g := got[id]
		if g.Height != w.Height {
			t.Errorf("node %q: height: got %.3f, want %.3f", name, g.Height, w.Height)
		}
		if !reflect.DeepEqual(g.Depths, w.Depths) {
			t.Errorf("node %q: depths: got %v, want %v", name, g.Depths, w.Depths)
		}
		if math.Abs(g.RED-w.RED) > 1e-7 {
			t.Errorf("node %q: RED: got %.7f, want %.7f", name, g.RED, w.RED)
		}
	}
}

func TestLengthsUndefined(t *testing.T) {
	tr := mustRead(t, "((a:0,b)c,d:1)e;")
	got := metrics.Lengths(tr)

	for _, id := range tr.Nodes() {
		if _, ok := tr.Length(id); !ok {
			t.Errorf("node %q: length should be defined", tr.Name(id))
		}
	}

	// a zero length node takes the RED of its parent
	c := findNode(t, tr, "c")
	if r := got[c].RED; r != 0 {
		t.Errorf("RED of %q: got %.3f, want %.3f", "c", r, 0.0)
	}
	d := findNode(t, tr, "d")
	if h := got[d].Height; h != 1 {
		t.Errorf("height of %q: got %.3f, want %.3f", "d", h, 1.0)
	}
}

func TestDepthStats(t *testing.T) {
	tests := map[string]struct {
		depths []float64
		want   metrics.Stats
	}{
		"odd": {
			depths: []float64{4, 4, 5, 6, 3},
			want:   metrics.Stats{N: 5, Min: 3, Max: 6, Mean: 4.4, Median: 4, StdDev: math.Sqrt(1.3)},
		},
		"even": {
			depths: []float64{2, 1},
			want:   metrics.Stats{N: 2, Min: 1, Max: 2, Mean: 1.5, Median: 1.5, StdDev: math.Sqrt(0.5)},
		},
		"single": {
			depths: []float64{2},
			want:   metrics.Stats{N: 1, Min: 2, Max: 2, Mean: 2, Median: 2, StdDev: math.NaN()},
		},
		"empty": {
			want: metrics.Stats{Min: math.NaN(), Max: math.NaN(), Mean: math.NaN(), Median: math.NaN(), StdDev: math.NaN()},
		},
	}

	for name, test := range tests {
		in := append([]float64(nil), test.depths...)
		got := metrics.DepthStats(test.depths)
		if got.N != test.want.N {
			t.Errorf("%s: N: got %d, want %d", name, got.N, test.want.N)
		}
		testFloat(t, name+": min", got.Min, test.want.Min)
		testFloat(t, name+": max", got.Max, test.want.Max)
		testFloat(t, name+": mean", got.Mean, test.want.Mean)
		testFloat(t, name+": median", got.Median, test.want.Median)
		testFloat(t, name+": stdev", got.StdDev, test.want.StdDev)

		if !reflect.DeepEqual(test.depths, in) {
			t.Errorf("%s: input modified: got %v, want %v", name, test.depths, in)
		}
	}
}

func TestMinLevels(t *testing.T) {
	tests := map[string]struct {
		tree string
		want map[string]int
	}{
		"unrooted": {
			tree: "(((a,b)n4,(c,d)n5)n2,(((e,f)n8,(g,h)n9)n6,((i,j)n10,(k,l)n11)n7)n3,m)n1;",
			want: map[string]int{
				"n1": 2, "n2": 3, "n3": 3, "n4": 2, "n5": 2, "n6": 3, "n7": 3,
				"n8": 2, "n9": 2, "n10": 2, "n11": 2,
			},
		},
		"rooted": {
			tree: "(((a,b)n3,(c,d)n4)n2,e)n1;",
			want: map[string]int{"n1": 2, "n2": 2, "n3": 2, "n4": 2},
		},
		"single child root": {
			tree: "(((a,b)n3,c)n2)n1;",
			want: map[string]int{"n1": 1, "n2": 2, "n3": 2},
		},
	}

	for name, test := range tests {
		tr := mustRead(t, test.tree)
		got := metrics.MinLevels(tr)
		for _, id := range tr.Nodes() {
			if tr.IsTerm(id) {
				if got[id] != 1 {
					t.Errorf("%s: terminal %q: got %d, want %d", name, tr.Name(id), got[id], 1)
				}
				continue
			}
			w := test.want[tr.Name(id)]
			if got[id] != w {
				t.Errorf("%s: node %q: got %d, want %d", name, tr.Name(id), got[id], w)
			}
		}
	}
}

func TestMinDepths(t *testing.T) {
	tr := mustRead(t, "(((a:0.5,b:0.7)n5:1.1,c:1.7)n2:0.3,((d:0.8,e:0.6)n6:0.9,(f:1.2,g:0.5)n7:0.8)n3:1.3,(h:0.4,i:0.3)n4:0.9)n1;")
	got := metrics.MinDepths(tr)

	want := map[string]float64{
		"n1": 1.2,
		"n2": 1.5,
		"n3": 1.3,
		"n4": 0.3,
		"n5": 0.5,
		"n6": 0.6,
		"n7": 0.5,
	}
	for _, id := range tr.Nodes() {
		w := want[tr.Name(id)]
		if tr.IsTerm(id) {
			w = 0
		}
		testFloat(t, tr.Name(id), got[id], w)
	}

	tr = mustRead(t, "((a:0.5,b:0.7)n2:0.4)n1;")
	got = metrics.MinDepths(tr)
	want = map[string]float64{"n1": 0, "n2": 0.4}
	for _, id := range tr.Nodes() {
		w := want[tr.Name(id)]
		if tr.IsTerm(id) {
			w = 0
		}
		testFloat(t, "single child root: "+tr.Name(id), got[id], w)
	}
}

func testFloat(t testing.TB, name string, got, want float64) {
	t.Helper()

	if math.IsNaN(want) {
		if !math.IsNaN(got) {
			t.Errorf("%s: got %.6f, want NaN", name, got)
		}
		return
	}
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s: got %.6f, want %.6f", name, got, want)
	}
}

func mustRead(t testing.TB, s string) *tree.Tree {
	t.Helper()

	tr, err := newick.Read(strings.NewReader(s))
	if err != nil {
		t.Fatalf("unable to read tree %q: %v", s, err)
	}
	return tr
}

func findNode(t testing.TB, tr *tree.Tree, name string) int {
	t.Helper()

	for _, id := range tr.Nodes() {
		if tr.Name(id) == name {
			return id
		}
	}
	t.Fatalf("node %q not found", name)
	return -1
}
