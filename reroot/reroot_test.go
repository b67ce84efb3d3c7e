// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package reroot_test

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/js-arias/phytree/compare"
	"github.com/js-arias/phytree/newick"
	"github.com/js-arias/phytree/reroot"
	"github.com/js-arias/phytree/tree"
)

const rootedTree = "(((a:1.0,b:0.8)c:2.4,(d:0.8,e:0.6)f:1.2)g:0.4,(h:0.5,i:0.7)j:1.8)k;"

func TestWalkCopy(t *testing.T) {
	tests := map[string]struct {
		tree      string
		node, src string
		want      string
	}{
		"derived up": {
			tree: rootedTree,
			node: "c",
			src:  "a",
			want: "(b:0.8,((d:0.8,e:0.6)f:1.2,(h:0.5,i:0.7)j:2.2)g:2.4)c:1.0;",
		},
		"derived down": {
			tree: rootedTree,
			node: "f",
			src:  "g",
			want: "(d:0.8,e:0.6)f:1.2;",
		},
		"basal top": {
			tree: rootedTree,
			node: "g",
			src:  "c",
			want: "((d:0.8,e:0.6)f:1.2,(h:0.5,i:0.7)j:2.2)g:2.4;",
		},
		"basal bottom": {
			tree: rootedTree,
			node: "j",
			src:  "g",
			want: "(h:0.5,i:0.7)j:2.2;",
		},
		"unrooted basal down": {
			tree: "(((a:1.0,b:0.8)c:2.4,d:0.8)e:0.6,f:1.2,g:0.4)h:0.5;",
			node: "e",
			src:  "h",
			want: "((a:1.0,b:0.8)c:2.4,d:0.8)e:0.6;",
		},
		"unrooted basal up": {
			tree: "(((a:1.0,b:0.8)c:2.4,d:0.8)e:0.6,f:1.2,g:0.4)h:0.5;",
			node: "e",
			src:  "c",
			want: "(d:0.8,(f:1.2,g:0.4)h:0.6)e:2.4;",
		},
	}

	for name, test := range tests {
		tr := mustRead(t, test.tree)
		got, err := reroot.WalkCopy(tr, findNode(t, tr, test.node), findNode(t, tr, test.src))
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		testExact(t, name, got, test.want)

		// source is not modified
		testExact(t, name+": source", tr, test.tree)
	}
}

func TestWalkCopyErrors(t *testing.T) {
	tests := map[string]struct {
		node, src string
		err       error
	}{
		"rooted root":    {node: "k", src: "j", err: reroot.ErrRootedRoot},
		"sisters":        {node: "a", src: "b", err: reroot.ErrNotNeighbors},
		"cousins":        {node: "c", src: "f", err: reroot.ErrNotNeighbors},
		"derived basal":  {node: "f", src: "j", err: reroot.ErrNotNeighbors},
		"derived root":   {node: "f", src: "k", err: reroot.ErrNotNeighbors},
		"basal terminal": {node: "g", src: "a", err: reroot.ErrNotNeighbors},
		"basal root":     {node: "g", src: "k", err: reroot.ErrNotNeighbors},
	}

	tr := mustRead(t, rootedTree)
	for name, test := range tests {
		_, err := reroot.WalkCopy(tr, findNode(t, tr, test.node), findNode(t, tr, test.src))
		if !errors.Is(err, test.err) {
			t.Errorf("%s: got error %v, want %v", name, err, test.err)
		}
	}
}

func TestRootAbove(t *testing.T) {
	tests := map[string]struct {
		tree string
		node string
		want string
	}{
		"rooted derived": {
			tree: rootedTree,
			node: "c",
			want: "((a:1.0,b:0.8)c:1.2,((d:0.8,e:0.6)f:1.2,(h:0.5,i:0.7)j:2.2)g:1.2);",
		},
		"rooted terminal": {
			tree: rootedTree,
			node: "i",
			want: "(i:0.35,(h:0.5,((a:1.0,b:0.8)c:2.4,(d:0.8,e:0.6)f:1.2)g:2.2)j:0.35);",
		},
		"unrooted terminal": {
			tree: "(((a:0.6,b:0.5)g:0.3,c:0.8)h:0.4,(d:0.4,e:0.5)i:0.5,f:0.9)j;",
			node: "a",
			want: "(a:0.3,(b:0.5,(c:0.8,((d:0.4,e:0.5)i:0.5,f:0.9)j:0.4)h:0.3)g:0.3);",
		},
		"unrooted derived": {
			tree: "(((a:0.6,b:0.5)g:0.3,c:0.8)h:0.4,(d:0.4,e:0.5)i:0.5,f:0.9)j;",
			node: "g",
			want: "((a:0.6,b:0.5)g:0.15,(c:0.8,((d:0.4,e:0.5)i:0.5,f:0.9)j:0.4)h:0.15);",
		},
		"single basal node": {
			tree: "(((a:0.4,b:0.3)e:0.1,(c:0.4,d:0.1)f:0.2)g:0.6)h:0.2;",
			node: "a",
			want: "(a:0.2,(b:0.3,((c:0.4,d:0.1)f:0.2,h:0.6)g:0.1)e:0.2);",
		},
	}

	for name, test := range tests {
		tr := mustRead(t, test.tree)
		got, err := reroot.RootAbove(tr, findNode(t, tr, test.node), "")
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		testExact(t, name, got, test.want)
	}

	tr := mustRead(t, rootedTree)
	got, err := reroot.RootAbove(tr, findNode(t, tr, "f"), "root")
	if err != nil {
		t.Fatalf("named root: unexpected error: %v", err)
	}
	if name := got.Name(got.Root()); name != "root" {
		t.Errorf("named root: got %q, want %q", name, "root")
	}

	if _, err := reroot.RootAbove(tr, tr.Root(), ""); !errors.Is(err, reroot.ErrRootAbove) {
		t.Errorf("root above root: got error %v, want %v", err, reroot.ErrRootAbove)
	}
}

func TestUnrootAt(t *testing.T) {
	tr := mustRead(t, "(((a,b)c,(d,e)f)g,h)i;")
	got, err := reroot.UnrootAt(tr, findNode(t, tr, "c"))
	if err != nil {
		t.Fatalf("topology: unexpected error: %v", err)
	}
	testExact(t, "topology", got, "(((d,e)f,h)g,a,b)c;")

	tr.SetSupport(findNode(t, tr, "c"), tree.NewSupport(95))
	tr.SetSupport(findNode(t, tr, "f"), tree.NewSupport(99))
	got, err = reroot.UnrootAt(tr, findNode(t, tr, "c"))
	if err != nil {
		t.Fatalf("supports: unexpected error: %v", err)
	}
	want := mustRead(t, "(((d,e)'99:f',h)'95:g',a,b)c;")
	want.AssignSupports(tree.Strict)
	if !compare.Exact(got, want) {
		t.Errorf("supports: got %q, want %q", writeSupports(got), writeSupports(want))
	}

	tr = mustRead(t, "(((a:1.1,b:2.2)c:1.3,(d:1.4,e:0.8)f:0.6)g:0.4,h:3.1)i;")
	got, err = reroot.UnrootAt(tr, findNode(t, tr, "c"))
	if err != nil {
		t.Fatalf("lengths: unexpected error: %v", err)
	}
	testExact(t, "lengths", got, "(((d:1.4,e:0.8)f:0.6,h:3.5)g:1.3,a:1.1,b:2.2)c;")

	if _, err := reroot.UnrootAt(tr, tr.Root()); !errors.Is(err, reroot.ErrRootedRoot) {
		t.Errorf("rooted root: got error %v, want %v", err, reroot.ErrRootedRoot)
	}
}

func TestRootAboveRoundTrip(t *testing.T) {
	trees := []string{
		"((a:1.1,b:2.2)c:1.3,(d:1.4,e:0.8)f:0.6,h:3.1)i;",
		"(a:0.5,b:0.25,(c:1.5,(d:2.0,(e:0.1,f:0.3)g:0.7)h:1.2)j:0.9)k;",
		"(((a,b)c,d)e,f,(g,h)i)j;",
	}
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 20; i++ {
		trees = append(trees, newick.String(randomTree(rng, 4+rng.IntN(12)), newick.Format{}))
	}

	for _, s := range trees {
		tr := mustRead(t, s)
		anchor := tr.Name(tr.Root())
		total := totalLength(tr)
		for _, id := range tr.Nodes() {
			if tr.IsRoot(id) {
				continue
			}
			name := fmt.Sprintf("%s: root above %q", s, tr.Name(id))
			rt, err := reroot.RootAbove(tr, id, "")
			if err != nil {
				t.Errorf("%s: unexpected error: %v", name, err)
				continue
			}
			if !rt.IsRooted() {
				t.Errorf("%s: expecting a rooted tree", name)
			}
			if l := totalLength(rt); math.Abs(l-total) > 1e-9 {
				t.Errorf("%s: total length %.6f, want %.6f", name, l, total)
			}

			back, err := reroot.UnrootAt(rt, findNode(t, rt, anchor))
			if err != nil {
				t.Errorf("%s: unroot: unexpected error: %v", name, err)
				continue
			}
			if !compare.BranchLengths(tr, back) {
				t.Errorf("%s: got %q after unrooting", name, newick.String(back, newick.Format{}))
			}
			if l := totalLength(back); math.Abs(l-total) > 1e-9 {
				t.Errorf("%s: unroot: total length %.6f, want %.6f", name, l, total)
			}
		}
	}
}

// RandomTree returns an unrooted tree
// with n terminals
// and unique names in all nodes.
func randomTree(rng *rand.Rand, n int) *tree.Tree {
	tr := tree.New("")
	tips := make([]string, n)
	for i := range tips {
		tips[i] = fmt.Sprintf("t%d", i)
	}
	rng.Shuffle(len(tips), func(i, j int) {
		tips[i], tips[j] = tips[j], tips[i]
	})

	next := 0
	var build func(id int, tips []string)
	build = func(id int, tips []string) {
		next++
		if len(tips) == 1 {
			tr.SetName(id, tips[0])
			return
		}
		tr.SetName(id, fmt.Sprintf("n%d", next))
		k := 2
		if tr.IsRoot(id) {
			k = 3
		}
		for i := 0; i < k; i++ {
			// the last group takes all remaining terminals
			end := len(tips)
			if i < k-1 {
				end = 1 + rng.IntN(len(tips)-(k-1-i))
			}
			c := tr.Add(id)
			tr.SetLength(c, float64(1+rng.IntN(1000))/100)
			build(c, tips[:end])
			tips = tips[end:]
		}
	}
	build(tr.Root(), tips)
	return tr
}

func totalLength(t *tree.Tree) float64 {
	var sum float64
	for _, id := range t.Nodes() {
		if l, ok := t.Length(id); ok {
			sum += l
		}
	}
	return sum
}

func TestRootByOutgroup(t *testing.T) {
	const in = "((((a,b),(c,d)),(e,f)),g);"
	tests := map[string]struct {
		outgroup []string
		strict   bool
		unroot   bool
		want     string
	}{
		"monophyletic": {
			outgroup: []string{"a", "b"},
			want:     "((a,b),((c,d),((e,f),g)));",
		},
		"monophyletic after rotation": {
			outgroup: []string{"e", "f", "g"},
			want:     "(((e,f),g),((c,d),(b,a)));",
		},
		"single taxon": {
			outgroup: []string{"a"},
			want:     "(a,(b,((c,d),((e,f),g))));",
		},
		"extra taxa": {
			outgroup: []string{"a", "b", "x"},
			want:     "((a,b),((c,d),((e,f),g)));",
		},
		"unrooted": {
			outgroup: []string{"a", "b"},
			unroot:   true,
			want:     "(((e,f),g),(a,b),(c,d));",
		},
	}

	for name, test := range tests {
		tr := mustRead(t, in)
		got, err := reroot.RootByOutgroup(tr, test.outgroup, test.strict, test.unroot)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		testExact(t, name, got, test.want)
	}

	tr := mustRead(t, "(t0,t3,((t2,t1),t4)n1)root;")
	got, err := reroot.RootByOutgroup(tr, []string{"t1", "t2", "t3", "t4"}, false, true)
	if err != nil {
		t.Fatalf("single ingroup taxon: unexpected error: %v", err)
	}
	testExact(t, "single ingroup taxon", got, "(t0,t3,((t2,t1),t4)n1)root;")
}

func TestRootByOutgroupErrors(t *testing.T) {
	tests := map[string]struct {
		outgroup []string
		strict   bool
		err      error
	}{
		"not monophyletic": {outgroup: []string{"a", "c"}, err: reroot.ErrNotMonophyletic},
		"not subset":       {outgroup: []string{"a", "b", "x"}, strict: true, err: reroot.ErrNotSubset},
		"no outgroup":      {outgroup: []string{"x", "y"}, err: reroot.ErrNoOutgroup},
		"whole tree":       {outgroup: strings.Split("abcdefg", ""), err: reroot.ErrWholeTree},
	}

	tr := mustRead(t, "((((a,b),(c,d)),(e,f)),g);")
	for name, test := range tests {
		_, err := reroot.RootByOutgroup(tr, test.outgroup, test.strict, false)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: got error %v, want %v", name, err, test.err)
		}
	}
}

func testExact(t testing.TB, name string, got *tree.Tree, want string) {
	t.Helper()

	w := mustRead(t, want)
	if !compare.Exact(got, w) {
		t.Errorf("%s: got %q, want %q", name, newick.String(got, newick.Format{}), want)
	}
}

func writeSupports(t *tree.Tree) string {
	cp := t.Copy()
	cp.SupportToLabel()
	return newick.String(cp, newick.Format{})
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
