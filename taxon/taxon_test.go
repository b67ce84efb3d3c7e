// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package taxon_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/phytree/taxon"
)

type taxaList []string

func (tl taxaList) Taxa() []string {
	return tl
}

func TestSet(t *testing.T) {
	s := taxon.New("Drosophila simulans", "", "Drosophila melanogaster")
	s.AddFrom(taxaList{"Anopheles gambiae", "Drosophila simulans"})

	want := []string{
		"Anopheles gambiae",
		"Drosophila melanogaster",
		"Drosophila simulans",
	}
	testSet(t, "add", s, want)

	if !s.Has("Anopheles gambiae") {
		t.Errorf("has: taxon %q not found", "Anopheles gambiae")
	}
	if s.Has("Aedes aegypti") {
		t.Errorf("has: taxon %q should not be in set", "Aedes aegypti")
	}

	var buf bytes.Buffer
	if err := s.Write(&buf); err != nil {
		t.Fatalf("unable to write data: %v", err)
	}

	r, err := taxon.Read(&buf)
	if err != nil {
		t.Logf("input data:\n%s\n", buf.String())
		t.Fatalf("unable to read data: %v", err)
	}
	testSet(t, "read", r, want)
}

func TestRead(t *testing.T) {
	data := `# outgroup
Drosophila  melanogaster	fruit fly
	
Drosophila simulans
# a comment
 Anopheles gambiae 
`
	s, err := taxon.Read(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unable to read data: %v", err)
	}

	want := []string{
		"Anopheles gambiae",
		"Drosophila melanogaster",
		"Drosophila simulans",
	}
	testSet(t, "read", s, want)
}

func testSet(t testing.TB, name string, s taxon.Set, want []string) {
	t.Helper()

	if s.Len() != len(want) {
		t.Errorf("%s length: got %d taxa, want %d", name, s.Len(), len(want))
	}

	got := s.Taxa()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("%s: got %v taxa, want %v taxa", name, got, want)
	}
}
