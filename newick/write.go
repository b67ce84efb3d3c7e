// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package newick

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/js-arias/phytree/tree"
)

// Format defines the output format
// of a newick tree.
type Format struct {
	// If true,
	// blanks in labels are kept,
	// and the label is quoted.
	// Otherwise,
	// blanks are replaced by underscores.
	KeepSpace bool `toml:"keep-space"`

	// Maximum number of significant digits
	// of branch lengths written in plain decimal notation.
	// If zero,
	// the shortest exact representation is used.
	MaxF int `toml:"max-f"`

	// Maximum number of significant digits
	// of branch lengths written in scientific notation.
	// If zero,
	// the shortest exact representation is used.
	MaxE int `toml:"max-e"`
}

// ReadFormat reads a format definition
// from a TOML file.
//
// Here is an example file:
//
//	# newick output format
//	keep-space = true
//	max-f = 6
//	max-e = 3
func ReadFormat(name string) (Format, error) {
	var f Format
	if _, err := toml.DecodeFile(name, &f); err != nil {
		return Format{}, fmt.Errorf("on file %q: %v", name, err)
	}
	if f.MaxF < 0 || f.MaxE < 0 {
		return Format{}, fmt.Errorf("on file %q: invalid number of digits", name)
	}
	return f, nil
}

// Write writes a tree in newick format,
// followed by a new line.
func Write(w io.Writer, t *tree.Tree, f Format) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n", String(t, f))
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing tree: %v", err)
	}
	return nil
}

// String returns a tree in newick format.
func String(t *tree.Tree, f Format) string {
	var b strings.Builder
	writeNode(&b, t, t.Root(), f)
	b.WriteByte(';')
	return b.String()
}

func writeNode(b *strings.Builder, t *tree.Tree, id int, f Format) {
	if children := t.Children(id); len(children) > 0 {
		b.WriteByte('(')
		for i, c := range children {
			if i > 0 {
				b.WriteByte(',')
			}
			writeNode(b, t, c, f)
		}
		b.WriteByte(')')
	}
	b.WriteString(formatLabel(t.Name(id), f.KeepSpace))
	if l, ok := t.Length(id); ok {
		b.WriteByte(':')
		b.WriteString(formatLength(l, f))
	}
}

const escapeChars = ",:_();[]'"

func formatLabel(name string, keepSpace bool) string {
	if name == "" {
		return ""
	}
	quote := strings.ContainsAny(name, escapeChars)
	if keepSpace && strings.ContainsRune(name, ' ') {
		quote = true
	}
	if quote {
		return "'" + strings.ReplaceAll(name, "'", "''") + "'"
	}
	return strings.ReplaceAll(name, " ", "_")
}

func formatLength(v float64, f Format) string {
	s := shortest(v)
	digits := f.MaxF
	if strings.ContainsRune(s, 'e') {
		digits = f.MaxE
	}
	if digits <= 0 {
		return s
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'e', digits-1, 64), 64)
	if err != nil {
		return s
	}
	return shortest(r)
}

// Shortest returns the shortest representation of a float
// that reads back to the same value.
// Values with an exponent in [-4, 16)
// are written in plain notation,
// with at least one decimal digit.
func shortest(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case v == 0:
		return "0.0"
	}

	e := strconv.FormatFloat(v, 'e', -1, 64)
	exp, err := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
	if err == nil && (exp < -4 || exp >= 16) {
		return e
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// Digits returns the maximum number of significant digits
// used by the branch lengths of a tree,
// in plain decimal notation,
// and in scientific notation.
// It can be used to build a Format
// that keeps the precision of an input tree.
func Digits(t *tree.Tree) (maxF, maxE int) {
	for _, id := range t.Nodes() {
		l, ok := t.Length(id)
		if !ok {
			continue
		}
		s := shortest(l)
		d := significant(s)
		if strings.ContainsRune(s, 'e') {
			maxE = max(maxE, d)
			continue
		}
		maxF = max(maxF, d)
	}
	return maxF, maxE
}

func significant(s string) int {
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimLeft(s, "+-")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Trim(s, "0")
	return max(len(s), 1)
}
