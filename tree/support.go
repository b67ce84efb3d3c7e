// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"math"
	"strconv"
	"strings"
)

// Support is the support value
// (e.g., a bootstrap frequency)
// of the branch that connects a node to its parent.
//
// The zero value is an undefined support.
type Support struct {
	value float64
	text  string
}

// NewSupport returns a support with the given value.
func NewSupport(v float64) Support {
	return Support{
		value: v,
		text:  strconv.FormatFloat(v, 'f', -1, 64),
	}
}

// IsDefined returns true if the support value is defined.
func (s Support) IsDefined() bool {
	return s.text != ""
}

// Value returns the numeric value of the support.
func (s Support) Value() float64 {
	return s.value
}

// String returns the support as it was read,
// or in its shortest form,
// if it was set from a number.
func (s Support) String() string {
	return s.text
}

// Equal returns true if both supports are undefined,
// or have the same value.
func (s Support) Equal(o Support) bool {
	if s.IsDefined() != o.IsDefined() {
		return false
	}
	if !s.IsDefined() {
		return true
	}
	if math.IsNaN(s.value) && math.IsNaN(o.value) {
		return true
	}
	return s.value == o.value
}

// Mode is the way in which a support value
// is identified in a node label.
type Mode int

// Valid support parsing modes.
const (
	// Strict accepts only plain integer or decimal numbers
	// (with an optional exponent).
	Strict Mode = iota

	// Lenient accepts any value accepted by the float parser
	// (including "inf" and "nan")
	// after removing surrounding blanks.
	Lenient
)

// ParseSupport reads a support value from a string.
func ParseSupport(s string, mode Mode) (Support, bool) {
	if mode == Lenient {
		s = strings.TrimSpace(s)
	} else if !isDecimal(s) {
		return Support{}, false
	}
	if s == "" {
		return Support{}, false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Support{value: float64(i), text: s}, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Support{}, false
	}
	return Support{value: v, text: s}, true
}

// IsDecimal returns true if s is a number
// in plain decimal notation.
func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[i] == '+' || s[i] == '-' {
		i++
	}
	digits := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exp := 0
		for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
			exp++
		}
		if exp == 0 {
			return false
		}
	}
	return i == len(s)
}

// ExtractSupport splits a node label
// into a support value
// and the remaining label.
//
// The label is split at the first colon,
// if the left part is a number,
// it is the support value
// and the right part is the label.
// Examples of labels with a support of 95 are
// "95", "95:2.5", and "95:Drosophila".
// If there is no support value,
// the full label is returned.
func ExtractSupport(label string, mode Mode) (Support, string) {
	if label == "" {
		return Support{}, ""
	}
	left, right, _ := strings.Cut(label, ":")
	s, ok := ParseSupport(left, mode)
	if !ok {
		return Support{}, label
	}
	return s, right
}

// EncodeLabel returns a label
// that combines a support value and a name
// in the form "support:name".
// If one of them is undefined,
// only the other is returned.
func EncodeLabel(s Support, name string) string {
	if !s.IsDefined() {
		return name
	}
	if name == "" {
		return s.String()
	}
	return s.String() + ":" + name
}

// AssignSupports extracts the support values
// from the labels of the internal nodes
// and strips them from the node names.
// The support of the root and terminals
// is always undefined.
//
// The tree is modified in place.
func (t *Tree) AssignSupports(mode Mode) {
	for _, id := range t.Nodes() {
		n := t.nodes[id]
		if t.IsRoot(id) || len(n.children) == 0 {
			n.support = Support{}
			continue
		}
		n.support, n.name = ExtractSupport(n.name, mode)
	}
}

// SupportToLabel stores the support values
// of the internal nodes
// back into the node names.
// It is the inverse of AssignSupports.
//
// The tree is modified in place.
func (t *Tree) SupportToLabel() {
	for _, id := range t.Nodes() {
		n := t.nodes[id]
		if len(n.children) == 0 {
			continue
		}
		n.name = EncodeLabel(n.support, n.name)
		n.support = Support{}
	}
}

// LabelSupport returns the numeric support
// stored in the label of a node,
// without modifying the tree.
func (t *Tree) LabelSupport(id int) (float64, bool) {
	s, _ := ExtractSupport(t.Name(id), Lenient)
	if !s.IsDefined() {
		return 0, false
	}
	return s.Value(), true
}
