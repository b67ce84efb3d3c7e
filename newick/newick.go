// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package newick implements reading and writing
// of phylogenetic trees
// in the newick (parenthetical) format.
//
// Unquoted labels can not contain blanks
// or any of the characters
//
//	, : ( ) ; [ ]
//
// and an underscore in an unquoted label
// is read as a blank.
// Quoted labels are enclosed in single quotes
// (a single quote inside a quoted label
// is written as two single quotes).
// Comments are enclosed in square brackets
// and are ignored.
package newick

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/js-arias/phytree/tree"
)

// Read reads the first tree
// from a newick file.
func Read(r io.Reader) (*tree.Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	p := &parser{data: string(data)}
	p.skip()
	if p.eof() {
		return nil, fmt.Errorf("while reading tree: %v", io.EOF)
	}
	return p.tree()
}

// ReadAll reads all the trees
// in a newick file.
func ReadAll(r io.Reader) ([]*tree.Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	p := &parser{data: string(data)}
	var ts []*tree.Tree
	for {
		p.skip()
		if p.eof() {
			break
		}
		t, err := p.tree()
		if err != nil {
			return nil, fmt.Errorf("tree %d: %v", len(ts)+1, err)
		}
		ts = append(ts, t)
	}
	if len(ts) == 0 {
		return nil, fmt.Errorf("while reading trees: %v", io.EOF)
	}
	return ts, nil
}

type parser struct {
	data string
	pos  int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.data)
}

// Skip skips blanks and comments.
func (p *parser) skip() {
	for !p.eof() {
		c := p.data[p.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			p.pos++
		case c == '[':
			end := strings.IndexByte(p.data[p.pos:], ']')
			if end < 0 {
				p.pos = len(p.data)
				return
			}
			p.pos += end + 1
		default:
			return
		}
	}
}

func (p *parser) errorf(format string, a ...any) error {
	return fmt.Errorf("at position %d: %s", p.pos, fmt.Sprintf(format, a...))
}

func (p *parser) tree() (*tree.Tree, error) {
	t := tree.New("")
	cur := t.Root()
	for {
		p.skip()
		if p.eof() {
			return nil, p.errorf("expecting ';'")
		}

		switch c := p.data[p.pos]; c {
		case '(':
			p.pos++
			cur = t.Add(cur)
		case ',':
			if t.IsRoot(cur) {
				return nil, p.errorf("unexpected ','")
			}
			p.pos++
			cur = t.Add(t.Parent(cur))
		case ')':
			if t.IsRoot(cur) {
				return nil, p.errorf("unexpected ')'")
			}
			p.pos++
			cur = t.Parent(cur)
		case ':':
			p.pos++
			v, err := p.length()
			if err != nil {
				return nil, err
			}
			t.SetLength(cur, v)
		case ';':
			if !t.IsRoot(cur) {
				return nil, p.errorf("unbalanced parenthesis")
			}
			p.pos++
			return t, nil
		case ']':
			return nil, p.errorf("unexpected ']'")
		default:
			if t.Name(cur) != "" {
				return nil, p.errorf("unexpected label")
			}
			name, err := p.label()
			if err != nil {
				return nil, err
			}
			t.SetName(cur, name)
		}
	}
}

const metaChars = ",:();[] \t\n\r"

func (p *parser) label() (string, error) {
	if p.data[p.pos] != '\'' {
		start := p.pos
		for !p.eof() && !strings.ContainsRune(metaChars, rune(p.data[p.pos])) {
			p.pos++
		}
		return strings.ReplaceAll(p.data[start:p.pos], "_", " "), nil
	}

	p.pos++
	var b strings.Builder
	for {
		if p.eof() {
			return "", p.errorf("unterminated quoted label")
		}
		c := p.data[p.pos]
		p.pos++
		if c != '\'' {
			b.WriteByte(c)
			continue
		}
		if !p.eof() && p.data[p.pos] == '\'' {
			b.WriteByte('\'')
			p.pos++
			continue
		}
		return b.String(), nil
	}
}

func (p *parser) length() (float64, error) {
	p.skip()
	start := p.pos
	for !p.eof() && !strings.ContainsRune(metaChars, rune(p.data[p.pos])) {
		p.pos++
	}
	s := p.data[start:p.pos]
	if s == "" {
		return 0, p.errorf("expecting branch length")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, p.errorf("invalid branch length %q: %v", s, err)
	}
	return v, nil
}
