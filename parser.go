package jdom

import (
	"strconv"
	"strings"

	"github.com/alxarch/jdom/scan"
)

// parser is a recursive descent reader over a whitespace-stripped
// buffer. A single cursor is shared by all parse methods.
type parser struct {
	doc *Document
	buf string
	pos int
}

// Parse parses JSON text into the document and returns a View of the
// root value.
//
// The input is first stripped of whitespace outside quoted regions
// (see scan.StripSpace for the escaped quote limitation), then read in
// full: trailing bytes after the root value are malformed. On error no
// partial tree is kept in the document.
func (d *Document) Parse(s string) (View, error) {
	p := parser{doc: d, buf: scan.StripSpace(s)}
	mark := len(d.values)
	id, err := p.parseValue()
	if err == nil && p.pos != len(p.buf) {
		err = ErrMalformed
	}
	if err != nil {
		d.values = d.values[:mark]
		return View{}, err
	}
	return d.view(id), nil
}

func (p *parser) parseValue() (uint, error) {
	if p.pos >= len(p.buf) {
		return 0, ErrMalformed
	}
	switch p.buf[p.pos] {
	case '{':
		return p.parseObject()
	case '[':
		return p.parseList()
	default:
		return p.parseScalar()
	}
}

func (p *parser) parseObject() (uint, error) {
	p.pos++ // consume '{'
	id := p.doc.add(value{kind: KindObject})
	for {
		if p.pos >= len(p.buf) {
			return 0, ErrMalformed
		}
		if p.buf[p.pos] == '}' {
			p.pos++
			return id, nil
		}
		if p.buf[p.pos] != '"' {
			return 0, ErrMalformed
		}
		p.pos++
		key, ok := p.readString()
		if !ok {
			return 0, ErrMalformed
		}
		// the byte after the key is taken to be the colon
		if p.pos >= len(p.buf) {
			return 0, ErrMalformed
		}
		p.pos++
		cid, err := p.parseValue()
		if err != nil {
			return 0, err
		}
		p.doc.values[id].put(key, cid)
		if p.pos < len(p.buf) && p.buf[p.pos] != '}' {
			p.pos++ // consume ','
		}
	}
}

func (p *parser) parseList() (uint, error) {
	p.pos++ // consume '['
	id := p.doc.add(value{kind: KindList})
	for {
		if p.pos >= len(p.buf) {
			return 0, ErrMalformed
		}
		if p.buf[p.pos] == ']' {
			p.pos++
			return id, nil
		}
		cid, err := p.parseValue()
		if err != nil {
			return 0, err
		}
		v := &p.doc.values[id]
		v.children = append(v.children, child{id: cid})
		if p.pos < len(p.buf) && p.buf[p.pos] != ']' {
			p.pos++ // consume ','
		}
	}
}

// parseScalar parses true, false, null, a number or a string.
// Signs, exponents and escape sequences are outside the grammar.
func (p *parser) parseScalar() (uint, error) {
	s := p.buf[p.pos:]
	if strings.HasPrefix(s, strTrue) {
		p.pos += len(strTrue)
		return p.doc.add(value{kind: KindBool, b: true}), nil
	}
	if strings.HasPrefix(s, strFalse) {
		p.pos += len(strFalse)
		return p.doc.add(value{kind: KindBool, b: false}), nil
	}
	if strings.HasPrefix(s, strNull) {
		p.pos += len(strNull)
		return p.doc.add(value{kind: KindNull}), nil
	}
	if scan.IsDigit(s[0]) {
		end, isFloat := scan.Number(s)
		tok := s[:end]
		p.pos += end
		if isFloat {
			f, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return 0, ErrMalformed
			}
			return p.doc.add(value{kind: KindFloat, f: f}), nil
		}
		i, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return 0, ErrMalformed
		}
		return p.doc.add(value{kind: KindInt, i: i}), nil
	}
	if s[0] == '"' {
		p.pos++
		str, ok := p.readString()
		if !ok {
			return 0, ErrMalformed
		}
		return p.doc.add(value{kind: KindString, s: str}), nil
	}
	return 0, ErrMalformed
}

// readString reads verbatim bytes up to the next '"' and consumes the
// closing quote. No escape decoding is performed.
func (p *parser) readString() (string, bool) {
	if i := strings.IndexByte(p.buf[p.pos:], '"'); i >= 0 {
		s := p.buf[p.pos : p.pos+i]
		p.pos += i + 1
		return s, true
	}
	return "", false
}
