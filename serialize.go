package jdom

import (
	"io"
	"strconv"
	"sync"
)

// Appender is a Marshaler interface for buffer append workflows.
type Appender interface {
	AppendJSON([]byte) ([]byte, error)
}

// AppendJSON appends the compact JSON text of the bound subtree to a
// byte slice. Object members are emitted in key-sorted order, strings
// verbatim, with no inter-token whitespace.
func (v View) AppendJSON(dst []byte) ([]byte, error) {
	val := v.value()
	if val == nil {
		return dst, v.errOr()
	}
	return v.doc.appendJSON(dst, val), nil
}

// JSON returns the compact JSON text of the bound subtree.
// It returns an empty string for invalid Views.
func (v View) JSON() string {
	b, err := v.AppendJSON(nil)
	if err != nil {
		return ""
	}
	return string(b)
}

func (d *Document) appendJSON(dst []byte, v *value) []byte {
	switch v.kind {
	case KindNull:
		return append(dst, strNull...)
	case KindBool:
		if v.b {
			return append(dst, strTrue...)
		}
		return append(dst, strFalse...)
	case KindInt:
		return strconv.AppendInt(dst, v.i, 10)
	case KindFloat:
		return strconv.AppendFloat(dst, v.f, 'f', -1, 64)
	case KindString:
		dst = append(dst, '"')
		dst = append(dst, v.s...)
		return append(dst, '"')
	case KindList:
		dst = append(dst, '[')
		for i := range v.children {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = d.appendJSON(dst, &d.values[v.children[i].id])
		}
		return append(dst, ']')
	case KindObject:
		dst = append(dst, '{')
		for i := range v.children {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = append(dst, '"')
			dst = append(dst, v.children[i].key...)
			dst = append(dst, '"', ':')
			dst = d.appendJSON(dst, &d.values[v.children[i].id])
		}
		return append(dst, '}')
	}
	return dst
}

var bufferPool = &sync.Pool{
	New: func() any {
		return make([]byte, 0, 2048)
	},
}

// PrintJSON is a helper to write an Appender to an io.Writer.
func PrintJSON(w io.Writer, a Appender) (n int, err error) {
	b := bufferPool.Get().([]byte)
	if b, err = a.AppendJSON(b[:0]); err == nil {
		n, err = w.Write(b)
	}
	bufferPool.Put(b) //nolint:staticcheck
	return
}

// PrintJSON writes the compact JSON text of the bound subtree to w.
func (v View) PrintJSON(w io.Writer) (int, error) {
	return PrintJSON(w, v)
}
