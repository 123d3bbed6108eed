package jdom

// Indentation used by the pretty renderer.
const prettyIndent = "  "

// AppendPretty appends a human-readable rendering of the bound subtree
// to a byte slice: one element per line, two-space indentation and no
// separator after the last element of a container.
//
// Like AppendJSON it is a pure function of the tree: it never mutates
// the document and renders identically on repeated calls.
func (v View) AppendPretty(dst []byte) ([]byte, error) {
	val := v.value()
	if val == nil {
		return dst, v.errOr()
	}
	return v.doc.appendPretty(dst, val, 0), nil
}

// Pretty returns the human-readable rendering of the bound subtree.
// It returns an empty string for invalid Views.
func (v View) Pretty() string {
	b, err := v.AppendPretty(nil)
	if err != nil {
		return ""
	}
	return string(b)
}

func appendIndent(dst []byte, depth int) []byte {
	for ; depth > 0; depth-- {
		dst = append(dst, prettyIndent...)
	}
	return dst
}

func (d *Document) appendPretty(dst []byte, v *value, depth int) []byte {
	switch v.kind {
	case KindList:
		if len(v.children) == 0 {
			return append(dst, '[', ']')
		}
		dst = append(dst, '[', '\n')
		for i := range v.children {
			if i > 0 {
				dst = append(dst, ',', '\n')
			}
			dst = appendIndent(dst, depth+1)
			dst = d.appendPretty(dst, &d.values[v.children[i].id], depth+1)
		}
		dst = append(dst, '\n')
		dst = appendIndent(dst, depth)
		return append(dst, ']')
	case KindObject:
		if len(v.children) == 0 {
			return append(dst, '{', '}')
		}
		dst = append(dst, '{', '\n')
		for i := range v.children {
			if i > 0 {
				dst = append(dst, ',', '\n')
			}
			dst = appendIndent(dst, depth+1)
			dst = append(dst, '"')
			dst = append(dst, v.children[i].key...)
			dst = append(dst, '"', ':', ' ')
			dst = d.appendPretty(dst, &d.values[v.children[i].id], depth+1)
		}
		dst = append(dst, '\n')
		dst = appendIndent(dst, depth)
		return append(dst, '}')
	default:
		// leaf kinds render the same in both modes
		return d.appendJSON(dst, v)
	}
}
