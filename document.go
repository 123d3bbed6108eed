// Package jdom is a mutable JSON document model.
//
// A Document owns an arena of values and hands out View handles bound
// to single slots in the arena. Views navigate the live tree, read and
// write leaf values in place, and render whole subtrees as compact or
// pretty JSON text.
package jdom

// Document is a JSON value tree.
// All values live in a single arena slice and reference each other by id.
type Document struct {
	values []value
	rev    uint
}

// Reset resets a document to empty, reusing the arena.
// This invalidates any View taken from this document.
func (d *Document) Reset() {
	for i := range d.values {
		d.values[i] = value{}
	}
	d.values = d.values[:0]
	d.rev++
}

// add appends a value to the arena returning its id.
func (d *Document) add(v value) uint {
	id := uint(len(d.values))
	d.values = append(d.values, v)
	return id
}

// get resolves an id against a View's revision.
func (d *Document) get(id, rev uint) *value {
	if d != nil && d.rev == rev && id < uint(len(d.values)) {
		return &d.values[id]
	}
	return nil
}

func (d *Document) view(id uint) View {
	return View{id: id, rev: d.rev, doc: d}
}

// Null adds a null value and returns a View of it.
func (d *Document) Null() View {
	return d.view(d.add(value{kind: KindNull}))
}

// Bool adds a boolean value and returns a View of it.
func (d *Document) Bool(b bool) View {
	return d.view(d.add(value{kind: KindBool, b: b}))
}

// Int adds an integer value and returns a View of it.
func (d *Document) Int(i int64) View {
	return d.view(d.add(value{kind: KindInt, i: i}))
}

// Float adds a float value and returns a View of it.
func (d *Document) Float(f float64) View {
	return d.view(d.add(value{kind: KindFloat, f: f}))
}

// Str adds a string value and returns a View of it.
// The string is stored verbatim, no escaping is applied.
func (d *Document) Str(s string) View {
	return d.view(d.add(value{kind: KindString, s: s}))
}

// Member is a key/value pair for Object construction.
type Member struct {
	Key   string
	Value View
}

// Object adds an object value with the given members and returns a View of it.
// Members are kept sorted by key; a repeated key overwrites the
// previous member. Attached members are owned by the new object alone;
// members from other documents are deep copied. On error the arena is
// restored and nothing is kept.
func (d *Document) Object(members ...Member) View {
	mark := len(d.values)
	id := d.add(value{kind: KindObject})
	for _, m := range members {
		cid, ok := d.adopt(id, m.Value)
		if !ok {
			d.values = d.values[:mark]
			return errView(ErrInvalidView)
		}
		d.values[id].put(m.Key, cid)
	}
	return d.view(id)
}

// List adds a list value with the given elements and returns a View of it.
// Attached elements are owned by the new list alone; elements from
// other documents are deep copied. On error the arena is restored and
// nothing is kept.
func (d *Document) List(elems ...View) View {
	mark := len(d.values)
	id := d.add(value{kind: KindList})
	for _, el := range elems {
		cid, ok := d.adopt(id, el)
		if !ok {
			d.values = d.values[:mark]
			return errView(ErrInvalidView)
		}
		v := &d.values[id]
		v.children = append(v.children, child{id: cid})
	}
	return d.view(id)
}

// adopt resolves a View to an id attachable under parent.
// Views of this document are detached from their previous parent, so
// the new parent becomes the sole owner of the subtree. Attaching a
// value into its own subtree would form a cycle, so it is deep copied
// instead, as are Views of other documents.
func (d *Document) adopt(parent uint, v View) (uint, bool) {
	if v.doc == d && v.err == nil && v.rev == d.rev && v.id < uint(len(d.values)) {
		if d.contains(v.id, parent) {
			return d.copyTo(d, v.id), true
		}
		d.detach(v.id)
		return v.id, true
	}
	if v.value() == nil {
		return 0, false
	}
	return v.doc.copyTo(d, v.id), true
}

// contains reports whether the subtree rooted at id includes target.
func (d *Document) contains(id, target uint) bool {
	if id == target {
		return true
	}
	for _, c := range d.values[id].children {
		if d.contains(c.id, target) {
			return true
		}
	}
	return false
}

// detach removes the parent link to id, if any.
// Values have at most one parent, so the scan stops at the first link.
func (d *Document) detach(id uint) {
	for i := range d.values {
		children := d.values[i].children
		for j := range children {
			if children[j].id == id {
				d.values[i].children = append(children[:j], children[j+1:]...)
				return
			}
		}
	}
}

// copyTo deep copies the subtree rooted at id into dst.
func (d *Document) copyTo(dst *Document, id uint) uint {
	src := d.values[id]
	nid := dst.add(value{kind: src.kind, b: src.b, i: src.i, f: src.f, s: src.s})
	for _, c := range src.children {
		cid := d.copyTo(dst, c.id)
		v := &dst.values[nid]
		v.children = append(v.children, child{key: c.key, id: cid})
	}
	return nid
}
