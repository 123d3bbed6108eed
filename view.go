package jdom

import "strconv"

// View is a handle bound to one value slot inside a live Document.
// It is a versioned reference to avoid document manipulation after
// reset. A View never rebinds: navigation returns a new View over the
// nested slot instead.
//
// Failed navigation returns an error carrying View so that chained
// calls compose; the error surfaces from Err or from the terminal
// typed read or write.
type View struct {
	id  uint
	rev uint
	doc *Document
	err error
}

func errView(err error) View {
	return View{err: err}
}

// Err returns the navigation error carried by a View, if any.
func (v View) Err() error {
	return v.err
}

func (v View) value() *value {
	if v.err != nil {
		return nil
	}
	return v.doc.get(v.id, v.rev)
}

// errOr reports why a View has no value.
func (v View) errOr() error {
	if v.err != nil {
		return v.err
	}
	return ErrInvalidView
}

func (v View) fail() View {
	if v.err != nil {
		return v
	}
	return errView(ErrInvalidView)
}

// Kind returns the kind of the bound value.
func (v View) Kind() Kind {
	if val := v.value(); val != nil {
		return val.kind
	}
	return KindInvalid
}

// Document returns the View's document if the View is still valid.
func (v View) Document() *Document {
	if d := v.doc; d != nil && d.rev == v.rev {
		return d
	}
	return nil
}

// Key navigates to the child under key of an Object value.
// If the key is absent a Null child is inserted and returned: reading
// a missing key vivifies it. A Null value becomes an empty Object
// first, so chained navigation vivifies intermediate Objects. Calling
// Key on any other non-Object value fails with a KindError.
func (v View) Key(key string) View {
	val := v.value()
	if val == nil {
		return v.fail()
	}
	if val.kind == KindNull {
		val.reset(KindObject)
	}
	if val.kind != KindObject {
		return errView(errNotObject(val.kind))
	}
	if id, ok := val.get(key); ok {
		return v.doc.view(id)
	}
	id := v.doc.add(value{kind: KindNull})
	// add may grow the arena invalidating val
	v.doc.values[v.id].put(key, id)
	return v.doc.view(id)
}

// At navigates to the child at index i of a List value.
// Lists are never auto extended; an out of range index fails with
// ErrIndex. Calling At on a non-List value fails with a KindError.
func (v View) At(i int) View {
	val := v.value()
	if val == nil {
		return v.fail()
	}
	if val.kind != KindList {
		return errView(errNotList(val.kind))
	}
	if 0 <= i && i < len(val.children) {
		return v.doc.view(val.children[i].id)
	}
	return errView(ErrIndex)
}

// Lookup navigates a path of object keys and list indices without
// vivifying missing keys. A missing key fails with a KeyError.
func (v View) Lookup(path ...string) View {
	for _, key := range path {
		val := v.value()
		if val == nil {
			return v.fail()
		}
		switch val.kind {
		case KindObject:
			id, ok := val.get(key)
			if !ok {
				return errView(&KeyError{Key: key})
			}
			v = v.doc.view(id)
		case KindList:
			i, err := strconv.Atoi(key)
			if err != nil || i < 0 || i >= len(val.children) {
				return errView(ErrIndex)
			}
			v = v.doc.view(val.children[i].id)
		default:
			return errView(&KindError{Kind: val.kind, Want: KindContainer})
		}
	}
	return v
}

// Len returns the number of children of a container value, or -1 for
// leaves and invalid Views.
func (v View) Len() int {
	if val := v.value(); val != nil && val.kind&KindContainer != 0 {
		return len(val.children)
	}
	return -1
}

// Keys returns the keys of an Object value in their stored order,
// which is sorted by key.
func (v View) Keys() []string {
	val := v.value()
	if val == nil || val.kind != KindObject {
		return nil
	}
	keys := make([]string, len(val.children))
	for i := range val.children {
		keys[i] = val.children[i].key
	}
	return keys
}

// Bool reads the bound value as a boolean.
func (v View) Bool() (bool, error) {
	val := v.value()
	if val == nil {
		return false, v.errOr()
	}
	if val.kind != KindBool {
		return false, errNotLeaf(val.kind, KindBool)
	}
	return val.b, nil
}

// Int reads the bound value as an integer.
// A Float is never read as an Int.
func (v View) Int() (int64, error) {
	val := v.value()
	if val == nil {
		return 0, v.errOr()
	}
	if val.kind != KindInt {
		return 0, errNotLeaf(val.kind, KindInt)
	}
	return val.i, nil
}

// Float reads the bound value as a float.
// An Int is never read as a Float.
func (v View) Float() (float64, error) {
	val := v.value()
	if val == nil {
		return 0, v.errOr()
	}
	if val.kind != KindFloat {
		return 0, errNotLeaf(val.kind, KindFloat)
	}
	return val.f, nil
}

// Str reads the bound value as a string.
func (v View) Str() (string, error) {
	val := v.value()
	if val == nil {
		return "", v.errOr()
	}
	if val.kind != KindString {
		return "", errNotLeaf(val.kind, KindString)
	}
	return val.s, nil
}

// IsNull reports whether the bound value is null.
func (v View) IsNull() bool {
	val := v.value()
	return val != nil && val.kind == KindNull
}

// setLeaf checks the write rule shared by all typed setters:
// a write must match the existing kind, except that a Null value
// adopts the kind of the first write.
func (v View) setLeaf(k Kind) (*value, error) {
	val := v.value()
	if val == nil {
		return nil, v.errOr()
	}
	if val.kind != k && val.kind != KindNull {
		return nil, errNotLeaf(val.kind, k)
	}
	val.reset(k)
	return val, nil
}

// SetBool overwrites the bound value with a boolean in place.
func (v View) SetBool(b bool) error {
	val, err := v.setLeaf(KindBool)
	if err != nil {
		return err
	}
	val.b = b
	return nil
}

// SetInt overwrites the bound value with an integer in place.
func (v View) SetInt(i int64) error {
	val, err := v.setLeaf(KindInt)
	if err != nil {
		return err
	}
	val.i = i
	return nil
}

// SetFloat overwrites the bound value with a float in place.
func (v View) SetFloat(f float64) error {
	val, err := v.setLeaf(KindFloat)
	if err != nil {
		return err
	}
	val.f = f
	return nil
}

// SetStr overwrites the bound value with a string in place.
func (v View) SetStr(s string) error {
	val, err := v.setLeaf(KindString)
	if err != nil {
		return err
	}
	val.s = s
	return nil
}

// SetNull overwrites the bound value with null, releasing any children.
func (v View) SetNull() error {
	val := v.value()
	if val == nil {
		return v.errOr()
	}
	val.reset(KindNull)
	return nil
}

// Set assigns a subtree under key of an Object value and returns a
// View of the assigned child. An existing member is overwritten in
// place, a new member is inserted in key order. The object becomes the
// element's sole owner: a previous parent loses the element, an
// ancestor element is deep copied, and so are elements from other
// documents.
func (v View) Set(key string, elem View) View {
	val := v.value()
	if val == nil {
		return v.fail()
	}
	if val.kind != KindObject {
		return errView(errNotObject(val.kind))
	}
	id, ok := v.doc.adopt(v.id, elem)
	if !ok {
		return errView(ErrInvalidView)
	}
	// adopt may grow the arena invalidating val
	v.doc.values[v.id].put(key, id)
	return v.doc.view(id)
}

// Append appends an element to a List value and returns a View of the
// appended child. The list becomes the element's sole owner: a
// previous parent loses the element, an ancestor element is deep
// copied, and so are elements from other documents.
func (v View) Append(elem View) View {
	val := v.value()
	if val == nil {
		return v.fail()
	}
	if val.kind != KindList {
		return errView(errNotList(val.kind))
	}
	id, ok := v.doc.adopt(v.id, elem)
	if !ok {
		return errView(ErrInvalidView)
	}
	// adopt may grow the arena invalidating val
	val = &v.doc.values[v.id]
	val.children = append(val.children, child{id: id})
	return v.doc.view(id)
}

// Interface converts the bound subtree to a generic Go value:
// nil, bool, int64, float64, string, []any or map[string]any.
func (v View) Interface() (any, error) {
	val := v.value()
	if val == nil {
		return nil, v.errOr()
	}
	switch val.kind {
	case KindNull:
		return nil, nil
	case KindBool:
		return val.b, nil
	case KindInt:
		return val.i, nil
	case KindFloat:
		return val.f, nil
	case KindString:
		return val.s, nil
	case KindList:
		elems := make([]any, 0, len(val.children))
		for _, c := range val.children {
			el, err := v.doc.view(c.id).Interface()
			if err != nil {
				return nil, err
			}
			elems = append(elems, el)
		}
		return elems, nil
	case KindObject:
		members := make(map[string]any, len(val.children))
		for _, c := range val.children {
			el, err := v.doc.view(c.id).Interface()
			if err != nil {
				return nil, err
			}
			members[c.key] = el
		}
		return members, nil
	}
	return nil, ErrInvalidView
}
