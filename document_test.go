package jdom

import (
	"errors"
	"testing"
)

func TestDocumentLeafConstructors(t *testing.T) {
	d := Document{}
	for _, tc := range []struct {
		view View
		kind Kind
		json string
	}{
		{d.Null(), KindNull, `null`},
		{d.Bool(true), KindBool, `true`},
		{d.Bool(false), KindBool, `false`},
		{d.Int(-42), KindInt, `-42`},
		{d.Float(1.25), KindFloat, `1.25`},
		{d.Str("foo"), KindString, `"foo"`},
	} {
		if tc.view.Kind() != tc.kind {
			t.Errorf("Unexpected kind %s, expecting %s", tc.view.Kind(), tc.kind)
		}
		if actual := tc.view.JSON(); actual != tc.json {
			t.Errorf("Unexpected JSON %q, expecting %q", actual, tc.json)
		}
	}
}

func TestDocumentObjectDuplicateKeys(t *testing.T) {
	d := Document{}
	obj := d.Object(
		Member{Key: "a", Value: d.Int(1)},
		Member{Key: "a", Value: d.Int(2)},
	)
	if actual := obj.JSON(); actual != `{"a":2}` {
		t.Errorf("Unexpected JSON: %q", actual)
	}
}

func TestDocumentList(t *testing.T) {
	d := Document{}
	list := d.List(d.Int(1), d.Str("two"), d.Null())
	if actual := list.JSON(); actual != `[1,"two",null]` {
		t.Errorf("Unexpected JSON: %q", actual)
	}
}

func TestDocumentAdoptCopies(t *testing.T) {
	src := Document{}
	sub, err := src.Parse(`{"k":[1,2]}`)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	dst := Document{}
	obj := dst.Object(Member{Key: "copied", Value: sub})
	// mutating the source does not affect the copy
	if err := sub.Key("k").At(0).SetInt(99); err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if actual := obj.JSON(); actual != `{"copied":{"k":[1,2]}}` {
		t.Errorf("Unexpected JSON: %q", actual)
	}
}

func TestDocumentReattach(t *testing.T) {
	d := Document{}
	leaf := d.Int(7)
	a := d.List(leaf)
	b := d.Object(Member{Key: "x", Value: a.At(0)})
	// re-attachment hands the slot to b alone; a no longer holds it
	if a.Len() != 0 {
		t.Errorf("Previous parent kept the element: %s", a.JSON())
	}
	if err := b.Key("x").SetInt(8); err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if i, _ := leaf.Int(); i != 8 {
		t.Errorf("Unexpected value: %d", i)
	}
	if actual := a.JSON(); actual != `[]` {
		t.Errorf("Unexpected JSON: %q", actual)
	}
	if actual := b.JSON(); actual != `{"x":8}` {
		t.Errorf("Unexpected JSON: %q", actual)
	}
}

func TestDocumentSoleOwnership(t *testing.T) {
	d := Document{}
	leaf := d.Int(7)
	a := d.List(leaf)
	b := d.List(leaf)
	if a.Len() != 0 || b.Len() != 1 {
		t.Fatalf("Element owned by two parents: a=%s b=%s", a.JSON(), b.JSON())
	}
	// writes through the element reach its sole owner only
	if err := b.At(0).SetInt(8); err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if actual := a.JSON(); actual != `[]` {
		t.Errorf("Unexpected JSON: %q", actual)
	}
	if actual := b.JSON(); actual != `[8]` {
		t.Errorf("Unexpected JSON: %q", actual)
	}
}

func TestDocumentAttachCycle(t *testing.T) {
	d := Document{}
	root := d.Object()
	// a value attached into its own subtree is copied, never linked
	if err := root.Set("self", root).Err(); err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if actual := root.JSON(); actual != `{"self":{}}` {
		t.Errorf("Unexpected JSON: %q", actual)
	}

	list := d.List(d.Int(1))
	if err := list.Append(list).Err(); err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if actual := list.JSON(); actual != `[1,[1]]` {
		t.Errorf("Unexpected JSON: %q", actual)
	}
}

func TestDocumentAttachAncestor(t *testing.T) {
	d := Document{}
	root, err := d.Parse(`{"a":{"b":1}}`)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	inner := root.Key("a")
	if err := inner.Set("up", root).Err(); err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	expect := `{"a":{"b":1,"up":{"a":{"b":1}}}}`
	if actual := root.JSON(); actual != expect {
		t.Errorf("Unexpected JSON:\nexpect: %s\nactual: %s", expect, actual)
	}
}

func TestDocumentConstructorRollback(t *testing.T) {
	d := Document{}
	leaf := d.Int(1)
	obj := d.Object(Member{Key: "a", Value: leaf}, Member{Key: "b", Value: View{}})
	if err := obj.Err(); !errors.Is(err, ErrInvalidView) {
		t.Fatalf("Expected ErrInvalidView, got %v", err)
	}
	if len(d.values) != 1 {
		t.Errorf("Failed constructor kept %d values", len(d.values))
	}
	list := d.List(leaf, View{})
	if err := list.Err(); !errors.Is(err, ErrInvalidView) {
		t.Fatalf("Expected ErrInvalidView, got %v", err)
	}
	if len(d.values) != 1 {
		t.Errorf("Failed constructor kept %d values", len(d.values))
	}
}

func TestDocumentReset(t *testing.T) {
	d := Document{}
	if _, err := d.Parse(`{"a":1}`); err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	d.Reset()
	if len(d.values) != 0 {
		t.Errorf("Arena not emptied: %d values", len(d.values))
	}
	root, err := d.Parse(`[true]`)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if actual := root.JSON(); actual != `[true]` {
		t.Errorf("Unexpected JSON: %q", actual)
	}
}
