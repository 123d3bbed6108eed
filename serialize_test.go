package jdom

import (
	"bytes"
	"reflect"
	"testing"
)

func buildDocument(d *Document) View {
	return d.Object(
		Member{Key: "name", Value: d.Str("Jane")},
		Member{Key: "age", Value: d.Int(24)},
		Member{Key: "ratio", Value: d.Float(0.5)},
		Member{Key: "student", Value: d.Bool(true)},
		Member{Key: "address", Value: d.Null()},
		Member{Key: "friends", Value: d.List(
			d.Str("Bob"),
			d.Object(Member{Key: "money", Value: d.Float(100.34)}),
		)},
	)
}

func TestAppendJSON(t *testing.T) {
	d := Document{}
	root := buildDocument(&d)
	expect := `{"address":null,"age":24,"friends":["Bob",{"money":100.34}],"name":"Jane","ratio":0.5,"student":true}`
	if actual := root.JSON(); actual != expect {
		t.Errorf("Unexpected JSON:\nexpect: %s\nactual: %s", expect, actual)
	}
}

func TestSerializeIdempotent(t *testing.T) {
	d := Document{}
	root := buildDocument(&d)
	if first, second := root.JSON(), root.JSON(); first != second {
		t.Errorf("Compact output not stable:\n%s\n%s", first, second)
	}
	if first, second := root.Pretty(), root.Pretty(); first != second {
		t.Errorf("Pretty output not stable:\n%s\n%s", first, second)
	}
}

func TestRoundTrip(t *testing.T) {
	d := Document{}
	root := buildDocument(&d)
	compact := root.JSON()
	expect, err := root.Interface()
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	d2 := Document{}
	reparsed, err := d2.Parse(compact)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	actual, err := reparsed.Interface()
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if !reflect.DeepEqual(expect, actual) {
		t.Errorf("Round trip mismatch:\nexpect: %#v\nactual: %#v", expect, actual)
	}
	if again := reparsed.JSON(); again != compact {
		t.Errorf("Round trip text mismatch:\nexpect: %s\nactual: %s", compact, again)
	}
}

func TestAppendPretty(t *testing.T) {
	d := Document{}
	root, err := d.Parse(`{"a":1,"b":[1,"two"],"c":{},"d":[]}`)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	expect := `{
  "a": 1,
  "b": [
    1,
    "two"
  ],
  "c": {},
  "d": []
}`
	if actual := root.Pretty(); actual != expect {
		t.Errorf("Unexpected pretty output:\nexpect:\n%s\nactual:\n%s", expect, actual)
	}
}

// No separator is emitted after the last element of a container.
func TestPrettyNoTrailingSeparator(t *testing.T) {
	d := Document{}
	root, _ := d.Parse(`{"a":[1,2],"b":{"c":3}}`)
	pretty := root.Pretty()
	for _, bad := range []string{",\n}", ",\n]", ",}", ",]"} {
		if bytes.Contains([]byte(pretty), []byte(bad)) {
			t.Errorf("Trailing separator %q in:\n%s", bad, pretty)
		}
	}
}

func TestPrintJSON(t *testing.T) {
	d := Document{}
	root, _ := d.Parse(`[1,2,3]`)
	var buf bytes.Buffer
	n, err := root.PrintJSON(&buf)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if n != buf.Len() || buf.String() != `[1,2,3]` {
		t.Errorf("Unexpected output: %q (%d bytes)", buf.String(), n)
	}
}

func TestSerializeDoesNotMutate(t *testing.T) {
	d := Document{}
	root := buildDocument(&d)
	before := len(d.values)
	_ = root.JSON()
	_ = root.Pretty()
	if len(d.values) != before {
		t.Errorf("Serialization grew the arena from %d to %d values", before, len(d.values))
	}
}
