package jdom_test

import (
	"fmt"

	"github.com/alxarch/jdom"
)

func Example() {
	d := jdom.Document{}

	root, _ := d.Parse(`{"answer":42, "foo": {"bar": "baz"}}`)

	answer, _ := root.Key("answer").Int()
	fmt.Println(answer)

	bar, _ := root.Lookup("foo", "bar").Str()
	fmt.Println(bar)

	root.Key("foo").Key("bar").SetStr("qux")
	fmt.Println(root.JSON())

	fmt.Println(root.Key("foo").Pretty())

	// Output:
	// 42
	// baz
	// {"answer":42,"foo":{"bar":"qux"}}
	// {
	//   "bar": "qux"
	// }
}
