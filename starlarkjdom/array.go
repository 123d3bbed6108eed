package starlarkjdom

import (
	"errors"

	"github.com/alxarch/jdom"
	"go.starlark.net/starlark"
)

var _ starlark.Value = (*Array)(nil)
var _ starlark.Indexable = (*Array)(nil)
var _ starlark.Iterable = (*Array)(nil)
var _ starlark.HasAttrs = (*Array)(nil)

// Array wraps a List view as a Starlark sequence.
type Array struct {
	view   jdom.View
	frozen bool
}

func (a *Array) Index(i int) starlark.Value {
	v, err := Value(a.view.At(i))
	if err != nil {
		return starlark.None
	}
	return v
}

func (a *Array) Len() int {
	return a.view.Len()
}

func (a *Array) Iterate() starlark.Iterator {
	return &arrayIter{arr: a}
}

type arrayIter struct {
	arr *Array
	pos int
}

func (i *arrayIter) Next(p *starlark.Value) bool {
	if i.pos < i.arr.Len() {
		*p = i.arr.Index(i.pos)
		i.pos++
		return true
	}
	return false
}

func (i *arrayIter) Done() {}

func (a *Array) Attr(name string) (starlark.Value, error) {
	return arrayMethods.Get(name, a)
}

func (a *Array) AttrNames() []string {
	return arrayMethods.Names()
}

func (a *Array) String() string {
	return a.view.JSON()
}

func (a *Array) Type() string {
	return "jdom_array"
}

func (a *Array) Freeze() {
	a.frozen = true
}

func (a *Array) Truth() starlark.Bool {
	return a.Len() > 0
}

func (a *Array) Hash() (uint32, error) {
	return 0, errors.New("jdom_array is not hashable")
}

var arrayMethods = newProto(map[string]*starlark.Builtin{
	"append": starlark.NewBuiltin("append", arrayAppend),
})

func arrayAppend(_ *starlark.Thread, method *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var v starlark.Value
	if err := starlark.UnpackPositionalArgs(method.Name(), args, kwargs, 1, &v); err != nil {
		return nil, err
	}
	a := method.Receiver().(*Array)
	if a.frozen {
		return nil, errors.New("cannot modify a frozen array")
	}
	doc := a.view.Document()
	if doc == nil {
		return nil, newValueError(jdom.ErrInvalidView)
	}
	el, err := ToView(doc, v)
	if err != nil {
		return nil, err
	}
	if err := a.view.Append(el).Err(); err != nil {
		return nil, newValueError(err)
	}
	return starlark.None, nil
}
