package starlarkjdom

import (
	"errors"

	"github.com/alxarch/jdom"
	"go.starlark.net/starlark"
)

var _ starlark.Value = (*Object)(nil)
var _ starlark.IterableMapping = (*Object)(nil)
var _ starlark.HasSetKey = (*Object)(nil)
var _ starlark.HasAttrs = (*Object)(nil)

// Object wraps an Object view as a Starlark mapping.
type Object struct {
	view   jdom.View
	frozen bool
}

func (o *Object) Get(key starlark.Value) (starlark.Value, bool, error) {
	k, ok := key.(starlark.String)
	if !ok {
		return nil, false, TypeError("object keys are strings")
	}
	el := o.view.Lookup(string(k))
	keyErr := &jdom.KeyError{}
	if err := el.Err(); err != nil {
		if errors.As(err, &keyErr) {
			return nil, false, nil
		}
		return nil, false, newValueError(err)
	}
	v, err := Value(el)
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func (o *Object) SetKey(key, v starlark.Value) error {
	if o.frozen {
		return errors.New("cannot modify a frozen object")
	}
	k, ok := key.(starlark.String)
	if !ok {
		return TypeError("object keys are strings")
	}
	doc := o.view.Document()
	if doc == nil {
		return newValueError(jdom.ErrInvalidView)
	}
	el, err := ToView(doc, v)
	if err != nil {
		return err
	}
	if err := o.view.Set(string(k), el).Err(); err != nil {
		return newValueError(err)
	}
	return nil
}

func (o *Object) Items() []starlark.Tuple {
	keys := o.view.Keys()
	items := make([]starlark.Tuple, 0, len(keys))
	for _, key := range keys {
		v, err := Value(o.view.Lookup(key))
		if err != nil {
			continue
		}
		items = append(items, starlark.Tuple{starlark.String(key), v})
	}
	return items
}

func (o *Object) Iterate() starlark.Iterator {
	return &keyIter{keys: o.view.Keys()}
}

type keyIter struct {
	keys []string
	pos  int
}

func (i *keyIter) Next(p *starlark.Value) bool {
	if i.pos < len(i.keys) {
		*p = starlark.String(i.keys[i.pos])
		i.pos++
		return true
	}
	return false
}

func (i *keyIter) Done() {}

func (o *Object) Attr(name string) (starlark.Value, error) {
	return objectMethods.Get(name, o)
}

func (o *Object) AttrNames() []string {
	return objectMethods.Names()
}

func (o *Object) String() string {
	return o.view.JSON()
}

func (o *Object) Type() string {
	return "jdom_object"
}

func (o *Object) Freeze() {
	o.frozen = true
}

func (o *Object) Truth() starlark.Bool {
	return o.view.Len() > 0
}

func (o *Object) Hash() (uint32, error) {
	return 0, errors.New("jdom_object is not hashable")
}

var objectMethods = newProto(map[string]*starlark.Builtin{
	"keys": starlark.NewBuiltin("keys", objectKeys),
	"get":  starlark.NewBuiltin("get", objectGet),
})

func objectKeys(_ *starlark.Thread, method *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(method.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	o := method.Receiver().(*Object)
	keys := o.view.Keys()
	elems := make([]starlark.Value, 0, len(keys))
	for _, key := range keys {
		elems = append(elems, starlark.String(key))
	}
	return starlark.NewList(elems), nil
}

func objectGet(_ *starlark.Thread, method *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var (
		key starlark.Value
		def starlark.Value = starlark.None
	)
	if err := starlark.UnpackPositionalArgs(method.Name(), args, kwargs, 1, &key, &def); err != nil {
		return nil, err
	}
	o := method.Receiver().(*Object)
	v, found, err := o.Get(key)
	if err != nil {
		return nil, err
	}
	if !found {
		return def, nil
	}
	return v, nil
}
