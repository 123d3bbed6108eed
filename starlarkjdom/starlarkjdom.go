// Package starlarkjdom exposes jdom documents to Starlark programs.
package starlarkjdom

import (
	"errors"
	"fmt"

	"github.com/alxarch/jdom"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

const keyThreadLocalDocument = "jdom"

// Module is the jdom Starlark module.
var Module = starlarkstruct.Module{
	Name: "jdom",
	Members: starlark.StringDict{
		"parse":  starlark.NewBuiltin("parse", parse),
		"dumps":  starlark.NewBuiltin("dumps", dumps),
		"pretty": starlark.NewBuiltin("pretty", prettyFn),
	},
}

func parse(thread *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) != 0 {
		return nil, errors.New("parse does not accept keyword arguments")
	}
	var input string
	if err := starlark.UnpackPositionalArgs("parse", args, kwargs, 1, &input); err != nil {
		return nil, err
	}
	doc := documentFromThread(thread)
	if doc == nil {
		doc = &jdom.Document{}
		thread.SetLocal(keyThreadLocalDocument, doc)
	}
	root, err := doc.Parse(input)
	if err != nil {
		return nil, newValueError(err)
	}
	return Value(root)
}

func dumps(thread *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	view, err := unpackView(thread, "dumps", args, kwargs)
	if err != nil {
		return nil, err
	}
	return starlark.String(view.JSON()), nil
}

func prettyFn(thread *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	view, err := unpackView(thread, "pretty", args, kwargs)
	if err != nil {
		return nil, err
	}
	return starlark.String(view.Pretty()), nil
}

func unpackView(thread *starlark.Thread, name string, args starlark.Tuple, kwargs []starlark.Tuple) (jdom.View, error) {
	var v starlark.Value
	if err := starlark.UnpackPositionalArgs(name, args, kwargs, 1, &v); err != nil {
		return jdom.View{}, err
	}
	doc := documentFromThread(thread)
	if doc == nil {
		doc = &jdom.Document{}
		thread.SetLocal(keyThreadLocalDocument, doc)
	}
	return ToView(doc, v)
}

func documentFromThread(thread *starlark.Thread) *jdom.Document {
	if doc, ok := thread.Local(keyThreadLocalDocument).(*jdom.Document); ok {
		return doc
	}
	return nil
}

// Value converts a jdom View to a Starlark value.
// Containers are wrapped; mutations through the wrappers are visible
// in the underlying document.
func Value(v jdom.View) (starlark.Value, error) {
	switch v.Kind() {
	case jdom.KindNull:
		return starlark.None, nil
	case jdom.KindBool:
		b, err := v.Bool()
		if err != nil {
			return nil, newValueError(err)
		}
		return starlark.Bool(b), nil
	case jdom.KindInt:
		i, err := v.Int()
		if err != nil {
			return nil, newValueError(err)
		}
		return starlark.MakeInt64(i), nil
	case jdom.KindFloat:
		f, err := v.Float()
		if err != nil {
			return nil, newValueError(err)
		}
		return starlark.Float(f), nil
	case jdom.KindString:
		s, err := v.Str()
		if err != nil {
			return nil, newValueError(err)
		}
		return starlark.String(s), nil
	case jdom.KindList:
		return &Array{view: v}, nil
	case jdom.KindObject:
		return &Object{view: v}, nil
	}
	if err := v.Err(); err != nil {
		return nil, newValueError(err)
	}
	return nil, newValueError(jdom.ErrInvalidView)
}

// ToView converts a Starlark value to a jdom View in doc.
// Wrapped containers pass through; other values are built anew.
func ToView(doc *jdom.Document, v starlark.Value) (jdom.View, error) {
	switch v := v.(type) {
	case *Object:
		return v.view, nil
	case *Array:
		return v.view, nil
	case starlark.NoneType:
		return doc.Null(), nil
	case starlark.Bool:
		return doc.Bool(bool(v)), nil
	case starlark.String:
		return doc.Str(string(v)), nil
	case starlark.Int:
		i, ok := v.Int64()
		if !ok {
			return jdom.View{}, TypeError("integer out of range")
		}
		return doc.Int(i), nil
	case starlark.Float:
		return doc.Float(float64(v)), nil
	case starlark.IterableMapping:
		var members []jdom.Member
		iter := v.Iterate()
		defer iter.Done()
		var key starlark.Value
		for iter.Next(&key) {
			k, ok := key.(starlark.String)
			if !ok {
				return jdom.View{}, TypeError("invalid dict key")
			}
			el, _, err := v.Get(key)
			if err != nil {
				return jdom.View{}, err
			}
			member, err := ToView(doc, el)
			if err != nil {
				return jdom.View{}, err
			}
			members = append(members, jdom.Member{Key: string(k), Value: member})
		}
		return doc.Object(members...), nil
	case starlark.Iterable:
		var elems []jdom.View
		iter := v.Iterate()
		defer iter.Done()
		var el starlark.Value
		for iter.Next(&el) {
			elem, err := ToView(doc, el)
			if err != nil {
				return jdom.View{}, err
			}
			elems = append(elems, elem)
		}
		return doc.List(elems...), nil
	default:
		return jdom.View{}, TypeError(fmt.Sprintf("cannot convert %s to jdom", v.Type()))
	}
}

type proto struct {
	methods map[string]*starlark.Builtin
	names   []string
}

func newProto(methods map[string]*starlark.Builtin) *proto {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	return &proto{
		methods: methods,
		names:   names,
	}
}

func (p *proto) Get(name string, recv starlark.Value) (starlark.Value, error) {
	if m := p.methods[name]; m != nil {
		return m.BindReceiver(recv), nil
	}
	return nil, nil
}

func (p *proto) Names() []string {
	return p.names
}
