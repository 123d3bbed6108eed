package jdom

import (
	"errors"
	"fmt"
)

// ErrMalformed signifies structurally invalid JSON input.
// It carries no positional context; the first violation aborts the
// whole parse and no partial tree is kept.
var ErrMalformed = errors.New("malformed json")

// ErrIndex signifies an out of range list index.
var ErrIndex = errors.New("list index out of range")

// ErrInvalidView signifies a View that does not reference a live
// document value, either because it is zero or because its document
// was reset after the View was taken.
var ErrInvalidView = errors.New("view does not reference a document value")

// KindError signifies an operation applied to a value of an
// incompatible kind.
type KindError struct {
	Kind Kind
	Want Kind
}

func (e *KindError) Error() string {
	switch e.Want {
	case KindObject:
		return fmt.Sprintf("value kind is %s, not an Object", e.Kind)
	case KindList:
		return fmt.Sprintf("value kind is %s, not a List", e.Kind)
	}
	return fmt.Sprintf("value kind is %s, expecting %v", e.Kind, e.Want.Kinds())
}

func errNotObject(got Kind) error {
	return &KindError{Kind: got, Want: KindObject}
}

func errNotList(got Kind) error {
	return &KindError{Kind: got, Want: KindList}
}

func errNotLeaf(got, want Kind) error {
	return &KindError{Kind: got, Want: want}
}

// KeyError signifies a key missing from an object during Lookup.
type KeyError struct {
	Key string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("key %q not found in Object", e.Key)
}
