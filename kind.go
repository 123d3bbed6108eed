package jdom

import (
	"fmt"
	"math/bits"
)

// Kind is the kind of a document value.
type Kind uint8

// Value kinds and kind masks
const (
	KindInvalid Kind = iota
	KindNull    Kind = 1 << iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindObject
	KindLeaf      = KindNull | KindBool | KindInt | KindFloat | KindString
	KindContainer = KindList | KindObject
	KindAny       = KindLeaf | KindContainer
)

// Kinds returns all kinds of a kind mask.
func (k Kind) Kinds() (kinds []Kind) {
	if k == 0 {
		return []Kind{}
	}
	if bits.OnesCount8(uint8(k)) == 1 {
		return []Kind{k}
	}
	for i := Kind(0); i < 8; i++ {
		kk := Kind(1 << i)
		if k&kk != 0 {
			kinds = append(kinds, kk)
		}
	}
	return
}

// IsLeaf reports whether k is a single leaf kind.
func (k Kind) IsLeaf() bool {
	return k&KindLeaf != 0 && bits.OnesCount8(uint8(k)) == 1
}

// IsContainer reports whether k is List or Object.
func (k Kind) IsContainer() bool {
	return k&KindContainer != 0 && bits.OnesCount8(uint8(k)) == 1
}

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "Invalid"
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindList:
		return "List"
	case KindObject:
		return "Object"
	case KindLeaf:
		return "Leaf"
	case KindContainer:
		return "Container"
	case KindAny:
		return "AnyValue"
	default:
		if bits.OnesCount8(uint8(k)) > 1 {
			return fmt.Sprint(k.Kinds())
		}
		return "Invalid"
	}
}

const (
	strFalse = "false"
	strTrue  = "true"
	strNull  = "null"
)
