// Package types implements MiniLang's structural type system: i32,
// references, fixed-size arrays, and tuples, compared by shape.
package types

import (
	"fmt"
	"strings"
)

// Type is implemented by every MiniLang type value.
type Type interface {
	String() string
	TypeKind() string
	Equals(other Type) bool
}

// I32 is the sole primitive numeric type; comparisons also yield I32
// (MiniLang has no boolean type).
var I32 Type = i32Type{}

// Unit is the implicit result type of a function with no declared return
// type, and of a FunctionExprBlock whose last element is statement-terminated.
var Unit Type = unitType{}

type i32Type struct{}

func (i32Type) String() string      { return "i32" }
func (i32Type) TypeKind() string    { return "I32" }
func (i32Type) Equals(o Type) bool  { _, ok := o.(i32Type); return ok }

type unitType struct{}

func (unitType) String() string     { return "()" }
func (unitType) TypeKind() string   { return "UNIT" }
func (unitType) Equals(o Type) bool { _, ok := o.(unitType); return ok }

// ReferenceType is `&T` (Mut=false) or `&mut T` (Mut=true).
type ReferenceType struct {
	Inner Type
	Mut   bool
}

func NewReferenceType(inner Type, mut bool) *ReferenceType {
	return &ReferenceType{Inner: inner, Mut: mut}
}

func (t *ReferenceType) String() string {
	if t.Mut {
		return "&mut " + t.Inner.String()
	}
	return "&" + t.Inner.String()
}

func (t *ReferenceType) TypeKind() string { return "REFERENCE" }

func (t *ReferenceType) Equals(o Type) bool {
	other, ok := o.(*ReferenceType)
	if !ok {
		return false
	}
	return t.Mut == other.Mut && t.Inner.Equals(other.Inner)
}

// ArrayType is a fixed-size array `[T; N]`.
type ArrayType struct {
	Inner Type
	Size  int
}

func NewArrayType(inner Type, size int) *ArrayType {
	return &ArrayType{Inner: inner, Size: size}
}

func (t *ArrayType) String() string {
	return fmt.Sprintf("[%s; %d]", t.Inner.String(), t.Size)
}

func (t *ArrayType) TypeKind() string { return "ARRAY" }

func (t *ArrayType) Equals(o Type) bool {
	other, ok := o.(*ArrayType)
	if !ok {
		return false
	}
	return t.Size == other.Size && t.Inner.Equals(other.Inner)
}

// TupleType is `(T1, T2, ...)`.
type TupleType struct {
	Elements []Type
}

func NewTupleType(elements []Type) *TupleType {
	return &TupleType{Elements: elements}
}

func (t *TupleType) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (t *TupleType) TypeKind() string { return "TUPLE" }

func (t *TupleType) Equals(o Type) bool {
	other, ok := o.(*TupleType)
	if !ok || len(t.Elements) != len(other.Elements) {
		return false
	}
	for i, e := range t.Elements {
		if !e.Equals(other.Elements[i]) {
			return false
		}
	}
	return true
}

// IsUnit reports whether t is the unit type.
func IsUnit(t Type) bool {
	_, ok := t.(unitType)
	return ok
}
