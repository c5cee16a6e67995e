package types

import "testing"

func TestBasicTypes(t *testing.T) {
	tests := []struct {
		name     string
		typ      Type
		expected string
		kind     string
	}{
		{"I32", I32, "i32", "I32"},
		{"Unit", Unit, "()", "UNIT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.typ.String() != tt.expected {
				t.Errorf("String() = %v, want %v", tt.typ.String(), tt.expected)
			}
			if tt.typ.TypeKind() != tt.kind {
				t.Errorf("TypeKind() = %v, want %v", tt.typ.TypeKind(), tt.kind)
			}
		})
	}
}

func TestBasicTypeEquality(t *testing.T) {
	tests := []struct {
		a        Type
		b        Type
		name     string
		expected bool
	}{
		{a: I32, b: I32, name: "i32 equals i32", expected: true},
		{a: Unit, b: Unit, name: "unit equals unit", expected: true},
		{a: I32, b: Unit, name: "i32 not equals unit", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equals(tt.b); got != tt.expected {
				t.Errorf("Equals() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsUnit(t *testing.T) {
	if !IsUnit(Unit) {
		t.Error("IsUnit(Unit) = false, want true")
	}
	if IsUnit(I32) {
		t.Error("IsUnit(I32) = true, want false")
	}
}

func TestReferenceType(t *testing.T) {
	tests := []struct {
		name     string
		ref      *ReferenceType
		expected string
	}{
		{"immutable", NewReferenceType(I32, false), "&i32"},
		{"mutable", NewReferenceType(I32, true), "&mut i32"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.ref.String() != tt.expected {
				t.Errorf("String() = %v, want %v", tt.ref.String(), tt.expected)
			}
			if tt.ref.TypeKind() != "REFERENCE" {
				t.Errorf("TypeKind() = %v, want REFERENCE", tt.ref.TypeKind())
			}
		})
	}
}

func TestReferenceTypeEquality(t *testing.T) {
	if !NewReferenceType(I32, false).Equals(NewReferenceType(I32, false)) {
		t.Error("&i32 should equal &i32")
	}
	if NewReferenceType(I32, false).Equals(NewReferenceType(I32, true)) {
		t.Error("&i32 should not equal &mut i32")
	}
	if NewReferenceType(I32, false).Equals(I32) {
		t.Error("&i32 should not equal i32")
	}
}

func TestArrayType(t *testing.T) {
	arr := NewArrayType(I32, 4)
	if arr.String() != "[i32; 4]" {
		t.Errorf("String() = %v, want [i32; 4]", arr.String())
	}
	if arr.TypeKind() != "ARRAY" {
		t.Errorf("TypeKind() = %v, want ARRAY", arr.TypeKind())
	}
}

func TestArrayTypeEquality(t *testing.T) {
	if !NewArrayType(I32, 4).Equals(NewArrayType(I32, 4)) {
		t.Error("[i32; 4] should equal [i32; 4]")
	}
	if NewArrayType(I32, 4).Equals(NewArrayType(I32, 5)) {
		t.Error("[i32; 4] should not equal [i32; 5]")
	}
	if NewArrayType(I32, 4).Equals(NewArrayType(NewReferenceType(I32, false), 4)) {
		t.Error("[i32; 4] should not equal [&i32; 4]")
	}
}

func TestTupleType(t *testing.T) {
	tup := NewTupleType([]Type{I32, I32, NewReferenceType(I32, true)})
	want := "(i32, i32, &mut i32)"
	if tup.String() != want {
		t.Errorf("String() = %v, want %v", tup.String(), want)
	}
	if tup.TypeKind() != "TUPLE" {
		t.Errorf("TypeKind() = %v, want TUPLE", tup.TypeKind())
	}
}

func TestTupleTypeEquality(t *testing.T) {
	a := NewTupleType([]Type{I32, I32})
	b := NewTupleType([]Type{I32, I32})
	c := NewTupleType([]Type{I32, I32, I32})
	d := NewTupleType([]Type{I32, NewReferenceType(I32, false)})

	if !a.Equals(b) {
		t.Error("(i32, i32) should equal (i32, i32)")
	}
	if a.Equals(c) {
		t.Error("(i32, i32) should not equal (i32, i32, i32)")
	}
	if a.Equals(d) {
		t.Error("(i32, i32) should not equal (i32, &i32)")
	}
}

func TestNestedStructuralEquality(t *testing.T) {
	a := NewArrayType(NewTupleType([]Type{I32, NewReferenceType(I32, true)}), 3)
	b := NewArrayType(NewTupleType([]Type{I32, NewReferenceType(I32, true)}), 3)
	if !a.Equals(b) {
		t.Error("structurally identical nested types should be equal")
	}
}
