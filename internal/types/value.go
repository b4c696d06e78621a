// Package types implements the closed sum of primitive element kinds the
// storage engine understands, and the runtime-tagged Value variant built
// on top of it. Every column carries exactly one ElementKind, fixed at
// table-definition time.
package types

import (
	"fmt"
)

// ElementKind is the primitive type of a column's logical values.
type ElementKind string

const (
	Int32  ElementKind = "int32"
	Int64  ElementKind = "int64"
	Float  ElementKind = "float"
	Double ElementKind = "double"
	String ElementKind = "string"
)

// Value is a tagged union over the closed set of ElementKinds. Exactly one
// of the typed fields is meaningful, selected by Kind.
type Value struct {
	Kind   ElementKind
	int32  int32
	int64  int64
	float  float32
	double float64
	str    string
}

func NewInt32(v int32) Value   { return Value{Kind: Int32, int32: v} }
func NewInt64(v int64) Value   { return Value{Kind: Int64, int64: v} }
func NewFloat(v float32) Value { return Value{Kind: Float, float: v} }
func NewDouble(v float64) Value { return Value{Kind: Double, double: v} }
func NewString(v string) Value { return Value{Kind: String, str: v} }

// AsInt32 returns the raw value, ignoring Kind. Use CastInt32 at boundaries
// where the kind has not already been checked.
func (v Value) AsInt32() int32   { return v.int32 }
func (v Value) AsInt64() int64   { return v.int64 }
func (v Value) AsFloat() float32 { return v.float }
func (v Value) AsDouble() float64 { return v.double }
func (v Value) AsString() string { return v.str }

func (v Value) String() string {
	switch v.Kind {
	case Int32:
		return fmt.Sprintf("%d", v.int32)
	case Int64:
		return fmt.Sprintf("%d", v.int64)
	case Float:
		return fmt.Sprintf("%g", v.float)
	case Double:
		return fmt.Sprintf("%g", v.double)
	case String:
		return v.str
	default:
		return fmt.Sprintf("<invalid value kind %q>", v.Kind)
	}
}

// CastInt32 extracts the int32 payload, failing when v's runtime kind is
// not Int32.
func CastInt32(v Value) (int32, error) {
	if v.Kind != Int32 {
		return 0, fmt.Errorf("cannot cast %s value to int32", v.Kind)
	}
	return v.int32, nil
}

func CastInt64(v Value) (int64, error) {
	if v.Kind != Int64 {
		return 0, fmt.Errorf("cannot cast %s value to int64", v.Kind)
	}
	return v.int64, nil
}

func CastFloat(v Value) (float32, error) {
	if v.Kind != Float {
		return 0, fmt.Errorf("cannot cast %s value to float", v.Kind)
	}
	return v.float, nil
}

func CastDouble(v Value) (float64, error) {
	if v.Kind != Double {
		return 0, fmt.Errorf("cannot cast %s value to double", v.Kind)
	}
	return v.double, nil
}

func CastString(v Value) (string, error) {
	if v.Kind != String {
		return "", fmt.Errorf("cannot cast %s value to string", v.Kind)
	}
	return v.str, nil
}
