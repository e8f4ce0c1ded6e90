// Package tabular implements the storage type system for typed, in-memory
// columns.  Every column is backed by exactly one storage type drawn from a
// small closed set (booleans, fixed-width integers, 64-bit floats, arbitrary
// precision integers and decimals, strings, and a mixed catch-all).  The
// package also defines the one-directional widening relation that governs
// when a column under construction may be retyped to hold a new value.
package tabular

import (
	"fmt"
	"strings"
)

// A Type is a concrete column representation.  Types are immutable
// singletons and may be compared with ==.
type Type interface {
	// ID returns the identifier of this type, one of the ID* constants.
	ID() int
	String() string
}

const (
	IDBool       = 0
	IDInt8       = 1
	IDInt16      = 2
	IDInt32      = 3
	IDInt64      = 4
	IDFloat64    = 5
	IDBigInt     = 6
	IDBigDecimal = 7
	IDString     = 8
	IDMixed      = 9

	numIDs = 10
)

var (
	TypeBool       = &TypeOfBool{}
	TypeInt8       = &TypeOfInt{id: IDInt8, bits: 8}
	TypeInt16      = &TypeOfInt{id: IDInt16, bits: 16}
	TypeInt32      = &TypeOfInt{id: IDInt32, bits: 32}
	TypeInt64      = &TypeOfInt{id: IDInt64, bits: 64}
	TypeFloat64    = &TypeOfFloat64{}
	TypeBigInt     = &TypeOfBigInt{}
	TypeBigDecimal = &TypeOfBigDecimal{}
	TypeString     = &TypeOfString{}
	TypeMixed      = &TypeOfMixed{}
)

var types = [numIDs]Type{
	TypeBool,
	TypeInt8,
	TypeInt16,
	TypeInt32,
	TypeInt64,
	TypeFloat64,
	TypeBigInt,
	TypeBigDecimal,
	TypeString,
	TypeMixed,
}

type TypeOfBool struct{}

func (*TypeOfBool) ID() int        { return IDBool }
func (*TypeOfBool) String() string { return "bool" }

// TypeOfInt is a signed integer type of a fixed bit width.  Values are
// always held as int64 but must fit the width.
type TypeOfInt struct {
	id   int
	bits int
}

func (t *TypeOfInt) ID() int        { return t.id }
func (t *TypeOfInt) String() string { return fmt.Sprintf("int%d", t.bits) }

// Bits returns the bit width of t.
func (t *TypeOfInt) Bits() int { return t.bits }

// Fits returns true iff v is representable in t.
func (t *TypeOfInt) Fits(v int64) bool {
	if t.bits == 64 {
		return true
	}
	max := int64(1)<<(t.bits-1) - 1
	return v >= -max-1 && v <= max
}

type TypeOfFloat64 struct{}

func (*TypeOfFloat64) ID() int        { return IDFloat64 }
func (*TypeOfFloat64) String() string { return "float64" }

type TypeOfBigInt struct{}

func (*TypeOfBigInt) ID() int        { return IDBigInt }
func (*TypeOfBigInt) String() string { return "bigint" }

type TypeOfBigDecimal struct{}

func (*TypeOfBigDecimal) ID() int        { return IDBigDecimal }
func (*TypeOfBigDecimal) String() string { return "decimal" }

type TypeOfString struct{}

func (*TypeOfString) ID() int        { return IDString }
func (*TypeOfString) String() string { return "string" }

type TypeOfMixed struct{}

func (*TypeOfMixed) ID() int        { return IDMixed }
func (*TypeOfMixed) String() string { return "mixed" }

// LookupTypeByID returns the type for id or nil if id is out of range.
func LookupTypeByID(id int) Type {
	if id < 0 || id >= numIDs {
		return nil
	}
	return types[id]
}

// LookupType returns the type named by s, e.g., "int32" or "float64".
func LookupType(s string) (Type, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, typ := range types {
		if typ.String() == name {
			return typ, nil
		}
	}
	switch name {
	case "boolean":
		return TypeBool, nil
	case "int", "integer":
		return TypeInt64, nil
	case "float", "double":
		return TypeFloat64, nil
	case "text":
		return TypeString, nil
	}
	return nil, fmt.Errorf("unknown storage type %q", s)
}

// True iff the type id is a fixed-width integer.
func IsInteger(id int) bool {
	return id >= IDInt8 && id <= IDInt64
}

// True iff the type id holds numbers of any representation.
func IsNumber(id int) bool {
	return id >= IDInt8 && id <= IDBigDecimal
}

// True iff the type id holds exact (non-floating) numbers.
func IsExact(id int) bool {
	return IsNumber(id) && id != IDFloat64
}

// widen[from] is the bitmask of IDs that from may be retyped to.
var widen = [numIDs]uint16{
	IDBool:       bit(IDFloat64) | bit(IDMixed),
	IDInt8:       bit(IDInt16) | bit(IDInt32) | bit(IDInt64) | numeric,
	IDInt16:      bit(IDInt32) | bit(IDInt64) | numeric,
	IDInt32:      bit(IDInt64) | numeric,
	IDInt64:      numeric,
	IDFloat64:    bit(IDBigDecimal),
	IDBigInt:     bit(IDFloat64) | bit(IDBigDecimal) | bit(IDMixed),
	IDBigDecimal: bit(IDMixed),
	IDString:     bit(IDMixed),
	IDMixed:      0,
}

const numeric = 1<<IDFloat64 | 1<<IDBigInt | 1<<IDBigDecimal | 1<<IDMixed

func bit(id int) uint16 {
	return 1 << id
}

// CanWiden returns true iff a column of type from may be retyped to type to
// without narrowing.  A type does not widen to itself.
func CanWiden(from, to Type) bool {
	return widen[from.ID()]&bit(to.ID()) != 0
}

// Common returns the narrowest type that both a and b are equal to or widen
// to.  Numbers that share no numeric supertype, and non-numbers of differing
// types, meet at TypeMixed.  Float64 never widens to Mixed, yet Common may
// still return TypeMixed for it; the caller must hold the original values to
// perform such a retype.
func Common(a, b Type) Type {
	if a == b {
		return a
	}
	aid, bid := a.ID(), b.ID()
	if aid == IDBool || bid == IDBool {
		if aid == IDFloat64 || bid == IDFloat64 {
			return TypeFloat64
		}
		return TypeMixed
	}
	if IsInteger(aid) && IsInteger(bid) {
		if aid > bid {
			return a
		}
		return b
	}
	for _, id := range []int{IDFloat64, IDBigInt, IDBigDecimal} {
		if (aid == id || widen[aid]&bit(id) != 0) && (bid == id || widen[bid]&bit(id) != 0) {
			// Prefer exact representations: int and bigint meet at bigint,
			// not float64.
			if id == IDFloat64 && IsExact(aid) && IsExact(bid) {
				continue
			}
			return types[id]
		}
	}
	return TypeMixed
}
