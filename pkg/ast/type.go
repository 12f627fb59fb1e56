// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package ast

import (
	"fmt"
	"strings"
)

// Type represents a syntactically written type, exactly as produced by the
// parser.  Named types are unresolved at this level; resolving them against
// the circuits in scope happens during semantic-graph construction.
type Type interface {
	isType()
	// Produce a string representation of this type.
	String() string
}

// BooleanType represents the type of boolean values.
type BooleanType struct{}

func (p *BooleanType) isType() {}

func (p *BooleanType) String() string { return "bool" }

// FieldType represents the type of elements of the underlying scalar field.
type FieldType struct{}

func (p *FieldType) isType() {}

func (p *FieldType) String() string { return "field" }

// GroupType represents the type of points on the embedded curve group.
type GroupType struct{}

func (p *GroupType) isType() {}

func (p *GroupType) String() string { return "group" }

// AddressType represents the type of account addresses.
type AddressType struct{}

func (p *AddressType) isType() {}

func (p *AddressType) String() string { return "address" }

// CharType represents the type of character values.
type CharType struct{}

func (p *CharType) isType() {}

func (p *CharType) String() string { return "char" }

// ============================================================================
// Integer types
// ============================================================================

// IntegerType identifies one of the fixed-width integer types.
type IntegerType uint8

const (
	// I8 is the type of 8bit signed integers.
	I8 IntegerType = iota
	// I16 is the type of 16bit signed integers.
	I16
	// I32 is the type of 32bit signed integers.
	I32
	// I64 is the type of 64bit signed integers.
	I64
	// I128 is the type of 128bit signed integers.
	I128
	// U8 is the type of 8bit unsigned integers.
	U8
	// U16 is the type of 16bit unsigned integers.
	U16
	// U32 is the type of 32bit unsigned integers.
	U32
	// U64 is the type of 64bit unsigned integers.
	U64
	// U128 is the type of 128bit unsigned integers.
	U128
)

func (p IntegerType) isType() {}

// Signed indicates whether or not this is a signed integer type.
func (p IntegerType) Signed() bool {
	return p <= I128
}

// BitWidth returns the width (in bits) of this integer type.
func (p IntegerType) BitWidth() uint {
	switch p {
	case I8, U8:
		return 8
	case I16, U16:
		return 16
	case I32, U32:
		return 32
	case I64, U64:
		return 64
	case I128, U128:
		return 128
	}
	//
	panic("unreachable")
}

func (p IntegerType) String() string {
	if p.Signed() {
		return fmt.Sprintf("i%d", p.BitWidth())
	}
	//
	return fmt.Sprintf("u%d", p.BitWidth())
}

// ParseIntegerType parses the name of an integer type (e.g. "u32"), returning
// false if the name does not identify one.
func ParseIntegerType(name string) (IntegerType, bool) {
	types := []IntegerType{I8, I16, I32, I64, I128, U8, U16, U32, U64, U128}
	//
	for _, t := range types {
		if t.String() == name {
			return t, true
		}
	}
	//
	return 0, false
}

// ============================================================================
// Composite types
// ============================================================================

// ArrayType represents a fixed-size array of some element type.
type ArrayType struct {
	// Element type of this array.
	Element Type
	// Number of elements held by this array.
	Size uint
}

func (p *ArrayType) isType() {}

func (p *ArrayType) String() string {
	return fmt.Sprintf("[%s; %d]", p.Element.String(), p.Size)
}

// TupleType represents a fixed sequence of (possibly differing) types.  The
// empty tuple doubles as the unit type of functions which return nothing.
type TupleType struct {
	// Element types of this tuple.
	Elements []Type
}

func (p *TupleType) isType() {}

func (p *TupleType) String() string {
	var builder strings.Builder
	//
	builder.WriteString("(")
	//
	for i, t := range p.Elements {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(t.String())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}

// ============================================================================
// Named types
// ============================================================================

// NamedType represents a reference to a circuit type by name.
type NamedType struct {
	// Name of the circuit being referenced.
	Name Identifier
}

func (p *NamedType) isType() {}

func (p *NamedType) String() string { return p.Name.Name }

// SelfType represents the "Self" type, which refers to the enclosing circuit
// within a circuit declaration.
type SelfType struct{}

func (p *SelfType) isType() {}

func (p *SelfType) String() string { return "Self" }
