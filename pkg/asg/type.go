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
package asg

import (
	"fmt"
	"strings"

	"github.com/zirclang/zirc/pkg/ast"
	"github.com/zirclang/zirc/pkg/util"
)

// Type represents a fully resolved semantic type.  Unlike syntactic types,
// named references have been resolved to their circuit declarations, and
// "Self" has been substituted away.
type Type interface {
	isType()
	// Equals determines whether or not this type and the given type are
	// identical.  Circuit types compare by declaration identity.
	Equals(Type) bool
	// Produce a string representation of this type.
	String() string
}

// BooleanType is the semantic type of boolean values.
type BooleanType struct{}

func (p *BooleanType) isType() {}

// Equals determines whether or not this type and the given type are identical.
func (p *BooleanType) Equals(o Type) bool {
	_, ok := o.(*BooleanType)
	return ok
}

func (p *BooleanType) String() string { return "bool" }

// FieldType is the semantic type of scalar field elements.
type FieldType struct{}

func (p *FieldType) isType() {}

// Equals determines whether or not this type and the given type are identical.
func (p *FieldType) Equals(o Type) bool {
	_, ok := o.(*FieldType)
	return ok
}

func (p *FieldType) String() string { return "field" }

// GroupType is the semantic type of embedded curve points.
type GroupType struct{}

func (p *GroupType) isType() {}

// Equals determines whether or not this type and the given type are identical.
func (p *GroupType) Equals(o Type) bool {
	_, ok := o.(*GroupType)
	return ok
}

func (p *GroupType) String() string { return "group" }

// AddressType is the semantic type of account addresses.
type AddressType struct{}

func (p *AddressType) isType() {}

// Equals determines whether or not this type and the given type are identical.
func (p *AddressType) Equals(o Type) bool {
	_, ok := o.(*AddressType)
	return ok
}

func (p *AddressType) String() string { return "address" }

// CharType is the semantic type of character values.
type CharType struct{}

func (p *CharType) isType() {}

// Equals determines whether or not this type and the given type are identical.
func (p *CharType) Equals(o Type) bool {
	_, ok := o.(*CharType)
	return ok
}

func (p *CharType) String() string { return "char" }

// IntegerType is the semantic type of fixed-width integers.  The width and
// signedness are those of the underlying syntactic type.
type IntegerType struct {
	// Width and signedness of this type.
	Kind ast.IntegerType
}

func (p *IntegerType) isType() {}

// Equals determines whether or not this type and the given type are identical.
func (p *IntegerType) Equals(o Type) bool {
	if q, ok := o.(*IntegerType); ok {
		return p.Kind == q.Kind
	}
	//
	return false
}

func (p *IntegerType) String() string { return p.Kind.String() }

// ArrayType is the semantic type of fixed-size arrays.
type ArrayType struct {
	// Element type of this array.
	Element Type
	// Number of elements held by this array.
	Size uint
}

func (p *ArrayType) isType() {}

// Equals determines whether or not this type and the given type are identical.
func (p *ArrayType) Equals(o Type) bool {
	if q, ok := o.(*ArrayType); ok {
		return p.Size == q.Size && p.Element.Equals(q.Element)
	}
	//
	return false
}

func (p *ArrayType) String() string {
	return fmt.Sprintf("[%s; %d]", p.Element.String(), p.Size)
}

// TupleType is the semantic type of tuples.  The empty tuple doubles as the
// unit type of functions which return nothing.
type TupleType struct {
	// Element types of this tuple.
	Elements []Type
}

func (p *TupleType) isType() {}

// Equals determines whether or not this type and the given type are identical.
func (p *TupleType) Equals(o Type) bool {
	q, ok := o.(*TupleType)
	//
	if !ok || len(p.Elements) != len(q.Elements) {
		return false
	}
	//
	for i, t := range p.Elements {
		if !t.Equals(q.Elements[i]) {
			return false
		}
	}
	//
	return true
}

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

// UnitType returns the type of functions which return nothing.
func UnitType() *TupleType {
	return &TupleType{}
}

// CircuitType is the semantic type of values of a given circuit.  Two circuit
// types are equal exactly when they reference the same declaration.
type CircuitType struct {
	// Declaration this type references.
	Circuit *Circuit
}

func (p *CircuitType) isType() {}

// Equals determines whether or not this type and the given type are identical.
func (p *CircuitType) Equals(o Type) bool {
	if q, ok := o.(*CircuitType); ok {
		return p.Circuit == q.Circuit
	}
	//
	return false
}

func (p *CircuitType) String() string { return p.Circuit.Name }

// ============================================================================
// Partial types
// ============================================================================

// PartialType represents an incomplete type pattern used to communicate
// expectations downward during bidirectional inference.  A nil PartialType
// denotes a complete wildcard (no expectation at all); within composite
// patterns, nil components likewise match anything.
type PartialType interface {
	// Matches determines whether or not the given complete type fits this
	// pattern.
	Matches(Type) bool
	// Produce a string representation of this pattern.
	String() string
}

// MatchesPartial determines whether or not the given type fits the given
// pattern, treating a nil pattern as a wildcard.
func MatchesPartial(p PartialType, t Type) bool {
	return p == nil || p.Matches(t)
}

// ExactType is a pattern which matches exactly one complete type.
type ExactType struct {
	// Type being matched.
	Type Type
}

// Matches determines whether or not the given complete type fits this pattern.
func (p *ExactType) Matches(t Type) bool {
	return p.Type.Equals(t)
}

func (p *ExactType) String() string { return p.Type.String() }

// PartialArray is a pattern matching array types, where the element pattern
// and the size are each independently optional.
type PartialArray struct {
	// Pattern the element type must fit, or nil for any element type.
	Element PartialType
	// Required size, if any.
	Size util.Option[uint]
}

// Matches determines whether or not the given complete type fits this pattern.
func (p *PartialArray) Matches(t Type) bool {
	array, ok := t.(*ArrayType)
	//
	if !ok {
		return false
	} else if p.Size.HasValue() && p.Size.Unwrap() != array.Size {
		return false
	}
	//
	return MatchesPartial(p.Element, array.Element)
}

func (p *PartialArray) String() string {
	element := "?"
	size := "?"
	//
	if p.Element != nil {
		element = p.Element.String()
	}
	//
	if p.Size.HasValue() {
		size = fmt.Sprintf("%d", p.Size.Unwrap())
	}
	//
	return fmt.Sprintf("[%s; %s]", element, size)
}

// PartialTuple is a pattern matching tuple types of a fixed arity, where each
// element pattern is independently optional.
type PartialTuple struct {
	// Patterns the element types must fit, where nil elements match anything.
	Elements []PartialType
}

// Matches determines whether or not the given complete type fits this pattern.
func (p *PartialTuple) Matches(t Type) bool {
	tuple, ok := t.(*TupleType)
	//
	if !ok || len(p.Elements) != len(tuple.Elements) {
		return false
	}
	//
	for i, e := range p.Elements {
		if !MatchesPartial(e, tuple.Elements[i]) {
			return false
		}
	}
	//
	return true
}

func (p *PartialTuple) String() string {
	var builder strings.Builder
	//
	builder.WriteString("(")
	//
	for i, e := range p.Elements {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		if e == nil {
			builder.WriteString("?")
		} else {
			builder.WriteString(e.String())
		}
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}

// ExpectType wraps a complete type as the pattern matching exactly that type,
// mapping nil to the wildcard pattern.
func ExpectType(t Type) PartialType {
	if t == nil {
		return nil
	}
	//
	return &ExactType{t}
}

// PartialString renders a pattern for use in diagnostics, treating nil as the
// wildcard pattern.
func PartialString(p PartialType) string {
	if p == nil {
		return "?"
	}
	//
	return p.String()
}
