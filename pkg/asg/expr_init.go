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

	"github.com/zirclang/zirc/pkg/ast"
	"github.com/zirclang/zirc/pkg/util"
)

// ArrayInline represents the construction of an array from an explicit list
// of elements.
type ArrayInline struct {
	nodeBase
	// Elements of the array being constructed.
	Elements []Expression
	// Type of this expression.
	typ *ArrayType
}

func (p *ArrayInline) isExpression() {}

// EnforceParents rewires the parent links of this expression's immediate
// children to point at this expression.
func (p *ArrayInline) EnforceParents() {
	for _, e := range p.Elements {
		e.SetParent(p)
	}
}

// Type returns the complete type of this expression.
func (p *ArrayInline) Type() Type { return p.typ }

// IsMutRef determines whether or not this expression denotes a mutable place.
func (p *ArrayInline) IsMutRef() bool { return false }

// ConstValue returns the compile-time value of this expression, or nil when
// the expression is not compile-time evaluable.
func (p *ArrayInline) ConstValue() ConstValue {
	elements := make([]ConstValue, len(p.Elements))
	//
	for i, e := range p.Elements {
		if elements[i] = e.ConstValue(); elements[i] == nil {
			return nil
		}
	}
	//
	return &ArrayValue{elements}
}

// IsConsty determines whether or not this expression is acceptable in a
// position requiring a compile-time constant.
func (p *ArrayInline) IsConsty() bool {
	for _, e := range p.Elements {
		if !e.IsConsty() {
			return false
		}
	}
	//
	return true
}

// ============================================================================
// Array repeat
// ============================================================================

// ArrayInit represents the construction of an array by repeating a single
// element a fixed number of times.
type ArrayInit struct {
	nodeBase
	// Element being repeated.
	Element Expression
	// Number of repetitions.
	Size uint
}

func (p *ArrayInit) isExpression() {}

// EnforceParents rewires the parent links of this expression's immediate
// children to point at this expression.
func (p *ArrayInit) EnforceParents() {
	p.Element.SetParent(p)
}

// Type returns the complete type of this expression.
func (p *ArrayInit) Type() Type {
	return &ArrayType{p.Element.Type(), p.Size}
}

// IsMutRef determines whether or not this expression denotes a mutable place.
func (p *ArrayInit) IsMutRef() bool { return false }

// ConstValue returns the compile-time value of this expression, or nil when
// the expression is not compile-time evaluable.
func (p *ArrayInit) ConstValue() ConstValue {
	element := p.Element.ConstValue()
	//
	if element == nil {
		return nil
	}
	//
	elements := make([]ConstValue, p.Size)
	//
	for i := range elements {
		elements[i] = element
	}
	//
	return &ArrayValue{elements}
}

// IsConsty determines whether or not this expression is acceptable in a
// position requiring a compile-time constant.
func (p *ArrayInit) IsConsty() bool { return p.Element.IsConsty() }

// ============================================================================
// Tuple construction
// ============================================================================

// TupleInit represents the construction of a tuple from its elements.
type TupleInit struct {
	nodeBase
	// Elements of the tuple being constructed.
	Elements []Expression
}

func (p *TupleInit) isExpression() {}

// EnforceParents rewires the parent links of this expression's immediate
// children to point at this expression.
func (p *TupleInit) EnforceParents() {
	for _, e := range p.Elements {
		e.SetParent(p)
	}
}

// Type returns the complete type of this expression.
func (p *TupleInit) Type() Type {
	elements := make([]Type, len(p.Elements))
	//
	for i, e := range p.Elements {
		elements[i] = e.Type()
	}
	//
	return &TupleType{elements}
}

// IsMutRef determines whether or not this expression denotes a mutable place.
func (p *TupleInit) IsMutRef() bool { return false }

// ConstValue returns the compile-time value of this expression, or nil when
// the expression is not compile-time evaluable.
func (p *TupleInit) ConstValue() ConstValue {
	elements := make([]ConstValue, len(p.Elements))
	//
	for i, e := range p.Elements {
		if elements[i] = e.ConstValue(); elements[i] == nil {
			return nil
		}
	}
	//
	return &TupleValue{elements}
}

// IsConsty determines whether or not this expression is acceptable in a
// position requiring a compile-time constant.
func (p *TupleInit) IsConsty() bool {
	for _, e := range p.Elements {
		if !e.IsConsty() {
			return false
		}
	}
	//
	return true
}

// ============================================================================
// Circuit construction
// ============================================================================

// CircuitInit represents the construction of a circuit value from its named
// fields.
type CircuitInit struct {
	nodeBase
	// Circuit being constructed.
	Circuit *Circuit
	// Field initialisers, in written order.
	Members []CircuitInitField
}

// CircuitInitField is a single named field initialiser within a circuit
// construction.
type CircuitInitField struct {
	// Name of the field being initialised.
	Name string
	// Value assigned to the field.
	Value Expression
}

func (p *CircuitInit) isExpression() {}

// EnforceParents rewires the parent links of this expression's immediate
// children to point at this expression.
func (p *CircuitInit) EnforceParents() {
	for _, m := range p.Members {
		m.Value.SetParent(p)
	}
}

// Type returns the complete type of this expression.
func (p *CircuitInit) Type() Type { return &CircuitType{p.Circuit} }

// IsMutRef determines whether or not this expression denotes a mutable place.
func (p *CircuitInit) IsMutRef() bool { return false }

// ConstValue returns the compile-time value of this expression, or nil when
// the expression is not compile-time evaluable.
func (p *CircuitInit) ConstValue() ConstValue { return nil }

// IsConsty determines whether or not this expression is acceptable in a
// position requiring a compile-time constant.
func (p *CircuitInit) IsConsty() bool { return false }

// ============================================================================
// Conversion
// ============================================================================

// arrayExpectation splits an expectation over an array into expectations over
// its element type and size.
func arrayExpectation(expected PartialType, node ast.Node) (PartialType, util.Option[uint], *Error) {
	switch expected := expected.(type) {
	case nil:
		return nil, util.None[uint](), nil
	case *PartialArray:
		return expected.Element, expected.Size, nil
	case *ExactType:
		if typ, ok := expected.Type.(*ArrayType); ok {
			return ExpectType(typ.Element), util.Some(typ.Size), nil
		}
	}
	//
	return nil, util.None[uint](), errUnexpectedType(PartialString(expected), "array", node.Location())
}

func arrayInlineFromAst(scope *Scope, expr *ast.ArrayInlineExpression, expected PartialType) (Expression, *Error) {
	hint, size, err := arrayExpectation(expected, expr)
	if err != nil {
		return nil, err
	}
	//
	if size.HasValue() && size.Unwrap() != uint(len(expr.Elements)) {
		return nil, errUnexpectedType(PartialString(expected),
			fmt.Sprintf("array of size %d", len(expr.Elements)), expr.Span)
	}
	//
	if len(expr.Elements) == 0 && hint == nil {
		return nil, errUnexpectedType("?", "empty array of unknown type", expr.Span)
	}
	//
	elements := make([]Expression, len(expr.Elements))
	//
	for i, e := range expr.Elements {
		if elements[i], err = expressionFromAst(scope, e, hint); err != nil {
			return nil, err
		}
		// Subsequent elements must agree with the first.
		if i == 0 {
			hint = ExpectType(elements[0].Type())
		}
	}
	//
	var element Type
	//
	if len(elements) > 0 {
		element = elements[0].Type()
	} else if exact, ok := hint.(*ExactType); ok {
		element = exact.Type
	} else {
		return nil, errUnexpectedType(PartialString(hint), "empty array of unknown type", expr.Span)
	}
	//
	typ := &ArrayType{element, uint(len(elements))}
	//
	return &ArrayInline{newNodeBase(scope, expr.Span), elements, typ}, nil
}

func arrayInitFromAst(scope *Scope, expr *ast.ArrayInitExpression, expected PartialType) (Expression, *Error) {
	hint, size, err := arrayExpectation(expected, expr)
	if err != nil {
		return nil, err
	}
	//
	if size.HasValue() && size.Unwrap() != expr.Size {
		return nil, errUnexpectedType(PartialString(expected),
			fmt.Sprintf("array of size %d", expr.Size), expr.Span)
	}
	//
	element, err := expressionFromAst(scope, expr.Element, hint)
	if err != nil {
		return nil, err
	}
	//
	return &ArrayInit{newNodeBase(scope, expr.Span), element, expr.Size}, nil
}

func tupleInitFromAst(scope *Scope, expr *ast.TupleInitExpression, expected PartialType) (Expression, *Error) {
	// Split the expectation into per-element expectations.
	hints := make([]PartialType, len(expr.Elements))
	//
	switch expected := expected.(type) {
	case nil:
	case *PartialTuple:
		if len(expected.Elements) != len(expr.Elements) {
			return nil, errUnexpectedType(expected.String(),
				fmt.Sprintf("tuple of %d element(s)", len(expr.Elements)), expr.Span)
		}
		//
		copy(hints, expected.Elements)
	case *ExactType:
		typ, ok := expected.Type.(*TupleType)
		//
		if !ok || len(typ.Elements) != len(expr.Elements) {
			return nil, errUnexpectedType(expected.String(),
				fmt.Sprintf("tuple of %d element(s)", len(expr.Elements)), expr.Span)
		}
		//
		for i, t := range typ.Elements {
			hints[i] = ExpectType(t)
		}
	default:
		return nil, errUnexpectedType(PartialString(expected), "tuple", expr.Span)
	}
	//
	elements := make([]Expression, len(expr.Elements))
	//
	for i, e := range expr.Elements {
		element, err := expressionFromAst(scope, e, hints[i])
		if err != nil {
			return nil, err
		}
		//
		elements[i] = element
	}
	//
	return &TupleInit{newNodeBase(scope, expr.Span), elements}, nil
}

func circuitInitFromAst(scope *Scope, expr *ast.CircuitInitExpression, expected PartialType) (Expression, *Error) {
	circuit := scope.ResolveCircuit(expr.Name.Name)
	//
	if circuit == nil {
		return nil, errUnresolvedCircuit(expr.Name.Name, expr.Name.Span)
	}
	//
	if err := checkExpected(expected, &CircuitType{circuit}, expr); err != nil {
		return nil, err
	}
	//
	var (
		members = make([]CircuitInitField, len(expr.Members))
		seen    = make(map[string]bool)
	)
	//
	for i, m := range expr.Members {
		field, ok := circuit.Member(m.Name.Name).(*CircuitField)
		//
		if !ok {
			return nil, errUnresolvedCircuitMember(circuit.Name, m.Name.Name, m.Name.Span)
		} else if seen[m.Name.Name] {
			return nil, errDuplicateDefinition(m.Name.Name, m.Name.Span)
		}
		//
		seen[m.Name.Name] = true
		//
		value, err := expressionFromAst(scope, m.Value, ExpectType(field.Type))
		if err != nil {
			return nil, err
		}
		//
		members[i] = CircuitInitField{field.Name, value}
	}
	// Every field of the circuit must be initialised.
	for _, m := range circuit.Members {
		if field, ok := m.(*CircuitField); ok && !seen[field.Name] {
			return nil, errIllegalStructure(expr.Span, "missing initialiser for field \"%s\"", field.Name)
		}
	}
	//
	return &CircuitInit{newNodeBase(scope, expr.Span), circuit, members}, nil
}
