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
	"github.com/zirclang/zirc/pkg/ast"
	"github.com/zirclang/zirc/pkg/util"
)

// CircuitAccess represents the read of a named field of a circuit value.
type CircuitAccess struct {
	nodeBase
	// Circuit value whose field is being read.
	Target Expression
	// Circuit declaration being accessed.
	Circuit *Circuit
	// Name of the field being read.
	Member string
	// Type of this expression.
	typ Type
}

func (p *CircuitAccess) isExpression() {}

// EnforceParents rewires the parent links of this expression's immediate
// children to point at this expression.
func (p *CircuitAccess) EnforceParents() {
	p.Target.SetParent(p)
}

// Type returns the complete type of this expression.
func (p *CircuitAccess) Type() Type { return p.typ }

// IsMutRef determines whether or not this expression denotes a mutable place.
// A field of a mutable place is itself mutable.
func (p *CircuitAccess) IsMutRef() bool { return p.Target.IsMutRef() }

// ConstValue returns the compile-time value of this expression, or nil when
// the expression is not compile-time evaluable.
func (p *CircuitAccess) ConstValue() ConstValue { return nil }

// IsConsty determines whether or not this expression is acceptable in a
// position requiring a compile-time constant.
func (p *CircuitAccess) IsConsty() bool { return p.Target.IsConsty() }

// ============================================================================
// Array access
// ============================================================================

// ArrayAccess represents indexing into an array value.
type ArrayAccess struct {
	nodeBase
	// Array being indexed.
	Array Expression
	// Index being accessed.
	Index Expression
}

func (p *ArrayAccess) isExpression() {}

// EnforceParents rewires the parent links of this expression's immediate
// children to point at this expression.
func (p *ArrayAccess) EnforceParents() {
	p.Array.SetParent(p)
	p.Index.SetParent(p)
}

// Type returns the complete type of this expression.
func (p *ArrayAccess) Type() Type {
	return p.Array.Type().(*ArrayType).Element
}

// IsMutRef determines whether or not this expression denotes a mutable place.
// An element of a mutable place is itself mutable.
func (p *ArrayAccess) IsMutRef() bool { return p.Array.IsMutRef() }

// ConstValue returns the compile-time value of this expression, or nil when
// the expression is not compile-time evaluable.
func (p *ArrayAccess) ConstValue() ConstValue {
	array, ok := p.Array.ConstValue().(*ArrayValue)
	index, iok := p.Index.ConstValue().(*IntValue)
	//
	if !ok || !iok {
		return nil
	}
	//
	if i, ok := index.AsUint(); ok && i < uint(len(array.Elements)) {
		return array.Elements[i]
	}
	//
	return nil
}

// IsConsty determines whether or not this expression is acceptable in a
// position requiring a compile-time constant.
func (p *ArrayAccess) IsConsty() bool {
	return p.Array.IsConsty() && p.Index.IsConsty()
}

// ============================================================================
// Tuple access
// ============================================================================

// TupleAccess represents positional access into a tuple value.
type TupleAccess struct {
	nodeBase
	// Tuple being accessed.
	Tuple Expression
	// Position being accessed.
	Index uint
}

func (p *TupleAccess) isExpression() {}

// EnforceParents rewires the parent links of this expression's immediate
// children to point at this expression.
func (p *TupleAccess) EnforceParents() {
	p.Tuple.SetParent(p)
}

// Type returns the complete type of this expression.
func (p *TupleAccess) Type() Type {
	return p.Tuple.Type().(*TupleType).Elements[p.Index]
}

// IsMutRef determines whether or not this expression denotes a mutable place.
// An element of a mutable place is itself mutable.
func (p *TupleAccess) IsMutRef() bool { return p.Tuple.IsMutRef() }

// ConstValue returns the compile-time value of this expression, or nil when
// the expression is not compile-time evaluable.
func (p *TupleAccess) ConstValue() ConstValue {
	if tuple, ok := p.Tuple.ConstValue().(*TupleValue); ok {
		return tuple.Elements[p.Index]
	}
	//
	return nil
}

// IsConsty determines whether or not this expression is acceptable in a
// position requiring a compile-time constant.
func (p *TupleAccess) IsConsty() bool { return p.Tuple.IsConsty() }

// ============================================================================
// Conversion
// ============================================================================

func circuitAccessFromAst(scope *Scope, expr *ast.MemberAccess, expected PartialType) (Expression, *Error) {
	target, err := expressionFromAst(scope, expr.Target, nil)
	if err != nil {
		return nil, err
	}
	//
	typ, ok := target.Type().(*CircuitType)
	if !ok {
		return nil, errUnexpectedType("circuit", target.Type().String(), expr.Target.Location())
	}
	//
	member := typ.Circuit.Member(expr.Name.Name)
	if member == nil {
		return nil, errUnresolvedCircuitMember(typ.Circuit.Name, expr.Name.Name, expr.Name.Span)
	}
	//
	field, ok := member.(*CircuitField)
	if !ok {
		return nil, errIllegalStructure(expr.Span, "member function \"%s\" is only valid as a call target", expr.Name.Name)
	}
	//
	if err := checkExpected(expected, field.Type, expr); err != nil {
		return nil, err
	}
	//
	return &CircuitAccess{newNodeBase(scope, expr.Span), target, typ.Circuit, field.Name, field.Type}, nil
}

func arrayAccessFromAst(scope *Scope, expr *ast.ArrayAccessExpression, expected PartialType) (Expression, *Error) {
	array, err := expressionFromAst(scope, expr.Array, &PartialArray{expected, util.None[uint]()})
	if err != nil {
		return nil, err
	}
	//
	// Indices can take any integer type; untyped literals default to u32.
	index, err := expressionFromAst(scope, expr.Index, nil)
	if err != nil {
		if index, err = expressionFromAst(scope, expr.Index, ExpectType(&IntegerType{ast.U32})); err != nil {
			return nil, err
		}
	}
	//
	if _, ok := index.Type().(*IntegerType); !ok {
		return nil, errUnexpectedType("integer", index.Type().String(), expr.Index.Location())
	}
	// Reject constant indices which are provably out of bounds.
	size := array.Type().(*ArrayType).Size
	//
	if value, ok := index.ConstValue().(*IntValue); ok {
		if i, ok := value.AsUint(); !ok || i >= size {
			return nil, errIndexOutOfBounds(i, size, expr.Index.Location())
		}
	}
	//
	return &ArrayAccess{newNodeBase(scope, expr.Span), array, index}, nil
}

func tupleAccessFromAst(scope *Scope, expr *ast.TupleAccessExpression, expected PartialType) (Expression, *Error) {
	tuple, err := expressionFromAst(scope, expr.Tuple, nil)
	if err != nil {
		return nil, err
	}
	//
	typ, ok := tuple.Type().(*TupleType)
	if !ok {
		return nil, errUnexpectedType("tuple", tuple.Type().String(), expr.Tuple.Location())
	}
	//
	if expr.Index >= uint(len(typ.Elements)) {
		return nil, errIndexOutOfBounds(expr.Index, uint(len(typ.Elements)), expr.Span)
	}
	//
	if err := checkExpected(expected, typ.Elements[expr.Index], expr); err != nil {
		return nil, err
	}
	//
	return &TupleAccess{newNodeBase(scope, expr.Span), tuple, expr.Index}, nil
}
