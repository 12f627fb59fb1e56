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
)

// BinaryExpression represents the application of a binary operator to two
// typed operands.
type BinaryExpression struct {
	nodeBase
	// Operator being applied.
	Op ast.BinaryOperation
	// Left operand.
	Left Expression
	// Right operand.
	Right Expression
	// Type of this expression.
	typ Type
}

func (p *BinaryExpression) isExpression() {}

// EnforceParents rewires the parent links of this expression's immediate
// children to point at this expression.
func (p *BinaryExpression) EnforceParents() {
	p.Left.SetParent(p)
	p.Right.SetParent(p)
}

// Type returns the complete type of this expression.
func (p *BinaryExpression) Type() Type { return p.typ }

// IsMutRef determines whether or not this expression denotes a mutable place.
func (p *BinaryExpression) IsMutRef() bool { return false }

// ConstValue returns the compile-time value of this expression, or nil when
// the expression is not compile-time evaluable.
func (p *BinaryExpression) ConstValue() ConstValue {
	left := p.Left.ConstValue()
	right := p.Right.ConstValue()
	//
	if left == nil || right == nil {
		return nil
	}
	//
	return FoldBinary(p.Op, left, right)
}

// IsConsty determines whether or not this expression is acceptable in a
// position requiring a compile-time constant.
func (p *BinaryExpression) IsConsty() bool {
	return p.Left.IsConsty() && p.Right.IsConsty()
}

// ============================================================================
// Unary
// ============================================================================

// UnaryExpression represents the application of a unary operator to a typed
// operand.
type UnaryExpression struct {
	nodeBase
	// Operator being applied.
	Op ast.UnaryOperation
	// Operand of this expression.
	Inner Expression
}

func (p *UnaryExpression) isExpression() {}

// EnforceParents rewires the parent links of this expression's immediate
// children to point at this expression.
func (p *UnaryExpression) EnforceParents() {
	p.Inner.SetParent(p)
}

// Type returns the complete type of this expression.
func (p *UnaryExpression) Type() Type { return p.Inner.Type() }

// IsMutRef determines whether or not this expression denotes a mutable place.
func (p *UnaryExpression) IsMutRef() bool { return false }

// ConstValue returns the compile-time value of this expression, or nil when
// the expression is not compile-time evaluable.
func (p *UnaryExpression) ConstValue() ConstValue {
	if inner := p.Inner.ConstValue(); inner != nil {
		return FoldUnary(p.Op, inner)
	}
	//
	return nil
}

// IsConsty determines whether or not this expression is acceptable in a
// position requiring a compile-time constant.
func (p *UnaryExpression) IsConsty() bool { return p.Inner.IsConsty() }

// ============================================================================
// Ternary
// ============================================================================

// TernaryExpression represents a conditional expression, whose branches agree
// in type.
type TernaryExpression struct {
	nodeBase
	// Condition being branched upon.
	Condition Expression
	// Value taken when the condition holds.
	IfTrue Expression
	// Value taken when the condition does not hold.
	IfFalse Expression
}

func (p *TernaryExpression) isExpression() {}

// EnforceParents rewires the parent links of this expression's immediate
// children to point at this expression.
func (p *TernaryExpression) EnforceParents() {
	p.Condition.SetParent(p)
	p.IfTrue.SetParent(p)
	p.IfFalse.SetParent(p)
}

// Type returns the complete type of this expression.
func (p *TernaryExpression) Type() Type { return p.IfTrue.Type() }

// IsMutRef determines whether or not this expression denotes a mutable place.
func (p *TernaryExpression) IsMutRef() bool { return false }

// ConstValue returns the compile-time value of this expression, or nil when
// the expression is not compile-time evaluable.
func (p *TernaryExpression) ConstValue() ConstValue {
	if condition, ok := p.Condition.ConstValue().(*BoolValue); ok {
		if condition.Value {
			return p.IfTrue.ConstValue()
		}
		//
		return p.IfFalse.ConstValue()
	}
	//
	return nil
}

// IsConsty determines whether or not this expression is acceptable in a
// position requiring a compile-time constant.
func (p *TernaryExpression) IsConsty() bool {
	return p.Condition.IsConsty() && p.IfTrue.IsConsty() && p.IfFalse.IsConsty()
}

// ============================================================================
// Conversion
// ============================================================================

func binaryFromAst(scope *Scope, expr *ast.BinaryExpression, expected PartialType) (Expression, *Error) {
	var hint PartialType
	// Determine the expectation flowing into the operands.  For numeric
	// operators the result type is the operand type, so the surrounding
	// expectation applies directly; boolean operators fix their operands;
	// comparisons and equalities constrain only that the operands agree.
	switch expr.Op.Class() {
	case ast.NumericOperation:
		hint = expected
	case ast.BooleanOperation:
		hint = ExpectType(&BooleanType{})
	}
	//
	left, right, err := convertOperands(scope, expr.Left, expr.Right, hint)
	if err != nil {
		return nil, err
	}
	//
	if err := checkOperands(expr, left, right); err != nil {
		return nil, err
	}
	//
	typ := left.Type()
	//
	if expr.Op.Class() != ast.NumericOperation {
		typ = &BooleanType{}
	}
	//
	if err := checkExpected(expected, typ, expr); err != nil {
		return nil, err
	}
	//
	return &BinaryExpression{newNodeBase(scope, expr.Span), expr.Op, left, right, typ}, nil
}

// convertOperands converts the two operands of a symmetric operator.  When the
// left operand cannot be converted under the given hint alone (e.g. it is an
// untyped literal), the right operand is converted first and its type fed back
// into the left.
func convertOperands(scope *Scope, l ast.Expression, r ast.Expression, hint PartialType) (Expression, Expression, *Error) {
	left, err := expressionFromAst(scope, l, hint)
	//
	if err != nil {
		right, rerr := expressionFromAst(scope, r, hint)
		if rerr != nil {
			return nil, nil, err
		}
		//
		if left, err = expressionFromAst(scope, l, ExpectType(right.Type())); err != nil {
			return nil, nil, err
		}
		//
		return left, right, nil
	}
	//
	right, err := expressionFromAst(scope, r, ExpectType(left.Type()))
	if err != nil {
		return nil, nil, err
	}
	//
	return left, right, nil
}

// checkOperands verifies the (agreed) operand type is admissible for the given
// operator.
func checkOperands(expr *ast.BinaryExpression, left Expression, right Expression) *Error {
	typ := left.Type()
	//
	switch expr.Op.Class() {
	case ast.NumericOperation:
		switch typ.(type) {
		case *IntegerType, *FieldType:
		case *GroupType:
			if expr.Op != ast.Add && expr.Op != ast.Sub {
				return errUnexpectedType("integer or field", typ.String(), expr.Left.Location())
			}
		default:
			return errUnexpectedType("integer, field or group", typ.String(), expr.Left.Location())
		}
	case ast.ComparisonOperation:
		if _, ok := typ.(*IntegerType); !ok {
			return errUnexpectedType("integer", typ.String(), expr.Left.Location())
		}
	}
	//
	return nil
}

func unaryFromAst(scope *Scope, expr *ast.UnaryExpression, expected PartialType) (Expression, *Error) {
	hint := expected
	//
	if expr.Op == ast.Not {
		hint = ExpectType(&BooleanType{})
	}
	//
	inner, err := expressionFromAst(scope, expr.Inner, hint)
	if err != nil {
		return nil, err
	}
	//
	switch typ := inner.Type().(type) {
	case *BooleanType:
		if expr.Op != ast.Not {
			return nil, errUnexpectedType("signed integer, field or group", typ.String(), expr.Inner.Location())
		}
	case *FieldType, *GroupType:
	case *IntegerType:
		if !typ.Kind.Signed() {
			return nil, errUnexpectedType("signed integer, field or group", typ.String(), expr.Inner.Location())
		}
	default:
		return nil, errUnexpectedType("signed integer, field or group", typ.String(), expr.Inner.Location())
	}
	//
	if err := checkExpected(expected, inner.Type(), expr); err != nil {
		return nil, err
	}
	//
	return &UnaryExpression{newNodeBase(scope, expr.Span), expr.Op, inner}, nil
}

func ternaryFromAst(scope *Scope, expr *ast.TernaryExpression, expected PartialType) (Expression, *Error) {
	condition, err := expressionFromAst(scope, expr.Condition, ExpectType(&BooleanType{}))
	if err != nil {
		return nil, err
	}
	//
	ifTrue, ifFalse, err := convertOperands(scope, expr.IfTrue, expr.IfFalse, expected)
	if err != nil {
		return nil, err
	}
	//
	if !ifTrue.Type().Equals(ifFalse.Type()) {
		return nil, errUnexpectedType(ifTrue.Type().String(), ifFalse.Type().String(), expr.IfFalse.Location())
	}
	//
	return &TernaryExpression{newNodeBase(scope, expr.Span), condition, ifTrue, ifFalse}, nil
}
