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
	"math/big"
	"strings"

	"fortio.org/safecast"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/twistededwards"
	"github.com/zirclang/zirc/pkg/ast"
)

// ConstValue represents a value known at compile time.  Constant values drive
// const-parameter checking, loop unrolling and the constant folding pass.
type ConstValue interface {
	isConstValue()
	// Equals determines whether or not this value and the given value are
	// identical (including in type).
	Equals(ConstValue) bool
	// Produce a string representation of this value.
	String() string
}

// ============================================================================
// Integer values
// ============================================================================

// IntValue is a compile-time constant of some fixed-width integer type.  The
// value is always within the range of its type.
type IntValue struct {
	// Type of this value.
	Kind ast.IntegerType
	// Value held, within the range of the type.
	Value *big.Int
}

// NewIntValue constructs an integer constant of the given type, returning nil
// if the value lies outside the range of the type.
func NewIntValue(kind ast.IntegerType, value *big.Int) *IntValue {
	lo, hi := integerBounds(kind)
	//
	if value.Cmp(lo) < 0 || value.Cmp(hi) > 0 {
		return nil
	}
	//
	return &IntValue{kind, value}
}

// integerBounds returns the inclusive bounds of the given integer type.
func integerBounds(kind ast.IntegerType) (*big.Int, *big.Int) {
	width := kind.BitWidth()
	one := big.NewInt(1)
	//
	if kind.Signed() {
		hi := new(big.Int).Lsh(one, width-1)
		lo := new(big.Int).Neg(hi)
		//
		return lo, hi.Sub(hi, one)
	}
	//
	hi := new(big.Int).Lsh(one, width)
	//
	return big.NewInt(0), hi.Sub(hi, one)
}

func (p *IntValue) isConstValue() {}

// Equals determines whether or not this value and the given value are
// identical (including in type).
func (p *IntValue) Equals(o ConstValue) bool {
	if q, ok := o.(*IntValue); ok {
		return p.Kind == q.Kind && p.Value.Cmp(q.Value) == 0
	}
	//
	return false
}

func (p *IntValue) String() string {
	return fmt.Sprintf("%s%s", p.Value.String(), p.Kind.String())
}

// AsUint narrows this value to a machine uint, returning false if it does not
// fit.
func (p *IntValue) AsUint() (uint, bool) {
	if !p.Value.IsUint64() {
		return 0, false
	}
	//
	value, err := safecast.Convert[uint](p.Value.Uint64())
	//
	return value, err == nil
}

// ============================================================================
// Field values
// ============================================================================

// FieldValue is a compile-time constant element of the scalar field.
type FieldValue struct {
	// Value held, reduced into the field.
	Value fr.Element
}

// NewFieldValue constructs a field constant from the given integer, reducing
// it into the field.
func NewFieldValue(value *big.Int) *FieldValue {
	var element fr.Element
	//
	element.SetBigInt(value)
	//
	return &FieldValue{element}
}

func (p *FieldValue) isConstValue() {}

// Equals determines whether or not this value and the given value are
// identical (including in type).
func (p *FieldValue) Equals(o ConstValue) bool {
	if q, ok := o.(*FieldValue); ok {
		return p.Value.Equal(&q.Value)
	}
	//
	return false
}

func (p *FieldValue) String() string {
	return fmt.Sprintf("%sfield", p.Value.String())
}

// ============================================================================
// Group values
// ============================================================================

// GroupValue is a compile-time constant point of the embedded curve group.
type GroupValue struct {
	// Point held.
	Value twistededwards.PointAffine
}

// NewGroupValue constructs a group constant as the given scalar multiple of
// the fixed group generator.
func NewGroupValue(scalar *big.Int) *GroupValue {
	var point twistededwards.PointAffine
	//
	curve := twistededwards.GetEdwardsCurve()
	point.ScalarMultiplication(&curve.Base, scalar)
	//
	return &GroupValue{point}
}

func (p *GroupValue) isConstValue() {}

// Equals determines whether or not this value and the given value are
// identical (including in type).
func (p *GroupValue) Equals(o ConstValue) bool {
	if q, ok := o.(*GroupValue); ok {
		return p.Value.Equal(&q.Value)
	}
	//
	return false
}

func (p *GroupValue) String() string {
	return fmt.Sprintf("(%s, %s)group", p.Value.X.String(), p.Value.Y.String())
}

// ============================================================================
// Remaining scalar values
// ============================================================================

// BoolValue is a compile-time constant boolean.
type BoolValue struct {
	// Value held.
	Value bool
}

func (p *BoolValue) isConstValue() {}

// Equals determines whether or not this value and the given value are
// identical (including in type).
func (p *BoolValue) Equals(o ConstValue) bool {
	if q, ok := o.(*BoolValue); ok {
		return p.Value == q.Value
	}
	//
	return false
}

func (p *BoolValue) String() string {
	return fmt.Sprintf("%t", p.Value)
}

// AddressValue is a compile-time constant account address.
type AddressValue struct {
	// Textual form of the address held.
	Value string
}

func (p *AddressValue) isConstValue() {}

// Equals determines whether or not this value and the given value are
// identical (including in type).
func (p *AddressValue) Equals(o ConstValue) bool {
	if q, ok := o.(*AddressValue); ok {
		return p.Value == q.Value
	}
	//
	return false
}

func (p *AddressValue) String() string { return p.Value }

// CharValue is a compile-time constant character.
type CharValue struct {
	// Value held.
	Value rune
}

func (p *CharValue) isConstValue() {}

// Equals determines whether or not this value and the given value are
// identical (including in type).
func (p *CharValue) Equals(o ConstValue) bool {
	if q, ok := o.(*CharValue); ok {
		return p.Value == q.Value
	}
	//
	return false
}

func (p *CharValue) String() string {
	return fmt.Sprintf("'%c'", p.Value)
}

// ============================================================================
// Composite values
// ============================================================================

// ArrayValue is a compile-time constant array.
type ArrayValue struct {
	// Elements held, all of one type.
	Elements []ConstValue
}

func (p *ArrayValue) isConstValue() {}

// Equals determines whether or not this value and the given value are
// identical (including in type).
func (p *ArrayValue) Equals(o ConstValue) bool {
	q, ok := o.(*ArrayValue)
	//
	if !ok || len(p.Elements) != len(q.Elements) {
		return false
	}
	//
	for i, e := range p.Elements {
		if !e.Equals(q.Elements[i]) {
			return false
		}
	}
	//
	return true
}

func (p *ArrayValue) String() string {
	var builder strings.Builder
	//
	builder.WriteString("[")
	//
	for i, e := range p.Elements {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(e.String())
	}
	//
	builder.WriteString("]")
	//
	return builder.String()
}

// TupleValue is a compile-time constant tuple.
type TupleValue struct {
	// Elements held.
	Elements []ConstValue
}

func (p *TupleValue) isConstValue() {}

// Equals determines whether or not this value and the given value are
// identical (including in type).
func (p *TupleValue) Equals(o ConstValue) bool {
	q, ok := o.(*TupleValue)
	//
	if !ok || len(p.Elements) != len(q.Elements) {
		return false
	}
	//
	for i, e := range p.Elements {
		if !e.Equals(q.Elements[i]) {
			return false
		}
	}
	//
	return true
}

func (p *TupleValue) String() string {
	var builder strings.Builder
	//
	builder.WriteString("(")
	//
	for i, e := range p.Elements {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(e.String())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}

// ============================================================================
// Folding
// ============================================================================

// FoldBinary applies a binary operator to two constant operands, returning nil
// when the operation cannot be evaluated at compile time (e.g. division by
// zero, or overflow of the result type).
func FoldBinary(op ast.BinaryOperation, left ConstValue, right ConstValue) ConstValue {
	switch op.Class() {
	case ast.NumericOperation:
		return foldNumeric(op, left, right)
	case ast.BooleanOperation:
		return foldBoolean(op, left, right)
	case ast.ComparisonOperation:
		return foldComparison(op, left, right)
	case ast.EqualityOperation:
		result := left.Equals(right)
		//
		if op == ast.Ne {
			result = !result
		}
		//
		return &BoolValue{result}
	}
	//
	panic("unreachable")
}

func foldNumeric(op ast.BinaryOperation, left ConstValue, right ConstValue) ConstValue {
	switch l := left.(type) {
	case *IntValue:
		if r, ok := right.(*IntValue); ok && l.Kind == r.Kind {
			return foldInt(op, l, r)
		}
	case *FieldValue:
		if r, ok := right.(*FieldValue); ok {
			return foldField(op, l, r)
		}
	case *GroupValue:
		if r, ok := right.(*GroupValue); ok {
			return foldGroup(op, l, r)
		}
	}
	//
	return nil
}

func foldInt(op ast.BinaryOperation, left *IntValue, right *IntValue) ConstValue {
	result := new(big.Int)
	//
	switch op {
	case ast.Add:
		result.Add(left.Value, right.Value)
	case ast.Sub:
		result.Sub(left.Value, right.Value)
	case ast.Mul:
		result.Mul(left.Value, right.Value)
	case ast.Div:
		if right.Value.Sign() == 0 {
			return nil
		}
		//
		result.Quo(left.Value, right.Value)
	case ast.Pow:
		exponent, ok := right.AsUint()
		if !ok || exponent > right.Kind.BitWidth() {
			return nil
		}
		//
		result.Exp(left.Value, big.NewInt(int64(exponent)), nil)
	default:
		return nil
	}
	// Reject results outside the range of the type.
	if folded := NewIntValue(left.Kind, result); folded != nil {
		return folded
	}
	//
	return nil
}

func foldField(op ast.BinaryOperation, left *FieldValue, right *FieldValue) ConstValue {
	var result fr.Element
	//
	switch op {
	case ast.Add:
		result.Add(&left.Value, &right.Value)
	case ast.Sub:
		result.Sub(&left.Value, &right.Value)
	case ast.Mul:
		result.Mul(&left.Value, &right.Value)
	case ast.Div:
		if right.Value.IsZero() {
			return nil
		}
		//
		result.Div(&left.Value, &right.Value)
	case ast.Pow:
		var exponent big.Int
		//
		right.Value.BigInt(&exponent)
		result.Exp(left.Value, &exponent)
	default:
		return nil
	}
	//
	return &FieldValue{result}
}

func foldGroup(op ast.BinaryOperation, left *GroupValue, right *GroupValue) ConstValue {
	var result twistededwards.PointAffine
	//
	switch op {
	case ast.Add:
		result.Add(&left.Value, &right.Value)
	case ast.Sub:
		var negated twistededwards.PointAffine
		//
		negated.Neg(&right.Value)
		result.Add(&left.Value, &negated)
	default:
		return nil
	}
	//
	return &GroupValue{result}
}

func foldBoolean(op ast.BinaryOperation, left ConstValue, right ConstValue) ConstValue {
	l, lok := left.(*BoolValue)
	r, rok := right.(*BoolValue)
	//
	if !lok || !rok {
		return nil
	}
	//
	switch op {
	case ast.And:
		return &BoolValue{l.Value && r.Value}
	case ast.Or:
		return &BoolValue{l.Value || r.Value}
	}
	//
	return nil
}

// foldComparison evaluates an ordering operator.  Orderings are only defined
// on integers.
func foldComparison(op ast.BinaryOperation, left ConstValue, right ConstValue) ConstValue {
	l, lok := left.(*IntValue)
	r, rok := right.(*IntValue)
	//
	if !lok || !rok || l.Kind != r.Kind {
		return nil
	}
	//
	cmp := l.Value.Cmp(r.Value)
	//
	switch op {
	case ast.Lt:
		return &BoolValue{cmp < 0}
	case ast.Le:
		return &BoolValue{cmp <= 0}
	case ast.Gt:
		return &BoolValue{cmp > 0}
	case ast.Ge:
		return &BoolValue{cmp >= 0}
	}
	//
	return nil
}

// FoldUnary applies a unary operator to a constant operand, returning nil when
// the operation cannot be evaluated at compile time.
func FoldUnary(op ast.UnaryOperation, inner ConstValue) ConstValue {
	switch op {
	case ast.Not:
		if b, ok := inner.(*BoolValue); ok {
			return &BoolValue{!b.Value}
		}
	case ast.Negate:
		switch v := inner.(type) {
		case *IntValue:
			if folded := NewIntValue(v.Kind, new(big.Int).Neg(v.Value)); folded != nil {
				return folded
			}
		case *FieldValue:
			var result fr.Element
			//
			result.Neg(&v.Value)
			//
			return &FieldValue{result}
		case *GroupValue:
			var result twistededwards.PointAffine
			//
			result.Neg(&v.Value)
			//
			return &GroupValue{result}
		}
	}
	//
	return nil
}
