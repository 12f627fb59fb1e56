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
	"github.com/zirclang/zirc/pkg/util/source"
)

// Expression represents an arbitrary expression in the syntax tree.  The set
// of expression forms is closed; semantic-graph construction dispatches on the
// concrete form of each expression.
type Expression interface {
	Node
	isExpression()
}

// BinaryOperation identifies a binary operator.
type BinaryOperation string

const (
	// Add represents the addition operator.
	Add BinaryOperation = "add"
	// Sub represents the subtraction operator.
	Sub BinaryOperation = "sub"
	// Mul represents the multiplication operator.
	Mul BinaryOperation = "mul"
	// Div represents the division operator.
	Div BinaryOperation = "div"
	// Pow represents the exponentiation operator.
	Pow BinaryOperation = "pow"
	// Or represents the logical disjunction operator.
	Or BinaryOperation = "or"
	// And represents the logical conjunction operator.
	And BinaryOperation = "and"
	// Eq represents the equality operator.
	Eq BinaryOperation = "eq"
	// Ne represents the inequality operator.
	Ne BinaryOperation = "ne"
	// Ge represents the greater-than-or-equal operator.
	Ge BinaryOperation = "ge"
	// Gt represents the greater-than operator.
	Gt BinaryOperation = "gt"
	// Le represents the less-than-or-equal operator.
	Le BinaryOperation = "le"
	// Lt represents the less-than operator.
	Lt BinaryOperation = "lt"
)

// OperationClass partitions the binary operators by the typing discipline they
// follow.
type OperationClass uint8

const (
	// NumericOperation covers operators whose operand and result types
	// coincide (e.g. addition).
	NumericOperation OperationClass = iota
	// BooleanOperation covers operators over booleans (e.g. conjunction).
	BooleanOperation
	// ComparisonOperation covers ordering operators, whose operands are
	// numeric but whose result is boolean.
	ComparisonOperation
	// EqualityOperation covers (in)equality, whose operands merely agree in
	// type and whose result is boolean.
	EqualityOperation
)

// Class returns the typing discipline this operator follows.
func (op BinaryOperation) Class() OperationClass {
	switch op {
	case Add, Sub, Mul, Div, Pow:
		return NumericOperation
	case Or, And:
		return BooleanOperation
	case Ge, Gt, Le, Lt:
		return ComparisonOperation
	case Eq, Ne:
		return EqualityOperation
	}
	//
	panic("unknown binary operation")
}

// UnaryOperation identifies a unary operator.
type UnaryOperation string

const (
	// Not represents logical negation.
	Not UnaryOperation = "not"
	// Negate represents arithmetic negation.
	Negate UnaryOperation = "negate"
)

// ============================================================================
// Literals
// ============================================================================

// BooleanLiteral represents a literal true or false.
type BooleanLiteral struct {
	// Value of this literal.
	Value bool
	// Source location of this literal.
	Span source.Span
}

// Location returns the span of the original source text from which this
// node was parsed.
func (p *BooleanLiteral) Location() source.Span { return p.Span }

func (p *BooleanLiteral) isExpression() {}

// IntegerLiteral represents an integer literal, such as "1u8".  The value is
// retained as written (in decimal); literals without a suffix are "implicit"
// and take their type from the surrounding context (which may also assign
// them a field or group type).
type IntegerLiteral struct {
	// Declared type of this literal, or nil for an implicit literal.
	Type *IntegerType
	// Textual (decimal) value of this literal.
	Value string
	// Source location of this literal.
	Span source.Span
}

// Location returns the span of the original source text from which this
// node was parsed.
func (p *IntegerLiteral) Location() source.Span { return p.Span }

func (p *IntegerLiteral) isExpression() {}

// FieldLiteral represents a literal element of the scalar field, such as
// "21888field".
type FieldLiteral struct {
	// Textual (decimal) value of this literal.
	Value string
	// Source location of this literal.
	Span source.Span
}

// Location returns the span of the original source text from which this
// node was parsed.
func (p *FieldLiteral) Location() source.Span { return p.Span }

func (p *FieldLiteral) isExpression() {}

// GroupLiteral represents a literal group element, written as a scalar
// multiple of the fixed group generator (e.g. "2group").
type GroupLiteral struct {
	// Textual (decimal) scalar multiple of the generator.
	Value string
	// Source location of this literal.
	Span source.Span
}

// Location returns the span of the original source text from which this
// node was parsed.
func (p *GroupLiteral) Location() source.Span { return p.Span }

func (p *GroupLiteral) isExpression() {}

// AddressLiteral represents a literal account address.
type AddressLiteral struct {
	// Textual value of this literal.
	Value string
	// Source location of this literal.
	Span source.Span
}

// Location returns the span of the original source text from which this
// node was parsed.
func (p *AddressLiteral) Location() source.Span { return p.Span }

func (p *AddressLiteral) isExpression() {}

// CharLiteral represents a literal character.
type CharLiteral struct {
	// Value of this literal.
	Value rune
	// Source location of this literal.
	Span source.Span
}

// Location returns the span of the original source text from which this
// node was parsed.
func (p *CharLiteral) Location() source.Span { return p.Span }

func (p *CharLiteral) isExpression() {}

// ============================================================================
// Operators
// ============================================================================

// BinaryExpression represents the application of a binary operator to two
// operands.
type BinaryExpression struct {
	// Operator being applied.
	Op BinaryOperation
	// Left operand.
	Left Expression
	// Right operand.
	Right Expression
	// Source location of this expression.
	Span source.Span
}

// Location returns the span of the original source text from which this
// node was parsed.
func (p *BinaryExpression) Location() source.Span { return p.Span }

func (p *BinaryExpression) isExpression() {}

// UnaryExpression represents the application of a unary operator to a single
// operand.
type UnaryExpression struct {
	// Operator being applied.
	Op UnaryOperation
	// Operand of this expression.
	Inner Expression
	// Source location of this expression.
	Span source.Span
}

// Location returns the span of the original source text from which this
// node was parsed.
func (p *UnaryExpression) Location() source.Span { return p.Span }

func (p *UnaryExpression) isExpression() {}

// TernaryExpression represents a conditional expression "c ? a : b".
type TernaryExpression struct {
	// Condition being branched upon.
	Condition Expression
	// Value taken when the condition holds.
	IfTrue Expression
	// Value taken when the condition does not hold.
	IfFalse Expression
	// Source location of this expression.
	Span source.Span
}

// Location returns the span of the original source text from which this
// node was parsed.
func (p *TernaryExpression) Location() source.Span { return p.Span }

func (p *TernaryExpression) isExpression() {}

// ============================================================================
// Calls and accesses
// ============================================================================

// CallExpression represents the application of a function to zero or more
// arguments.  The call target is itself an expression: a bare identifier (free
// function call), a member access (instance method call) or a static access
// (static method call).
type CallExpression struct {
	// Target of this call.
	Function Expression
	// Arguments being passed, in order.
	Arguments []Expression
	// Source location of this expression.
	Span source.Span
}

// Location returns the span of the original source text from which this
// node was parsed.
func (p *CallExpression) Location() source.Span { return p.Span }

func (p *CallExpression) isExpression() {}

// MemberAccess represents access to a member of a circuit value (e.g. "x.y").
type MemberAccess struct {
	// Expression whose member is being accessed.
	Target Expression
	// Name of the member being accessed.
	Name Identifier
	// Source location of this expression.
	Span source.Span
}

// Location returns the span of the original source text from which this
// node was parsed.
func (p *MemberAccess) Location() source.Span { return p.Span }

func (p *MemberAccess) isExpression() {}

// StaticAccess represents access to a static member of a circuit type (e.g.
// "C::f").
type StaticAccess struct {
	// Expression denoting the circuit type (a bare identifier).
	Target Expression
	// Name of the member being accessed.
	Name Identifier
	// Source location of this expression.
	Span source.Span
}

// Location returns the span of the original source text from which this
// node was parsed.
func (p *StaticAccess) Location() source.Span { return p.Span }

func (p *StaticAccess) isExpression() {}

// ============================================================================
// Composite construction and access
// ============================================================================

// ArrayInlineExpression represents the construction of an array from an
// explicit list of elements (e.g. "[1, 2, 3]").
type ArrayInlineExpression struct {
	// Elements of the array being constructed.
	Elements []Expression
	// Source location of this expression.
	Span source.Span
}

// Location returns the span of the original source text from which this
// node was parsed.
func (p *ArrayInlineExpression) Location() source.Span { return p.Span }

func (p *ArrayInlineExpression) isExpression() {}

// ArrayInitExpression represents the construction of an array by repeating a
// single element (e.g. "[0u8; 4]").
type ArrayInitExpression struct {
	// Element being repeated.
	Element Expression
	// Number of repetitions.
	Size uint
	// Source location of this expression.
	Span source.Span
}

// Location returns the span of the original source text from which this
// node was parsed.
func (p *ArrayInitExpression) Location() source.Span { return p.Span }

func (p *ArrayInitExpression) isExpression() {}

// ArrayAccessExpression represents indexing into an array (e.g. "xs[i]").
type ArrayAccessExpression struct {
	// Array being indexed.
	Array Expression
	// Index being accessed.
	Index Expression
	// Source location of this expression.
	Span source.Span
}

// Location returns the span of the original source text from which this
// node was parsed.
func (p *ArrayAccessExpression) Location() source.Span { return p.Span }

func (p *ArrayAccessExpression) isExpression() {}

// TupleInitExpression represents the construction of a tuple from its
// elements (e.g. "(a, b)").
type TupleInitExpression struct {
	// Elements of the tuple being constructed.
	Elements []Expression
	// Source location of this expression.
	Span source.Span
}

// Location returns the span of the original source text from which this
// node was parsed.
func (p *TupleInitExpression) Location() source.Span { return p.Span }

func (p *TupleInitExpression) isExpression() {}

// TupleAccessExpression represents positional access into a tuple (e.g.
// "t.0").
type TupleAccessExpression struct {
	// Tuple being accessed.
	Tuple Expression
	// Position being accessed.
	Index uint
	// Source location of this expression.
	Span source.Span
}

// Location returns the span of the original source text from which this
// node was parsed.
func (p *TupleAccessExpression) Location() source.Span { return p.Span }

func (p *TupleAccessExpression) isExpression() {}

// CircuitInitExpression represents the construction of a circuit value from
// its named members (e.g. "Point { x: 1, y: 2 }").
type CircuitInitExpression struct {
	// Name of the circuit being constructed.
	Name Identifier
	// Member initialisers, in declaration order.
	Members []CircuitInitMember
	// Source location of this expression.
	Span source.Span
}

// Location returns the span of the original source text from which this
// node was parsed.
func (p *CircuitInitExpression) Location() source.Span { return p.Span }

func (p *CircuitInitExpression) isExpression() {}

// CircuitInitMember represents a single named member initialiser within a
// circuit construction.
type CircuitInitMember struct {
	// Name of the member being initialised.
	Name Identifier
	// Value assigned to the member.
	Value Expression
}
