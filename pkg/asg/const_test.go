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
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zirclang/zirc/pkg/ast"
)

func intValue(kind ast.IntegerType, value int64) *IntValue {
	return NewIntValue(kind, big.NewInt(value))
}

func TestConst_IntegerBounds(t *testing.T) {
	assert.NotNil(t, intValue(ast.U8, 255))
	assert.Nil(t, intValue(ast.U8, 256))
	assert.Nil(t, intValue(ast.U8, -1))
	assert.NotNil(t, intValue(ast.I8, -128))
	assert.NotNil(t, intValue(ast.I8, 127))
	assert.Nil(t, intValue(ast.I8, 128))
}

func TestConst_FoldArithmetic(t *testing.T) {
	sum := FoldBinary(ast.Add, intValue(ast.U32, 2), intValue(ast.U32, 3))
	require.NotNil(t, sum)
	assert.True(t, sum.Equals(intValue(ast.U32, 5)))
	//
	product := FoldBinary(ast.Mul, intValue(ast.I64, -4), intValue(ast.I64, 6))
	assert.True(t, product.Equals(intValue(ast.I64, -24)))
	//
	quotient := FoldBinary(ast.Div, intValue(ast.U32, 7), intValue(ast.U32, 2))
	assert.True(t, quotient.Equals(intValue(ast.U32, 3)))
}

func TestConst_FoldOverflow(t *testing.T) {
	// Operations leaving the range of the type do not fold.
	assert.Nil(t, FoldBinary(ast.Add, intValue(ast.U8, 255), intValue(ast.U8, 1)))
	assert.Nil(t, FoldBinary(ast.Sub, intValue(ast.U8, 0), intValue(ast.U8, 1)))
	assert.Nil(t, FoldBinary(ast.Div, intValue(ast.U8, 1), intValue(ast.U8, 0)))
}

func TestConst_FoldComparisons(t *testing.T) {
	lt := FoldBinary(ast.Lt, intValue(ast.U32, 2), intValue(ast.U32, 3))
	assert.True(t, lt.Equals(&BoolValue{true}))
	//
	ge := FoldBinary(ast.Ge, intValue(ast.U32, 2), intValue(ast.U32, 3))
	assert.True(t, ge.Equals(&BoolValue{false}))
	// Orderings apply to integers alone.
	assert.Nil(t, FoldBinary(ast.Lt, NewFieldValue(big.NewInt(1)), NewFieldValue(big.NewInt(2))))
}

func TestConst_FoldEquality(t *testing.T) {
	eq := FoldBinary(ast.Eq, &BoolValue{true}, &BoolValue{true})
	assert.True(t, eq.Equals(&BoolValue{true}))
	//
	ne := FoldBinary(ast.Ne, intValue(ast.U32, 1), intValue(ast.U32, 2))
	assert.True(t, ne.Equals(&BoolValue{true}))
	// Equality over composites is structural.
	left := &ArrayValue{[]ConstValue{intValue(ast.U8, 1), intValue(ast.U8, 2)}}
	right := &ArrayValue{[]ConstValue{intValue(ast.U8, 1), intValue(ast.U8, 2)}}
	//
	assert.True(t, FoldBinary(ast.Eq, left, right).Equals(&BoolValue{true}))
}

func TestConst_FoldField(t *testing.T) {
	one := NewFieldValue(big.NewInt(1))
	two := NewFieldValue(big.NewInt(2))
	three := NewFieldValue(big.NewInt(3))
	//
	assert.True(t, FoldBinary(ast.Add, one, two).Equals(three))
	// Field arithmetic wraps around the modulus rather than overflowing.
	negated := FoldUnary(ast.Negate, one)
	require.NotNil(t, negated)
	assert.True(t, FoldBinary(ast.Add, negated, two).Equals(one))
}

func TestConst_FoldGroup(t *testing.T) {
	// Generator arithmetic: 2g + 3g = 5g.
	two := NewGroupValue(big.NewInt(2))
	three := NewGroupValue(big.NewInt(3))
	five := NewGroupValue(big.NewInt(5))
	//
	assert.True(t, FoldBinary(ast.Add, two, three).Equals(five))
	assert.True(t, FoldBinary(ast.Sub, five, three).Equals(two))
}

func TestConst_FoldUnary(t *testing.T) {
	assert.True(t, FoldUnary(ast.Not, &BoolValue{false}).Equals(&BoolValue{true}))
	assert.True(t, FoldUnary(ast.Negate, intValue(ast.I32, 5)).Equals(intValue(ast.I32, -5)))
	// Negation may also overflow (e.g. -(-128i8)).
	assert.Nil(t, FoldUnary(ast.Negate, intValue(ast.I8, -128)))
}

// ============================================================================
// Const declarations
// ============================================================================

func TestConst_DefinitionRecordsValue(t *testing.T) {
	// const k = 2u32 + 3u32;
	fn := function("f", nil, nil,
		konst("k", binary(ast.Add, u32lit("2"), u32lit("3"))))
	//
	converted := mustConvert(t, program(nil, fn))
	//
	def := converted.Function("f").Body.Statements[0].(*DefinitionStatement)
	variable := def.Variables[0]
	//
	assert.True(t, variable.Const)
	require.NotNil(t, variable.Value)
	assert.True(t, variable.Value.Equals(intValue(ast.U32, 5)))
}

func TestConst_DefinitionRequiresConstValue(t *testing.T) {
	// const k = x; where x is a runtime parameter.
	fn := function("f",
		[]ast.FunctionInput{param("x", ast.U32)},
		nil,
		konst("k", identExpr("x")))
	//
	mustFail(t, program(nil, fn), NonConstDefinition)
}

func TestConst_LoopVariableIsConsty(t *testing.T) {
	// Loop variables satisfy const positions once unrolled, so a const
	// parameter accepts one.
	shift := function("shift",
		[]ast.FunctionInput{constParam("n", ast.U32)},
		ast.U32,
		ret(identExpr("n")))
	//
	loop := &ast.IterationStatement{
		Variable: ident("i"),
		Start:    u32lit("0"),
		Stop:     u32lit("4"),
		Block:    block(exprStmt(call(identExpr("shift"), identExpr("i")))),
		Span:     sp(),
	}
	//
	main := function("main", nil, nil, loop)
	//
	mustConvert(t, program(nil, shift, main))
}

func TestConst_OutOfBoundsIndexRejected(t *testing.T) {
	// let xs = [1u32, 2u32]; let y = xs[2u32];
	inline := &ast.ArrayInlineExpression{
		Elements: []ast.Expression{u32lit("1"), u32lit("2")},
		Span:     sp(),
	}
	access := &ast.ArrayAccessExpression{
		Array: identExpr("xs"),
		Index: u32lit("2"),
		Span:  sp(),
	}
	//
	fn := function("f", nil, nil,
		let("xs", inline),
		let("y", access))
	//
	mustFail(t, program(nil, fn), IndexOutOfBounds)
}
