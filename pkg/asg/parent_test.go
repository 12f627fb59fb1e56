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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zirclang/zirc/pkg/ast"
)

func TestParents_ExpressionChildren(t *testing.T) {
	// fn f(x: u32) -> u32 { return x + 1u32; }
	fn := function("f",
		[]ast.FunctionInput{param("x", ast.U32)},
		ast.U32,
		ret(binary(ast.Add, identExpr("x"), u32lit("1"))))
	//
	converted := mustConvert(t, program(nil, fn))
	//
	body := converted.Function("f").Body
	retStmt := body.Statements[0].(*ReturnStatement)
	sum := retStmt.Value.(*BinaryExpression)
	// Body is a root; everything beneath it chains upwards.
	assert.Nil(t, body.Parent())
	assert.Same(t, body, retStmt.Parent().(*BlockStatement))
	assert.Same(t, retStmt, sum.Parent().(*ReturnStatement))
	assert.Same(t, sum, sum.Left.Parent().(*BinaryExpression))
	assert.Same(t, sum, sum.Right.Parent().(*BinaryExpression))
}

func TestParents_StatementChildren(t *testing.T) {
	// fn f(c: bool) { if c { let x = 1u32; } }
	fn := function("f",
		[]ast.FunctionInput{param("c", &ast.BooleanType{})},
		nil,
		ifStmt(identExpr("c"), block(let("x", u32lit("1"))), nil))
	//
	converted := mustConvert(t, program(nil, fn))
	//
	body := converted.Function("f").Body
	cond := body.Statements[0].(*ConditionalStatement)
	inner := cond.Body
	def := inner.Statements[0].(*DefinitionStatement)
	//
	assert.Same(t, body, cond.Parent().(*BlockStatement))
	assert.Same(t, cond, cond.Condition.Parent().(*ConditionalStatement))
	assert.Same(t, cond, inner.Parent().(*ConditionalStatement))
	assert.Same(t, inner, def.Parent().(*BlockStatement))
	assert.Same(t, def, def.Value.Parent().(*DefinitionStatement))
}

func TestParents_UniqueIdentifiers(t *testing.T) {
	// Identifiers are unique across the whole graph.
	fn := function("f", nil, ast.U32,
		let("x", u32lit("1")),
		ret(binary(ast.Add, identExpr("x"), u32lit("2"))))
	//
	converted := mustConvert(t, program(nil, fn))
	//
	seen := make(map[uint]bool)
	//
	var visitExpr func(e Expression)
	//
	visitExpr = func(e Expression) {
		require.False(t, seen[e.Id()], "duplicate identifier %d", e.Id())
		seen[e.Id()] = true
		//
		switch e := e.(type) {
		case *BinaryExpression:
			visitExpr(e.Left)
			visitExpr(e.Right)
		case *Constant, *VariableRef:
		default:
			t.Fatalf("unexpected expression %T", e)
		}
	}
	//
	body := converted.Function("f").Body
	require.False(t, seen[body.Id()])
	seen[body.Id()] = true
	//
	for _, s := range body.Statements {
		require.False(t, seen[s.Id()])
		seen[s.Id()] = true
		//
		switch s := s.(type) {
		case *DefinitionStatement:
			visitExpr(s.Value)
		case *ReturnStatement:
			visitExpr(s.Value)
		}
	}
}

func TestParents_DeterministicIdentifiers(t *testing.T) {
	// Converting the same input twice yields the same identifiers.
	build := func() *Program {
		fn := function("f", nil, ast.U32,
			let("x", u32lit("1")),
			ret(identExpr("x")))
		//
		return mustConvert(t, program(nil, fn))
	}
	//
	first := build()
	second := build()
	//
	f1 := first.Function("f")
	f2 := second.Function("f")
	//
	assert.Equal(t, f1.Id, f2.Id)
	assert.Equal(t, f1.Body.Id(), f2.Body.Id())
	assert.Equal(t, f1.Body.Statements[0].Id(), f2.Body.Statements[0].Id())
}
