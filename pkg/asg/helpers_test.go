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

	"github.com/stretchr/testify/require"
	"github.com/zirclang/zirc/pkg/ast"
	"github.com/zirclang/zirc/pkg/util/source"
)

// Builders for constructing syntax trees by hand, standing in for the parser.

func sp() source.Span {
	return source.NewSpan(0, 1)
}

func ident(name string) ast.Identifier {
	return ast.Identifier{Name: name, Span: sp()}
}

func identExpr(name string) *ast.Identifier {
	id := ident(name)
	return &id
}

func u32lit(value string) *ast.IntegerLiteral {
	kind := ast.U32
	return &ast.IntegerLiteral{Type: &kind, Value: value, Span: sp()}
}

func intLit(kind ast.IntegerType, value string) *ast.IntegerLiteral {
	return &ast.IntegerLiteral{Type: &kind, Value: value, Span: sp()}
}

func untypedLit(value string) *ast.IntegerLiteral {
	return &ast.IntegerLiteral{Value: value, Span: sp()}
}

func boolLit(value bool) *ast.BooleanLiteral {
	return &ast.BooleanLiteral{Value: value, Span: sp()}
}

func binary(op ast.BinaryOperation, left ast.Expression, right ast.Expression) *ast.BinaryExpression {
	return &ast.BinaryExpression{Op: op, Left: left, Right: right, Span: sp()}
}

func call(fn ast.Expression, args ...ast.Expression) *ast.CallExpression {
	return &ast.CallExpression{Function: fn, Arguments: args, Span: sp()}
}

func member(target ast.Expression, name string) *ast.MemberAccess {
	return &ast.MemberAccess{Target: target, Name: ident(name), Span: sp()}
}

func static(circuit string, name string) *ast.StaticAccess {
	return &ast.StaticAccess{Target: identExpr(circuit), Name: ident(name), Span: sp()}
}

func block(stmts ...ast.Statement) ast.Block {
	return ast.Block{Statements: stmts, Span: sp()}
}

func ret(value ast.Expression) *ast.ReturnStatement {
	return &ast.ReturnStatement{Value: value, Span: sp()}
}

func retUnit() *ast.ReturnStatement {
	return ret(&ast.TupleInitExpression{Span: sp()})
}

func let(name string, value ast.Expression) *ast.DefinitionStatement {
	return define(ast.Let, name, false, nil, value)
}

func letMut(name string, value ast.Expression) *ast.DefinitionStatement {
	return define(ast.Let, name, true, nil, value)
}

func konst(name string, value ast.Expression) *ast.DefinitionStatement {
	return define(ast.Const, name, false, nil, value)
}

func define(declare ast.Declare, name string, mutable bool, typ ast.Type, value ast.Expression) *ast.DefinitionStatement {
	return &ast.DefinitionStatement{
		Declare:   declare,
		Variables: []ast.VariableName{{Mutable: mutable, Identifier: ident(name)}},
		Type:      typ,
		Value:     value,
		Span:      sp(),
	}
}

func exprStmt(expr ast.Expression) *ast.ExpressionStatement {
	return &ast.ExpressionStatement{Expression: expr, Span: sp()}
}

func ifStmt(condition ast.Expression, body ast.Block, next ast.Statement) *ast.ConditionalStatement {
	return &ast.ConditionalStatement{Condition: condition, Block: body, Next: next, Span: sp()}
}

func param(name string, typ ast.Type) *ast.ParameterInput {
	return &ast.ParameterInput{Identifier: ident(name), Type: typ, Span: sp()}
}

func constParam(name string, typ ast.Type) *ast.ParameterInput {
	return &ast.ParameterInput{Identifier: ident(name), Const: true, Type: typ, Span: sp()}
}

func selfInput(kind ast.SelfKind) *ast.SelfInput {
	return &ast.SelfInput{Kind: kind, Span: sp()}
}

func function(name string, inputs []ast.FunctionInput, output ast.Type, stmts ...ast.Statement) *ast.Function {
	return &ast.Function{
		Identifier: ident(name),
		Inputs:     inputs,
		Output:     output,
		Block:      block(stmts...),
		Span:       sp(),
	}
}

func testFunction(name string, stmts ...ast.Statement) *ast.Function {
	fn := function(name, nil, nil, stmts...)
	fn.Annotations = []ast.Annotation{{Name: "test", Span: sp()}}
	//
	return fn
}

func circuitDecl(name string, members ...ast.CircuitMember) *ast.Circuit {
	return &ast.Circuit{Identifier: ident(name), Members: members, Span: sp()}
}

func fieldMember(name string, typ ast.Type) *ast.CircuitVariable {
	return &ast.CircuitVariable{Identifier: ident(name), Type: typ, Span: sp()}
}

func functionMember(fn *ast.Function) *ast.CircuitFunction {
	return &ast.CircuitFunction{Function: fn}
}

func program(circuits []*ast.Circuit, functions ...*ast.Function) *ast.Program {
	return &ast.Program{Name: "test", Circuits: circuits, Functions: functions}
}

// ============================================================================
// Checking helpers
// ============================================================================

// convert a program, requiring it to be error free.
func mustConvert(t *testing.T, decl *ast.Program) *Program {
	t.Helper()
	//
	converted, errors := NewProgram(NewContext(), decl)
	//
	for _, err := range errors {
		t.Errorf("unexpected error: %s", err.Error())
	}
	//
	require.Empty(t, errors)
	//
	return converted
}

// convert a program, requiring the first error to be of the given kind.
func mustFail(t *testing.T, decl *ast.Program, kind ErrorKind) *Error {
	t.Helper()
	//
	_, errors := NewProgram(NewContext(), decl)
	//
	require.NotEmpty(t, errors, "expected an error")
	require.Equal(t, kind, errors[0].Kind, "wrong error kind: %s", errors[0].Error())
	//
	return errors[0]
}
