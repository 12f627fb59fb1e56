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

func TestScope_ResolutionWalksOutwards(t *testing.T) {
	scope := NewScope(NewContext())
	outer := &Variable{Name: "x", Type: &BooleanType{}}
	//
	require.Nil(t, scope.DefineVariable(outer, sp()))
	//
	inner := scope.Subscope()
	assert.Same(t, outer, inner.ResolveVariable("x"))
	assert.Nil(t, inner.ResolveVariable("y"))
}

func TestScope_DuplicateDefinition(t *testing.T) {
	scope := NewScope(NewContext())
	//
	require.Nil(t, scope.DefineVariable(&Variable{Name: "x"}, sp()))
	//
	err := scope.DefineVariable(&Variable{Name: "x"}, sp())
	require.NotNil(t, err)
	assert.Equal(t, DuplicateDefinition, err.Kind)
}

func TestScope_ShadowingInSubscope(t *testing.T) {
	scope := NewScope(NewContext())
	outer := &Variable{Name: "x", Type: &BooleanType{}}
	shadow := &Variable{Name: "x", Type: &FieldType{}}
	//
	require.Nil(t, scope.DefineVariable(outer, sp()))
	//
	inner := scope.Subscope()
	require.Nil(t, inner.DefineVariable(shadow, sp()))
	// Inner sees the shadow, outer is untouched.
	assert.Same(t, shadow, inner.ResolveVariable("x"))
	assert.Same(t, outer, scope.ResolveVariable("x"))
}

func TestScope_DuplicateVariableInProgram(t *testing.T) {
	// fn f() { let x = 1u32; let x = 2u32; }
	fn := function("f", nil, nil,
		let("x", u32lit("1")),
		let("x", u32lit("2")))
	//
	mustFail(t, program(nil, fn), DuplicateDefinition)
}

func TestScope_ShadowingAcrossBlocks(t *testing.T) {
	// fn f() { let x = 1u32; if true { let x = false; } }
	body := block(let("x", boolLit(false)))
	//
	fn := function("f", nil, nil,
		let("x", u32lit("1")),
		ifStmt(boolLit(true), body, nil))
	//
	mustConvert(t, program(nil, fn))
}

func TestScope_UnresolvedVariable(t *testing.T) {
	fn := function("f", nil, nil, exprStmt(identExpr("nope")))
	//
	mustFail(t, program(nil, fn), UnresolvedVariable)
}

func TestScope_SelfOutsideCircuit(t *testing.T) {
	fn := function("f", nil, nil, exprStmt(identExpr("self")))
	//
	mustFail(t, program(nil, fn), InvalidSelf)
}

func TestScope_ResolveTypeSelf(t *testing.T) {
	// circuit C { x: u32 }  fn f(p: C) -> u32 { return p.x; }
	c := circuitDecl("C", fieldMember("x", ast.U32))
	fn := function("f",
		[]ast.FunctionInput{param("p", &ast.NamedType{Name: ident("C")})},
		ast.U32,
		ret(member(identExpr("p"), "x")))
	//
	converted := mustConvert(t, program([]*ast.Circuit{c}, fn))
	assert.NotNil(t, converted.Circuit("C"))
	assert.NotNil(t, converted.Function("f"))
}

func TestScope_UnresolvedCircuit(t *testing.T) {
	fn := function("f",
		[]ast.FunctionInput{param("p", &ast.NamedType{Name: ident("Nope")})},
		nil, retUnit())
	//
	mustFail(t, program(nil, fn), UnresolvedCircuit)
}
