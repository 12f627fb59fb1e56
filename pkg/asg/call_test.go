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

func cinit(name string, fields ...ast.CircuitInitMember) *ast.CircuitInitExpression {
	return &ast.CircuitInitExpression{Name: ident(name), Members: fields, Span: sp()}
}

func cfield(name string, value ast.Expression) ast.CircuitInitMember {
	return ast.CircuitInitMember{Name: ident(name), Value: value}
}

// counterCircuit declares:
//
//	circuit Counter {
//	    count: u32,
//	    fn get(self) -> u32 { return self.count; }
//	    fn reset(mut self) { return (); }
//	    fn fresh() -> u32 { return 0u32; }
//	}
func counterCircuit() *ast.Circuit {
	return circuitDecl("Counter",
		fieldMember("count", ast.U32),
		functionMember(function("get",
			[]ast.FunctionInput{selfInput(ast.SelfRef)},
			ast.U32,
			ret(member(identExpr("self"), "count")))),
		functionMember(function("reset",
			[]ast.FunctionInput{selfInput(ast.MutSelfRef)},
			nil,
			retUnit())),
		functionMember(function("fresh", nil, ast.U32, ret(u32lit("0")))))
}

func newCounter() *ast.CircuitInitExpression {
	return cinit("Counter", cfield("count", u32lit("1")))
}

// ============================================================================
// Call forms
// ============================================================================

func TestCall_FreeFunction(t *testing.T) {
	// fn double(x: u32) -> u32 { return x + x; }
	// fn main() -> u32 { return double(2u32); }
	double := function("double",
		[]ast.FunctionInput{param("x", ast.U32)},
		ast.U32,
		ret(binary(ast.Add, identExpr("x"), identExpr("x"))))
	main := function("main", nil, ast.U32,
		ret(call(identExpr("double"), u32lit("2"))))
	//
	converted := mustConvert(t, program(nil, double, main))
	// The call resolves to the one declaration of double.
	body := converted.Function("main").Body
	retStmt := body.Statements[0].(*ReturnStatement)
	callExpr := retStmt.Value.(*CallExpression)
	//
	assert.Same(t, converted.Function("double"), callExpr.Function)
	assert.Nil(t, callExpr.Target)
	assert.True(t, callExpr.Type().Equals(&IntegerType{ast.U32}))
}

func TestCall_InstanceMethod(t *testing.T) {
	// fn main() -> u32 { let c = Counter { count: 1u32 }; return c.get(); }
	main := function("main", nil, ast.U32,
		let("c", newCounter()),
		ret(call(member(identExpr("c"), "get"))))
	//
	converted := mustConvert(t, program([]*ast.Circuit{counterCircuit()}, main))
	//
	body := converted.Function("main").Body
	callExpr := body.Statements[1].(*ReturnStatement).Value.(*CallExpression)
	// Instance calls record their receiver.
	require.NotNil(t, callExpr.Target)
	assert.Equal(t, SelfFunction, callExpr.Function.Qualifier)
}

func TestCall_StaticMethod(t *testing.T) {
	// fn main() -> u32 { return Counter::fresh(); }
	main := function("main", nil, ast.U32,
		ret(call(static("Counter", "fresh"))))
	//
	converted := mustConvert(t, program([]*ast.Circuit{counterCircuit()}, main))
	//
	body := converted.Function("main").Body
	callExpr := body.Statements[0].(*ReturnStatement).Value.(*CallExpression)
	//
	assert.Nil(t, callExpr.Target)
	assert.Equal(t, StaticFunction, callExpr.Function.Qualifier)
}

// ============================================================================
// Qualifier validation
// ============================================================================

func TestCall_MutMethodOnImmutable(t *testing.T) {
	// let c = ...; c.reset() must be rejected, since c is immutable.
	main := function("main", nil, nil,
		let("c", newCounter()),
		exprStmt(call(member(identExpr("c"), "reset"))),
		retUnit())
	//
	mustFail(t, program([]*ast.Circuit{counterCircuit()}, main), MutCallInvalid)
}

func TestCall_MutMethodOnMutable(t *testing.T) {
	// let mut c = ...; c.reset() is fine.
	main := function("main", nil, nil,
		letMut("c", newCounter()),
		exprStmt(call(member(identExpr("c"), "reset"))),
		retUnit())
	//
	mustConvert(t, program([]*ast.Circuit{counterCircuit()}, main))
}

func TestCall_StaticCallOfInstanceMethod(t *testing.T) {
	// Counter::get() is invalid, since get takes a receiver.
	main := function("main", nil, ast.U32,
		ret(call(static("Counter", "get"))))
	//
	err := mustFail(t, program([]*ast.Circuit{counterCircuit()}, main), MemberCallInvalid)
	assert.Contains(t, err.Message, "cannot be called statically")
}

func TestCall_InstanceCallOfStaticMethod(t *testing.T) {
	// c.fresh() is invalid, since fresh is static.
	main := function("main", nil, ast.U32,
		let("c", newCounter()),
		ret(call(member(identExpr("c"), "fresh"))))
	//
	err := mustFail(t, program([]*ast.Circuit{counterCircuit()}, main), StaticCallInvalid)
	assert.Contains(t, err.Message, "cannot be called on an instance")
}

func TestCall_CircuitFieldNotCallable(t *testing.T) {
	main := function("main", nil, ast.U32,
		let("c", newCounter()),
		ret(call(member(identExpr("c"), "count"))))
	//
	mustFail(t, program([]*ast.Circuit{counterCircuit()}, main), CircuitVariableCall)
}

// ============================================================================
// Arguments
// ============================================================================

func TestCall_ArityMismatch(t *testing.T) {
	double := function("double",
		[]ast.FunctionInput{param("x", ast.U32)},
		ast.U32,
		ret(identExpr("x")))
	main := function("main", nil, ast.U32,
		ret(call(identExpr("double"), u32lit("1"), u32lit("2"))))
	//
	mustFail(t, program(nil, double, main), ArgumentCountMismatch)
}

func TestCall_ArgumentTypeMismatch(t *testing.T) {
	double := function("double",
		[]ast.FunctionInput{param("x", ast.U32)},
		ast.U32,
		ret(identExpr("x")))
	main := function("main", nil, ast.U32,
		ret(call(identExpr("double"), boolLit(true))))
	//
	mustFail(t, program(nil, double, main), UnexpectedType)
}

func TestCall_ConstParameterRequiresConstArgument(t *testing.T) {
	// fn shift(const n: u32) -> u32 { return n; }
	// fn main(x: u32) -> u32 { return shift(x); }
	shift := function("shift",
		[]ast.FunctionInput{constParam("n", ast.U32)},
		ast.U32,
		ret(identExpr("n")))
	main := function("main",
		[]ast.FunctionInput{param("x", ast.U32)},
		ast.U32,
		ret(call(identExpr("shift"), identExpr("x"))))
	//
	mustFail(t, program(nil, shift, main), NonConstArgument)
}

func TestCall_ConstParameterAcceptsLiteral(t *testing.T) {
	shift := function("shift",
		[]ast.FunctionInput{constParam("n", ast.U32)},
		ast.U32,
		ret(identExpr("n")))
	main := function("main", nil, ast.U32,
		ret(call(identExpr("shift"), u32lit("3"))))
	//
	mustConvert(t, program(nil, shift, main))
}

func TestCall_ConstyPropagation(t *testing.T) {
	// A call is consty exactly when its receiver (if any) and every argument
	// are consty themselves.
	double := function("double",
		[]ast.FunctionInput{param("y", ast.U32)},
		ast.U32,
		ret(identExpr("y")))
	main := function("main",
		[]ast.FunctionInput{param("x", ast.U32)},
		ast.U32,
		let("a", call(identExpr("double"), u32lit("2"))),
		ret(call(identExpr("double"), identExpr("x"))))
	//
	converted := mustConvert(t, program(nil, double, main))
	body := converted.Function("main").Body
	//
	literalArg := body.Statements[0].(*DefinitionStatement).Value.(*CallExpression)
	runtimeArg := body.Statements[1].(*ReturnStatement).Value.(*CallExpression)
	//
	assert.True(t, literalArg.IsConsty())
	assert.False(t, runtimeArg.IsConsty())
}

func TestCall_ConstParameterAcceptsConstVariable(t *testing.T) {
	shift := function("shift",
		[]ast.FunctionInput{constParam("n", ast.U32)},
		ast.U32,
		ret(identExpr("n")))
	main := function("main", nil, ast.U32,
		konst("k", u32lit("3")),
		ret(call(identExpr("shift"), identExpr("k"))))
	//
	mustConvert(t, program(nil, shift, main))
}

// ============================================================================
// Remaining conditions
// ============================================================================

func TestCall_UnknownFunction(t *testing.T) {
	main := function("main", nil, nil, exprStmt(call(identExpr("nope"))), retUnit())
	//
	mustFail(t, program(nil, main), UnresolvedFunction)
}

func TestProgram_TestFunctions(t *testing.T) {
	// Test functions register alongside ordinary ones, in declaration order.
	first := testFunction("check_one", retUnit())
	main := function("main", nil, nil, retUnit())
	second := testFunction("check_two", retUnit())
	//
	converted := mustConvert(t, program(nil, first, main, second))
	//
	tests := converted.TestFunctions()
	require.Len(t, tests, 2)
	assert.Equal(t, "check_one", tests[0].Name)
	assert.Equal(t, "check_two", tests[1].Name)
}

func TestCall_TestFunctionRejected(t *testing.T) {
	// Test functions cannot be called from ordinary code.
	check := testFunction("check_things", retUnit())
	main := function("main", nil, nil, exprStmt(call(identExpr("check_things"))), retUnit())
	//
	mustFail(t, program(nil, check, main), CallTestFunction)
}

func TestCall_OutputTypeMismatch(t *testing.T) {
	// The expectation at the call site applies to the function's output.
	fresh := function("fresh", nil, ast.U32, ret(u32lit("0")))
	main := function("main", nil, nil,
		define(ast.Let, "x", false, &ast.BooleanType{}, call(identExpr("fresh"))),
		retUnit())
	//
	mustFail(t, program(nil, fresh, main), UnexpectedType)
}
