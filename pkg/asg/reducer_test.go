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

	"github.com/zirclang/zirc/pkg/ast"
)

func TestReturnPath_StraightLine(t *testing.T) {
	fn := function("f", nil, ast.U32, ret(u32lit("1")))
	//
	mustConvert(t, program(nil, fn))
}

func TestReturnPath_MissingReturn(t *testing.T) {
	// fn f(c: bool) -> u32 { if c { return 1u32; } }
	//
	// The path where c does not hold falls off the end.
	fn := function("f",
		[]ast.FunctionInput{param("c", &ast.BooleanType{})},
		ast.U32,
		ifStmt(identExpr("c"), block(ret(u32lit("1"))), nil))
	//
	mustFail(t, program(nil, fn), MissingReturn)
}

func TestReturnPath_BothBranchesReturn(t *testing.T) {
	// fn f(c: bool) -> u32 { if c { return 1u32; } else { return 2u32; } }
	body := block(ret(u32lit("1")))
	other := block(ret(u32lit("2")))
	//
	fn := function("f",
		[]ast.FunctionInput{param("c", &ast.BooleanType{})},
		ast.U32,
		ifStmt(identExpr("c"), body, &other))
	//
	mustConvert(t, program(nil, fn))
}

func TestReturnPath_ElseIfChain(t *testing.T) {
	// fn f(c: bool, d: bool) -> u32 {
	//     if c { return 1u32; } else if d { return 2u32; } else { return 3u32; }
	// }
	last := block(ret(u32lit("3")))
	chain := ifStmt(identExpr("d"), block(ret(u32lit("2"))), &last)
	//
	fn := function("f",
		[]ast.FunctionInput{param("c", &ast.BooleanType{}), param("d", &ast.BooleanType{})},
		ast.U32,
		ifStmt(identExpr("c"), block(ret(u32lit("1"))), chain))
	//
	mustConvert(t, program(nil, fn))
}

func TestReturnPath_LoopDoesNotCount(t *testing.T) {
	// A loop body cannot satisfy the return requirement, since its range may
	// be empty.
	loop := &ast.IterationStatement{
		Variable: ident("i"),
		Start:    u32lit("0"),
		Stop:     u32lit("10"),
		Block:    block(ret(u32lit("1"))),
		Span:     sp(),
	}
	//
	fn := function("f", nil, ast.U32, loop)
	//
	mustFail(t, program(nil, fn), MissingReturn)
}

func TestReturnPath_UnreachableCode(t *testing.T) {
	// fn f() -> u32 { return 1u32; let x = 2u32; }
	fn := function("f", nil, ast.U32,
		ret(u32lit("1")),
		let("x", u32lit("2")))
	//
	mustFail(t, program(nil, fn), UnreachableCode)
}

func TestReturnPath_UnreachableAfterConditional(t *testing.T) {
	// fn f(c: bool) -> u32 {
	//     if c { return 1u32; } else { return 2u32; }
	//     let x = 3u32;
	// }
	other := block(ret(u32lit("2")))
	//
	fn := function("f",
		[]ast.FunctionInput{param("c", &ast.BooleanType{})},
		ast.U32,
		ifStmt(identExpr("c"), block(ret(u32lit("1"))), &other),
		let("x", u32lit("3")))
	//
	mustFail(t, program(nil, fn), UnreachableCode)
}

func TestReturnPath_UnitFunctionNeedNotReturn(t *testing.T) {
	fn := function("f", nil, nil, let("x", u32lit("1")))
	//
	mustConvert(t, program(nil, fn))
}
