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

// ConditionalStatement represents an if statement, with an optional else
// branch which is either a block or a further conditional.
type ConditionalStatement struct {
	nodeBase
	// Condition being branched upon.
	Condition Expression
	// Statements executed when the condition holds.
	Body *BlockStatement
	// Else branch, or nil.
	Next Statement
}

func (p *ConditionalStatement) isStatement() {}

// EnforceParents rewires the parent links of this statement's immediate
// children to point at this statement.
func (p *ConditionalStatement) EnforceParents() {
	p.Condition.SetParent(p)
	p.Body.SetParent(p)
	//
	if p.Next != nil {
		p.Next.SetParent(p)
	}
}

func conditionalFromAst(scope *Scope, stmt *ast.ConditionalStatement) (Statement, *Error) {
	condition, err := expressionFromAst(scope, stmt.Condition, ExpectType(&BooleanType{}))
	if err != nil {
		return nil, err
	}
	//
	body, err := blockFromAst(scope, &stmt.Block)
	if err != nil {
		return nil, err
	}
	//
	result := &ConditionalStatement{newNodeBase(scope, stmt.Span), condition, body, nil}
	//
	if stmt.Next != nil {
		if result.Next, err = statementFromAst(scope, stmt.Next); err != nil {
			return nil, err
		}
	}
	//
	return result, nil
}

// ============================================================================
// Iteration
// ============================================================================

// IterationStatement represents a bounded for loop over an integer range.
// The loop variable is scoped to the body and treated as compile-time
// constant, since loops are unrolled during constraint synthesis.
type IterationStatement struct {
	nodeBase
	// Loop variable, scoped to the body.
	Variable *Variable
	// Lower bound of the iteration (inclusive).
	Start Expression
	// Upper bound of the iteration (exclusive).
	Stop Expression
	// Statements executed on each iteration.
	Body *BlockStatement
}

func (p *IterationStatement) isStatement() {}

// EnforceParents rewires the parent links of this statement's immediate
// children to point at this statement.
func (p *IterationStatement) EnforceParents() {
	p.Start.SetParent(p)
	p.Stop.SetParent(p)
	p.Body.SetParent(p)
}

func iterationFromAst(scope *Scope, stmt *ast.IterationStatement) (Statement, *Error) {
	// Bounds can take any integer type; untyped literals default to u32.
	start, err := expressionFromAst(scope, stmt.Start, nil)
	if err != nil {
		if start, err = expressionFromAst(scope, stmt.Start, ExpectType(&IntegerType{ast.U32})); err != nil {
			return nil, err
		}
	}
	//
	if _, ok := start.Type().(*IntegerType); !ok {
		return nil, errUnexpectedType("integer", start.Type().String(), stmt.Start.Location())
	}
	//
	stop, err := expressionFromAst(scope, stmt.Stop, ExpectType(start.Type()))
	if err != nil {
		return nil, err
	}
	// The loop variable lives in a scope of its own, between the enclosing
	// scope and the body.
	inner := scope.Subscope()
	//
	variable := &Variable{
		Id:          scope.Context().NextId(),
		Name:        stmt.Variable.Name,
		Type:        start.Type(),
		Declaration: IterationDeclaration,
	}
	//
	if err := inner.DefineVariable(variable, stmt.Variable.Span); err != nil {
		return nil, err
	}
	//
	body, err := blockFromAst(inner, &stmt.Block)
	if err != nil {
		return nil, err
	}
	//
	return &IterationStatement{newNodeBase(scope, stmt.Span), variable, start, stop, body}, nil
}
