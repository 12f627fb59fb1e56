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
	"github.com/zirclang/zirc/pkg/util"
)

// StatementReducer folds a summary value of some type over a statement tree,
// bottom-up.  Each case receives the summaries already computed for its
// children.
type StatementReducer[T any] interface {
	// ReduceBlock combines the summaries of the consecutive statements of a
	// block.
	ReduceBlock(stmt *BlockStatement, children []T) T
	// ReduceReturn summarises a return statement.
	ReduceReturn(stmt *ReturnStatement) T
	// ReduceDefinition summarises a definition statement.
	ReduceDefinition(stmt *DefinitionStatement) T
	// ReduceAssign summarises an assignment statement.
	ReduceAssign(stmt *AssignStatement) T
	// ReduceConditional combines the summaries of the two branches of a
	// conditional, where the else summary is absent when there is no else.
	ReduceConditional(stmt *ConditionalStatement, body T, next util.Option[T]) T
	// ReduceIteration summarises a loop given the summary of its body.
	ReduceIteration(stmt *IterationStatement, body T) T
	// ReduceExpression summarises a bare expression statement.
	ReduceExpression(stmt *ExpressionStatement) T
}

// ReduceStatement folds the given reducer over a statement tree, visiting
// children before parents.
func ReduceStatement[T any](reducer StatementReducer[T], stmt Statement) T {
	switch stmt := stmt.(type) {
	case *BlockStatement:
		children := make([]T, len(stmt.Statements))
		//
		for i, s := range stmt.Statements {
			children[i] = ReduceStatement(reducer, s)
		}
		//
		return reducer.ReduceBlock(stmt, children)
	case *ReturnStatement:
		return reducer.ReduceReturn(stmt)
	case *DefinitionStatement:
		return reducer.ReduceDefinition(stmt)
	case *AssignStatement:
		return reducer.ReduceAssign(stmt)
	case *ConditionalStatement:
		body := ReduceStatement(reducer, stmt.Body)
		next := util.None[T]()
		//
		if stmt.Next != nil {
			next = util.Some(ReduceStatement(reducer, stmt.Next))
		}
		//
		return reducer.ReduceConditional(stmt, body, next)
	case *IterationStatement:
		return reducer.ReduceIteration(stmt, ReduceStatement(reducer, stmt.Body))
	case *ExpressionStatement:
		return reducer.ReduceExpression(stmt)
	}
	//
	panic("unreachable")
}

// ============================================================================
// Return paths
// ============================================================================

// ReturnPathReducer determines whether a statement tree definitely returns on
// every control path, flagging statements made unreachable by an earlier
// definite return along the way.
type ReturnPathReducer struct {
	// Errors accumulated during reduction.
	Errors []*Error
}

// NewReturnPathReducer constructs a fresh reducer with no accumulated errors.
func NewReturnPathReducer() *ReturnPathReducer {
	return &ReturnPathReducer{}
}

// ReduceBlock combines the summaries of the consecutive statements of a
// block: the block definitely returns once any of its statements does, and
// anything following that statement is unreachable.
func (p *ReturnPathReducer) ReduceBlock(stmt *BlockStatement, children []bool) bool {
	for i, returns := range children {
		if returns {
			if i+1 < len(children) {
				p.Errors = append(p.Errors, errUnreachableCode(SpanOf(stmt.Statements[i+1])))
			}
			//
			return true
		}
	}
	//
	return false
}

// ReduceReturn summarises a return statement, which trivially returns.
func (p *ReturnPathReducer) ReduceReturn(stmt *ReturnStatement) bool { return true }

// ReduceDefinition summarises a definition statement.
func (p *ReturnPathReducer) ReduceDefinition(stmt *DefinitionStatement) bool { return false }

// ReduceAssign summarises an assignment statement.
func (p *ReturnPathReducer) ReduceAssign(stmt *AssignStatement) bool { return false }

// ReduceConditional combines the two branches of a conditional, which
// definitely returns only when both branches do.  Absent an else branch, the
// path skipping the conditional returns nothing.
func (p *ReturnPathReducer) ReduceConditional(stmt *ConditionalStatement, body bool, next util.Option[bool]) bool {
	return body && next.HasValue() && next.Unwrap()
}

// ReduceIteration summarises a loop, which cannot be relied upon to return
// since its range may be empty.
func (p *ReturnPathReducer) ReduceIteration(stmt *IterationStatement, body bool) bool {
	return false
}

// ReduceExpression summarises a bare expression statement.
func (p *ReturnPathReducer) ReduceExpression(stmt *ExpressionStatement) bool { return false }
