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

// Statement represents a statement within the semantic graph.
type Statement interface {
	Node
	isStatement()
	// EnforceParents rewires the parent links of this statement's immediate
	// children to point at this statement.  It must be invoked whenever
	// children are attached or replaced.
	EnforceParents()
}

// statementFromAst converts a syntactic statement into its semantic form
// within the given scope.  As with expressions, children are converted
// bottom-up and claimed afterwards via EnforceParents; the parent of the
// resulting statement remains nil until claimed in turn.
func statementFromAst(scope *Scope, stmt ast.Statement) (Statement, *Error) {
	var (
		result Statement
		err    *Error
	)
	//
	switch stmt := stmt.(type) {
	case *ast.Block:
		result, err = blockFromAst(scope, stmt)
	case *ast.ReturnStatement:
		result, err = returnFromAst(scope, stmt)
	case *ast.DefinitionStatement:
		result, err = definitionFromAst(scope, stmt)
	case *ast.AssignStatement:
		result, err = assignFromAst(scope, stmt)
	case *ast.ConditionalStatement:
		result, err = conditionalFromAst(scope, stmt)
	case *ast.IterationStatement:
		result, err = iterationFromAst(scope, stmt)
	case *ast.ExpressionStatement:
		result, err = expressionStatementFromAst(scope, stmt)
	default:
		panic("unreachable")
	}
	//
	if err != nil {
		return nil, err
	}
	//
	result.EnforceParents()
	//
	return result, nil
}

// ============================================================================
// Block
// ============================================================================

// BlockStatement represents a sequence of statements executed in order within
// a fresh lexical scope.
type BlockStatement struct {
	nodeBase
	// Statements making up this block, in order.
	Statements []Statement
}

func (p *BlockStatement) isStatement() {}

// EnforceParents rewires the parent links of this statement's immediate
// children to point at this statement.
func (p *BlockStatement) EnforceParents() {
	for _, s := range p.Statements {
		s.SetParent(p)
	}
}

func blockFromAst(scope *Scope, block *ast.Block) (*BlockStatement, *Error) {
	inner := scope.Subscope()
	result := &BlockStatement{newNodeBase(scope, block.Span), nil}
	//
	for _, s := range block.Statements {
		stmt, err := statementFromAst(inner, s)
		if err != nil {
			return nil, err
		}
		//
		result.Statements = append(result.Statements, stmt)
	}
	// Claim children here, since blocks are also built directly (as function
	// and branch bodies) rather than through statement dispatch.
	result.EnforceParents()
	//
	return result, nil
}

// ============================================================================
// Return
// ============================================================================

// ReturnStatement represents the return of a value from the enclosing
// function.
type ReturnStatement struct {
	nodeBase
	// Value being returned.
	Value Expression
}

func (p *ReturnStatement) isStatement() {}

// EnforceParents rewires the parent links of this statement's immediate
// children to point at this statement.
func (p *ReturnStatement) EnforceParents() {
	p.Value.SetParent(p)
}

func returnFromAst(scope *Scope, stmt *ast.ReturnStatement) (Statement, *Error) {
	var output Type = UnitType()
	//
	if function := scope.EnclosingFunction(); function != nil {
		output = function.Output
	}
	//
	value, err := expressionFromAst(scope, stmt.Value, ExpectType(output))
	if err != nil {
		return nil, err
	}
	//
	return &ReturnStatement{newNodeBase(scope, stmt.Span), value}, nil
}

// ============================================================================
// Expression statement
// ============================================================================

// ExpressionStatement represents a bare expression evaluated for its effect.
type ExpressionStatement struct {
	nodeBase
	// Expression being evaluated.
	Expression Expression
}

func (p *ExpressionStatement) isStatement() {}

// EnforceParents rewires the parent links of this statement's immediate
// children to point at this statement.
func (p *ExpressionStatement) EnforceParents() {
	p.Expression.SetParent(p)
}

func expressionStatementFromAst(scope *Scope, stmt *ast.ExpressionStatement) (Statement, *Error) {
	expression, err := expressionFromAst(scope, stmt.Expression, nil)
	if err != nil {
		return nil, err
	}
	//
	return &ExpressionStatement{newNodeBase(scope, stmt.Span), expression}, nil
}
