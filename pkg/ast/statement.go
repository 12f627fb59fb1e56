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

// Statement represents an arbitrary statement in the syntax tree.  As with
// expressions, the set of statement forms is closed.
type Statement interface {
	Node
	isStatement()
}

// ============================================================================
// Block
// ============================================================================

// Block represents a brace-delimited sequence of statements, which introduces
// a new lexical scope.
type Block struct {
	// Statements making up this block, in order.
	Statements []Statement
	// Source location of this block.
	Span source.Span
}

// Location returns the span of the original source text from which this
// node was parsed.
func (p *Block) Location() source.Span { return p.Span }

func (p *Block) isStatement() {}

// ============================================================================
// Return
// ============================================================================

// ReturnStatement represents the return of a value from the enclosing
// function.  Functions which return nothing return the empty tuple.
type ReturnStatement struct {
	// Value being returned.
	Value Expression
	// Source location of this statement.
	Span source.Span
}

// Location returns the span of the original source text from which this
// node was parsed.
func (p *ReturnStatement) Location() source.Span { return p.Span }

func (p *ReturnStatement) isStatement() {}

// ============================================================================
// Definition
// ============================================================================

// Declare distinguishes the two variable declaration forms.
type Declare string

const (
	// Let declares a runtime variable.
	Let Declare = "let"
	// Const declares a compile-time constant variable, whose initialiser must
	// itself be compile-time constant.
	Const Declare = "const"
)

// VariableName represents a single name introduced by a definition statement.
type VariableName struct {
	// Indicates the variable can be reassigned.
	Mutable bool
	// Name being introduced.
	Identifier Identifier
}

// DefinitionStatement represents the introduction of one or more variables
// (e.g. "let x: u32 = 1" or "let (a, b) = t").  Multiple names destructure a
// tuple-typed initialiser.
type DefinitionStatement struct {
	// Declaration form (let or const).
	Declare Declare
	// Names being introduced, in order.
	Variables []VariableName
	// Declared type, or nil when the type is inferred.
	Type Type
	// Initialising value.
	Value Expression
	// Source location of this statement.
	Span source.Span
}

// Location returns the span of the original source text from which this
// node was parsed.
func (p *DefinitionStatement) Location() source.Span { return p.Span }

func (p *DefinitionStatement) isStatement() {}

// ============================================================================
// Assignment
// ============================================================================

// AssigneeAccess represents one step of the access path on the left-hand side
// of an assignment (e.g. the ".x" or "[i]" in "p.x[i] = e").
type AssigneeAccess interface {
	isAssigneeAccess()
}

// AssigneeMember accesses a named circuit member.
type AssigneeMember struct {
	// Name of the member being accessed.
	Name Identifier
}

func (p *AssigneeMember) isAssigneeAccess() {}

// AssigneeIndex accesses an array element.
type AssigneeIndex struct {
	// Index being accessed.
	Index Expression
}

func (p *AssigneeIndex) isAssigneeAccess() {}

// AssigneeTuple accesses a tuple position.
type AssigneeTuple struct {
	// Position being accessed.
	Index uint
}

func (p *AssigneeTuple) isAssigneeAccess() {}

// Assignee represents the left-hand side of an assignment: a variable,
// followed by zero or more member/index accesses into it.
type Assignee struct {
	// Variable being assigned.
	Identifier Identifier
	// Access path into the variable.
	Accesses []AssigneeAccess
	// Source location of this assignee.
	Span source.Span
}

// AssignStatement represents assignment of a value to (part of) a mutable
// variable.
type AssignStatement struct {
	// Target of this assignment.
	Assignee Assignee
	// Value being assigned.
	Value Expression
	// Source location of this statement.
	Span source.Span
}

// Location returns the span of the original source text from which this
// node was parsed.
func (p *AssignStatement) Location() source.Span { return p.Span }

func (p *AssignStatement) isStatement() {}

// ============================================================================
// Conditional
// ============================================================================

// ConditionalStatement represents an if statement, with an optional else
// branch which is either a block or a further conditional.
type ConditionalStatement struct {
	// Condition being branched upon.
	Condition Expression
	// Statements executed when the condition holds.
	Block Block
	// Else branch (a *Block or *ConditionalStatement), or nil.
	Next Statement
	// Source location of this statement.
	Span source.Span
}

// Location returns the span of the original source text from which this
// node was parsed.
func (p *ConditionalStatement) Location() source.Span { return p.Span }

func (p *ConditionalStatement) isStatement() {}

// ============================================================================
// Iteration
// ============================================================================

// IterationStatement represents a bounded for loop over an integer range.
// The loop variable is a compile-time constant within the body, since loops
// are unrolled during constraint synthesis.
type IterationStatement struct {
	// Name of the loop variable.
	Variable Identifier
	// Lower bound of the iteration (inclusive).
	Start Expression
	// Upper bound of the iteration (exclusive).
	Stop Expression
	// Statements executed on each iteration.
	Block Block
	// Source location of this statement.
	Span source.Span
}

// Location returns the span of the original source text from which this
// node was parsed.
func (p *IterationStatement) Location() source.Span { return p.Span }

func (p *IterationStatement) isStatement() {}

// ============================================================================
// Expression statement
// ============================================================================

// ExpressionStatement represents a bare expression evaluated for its effect
// (e.g. a call whose result is discarded).
type ExpressionStatement struct {
	// Expression being evaluated.
	Expression Expression
	// Source location of this statement.
	Span source.Span
}

// Location returns the span of the original source text from which this
// node was parsed.
func (p *ExpressionStatement) Location() source.Span { return p.Span }

func (p *ExpressionStatement) isStatement() {}
