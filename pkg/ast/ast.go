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

// Node provides a common interface for all elements of the syntax tree.  Every
// node records the span of the original source text it was parsed from, which
// is subsequently used for reporting diagnostics against the original source
// file.
type Node interface {
	// Location returns the span of the original source text from which this
	// node was parsed.
	Location() source.Span
}

// Identifier represents a name given to some entity in the original source,
// such as a variable, function or circuit.
type Identifier struct {
	// Name of the entity being identified.
	Name string
	// Source location of this identifier.
	Span source.Span
}

// Location returns the span of the original source text from which this
// node was parsed.
func (p *Identifier) Location() source.Span {
	return p.Span
}

func (p *Identifier) isExpression() {}

func (p *Identifier) String() string {
	return p.Name
}

// Annotation represents a marker attached to a function declaration, such as
// "@test".  Annotations carry no arguments at this time.
type Annotation struct {
	// Name of this annotation (without the leading "@").
	Name string
	// Source location of this annotation.
	Span source.Span
}

// Location returns the span of the original source text from which this
// node was parsed.
func (p *Annotation) Location() source.Span {
	return p.Span
}

// ============================================================================
// Program
// ============================================================================

// Program represents a complete compilation unit, as produced by the parser.
// Declaration order is retained since it determines identifier numbering in
// the semantic graph.
type Program struct {
	// Name of this program (e.g. derived from its filename).
	Name string
	// Top-level circuit declarations, in declaration order.
	Circuits []*Circuit
	// Top-level function declarations, in declaration order.
	Functions []*Function
}

// ============================================================================
// Function
// ============================================================================

// Function represents a function declaration, either at the top level of a
// program or as a member of a circuit.
type Function struct {
	// Annotations attached to this function (e.g. "@test").
	Annotations []Annotation
	// Name of this function.
	Identifier Identifier
	// Formal inputs of this function, in declaration order.  A leading self
	// input (if any) determines the function's qualifier.
	Inputs []FunctionInput
	// Declared output type, or nil when the function returns nothing.
	Output Type
	// Body of this function.
	Block Block
	// Source location of this declaration.
	Span source.Span
}

// Location returns the span of the original source text from which this
// node was parsed.
func (p *Function) Location() source.Span {
	return p.Span
}

// IsTest determines whether or not this function is annotated as a test.
func (p *Function) IsTest() bool {
	for _, a := range p.Annotations {
		if a.Name == "test" {
			return true
		}
	}
	//
	return false
}

// FunctionInput represents a single formal input of a function, which is
// either a (possibly qualified) self receiver or a named parameter.
type FunctionInput interface {
	Node
	isFunctionInput()
}

// SelfKind distinguishes the three forms a self receiver can take.
type SelfKind uint8

const (
	// SelfRef indicates an immutable self receiver (i.e. "self").
	SelfRef SelfKind = iota
	// ConstSelfRef indicates a compile-time constant self receiver (i.e.
	// "const self").
	ConstSelfRef
	// MutSelfRef indicates a mutable self receiver (i.e. "mut self").
	MutSelfRef
)

// SelfInput represents a self receiver appearing as the first input of a
// circuit member function.
type SelfInput struct {
	// Kind of receiver (self, const self or mut self).
	Kind SelfKind
	// Source location of this input.
	Span source.Span
}

// Location returns the span of the original source text from which this
// node was parsed.
func (p *SelfInput) Location() source.Span {
	return p.Span
}

func (p *SelfInput) isFunctionInput() {}

// ParameterInput represents a named (and typed) function parameter.
type ParameterInput struct {
	// Name of this parameter.
	Identifier Identifier
	// Indicates this parameter only accepts compile-time constant arguments.
	Const bool
	// Indicates this parameter can be reassigned within the function body.
	Mutable bool
	// Declared type of this parameter.
	Type Type
	// Source location of this input.
	Span source.Span
}

// Location returns the span of the original source text from which this
// node was parsed.
func (p *ParameterInput) Location() source.Span {
	return p.Span
}

func (p *ParameterInput) isFunctionInput() {}

// ============================================================================
// Circuit
// ============================================================================

// Circuit represents a circuit declaration; that is, a named aggregate of
// typed fields and member functions (without inheritance).
type Circuit struct {
	// Name of this circuit.
	Identifier Identifier
	// Members of this circuit, in declaration order.
	Members []CircuitMember
	// Source location of this declaration.
	Span source.Span
}

// Location returns the span of the original source text from which this
// node was parsed.
func (p *Circuit) Location() source.Span {
	return p.Span
}

// CircuitMember represents a single member of a circuit declaration, which is
// either a typed field or a member function.
type CircuitMember interface {
	Node
	isCircuitMember()
}

// CircuitVariable represents a typed field of a circuit.
type CircuitVariable struct {
	// Name of this field.
	Identifier Identifier
	// Declared type of this field.
	Type Type
	// Source location of this member.
	Span source.Span
}

// Location returns the span of the original source text from which this
// node was parsed.
func (p *CircuitVariable) Location() source.Span {
	return p.Span
}

func (p *CircuitVariable) isCircuitMember() {}

// CircuitFunction represents a member function of a circuit.  Whether the
// function is static or instance-bound is determined by the presence (and
// kind) of a self input.
type CircuitFunction struct {
	// The underlying function declaration.
	Function *Function
}

// Location returns the span of the original source text from which this
// node was parsed.
func (p *CircuitFunction) Location() source.Span {
	return p.Function.Span
}

func (p *CircuitFunction) isCircuitMember() {}
