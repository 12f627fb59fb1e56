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
	"github.com/zirclang/zirc/pkg/util"
	"github.com/zirclang/zirc/pkg/util/source"
)

// FunctionQualifier distinguishes the four receiver forms a function can
// take.
type FunctionQualifier uint8

const (
	// StaticFunction indicates a function without a receiver, covering free
	// functions and static member functions alike.
	StaticFunction FunctionQualifier = iota
	// SelfFunction indicates a member function with an immutable receiver.
	SelfFunction
	// ConstSelfFunction indicates a member function with a compile-time
	// constant receiver.
	ConstSelfFunction
	// MutSelfFunction indicates a member function with a mutable receiver.
	MutSelfFunction
)

// FunctionParameter represents a single formal parameter of a function.
type FunctionParameter struct {
	// Variable bound to this parameter within the body.
	Variable *Variable
	// Indicates this parameter only accepts compile-time constant arguments.
	Const bool
}

// Function represents a function declaration within the semantic graph.
// Functions are built in two phases: headers (signatures plus parameter
// variables) first, then bodies, so that calls resolve regardless of
// declaration order.
type Function struct {
	// Unique identifier of this function.
	Id uint
	// Name of this function.
	Name string
	// Source location of this declaration.
	Span util.Option[source.Span]
	// Receiver form of this function.
	Qualifier FunctionQualifier
	// Formal parameters of this function, in declaration order (excluding
	// any receiver).
	Parameters []FunctionParameter
	// Resolved output type of this function (the unit type when nothing is
	// returned).
	Output Type
	// Indicates this function is annotated as a test.
	IsTest bool
	// Circuit this function is a member of, or nil for a free function.
	Circuit *Circuit
	// Variable bound to the receiver within the body, or nil.
	SelfVariable *Variable
	// Body of this function, once filled.
	Body *BlockStatement
	// Scope the body converts within.
	scope *Scope
}

// ============================================================================
// Construction
// ============================================================================

// newFunctionHeader resolves the signature of a function and prepares the
// scope its body will convert within, binding parameter variables (and the
// receiver, where there is one).
func newFunctionHeader(scope *Scope, decl *ast.Function, circuit *Circuit) (*Function, *Error) {
	function := &Function{
		Id:      scope.Context().NextId(),
		Name:    decl.Identifier.Name,
		Span:    util.Some(decl.Span),
		Output:  UnitType(),
		IsTest:  decl.IsTest(),
		Circuit: circuit,
	}
	//
	if decl.Output != nil {
		output, err := scope.ResolveType(decl.Output, decl.Span)
		if err != nil {
			return nil, err
		}
		//
		function.Output = output
	}
	//
	function.scope = scope.Subscope()
	function.scope.function = function
	//
	for i, input := range decl.Inputs {
		switch input := input.(type) {
		case *ast.SelfInput:
			if circuit == nil || i != 0 {
				return nil, errInvalidSelf(input.Span)
			}
			//
			if err := function.bindSelf(input); err != nil {
				return nil, err
			}
		case *ast.ParameterInput:
			if err := function.bindParameter(scope, input); err != nil {
				return nil, err
			}
		default:
			panic("unreachable")
		}
	}
	//
	return function, nil
}

// bindSelf binds the receiver variable, fixing the qualifier of this
// function.
func (p *Function) bindSelf(input *ast.SelfInput) *Error {
	switch input.Kind {
	case ast.SelfRef:
		p.Qualifier = SelfFunction
	case ast.ConstSelfRef:
		p.Qualifier = ConstSelfFunction
	case ast.MutSelfRef:
		p.Qualifier = MutSelfFunction
	}
	//
	p.SelfVariable = &Variable{
		Id:          p.scope.Context().NextId(),
		Name:        "self",
		Type:        &CircuitType{p.Circuit},
		Mutable:     input.Kind == ast.MutSelfRef,
		Const:       input.Kind == ast.ConstSelfRef,
		Declaration: ParameterDeclaration,
	}
	//
	return p.scope.DefineVariable(p.SelfVariable, input.Span)
}

// bindParameter binds a single named parameter variable.  Note, parameter
// types resolve in the enclosing scope rather than the body scope.
func (p *Function) bindParameter(scope *Scope, input *ast.ParameterInput) *Error {
	typ, err := scope.ResolveType(input.Type, input.Span)
	if err != nil {
		return err
	}
	//
	variable := &Variable{
		Id:          scope.Context().NextId(),
		Name:        input.Identifier.Name,
		Type:        typ,
		Mutable:     input.Mutable,
		Const:       input.Const,
		Declaration: ParameterDeclaration,
	}
	//
	if err := p.scope.DefineVariable(variable, input.Identifier.Span); err != nil {
		return err
	}
	//
	p.Parameters = append(p.Parameters, FunctionParameter{variable, input.Const})
	//
	return nil
}

// fillBody converts the body of this function and checks it returns on every
// control path (where an output type demands so).
func (p *Function) fillBody(decl *ast.Function) *Error {
	body, err := blockFromAst(p.scope, &decl.Block)
	if err != nil {
		return err
	}
	//
	p.Body = body
	//
	reducer := NewReturnPathReducer()
	returns := ReduceStatement[bool](reducer, body)
	//
	if len(reducer.Errors) > 0 {
		return reducer.Errors[0]
	}
	//
	if !returns && !p.Output.Equals(UnitType()) {
		return errMissingReturn(p.Name, p.Span.UnwrapOr(source.NewSpan(0, 0)))
	}
	//
	return nil
}
