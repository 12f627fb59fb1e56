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

// Program represents a complete compilation unit in semantic form.
type Program struct {
	// Name of this program.
	Name string
	// Context owning every entity of this program.
	Context *Context
	// Circuit declarations, in declaration order.
	Circuits []*Circuit
	// Free function declarations, in declaration order.
	Functions []*Function
	// Program scope, holding the top-level declarations.
	scope *Scope
}

// NewProgram converts a syntactic program into its semantic form.  Conversion
// proceeds in phases: circuit headers register first (so circuits resolve
// regardless of declaration order), then circuit members and free function
// headers, and finally every function body.  Errors accumulate across
// declarations; a declaration which fails is dropped whilst the remainder
// still convert.
func NewProgram(context *Context, decl *ast.Program) (*Program, []*Error) {
	var errors []*Error
	//
	program := &Program{
		Name:    decl.Name,
		Context: context,
		scope:   NewScope(context),
	}
	// Phase one: circuit headers.
	circuits := make([]*Circuit, len(decl.Circuits))
	//
	for i, c := range decl.Circuits {
		circuit := newCircuitHeader(program.scope, c)
		//
		if err := program.scope.DefineCircuit(circuit, c.Identifier.Span); err != nil {
			errors = append(errors, err)
		} else {
			circuits[i] = circuit
			program.Circuits = append(program.Circuits, circuit)
		}
	}
	// Phase two: circuit members (fields plus member function headers).
	for i, c := range decl.Circuits {
		if circuits[i] == nil {
			continue
		}
		//
		if err := circuits[i].fillFields(c); err != nil {
			errors = append(errors, err)
			circuits[i] = nil
		}
	}
	// Phase three: free function headers.
	functions := make([]*Function, len(decl.Functions))
	//
	for i, f := range decl.Functions {
		function, err := newFunctionHeader(program.scope, f, nil)
		//
		if err == nil {
			err = program.scope.DefineFunction(function, f.Identifier.Span)
		}
		//
		if err != nil {
			errors = append(errors, err)
		} else {
			functions[i] = function
			program.Functions = append(program.Functions, function)
		}
	}
	// Phase four: every function body.
	for i, c := range decl.Circuits {
		if circuits[i] == nil {
			continue
		}
		//
		if err := circuits[i].fillBodies(c); err != nil {
			errors = append(errors, err)
		}
	}
	//
	for i, f := range decl.Functions {
		if functions[i] == nil {
			continue
		}
		//
		if err := functions[i].fillBody(f); err != nil {
			errors = append(errors, err)
		}
	}
	//
	return program, errors
}

// Function returns the free function of the given name, or nil if there is
// none.
func (p *Program) Function(name string) *Function {
	return p.scope.ResolveFunction(name)
}

// Circuit returns the circuit of the given name, or nil if there is none.
func (p *Program) Circuit(name string) *Circuit {
	return p.scope.ResolveCircuit(name)
}

// TestFunctions returns the free functions annotated as tests, in declaration
// order.
func (p *Program) TestFunctions() []*Function {
	var tests []*Function
	//
	for _, f := range p.Functions {
		if f.IsTest {
			tests = append(tests, f)
		}
	}
	//
	return tests
}
