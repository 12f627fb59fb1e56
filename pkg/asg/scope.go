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
	"github.com/zirclang/zirc/pkg/util/source"
)

// Scope represents one level of the lexical environment during graph
// construction.  Scopes form a chain from the innermost block out to the
// program scope; resolution walks the chain outwards whilst definition always
// targets the innermost scope.
type Scope struct {
	// Context owning this scope.
	context *Context
	// Enclosing scope, or nil for the program scope.
	parent *Scope
	// Variables defined in this scope.
	variables map[string]*Variable
	// Functions defined in this scope.
	functions map[string]*Function
	// Circuits defined in this scope.
	circuits map[string]*Circuit
	// Circuit whose member function is under construction (if any).
	circuitSelf *Circuit
	// Function under construction (if any).
	function *Function
}

// NewScope constructs an empty program scope within the given context.
func NewScope(context *Context) *Scope {
	return &Scope{
		context:   context,
		variables: make(map[string]*Variable),
		functions: make(map[string]*Function),
		circuits:  make(map[string]*Circuit),
	}
}

// Subscope constructs a fresh scope nested immediately within this one.
func (p *Scope) Subscope() *Scope {
	return &Scope{
		context:   p.context,
		parent:    p,
		variables: make(map[string]*Variable),
		functions: make(map[string]*Function),
		circuits:  make(map[string]*Circuit),
	}
}

// Context returns the context owning this scope.
func (p *Scope) Context() *Context {
	return p.context
}

// ============================================================================
// Definition
// ============================================================================

// DefineVariable places the given variable into this scope, failing if this
// scope (though not an enclosing one) already defines the name.
func (p *Scope) DefineVariable(variable *Variable, span source.Span) *Error {
	if _, ok := p.variables[variable.Name]; ok {
		return errDuplicateDefinition(variable.Name, span)
	}
	//
	p.variables[variable.Name] = variable
	//
	return nil
}

// DefineFunction places the given function into this scope, failing if this
// scope already defines the name.
func (p *Scope) DefineFunction(function *Function, span source.Span) *Error {
	if _, ok := p.functions[function.Name]; ok {
		return errDuplicateDefinition(function.Name, span)
	}
	//
	p.functions[function.Name] = function
	//
	return nil
}

// DefineCircuit places the given circuit into this scope, failing if this
// scope already defines the name.
func (p *Scope) DefineCircuit(circuit *Circuit, span source.Span) *Error {
	if _, ok := p.circuits[circuit.Name]; ok {
		return errDuplicateDefinition(circuit.Name, span)
	}
	//
	p.circuits[circuit.Name] = circuit
	//
	return nil
}

// ============================================================================
// Resolution
// ============================================================================

// ResolveVariable resolves the given name against this scope and its
// ancestors, returning nil if no scope defines it.
func (p *Scope) ResolveVariable(name string) *Variable {
	for s := p; s != nil; s = s.parent {
		if v, ok := s.variables[name]; ok {
			return v
		}
	}
	//
	return nil
}

// ResolveFunction resolves the given name against this scope and its
// ancestors, returning nil if no scope defines it.
func (p *Scope) ResolveFunction(name string) *Function {
	for s := p; s != nil; s = s.parent {
		if f, ok := s.functions[name]; ok {
			return f
		}
	}
	//
	return nil
}

// ResolveCircuit resolves the given name against this scope and its
// ancestors, returning nil if no scope defines it.
func (p *Scope) ResolveCircuit(name string) *Circuit {
	for s := p; s != nil; s = s.parent {
		if c, ok := s.circuits[name]; ok {
			return c
		}
	}
	//
	return nil
}

// CircuitSelf returns the circuit whose member function encloses this scope,
// or nil outside circuit member functions.
func (p *Scope) CircuitSelf() *Circuit {
	for s := p; s != nil; s = s.parent {
		if s.circuitSelf != nil {
			return s.circuitSelf
		}
	}
	//
	return nil
}

// EnclosingFunction returns the function whose body encloses this scope, or
// nil outside function bodies.
func (p *Scope) EnclosingFunction() *Function {
	for s := p; s != nil; s = s.parent {
		if s.function != nil {
			return s.function
		}
	}
	//
	return nil
}

// ============================================================================
// Type resolution
// ============================================================================

// ResolveType resolves a syntactically written type into a semantic type,
// resolving named references against the circuits in scope and substituting
// "Self" for the enclosing circuit.  The given span is used for diagnostics,
// since written types do not carry their own locations.
func (p *Scope) ResolveType(t ast.Type, span source.Span) (Type, *Error) {
	switch t := t.(type) {
	case *ast.BooleanType:
		return &BooleanType{}, nil
	case *ast.FieldType:
		return &FieldType{}, nil
	case *ast.GroupType:
		return &GroupType{}, nil
	case *ast.AddressType:
		return &AddressType{}, nil
	case *ast.CharType:
		return &CharType{}, nil
	case ast.IntegerType:
		return &IntegerType{t}, nil
	case *ast.ArrayType:
		element, err := p.ResolveType(t.Element, span)
		if err != nil {
			return nil, err
		}
		//
		return &ArrayType{element, t.Size}, nil
	case *ast.TupleType:
		elements := make([]Type, len(t.Elements))
		//
		for i, e := range t.Elements {
			element, err := p.ResolveType(e, span)
			if err != nil {
				return nil, err
			}
			//
			elements[i] = element
		}
		//
		return &TupleType{elements}, nil
	case *ast.NamedType:
		if circuit := p.ResolveCircuit(t.Name.Name); circuit != nil {
			return &CircuitType{circuit}, nil
		}
		//
		return nil, errUnresolvedCircuit(t.Name.Name, t.Name.Span)
	case *ast.SelfType:
		if circuit := p.CircuitSelf(); circuit != nil {
			return &CircuitType{circuit}, nil
		}
		//
		return nil, errInvalidSelf(span)
	}
	//
	panic("unreachable")
}
