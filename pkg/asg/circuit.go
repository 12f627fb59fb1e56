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

// Circuit represents a circuit declaration within the semantic graph.  Like
// functions, circuits are built in two phases: a header carrying just the
// name is registered first (so that circuits can reference each other and
// themselves), after which members are resolved.
type Circuit struct {
	// Unique identifier of this circuit.
	Id uint
	// Name of this circuit.
	Name string
	// Source location of this declaration.
	Span util.Option[source.Span]
	// Members of this circuit, in declaration order.
	Members []CircuitMember
	// Scope in which member types and bodies resolve, with "Self" bound to
	// this circuit.
	scope *Scope
}

// CircuitMember represents a single member of a circuit, which is either a
// typed field or a member function.
type CircuitMember interface {
	isCircuitMember()
	// MemberName returns the name of this member.
	MemberName() string
}

// CircuitField represents a typed field of a circuit.
type CircuitField struct {
	// Name of this field.
	Name string
	// Resolved type of this field.
	Type Type
}

func (p *CircuitField) isCircuitMember() {}

// MemberName returns the name of this member.
func (p *CircuitField) MemberName() string { return p.Name }

// CircuitFunction represents a member function of a circuit.
type CircuitFunction struct {
	// The underlying function.
	Function *Function
}

func (p *CircuitFunction) isCircuitMember() {}

// MemberName returns the name of this member.
func (p *CircuitFunction) MemberName() string { return p.Function.Name }

// Member returns the member of this circuit with the given name, or nil if
// there is none.
func (p *Circuit) Member(name string) CircuitMember {
	for _, m := range p.Members {
		if m.MemberName() == name {
			return m
		}
	}
	//
	return nil
}

// ============================================================================
// Construction
// ============================================================================

// newCircuitHeader registers a circuit by name ahead of member resolution, so
// that forward and self references resolve.
func newCircuitHeader(scope *Scope, decl *ast.Circuit) *Circuit {
	circuit := &Circuit{
		Id:   scope.Context().NextId(),
		Name: decl.Identifier.Name,
		Span: util.Some(decl.Span),
	}
	//
	circuit.scope = scope.Subscope()
	circuit.scope.circuitSelf = circuit
	//
	return circuit
}

// fillFields resolves the field members of this circuit, along with the
// headers of its member functions.  Bodies are not touched here, since they
// may reference circuits whose members are yet to be resolved.
func (p *Circuit) fillFields(decl *ast.Circuit) *Error {
	seen := make(map[string]bool)
	//
	for _, m := range decl.Members {
		var member CircuitMember
		//
		switch m := m.(type) {
		case *ast.CircuitVariable:
			typ, err := p.scope.ResolveType(m.Type, m.Span)
			if err != nil {
				return err
			}
			//
			member = &CircuitField{m.Identifier.Name, typ}
		case *ast.CircuitFunction:
			function, err := newFunctionHeader(p.scope, m.Function, p)
			if err != nil {
				return err
			}
			//
			member = &CircuitFunction{function}
		default:
			panic("unreachable")
		}
		//
		if seen[member.MemberName()] {
			return errDuplicateDefinition(member.MemberName(), m.Location())
		}
		//
		seen[member.MemberName()] = true
		p.Members = append(p.Members, member)
	}
	//
	return nil
}

// fillBodies converts the bodies of this circuit's member functions.
func (p *Circuit) fillBodies(decl *ast.Circuit) *Error {
	for _, m := range decl.Members {
		if m, ok := m.(*ast.CircuitFunction); ok {
			function := p.Member(m.Function.Identifier.Name).(*CircuitFunction).Function
			//
			if err := function.fillBody(m.Function); err != nil {
				return err
			}
		}
	}
	//
	return nil
}
