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

// DefinitionStatement represents the introduction of one or more variables.
// Multiple variables destructure a tuple-typed initialiser.
type DefinitionStatement struct {
	nodeBase
	// Variables being introduced, in order.
	Variables []*Variable
	// Initialising value.
	Value Expression
}

func (p *DefinitionStatement) isStatement() {}

// EnforceParents rewires the parent links of this statement's immediate
// children to point at this statement.
func (p *DefinitionStatement) EnforceParents() {
	p.Value.SetParent(p)
}

func definitionFromAst(scope *Scope, stmt *ast.DefinitionStatement) (Statement, *Error) {
	var (
		declared Type
		hint     PartialType
		err      *Error
	)
	//
	if stmt.Type != nil {
		if declared, err = scope.ResolveType(stmt.Type, stmt.Span); err != nil {
			return nil, err
		}
		//
		hint = ExpectType(declared)
	} else if len(stmt.Variables) > 1 {
		// Destructuring fixes the arity even when the type is inferred.
		hint = &PartialTuple{make([]PartialType, len(stmt.Variables))}
	}
	//
	value, err := expressionFromAst(scope, stmt.Value, hint)
	if err != nil {
		return nil, err
	}
	//
	konst := stmt.Declare == ast.Const
	//
	if konst && !value.IsConsty() {
		return nil, errNonConstDefinition(stmt.Variables[0].Identifier.Name, stmt.Span)
	}
	// Determine the type bound to each name.
	types := make([]Type, len(stmt.Variables))
	values := make([]ConstValue, len(stmt.Variables))
	//
	if len(stmt.Variables) == 1 {
		types[0] = value.Type()
		values[0] = value.ConstValue()
	} else {
		tuple, ok := value.Type().(*TupleType)
		//
		if !ok || len(tuple.Elements) != len(stmt.Variables) {
			return nil, errUnexpectedType(
				(&PartialTuple{make([]PartialType, len(stmt.Variables))}).String(),
				value.Type().String(), stmt.Value.Location())
		}
		//
		copy(types, tuple.Elements)
		//
		if cv, ok := value.ConstValue().(*TupleValue); ok {
			copy(values, cv.Elements)
		}
	}
	//
	result := &DefinitionStatement{newNodeBase(scope, stmt.Span), nil, value}
	//
	for i, v := range stmt.Variables {
		variable := &Variable{
			Id:          scope.Context().NextId(),
			Name:        v.Identifier.Name,
			Type:        types[i],
			Mutable:     v.Mutable,
			Const:       konst,
			Declaration: DefinitionDeclaration,
		}
		//
		if konst {
			variable.Value = values[i]
		}
		//
		if err := scope.DefineVariable(variable, v.Identifier.Span); err != nil {
			return nil, err
		}
		//
		variable.Assignments = append(variable.Assignments, result)
		result.Variables = append(result.Variables, variable)
	}
	//
	return result, nil
}

// ============================================================================
// Assignment
// ============================================================================

// AssignAccess represents one step of the access path on the left-hand side
// of an assignment.
type AssignAccess interface {
	isAssignAccess()
}

// AssignMember accesses a named circuit field.
type AssignMember struct {
	// Name of the field being accessed.
	Name string
}

func (p *AssignMember) isAssignAccess() {}

// AssignIndex accesses an array element.
type AssignIndex struct {
	// Index being accessed.
	Index Expression
}

func (p *AssignIndex) isAssignAccess() {}

// AssignTuple accesses a tuple position.
type AssignTuple struct {
	// Position being accessed.
	Index uint
}

func (p *AssignTuple) isAssignAccess() {}

// AssignStatement represents assignment of a value to (part of) a mutable
// variable.
type AssignStatement struct {
	nodeBase
	// Variable being assigned.
	Variable *Variable
	// Access path into the variable.
	Accesses []AssignAccess
	// Value being assigned.
	Value Expression
}

func (p *AssignStatement) isStatement() {}

// EnforceParents rewires the parent links of this statement's immediate
// children to point at this statement.
func (p *AssignStatement) EnforceParents() {
	for _, a := range p.Accesses {
		if index, ok := a.(*AssignIndex); ok {
			index.Index.SetParent(p)
		}
	}
	//
	p.Value.SetParent(p)
}

func assignFromAst(scope *Scope, stmt *ast.AssignStatement) (Statement, *Error) {
	name := stmt.Assignee.Identifier
	variable := scope.ResolveVariable(name.Name)
	//
	if variable == nil {
		return nil, errUnresolvedVariable(name.Name, name.Span)
	} else if !variable.Mutable {
		return nil, errImmutableAssignment(name.Name, name.Span)
	}
	// Walk the access path, narrowing the type being assigned.
	typ := variable.Type
	accesses := make([]AssignAccess, len(stmt.Assignee.Accesses))
	//
	for i, a := range stmt.Assignee.Accesses {
		var err *Error
		//
		if typ, accesses[i], err = assignAccessFromAst(scope, typ, a, stmt); err != nil {
			return nil, err
		}
	}
	//
	value, err := expressionFromAst(scope, stmt.Value, ExpectType(typ))
	if err != nil {
		return nil, err
	}
	//
	result := &AssignStatement{newNodeBase(scope, stmt.Span), variable, accesses, value}
	variable.Assignments = append(variable.Assignments, result)
	//
	return result, nil
}

func assignAccessFromAst(scope *Scope, typ Type, access ast.AssigneeAccess,
	stmt *ast.AssignStatement) (Type, AssignAccess, *Error) {
	//
	switch access := access.(type) {
	case *ast.AssigneeMember:
		circuit, ok := typ.(*CircuitType)
		if !ok {
			return nil, nil, errUnexpectedType("circuit", typ.String(), stmt.Assignee.Span)
		}
		//
		field, ok := circuit.Circuit.Member(access.Name.Name).(*CircuitField)
		if !ok {
			return nil, nil, errUnresolvedCircuitMember(circuit.Circuit.Name, access.Name.Name, access.Name.Span)
		}
		//
		return field.Type, &AssignMember{field.Name}, nil
	case *ast.AssigneeIndex:
		array, ok := typ.(*ArrayType)
		if !ok {
			return nil, nil, errUnexpectedType("array", typ.String(), stmt.Assignee.Span)
		}
		//
		index, err := expressionFromAst(scope, access.Index, nil)
		if err != nil {
			if index, err = expressionFromAst(scope, access.Index, ExpectType(&IntegerType{ast.U32})); err != nil {
				return nil, nil, err
			}
		}
		//
		if _, ok := index.Type().(*IntegerType); !ok {
			return nil, nil, errUnexpectedType("integer", index.Type().String(), access.Index.Location())
		}
		//
		if value, ok := index.ConstValue().(*IntValue); ok {
			if i, ok := value.AsUint(); !ok || i >= array.Size {
				return nil, nil, errIndexOutOfBounds(i, array.Size, access.Index.Location())
			}
		}
		//
		return array.Element, &AssignIndex{index}, nil
	case *ast.AssigneeTuple:
		tuple, ok := typ.(*TupleType)
		if !ok {
			return nil, nil, errUnexpectedType("tuple", typ.String(), stmt.Assignee.Span)
		}
		//
		if access.Index >= uint(len(tuple.Elements)) {
			return nil, nil, errIndexOutOfBounds(access.Index, uint(len(tuple.Elements)), stmt.Assignee.Span)
		}
		//
		return tuple.Elements[access.Index], &AssignTuple{access.Index}, nil
	}
	//
	panic("unreachable")
}
