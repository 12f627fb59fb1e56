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

// VariableRef represents a read of a variable.  All references to one binding
// share the underlying Variable, which records them in turn.
type VariableRef struct {
	nodeBase
	// Variable being read.
	Variable *Variable
}

func (p *VariableRef) isExpression() {}

// EnforceParents rewires the parent links of this expression's immediate
// children (of which a variable reference has none).
func (p *VariableRef) EnforceParents() {}

// Type returns the complete type of this expression.
func (p *VariableRef) Type() Type { return p.Variable.Type }

// IsMutRef determines whether or not this expression denotes a mutable place.
func (p *VariableRef) IsMutRef() bool { return p.Variable.Mutable }

// ConstValue returns the compile-time value of this expression, or nil when
// the expression is not compile-time evaluable.
func (p *VariableRef) ConstValue() ConstValue { return p.Variable.Value }

// IsConsty determines whether or not this expression is acceptable in a
// position requiring a compile-time constant.  Reads of const variables
// qualify, as do reads of loop variables (whose values are fixed once the
// enclosing loop is unrolled).
func (p *VariableRef) IsConsty() bool {
	return p.Variable.Const || p.Variable.Declaration == IterationDeclaration
}

// ============================================================================
// Conversion
// ============================================================================

func variableRefFromAst(scope *Scope, expr *ast.Identifier, expected PartialType) (Expression, *Error) {
	variable := scope.ResolveVariable(expr.Name)
	//
	if variable == nil {
		if expr.Name == "self" {
			return nil, errInvalidSelf(expr.Span)
		}
		//
		return nil, errUnresolvedVariable(expr.Name, expr.Span)
	}
	//
	if err := checkExpected(expected, variable.Type, expr); err != nil {
		return nil, err
	}
	//
	ref := &VariableRef{newNodeBase(scope, expr.Span), variable}
	variable.References = append(variable.References, ref)
	//
	return ref, nil
}
