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

// CallExpression represents the (resolved) application of a function to its
// arguments.  For instance method calls the target records the receiver;
// free function and static method calls have no target.
type CallExpression struct {
	nodeBase
	// Function being applied.
	Function *Function
	// Receiver of an instance method call, or nil.
	Target Expression
	// Arguments being passed, in order.
	Arguments []Expression
}

func (p *CallExpression) isExpression() {}

// EnforceParents rewires the parent links of this expression's immediate
// children to point at this expression.
func (p *CallExpression) EnforceParents() {
	if p.Target != nil {
		p.Target.SetParent(p)
	}
	//
	for _, a := range p.Arguments {
		a.SetParent(p)
	}
}

// Type returns the complete type of this expression.
func (p *CallExpression) Type() Type { return p.Function.Output }

// IsMutRef determines whether or not this expression denotes a mutable place.
// Call results are fresh temporaries and hence always mutable.
func (p *CallExpression) IsMutRef() bool { return true }

// ConstValue returns the compile-time value of this expression.  Calls are
// never evaluated at compile time.
func (p *CallExpression) ConstValue() ConstValue { return nil }

// IsConsty determines whether or not this expression is acceptable in a
// position requiring a compile-time constant.
func (p *CallExpression) IsConsty() bool {
	if p.Target != nil && !p.Target.IsConsty() {
		return false
	}
	//
	for _, a := range p.Arguments {
		if !a.IsConsty() {
			return false
		}
	}
	//
	return true
}

// ============================================================================
// Conversion
// ============================================================================

// callFromAst resolves a call through one of its three syntactic forms: a
// free function call "f(..)", an instance method call "expr.f(..)" or a
// static method call "C::f(..)".
func callFromAst(scope *Scope, expr *ast.CallExpression, expected PartialType) (Expression, *Error) {
	var (
		function *Function
		target   Expression
		err      *Error
	)
	//
	switch callee := expr.Function.(type) {
	case *ast.Identifier:
		if function = scope.ResolveFunction(callee.Name); function == nil {
			return nil, errUnresolvedFunction(callee.Name, callee.Span)
		}
	case *ast.MemberAccess:
		function, target, err = resolveInstanceCall(scope, callee)
	case *ast.StaticAccess:
		function, err = resolveStaticCall(scope, callee)
	default:
		return nil, errIllegalStructure(expr.Span, "expression is not callable")
	}
	//
	if err != nil {
		return nil, err
	}
	//
	if err := checkExpected(expected, function.Output, expr); err != nil {
		return nil, err
	}
	// Test functions exist for the harness alone.
	if function.IsTest {
		return nil, errCallTestFunction(expr.Span)
	}
	//
	if len(expr.Arguments) != len(function.Parameters) {
		return nil, errArgumentCount(uint(len(function.Parameters)), uint(len(expr.Arguments)), expr.Span)
	}
	//
	arguments := make([]Expression, len(expr.Arguments))
	//
	for i, a := range expr.Arguments {
		parameter := function.Parameters[i]
		//
		argument, err := expressionFromAst(scope, a, ExpectType(parameter.Variable.Type))
		if err != nil {
			return nil, err
		}
		//
		if parameter.Const && !argument.IsConsty() {
			return nil, errNonConstArgument(parameter.Variable.Name, a.Location())
		}
		//
		arguments[i] = argument
	}
	//
	return &CallExpression{newNodeBase(scope, expr.Span), function, target, arguments}, nil
}

// resolveInstanceCall resolves a call of the form "expr.f(..)", validating the
// receiver against the qualifier of the resolved member function.
func resolveInstanceCall(scope *Scope, callee *ast.MemberAccess) (*Function, Expression, *Error) {
	target, err := expressionFromAst(scope, callee.Target, nil)
	if err != nil {
		return nil, nil, err
	}
	//
	typ, ok := target.Type().(*CircuitType)
	if !ok {
		return nil, nil, errUnexpectedType("circuit", target.Type().String(), callee.Target.Location())
	}
	//
	switch member := typ.Circuit.Member(callee.Name.Name).(type) {
	case *CircuitField:
		return nil, nil, errCircuitVariableCall(callee.Name.Name, callee.Name.Span)
	case *CircuitFunction:
		function := member.Function
		//
		switch function.Qualifier {
		case StaticFunction:
			return nil, nil, errStaticCallInvalid(function.Name, callee.Name.Span)
		case MutSelfFunction:
			if !target.IsMutRef() {
				return nil, nil, errMutCallInvalid(function.Name, callee.Name.Span)
			}
		}
		//
		return function, target, nil
	}
	//
	return nil, nil, errUnresolvedCircuitMember(typ.Circuit.Name, callee.Name.Name, callee.Name.Span)
}

// resolveStaticCall resolves a call of the form "C::f(..)", requiring the
// resolved member function to be static.
func resolveStaticCall(scope *Scope, callee *ast.StaticAccess) (*Function, *Error) {
	name, ok := callee.Target.(*ast.Identifier)
	//
	if !ok {
		return nil, errIllegalStructure(callee.Span, "static call target must name a circuit")
	}
	//
	circuit := scope.ResolveCircuit(name.Name)
	//
	if circuit == nil {
		// "Self" also names the enclosing circuit here.
		if name.Name != "Self" || scope.CircuitSelf() == nil {
			return nil, errUnresolvedCircuit(name.Name, name.Span)
		}
		//
		circuit = scope.CircuitSelf()
	}
	//
	switch member := circuit.Member(callee.Name.Name).(type) {
	case *CircuitField:
		return nil, errCircuitVariableCall(callee.Name.Name, callee.Name.Span)
	case *CircuitFunction:
		function := member.Function
		//
		if function.Qualifier != StaticFunction {
			return nil, errMemberCallInvalid(function.Name, callee.Name.Span)
		}
		//
		return function, nil
	}
	//
	return nil, errUnresolvedCircuitMember(circuit.Name, callee.Name.Name, callee.Name.Span)
}
