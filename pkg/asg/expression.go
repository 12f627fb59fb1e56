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

// Expression represents a typed expression within the semantic graph.  Every
// expression knows its complete type, whether it is compile-time constant, and
// (where so) its constant value.
type Expression interface {
	Node
	isExpression()
	// EnforceParents rewires the parent links of this expression's immediate
	// children to point at this expression.  It must be invoked whenever
	// children are attached or replaced.
	EnforceParents()
	// Type returns the complete type of this expression.
	Type() Type
	// IsMutRef determines whether or not this expression denotes a mutable
	// place (and hence may be the target of a mutating method call).
	IsMutRef() bool
	// ConstValue returns the compile-time value of this expression, or nil
	// when the expression is not compile-time evaluable.
	ConstValue() ConstValue
	// IsConsty determines whether or not this expression is acceptable in a
	// position requiring a compile-time constant.  This is a structural
	// property and, unlike ConstValue, never requires evaluation to succeed.
	IsConsty() bool
}

// expressionFromAst converts a syntactic expression into its semantic form
// within the given scope.  The expected pattern (which may be nil) flows
// downward to drive inference of implicit literals; the type of the resulting
// expression always fits the pattern.  Children are converted bottom-up, after
// which the new node claims them via EnforceParents.  The parent of the node
// itself remains nil until its own parent claims it in turn.
//
//nolint:gocyclo
func expressionFromAst(scope *Scope, expr ast.Expression, expected PartialType) (Expression, *Error) {
	var (
		result Expression
		err    *Error
	)
	//
	switch expr := expr.(type) {
	case *ast.Identifier:
		result, err = variableRefFromAst(scope, expr, expected)
	case *ast.BooleanLiteral, *ast.IntegerLiteral, *ast.FieldLiteral,
		*ast.GroupLiteral, *ast.AddressLiteral, *ast.CharLiteral:
		result, err = constantFromAst(scope, expr, expected)
	case *ast.BinaryExpression:
		result, err = binaryFromAst(scope, expr, expected)
	case *ast.UnaryExpression:
		result, err = unaryFromAst(scope, expr, expected)
	case *ast.TernaryExpression:
		result, err = ternaryFromAst(scope, expr, expected)
	case *ast.CallExpression:
		result, err = callFromAst(scope, expr, expected)
	case *ast.MemberAccess:
		result, err = circuitAccessFromAst(scope, expr, expected)
	case *ast.StaticAccess:
		return nil, errIllegalStructure(expr.Span, "static member access is only valid as a call target")
	case *ast.ArrayInlineExpression:
		result, err = arrayInlineFromAst(scope, expr, expected)
	case *ast.ArrayInitExpression:
		result, err = arrayInitFromAst(scope, expr, expected)
	case *ast.ArrayAccessExpression:
		result, err = arrayAccessFromAst(scope, expr, expected)
	case *ast.TupleInitExpression:
		result, err = tupleInitFromAst(scope, expr, expected)
	case *ast.TupleAccessExpression:
		result, err = tupleAccessFromAst(scope, expr, expected)
	case *ast.CircuitInitExpression:
		result, err = circuitInitFromAst(scope, expr, expected)
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

// checkExpected verifies the complete type of a freshly converted expression
// against the expectation which flowed down to it.
func checkExpected(expected PartialType, typ Type, node ast.Node) *Error {
	if !MatchesPartial(expected, typ) {
		return errUnexpectedType(PartialString(expected), typ.String(), node.Location())
	}
	//
	return nil
}
