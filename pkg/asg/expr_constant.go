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
	"math/big"

	"github.com/zirclang/zirc/pkg/ast"
	"github.com/zirclang/zirc/pkg/util"
	"github.com/zirclang/zirc/pkg/util/source"
)

// Constant represents an expression whose value is known at compile time,
// either written as a literal or produced by folding.
type Constant struct {
	nodeBase
	// Type of this constant.
	typ Type
	// Value of this constant.
	value ConstValue
}

// NewConstant allocates a fresh constant of the given type and value within
// the given context.
func NewConstant(context *Context, span util.Option[source.Span], typ Type, value ConstValue) *Constant {
	return &Constant{nodeBase{context.NextId(), span, nil}, typ, value}
}

func (p *Constant) isExpression() {}

// EnforceParents rewires the parent links of this expression's immediate
// children (of which a constant has none).
func (p *Constant) EnforceParents() {}

// Type returns the complete type of this expression.
func (p *Constant) Type() Type { return p.typ }

// IsMutRef determines whether or not this expression denotes a mutable place.
func (p *Constant) IsMutRef() bool { return false }

// ConstValue returns the compile-time value of this expression.
func (p *Constant) ConstValue() ConstValue { return p.value }

// IsConsty determines whether or not this expression is acceptable in a
// position requiring a compile-time constant.
func (p *Constant) IsConsty() bool { return true }

// ============================================================================
// Conversion
// ============================================================================

func constantFromAst(scope *Scope, expr ast.Expression, expected PartialType) (Expression, *Error) {
	var (
		typ   Type
		value ConstValue
		err   *Error
	)
	//
	switch expr := expr.(type) {
	case *ast.BooleanLiteral:
		typ, value = &BooleanType{}, &BoolValue{expr.Value}
	case *ast.IntegerLiteral:
		typ, value, err = integerConstantFromAst(expr, expected)
	case *ast.FieldLiteral:
		var parsed *big.Int
		//
		if parsed, err = parseLiteral(expr.Value, expr.Span); err == nil {
			typ, value = &FieldType{}, NewFieldValue(parsed)
		}
	case *ast.GroupLiteral:
		var parsed *big.Int
		//
		if parsed, err = parseLiteral(expr.Value, expr.Span); err == nil {
			typ, value = &GroupType{}, NewGroupValue(parsed)
		}
	case *ast.AddressLiteral:
		typ, value = &AddressType{}, &AddressValue{expr.Value}
	case *ast.CharLiteral:
		typ, value = &CharType{}, &CharValue{expr.Value}
	default:
		panic("unreachable")
	}
	//
	if err != nil {
		return nil, err
	} else if err := checkExpected(expected, typ, expr); err != nil {
		return nil, err
	}
	//
	return &Constant{newNodeBase(scope, expr.Location()), typ, value}, nil
}

// integerConstantFromAst determines the type and value of an integer literal.
// Implicit literals (those without a suffix) take their type from the
// expectation flowing down, and may denote field or group constants as well as
// integers.
func integerConstantFromAst(expr *ast.IntegerLiteral, expected PartialType) (Type, ConstValue, *Error) {
	parsed, err := parseLiteral(expr.Value, expr.Span)
	//
	if err != nil {
		return nil, nil, err
	}
	// Explicitly typed literals ignore the expectation here; the usual check
	// against it still applies afterwards.
	if expr.Type != nil {
		return integerValue(*expr.Type, parsed, expr.Span)
	}
	//
	if exact, ok := expected.(*ExactType); ok {
		switch typ := exact.Type.(type) {
		case *IntegerType:
			return integerValue(typ.Kind, parsed, expr.Span)
		case *FieldType:
			return typ, NewFieldValue(parsed), nil
		case *GroupType:
			return typ, NewGroupValue(parsed), nil
		}
	}
	//
	return nil, nil, errUnexpectedType(PartialString(expected), "untyped literal", expr.Span)
}

func integerValue(kind ast.IntegerType, parsed *big.Int, span source.Span) (Type, ConstValue, *Error) {
	value := NewIntValue(kind, parsed)
	//
	if value == nil {
		return nil, nil, errIllegalStructure(span, "literal %s out of range for %s", parsed.String(), kind.String())
	}
	//
	return &IntegerType{kind}, value, nil
}

func parseLiteral(text string, span source.Span) (*big.Int, *Error) {
	if parsed, ok := new(big.Int).SetString(text, 10); ok {
		return parsed, nil
	}
	//
	return nil, errIllegalStructure(span, "malformed literal \"%s\"", text)
}
