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
	"fmt"

	"github.com/zirclang/zirc/pkg/util"
	"github.com/zirclang/zirc/pkg/util/source"
)

// ErrorKind identifies the category of a semantic error, allowing tests (and
// tooling) to match on the condition being reported rather than its message.
type ErrorKind uint8

const (
	// UnresolvedVariable indicates an identifier which does not name any
	// variable in scope.
	UnresolvedVariable ErrorKind = iota
	// UnresolvedFunction indicates a call target which does not name any
	// function in scope.
	UnresolvedFunction
	// UnresolvedCircuit indicates a name which does not resolve to any circuit
	// in scope.
	UnresolvedCircuit
	// UnresolvedCircuitMember indicates a member access naming no member of
	// the target circuit.
	UnresolvedCircuitMember
	// UnexpectedType indicates a mismatch between the type expected at some
	// position and the type found there.
	UnexpectedType
	// ArgumentCountMismatch indicates a call supplying the wrong number of
	// arguments.
	ArgumentCountMismatch
	// NonConstArgument indicates a non-constant argument passed to a const
	// parameter.
	NonConstArgument
	// StaticCallInvalid indicates an instance call to a static member
	// function.
	StaticCallInvalid
	// MemberCallInvalid indicates a static call to an instance member
	// function.
	MemberCallInvalid
	// MutCallInvalid indicates a mutating method invoked on an immutable
	// target.
	MutCallInvalid
	// CircuitVariableCall indicates an attempt to call a circuit field as
	// though it were a function.
	CircuitVariableCall
	// CallTestFunction indicates a call to a function annotated as a test.
	CallTestFunction
	// DuplicateDefinition indicates two definitions of the same name within
	// one scope.
	DuplicateDefinition
	// InvalidSelf indicates a use of "self" outside a circuit member function.
	InvalidSelf
	// ImmutableAssignment indicates an assignment to an immutable variable.
	ImmutableAssignment
	// IllegalStructure indicates a structurally malformed input, such as a
	// call whose target is not callable.
	IllegalStructure
	// MissingReturn indicates a function which does not return on every
	// control path despite declaring an output type.
	MissingReturn
	// UnreachableCode indicates statements following a definite return.
	UnreachableCode
	// IndexOutOfBounds indicates a constant index outside the bounds of the
	// composite it accesses.
	IndexOutOfBounds
	// NonConstDefinition indicates a const declaration whose initialiser is
	// not compile-time constant.
	NonConstDefinition
)

// Error represents a semantic error detected during graph construction or
// analysis.  Every error carries its category and (where available) the source
// span of the offending construct, so diagnostics can point back into the
// original source text.
type Error struct {
	// Category of this error.
	Kind ErrorKind
	// Source location of the offending construct (if known).
	Span util.Option[source.Span]
	// Human-readable description of this error.
	Message string
}

// Error implements the error interface, producing a human-readable rendition
// of this error.
func (p *Error) Error() string {
	if p.Span.HasValue() {
		return fmt.Sprintf("%s: %s", p.Span.Unwrap().String(), p.Message)
	}
	//
	return p.Message
}

func errorAt(kind ErrorKind, span source.Span, format string, args ...any) *Error {
	return &Error{kind, util.Some(span), fmt.Sprintf(format, args...)}
}

// ============================================================================
// Constructors
// ============================================================================

func errUnresolvedVariable(name string, span source.Span) *Error {
	return errorAt(UnresolvedVariable, span, "unknown variable \"%s\"", name)
}

func errUnresolvedFunction(name string, span source.Span) *Error {
	return errorAt(UnresolvedFunction, span, "unknown function \"%s\"", name)
}

func errUnresolvedCircuit(name string, span source.Span) *Error {
	return errorAt(UnresolvedCircuit, span, "unknown circuit \"%s\"", name)
}

func errUnresolvedCircuitMember(circuit string, name string, span source.Span) *Error {
	return errorAt(UnresolvedCircuitMember, span, "circuit \"%s\" has no member \"%s\"", circuit, name)
}

func errUnexpectedType(expected string, found string, span source.Span) *Error {
	return errorAt(UnexpectedType, span, "expected type %s, found %s", expected, found)
}

func errArgumentCount(expected uint, found uint, span source.Span) *Error {
	return errorAt(ArgumentCountMismatch, span, "function expects %d argument(s), found %d", expected, found)
}

func errNonConstArgument(name string, span source.Span) *Error {
	return errorAt(NonConstArgument, span, "parameter \"%s\" requires a compile-time constant argument", name)
}

func errStaticCallInvalid(name string, span source.Span) *Error {
	return errorAt(StaticCallInvalid, span, "static function \"%s\" cannot be called on an instance", name)
}

func errMemberCallInvalid(name string, span source.Span) *Error {
	return errorAt(MemberCallInvalid, span, "member function \"%s\" cannot be called statically", name)
}

func errMutCallInvalid(name string, span source.Span) *Error {
	return errorAt(MutCallInvalid, span, "mutating function \"%s\" cannot be called on an immutable value", name)
}

func errCircuitVariableCall(name string, span source.Span) *Error {
	return errorAt(CircuitVariableCall, span, "circuit field \"%s\" is not callable", name)
}

func errCallTestFunction(span source.Span) *Error {
	return errorAt(CallTestFunction, span, "test functions cannot be called")
}

func errDuplicateDefinition(name string, span source.Span) *Error {
	return errorAt(DuplicateDefinition, span, "\"%s\" is already defined in this scope", name)
}

func errInvalidSelf(span source.Span) *Error {
	return errorAt(InvalidSelf, span, "\"self\" is only available within circuit member functions")
}

func errImmutableAssignment(name string, span source.Span) *Error {
	return errorAt(ImmutableAssignment, span, "cannot assign to immutable variable \"%s\"", name)
}

func errIllegalStructure(span source.Span, format string, args ...any) *Error {
	return errorAt(IllegalStructure, span, format, args...)
}

func errMissingReturn(name string, span source.Span) *Error {
	return errorAt(MissingReturn, span, "function \"%s\" does not return on every path", name)
}

func errUnreachableCode(span source.Span) *Error {
	return errorAt(UnreachableCode, span, "unreachable code following return")
}

func errIndexOutOfBounds(index uint, size uint, span source.Span) *Error {
	return errorAt(IndexOutOfBounds, span, "index %d out of bounds (size %d)", index, size)
}

func errNonConstDefinition(name string, span source.Span) *Error {
	return errorAt(NonConstDefinition, span, "const variable \"%s\" requires a compile-time constant value", name)
}
