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

// VariableDeclaration identifies the construct which introduced a variable.
type VariableDeclaration uint8

const (
	// DefinitionDeclaration indicates a variable introduced by a let or const
	// statement.
	DefinitionDeclaration VariableDeclaration = iota
	// ParameterDeclaration indicates a variable introduced as a function
	// parameter (including the self receiver).
	ParameterDeclaration
	// IterationDeclaration indicates a loop variable introduced by a for
	// statement.
	IterationDeclaration
)

// Variable represents a single named binding within the semantic graph.  All
// references to a name within its scope share the one Variable, which in turn
// records every expression reading it and every statement assigning it.
type Variable struct {
	// Unique identifier of this variable.
	Id uint
	// Name of this variable.
	Name string
	// Resolved type of this variable.
	Type Type
	// Indicates this variable can be reassigned.
	Mutable bool
	// Indicates this variable is compile-time constant.
	Const bool
	// Construct which introduced this variable.
	Declaration VariableDeclaration
	// Known constant value of this variable, if any.
	Value ConstValue
	// Expressions reading this variable.
	References []*VariableRef
	// Statements assigning this variable.
	Assignments []Statement
}
