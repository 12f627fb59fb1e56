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
package ast

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/zirclang/zirc/pkg/util/source"
)

// ParseProgram parses a complete program from its JSON interchange form, as
// emitted by the parser front-end.  Every polymorphic node is encoded as an
// object carrying a "kind" discriminator; spans are two-element arrays of
// character offsets into the original source file.
func ParseProgram(bytes []byte) (*Program, error) {
	var raw jsonProgram
	//
	if err := json.Unmarshal(bytes, &raw); err != nil {
		return nil, err
	}
	//
	program := &Program{Name: raw.Name}
	//
	for _, c := range raw.Circuits {
		circuit, err := decodeCircuit(c)
		if err != nil {
			return nil, err
		}
		//
		program.Circuits = append(program.Circuits, circuit)
	}
	//
	for _, f := range raw.Functions {
		function, err := decodeFunction(f)
		if err != nil {
			return nil, err
		}
		//
		program.Functions = append(program.Functions, function)
	}
	//
	return program, nil
}

// ============================================================================
// Raw (untyped) mirrors
// ============================================================================

type jsonProgram struct {
	Name      string            `json:"name"`
	Circuits  []json.RawMessage `json:"circuits"`
	Functions []json.RawMessage `json:"functions"`
}

type jsonIdentifier struct {
	Name string      `json:"name"`
	Span source.Span `json:"span"`
}

func (p *jsonIdentifier) toIdentifier() Identifier {
	return Identifier{p.Name, p.Span}
}

// jsonKind is used to peek at the discriminator of a polymorphic node before
// committing to a concrete decoding.
type jsonKind struct {
	Kind string `json:"kind"`
}

func kindOf(raw json.RawMessage) (string, error) {
	var k jsonKind
	//
	if err := json.Unmarshal(raw, &k); err != nil {
		return "", err
	} else if k.Kind == "" {
		return "", fmt.Errorf("syntax node missing kind discriminator")
	}
	//
	return k.Kind, nil
}

// ============================================================================
// Declarations
// ============================================================================

func decodeCircuit(raw json.RawMessage) (*Circuit, error) {
	var shell struct {
		Name    jsonIdentifier    `json:"name"`
		Members []json.RawMessage `json:"members"`
		Span    source.Span       `json:"span"`
	}
	//
	if err := json.Unmarshal(raw, &shell); err != nil {
		return nil, err
	}
	//
	circuit := &Circuit{Identifier: shell.Name.toIdentifier(), Span: shell.Span}
	//
	for _, m := range shell.Members {
		member, err := decodeCircuitMember(m)
		if err != nil {
			return nil, err
		}
		//
		circuit.Members = append(circuit.Members, member)
	}
	//
	return circuit, nil
}

func decodeCircuitMember(raw json.RawMessage) (CircuitMember, error) {
	kind, err := kindOf(raw)
	if err != nil {
		return nil, err
	}
	//
	switch kind {
	case "variable":
		var shell struct {
			Name jsonIdentifier  `json:"name"`
			Type json.RawMessage `json:"type"`
			Span source.Span     `json:"span"`
		}
		//
		if err := json.Unmarshal(raw, &shell); err != nil {
			return nil, err
		}
		//
		typ, err := decodeType(shell.Type)
		if err != nil {
			return nil, err
		}
		//
		return &CircuitVariable{shell.Name.toIdentifier(), typ, shell.Span}, nil
	case "function":
		var shell struct {
			Function json.RawMessage `json:"function"`
		}
		//
		if err := json.Unmarshal(raw, &shell); err != nil {
			return nil, err
		}
		//
		fn, err := decodeFunction(shell.Function)
		if err != nil {
			return nil, err
		}
		//
		return &CircuitFunction{fn}, nil
	}
	//
	return nil, fmt.Errorf("unknown circuit member kind \"%s\"", kind)
}

func decodeFunction(raw json.RawMessage) (*Function, error) {
	var shell struct {
		Annotations []Annotation      `json:"annotations"`
		Name        jsonIdentifier    `json:"name"`
		Inputs      []json.RawMessage `json:"inputs"`
		Output      json.RawMessage   `json:"output"`
		Block       json.RawMessage   `json:"block"`
		Span        source.Span       `json:"span"`
	}
	//
	if err := json.Unmarshal(raw, &shell); err != nil {
		return nil, err
	}
	//
	fn := &Function{
		Annotations: shell.Annotations,
		Identifier:  shell.Name.toIdentifier(),
		Span:        shell.Span,
	}
	//
	for _, i := range shell.Inputs {
		input, err := decodeFunctionInput(i)
		if err != nil {
			return nil, err
		}
		//
		fn.Inputs = append(fn.Inputs, input)
	}
	//
	if len(shell.Output) != 0 {
		output, err := decodeType(shell.Output)
		if err != nil {
			return nil, err
		}
		//
		fn.Output = output
	}
	//
	block, err := decodeBlock(shell.Block)
	if err != nil {
		return nil, err
	}
	//
	fn.Block = *block
	//
	return fn, nil
}

func decodeFunctionInput(raw json.RawMessage) (FunctionInput, error) {
	kind, err := kindOf(raw)
	if err != nil {
		return nil, err
	}
	//
	var span struct {
		Span source.Span `json:"span"`
	}
	//
	if err := json.Unmarshal(raw, &span); err != nil {
		return nil, err
	}
	//
	switch kind {
	case "self":
		return &SelfInput{SelfRef, span.Span}, nil
	case "const_self":
		return &SelfInput{ConstSelfRef, span.Span}, nil
	case "mut_self":
		return &SelfInput{MutSelfRef, span.Span}, nil
	case "parameter":
		var shell struct {
			Name    jsonIdentifier  `json:"name"`
			Const   bool            `json:"const"`
			Mutable bool            `json:"mutable"`
			Type    json.RawMessage `json:"type"`
			Span    source.Span     `json:"span"`
		}
		//
		if err := json.Unmarshal(raw, &shell); err != nil {
			return nil, err
		}
		//
		typ, err := decodeType(shell.Type)
		if err != nil {
			return nil, err
		}
		//
		return &ParameterInput{shell.Name.toIdentifier(), shell.Const, shell.Mutable, typ, shell.Span}, nil
	}
	//
	return nil, fmt.Errorf("unknown function input kind \"%s\"", kind)
}

// ============================================================================
// Types
// ============================================================================

func decodeType(raw json.RawMessage) (Type, error) {
	kind, err := kindOf(raw)
	if err != nil {
		return nil, err
	}
	//
	switch kind {
	case "bool":
		return &BooleanType{}, nil
	case "field":
		return &FieldType{}, nil
	case "group":
		return &GroupType{}, nil
	case "address":
		return &AddressType{}, nil
	case "char":
		return &CharType{}, nil
	case "self":
		return &SelfType{}, nil
	case "integer":
		var shell struct {
			Integer string `json:"integer"`
		}
		//
		if err := json.Unmarshal(raw, &shell); err != nil {
			return nil, err
		}
		//
		if it, ok := ParseIntegerType(shell.Integer); ok {
			return it, nil
		}
		//
		return nil, fmt.Errorf("unknown integer type \"%s\"", shell.Integer)
	case "array":
		var shell struct {
			Element json.RawMessage `json:"element"`
			Size    uint            `json:"size"`
		}
		//
		if err := json.Unmarshal(raw, &shell); err != nil {
			return nil, err
		}
		//
		element, err := decodeType(shell.Element)
		if err != nil {
			return nil, err
		}
		//
		return &ArrayType{element, shell.Size}, nil
	case "tuple":
		var shell struct {
			Elements []json.RawMessage `json:"elements"`
		}
		//
		if err := json.Unmarshal(raw, &shell); err != nil {
			return nil, err
		}
		//
		elements := make([]Type, len(shell.Elements))
		//
		for i, e := range shell.Elements {
			if elements[i], err = decodeType(e); err != nil {
				return nil, err
			}
		}
		//
		return &TupleType{elements}, nil
	case "named":
		var shell struct {
			Name jsonIdentifier `json:"name"`
		}
		//
		if err := json.Unmarshal(raw, &shell); err != nil {
			return nil, err
		}
		//
		return &NamedType{shell.Name.toIdentifier()}, nil
	}
	//
	return nil, fmt.Errorf("unknown type kind \"%s\"", kind)
}

// ============================================================================
// Expressions
// ============================================================================

//nolint:gocyclo
func decodeExpression(raw json.RawMessage) (Expression, error) {
	kind, err := kindOf(raw)
	if err != nil {
		return nil, err
	}
	//
	switch kind {
	case "identifier":
		var shell jsonIdentifier
		//
		if err := json.Unmarshal(raw, &shell); err != nil {
			return nil, err
		}
		//
		id := shell.toIdentifier()
		//
		return &id, nil
	case "boolean":
		var shell struct {
			Value bool        `json:"value"`
			Span  source.Span `json:"span"`
		}
		//
		if err := json.Unmarshal(raw, &shell); err != nil {
			return nil, err
		}
		//
		return &BooleanLiteral{shell.Value, shell.Span}, nil
	case "integer":
		var shell struct {
			Type  string      `json:"type"`
			Value string      `json:"value"`
			Span  source.Span `json:"span"`
		}
		//
		if err := json.Unmarshal(raw, &shell); err != nil {
			return nil, err
		}
		//
		literal := &IntegerLiteral{nil, shell.Value, shell.Span}
		// An absent type indicates an implicit literal.
		if shell.Type != "" {
			it, ok := ParseIntegerType(shell.Type)
			if !ok {
				return nil, fmt.Errorf("unknown integer type \"%s\"", shell.Type)
			}
			//
			literal.Type = &it
		}
		//
		return literal, nil
	case "field":
		var shell struct {
			Value string      `json:"value"`
			Span  source.Span `json:"span"`
		}
		//
		if err := json.Unmarshal(raw, &shell); err != nil {
			return nil, err
		}
		//
		return &FieldLiteral{shell.Value, shell.Span}, nil
	case "group":
		var shell struct {
			Value string      `json:"value"`
			Span  source.Span `json:"span"`
		}
		//
		if err := json.Unmarshal(raw, &shell); err != nil {
			return nil, err
		}
		//
		return &GroupLiteral{shell.Value, shell.Span}, nil
	case "address":
		var shell struct {
			Value string      `json:"value"`
			Span  source.Span `json:"span"`
		}
		//
		if err := json.Unmarshal(raw, &shell); err != nil {
			return nil, err
		}
		//
		return &AddressLiteral{shell.Value, shell.Span}, nil
	case "char":
		var shell struct {
			Value string      `json:"value"`
			Span  source.Span `json:"span"`
		}
		//
		if err := json.Unmarshal(raw, &shell); err != nil {
			return nil, err
		}
		//
		if utf8.RuneCountInString(shell.Value) != 1 {
			return nil, fmt.Errorf("malformed character literal \"%s\"", shell.Value)
		}
		//
		r, _ := utf8.DecodeRuneInString(shell.Value)
		//
		return &CharLiteral{r, shell.Span}, nil
	case "binary":
		var shell struct {
			Op    BinaryOperation `json:"op"`
			Left  json.RawMessage `json:"left"`
			Right json.RawMessage `json:"right"`
			Span  source.Span     `json:"span"`
		}
		//
		if err := json.Unmarshal(raw, &shell); err != nil {
			return nil, err
		}
		//
		left, err := decodeExpression(shell.Left)
		if err != nil {
			return nil, err
		}
		//
		right, err := decodeExpression(shell.Right)
		if err != nil {
			return nil, err
		}
		//
		return &BinaryExpression{shell.Op, left, right, shell.Span}, nil
	case "unary":
		var shell struct {
			Op    UnaryOperation  `json:"op"`
			Inner json.RawMessage `json:"inner"`
			Span  source.Span     `json:"span"`
		}
		//
		if err := json.Unmarshal(raw, &shell); err != nil {
			return nil, err
		}
		//
		inner, err := decodeExpression(shell.Inner)
		if err != nil {
			return nil, err
		}
		//
		return &UnaryExpression{shell.Op, inner, shell.Span}, nil
	case "ternary":
		var shell struct {
			Condition json.RawMessage `json:"condition"`
			IfTrue    json.RawMessage `json:"if_true"`
			IfFalse   json.RawMessage `json:"if_false"`
			Span      source.Span     `json:"span"`
		}
		//
		if err := json.Unmarshal(raw, &shell); err != nil {
			return nil, err
		}
		//
		condition, err := decodeExpression(shell.Condition)
		if err != nil {
			return nil, err
		}
		//
		ifTrue, err := decodeExpression(shell.IfTrue)
		if err != nil {
			return nil, err
		}
		//
		ifFalse, err := decodeExpression(shell.IfFalse)
		if err != nil {
			return nil, err
		}
		//
		return &TernaryExpression{condition, ifTrue, ifFalse, shell.Span}, nil
	case "call":
		var shell struct {
			Function  json.RawMessage   `json:"function"`
			Arguments []json.RawMessage `json:"arguments"`
			Span      source.Span       `json:"span"`
		}
		//
		if err := json.Unmarshal(raw, &shell); err != nil {
			return nil, err
		}
		//
		fn, err := decodeExpression(shell.Function)
		if err != nil {
			return nil, err
		}
		//
		arguments, err := decodeExpressions(shell.Arguments)
		if err != nil {
			return nil, err
		}
		//
		return &CallExpression{fn, arguments, shell.Span}, nil
	case "member":
		var shell struct {
			Target json.RawMessage `json:"target"`
			Name   jsonIdentifier  `json:"member"`
			Span   source.Span     `json:"span"`
		}
		//
		if err := json.Unmarshal(raw, &shell); err != nil {
			return nil, err
		}
		//
		target, err := decodeExpression(shell.Target)
		if err != nil {
			return nil, err
		}
		//
		return &MemberAccess{target, shell.Name.toIdentifier(), shell.Span}, nil
	case "static":
		var shell struct {
			Target json.RawMessage `json:"target"`
			Name   jsonIdentifier  `json:"member"`
			Span   source.Span     `json:"span"`
		}
		//
		if err := json.Unmarshal(raw, &shell); err != nil {
			return nil, err
		}
		//
		target, err := decodeExpression(shell.Target)
		if err != nil {
			return nil, err
		}
		//
		return &StaticAccess{target, shell.Name.toIdentifier(), shell.Span}, nil
	case "array_inline":
		var shell struct {
			Elements []json.RawMessage `json:"elements"`
			Span     source.Span       `json:"span"`
		}
		//
		if err := json.Unmarshal(raw, &shell); err != nil {
			return nil, err
		}
		//
		elements, err := decodeExpressions(shell.Elements)
		if err != nil {
			return nil, err
		}
		//
		return &ArrayInlineExpression{elements, shell.Span}, nil
	case "array_init":
		var shell struct {
			Element json.RawMessage `json:"element"`
			Size    uint            `json:"size"`
			Span    source.Span     `json:"span"`
		}
		//
		if err := json.Unmarshal(raw, &shell); err != nil {
			return nil, err
		}
		//
		element, err := decodeExpression(shell.Element)
		if err != nil {
			return nil, err
		}
		//
		return &ArrayInitExpression{element, shell.Size, shell.Span}, nil
	case "array_access":
		var shell struct {
			Array json.RawMessage `json:"array"`
			Index json.RawMessage `json:"index"`
			Span  source.Span     `json:"span"`
		}
		//
		if err := json.Unmarshal(raw, &shell); err != nil {
			return nil, err
		}
		//
		array, err := decodeExpression(shell.Array)
		if err != nil {
			return nil, err
		}
		//
		index, err := decodeExpression(shell.Index)
		if err != nil {
			return nil, err
		}
		//
		return &ArrayAccessExpression{array, index, shell.Span}, nil
	case "tuple_init":
		var shell struct {
			Elements []json.RawMessage `json:"elements"`
			Span     source.Span       `json:"span"`
		}
		//
		if err := json.Unmarshal(raw, &shell); err != nil {
			return nil, err
		}
		//
		elements, err := decodeExpressions(shell.Elements)
		if err != nil {
			return nil, err
		}
		//
		return &TupleInitExpression{elements, shell.Span}, nil
	case "tuple_access":
		var shell struct {
			Tuple json.RawMessage `json:"tuple"`
			Index uint            `json:"index"`
			Span  source.Span     `json:"span"`
		}
		//
		if err := json.Unmarshal(raw, &shell); err != nil {
			return nil, err
		}
		//
		tuple, err := decodeExpression(shell.Tuple)
		if err != nil {
			return nil, err
		}
		//
		return &TupleAccessExpression{tuple, shell.Index, shell.Span}, nil
	case "circuit_init":
		var shell struct {
			Name    jsonIdentifier `json:"name"`
			Members []struct {
				Name  jsonIdentifier  `json:"name"`
				Value json.RawMessage `json:"value"`
			} `json:"members"`
			Span source.Span `json:"span"`
		}
		//
		if err := json.Unmarshal(raw, &shell); err != nil {
			return nil, err
		}
		//
		init := &CircuitInitExpression{Name: shell.Name.toIdentifier(), Span: shell.Span}
		//
		for _, m := range shell.Members {
			value, err := decodeExpression(m.Value)
			if err != nil {
				return nil, err
			}
			//
			init.Members = append(init.Members, CircuitInitMember{m.Name.toIdentifier(), value})
		}
		//
		return init, nil
	}
	//
	return nil, fmt.Errorf("unknown expression kind \"%s\"", kind)
}

func decodeExpressions(raws []json.RawMessage) ([]Expression, error) {
	expressions := make([]Expression, len(raws))
	//
	for i, r := range raws {
		var err error
		//
		if expressions[i], err = decodeExpression(r); err != nil {
			return nil, err
		}
	}
	//
	return expressions, nil
}

// ============================================================================
// Statements
// ============================================================================

func decodeBlock(raw json.RawMessage) (*Block, error) {
	var shell struct {
		Statements []json.RawMessage `json:"statements"`
		Span       source.Span       `json:"span"`
	}
	//
	if err := json.Unmarshal(raw, &shell); err != nil {
		return nil, err
	}
	//
	block := &Block{Span: shell.Span}
	//
	for _, s := range shell.Statements {
		stmt, err := decodeStatement(s)
		if err != nil {
			return nil, err
		}
		//
		block.Statements = append(block.Statements, stmt)
	}
	//
	return block, nil
}

//nolint:gocyclo
func decodeStatement(raw json.RawMessage) (Statement, error) {
	kind, err := kindOf(raw)
	if err != nil {
		return nil, err
	}
	//
	switch kind {
	case "block":
		return decodeBlock(raw)
	case "return":
		var shell struct {
			Value json.RawMessage `json:"value"`
			Span  source.Span     `json:"span"`
		}
		//
		if err := json.Unmarshal(raw, &shell); err != nil {
			return nil, err
		}
		//
		// A bare return denotes the empty tuple.
		var value Expression = &TupleInitExpression{nil, shell.Span}
		//
		if len(shell.Value) != 0 {
			if value, err = decodeExpression(shell.Value); err != nil {
				return nil, err
			}
		}
		//
		return &ReturnStatement{value, shell.Span}, nil
	case "definition":
		var shell struct {
			Declare   Declare `json:"declare"`
			Variables []struct {
				Mutable bool           `json:"mutable"`
				Name    jsonIdentifier `json:"name"`
			} `json:"variables"`
			Type  json.RawMessage `json:"type"`
			Value json.RawMessage `json:"value"`
			Span  source.Span     `json:"span"`
		}
		//
		if err := json.Unmarshal(raw, &shell); err != nil {
			return nil, err
		}
		//
		stmt := &DefinitionStatement{Declare: shell.Declare, Span: shell.Span}
		//
		for _, v := range shell.Variables {
			stmt.Variables = append(stmt.Variables, VariableName{v.Mutable, v.Name.toIdentifier()})
		}
		//
		if len(shell.Type) != 0 {
			if stmt.Type, err = decodeType(shell.Type); err != nil {
				return nil, err
			}
		}
		//
		if stmt.Value, err = decodeExpression(shell.Value); err != nil {
			return nil, err
		}
		//
		return stmt, nil
	case "assign":
		var shell struct {
			Assignee struct {
				Name     jsonIdentifier    `json:"name"`
				Accesses []json.RawMessage `json:"accesses"`
				Span     source.Span       `json:"span"`
			} `json:"assignee"`
			Value json.RawMessage `json:"value"`
			Span  source.Span     `json:"span"`
		}
		//
		if err := json.Unmarshal(raw, &shell); err != nil {
			return nil, err
		}
		//
		assignee := Assignee{Identifier: shell.Assignee.Name.toIdentifier(), Span: shell.Assignee.Span}
		//
		for _, a := range shell.Assignee.Accesses {
			access, err := decodeAssigneeAccess(a)
			if err != nil {
				return nil, err
			}
			//
			assignee.Accesses = append(assignee.Accesses, access)
		}
		//
		value, err := decodeExpression(shell.Value)
		if err != nil {
			return nil, err
		}
		//
		return &AssignStatement{assignee, value, shell.Span}, nil
	case "conditional":
		var shell struct {
			Condition json.RawMessage `json:"condition"`
			Block     json.RawMessage `json:"block"`
			Next      json.RawMessage `json:"next"`
			Span      source.Span     `json:"span"`
		}
		//
		if err := json.Unmarshal(raw, &shell); err != nil {
			return nil, err
		}
		//
		condition, err := decodeExpression(shell.Condition)
		if err != nil {
			return nil, err
		}
		//
		block, err := decodeBlock(shell.Block)
		if err != nil {
			return nil, err
		}
		//
		stmt := &ConditionalStatement{Condition: condition, Block: *block, Span: shell.Span}
		//
		if len(shell.Next) != 0 {
			if stmt.Next, err = decodeStatement(shell.Next); err != nil {
				return nil, err
			}
		}
		//
		return stmt, nil
	case "iteration":
		var shell struct {
			Variable jsonIdentifier  `json:"variable"`
			Start    json.RawMessage `json:"start"`
			Stop     json.RawMessage `json:"stop"`
			Block    json.RawMessage `json:"block"`
			Span     source.Span     `json:"span"`
		}
		//
		if err := json.Unmarshal(raw, &shell); err != nil {
			return nil, err
		}
		//
		start, err := decodeExpression(shell.Start)
		if err != nil {
			return nil, err
		}
		//
		stop, err := decodeExpression(shell.Stop)
		if err != nil {
			return nil, err
		}
		//
		block, err := decodeBlock(shell.Block)
		if err != nil {
			return nil, err
		}
		//
		return &IterationStatement{shell.Variable.toIdentifier(), start, stop, *block, shell.Span}, nil
	case "expression":
		var shell struct {
			Expression json.RawMessage `json:"expression"`
			Span       source.Span     `json:"span"`
		}
		//
		if err := json.Unmarshal(raw, &shell); err != nil {
			return nil, err
		}
		//
		expression, err := decodeExpression(shell.Expression)
		if err != nil {
			return nil, err
		}
		//
		return &ExpressionStatement{expression, shell.Span}, nil
	}
	//
	return nil, fmt.Errorf("unknown statement kind \"%s\"", kind)
}

func decodeAssigneeAccess(raw json.RawMessage) (AssigneeAccess, error) {
	kind, err := kindOf(raw)
	if err != nil {
		return nil, err
	}
	//
	switch kind {
	case "member":
		var shell struct {
			Name jsonIdentifier `json:"name"`
		}
		//
		if err := json.Unmarshal(raw, &shell); err != nil {
			return nil, err
		}
		//
		return &AssigneeMember{shell.Name.toIdentifier()}, nil
	case "index":
		var shell struct {
			Index json.RawMessage `json:"index"`
		}
		//
		if err := json.Unmarshal(raw, &shell); err != nil {
			return nil, err
		}
		//
		index, err := decodeExpression(shell.Index)
		if err != nil {
			return nil, err
		}
		//
		return &AssigneeIndex{index}, nil
	case "tuple":
		var shell struct {
			Index uint `json:"index"`
		}
		//
		if err := json.Unmarshal(raw, &shell); err != nil {
			return nil, err
		}
		//
		return &AssigneeTuple{shell.Index}, nil
	}
	//
	return nil, fmt.Errorf("unknown assignee access kind \"%s\"", kind)
}
