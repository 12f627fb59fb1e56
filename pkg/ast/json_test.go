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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJson_Function(t *testing.T) {
	// fn double(x: u32) -> u32 { return x + x; }
	data := `{
	  "name": "main",
	  "functions": [{
	    "name": {"name": "double", "span": [3, 9]},
	    "inputs": [{
	      "kind": "parameter",
	      "name": {"name": "x", "span": [10, 11]},
	      "type": {"kind": "integer", "integer": "u32"},
	      "span": [10, 16]
	    }],
	    "output": {"kind": "integer", "integer": "u32"},
	    "block": {
	      "statements": [{
	        "kind": "return",
	        "value": {
	          "kind": "binary",
	          "op": "add",
	          "left": {"kind": "identifier", "name": "x", "span": [33, 34]},
	          "right": {"kind": "identifier", "name": "x", "span": [37, 38]},
	          "span": [33, 38]
	        },
	        "span": [26, 39]
	      }],
	      "span": [24, 41]
	    },
	    "span": [0, 41]
	  }]
	}`
	//
	program, err := ParseProgram([]byte(data))
	require.NoError(t, err)
	require.Len(t, program.Functions, 1)
	//
	fn := program.Functions[0]
	assert.Equal(t, "double", fn.Identifier.Name)
	assert.False(t, fn.IsTest())
	require.Len(t, fn.Inputs, 1)
	//
	input := fn.Inputs[0].(*ParameterInput)
	assert.Equal(t, "x", input.Identifier.Name)
	assert.Equal(t, "u32", input.Type.String())
	assert.Equal(t, "u32", fn.Output.String())
	//
	require.Len(t, fn.Block.Statements, 1)
	ret := fn.Block.Statements[0].(*ReturnStatement)
	sum := ret.Value.(*BinaryExpression)
	//
	assert.Equal(t, Add, sum.Op)
	//
	span := sum.Location()
	assert.Equal(t, 33, span.Start())
}

func TestJson_Circuit(t *testing.T) {
	// circuit Point { x: field, fn id(self) -> field { return 1; } }
	data := `{
	  "name": "main",
	  "circuits": [{
	    "name": {"name": "Point", "span": [8, 13]},
	    "members": [
	      {
	        "kind": "variable",
	        "name": {"name": "x", "span": [16, 17]},
	        "type": {"kind": "field"},
	        "span": [16, 25]
	      },
	      {
	        "kind": "function",
	        "function": {
	          "annotations": [{"name": "test", "span": [27, 32]}],
	          "name": {"name": "id", "span": [36, 38]},
	          "inputs": [{"kind": "self", "span": [39, 43]}],
	          "output": {"kind": "field"},
	          "block": {
	            "statements": [{
	              "kind": "return",
	              "value": {"kind": "field", "value": "1", "span": [60, 61]},
	              "span": [53, 62]
	            }],
	            "span": [51, 64]
	          },
	          "span": [27, 64]
	        }
	      }
	    ],
	    "span": [0, 66]
	  }]
	}`
	//
	program, err := ParseProgram([]byte(data))
	require.NoError(t, err)
	require.Len(t, program.Circuits, 1)
	//
	circuit := program.Circuits[0]
	assert.Equal(t, "Point", circuit.Identifier.Name)
	require.Len(t, circuit.Members, 2)
	//
	field := circuit.Members[0].(*CircuitVariable)
	assert.Equal(t, "field", field.Type.String())
	//
	fn := circuit.Members[1].(*CircuitFunction).Function
	assert.True(t, fn.IsTest())
	//
	self := fn.Inputs[0].(*SelfInput)
	assert.Equal(t, SelfRef, self.Kind)
}

func TestJson_StatementForms(t *testing.T) {
	data := `{
	  "name": "main",
	  "functions": [{
	    "name": {"name": "f", "span": [0, 1]},
	    "block": {
	      "statements": [
	        {
	          "kind": "definition",
	          "declare": "let",
	          "variables": [{"mutable": true, "name": {"name": "xs", "span": [0, 2]}}],
	          "type": {"kind": "array", "element": {"kind": "integer", "integer": "u8"}, "size": 2},
	          "value": {
	            "kind": "array_inline",
	            "elements": [
	              {"kind": "integer", "type": "u8", "value": "1", "span": [0, 1]},
	              {"kind": "integer", "type": "u8", "value": "2", "span": [0, 1]}
	            ],
	            "span": [0, 1]
	          },
	          "span": [0, 1]
	        },
	        {
	          "kind": "assign",
	          "assignee": {
	            "name": {"name": "xs", "span": [0, 2]},
	            "accesses": [{"kind": "index", "index": {"kind": "integer", "type": "u32", "value": "0", "span": [0, 1]}}],
	            "span": [0, 2]
	          },
	          "value": {"kind": "integer", "type": "u8", "value": "3", "span": [0, 1]},
	          "span": [0, 1]
	        },
	        {
	          "kind": "iteration",
	          "variable": {"name": "i", "span": [0, 1]},
	          "start": {"kind": "integer", "type": "u32", "value": "0", "span": [0, 1]},
	          "stop": {"kind": "integer", "type": "u32", "value": "4", "span": [0, 1]},
	          "block": {"statements": [], "span": [0, 1]},
	          "span": [0, 1]
	        },
	        {"kind": "return", "span": [0, 1]}
	      ],
	      "span": [0, 1]
	    },
	    "span": [0, 1]
	  }]
	}`
	//
	program, err := ParseProgram([]byte(data))
	require.NoError(t, err)
	//
	stmts := program.Functions[0].Block.Statements
	require.Len(t, stmts, 4)
	//
	def := stmts[0].(*DefinitionStatement)
	assert.Equal(t, Let, def.Declare)
	assert.True(t, def.Variables[0].Mutable)
	assert.Equal(t, "[u8; 2]", def.Type.String())
	assert.IsType(t, &ArrayInlineExpression{}, def.Value)
	//
	assign := stmts[1].(*AssignStatement)
	require.Len(t, assign.Assignee.Accesses, 1)
	assert.IsType(t, &AssigneeIndex{}, assign.Assignee.Accesses[0])
	//
	loop := stmts[2].(*IterationStatement)
	assert.Equal(t, "i", loop.Variable.Name)
	// A bare return decodes as returning the empty tuple.
	ret := stmts[3].(*ReturnStatement)
	tuple, ok := ret.Value.(*TupleInitExpression)
	require.True(t, ok)
	assert.Empty(t, tuple.Elements)
}

func TestJson_UnknownKind(t *testing.T) {
	data := `{
	  "name": "main",
	  "functions": [{
	    "name": {"name": "f", "span": [0, 1]},
	    "block": {"statements": [{"kind": "goto", "span": [0, 1]}], "span": [0, 1]},
	    "span": [0, 1]
	  }]
	}`
	//
	_, err := ParseProgram([]byte(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "goto")
}
