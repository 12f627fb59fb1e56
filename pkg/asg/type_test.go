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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zirclang/zirc/pkg/ast"
	"github.com/zirclang/zirc/pkg/util"
)

func TestType_Equality(t *testing.T) {
	u32 := &IntegerType{ast.U32}
	i32 := &IntegerType{ast.I32}
	//
	assert.True(t, u32.Equals(&IntegerType{ast.U32}))
	assert.False(t, u32.Equals(i32))
	assert.False(t, u32.Equals(&FieldType{}))
	assert.True(t, (&BooleanType{}).Equals(&BooleanType{}))
	//
	a1 := &ArrayType{u32, 4}
	a2 := &ArrayType{u32, 4}
	a3 := &ArrayType{u32, 5}
	a4 := &ArrayType{i32, 4}
	//
	assert.True(t, a1.Equals(a2))
	assert.False(t, a1.Equals(a3))
	assert.False(t, a1.Equals(a4))
	//
	t1 := &TupleType{[]Type{u32, &BooleanType{}}}
	t2 := &TupleType{[]Type{u32, &BooleanType{}}}
	t3 := &TupleType{[]Type{u32}}
	//
	assert.True(t, t1.Equals(t2))
	assert.False(t, t1.Equals(t3))
	assert.True(t, UnitType().Equals(&TupleType{}))
}

func TestType_CircuitEquality(t *testing.T) {
	c1 := &Circuit{Name: "Point"}
	c2 := &Circuit{Name: "Point"}
	// Circuit types compare by declaration, not by name.
	assert.True(t, (&CircuitType{c1}).Equals(&CircuitType{c1}))
	assert.False(t, (&CircuitType{c1}).Equals(&CircuitType{c2}))
}

func TestPartialType_Wildcard(t *testing.T) {
	u32 := &IntegerType{ast.U32}
	// A nil pattern matches anything at all.
	assert.True(t, MatchesPartial(nil, u32))
	assert.True(t, MatchesPartial(nil, &ArrayType{u32, 3}))
	assert.Nil(t, ExpectType(nil))
}

func TestPartialType_Exact(t *testing.T) {
	u32 := &IntegerType{ast.U32}
	pattern := ExpectType(u32)
	//
	assert.True(t, pattern.Matches(&IntegerType{ast.U32}))
	assert.False(t, pattern.Matches(&IntegerType{ast.U8}))
	assert.False(t, pattern.Matches(&FieldType{}))
}

func TestPartialType_Array(t *testing.T) {
	u32 := &IntegerType{ast.U32}
	array := &ArrayType{u32, 4}
	// Element fixed, size free.
	pattern := &PartialArray{ExpectType(u32), util.None[uint]()}
	assert.True(t, pattern.Matches(array))
	assert.True(t, pattern.Matches(&ArrayType{u32, 9}))
	assert.False(t, pattern.Matches(&ArrayType{&FieldType{}, 4}))
	assert.False(t, pattern.Matches(u32))
	// Size fixed, element free.
	pattern = &PartialArray{nil, util.Some[uint](4)}
	assert.True(t, pattern.Matches(array))
	assert.False(t, pattern.Matches(&ArrayType{u32, 5}))
}

func TestPartialType_Tuple(t *testing.T) {
	u32 := &IntegerType{ast.U32}
	tuple := &TupleType{[]Type{u32, &BooleanType{}}}
	// Second element free.
	pattern := &PartialTuple{[]PartialType{ExpectType(u32), nil}}
	assert.True(t, pattern.Matches(tuple))
	assert.False(t, pattern.Matches(&TupleType{[]Type{u32}}))
	assert.False(t, pattern.Matches(&TupleType{[]Type{&BooleanType{}, &BooleanType{}}}))
	// Arity alone.
	pattern = &PartialTuple{make([]PartialType, 2)}
	assert.True(t, pattern.Matches(tuple))
	assert.False(t, pattern.Matches(u32))
}
