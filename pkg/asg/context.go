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

// Context owns every entity of a semantic graph.  It hands out the unique,
// monotonically increasing identifiers stamped on nodes, variables, functions
// and circuits as they are allocated, which makes identifiers stable across
// identical inputs and gives every entity a total allocation order.
type Context struct {
	// Next identifier to be handed out.
	nextId uint
}

// NewContext constructs an empty context whose first identifier is zero.
func NewContext() *Context {
	return &Context{}
}

// NextId returns a fresh identifier, distinct from all identifiers previously
// handed out by this context.
func (p *Context) NextId() uint {
	id := p.nextId
	p.nextId++
	//
	return id
}
