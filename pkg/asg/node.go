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
	"github.com/zirclang/zirc/pkg/util"
	"github.com/zirclang/zirc/pkg/util/source"
)

// Node provides a common interface for all elements of the semantic graph.
// Every node carries a unique identifier stamped at allocation, an optional
// source span and an upward link to its parent node.  Construction proceeds in
// two phases: children are built bottom-up with nil parents, and parent links
// are wired afterwards (once each node has been placed) via EnforceParents.
type Node interface {
	// Id returns the unique identifier of this node.
	Id() uint
	// Span returns the source location of this node (if known).
	Span() util.Option[source.Span]
	// Parent returns the node immediately containing this one, or nil for a
	// root node.
	Parent() Node
	// SetParent updates the upward link of this node.
	SetParent(Node)
}

// nodeBase provides the identifier, span and parent link shared by every
// concrete node, for embedding.
type nodeBase struct {
	// Unique identifier of this node.
	id uint
	// Source location of this node (if known).
	span util.Option[source.Span]
	// Node immediately containing this one, or nil.
	parent Node
}

func newNodeBase(scope *Scope, span source.Span) nodeBase {
	return nodeBase{scope.Context().NextId(), util.Some(span), nil}
}

// Id returns the unique identifier of this node.
func (p *nodeBase) Id() uint { return p.id }

// Span returns the source location of this node (if known).
func (p *nodeBase) Span() util.Option[source.Span] { return p.span }

// Parent returns the node immediately containing this one, or nil for a root
// node.
func (p *nodeBase) Parent() Node { return p.parent }

// SetParent updates the upward link of this node.
func (p *nodeBase) SetParent(n Node) { p.parent = n }

// SpanOf returns the span of the given node, or the empty span when the node
// carries none.
func SpanOf(n Node) source.Span {
	if n.Span().HasValue() {
		return n.Span().Unwrap()
	}
	//
	return source.NewSpan(0, 0)
}
