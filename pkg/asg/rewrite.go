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

// ExprRewriter maps expressions to their replacements during a rewrite pass.
// Returning the expression unchanged leaves it in place.  Replacements must
// preserve the type of the expression they replace, so that the graph remains
// well-typed without re-checking.
type ExprRewriter interface {
	// RewriteExpression returns the replacement for the given expression,
	// which may be the expression itself.
	RewriteExpression(expr Expression) Expression
}

// RewriteExpression applies the given rewriter throughout an expression tree,
// bottom-up, rebinding child slots in place.  The replacement inherits the
// parent link of the expression it replaces, and parent links of surviving
// children are re-enforced.
func RewriteExpression(expr Expression, rewriter ExprRewriter) Expression {
	switch e := expr.(type) {
	case *Constant, *VariableRef:
	case *BinaryExpression:
		e.Left = RewriteExpression(e.Left, rewriter)
		e.Right = RewriteExpression(e.Right, rewriter)
	case *UnaryExpression:
		e.Inner = RewriteExpression(e.Inner, rewriter)
	case *TernaryExpression:
		e.Condition = RewriteExpression(e.Condition, rewriter)
		e.IfTrue = RewriteExpression(e.IfTrue, rewriter)
		e.IfFalse = RewriteExpression(e.IfFalse, rewriter)
	case *CallExpression:
		if e.Target != nil {
			e.Target = RewriteExpression(e.Target, rewriter)
		}
		//
		for i, a := range e.Arguments {
			e.Arguments[i] = RewriteExpression(a, rewriter)
		}
	case *CircuitAccess:
		e.Target = RewriteExpression(e.Target, rewriter)
	case *ArrayAccess:
		e.Array = RewriteExpression(e.Array, rewriter)
		e.Index = RewriteExpression(e.Index, rewriter)
	case *ArrayInline:
		for i, el := range e.Elements {
			e.Elements[i] = RewriteExpression(el, rewriter)
		}
	case *ArrayInit:
		e.Element = RewriteExpression(e.Element, rewriter)
	case *TupleInit:
		for i, el := range e.Elements {
			e.Elements[i] = RewriteExpression(el, rewriter)
		}
	case *TupleAccess:
		e.Tuple = RewriteExpression(e.Tuple, rewriter)
	case *CircuitInit:
		for i, m := range e.Members {
			e.Members[i].Value = RewriteExpression(m.Value, rewriter)
		}
	default:
		panic("unreachable")
	}
	//
	expr.EnforceParents()
	//
	replacement := rewriter.RewriteExpression(expr)
	//
	if replacement != expr {
		if !replacement.Type().Equals(expr.Type()) {
			panic("rewrite changed expression type")
		}
		//
		replacement.SetParent(expr.Parent())
	}
	//
	return replacement
}

// RewriteStatement applies the given rewriter to every expression held
// (directly or transitively) by a statement tree, rebinding expression slots
// in place.
func RewriteStatement(stmt Statement, rewriter ExprRewriter) {
	switch s := stmt.(type) {
	case *BlockStatement:
		for _, c := range s.Statements {
			RewriteStatement(c, rewriter)
		}
	case *ReturnStatement:
		s.Value = RewriteExpression(s.Value, rewriter)
	case *DefinitionStatement:
		s.Value = RewriteExpression(s.Value, rewriter)
	case *AssignStatement:
		for _, a := range s.Accesses {
			if index, ok := a.(*AssignIndex); ok {
				index.Index = RewriteExpression(index.Index, rewriter)
			}
		}
		//
		s.Value = RewriteExpression(s.Value, rewriter)
	case *ConditionalStatement:
		s.Condition = RewriteExpression(s.Condition, rewriter)
		RewriteStatement(s.Body, rewriter)
		//
		if s.Next != nil {
			RewriteStatement(s.Next, rewriter)
		}
	case *IterationStatement:
		s.Start = RewriteExpression(s.Start, rewriter)
		s.Stop = RewriteExpression(s.Stop, rewriter)
		RewriteStatement(s.Body, rewriter)
	case *ExpressionStatement:
		s.Expression = RewriteExpression(s.Expression, rewriter)
	default:
		panic("unreachable")
	}
	//
	stmt.EnforceParents()
}

// RewriteFunction applies the given rewriter throughout the body of a
// function (where it has one).
func RewriteFunction(function *Function, rewriter ExprRewriter) {
	if function.Body != nil {
		RewriteStatement(function.Body, rewriter)
	}
}

// RewriteProgram applies the given rewriter throughout every function of a
// program, member functions included.
func RewriteProgram(program *Program, rewriter ExprRewriter) {
	for _, c := range program.Circuits {
		for _, m := range c.Members {
			if f, ok := m.(*CircuitFunction); ok {
				RewriteFunction(f.Function, rewriter)
			}
		}
	}
	//
	for _, f := range program.Functions {
		RewriteFunction(f, rewriter)
	}
}
