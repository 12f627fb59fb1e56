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
package passes

import (
	"github.com/zirclang/zirc/pkg/asg"
)

// ConstantFolding replaces every expression whose value is known at compile
// time with a constant of that value.  The pass is idempotent, since the
// constants it introduces are already folded.
type ConstantFolding struct{}

// Name returns the name of this pass, for logging.
func (p *ConstantFolding) Name() string {
	return "constant folding"
}

// Apply runs this pass over the given program.
func (p *ConstantFolding) Apply(program *asg.Program) {
	asg.RewriteProgram(program, &folder{program.Context})
}

type folder struct {
	context *asg.Context
}

// RewriteExpression returns the replacement for the given expression.
func (p *folder) RewriteExpression(expr asg.Expression) asg.Expression {
	// Already-folded constants stay put.
	if _, ok := expr.(*asg.Constant); ok {
		return expr
	}
	//
	if value := expr.ConstValue(); value != nil {
		return asg.NewConstant(p.context, expr.Span(), expr.Type(), value)
	}
	//
	return expr
}
