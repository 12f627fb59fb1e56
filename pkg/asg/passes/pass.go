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
	"github.com/zirclang/zirc/pkg/util"
)

// Pass transforms a semantic graph in place, preserving its typing and
// parent-link invariants.
type Pass interface {
	// Name returns the name of this pass, for logging.
	Name() string
	// Apply runs this pass over the given program.
	Apply(program *asg.Program)
}

// RunAll applies the given passes in order, logging the time and memory taken
// by each.
func RunAll(program *asg.Program, passes ...Pass) {
	for _, pass := range passes {
		stats := util.NewPerfStats()
		pass.Apply(program)
		stats.Log(pass.Name())
	}
}
