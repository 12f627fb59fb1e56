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
package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOption_Some(t *testing.T) {
	opt := Some(42)
	//
	assert.True(t, opt.HasValue())
	assert.False(t, opt.IsEmpty())
	assert.Equal(t, 42, opt.Unwrap())
	assert.Equal(t, 42, opt.UnwrapOr(0))
}

func TestOption_None(t *testing.T) {
	opt := None[int]()
	//
	assert.False(t, opt.HasValue())
	assert.True(t, opt.IsEmpty())
	assert.Equal(t, 7, opt.UnwrapOr(7))
	assert.Panics(t, func() { opt.Unwrap() })
}
