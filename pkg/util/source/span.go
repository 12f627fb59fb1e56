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
package source

import (
	"encoding/json"
	"fmt"
)

// Span represents a contiguous slice of an original source string.  Instead of
// representing this as a string slice, however, it is useful to retain the
// physical indices.  This allows us to do certain things, such as determine the
// enclosing line, etc.
type Span struct {
	// The first character of this span in the original string.
	start int
	// One past the final character of this span in the original string.
	end int
}

// NewSpan constructs a new span whilst checking the internal invariants are
// maintained.
func NewSpan(start int, end int) Span {
	if start > end {
		panic("invalid span")
	}

	return Span{start, end}
}

// Start returns the starting index of this span in the original string.
func (p *Span) Start() int {
	return p.start
}

// End returns one past the last index of this span in the original string.
func (p *Span) End() int {
	return p.end
}

// Length returns the number of characters covered by this span in the original
// string.
func (p *Span) Length() int {
	return p.end - p.start
}

func (p Span) String() string {
	return fmt.Sprintf("%d:%d", p.start, p.end)
}

// MarshalJSON serialises this span in the form used by the syntax-tree
// interchange format (a two element array of start and end offsets).
func (p Span) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.start, p.end})
}

// UnmarshalJSON deserialises a span from the syntax-tree interchange format.
func (p *Span) UnmarshalJSON(data []byte) error {
	var raw [2]int
	//
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	//
	if raw[0] > raw[1] {
		return fmt.Errorf("invalid span %d:%d", raw[0], raw[1])
	}
	//
	p.start = raw[0]
	p.end = raw[1]
	//
	return nil
}
