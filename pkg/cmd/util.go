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
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zirclang/zirc/pkg/asg"
	"github.com/zirclang/zirc/pkg/util/source"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	return r
}

// GetString gets an expected string, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	return r
}

// Print a semantic error with appropriate highlighting against the original
// source text (where available).
func printError(err *asg.Error, srcfile *source.File) {
	if srcfile == nil || !err.Span.HasValue() {
		fmt.Println(err.Error())
		return
	}
	//
	span := err.Span.Unwrap()
	line := srcfile.FindFirstEnclosingLine(span)
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := max(1, min(line.Length()-lineOffset, span.Length()))
	// Print error + line number
	fmt.Printf("%s:%d:%d-%d %s\n", srcfile.Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message)
	// Print separator line
	fmt.Println()
	// Print line (clamped to the terminal, where we have one)
	text := line.String()
	//
	if width, ok := terminalWidth(); ok && len(text) > width {
		text = text[:width]
	}
	//
	fmt.Println(text)
	// Print indent (todo: account for tabs)
	fmt.Print(strings.Repeat(" ", lineOffset))
	// Print highlight
	fmt.Println(strings.Repeat("^", length))
}

func terminalWidth() (int, bool) {
	fd := int(os.Stdout.Fd())
	//
	if !term.IsTerminal(fd) {
		return 0, false
	}
	//
	width, _, err := term.GetSize(fd)
	//
	return width, err == nil
}
