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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/zirclang/zirc/pkg/asg"
	"github.com/zirclang/zirc/pkg/asg/passes"
	"github.com/zirclang/zirc/pkg/ast"
	"github.com/zirclang/zirc/pkg/util"
	"github.com/zirclang/zirc/pkg/util/source"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags] ast_file",
	Short: "Check a program for semantic errors.",
	Long: `Check builds the semantic graph of a program from its parsed form,
reporting any name resolution, typing or control-flow errors found along the
way.  Passing the original source file enables highlighted diagnostics.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		stats := util.NewPerfStats()
		program := readAstFile(args[0])
		//
		stats.Log("reading program")
		// Read original source (if given) for diagnostics.
		var srcfile *source.File
		//
		if name := GetString(cmd, "source"); name != "" {
			var err error
			//
			if srcfile, err = source.ReadFile(name); err != nil {
				fmt.Println(err)
				os.Exit(3)
			}
		}
		//
		stats = util.NewPerfStats()
		graph, errors := asg.NewProgram(asg.NewContext(), program)
		//
		stats.Log("building semantic graph")
		//
		if len(errors) != 0 {
			for _, err := range errors {
				printError(err, srcfile)
			}
			//
			os.Exit(4)
		}
		//
		if GetFlag(cmd, "fold") {
			passes.RunAll(graph, &passes.ConstantFolding{})
		}
		//
		log.Infof("checked %d circuit(s) and %d function(s) (of which %d test(s))",
			len(graph.Circuits), len(graph.Functions), len(graph.TestFunctions()))
	},
}

// readAstFile reads and decodes a program in its JSON interchange form.
func readAstFile(filename string) *ast.Program {
	bytes, err := os.ReadFile(filename)
	//
	if err == nil {
		var program *ast.Program
		//
		if program, err = ast.ParseProgram(bytes); err == nil {
			return program
		}
	}
	// Handle error
	fmt.Println(err)
	os.Exit(2)
	// unreachable
	return nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Bool("fold", false, "apply constant folding after checking")
	checkCmd.Flags().String("source", "", "original source file, for highlighted diagnostics")
}
