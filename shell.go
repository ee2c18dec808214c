// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const shellPrompt = "avl> "

// runShell reads command lines from in until EOF, exit or quit, and writes
// results to out. Command errors are printed and the loop carries on.
func runShell(s *Session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprint(out, shellPrompt)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "exit", "quit":
			return nil
		case "":
		default:
			result, err := s.Exec(line)
			if err != nil {
				fmt.Fprintf(out, "%serror:%s %v\n", Error, Reset, err)
			} else if result != "" {
				fmt.Fprintln(out, result)
			}
		}

		fmt.Fprint(out, shellPrompt)
	}
	fmt.Fprintln(out)

	return scanner.Err()
}
