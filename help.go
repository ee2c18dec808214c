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
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

// usageMarkdown is shared by the usage command and the browse help panel.
func usageMarkdown() string {
	return fmt.Sprintf(`
**avlindex %s**

Load keys into a height-balanced index and query it from the terminal.

Built with Go %s

# 1. Loading keys
* Pass a key file with *--file*: one key per line, blank lines and *#* comments are skipped
* Keys are integers by default; set *keys.type: string* in ~/.avlindex.yaml for text keys

# 2. Session commands
* *insert <key>...* adds keys, duplicates are ignored
* *remove <key>*, *get <key>*, *contains <key>*
* *range <lo> <hi>* lists keys strictly between the bounds
* *deepest* lists the keys on every maximum-depth branch
* *keys*, *height*, *size*, *show*, *check*, *clear*

# 3. Browse keys
* *enter* runs the typed command
* *ctrl+y* copies the last result to the clipboard
* *f1* toggles this help, *esc* quits

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
}

func getHelpMessage() string {
	result := markdown.Render(usageMarkdown(), 80, 3)
	return string(result)
}
