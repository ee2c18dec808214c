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

package avl

import (
	"fmt"
	"io"
)

type branch int

const (
	branchRoot branch = iota
	branchLeft
	branchRight
)

// Print writes a sideways drawing of the tree to w, right subtree on top.
// Each node shows its key, height and balance factor.
func (tree *Tree) Print(w io.Writer) {
	printTree(w, tree.root, "", branchRoot)
}

func printTree(w io.Writer, node *Node, prefix string, br branch) {
	if node == nil {
		return
	}

	if node.right != nil {
		t := "       "
		if br == branchLeft {
			t = "|      "
		}
		printTree(w, node.right, prefix+t, branchRight)
	}

	switch br {
	case branchRoot:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case branchLeft:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case branchRight:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%v h=%d %+d\n", node.key, node.height, node.balance)

	if node.left != nil {
		t := "       "
		if br == branchRight {
			t = "|      "
		}
		printTree(w, node.left, prefix+t, branchLeft)
	}
}
