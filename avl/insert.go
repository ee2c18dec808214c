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

import "fmt"

// Insert adds key to the tree. Inserting a key that is already present
// leaves the tree unchanged.
func (tree *Tree) Insert(key Key) error {
	if key == nil {
		return fmt.Errorf("insert nil key: %w", ErrInvalidArgument)
	}
	tree.root = insertRecursive(tree.root, key, &tree.size)
	return nil
}

func insertRecursive(node *Node, key Key, size *int) *Node {
	if node == nil {
		*size++
		return newNode(key)
	}

	switch c := key.Compare(node.key); {
	case c < 0:
		node.left = insertRecursive(node.left, key, size)
	case c > 0:
		node.right = insertRecursive(node.right, key, size)
	default:
		// duplicate, nothing below changed
		return node
	}

	return rebalance(node)
}
