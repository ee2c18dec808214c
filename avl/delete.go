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

// Remove deletes the key equal to key and returns the instance that was
// stored in the tree.
func (tree *Tree) Remove(key Key) (Key, error) {
	if key == nil {
		return nil, fmt.Errorf("remove nil key: %w", ErrInvalidArgument)
	}
	if tree.root == nil {
		return nil, fmt.Errorf("remove %v from empty tree: %w", key, ErrNotFound)
	}

	root, removed, err := removeRecursive(tree.root, key)
	if err != nil {
		return nil, fmt.Errorf("remove %v: %w", key, err)
	}
	tree.root = root
	tree.size--
	return removed, nil
}

// removeRecursive returns the new top of the subtree rooted at node along
// with the key that was unlinked. On error the subtree is returned as it was.
func removeRecursive(node *Node, key Key) (*Node, Key, error) {
	if node == nil {
		return nil, nil, ErrNotFound
	}

	var removed Key
	var err error

	switch c := key.Compare(node.key); {
	case c < 0:
		var left *Node
		if left, removed, err = removeRecursive(node.left, key); err != nil {
			return node, nil, err
		}
		node.left = left
	case c > 0:
		var right *Node
		if right, removed, err = removeRecursive(node.right, key); err != nil {
			return node, nil, err
		}
		node.right = right
	default:
		removed = node.key

		// Case 1 and 2: at most one child takes the node's place
		if node.left == nil {
			return node.right, removed, nil
		}
		if node.right == nil {
			return node.left, removed, nil
		}

		// Case 3: two children, the successor's key moves up
		var successor Key
		node.right, successor = removeSuccessor(node.right)
		node.key = successor
	}

	return rebalance(node), removed, nil
}

// removeSuccessor unlinks the leftmost node of the subtree rooted at node,
// rebalancing on the way back up, and returns the new subtree top together
// with the unlinked key.
func removeSuccessor(node *Node) (*Node, Key) {
	if node.left == nil {
		return node.right, node.key
	}

	var successor Key
	node.left, successor = removeSuccessor(node.left)
	return rebalance(node), successor
}
