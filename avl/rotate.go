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

// rotateLeft promotes node.right above node and returns the new subtree top.
func rotateLeft(node *Node) *Node {
	pivot := node.right

	node.right = pivot.left
	pivot.left = node

	// node is now below pivot, so its metadata has to be settled first
	update(node)
	update(pivot)

	return pivot
}

// rotateRight promotes node.left above node and returns the new subtree top.
func rotateRight(node *Node) *Node {
	pivot := node.left

	node.left = pivot.right
	pivot.right = node

	update(node)
	update(pivot)

	return pivot
}

// rebalance refreshes node's metadata and, when its balance factor has
// reached +2 or -2, restores it with a single or double rotation. The
// returned node replaces node in its parent.
func rebalance(node *Node) *Node {
	update(node)

	switch node.balance {
	case 2: // left-heavy
		if node.left.balance == -1 {
			// Left-Right case
			node.left = rotateLeft(node.left)
		}
		return rotateRight(node)
	case -2: // right-heavy
		if node.right.balance == 1 {
			// Right-Left case
			node.right = rotateRight(node.right)
		}
		return rotateLeft(node)
	}

	return node
}
