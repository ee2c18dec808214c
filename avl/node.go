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

// Node is a single key of the tree together with its cached balance data.
type Node struct {
	key     Key
	left    *Node
	right   *Node
	height  int // -1 for an absent node, 0 for a leaf
	balance int // height(left) - height(right)
}

func newNode(key Key) *Node {
	return &Node{key: key}
}

// Key returns the stored key.
func (n *Node) Key() Key {
	return n.key
}

// Left returns the left child, or nil.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right child, or nil.
func (n *Node) Right() *Node {
	return n.right
}

// Height returns the cached height of the subtree rooted at n.
func (n *Node) Height() int {
	return heightOf(n)
}

// BalanceFactor returns the cached height(left) - height(right).
func (n *Node) BalanceFactor() int {
	if n == nil {
		return 0
	}
	return n.balance
}

func heightOf(n *Node) int {
	if n == nil {
		return -1
	}
	return n.height
}

// update recomputes the cached height and balance factor of n from its
// children. It must run after every change to n's child links.
func update(n *Node) {
	lh := heightOf(n.left)
	rh := heightOf(n.right)
	n.height = max(lh, rh) + 1
	n.balance = lh - rh
}
