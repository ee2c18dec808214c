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

// Keys returns every key in ascending order.
func (tree *Tree) Keys() []Key {
	results := make([]Key, 0, tree.size)
	inOrder(tree.root, &results)
	return results
}

func inOrder(node *Node, results *[]Key) {
	if node == nil {
		return
	}
	inOrder(node.left, results)
	*results = append(*results, node.key)
	inOrder(node.right, results)
}

// DeepestBranches returns, in preorder, the keys of every node lying on a
// root-to-leaf path whose length equals the tree height. When both subtrees
// of a node are equally deep the left one is listed first.
func (tree *Tree) DeepestBranches() []Key {
	results := []Key{}
	deepest(tree.root, &results)
	return results
}

// deepest follows the cached balance factor, so subtrees that are not on a
// maximal path are never entered.
func deepest(node *Node, results *[]Key) {
	if node == nil {
		return
	}

	*results = append(*results, node.key)

	switch {
	case node.balance > 0:
		deepest(node.left, results)
	case node.balance < 0:
		deepest(node.right, results)
	default:
		deepest(node.left, results)
		deepest(node.right, results)
	}
}

// SortedInBetween returns, in ascending order, the stored keys strictly
// greater than lo and strictly less than hi.
func (tree *Tree) SortedInBetween(lo, hi Key) ([]Key, error) {
	if lo == nil || hi == nil {
		return nil, fmt.Errorf("range with nil bound: %w", ErrInvalidArgument)
	}
	c := lo.Compare(hi)
	if c > 0 {
		return nil, fmt.Errorf("range lower bound %v above upper bound %v: %w", lo, hi, ErrInvalidArgument)
	}

	results := []Key{}
	if c == 0 {
		return results, nil
	}
	rangeSearch(tree.root, lo, hi, &results)
	return results, nil
}

// rangeSearch appends, in order, every key of the subtree rooted at node
// satisfying lo < key < hi.
func rangeSearch(node *Node, lo, hi Key, results *[]Key) {
	if node == nil {
		return
	}

	switch {
	case node.key.Compare(lo) <= 0:
		// node and its whole left subtree are at or below lo
		rangeSearch(node.right, lo, hi, results)
	case node.key.Compare(hi) >= 0:
		rangeSearch(node.left, lo, hi, results)
	default:
		rangeSearch(node.left, lo, hi, results)
		*results = append(*results, node.key)
		rangeSearch(node.right, lo, hi, results)
	}
}
