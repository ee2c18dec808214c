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

// Tree holds the root node and the number of distinct keys stored.
type Tree struct {
	root *Node
	size int
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{root: nil}
}

// NewFromKeys creates a tree holding keys, inserted in slice order.
// Duplicates are skipped. A nil slice or a nil element is rejected before
// anything is inserted.
func NewFromKeys(keys []Key) (*Tree, error) {
	if keys == nil {
		return nil, fmt.Errorf("nil key collection: %w", ErrInvalidArgument)
	}
	for i, key := range keys {
		if key == nil {
			return nil, fmt.Errorf("nil key at index %d: %w", i, ErrInvalidArgument)
		}
	}

	tree := New()
	for _, key := range keys {
		tree.root = insertRecursive(tree.root, key, &tree.size)
	}
	return tree, nil
}

// Size returns the number of keys in the tree.
func (tree *Tree) Size() int {
	return tree.size
}

// IsEmpty reports whether the tree holds no keys.
func (tree *Tree) IsEmpty() bool {
	return tree.root == nil
}

// Height returns the height of the root, or -1 for an empty tree.
func (tree *Tree) Height() int {
	return heightOf(tree.root)
}

// Root returns the root node, or nil for an empty tree.
func (tree *Tree) Root() *Node {
	return tree.root
}

// Clear drops every key.
func (tree *Tree) Clear() {
	tree.root = nil
	tree.size = 0
}
