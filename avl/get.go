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
	"errors"
	"fmt"
)

// Get returns the stored key equal to key.
func (tree *Tree) Get(key Key) (Key, error) {
	if key == nil {
		return nil, fmt.Errorf("get nil key: %w", ErrInvalidArgument)
	}

	node := searchNode(tree.root, key)
	if node == nil {
		return nil, fmt.Errorf("get %v: %w", key, ErrNotFound)
	}
	return node.key, nil
}

// Contains reports whether a key equal to key is stored. Only a nil key
// produces an error.
func (tree *Tree) Contains(key Key) (bool, error) {
	_, err := tree.Get(key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// searchNode is a helper function that traverses the tree recursively.
func searchNode(node *Node, key Key) *Node {
	if node == nil {
		return nil
	}

	switch c := key.Compare(node.key); {
	case c < 0:
		return searchNode(node.left, key)
	case c > 0:
		return searchNode(node.right, key)
	default:
		return node
	}
}
