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

// Check walks the whole tree and verifies key ordering, the cached heights
// and balance factors, the AVL balance bound and the size counter. It
// returns an error describing the first violation found.
func (tree *Tree) Check() error {
	count := 0
	if _, err := checkNode(tree.root, nil, nil, &count); err != nil {
		return err
	}
	if count != tree.size {
		return fmt.Errorf("size is %d but tree holds %d nodes", tree.size, count)
	}
	return nil
}

// checkNode returns the real height of the subtree rooted at node. lo and hi
// are the exclusive bounds inherited from the ancestors, nil when open.
func checkNode(node *Node, lo, hi Key, count *int) (int, error) {
	if node == nil {
		return -1, nil
	}
	*count++

	if lo != nil && node.key.Compare(lo) <= 0 {
		return 0, fmt.Errorf("key %v is not greater than ancestor %v", node.key, lo)
	}
	if hi != nil && node.key.Compare(hi) >= 0 {
		return 0, fmt.Errorf("key %v is not less than ancestor %v", node.key, hi)
	}

	lh, err := checkNode(node.left, lo, node.key, count)
	if err != nil {
		return 0, err
	}
	rh, err := checkNode(node.right, node.key, hi, count)
	if err != nil {
		return 0, err
	}

	height := max(lh, rh) + 1
	if node.height != height {
		return 0, fmt.Errorf("key %v caches height %d, actual %d", node.key, node.height, height)
	}
	if node.balance != lh-rh {
		return 0, fmt.Errorf("key %v caches balance %d, actual %d", node.key, node.balance, lh-rh)
	}
	if node.balance < -1 || node.balance > 1 {
		return 0, fmt.Errorf("key %v is out of balance (%+d)", node.key, node.balance)
	}
	return height, nil
}
