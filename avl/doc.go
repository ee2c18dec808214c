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

// Package avl implements an in-memory, height-balanced ordered key index.
//
// Every node caches its height and balance factor. Insert and Remove descend
// recursively and repair the tree on the way back up, relinking each level
// with the subtree top returned by the level below, so nodes never hold a
// reference to their parent.
//
// Besides the usual lookups the tree offers two pruned traversals:
// DeepestBranches, which follows the cached balance factors to return only
// the nodes lying on a root-to-leaf path of maximal length, and
// SortedInBetween, which returns the keys strictly inside a range while
// skipping every subtree that cannot contribute.
//
// Note: a tree is not safe for concurrent use. Access it from a single
// goroutine or guard it with a mutex.
package avl
