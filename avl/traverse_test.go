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
	"bytes"
	"errors"
	"strings"
	"testing"
)

// sampleTree builds, without any rotation, the tree
//
//	               10
//	        5               15
//	    2       7       13       20
//	  1   4   6   8       14   17   25
//	 0              9                 30
//
// by inserting its keys level by level.
func sampleTree(t *testing.T) *Tree {
	return newIntTree(t, 10, 5, 15, 2, 7, 13, 20, 1, 4, 6, 8, 14, 17, 25, 0, 9, 30)
}

func keysToInts(keys []Key) []int64 {
	out := make([]int64, 0, len(keys))
	for _, k := range keys {
		out = append(out, int64(k.(Int)))
	}
	return out
}

func equalInts(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSampleTreeShape(t *testing.T) {
	tree := sampleTree(t)

	if err := tree.Check(); err != nil {
		t.Fatalf("invariant violated: %v", err)
	}
	if tree.Height() != 4 {
		t.Errorf("Height: expected 4, got %d", tree.Height())
	}
	if tree.Size() != 17 {
		t.Errorf("Size: expected 17, got %d", tree.Size())
	}
	if tree.Root().Key() != Int(10) || tree.Root().BalanceFactor() != 0 {
		t.Errorf("root: expected 10 with balance 0, got %v with %d", tree.Root().Key(), tree.Root().BalanceFactor())
	}
	if got := tree.Root().Left().Left().BalanceFactor(); got != 1 {
		t.Errorf("balance of 2: expected +1, got %d", got)
	}
}

func TestDeepestBranches(t *testing.T) {
	tests := []struct {
		name     string
		keys     []int64
		expected []int64
	}{
		{"sample tree", nil, []int64{10, 5, 2, 1, 0, 7, 8, 9, 15, 20, 25, 30}},
		{"single node", []int64{1}, []int64{1}},
		{"perfect tree lists everything in preorder", []int64{4, 2, 6, 1, 3, 5, 7}, []int64{4, 2, 1, 3, 6, 5, 7}},
		{"left-heavy root", []int64{3, 2, 4, 1}, []int64{3, 2, 1}},
		{"right-heavy root", []int64{2, 1, 3, 4}, []int64{2, 3, 4}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var tree *Tree
			if tc.keys == nil {
				tree = sampleTree(t)
			} else {
				tree = newIntTree(t, tc.keys...)
			}

			got := keysToInts(tree.DeepestBranches())
			if !equalInts(got, tc.expected) {
				t.Errorf("DeepestBranches: expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestSortedInBetween(t *testing.T) {
	tree := sampleTree(t)

	tests := []struct {
		lo, hi   int64
		expected []int64
	}{
		{7, 14, []int64{8, 9, 10, 13}},
		{3, 8, []int64{4, 5, 6, 7}},
		{8, 8, []int64{}},
		{8, 9, []int64{}},
		{-100, 100, []int64{0, 1, 2, 4, 5, 6, 7, 8, 9, 10, 13, 14, 15, 17, 20, 25, 30}},
		{30, 40, []int64{}},
		{-5, 0, []int64{}},
		{14, 21, []int64{15, 17, 20}},
	}

	for _, tc := range tests {
		got, err := tree.SortedInBetween(Int(tc.lo), Int(tc.hi))
		if err != nil {
			t.Errorf("SortedInBetween(%d, %d) returned error: %v", tc.lo, tc.hi, err)
			continue
		}
		if got == nil {
			t.Errorf("SortedInBetween(%d, %d): expected non-nil slice", tc.lo, tc.hi)
		}
		if ints := keysToInts(got); !equalInts(ints, tc.expected) {
			t.Errorf("SortedInBetween(%d, %d): expected %v, got %v", tc.lo, tc.hi, tc.expected, ints)
		}
	}
}

func TestSortedInBetweenInvertedBounds(t *testing.T) {
	tree := sampleTree(t)

	if _, err := tree.SortedInBetween(Int(14), Int(7)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("SortedInBetween(14, 7): expected ErrInvalidArgument, got %v", err)
	}
}

func TestDeepestBranchesAfterRemoval(t *testing.T) {
	tree := sampleTree(t)

	// dropping 0 leaves 9 and 30 as the only deepest leaves
	if _, err := tree.Remove(Int(0)); err != nil {
		t.Fatalf("Remove(0) returned error: %v", err)
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant violated: %v", err)
	}

	expected := []int64{10, 5, 7, 8, 9, 15, 20, 25, 30}
	if got := keysToInts(tree.DeepestBranches()); !equalInts(got, expected) {
		t.Errorf("DeepestBranches: expected %v, got %v", expected, got)
	}
}

func TestPrint(t *testing.T) {
	tree := newIntTree(t, 2, 1, 3)

	var buf bytes.Buffer
	tree.Print(&buf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Print: expected 3 lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "/------+ 3 h=0") {
		t.Errorf("Print: first line should show right child 3, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "|------+ 2 h=1") {
		t.Errorf("Print: second line should show root 2, got %q", lines[1])
	}
	if !strings.Contains(lines[2], "\\------+ 1 h=0") {
		t.Errorf("Print: third line should show left child 1, got %q", lines[2])
	}
}

func TestCheckDetectsCorruption(t *testing.T) {
	tree := newIntTree(t, 2, 1, 3)
	tree.root.left.key = Int(5)

	if err := tree.Check(); err == nil {
		t.Error("Check: expected ordering violation to be reported")
	}

	tree = newIntTree(t, 2, 1, 3)
	tree.root.height = 7
	if err := tree.Check(); err == nil {
		t.Error("Check: expected stale height to be reported")
	}

	tree = newIntTree(t, 2, 1, 3)
	tree.size = 9
	if err := tree.Check(); err == nil {
		t.Error("Check: expected size mismatch to be reported")
	}
}
