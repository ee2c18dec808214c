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

package main

import (
	"fmt"

	"github.com/cybrota/avlindex/avl"
	"github.com/willf/bloom"
)

// KeyFilter is a bloom filter over every key ever inserted into the session
// tree since the last reset. A negative answer is definitive; a positive one
// must be confirmed against the tree. Removals never clear bits, they only
// raise the false positive rate.
type KeyFilter struct {
	bloomFilter *bloom.BloomFilter
	config      FilterConfig
	skipped     int // lookups answered without touching the tree
}

func NewKeyFilter(config FilterConfig) *KeyFilter {
	return &KeyFilter{
		bloomFilter: bloom.New(config.BloomSize, config.BloomHashes),
		config:      config,
	}
}

func filterToken(key avl.Key) string {
	// the kind prefix keeps Int(1) and String("1") apart
	return fmt.Sprintf("%T:%v", key, key)
}

func (kf *KeyFilter) Add(key avl.Key) {
	kf.bloomFilter.AddString(filterToken(key))
}

// MayContain returns false only when key was certainly never added.
func (kf *KeyFilter) MayContain(key avl.Key) bool {
	if kf.bloomFilter.TestString(filterToken(key)) {
		return true
	}
	kf.skipped++
	return false
}

// Reset forgets every key.
func (kf *KeyFilter) Reset() {
	kf.bloomFilter.ClearAll()
}

// Skipped returns how many lookups were answered by the filter alone.
func (kf *KeyFilter) Skipped() int {
	return kf.skipped
}
