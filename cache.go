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
	"github.com/patrickmn/go-cache"
)

// NewResultCache creates the cache holding rendered read-only query results.
// Entries are keyed by the normalized command line.
func NewResultCache(cfg CacheConfig) *cache.Cache {
	return cache.New(cfg.TTL, cfg.Cleanup)
}

func CacheResult(c *cache.Cache, query string, result string) {
	// Set instead of Add: a stale entry may still be there until cleanup runs
	c.Set(query, result, cache.DefaultExpiration)
}

func GetCachedResult(c *cache.Cache, query string) (string, bool) {
	val, ok := c.Get(query)
	if !ok {
		return "", false
	}
	return val.(string), true
}

// InvalidateResults drops every cached result. Any change to the tree has
// to call it.
func InvalidateResults(c *cache.Cache) {
	c.Flush()
}
