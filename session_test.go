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
	"errors"
	"testing"

	"github.com/cybrota/avlindex/avl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleKeys = "insert 10 5 15 2 7 13 20 1 4 6 8 14 17 25 0 9 30"

func newSampleSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(DefaultConfig())
	out, err := s.Exec(sampleKeys)
	require.NoError(t, err)
	require.Equal(t, "inserted 17 of 17 keys (size 17)", out)
	return s
}

func TestSessionQueries(t *testing.T) {
	s := newSampleSession(t)

	tests := []struct {
		line     string
		expected string
	}{
		{"height", "4"},
		{"size", "17"},
		{"deepest", "[10 5 2 1 0 7 8 9 15 20 25 30]"},
		{"range 7 14", "[8 9 10 13]"},
		{"range 3 8", "[4 5 6 7]"},
		{"range 8 8", "[]"},
		{"get 13", "13"},
		{"contains 13", "true"},
		{"contains 12", "false"},
		{"keys", "[0 1 2 4 5 6 7 8 9 10 13 14 15 17 20 25 30]"},
		{"CHECK", "ok (17 keys, height 4)"},
		{"", ""},
	}

	for _, tc := range tests {
		t.Run(tc.line, func(t *testing.T) {
			out, err := s.Exec(tc.line)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestSessionErrors(t *testing.T) {
	s := newSampleSession(t)

	_, err := s.Exec("get 12")
	assert.True(t, errors.Is(err, avl.ErrNotFound))

	_, err = s.Exec("remove 12")
	assert.True(t, errors.Is(err, avl.ErrNotFound))

	_, err = s.Exec("range 14 7")
	assert.True(t, errors.Is(err, avl.ErrInvalidArgument))

	_, err = s.Exec("get twelve")
	assert.True(t, errors.Is(err, avl.ErrInvalidArgument))

	_, err = s.Exec("range 1")
	assert.True(t, errors.Is(err, errUsage))

	_, err = s.Exec("frobnicate")
	assert.ErrorContains(t, err, "unknown command")

	_, err = s.Exec(`insert "unterminated`)
	assert.Error(t, err)

	// a bad key anywhere in an insert leaves the tree alone
	_, err = s.Exec("insert 100 oops 200")
	assert.Error(t, err)
	assert.Equal(t, 17, s.Tree().Size())
}

func TestSessionCacheInvalidation(t *testing.T) {
	s := newSampleSession(t)

	first, err := s.Exec("range 7 14")
	require.NoError(t, err)
	_, cached := GetCachedResult(s.results, cacheQuery("range", []string{"7", "14"}))
	assert.True(t, cached, "range result should be cached")

	out, err := s.Exec("remove 10")
	require.NoError(t, err)
	assert.Equal(t, "removed 10", out)
	assert.Equal(t, 0, s.results.ItemCount())

	second, err := s.Exec("range 7 14")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.Equal(t, "[8 9 13]", second)

	// duplicate inserts change nothing and keep the cache
	out, err = s.Exec("insert 8 9")
	require.NoError(t, err)
	assert.Equal(t, "inserted 0 of 2 keys (size 16)", out)
	assert.Equal(t, 1, s.results.ItemCount())
}

func TestSessionContainsUsesFilter(t *testing.T) {
	s := NewSession(DefaultConfig())

	out, err := s.Exec("contains 7")
	require.NoError(t, err)
	assert.Equal(t, "false", out)
	assert.Equal(t, 1, s.Filter().Skipped())

	_, err = s.Exec("insert 7")
	require.NoError(t, err)
	out, err = s.Exec("contains 7")
	require.NoError(t, err)
	assert.Equal(t, "true", out)

	// removal leaves the filter bit set, the tree gives the answer
	_, err = s.Exec("remove 7")
	require.NoError(t, err)
	out, err = s.Exec("contains 7")
	require.NoError(t, err)
	assert.Equal(t, "false", out)
	assert.Equal(t, 1, s.Filter().Skipped())
}

func TestSessionClear(t *testing.T) {
	s := newSampleSession(t)

	out, err := s.Exec("clear")
	require.NoError(t, err)
	assert.Equal(t, "cleared", out)

	out, err = s.Exec("height")
	require.NoError(t, err)
	assert.Equal(t, "-1", out)

	out, err = s.Exec("show")
	require.NoError(t, err)
	assert.Equal(t, "(empty)", out)

	out, err = s.Exec("deepest")
	require.NoError(t, err)
	assert.Equal(t, "[]", out)
}

func TestSessionStringKeys(t *testing.T) {
	config := DefaultConfig()
	config.Keys.Type = avl.KindString
	s := NewSession(config)

	_, err := s.Exec(`insert dog cat "sea lion" bird`)
	require.NoError(t, err)

	out, err := s.Exec(`range bird "sea lion"`)
	require.NoError(t, err)
	assert.Equal(t, "[cat dog]", out)

	out, err = s.Exec(`get "sea lion"`)
	require.NoError(t, err)
	assert.Equal(t, "sea lion", out)
}

func TestSessionHelpListsEveryCommand(t *testing.T) {
	s := NewSession(DefaultConfig())

	out, err := s.Exec("help")
	require.NoError(t, err)
	for _, c := range s.commands {
		assert.Contains(t, out, c.Name)
	}
}

func TestRegisterCommandReplaces(t *testing.T) {
	s := NewSession(DefaultConfig())
	count := len(s.commands)

	s.RegisterCommand(&SessionCommand{
		Name: "size",
		run: func(s *Session, _ []string) (string, error) {
			return "replaced", nil
		},
	})
	assert.Len(t, s.commands, count)

	out, err := s.Exec("size")
	require.NoError(t, err)
	assert.Equal(t, "replaced", out)
}
