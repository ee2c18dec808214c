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
	"path/filepath"
	"strings"
	"testing"

	"github.com/cybrota/avlindex/avl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadKeys(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		config   KeysConfig
		expected []avl.Key
	}{
		{
			name:     "ints with blanks and comments",
			input:    "# sample\n10\n\n  5 \n15\n# trailing\n",
			config:   KeysConfig{Type: avl.KindInt, CommentPrefix: "#"},
			expected: []avl.Key{avl.Int(10), avl.Int(5), avl.Int(15)},
		},
		{
			name:     "strings keep inner spaces",
			input:    "git status\n  ls -la  \n",
			config:   KeysConfig{Type: avl.KindString, CommentPrefix: "#"},
			expected: []avl.Key{avl.String("git status"), avl.String("ls -la")},
		},
		{
			name:     "no comment prefix keeps hash lines",
			input:    "#tag\nplain\n",
			config:   KeysConfig{Type: avl.KindString},
			expected: []avl.Key{avl.String("#tag"), avl.String("plain")},
		},
		{
			name:     "empty input",
			input:    "",
			config:   KeysConfig{Type: avl.KindInt},
			expected: []avl.Key{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			keys, err := LoadKeys(strings.NewReader(tc.input), tc.config)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, keys)
		})
	}
}

func TestLoadKeysReportsLine(t *testing.T) {
	_, err := LoadKeys(strings.NewReader("1\n2\nthree\n"), KeysConfig{Type: avl.KindInt})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
	assert.True(t, errors.Is(err, avl.ErrInvalidArgument))
}

func TestLoadKeyFile(t *testing.T) {
	path := writeFile(t, "keys.txt", "3\n1\n2\n")

	config := DefaultConfig()
	// force the progress bar path for a tiny file
	config.Load.ProgressThreshold = 0

	keys, err := LoadKeyFile(path, config)
	require.NoError(t, err)
	assert.Equal(t, []avl.Key{avl.Int(3), avl.Int(1), avl.Int(2)}, keys)
}

func TestLoadKeyFileMissing(t *testing.T) {
	_, err := LoadKeyFile(filepath.Join(t.TempDir(), "missing.txt"), DefaultConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
