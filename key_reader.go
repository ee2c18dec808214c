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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cybrota/avlindex/avl"
	"github.com/schollz/progressbar/v3"
)

// LoadKeys reads one key per line from r. Blank lines and lines starting
// with the configured comment prefix are skipped. String keys keep inner
// whitespace but lose surrounding blanks.
func LoadKeys(r io.Reader, config KeysConfig) ([]avl.Key, error) {
	keys := []avl.Key{}

	scanner := bufio.NewScanner(r)
	// Increase buffer size for long string keys
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if config.CommentPrefix != "" && strings.HasPrefix(line, config.CommentPrefix) {
			continue
		}

		key, err := avl.ParseKey(config.Type, line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		keys = append(keys, key)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return keys, nil
}

// LoadKeyFile reads keys from the file at path. Large files show a byte
// progress bar on stderr when enabled in the config.
func LoadKeyFile(path string, config *Config) ([]avl.Key, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("key file %s not found", path)
		}
		return nil, err
	}
	defer file.Close()

	var r io.Reader = file
	if stat, err := file.Stat(); err == nil && config.Load.ShowProgress && stat.Size() >= config.Load.ProgressThreshold {
		bar := progressbar.NewOptions64(stat.Size(),
			progressbar.OptionSetDescription("🔑 Loading keys..."),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetWidth(50),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(os.Stderr)
			}),
		)
		defer bar.Finish()
		r = io.TeeReader(file, bar)
	}

	return LoadKeys(r, config.Keys)
}
