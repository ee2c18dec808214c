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
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/cybrota/avlindex/avl"
	"gopkg.in/yaml.v3"
)

const configFileName = ".avlindex.yaml"

type KeysConfig struct {
	Type          string `yaml:"type"`
	CommentPrefix string `yaml:"comment_prefix"`
}

type FilterConfig struct {
	BloomSize   uint `yaml:"bloom_size"`
	BloomHashes uint `yaml:"bloom_hashes"`
}

type CacheConfig struct {
	TTL     time.Duration `yaml:"ttl"`
	Cleanup time.Duration `yaml:"cleanup"`
}

type LoaderConfig struct {
	ShowProgress bool `yaml:"show_progress"`
	// Files smaller than this many bytes load without a progress bar
	ProgressThreshold int64 `yaml:"progress_threshold"`
}

type Config struct {
	Keys   KeysConfig   `yaml:"keys"`
	Filter FilterConfig `yaml:"filter"`
	Cache  CacheConfig  `yaml:"cache"`
	Load   LoaderConfig `yaml:"load"`
}

var defaultConfig = Config{
	Keys: KeysConfig{
		Type:          avl.KindInt,
		CommentPrefix: "#",
	},
	Filter: FilterConfig{
		BloomSize:   1 << 16,
		BloomHashes: 4,
	},
	Cache: CacheConfig{
		TTL:     5 * time.Minute,
		Cleanup: 10 * time.Minute,
	},
	Load: LoaderConfig{
		ShowProgress:      true,
		ProgressThreshold: 1 << 20,
	},
}

// DefaultConfig returns a copy of the built-in settings.
func DefaultConfig() *Config {
	config := defaultConfig
	return &config
}

// LoadConfig reads the YAML config at path, or at ~/.avlindex.yaml when path
// is empty. A missing or unreadable file yields the defaults. Fields left
// out of the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Failed to read %s: %v. Using default settings.", path, err)
		}
		return DefaultConfig(), nil
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		log.Printf("Failed to parse %s: %v. Using default settings.", path, err)
		return DefaultConfig(), nil
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}
	return config, nil
}

// Validate rejects settings the session cannot work with.
func (c *Config) Validate() error {
	if c.Keys.Type != avl.KindInt && c.Keys.Type != avl.KindString {
		return fmt.Errorf("keys.type must be %q or %q, got %q", avl.KindInt, avl.KindString, c.Keys.Type)
	}
	if c.Filter.BloomSize == 0 || c.Filter.BloomHashes == 0 {
		return fmt.Errorf("filter.bloom_size and filter.bloom_hashes must be positive")
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive, got %s", c.Cache.TTL)
	}
	return nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

// displaySettings prints the effective configuration, creating the default
// file first when none exists.
func displaySettings(w io.Writer, configPath string) error {
	if configPath == "" {
		p, err := getConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %v", err)
		}
		configPath = p
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			return err
		}
		fmt.Fprintf(w, "✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "🔧 avlindex Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════════\n\n")

	if configExists {
		fmt.Fprintf(w, "📍 Config file: %s\n\n", configPath)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n\n", configPath)
	}

	fmt.Fprintf(w, "🔑 %sKeys:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %stype%s: %s\n", Green, Reset, config.Keys.Type)
	fmt.Fprintf(w, "  • %scomment_prefix%s: %q\n\n", Green, Reset, config.Keys.CommentPrefix)

	fmt.Fprintf(w, "🧮 %sFilter:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sbloom_size%s: %d bits\n", Green, Reset, config.Filter.BloomSize)
	fmt.Fprintf(w, "  • %sbloom_hashes%s: %d\n\n", Green, Reset, config.Filter.BloomHashes)

	fmt.Fprintf(w, "🗄  %sCache:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sttl%s: %s\n", Green, Reset, config.Cache.TTL)
	fmt.Fprintf(w, "  • %scleanup%s: %s\n\n", Green, Reset, config.Cache.Cleanup)

	fmt.Fprintf(w, "📥 %sLoad:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sshow_progress%s: %t\n", Green, Reset, config.Load.ShowProgress)
	fmt.Fprintf(w, "  • %sprogress_threshold%s: %d bytes\n", Green, Reset, config.Load.ProgressThreshold)

	return nil
}
