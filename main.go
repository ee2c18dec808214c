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
	"log"
	"math"
	"os"

	"github.com/spf13/cobra"
)

const version = "v0.3.0"

// openSession loads the configuration and the key file named by the
// persistent flags into a fresh session.
func openSession(cmd *cobra.Command) (*Session, error) {
	configPath, _ := cmd.Flags().GetString("config")
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if kind, _ := cmd.Flags().GetString("key-type"); kind != "" {
		config.Keys.Type = kind
		if err := config.Validate(); err != nil {
			return nil, err
		}
	}

	session := NewSession(config)

	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		return session, nil
	}

	keys, err := LoadKeyFile(path, config)
	if err != nil {
		return nil, err
	}
	added, err := session.Load(keys)
	if err != nil {
		return nil, err
	}
	if skipped := len(keys) - added; skipped > 0 {
		log.Printf("Skipped %d duplicate keys in %s", skipped, path)
	}
	return session, nil
}

// sessionCommand wires a one-shot cobra command to the session verb of the
// same name.
func sessionCommand(use, short string, args cobra.PositionalArgs) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := openSession(cmd)
			if err != nil {
				return err
			}
			out, err := session.Run(append([]string{cmd.Name()}, args...))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newRootCommand() *cobra.Command {
	asciiLogo := fmt.Sprintf(`
avlindex - height-balanced key index for the terminal [Version: %s%s%s]
`, Green, version, Reset)

	var cmdStats = &cobra.Command{
		Use:   "stats",
		Short: "Print size and height of the loaded index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := openSession(cmd)
			if err != nil {
				return err
			}
			printStats(cmd, session)
			return nil
		},
	}

	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Run session commands read from stdin",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Shell reads one command per line; type 'help' for the list, 'exit' to leave"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := openSession(cmd)
			if err != nil {
				return err
			}
			return runShell(session, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	var cmdBrowse = &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive index browser",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Browse runs session commands in a full-screen terminal UI"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := openSession(cmd)
			if err != nil {
				return err
			}
			return runBrowse(session)
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avlindex usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			return displaySettings(cmd.OutOrStdout(), configPath)
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlindex version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:           "avlindex",
		Version:       version,
		Long:          asciiLogo,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("file", "f", "", "key file to load, one key per line")
	rootCmd.PersistentFlags().String("config", "", "config file (default ~/"+configFileName+")")
	rootCmd.PersistentFlags().String("key-type", "", "override keys.type from the config (int or string)")

	rootCmd.AddCommand(
		cmdStats,
		sessionCommand("get <key>", "Print the stored key equal to <key>", cobra.ExactArgs(1)),
		sessionCommand("contains <key>", "Report whether <key> is stored", cobra.ExactArgs(1)),
		sessionCommand("range <lo> <hi>", "List keys strictly between lo and hi", cobra.ExactArgs(2)),
		sessionCommand("deepest", "List keys on every maximum-depth branch", cobra.NoArgs),
		sessionCommand("keys", "List every key in ascending order", cobra.NoArgs),
		sessionCommand("show", "Draw the tree sideways", cobra.NoArgs),
		sessionCommand("check", "Verify the index invariants", cobra.NoArgs),
		cmdShell,
		cmdBrowse,
		cmdUsage,
		cmdSettings,
		cmdVersion,
	)
	return rootCmd
}

func printStats(cmd *cobra.Command, s *Session) {
	tree := s.Tree()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%skeys%s:   %d\n", Green, Reset, tree.Size())
	fmt.Fprintf(out, "%sheight%s: %d\n", Green, Reset, tree.Height())
	if tree.IsEmpty() {
		return
	}
	bound := 1.44*math.Log2(float64(tree.Size()+2)) - 1
	fmt.Fprintf(out, "%sbound%s:  %.2f (worst case for %d keys)\n", Green, Reset, bound, tree.Size())
	fmt.Fprintf(out, "%sroot%s:   %v\n", Green, Reset, tree.Root().Key())
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%sError:%s %v\n", Error, Reset, err)
		os.Exit(1)
	}
}
