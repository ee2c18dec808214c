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
	"fmt"
	"strconv"
	"strings"

	"github.com/cybrota/avlindex/avl"
	"github.com/mattn/go-shellwords"
	"github.com/patrickmn/go-cache"
)

// errUsage marks a command invoked with the wrong arguments.
var errUsage = errors.New("usage")

// SessionCommand is one verb understood by Session.Run.
type SessionCommand struct {
	Name    string
	Args    string // argument synopsis shown by help
	Summary string
	MinArgs int
	MaxArgs int // -1 for no limit
	// Cached commands only read the tree; their output is kept in the
	// result cache until the next mutation.
	Cached bool
	run    func(s *Session, args []string) (string, error)
}

func (c *SessionCommand) usage() string {
	if c.Args == "" {
		return c.Name
	}
	return c.Name + " " + c.Args
}

// Session owns one tree together with the lookup filter and result cache
// built around it. It is driven from a single goroutine.
type Session struct {
	tree     *avl.Tree
	filter   *KeyFilter
	results  *cache.Cache
	keyKind  string
	commands []*SessionCommand
	byName   map[string]*SessionCommand
}

func NewSession(config *Config) *Session {
	s := &Session{
		tree:    avl.New(),
		filter:  NewKeyFilter(config.Filter),
		results: NewResultCache(config.Cache),
		keyKind: config.Keys.Type,
		byName:  make(map[string]*SessionCommand),
	}

	// Register commands in the order help lists them
	s.RegisterCommand(&SessionCommand{Name: "insert", Args: "<key>...", Summary: "insert keys, duplicates are ignored", MinArgs: 1, MaxArgs: -1, run: runInsert})
	s.RegisterCommand(&SessionCommand{Name: "remove", Args: "<key>", Summary: "remove a key and print the stored one", MinArgs: 1, MaxArgs: 1, run: runRemove})
	s.RegisterCommand(&SessionCommand{Name: "get", Args: "<key>", Summary: "print the stored key equal to <key>", MinArgs: 1, MaxArgs: 1, run: runGet})
	s.RegisterCommand(&SessionCommand{Name: "contains", Args: "<key>", Summary: "report whether <key> is stored", MinArgs: 1, MaxArgs: 1, run: runContains})
	s.RegisterCommand(&SessionCommand{Name: "range", Args: "<lo> <hi>", Summary: "keys strictly between lo and hi, ascending", MinArgs: 2, MaxArgs: 2, Cached: true, run: runRange})
	s.RegisterCommand(&SessionCommand{Name: "deepest", Summary: "keys on every maximum-depth branch, preorder", Cached: true, run: runDeepest})
	s.RegisterCommand(&SessionCommand{Name: "keys", Summary: "every key, ascending", Cached: true, run: runKeys})
	s.RegisterCommand(&SessionCommand{Name: "height", Summary: "height of the tree (-1 when empty)", run: runHeight})
	s.RegisterCommand(&SessionCommand{Name: "size", Summary: "number of keys", run: runSize})
	s.RegisterCommand(&SessionCommand{Name: "show", Summary: "draw the tree sideways", Cached: true, run: runShow})
	s.RegisterCommand(&SessionCommand{Name: "check", Summary: "verify ordering and balance invariants", run: runCheck})
	s.RegisterCommand(&SessionCommand{Name: "clear", Summary: "drop every key", run: runClear})
	s.RegisterCommand(&SessionCommand{Name: "help", Summary: "list commands", run: runHelp})

	return s
}

// RegisterCommand adds cmd to the session, replacing any command with the
// same name.
func (s *Session) RegisterCommand(cmd *SessionCommand) {
	if _, exists := s.byName[cmd.Name]; !exists {
		s.commands = append(s.commands, cmd)
	} else {
		for i, c := range s.commands {
			if c.Name == cmd.Name {
				s.commands[i] = cmd
			}
		}
	}
	s.byName[cmd.Name] = cmd
}

// Tree exposes the session tree.
func (s *Session) Tree() *avl.Tree {
	return s.tree
}

// Filter exposes the session key filter.
func (s *Session) Filter() *KeyFilter {
	return s.filter
}

// Load inserts keys in order and returns how many were new.
func (s *Session) Load(keys []avl.Key) (int, error) {
	before := s.tree.Size()
	for _, key := range keys {
		if err := s.tree.Insert(key); err != nil {
			return s.tree.Size() - before, err
		}
		s.filter.Add(key)
	}
	added := s.tree.Size() - before
	if added > 0 {
		InvalidateResults(s.results)
	}
	return added, nil
}

// Exec splits line with shell quoting rules and runs the command.
func (s *Session) Exec(line string) (string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return "", fmt.Errorf("failed to parse %q: %v", line, err)
	}
	if len(args) == 0 {
		return "", nil
	}
	return s.Run(args)
}

// Run executes an already split command line.
func (s *Session) Run(args []string) (string, error) {
	name := strings.ToLower(args[0])
	cmd, ok := s.byName[name]
	if !ok {
		return "", fmt.Errorf("unknown command %q (try 'help')", args[0])
	}

	params := args[1:]
	if len(params) < cmd.MinArgs || (cmd.MaxArgs >= 0 && len(params) > cmd.MaxArgs) {
		return "", fmt.Errorf("%w: %s", errUsage, cmd.usage())
	}

	var query string
	if cmd.Cached {
		query = cacheQuery(name, params)
		if out, ok := GetCachedResult(s.results, query); ok {
			return out, nil
		}
	}

	out, err := cmd.run(s, params)
	if err != nil {
		return "", err
	}

	if cmd.Cached {
		CacheResult(s.results, query, out)
	}
	return out, nil
}

func cacheQuery(name string, params []string) string {
	quoted := make([]string, 0, len(params)+1)
	quoted = append(quoted, name)
	for _, p := range params {
		quoted = append(quoted, strconv.Quote(p))
	}
	return strings.Join(quoted, " ")
}

func (s *Session) parseKey(text string) (avl.Key, error) {
	return avl.ParseKey(s.keyKind, text)
}

func formatKeys(keys []avl.Key) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprint(k)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func runInsert(s *Session, args []string) (string, error) {
	keys := make([]avl.Key, 0, len(args))
	for _, a := range args {
		key, err := s.parseKey(a)
		if err != nil {
			return "", err
		}
		keys = append(keys, key)
	}

	added, err := s.Load(keys)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("inserted %d of %d keys (size %d)", added, len(keys), s.tree.Size()), nil
}

func runRemove(s *Session, args []string) (string, error) {
	key, err := s.parseKey(args[0])
	if err != nil {
		return "", err
	}
	removed, err := s.tree.Remove(key)
	if err != nil {
		return "", err
	}
	InvalidateResults(s.results)
	return fmt.Sprintf("removed %v", removed), nil
}

func runGet(s *Session, args []string) (string, error) {
	key, err := s.parseKey(args[0])
	if err != nil {
		return "", err
	}
	stored, err := s.tree.Get(key)
	if err != nil {
		return "", err
	}
	return fmt.Sprint(stored), nil
}

func runContains(s *Session, args []string) (string, error) {
	key, err := s.parseKey(args[0])
	if err != nil {
		return "", err
	}
	if !s.filter.MayContain(key) {
		return "false", nil
	}
	ok, err := s.tree.Contains(key)
	if err != nil {
		return "", err
	}
	return strconv.FormatBool(ok), nil
}

func runRange(s *Session, args []string) (string, error) {
	lo, err := s.parseKey(args[0])
	if err != nil {
		return "", err
	}
	hi, err := s.parseKey(args[1])
	if err != nil {
		return "", err
	}
	keys, err := s.tree.SortedInBetween(lo, hi)
	if err != nil {
		return "", err
	}
	return formatKeys(keys), nil
}

func runDeepest(s *Session, _ []string) (string, error) {
	return formatKeys(s.tree.DeepestBranches()), nil
}

func runKeys(s *Session, _ []string) (string, error) {
	return formatKeys(s.tree.Keys()), nil
}

func runHeight(s *Session, _ []string) (string, error) {
	return strconv.Itoa(s.tree.Height()), nil
}

func runSize(s *Session, _ []string) (string, error) {
	return strconv.Itoa(s.tree.Size()), nil
}

func runShow(s *Session, _ []string) (string, error) {
	if s.tree.IsEmpty() {
		return "(empty)", nil
	}
	var b strings.Builder
	s.tree.Print(&b)
	return strings.TrimRight(b.String(), "\n"), nil
}

func runCheck(s *Session, _ []string) (string, error) {
	if err := s.tree.Check(); err != nil {
		return "", err
	}
	return fmt.Sprintf("ok (%d keys, height %d)", s.tree.Size(), s.tree.Height()), nil
}

func runClear(s *Session, _ []string) (string, error) {
	s.tree.Clear()
	s.filter.Reset()
	InvalidateResults(s.results)
	return "cleared", nil
}

func runHelp(s *Session, _ []string) (string, error) {
	width := 0
	for _, c := range s.commands {
		width = max(width, len(c.usage()))
	}

	var b strings.Builder
	for i, c := range s.commands {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%-*s  %s", width, c.usage(), c.Summary)
	}
	return b.String(), nil
}
