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
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the styling for the browse UI
type Styles struct {
	Border         lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// copyToClipboard is swapped out in tests
var copyToClipboard = clipboard.WriteAll

// BrowseModel is the bubbletea model behind the browse command. Every
// command goes through the same Session the shell uses.
type BrowseModel struct {
	session *Session

	input  textinput.Model
	output viewport.Model

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	transcript strings.Builder
	lastResult string
	status     string
	statusErr  bool
	showHelp   bool

	history    []string
	historyPos int

	width  int
	height int
	ready  bool
}

func NewBrowseModel(s *Session) *BrowseModel {
	ti := textinput.New()
	ti.Placeholder = "Type a command, e.g. range 3 8"
	ti.Prompt = shellPrompt
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 50

	output := viewport.New(0, 0)
	output.SetContent("Results appear here. Press f1 for help.")

	return &BrowseModel{
		session: s,
		input:   ti,
		output:  output,
		styles:  NewStyles(),
	}
}

// Init is called when the program starts
func (m *BrowseModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m *BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.execute(m.input.Value())
			m.input.Reset()
			return m, nil
		case "ctrl+y":
			m.copyLastResult()
			return m, nil
		case "f1":
			m.toggleHelp()
			return m, nil
		case "up":
			m.recall(-1)
			return m, nil
		case "down":
			m.recall(1)
			return m, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.output, cmd = m.output.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *BrowseModel) execute(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	m.history = append(m.history, line)
	m.historyPos = len(m.history)

	result, err := m.session.Exec(line)
	fmt.Fprintf(&m.transcript, "%s%s\n", shellPrompt, line)
	if err != nil {
		m.status = err.Error()
		m.statusErr = true
		fmt.Fprintf(&m.transcript, "error: %v\n", err)
	} else {
		m.lastResult = result
		m.status = fmt.Sprintf("size %d, height %d", m.session.Tree().Size(), m.session.Tree().Height())
		m.statusErr = false
		if result != "" {
			fmt.Fprintln(&m.transcript, result)
		}
	}

	m.showHelp = false
	m.output.SetContent(m.transcript.String())
	m.output.GotoBottom()
}

func (m *BrowseModel) copyLastResult() {
	if m.lastResult == "" {
		m.status = "Nothing to copy yet"
		m.statusErr = true
		return
	}
	if err := copyToClipboard(m.lastResult); err != nil {
		m.status = fmt.Sprintf("Failed to copy to clipboard: %v", err)
		m.statusErr = true
		return
	}
	m.status = "📋 Copied last result to clipboard"
	m.statusErr = false
}

func (m *BrowseModel) toggleHelp() {
	m.showHelp = !m.showHelp
	if !m.showHelp {
		m.output.SetContent(m.transcript.String())
		m.output.GotoBottom()
		return
	}

	if m.glamourRenderer == nil {
		m.glamourRenderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(72),
		)
	}
	helpTxt := usageMarkdown()
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(helpTxt); err == nil {
			helpTxt = rendered
		}
	}
	m.output.SetContent(helpTxt)
	m.output.GotoTop()
}

// recall walks the command history, dir is -1 for older and 1 for newer.
func (m *BrowseModel) recall(dir int) {
	if len(m.history) == 0 {
		return
	}
	pos := m.historyPos + dir
	if pos < 0 {
		pos = 0
	}
	if pos >= len(m.history) {
		m.historyPos = len(m.history)
		m.input.SetValue("")
		return
	}
	m.historyPos = pos
	m.input.SetValue(m.history[pos])
	m.input.CursorEnd()
}

func (m *BrowseModel) updateLayout() {
	// title, input, status and key help take one line each, plus the border
	m.output.Width = max(m.width-2, 10)
	m.output.Height = max(m.height-7, 3)
	m.input.Width = max(m.width-len(shellPrompt)-2, 10)
}

// View renders the UI
func (m *BrowseModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	title := m.styles.Title.Render(fmt.Sprintf("avlindex %s", version))
	body := m.styles.Border.Render(m.output.View())

	status := m.styles.SuccessMessage.Render(m.status)
	if m.statusErr {
		status = m.styles.ErrorMessage.Render(m.status)
	}

	keys := []string{
		m.styles.HelpKey.Render("enter") + " " + m.styles.HelpDesc.Render("run"),
		m.styles.HelpKey.Render("ctrl+y") + " " + m.styles.HelpDesc.Render("copy result"),
		m.styles.HelpKey.Render("f1") + " " + m.styles.HelpDesc.Render("help"),
		m.styles.HelpKey.Render("esc") + " " + m.styles.HelpDesc.Render("quit"),
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		body,
		m.styles.InputPrompt.Render(m.input.View()),
		status,
		strings.Join(keys, "  "),
	)
}

// runBrowse starts the full-screen UI on s.
func runBrowse(s *Session) error {
	p := tea.NewProgram(NewBrowseModel(s), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
