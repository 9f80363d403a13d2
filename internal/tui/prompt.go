// Package tui provides the interactive terminal prompts for sok-downloader.
package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))
)

// ErrPromptAborted is returned when the user cancels the password prompt.
var ErrPromptAborted = errors.New("password prompt aborted")

// passwordModel is the Bubble Tea model for the masked password prompt.
type passwordModel struct {
	input    textinput.Model
	done     bool
	aborted  bool
	username string
}

func newPasswordModel(username string) passwordModel {
	ti := textinput.New()
	ti.Placeholder = "password"
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.CharLimit = 256
	ti.Width = 40
	ti.Focus()

	return passwordModel{input: ti, username: username}
}

func (m passwordModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m passwordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m passwordModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	return fmt.Sprintf("%s %s\n%s\n",
		labelStyle.Render(fmt.Sprintf("Password for %s:", m.username)),
		m.input.View(),
		hintStyle.Render("enter to confirm · esc to abort"))
}

// PromptPassword asks for the account password on the terminal with echo
// masked. Returns ErrPromptAborted if the user bails out.
func PromptPassword(username string) (string, error) {
	final, err := tea.NewProgram(newPasswordModel(username)).Run()
	if err != nil {
		return "", err
	}

	m, ok := final.(passwordModel)
	if !ok || m.aborted {
		return "", ErrPromptAborted
	}
	return m.input.Value(), nil
}
