// Package prompt renders the interactive bump-kind selection with a
// bubbletea list. It implements the chooser collaborator of the release
// plugin; the plugin itself never renders anything.
package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/npmship/npmship/internal/release"
)

// ErrCanceled is returned when the operator aborts the selection.
var ErrCanceled = errors.New("selection canceled")

const (
	listWidth  = 64
	listHeight = 14
)

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#6BCB77"))

// Selector renders selections on the terminal.
type Selector struct{}

// New creates a terminal Selector.
func New() *Selector {
	return &Selector{}
}

// choiceItem adapts a release.Choice for the list display.
type choiceItem struct {
	choice release.Choice
}

func (i choiceItem) Title() string       { return i.choice.Label }
func (i choiceItem) Description() string { return i.choice.Description }
func (i choiceItem) FilterValue() string { return i.choice.Label }

type model struct {
	choices  list.Model
	value    string
	canceled bool
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := msg.Width - 2
		if width > listWidth {
			width = listWidth
		}
		height := msg.Height - 2
		if height > listHeight {
			height = listHeight
		}
		m.choices.SetSize(width, height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.canceled = true
			return m, tea.Quit
		case "enter":
			if item, ok := m.choices.SelectedItem().(choiceItem); ok {
				m.value = item.choice.Value
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.choices, cmd = m.choices.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return m.choices.View()
}

// Select presents choices and blocks until the operator picks one. The
// defaultValue choice, when present in the list, starts highlighted.
// Cancellation surfaces as ErrCanceled.
func (s *Selector) Select(ctx context.Context, question string, choices []release.Choice, defaultValue string) (string, error) {
	delegate := list.NewDefaultDelegate()
	delegate.SetHeight(2)
	delegate.SetSpacing(0)

	items := make([]list.Item, len(choices))
	for i, c := range choices {
		items[i] = choiceItem{choice: c}
	}

	l := list.New(items, delegate, listWidth, listHeight)
	l.Title = question
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	for i, c := range choices {
		if c.Value == defaultValue {
			l.Select(i)
			break
		}
	}

	final, err := tea.NewProgram(model{choices: l}, tea.WithContext(ctx)).Run()
	if err != nil {
		return "", fmt.Errorf("running selection prompt: %w", err)
	}

	m := final.(model)
	if m.canceled || m.value == "" {
		return "", ErrCanceled
	}
	return m.value, nil
}

// Static is a chooser that answers with a fixed value without rendering
// anything. It backs the --yes flag.
type Static struct {
	Value string
}

func (s Static) Select(_ context.Context, _ string, _ []release.Choice, _ string) (string, error) {
	return s.Value, nil
}
