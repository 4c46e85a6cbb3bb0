package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arborfield/phyloreduce/pkg/reduce"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// SourceListModel - interactive safe-source selection
// =============================================================================

// SourceListModel is the bubbletea model for picking among the safe sources
// a Hasse diagram currently offers.
type SourceListModel struct {
	Options  []reduce.SourceOption
	Cursor   int
	Selected int // -1 until enter is pressed
	Quit     bool
}

// NewSourceListModel creates a new source list model.
func NewSourceListModel(options []reduce.SourceOption) SourceListModel {
	return SourceListModel{Options: options, Selected: -1}
}

func (m SourceListModel) Init() tea.Cmd {
	return nil
}

func (m SourceListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.Quit = true
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Options)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = m.Cursor
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m SourceListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select a safe source"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		species := "—"
		if len(opt.Species) > 0 {
			species = strings.Join(opt.Species, ",")
		}
		characters := "—"
		if len(opt.Characters) > 0 {
			characters = strings.Join(opt.Characters, ",")
		}

		line := fmt.Sprintf("%sspecies: %-20s characters: %s", cursor, species, characters)

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("[%d/%d]", m.Cursor+1, len(m.Options))))

	return b.String()
}

// =============================================================================
// TUIPrompter - a reduce.SourcePrompter backed by SourceListModel
// =============================================================================

// TUIPrompter implements [reduce.SourcePrompter] by running an interactive
// bubbletea list picker. It is offered as an alternate to the stdin
// prompter behind --tui.
type TUIPrompter struct{}

// ErrSourceSelectionCancelled is returned when the user quits the picker
// without choosing a source.
var ErrSourceSelectionCancelled = errors.New("source selection cancelled")

// PromptSource implements [reduce.SourcePrompter].
func (TUIPrompter) PromptSource(ctx context.Context, options []reduce.SourceOption) (int, error) {
	if len(options) == 1 {
		return 0, nil
	}

	m := NewSourceListModel(options)
	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		return 0, fmt.Errorf("run source picker: %w", err)
	}

	result := final.(SourceListModel)
	if result.Quit || result.Selected < 0 {
		return 0, ErrSourceSelectionCancelled
	}
	return result.Selected, nil
}
