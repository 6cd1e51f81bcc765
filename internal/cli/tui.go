package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// modelListModel - Interactive model selection
// =============================================================================

// modelListModel is the bubbletea model for interactive generator selection.
type modelListModel struct {
	Models   []modelInfo
	Cursor   int
	Selected *modelInfo
}

// newModelListModel creates a new model list.
func newModelListModel(models []modelInfo) modelListModel {
	return modelListModel{Models: models}
}

func (m modelListModel) Init() tea.Cmd {
	return nil
}

func (m modelListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Models)-1 {
				m.Cursor++
			}
		case "enter":
			selected := m.Models[m.Cursor]
			m.Selected = &selected
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m modelListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Model"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, model := range m.Models {
		cursor := "  "
		nameStyle := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			nameStyle = listSelectedStyle
		}

		b.WriteString(cursor)
		b.WriteString(nameStyle.Render(model.Name))
		b.WriteString("  ")
		b.WriteString(listDimStyle.Render(model.Description))
		b.WriteString("\n")
	}

	return b.String()
}
