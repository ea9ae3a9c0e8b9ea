package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ComputerConnection/flowgrid/pkg/layout"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// presetDescriptions explains each preset in the picker.
var presetDescriptions = map[layout.Preset]string{
	layout.PresetDagre:    "layered top-down, minimizes edge crossings",
	layout.PresetForce:    "force-directed, organic clustering",
	layout.PresetTimeline: "execution levels left to right",
	layout.PresetManual:   "keep positions as they are",
}

// =============================================================================
// PresetListModel - Interactive preset selection
// =============================================================================

// PresetListModel is the bubbletea model for interactive preset selection.
type PresetListModel struct {
	Presets  []layout.Preset
	Cursor   int
	Selected *layout.Preset
}

// NewPresetListModel creates a preset list model with the cursor on current.
func NewPresetListModel(current string) PresetListModel {
	m := PresetListModel{Presets: layout.Presets()}
	for i, p := range m.Presets {
		if string(p) == current {
			m.Cursor = i
			break
		}
	}
	return m
}

func (m PresetListModel) Init() tea.Cmd {
	return nil
}

func (m PresetListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Presets)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = &m.Presets[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m PresetListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Layout Preset"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, p := range m.Presets {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		line := fmt.Sprintf("%s%-10s %s", cursor, p, listDimStyle.Render(presetDescriptions[p]))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// pickPreset runs the interactive preset picker and returns the chosen
// preset name. Quitting without a selection keeps the current preset.
func pickPreset(current string) (string, error) {
	model, err := tea.NewProgram(NewPresetListModel(current)).Run()
	if err != nil {
		return "", fmt.Errorf("run preset picker: %w", err)
	}

	final, ok := model.(PresetListModel)
	if !ok || final.Selected == nil {
		return current, nil
	}
	return string(*final.Selected), nil
}
