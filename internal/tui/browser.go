// Package tui is an interactive catalog browser: pick an object, nudge its
// observables, and watch the derived parameters update.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/transitlab/internal/config"
	"github.com/san-kum/transitlab/internal/report"
	"github.com/san-kum/transitlab/internal/transit"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	cursorSty  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	errStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	paneStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

const (
	stateMenu = iota
	stateEdit
)

type field struct {
	name  string
	step  float64
	get   func(*transit.SystemInputs) float64
	set   func(*transit.SystemInputs, float64)
}

var fields = []field{
	{"depth", 0.001,
		func(in *transit.SystemInputs) float64 { return in.TransitDepth },
		func(in *transit.SystemInputs, v float64) { in.TransitDepth = v }},
	{"depth err", 0.0005,
		func(in *transit.SystemInputs) float64 { return in.TransitDepthErr },
		func(in *transit.SystemInputs, v float64) { in.TransitDepthErr = v }},
	{"duration (days)", 0.01,
		func(in *transit.SystemInputs) float64 { return in.TransitDurationDays },
		func(in *transit.SystemInputs, v float64) { in.TransitDurationDays = v }},
	{"duration err (days)", 0.005,
		func(in *transit.SystemInputs) float64 { return in.TransitDurationErrDays },
		func(in *transit.SystemInputs, v float64) { in.TransitDurationErrDays = v }},
}

type model struct {
	state       int
	objects     []string
	cursor      int
	inputs      transit.SystemInputs
	fieldCursor int
}

func NewBrowser() tea.Model {
	return model{state: stateMenu, objects: config.ListPresets()}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	}

	if m.state == stateMenu {
		return m.menuKey(key)
	}
	return m.editKey(key)
}

func (m model) menuKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.objects)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.inputs = config.GetPreset(m.objects[m.cursor]).Inputs()
		m.state = stateEdit
		m.fieldCursor = 0
	}
	return m, nil
}

func (m model) editKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.state = stateMenu
	case "up", "k":
		if m.fieldCursor > 0 {
			m.fieldCursor--
		}
	case "down", "j":
		if m.fieldCursor < len(fields)-1 {
			m.fieldCursor++
		}
	case "left", "h", "-":
		f := fields[m.fieldCursor]
		v := f.get(&m.inputs) - f.step
		if v < 0 {
			v = 0
		}
		f.set(&m.inputs, v)
	case "right", "l", "+":
		f := fields[m.fieldCursor]
		f.set(&m.inputs, f.get(&m.inputs)+f.step)
	case "r":
		m.inputs = config.GetPreset(m.inputs.Name).Inputs()
	}
	return m, nil
}

func (m model) View() string {
	if m.state == stateMenu {
		return m.menuView()
	}
	return m.editView()
}

func (m model) menuView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("transitlab") + dimStyle.Render("  catalog objects") + "\n\n")
	for i, name := range m.objects {
		cursor := "  "
		line := fmt.Sprintf("object %s", name)
		if i == m.cursor {
			cursor = cursorSty.Render("> ")
			line = cursorSty.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}
	b.WriteString("\n" + dimStyle.Render("j/k move | enter select | q quit") + "\n")
	return b.String()
}

func (m model) editView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("object "+m.inputs.Name) + "\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("P=%g d  Mstar=%g Msun  Rstar=%g Rsun",
		m.inputs.PeriodDays, m.inputs.StellarMassSolar, m.inputs.StellarRadiusSolar)) + "\n\n")

	for i, f := range fields {
		cursor := "  "
		line := fmt.Sprintf("%-20s %.4g", f.name, f.get(&m.inputs))
		if i == m.fieldCursor {
			cursor = cursorSty.Render("> ")
			line = cursorSty.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}

	b.WriteString("\n")
	out, err := transit.ComputeAll(m.inputs)
	if err != nil {
		b.WriteString(paneStyle.Render(errStyle.Render(err.Error())) + "\n")
	} else {
		b.WriteString(paneStyle.Render(strings.TrimRight(report.Render(out), "\n")) + "\n")
	}

	b.WriteString("\n" + dimStyle.Render("j/k field | h/l adjust | r reset | esc back | q quit") + "\n")
	return b.String()
}
