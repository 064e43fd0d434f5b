// Package tui provides the Bubble Tea birth-date prompt.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/biorhythm/internal/model"
)

const (
	fieldYear = iota
	fieldMonth
	fieldDay
	fieldCount
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Result carries the values collected by the prompt.
type Result struct {
	BirthDate   time.Time
	Orientation model.Orientation
	Aborted     bool
}

// Model implements the Bubble Tea prompt for birth date and orientation.
type Model struct {
	inputs      []textinput.Model
	focus       int
	pickingMode bool
	orientation model.Orientation
	err         error
	result      Result
}

// NewModel constructs the prompt model.
func NewModel() *Model {
	labels := []string{"Birth year (1-9999)", "Birth month (1-12)", "Birth day (1-31)"}
	widths := []int{4, 2, 2}
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		in := textinput.New()
		in.Placeholder = labels[i]
		in.CharLimit = widths[i]
		in.Width = 6
		inputs[i] = in
	}
	inputs[fieldYear].Focus()
	return &Model{
		inputs:      inputs,
		orientation: model.Vertical,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateInputs(msg)
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.result = Result{Aborted: true}
		return m, tea.Quit
	case tea.KeyTab, tea.KeyDown:
		m.advance(1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.advance(-1)
		return m, nil
	case tea.KeyLeft, tea.KeyRight:
		if m.pickingMode {
			m.toggleOrientation()
			return m, nil
		}
		return m, m.updateInputs(msg)
	case tea.KeyEnter:
		return m.handleEnter()
	default:
		return m, m.updateInputs(msg)
	}
}

func (m *Model) handleEnter() (tea.Model, tea.Cmd) {
	if !m.pickingMode {
		if m.focus < fieldDay {
			m.advance(1)
			return m, nil
		}
		m.pickingMode = true
		m.inputs[m.focus].Blur()
		return m, nil
	}
	birth, err := m.validate()
	if err != nil {
		m.err = err
		m.pickingMode = false
		m.setFocus(fieldYear)
		return m, nil
	}
	m.result = Result{BirthDate: birth, Orientation: m.orientation}
	return m, tea.Quit
}

func (m *Model) validate() (time.Time, error) {
	parts := make([]int, fieldCount)
	for i := range m.inputs {
		n, err := strconv.Atoi(strings.TrimSpace(m.inputs[i].Value()))
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q is not a number", model.ErrInvalidDateRange, m.inputs[i].Value())
		}
		parts[i] = n
	}
	return model.NewDate(parts[fieldYear], parts[fieldMonth], parts[fieldDay])
}

func (m *Model) advance(delta int) {
	if m.pickingMode {
		m.pickingMode = false
		m.setFocus(fieldDay)
		return
	}
	next := m.focus + delta
	if next >= fieldCount {
		m.pickingMode = true
		m.inputs[m.focus].Blur()
		return
	}
	if next < 0 {
		next = 0
	}
	m.setFocus(next)
}

func (m *Model) setFocus(idx int) {
	for i := range m.inputs {
		if i == idx {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	m.focus = idx
}

func (m *Model) toggleOrientation() {
	if m.orientation == model.Vertical {
		m.orientation = model.Horizontal
	} else {
		m.orientation = model.Vertical
	}
}

func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Biorhythm Chart Generator (Pseudoscience Demonstration)"))
	b.WriteString("\n\n")
	labels := []string{"Year ", "Month", "Day  "}
	for i := range m.inputs {
		b.WriteString(labelStyle.Render(labels[i]))
		b.WriteString(" ")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Orientation"))
	b.WriteString(" ")
	b.WriteString(m.orientationView())
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("tab/enter: next field • ←/→: orientation • enter: confirm • esc: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) orientationView() string {
	render := func(o model.Orientation) string {
		if o == m.orientation && m.pickingMode {
			return selectedStyle.Render("[" + string(o) + "]")
		}
		if o == m.orientation {
			return "[" + string(o) + "]"
		}
		return labelStyle.Render(" " + string(o) + " ")
	}
	return render(model.Vertical) + " " + render(model.Horizontal)
}

// Result returns the collected values after the program finishes.
func (m *Model) Result() Result {
	return m.result
}
