// ============================================================================
// timespan - Signed durations with placeholder templates
// ============================================================================
//
// Package:     converter
// Description: Bubbletea model that parses values against a template live
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package converter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	mdwerror "github.com/msto63/timespan/foundation/core/error"
	"github.com/msto63/timespan/pkg/timespan"
)

// Field identifies an input field
type Field int

const (
	FieldTemplate Field = iota
	FieldValue
)

// Config holds converter configuration
type Config struct {
	// Template pre-filled into the template field
	Template string
	// SignedTemplate is the second rendering shown for every result
	SignedTemplate string
	// Engine compiles templates; nil uses timespan.DefaultEngine()
	Engine *timespan.Engine
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Template:       timespan.DefaultFormat,
		SignedTemplate: timespan.TimeWithSignFormat,
	}
}

// Model is the Bubbletea model for the converter
type Model struct {
	width int

	templateInput textinput.Model
	valueInput    textinput.Model
	focus         Field

	engine          *timespan.Engine
	defaultTemplate string
	signedTemplate  string

	result *timespan.Timespan
	err    error
}

// New creates a converter model with the template field focused
func New(cfg Config) Model {
	defaults := DefaultConfig()
	if cfg.Template == "" {
		cfg.Template = defaults.Template
	}
	if cfg.SignedTemplate == "" {
		cfg.SignedTemplate = defaults.SignedTemplate
	}
	if cfg.Engine == nil {
		cfg.Engine = timespan.DefaultEngine()
	}

	templateInput := textinput.New()
	templateInput.Placeholder = timespan.DefaultFormat
	templateInput.CharLimit = 128
	templateInput.Width = 40
	templateInput.SetValue(cfg.Template)
	templateInput.Focus()

	valueInput := textinput.New()
	valueInput.Placeholder = "01:30:00"
	valueInput.CharLimit = 128
	valueInput.Width = 40

	m := Model{
		templateInput:   templateInput,
		valueInput:      valueInput,
		focus:           FieldTemplate,
		engine:          cfg.Engine,
		defaultTemplate: cfg.Template,
		signedTemplate:  cfg.SignedTemplate,
	}
	m.recompute()
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "shift+tab":
			return m.toggleFocus(), textinput.Blink
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == FieldTemplate {
		m.templateInput, cmd = m.templateInput.Update(msg)
	} else {
		m.valueInput, cmd = m.valueInput.Update(msg)
	}
	m.recompute()
	return m, cmd
}

// toggleFocus moves focus to the other field
func (m Model) toggleFocus() Model {
	if m.focus == FieldTemplate {
		m.focus = FieldValue
		m.templateInput.Blur()
		m.valueInput.Focus()
	} else {
		m.focus = FieldTemplate
		m.valueInput.Blur()
		m.templateInput.Focus()
	}
	return m
}

// recompute parses the value field against the template field
func (m *Model) recompute() {
	m.result = nil
	m.err = nil

	source := m.templateInput.Value()
	tpl := m.engine.Compile(source)
	if !tpl.Valid() {
		m.err = mdwerror.New("template has no placeholder").
			WithCode(mdwerror.CodeInvalidTemplate).
			WithSeverity(mdwerror.SeverityLow).
			WithOperation("converter.recompute").
			WithDetail("template", source)
		return
	}

	value := m.valueInput.Value()
	if value == "" {
		return
	}

	ts, err := tpl.Parse(value)
	if err != nil {
		m.err = err
		return
	}
	m.result = ts
}

// Focus returns the focused field
func (m Model) Focus() Field {
	return m.focus
}

// Template returns the content of the template field
func (m Model) Template() string {
	return m.templateInput.Value()
}

// Value returns the content of the value field
func (m Model) Value() string {
	return m.valueInput.Value()
}

// Result returns the last successful parse, or nil
func (m Model) Result() *timespan.Timespan {
	return m.result
}

// Err returns the last template or parse error
func (m Model) Err() error {
	return m.err
}

// View renders the UI
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(LogoStyle.Render(Logo))
	b.WriteString("  ")
	b.WriteString(SubHeaderStyle.Render("%h hours  %i minutes  %s seconds  %r/%R sign"))
	b.WriteString("\n\n")

	b.WriteString(m.renderInput("Template", m.templateInput, m.focus == FieldTemplate))
	b.WriteString("\n")
	b.WriteString(m.renderInput("Value", m.valueInput, m.focus == FieldValue))
	b.WriteString("\n")

	b.WriteString(m.renderResult())
	b.WriteString("\n")

	b.WriteString(m.renderHelpBar())
	return b.String()
}

func (m Model) renderInput(label string, input textinput.Model, focused bool) string {
	box := InputBoxStyle
	if focused {
		box = FocusedInputBoxStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		InputLabelStyle.Render(label),
		box.Render(input.View()),
	)
}

func (m Model) renderResult() string {
	var content string
	switch {
	case m.err != nil:
		content = ErrorStyle.Render("✗ " + m.err.Error())
	case m.result == nil:
		content = HelpDescStyle.Render("Type a value to parse it.")
	default:
		u := m.result.Units()
		rows := [][2]string{
			{"Seconds", strconv.FormatFloat(m.result.Seconds, 'f', -1, 64)},
			{"Hours", strconv.FormatFloat(m.result.AsHours(), 'f', 4, 64)},
			{"Total minutes", strconv.FormatFloat(u.TotalMinutes, 'f', -1, 64)},
			{m.defaultTemplate, m.result.Format(m.defaultTemplate)},
			{m.signedTemplate, m.result.Format(m.signedTemplate)},
		}
		lines := make([]string, 0, len(rows)+1)
		lines = append(lines, StatusOKStyle.Render("✓ matches"))
		for _, row := range rows {
			lines = append(lines, ResultLabelStyle.Render(row[0])+ResultValueStyle.Render(row[1]))
		}
		content = strings.Join(lines, "\n")
	}

	style := ResultPanelStyle
	if m.width > 4 {
		style = style.Width(m.width - 4)
	}
	return style.Render(content)
}

func (m Model) renderHelpBar() string {
	items := []string{
		RenderHelpItem("tab", "switch field"),
		RenderHelpItem("esc", "quit"),
	}
	return fmt.Sprintf("\n%s", strings.Join(items, "  "))
}
