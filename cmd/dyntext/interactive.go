package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dyntext/dyntext/errors"
	"github.com/dyntext/dyntext/printer"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateEditTemplate modelState = iota
	stateEditArgs
	stateShowResult
)

type interactiveModel struct {
	err      error
	tmplIn   textinput.Model
	argsIn   textinput.Model
	result   string
	diagCode int
	state    modelState
}

func newInteractiveModel() *interactiveModel {
	tmplIn := textinput.New()
	tmplIn.Placeholder = "Name: {} Age: {}"
	tmplIn.Focus()
	tmplIn.Width = 60

	argsIn := textinput.New()
	argsIn.Placeholder = "Ada 36"
	argsIn.Width = 60

	return &interactiveModel{
		tmplIn: tmplIn,
		argsIn: argsIn,
		state:  stateEditTemplate,
	}
}

type renderResultMsg struct {
	err  error
	text string
	code int
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) render() tea.Msg {
	errors.ClearLast()
	vals := classifyArgs(strings.Fields(m.argsIn.Value()))
	text, err := printer.Format(m.tmplIn.Value(), vals...)
	return renderResultMsg{text: text, err: err, code: errors.Last().Code}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "enter":
			switch m.state {
			case stateEditTemplate:
				m.state = stateEditArgs
				m.tmplIn.Blur()
				m.argsIn.Focus()
			case stateEditArgs:
				return m, m.render
			case stateShowResult:
				m.state = stateEditTemplate
				m.result = ""
				m.err = nil
				m.argsIn.Blur()
				m.tmplIn.Focus()
			}

		case "tab":
			if m.state == stateEditTemplate {
				m.state = stateEditArgs
				m.tmplIn.Blur()
				m.argsIn.Focus()
			} else if m.state == stateEditArgs {
				m.state = stateEditTemplate
				m.argsIn.Blur()
				m.tmplIn.Focus()
			}

		case "esc":
			switch m.state {
			case stateEditArgs:
				m.state = stateEditTemplate
				m.argsIn.Blur()
				m.tmplIn.Focus()
			case stateShowResult:
				m.state = stateEditTemplate
				m.result = ""
				m.err = nil
				m.tmplIn.Focus()
			default:
				return m, tea.Quit
			}
		}

	case renderResultMsg:
		m.result = msg.text
		m.err = msg.err
		m.diagCode = msg.code
		m.state = stateShowResult
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.tmplIn, cmd = m.tmplIn.Update(msg)
	cmds = append(cmds, cmd)
	m.argsIn, cmd = m.argsIn.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("dyntext"))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Template"))
	b.WriteString("\n")
	b.WriteString(m.tmplIn.View())
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Values (space-separated, numerics auto-classified)"))
	b.WriteString("\n")
	b.WriteString(m.argsIn.View())
	b.WriteString("\n\n")

	if m.state == stateShowResult {
		if m.err != nil {
			rec := errors.Last()
			line := fmt.Sprintf("Error: %d - %s", m.diagCode, rec.Message)
			b.WriteString(errorStyle.Render(line))
			b.WriteString("\n")
		} else {
			b.WriteString(resultStyle.Render(m.result))
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("enter: new template • esc: edit • ctrl+c: quit"))
	} else {
		b.WriteString(helpStyle.Render("enter: next/render • tab: switch field • ctrl+c: quit"))
	}
	b.WriteString("\n")

	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel())
	_, err := p.Run()
	return err
}
