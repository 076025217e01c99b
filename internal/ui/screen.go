// Package ui implements the tip screen as a Bubble Tea model.
package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tiptime/tip-calculator/internal/form"
	"github.com/tiptime/tip-calculator/internal/resources"
)

type field int

const (
	billAmountField field = iota
	tipPercentField
)

const cursor = "▏"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	labelStyle   = lipgloss.NewStyle().Faint(true)
	focusedStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1).Width(30)
	blurredStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1).Width(30)
	resultStyle  = lipgloss.NewStyle().Bold(true).MarginTop(1)
	helpStyle    = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

// Model is the tip screen. The form state is owned by the model and lives
// as long as the screen does.
type Model struct {
	state   *form.State
	strings *resources.Strings
	focus   field
	done    bool
}

// NewModel returns a screen over state with the bill amount field focused.
func NewModel(state *form.State, strs *resources.Strings) Model {
	if strs == nil {
		strs = resources.Default()
	}
	return Model{state: state, strings: strs}
}

// State returns the form state behind the screen.
func (m Model) State() *form.State { return m.state }

// Done reports whether the user confirmed the tip percentage field.
func (m Model) Done() bool { return m.done }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		// Next on the bill amount, Done on the tip percentage.
		if m.focus == billAmountField {
			m.focus = tipPercentField
			return m, nil
		}
		m.done = true
		return m, tea.Quit
	case tea.KeyTab, tea.KeyDown:
		m.focus = tipPercentField
	case tea.KeyShiftTab, tea.KeyUp:
		m.focus = billAmountField
	case tea.KeyBackspace:
		m.setText(dropLastRune(m.text()))
	case tea.KeyCtrlU:
		m.setText("")
	case tea.KeySpace:
		m.setText(m.text() + " ")
	case tea.KeyRunes:
		m.setText(m.text() + string(key.Runes))
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.strings.Get(resources.CalculateTip)))
	b.WriteString("\n")
	b.WriteString(m.renderField(billAmountField, resources.BillAmount, m.state.BillAmountText()))
	b.WriteString("\n")
	b.WriteString(m.renderField(tipPercentField, resources.HowWasTheService, m.state.TipPercentText()))
	b.WriteString("\n")
	b.WriteString(resultStyle.Render(m.ResultLine()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.strings.Get(resources.Help)))
	b.WriteString("\n")
	return b.String()
}

// ResultLine is the tip line rendered under the fields.
func (m Model) ResultLine() string {
	return m.strings.Format(resources.TipAmount, m.state.FormattedTip())
}

func (m Model) renderField(f field, label resources.ID, value string) string {
	style := blurredStyle
	if m.focus == f {
		style = focusedStyle
		value += cursor
	}
	return labelStyle.Render(m.strings.Get(label)) + "\n" + style.Render(value)
}

func (m Model) text() string {
	if m.focus == billAmountField {
		return m.state.BillAmountText()
	}
	return m.state.TipPercentText()
}

func (m Model) setText(s string) {
	if m.focus == billAmountField {
		m.state.SetBillAmountText(s)
		return
	}
	m.state.SetTipPercentText(s)
}

func dropLastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}
