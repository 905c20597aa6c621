package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zephyrtronium/keycalc"
)

// padStyles holds the lipgloss styles for the keypad.
type padStyles struct {
	Display lipgloss.Style
	Key     lipgloss.Style
	Cursor  lipgloss.Style
	Help    lipgloss.Style
}

func defaultPadStyles() padStyles {
	return padStyles{
		Display: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(5*keyWidth - 2).
			Align(lipgloss.Right),
		Key:    lipgloss.NewStyle().Width(keyWidth).Align(lipgloss.Center),
		Cursor: lipgloss.NewStyle().Width(keyWidth).Align(lipgloss.Center).Reverse(true).Bold(true),
		Help:   lipgloss.NewStyle().Faint(true),
	}
}

const keyWidth = 6

// padModel is the interactive keypad. It owns the display and feeds every key
// through the evaluator, one message at a time.
type padModel struct {
	ev      *keycalc.Evaluator
	display keycalc.Display
	row     int
	col     int
	styles  padStyles
}

func newPadModel(ev *keycalc.Evaluator) padModel {
	return padModel{ev: ev, styles: defaultPadStyles()}
}

func (m padModel) Init() tea.Cmd {
	return nil
}

// typed maps runes that can be typed directly to key labels.
var typed = map[rune]string{
	'=': keycalc.KeyEquals,
	'c': keycalc.KeyClear,
	'p': keycalc.KeyPi,
	'r': "√",
}

func (m padModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyUp:
		m.row = (m.row + len(keycalc.Keys) - 1) % len(keycalc.Keys)
	case tea.KeyDown:
		m.row = (m.row + 1) % len(keycalc.Keys)
	case tea.KeyLeft:
		m.col = (m.col + len(keycalc.Keys[m.row]) - 1) % len(keycalc.Keys[m.row])
	case tea.KeyRight:
		m.col = (m.col + 1) % len(keycalc.Keys[m.row])
	case tea.KeyEnter, tea.KeySpace:
		m.display = m.ev.Press(m.display, keycalc.Keys[m.row][m.col])
	case tea.KeyBackspace:
		m.display = m.ev.Press(m.display, keycalc.KeyDelete)
	case tea.KeyRunes:
		for _, r := range key.Runes {
			if r == 'q' {
				return m, tea.Quit
			}
			label, ok := typed[r]
			if !ok {
				label = string(r)
			}
			if !onPad(label) {
				continue
			}
			m.display = m.ev.Press(m.display, label)
		}
	}
	return m, nil
}

// onPad reports whether label is one of the keypad's keys.
func onPad(label string) bool {
	for _, row := range keycalc.Keys {
		for _, k := range row {
			if k == label {
				return true
			}
		}
	}
	return false
}

func (m padModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Display.Render(m.display.Text()))
	b.WriteByte('\n')
	for i, row := range keycalc.Keys {
		cells := make([]string, len(row))
		for j, label := range row {
			style := m.styles.Key
			if i == m.row && j == m.col {
				style = m.styles.Cursor
			}
			cells[j] = style.Render(label)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteByte('\n')
	}
	b.WriteString(m.styles.Help.Render("arrows move • enter presses • type digits and operators • q quits"))
	b.WriteByte('\n')
	return b.String()
}
