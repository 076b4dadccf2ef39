package console

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Single-choice cursor menu ---

type chooseModel struct {
	prompt  string
	options []string
	idx     int
	done    bool
}

func (m chooseModel) Init() tea.Cmd { return nil }

func (m chooseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		m.idx = (m.idx + len(m.options) - 1) % len(m.options)
	case "down", "j":
		m.idx = (m.idx + 1) % len(m.options)
	case "enter":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m chooseModel) View() string {
	var b strings.Builder
	b.WriteString(brightGreen.Render(m.prompt) + "\n")
	for i, opt := range m.options {
		cursor := "  "
		line := green.Render(opt)
		if i == m.idx {
			cursor = "> "
			line = brightGreen.Render(opt)
		}
		b.WriteString(cursor + line + "\n")
	}
	b.WriteString(dimGreen.Render("↑/↓ to move, Enter to select") + "\n")
	return b.String()
}

func chooseMenu(prompt string, options []string) (int, bool) {
	final, err := tea.NewProgram(chooseModel{prompt: prompt, options: options}).Run()
	if err != nil {
		return 0, false
	}
	m, ok := final.(chooseModel)
	if !ok || !m.done {
		return 0, false
	}
	return m.idx, true
}

// --- Multi-select cursor menu ---

type multiModel struct {
	prompt  string
	options []string
	idx     int
	picked  map[int]bool
	order   []int
	done    bool
}

func (m multiModel) Init() tea.Cmd { return nil }

func (m multiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		m.idx = (m.idx + len(m.options) - 1) % len(m.options)
	case "down", "j":
		m.idx = (m.idx + 1) % len(m.options)
	case " ":
		if m.picked[m.idx] {
			delete(m.picked, m.idx)
			for i, v := range m.order {
				if v == m.idx {
					m.order = append(m.order[:i], m.order[i+1:]...)
					break
				}
			}
		} else {
			m.picked[m.idx] = true
			m.order = append(m.order, m.idx)
		}
	case "enter":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m multiModel) View() string {
	var b strings.Builder
	b.WriteString(brightGreen.Render(m.prompt) + "\n")
	for i, opt := range m.options {
		cursor := "  "
		mark := "[ ] "
		if m.picked[i] {
			mark = "[x] "
		}
		line := green.Render(mark + opt)
		if i == m.idx {
			cursor = "> "
			line = brightGreen.Render(mark + opt)
		}
		b.WriteString(cursor + line + "\n")
	}
	b.WriteString(dimGreen.Render("Space to toggle, Enter to confirm (selection order matters)") + "\n")
	return b.String()
}

func multiSelectMenu(prompt string, options []string) ([]int, bool) {
	final, err := tea.NewProgram(multiModel{
		prompt:  prompt,
		options: options,
		picked:  map[int]bool{},
	}).Run()
	if err != nil {
		return nil, false
	}
	m, ok := final.(multiModel)
	if !ok || !m.done {
		return nil, false
	}
	return m.order, true
}

// --- Free text input ---

type inputModel struct {
	prompt string
	input  textinput.Model
	done   bool
}

func newInputModel(prompt string) inputModel {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 120
	return inputModel{prompt: prompt, input: ti}
}

func (m inputModel) Init() tea.Cmd { return textinput.Blink }

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "enter":
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	return brightGreen.Render(m.prompt) + "\n" + m.input.View() + "\n"
}

func readLineInput(prompt string) (string, bool) {
	final, err := tea.NewProgram(newInputModel(prompt)).Run()
	if err != nil {
		return "", false
	}
	m, ok := final.(inputModel)
	if !ok || !m.done {
		return "", false
	}
	return strings.TrimSpace(m.input.Value()), true
}
