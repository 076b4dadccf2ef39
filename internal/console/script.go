package console

import (
	"fmt"
	"strings"
)

// Script is a canned console for tests and headless runs. Choose answers
// are consumed in order; once the queue empties every prompt returns the
// fallback so scripted runs terminate instead of blocking.
type Script struct {
	Choices  []int
	Selects  [][]int
	Lines    []string
	Fallback int

	Output []string

	choiceAt int
	selectAt int
	lineAt   int
}

func (s *Script) Printf(format string, args ...any) {
	s.Output = append(s.Output, fmt.Sprintf(format, args...))
}

func (s *Script) Section(title string) {
	s.Output = append(s.Output, "== "+title+" ==")
}

func (s *Script) Choose(prompt string, options []string) int {
	s.Output = append(s.Output, "? "+prompt)
	if s.choiceAt >= len(s.Choices) {
		return clampIndex(s.Fallback, len(options))
	}
	choice := s.Choices[s.choiceAt]
	s.choiceAt++
	return clampIndex(choice, len(options))
}

func (s *Script) MultiSelect(prompt string, options []string) []int {
	s.Output = append(s.Output, "? "+prompt)
	if s.selectAt >= len(s.Selects) {
		return nil
	}
	raw := s.Selects[s.selectAt]
	s.selectAt++
	out := make([]int, 0, len(raw))
	for _, idx := range raw {
		if idx >= 0 && idx < len(options) {
			out = append(out, idx)
		}
	}
	return out
}

func (s *Script) ReadLine(prompt string) string {
	s.Output = append(s.Output, "? "+prompt)
	if s.lineAt >= len(s.Lines) {
		return ""
	}
	line := s.Lines[s.lineAt]
	s.lineAt++
	return line
}

// Saw reports whether any output line contains the substring.
func (s *Script) Saw(substr string) bool {
	for _, line := range s.Output {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

func clampIndex(idx, n int) int {
	if n == 0 {
		return 0
	}
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}
