package sim

import (
	"fmt"
	"strings"
	"testing"
)

// fakeUI is an in-package scripted console. Choose answers are consumed in
// order and fall back to 0, so an under-scripted test picks the first option
// instead of blocking.
type fakeUI struct {
	choices []int
	selects [][]int
	lines   []string
	out     []string
}

func (f *fakeUI) Printf(format string, args ...any) {
	f.out = append(f.out, fmt.Sprintf(format, args...))
}

func (f *fakeUI) Section(title string) {
	f.out = append(f.out, "== "+title+" ==")
}

func (f *fakeUI) Choose(prompt string, options []string) int {
	if len(f.choices) == 0 {
		return 0
	}
	choice := f.choices[0]
	f.choices = f.choices[1:]
	if choice < 0 || choice >= len(options) {
		return 0
	}
	return choice
}

func (f *fakeUI) MultiSelect(prompt string, options []string) []int {
	if len(f.selects) == 0 {
		return nil
	}
	picks := f.selects[0]
	f.selects = f.selects[1:]
	out := make([]int, 0, len(picks))
	for _, idx := range picks {
		if idx >= 0 && idx < len(options) {
			out = append(out, idx)
		}
	}
	return out
}

func (f *fakeUI) ReadLine(prompt string) string {
	if len(f.lines) == 0 {
		return ""
	}
	line := f.lines[0]
	f.lines = f.lines[1:]
	return line
}

func (f *fakeUI) saw(substr string) bool {
	for _, line := range f.out {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

func newTestState(t *testing.T, region RegionID, seed int64) *State {
	t.Helper()
	s, err := New(Config{
		CompanyName:    "Test Forestry Co.",
		Region:         region,
		Seed:           seed,
		StartYear:      2025,
		StartingBudget: 2_500_000,
		MaxYears:       15,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}
