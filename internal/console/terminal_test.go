package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newPlainTerminal(input string) (*Terminal, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewTerminal(strings.NewReader(input), out, false), out
}

func TestChooseByNumber(t *testing.T) {
	term, _ := newPlainTerminal("2\n")
	idx := term.Choose("Pick:", []string{"first", "second", "third"})
	assert.Equal(t, 1, idx)
}

func TestChooseRepromptsUntilValid(t *testing.T) {
	term, out := newPlainTerminal("9\nzzzzz\n1\n")
	idx := term.Choose("Pick:", []string{"first", "second"})
	assert.Equal(t, 0, idx)
	assert.Contains(t, out.String(), "Enter a number between 1 and 2")
}

func TestChooseByFuzzyText(t *testing.T) {
	term, _ := newPlainTerminal("second\n")
	idx := term.Choose("Pick:", []string{"first option", "second option"})
	assert.Equal(t, 1, idx)
}

func TestMultiSelectDropsInvalidTokens(t *testing.T) {
	term, _ := newPlainTerminal("1 3 9 x 1\n")
	picks := term.MultiSelect("Pick some:", []string{"a", "b", "c"})
	assert.Equal(t, []int{0, 2}, picks)
}

func TestMultiSelectBlankMeansSkip(t *testing.T) {
	term, _ := newPlainTerminal("\n")
	picks := term.MultiSelect("Pick some:", []string{"a", "b"})
	assert.Empty(t, picks)
}

func TestReadLineTrims(t *testing.T) {
	term, _ := newPlainTerminal("  Northern Timber Co.  \n")
	assert.Equal(t, "Northern Timber Co.", term.ReadLine("Name:"))
}

func TestScriptFallback(t *testing.T) {
	s := &Script{Choices: []int{2}, Fallback: 1}

	assert.Equal(t, 2, s.Choose("q1", []string{"a", "b", "c"}))
	// Queue exhausted: the fallback answers everything else.
	assert.Equal(t, 1, s.Choose("q2", []string{"a", "b", "c"}))
	// Fallback clamps to the option range.
	assert.Equal(t, 0, s.Choose("q3", []string{"a"}))
	assert.True(t, s.Saw("q2"))
}

func TestScriptMultiSelectBounds(t *testing.T) {
	s := &Script{Selects: [][]int{{0, 5, 2}}}
	assert.Equal(t, []int{0, 2}, s.MultiSelect("pick", []string{"a", "b", "c"}))
	assert.Nil(t, s.MultiSelect("pick again", []string{"a"}))
}
