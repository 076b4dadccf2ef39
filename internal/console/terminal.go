// Package console provides the terminal front end for the simulation. The
// Terminal implements sim.Console either as a plain line-oriented prompt
// loop (for pipes and dumb terminals) or with interactive cursor menus.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// --- Styles (retro green) ---
var (
	green       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	brightGreen = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimGreen    = lipgloss.NewStyle().Foreground(lipgloss.Color("22"))
	headerRule  = "----------------------------------------"
)

// Terminal is the standard player console. Interactive mode renders cursor
// menus through bubbletea; plain mode reads numbered answers line by line.
type Terminal struct {
	in          *bufio.Scanner
	out         io.Writer
	interactive bool
}

// NewTerminal wires a console over the given streams. Pass interactive=false
// when stdin is not a TTY or when the caller asked for plain output.
func NewTerminal(in io.Reader, out io.Writer, interactive bool) *Terminal {
	return &Terminal{
		in:          bufio.NewScanner(in),
		out:         out,
		interactive: interactive,
	}
}

func (t *Terminal) Printf(format string, args ...any) {
	fmt.Fprintln(t.out, green.Render(fmt.Sprintf(format, args...)))
}

func (t *Terminal) Section(title string) {
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, dimGreen.Render(headerRule))
	fmt.Fprintln(t.out, brightGreen.Render(title))
	fmt.Fprintln(t.out, dimGreen.Render(headerRule))
}

// Choose keeps prompting until it can return a valid option index. Plain
// mode accepts a 1-based number or enough of the option text for a fuzzy
// match; interactive mode runs a cursor menu.
func (t *Terminal) Choose(prompt string, options []string) int {
	if len(options) == 0 {
		return 0
	}
	if t.interactive {
		if idx, ok := chooseMenu(prompt, options); ok {
			return idx
		}
		// Fall through to the plain loop if the TTY program failed.
	}

	for {
		fmt.Fprintln(t.out, brightGreen.Render(prompt))
		for i, opt := range options {
			fmt.Fprintf(t.out, "%s\n", green.Render(fmt.Sprintf("%d. %s", i+1, opt)))
		}
		line := t.readRaw("> ")

		if n, err := strconv.Atoi(strings.TrimSpace(line)); err == nil {
			if n >= 1 && n <= len(options) {
				return n - 1
			}
			fmt.Fprintln(t.out, dimGreen.Render(fmt.Sprintf("Enter a number between 1 and %d.", len(options))))
			continue
		}

		if idx, ok := matchOption(line, options); ok {
			return idx
		}
		fmt.Fprintln(t.out, dimGreen.Render("I couldn't match that to an option. Enter its number."))
	}
}

// MultiSelect reads a space-separated list of option numbers. Invalid and
// duplicate tokens are dropped; a blank line returns an empty selection.
func (t *Terminal) MultiSelect(prompt string, options []string) []int {
	if len(options) == 0 {
		return nil
	}
	if t.interactive {
		if picks, ok := multiSelectMenu(prompt, options); ok {
			return picks
		}
	}

	fmt.Fprintln(t.out, brightGreen.Render(prompt))
	for i, opt := range options {
		fmt.Fprintf(t.out, "%s\n", green.Render(fmt.Sprintf("%d. %s", i+1, opt)))
	}
	fmt.Fprintln(t.out, dimGreen.Render("Enter numbers separated by spaces, or leave blank to skip."))
	line := t.readRaw("> ")

	seen := make(map[int]bool, len(options))
	var picks []int
	for _, token := range strings.Fields(line) {
		n, err := strconv.Atoi(token)
		if err != nil || n < 1 || n > len(options) || seen[n] {
			continue
		}
		seen[n] = true
		picks = append(picks, n-1)
	}
	return picks
}

func (t *Terminal) ReadLine(prompt string) string {
	if t.interactive {
		if line, ok := readLineInput(prompt); ok {
			return line
		}
	}
	fmt.Fprintln(t.out, brightGreen.Render(prompt))
	return strings.TrimSpace(t.readRaw("> "))
}

func (t *Terminal) readRaw(cursor string) string {
	fmt.Fprint(t.out, dimGreen.Render(cursor))
	if !t.in.Scan() {
		return ""
	}
	return t.in.Text()
}
