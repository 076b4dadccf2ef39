package sim

// Console is the blocking player-interaction contract the simulation depends
// on. Choose must keep re-prompting until it can return a valid index, so the
// core never sees invalid input. MultiSelect drops invalid tokens and may
// return an empty slice, which callers treat as "did nothing".
type Console interface {
	Printf(format string, args ...any)
	Section(title string)
	Choose(prompt string, options []string) int
	ReadLine(prompt string) string
	MultiSelect(prompt string, options []string) []int
}
