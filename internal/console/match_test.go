package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchOption(t *testing.T) {
	options := []string{"Submit all blocks", "Custom selection", "Skip permit submissions this quarter"}

	tests := []struct {
		name    string
		input   string
		wantIdx int
		wantOK  bool
	}{
		{"exact", "custom selection", 1, true},
		{"case and punctuation", "  Custom, Selection!  ", 1, true},
		{"prefix", "subm", 0, true},
		{"contains", "permit submissions", 2, true},
		{"typo", "custom selecton", 1, true},
		{"gibberish", "qqqqqqq", 0, false},
		{"empty", "   ", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := matchOption(tt.input, options)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantIdx, idx)
			}
		})
	}
}

func TestMatchOptionRefusesAmbiguity(t *testing.T) {
	_, ok := matchOption("yes", []string{"Yes, proceed", "Yes, but later"})
	assert.False(t, ok, "a near-tie must not guess")
}

func TestNormalise(t *testing.T) {
	tests := []struct{ in, want string }{
		{"  Hello,   World! ", "hello world"},
		{"UPPER-case_mix", "upper case mix"},
		{"", ""},
		{"$1,000,000", "1 000 000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalise(tt.in))
	}
}
