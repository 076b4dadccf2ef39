// Package format holds the display formatters shared by the simulation and
// the terminal front end.
package format

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Currency renders a CAD amount with thousands separators, e.g. "-$1,250,000".
func Currency(amount int) string {
	if amount < 0 {
		return "-$" + humanize.Comma(int64(-amount))
	}
	return "$" + humanize.Comma(int64(amount))
}

// Volume renders a timber volume in cubic metres, e.g. "150,000 m³".
func Volume(volumeM3 int) string {
	return humanize.Comma(int64(volumeM3)) + " m³"
}

// Percent renders a fraction as a percentage with no decimals.
func Percent(fraction float64) string {
	return fmt.Sprintf("%.0f%%", fraction*100)
}

// Signed renders a small stat delta like "+0.15" or "-0.30".
func Signed(delta float64) string {
	return fmt.Sprintf("%+.2f", delta)
}
