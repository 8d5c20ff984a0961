// Package renderer turns pocketfolio reports into markdown strings,
// ready to be printed raw or through a terminal renderer.
package renderer

import (
	"fmt"

	"github.com/ocarel/pocketfolio"
)

// cell formats a money value for a table cell.
func cell(m pocketfolio.Money) string {
	if m.IsZero() {
		return "-"
	}
	return m.String()
}

// score formats the portfolio risk score with its tier hint.
func score(v float64) string {
	label := "n/a"
	switch {
	case v == 0:
	case v < 1.67:
		label = "low"
	case v < 2.34:
		label = "medium"
	default:
		label = "high"
	}
	return fmt.Sprintf("%.2f (%s)", v, label)
}
