package render

import (
	"fmt"
	"strings"

	"github.com/bshore/github-contribution-merge/pkg/models/domain"
)

const (
	padding      = 20
	headerHeight = 20
	yearSpacing  = 20
	// bottomMargin balances the header band at the foot of the document.
	bottomMargin = 20
)

// Render composes the year blocks into one self-contained SVG document.
// Blocks are stacked top to bottom in the order supplied; the document
// is sized to the widest year present.
func Render(blocks []domain.YearBlock, logins []string, themeName string) (string, error) {
	if len(blocks) == 0 {
		return "", fmt.Errorf("at least one year block must be provided")
	}

	theme := ResolveTheme(themeName)

	maxWeeks := 0
	for _, block := range blocks {
		if n := len(block.Series.Weeks); n > maxWeeks {
			maxWeeks = n
		}
	}

	width := padding + dayLabelColumn + maxWeeks*cellStep + padding

	var body strings.Builder
	y := padding + headerHeight
	bottom := y
	for i, block := range blocks {
		_, h := layoutYear(&body, block.Series, block.Year, logins, 0, y, theme, padding)
		bottom = y + h
		y = bottom
		if i < len(blocks)-1 {
			y += yearSpacing
		}
	}
	height := bottom + padding + bottomMargin

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+"\n", width, height)
	sb.WriteString("  <style>\n")
	sb.WriteString("    text { font-family: Helvetica, Arial, sans-serif; }\n")
	fmt.Fprintf(&sb, "    .header { fill: %s; font-size: 14px; font-weight: 600; }\n", theme.YearLabel)
	fmt.Fprintf(&sb, "    .year-label { fill: %s; font-size: 12px; }\n", theme.YearLabel)
	fmt.Fprintf(&sb, "    .month-label { fill: %s; font-size: 10px; }\n", theme.MonthLabel)
	fmt.Fprintf(&sb, "    .day-label { fill: %s; font-size: 10px; }\n", theme.DayLabel)
	sb.WriteString("  </style>\n")
	fmt.Fprintf(&sb, `  <rect x="0" y="0" width="%d" height="%d" fill="%s"/>`+"\n", width, height, theme.Background)
	fmt.Fprintf(&sb, `  <text x="%d" y="%d" class="header">Users - %s</text>`+"\n",
		padding, padding+14, escape(strings.Join(logins, ", ")))
	sb.WriteString(body.String())
	sb.WriteString("</svg>\n")

	return sb.String(), nil
}
