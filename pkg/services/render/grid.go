package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/bshore/github-contribution-merge/pkg/models/domain"
)

const (
	cellSize       = 10
	cellGap        = 3
	cellStep       = cellSize + cellGap
	yearLabelBand  = 20
	monthLabelBand = 15
	dayLabelColumn = 30
)

// Only the Monday, Wednesday and Friday rows are labeled.
var dayLabels = []struct {
	row  int
	text string
}{
	{1, "Mon"},
	{3, "Wed"},
	{5, "Fri"},
}

// layoutYear emits the drawing primitives for one year's grid into sb
// and returns the grid's width and height. xOff/yOff position the
// grid's top-left corner; padding is the document's horizontal inset.
func layoutYear(
	sb *strings.Builder,
	series domain.MergedSeries,
	year int,
	logins []string,
	xOff, yOff int,
	theme Theme,
	padding int,
) (width, height int) {
	gridLeft := xOff + padding + dayLabelColumn
	gridTop := yOff + yearLabelBand + monthLabelBand

	fmt.Fprintf(sb, `  <text x="%d" y="%d" class="year-label">%d (%s total)</text>`+"\n",
		xOff+padding, yOff+14, year, formatCount(series.Total))

	lastMonth := -1
	for w, week := range series.Weeks {
		if len(week.Days) == 0 {
			continue
		}
		first := week.Days[0]
		month := int(first.Date.Month())
		if first.Date.Day() <= 7 && month != lastMonth {
			fmt.Fprintf(sb, `  <text x="%d" y="%d" class="month-label">%s</text>`+"\n",
				gridLeft+w*cellStep, yOff+yearLabelBand+10, escape(first.Date.Format("Jan")))
			lastMonth = month
		}
	}

	for _, label := range dayLabels {
		fmt.Fprintf(sb, `  <text x="%d" y="%d" class="day-label">%s</text>`+"\n",
			xOff+padding, gridTop+label.row*cellStep+9, label.text)
	}

	for w, week := range series.Weeks {
		for _, day := range week.Days {
			x := gridLeft + w*cellStep
			y := gridTop + day.Weekday*cellStep
			fmt.Fprintf(sb, `  <rect x="%d" y="%d" width="%d" height="%d" rx="2" fill="%s" data-date="%s" data-count="%d">`+"\n",
				x, y, cellSize, cellSize, theme.Levels[day.Level], escape(domain.DateKey(day.Date)), day.Count)
			fmt.Fprintf(sb, "    <title>%s</title>\n", tooltip(day, series.Breakdown, logins))
			sb.WriteString("  </rect>\n")
		}
	}

	width = dayLabelColumn + len(series.Weeks)*cellStep
	height = yearLabelBand + monthLabelBand + 7*cellStep
	return width, height
}

// tooltip builds the hover text: the short date on the first line, then
// one line per account in request order.
func tooltip(day domain.MergedDay, breakdown map[string]map[string]int, logins []string) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("%s %d", day.Date.Format("Jan"), day.Date.Day()))

	perAccount := breakdown[domain.DateKey(day.Date)]
	for _, login := range logins {
		count := perAccount[login]
		switch count {
		case 0:
			lines = append(lines, fmt.Sprintf("%s no contributions", login))
		case 1:
			lines = append(lines, fmt.Sprintf("%s 1 contribution", login))
		default:
			lines = append(lines, fmt.Sprintf("%s %d contributions", login, count))
		}
	}
	return escape(strings.TrimSpace(strings.Join(lines, "\n")))
}

func formatCount(n int) string {
	if n == 1 {
		return "1 contribution"
	}
	return fmt.Sprintf("%d contributions", n)
}

// escape rewrites < > & ' " to their entity forms so account names and
// dates cannot inject markup.
func escape(s string) string {
	return html.EscapeString(s)
}
