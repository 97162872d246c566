package render

import "sort"

// Theme is a fixed, fully-specified palette. Levels is indexed by
// domain.Level, none through fourth quartile.
type Theme struct {
	Background string
	YearLabel  string
	MonthLabel string
	DayLabel   string
	Levels     [5]string
}

// DefaultTheme is the fallback for any unrecognized theme name.
const DefaultTheme = "dark"

var themes = map[string]Theme{
	"dark": {
		Background: "#0d1117",
		YearLabel:  "#c9d1d9",
		MonthLabel: "#8b949e",
		DayLabel:   "#8b949e",
		Levels:     [5]string{"#161b22", "#0e4429", "#006d32", "#26a641", "#39d353"},
	},
	"light": {
		Background: "#ffffff",
		YearLabel:  "#24292f",
		MonthLabel: "#57606a",
		DayLabel:   "#57606a",
		Levels:     [5]string{"#ebedf0", "#9be9a8", "#40c463", "#30a14e", "#216e39"},
	},
	"solarized-dark": {
		Background: "#002b36",
		YearLabel:  "#93a1a1",
		MonthLabel: "#839496",
		DayLabel:   "#839496",
		Levels:     [5]string{"#073642", "#586e75", "#2aa198", "#859900", "#b58900"},
	},
	"solarized-light": {
		Background: "#fdf6e3",
		YearLabel:  "#657b83",
		MonthLabel: "#93a1a1",
		DayLabel:   "#93a1a1",
		Levels:     [5]string{"#eee8d5", "#93a1a1", "#2aa198", "#859900", "#b58900"},
	},
	"nord-polar-night": {
		Background: "#2e3440",
		YearLabel:  "#d8dee9",
		MonthLabel: "#e5e9f0",
		DayLabel:   "#e5e9f0",
		Levels:     [5]string{"#3b4252", "#434c5e", "#4c566a", "#81a1c1", "#88c0d0"},
	},
	"nord-frost": {
		Background: "#2e3440",
		YearLabel:  "#eceff4",
		MonthLabel: "#d8dee9",
		DayLabel:   "#d8dee9",
		Levels:     [5]string{"#3b4252", "#5e81ac", "#81a1c1", "#88c0d0", "#8fbcbb"},
	},
	"nord-aurora": {
		Background: "#2e3440",
		YearLabel:  "#eceff4",
		MonthLabel: "#d8dee9",
		DayLabel:   "#d8dee9",
		Levels:     [5]string{"#3b4252", "#bf616a", "#d08770", "#ebcb8b", "#a3be8c"},
	},
}

// ResolveTheme returns the named palette, or the dark palette in its
// entirety for any unknown name.
func ResolveTheme(name string) Theme {
	if theme, ok := themes[name]; ok {
		return theme
	}
	return themes[DefaultTheme]
}

// IsValidTheme reports whether name is one of the fixed theme names.
func IsValidTheme(name string) bool {
	_, ok := themes[name]
	return ok
}

// ThemeNames returns the fixed set of theme names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
