package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Tropical palette: jungle greens, ocean blues and a sunset accent.
var (
	ColorJungle = lipgloss.Color("#5fb37a")
	ColorSun    = lipgloss.Color("#f2c14e")
	ColorCoral  = lipgloss.Color("#f25c54")
	ColorOcean  = lipgloss.Color("#4ea8c7")
	ColorOrchid = lipgloss.Color("#c77dba")
	ColorMuted  = lipgloss.Color("#8a8f85")
	ColorSand   = lipgloss.Color("#efe6d2")
	ColorSunset = lipgloss.Color("#f78c3b")
)

var (
	StyleJungle  = lipgloss.NewStyle().Foreground(ColorJungle)
	StyleSun     = lipgloss.NewStyle().Foreground(ColorSun)
	StyleCoral   = lipgloss.NewStyle().Foreground(ColorCoral)
	StyleOcean   = lipgloss.NewStyle().Foreground(ColorOcean)
	StyleOrchid  = lipgloss.NewStyle().Foreground(ColorOrchid)
	StyleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleSand    = lipgloss.NewStyle().Foreground(ColorSand)
	StyleHeading = lipgloss.NewStyle().Foreground(ColorSunset).Bold(true)
	StyleBold    = lipgloss.NewStyle().Foreground(ColorSand).Bold(true)
)

// ClassColor returns the style for an llm error class. Configuration
// problems are the user's to fix, so they stand out in red.
func ClassColor(class string) lipgloss.Style {
	switch class {
	case "configuration":
		return StyleCoral
	case "provider", "transport":
		return StyleSun
	default:
		return StyleMuted
	}
}

// CallIndicator returns a colored outcome marker such as "● OK".
func CallIndicator(success bool, class string) string {
	if success {
		return StyleJungle.Render("● OK")
	}
	label := "FAILED"
	if class != "" {
		label = strings.ToUpper(class)
	}
	return ClassColor(class).Render("● " + label)
}

// Header renders an upper-cased section title over a muted rule.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeading.Render(upper), StyleMuted.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleMuted.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
