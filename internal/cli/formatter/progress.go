package formatter

import (
	"fmt"
	"strings"
)

const (
	stepDone    = "●"
	stepCurrent = "◉"
	stepTodo    = "○"
)

// RenderSteps renders a wizard position marker like "Step 2 of 3  ● ◉ ○".
// current is 1-based and clamped into [1, total].
func RenderSteps(current, total int, title string) string {
	if total < 1 {
		total = 1
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	marks := make([]string, total)
	for i := range marks {
		switch {
		case i+1 < current:
			marks[i] = StyleJungle.Render(stepDone)
		case i+1 == current:
			marks[i] = StyleOrchid.Render(stepCurrent)
		default:
			marks[i] = StyleMuted.Render(stepTodo)
		}
	}

	label := fmt.Sprintf("Step %d of %d", current, total)
	if title != "" {
		label += ": " + title
	}
	return fmt.Sprintf("%s  %s", StyleBold.Render(label), strings.Join(marks, " "))
}
