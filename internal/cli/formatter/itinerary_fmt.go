package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/puravida/internal/domain"
)

const slotLabelWidth = 10

// FormatItinerary renders an itinerary for the terminal. Notes are the
// informational consistency notes; width soft-wraps prose (0 disables).
func FormatItinerary(it *domain.Itinerary, notes []string, width int) string {
	var b strings.Builder

	b.WriteString(Header(it.ItineraryName))
	b.WriteString("\n")
	b.WriteString(Wrap(it.Summary, width))
	b.WriteString("\n\n")

	writeSection(&b, "Wedding logistics", Wrap(it.WeddingLogistics, width))
	writeSection(&b, "Weather", Wrap(it.WeatherNote, width))

	if len(it.Accommodations) > 0 {
		var stays strings.Builder
		for _, a := range it.Accommodations {
			fmt.Fprintf(&stays, "  %s %s %s %s %s\n",
				Bold(a.Name), Dim("·"), StyleOcean.Render(a.Area), Dim("·"), StyleJungle.Render(a.EstimatedPrice))
			fmt.Fprintf(&stays, "    %s\n", a.Description)
		}
		writeSection(&b, "Where to stay", stays.String())
	}

	if len(it.Schedule) > 0 {
		days := make([]string, len(it.Schedule))
		for i, d := range it.Schedule {
			days[i] = formatDay(d)
		}
		writeSection(&b, "Day by day", strings.Join(days, "\n"))
	}

	if len(it.PackingTips) > 0 {
		writeSection(&b, "Packing tips", Bullets(it.PackingTips))
	}

	if len(notes) > 0 {
		styled := make([]string, len(notes))
		for i, n := range notes {
			styled[i] = StyleSun.Render(n)
		}
		writeSection(&b, "Heads up", Bullets(styled))
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func formatDay(d domain.DailyPlan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s\n",
		StyleOrchid.Render(fmt.Sprintf("Day %d:", d.Day)), Bold(d.Title), Dim("("+d.Location+")"))
	writeSlot(&b, "Morning", d.MorningActivity)
	writeSlot(&b, "Afternoon", d.AfternoonActivity)
	writeSlot(&b, "Evening", d.EveningActivity)
	return b.String()
}

func writeSlot(b *strings.Builder, label, text string) {
	pad := max(slotLabelWidth-len(label), 0)
	fmt.Fprintf(b, "  %s%s %s\n", StyleOcean.Render(label), strings.Repeat(" ", pad), text)
}

func writeSection(b *strings.Builder, title, body string) {
	b.WriteString(Header(title))
	b.WriteString("\n")
	b.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("\n")
}
