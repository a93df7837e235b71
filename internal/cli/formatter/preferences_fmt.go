package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/puravida/internal/domain"
)

const prefLabelWidth = 12

// FormatPreferences renders the confirm-step summary of a preference record.
func FormatPreferences(p domain.Preferences) string {
	rows := [][2]string{
		{"Guest", p.TrimmedName()},
		{"Direction", domain.LabelFor(domain.DirectionOptions, p.Direction)},
		{"Duration", pluralDays(p.Duration)},
		{"Vibes", noneIfEmpty(domain.JoinValues(p.Vibes))},
		{"Activities", noneIfEmpty(domain.JoinValues(p.Activities))},
		{"Regions", regionSummary(p.Regions)},
		{"Budget", string(p.Budget)},
		{"Party", string(p.Party)},
	}

	var b strings.Builder
	for _, r := range rows {
		pad := strings.Repeat(" ", max(prefLabelWidth-len(r[0]), 0))
		fmt.Fprintf(&b, "  %s%s%s\n", Dim(r[0]), pad, r[1])
	}
	return b.String()
}

// FormatCatalog lists every option group the wizard offers.
func FormatCatalog() string {
	var b strings.Builder
	writeSection(&b, "Travel direction", optionLines(domain.DirectionOptions))
	writeSection(&b, "Vibes", optionLines(domain.VibeOptions))
	writeSection(&b, "Activities", optionLines(domain.ActivityOptions))
	writeSection(&b, "Regions", optionLines(domain.RegionOptions))
	writeSection(&b, "Budget", optionLines(domain.BudgetOptions))
	writeSection(&b, "Traveling party", optionLines(domain.PartyOptions))
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func optionLines[T ~string](options []domain.Option[T]) string {
	var b strings.Builder
	for _, o := range options {
		label := o.Label
		if o.Emoji != "" {
			label = o.Emoji + " " + label
		}
		b.WriteString("  ")
		b.WriteString(label)
		if string(o.Value) != o.Label {
			b.WriteString(" " + Dim("["+string(o.Value)+"]"))
		}
		if o.Description != "" {
			b.WriteString(" " + Dim(o.Description))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func regionSummary(sel domain.RegionSelection) string {
	switch sel.Mode() {
	case domain.RegionModeAIDecide:
		return domain.LabelFor(domain.RegionOptions, domain.RegionAIDecide)
	case domain.RegionModeEmpty:
		return "none"
	default:
		return sel.Display()
	}
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

func noneIfEmpty(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
