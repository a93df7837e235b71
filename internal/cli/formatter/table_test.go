package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTable_Empty(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderTable_Aligns(t *testing.T) {
	got := stripANSI(RenderTable(
		[]string{"NAME", "AREA"},
		[][]string{{"Belmar", "Monteverde"}, {"Arenas del Mar", "Quepos"}},
	))

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	assert.Equal(t, []string{
		"NAME            AREA",
		"──────────────  ──────────",
		"Belmar          Monteverde",
		"Arenas del Mar  Quepos",
	}, lines)
}

func TestRenderTableAligned_RightAlignsNumbers(t *testing.T) {
	got := stripANSI(RenderTableAligned(
		[]string{"TASK", "MS"},
		[][]string{{"itinerary", "5"}, {"revision", "1200"}},
		[]int{1},
	))

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	assert.Equal(t, "TASK         MS", lines[0])
	assert.Equal(t, "itinerary     5", lines[2])
	assert.Equal(t, "revision   1200", lines[3])
}

func TestRenderTable_ShortRowsPadded(t *testing.T) {
	got := stripANSI(RenderTable([]string{"A", "B", "C"}, [][]string{{"x"}}))
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	assert.Equal(t, "x", strings.TrimRight(lines[2], " "))
}
