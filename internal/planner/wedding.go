package planner

import (
	"strings"

	"github.com/alexanderramin/puravida/internal/domain"
)

// Wedding is the fixed event every itinerary is routed around.
type Wedding struct {
	Location string
	Date     string
	Season   string
	// DriveHours approximates door-to-door travel from each region to the
	// wedding venue. The table only holds for Location; a nil map means no
	// travel times are known.
	DriveHours map[domain.Region]float64
}

// DefaultWedding returns the Manuel Antonio wedding context.
func DefaultWedding() Wedding {
	return Wedding{
		Location: "Manuel Antonio / Quepos",
		Date:     "March 2027",
		Season:   "dry season, hot and humid",
		DriveHours: map[domain.Region]float64{
			domain.RegionManuelAntonio: 0,
			domain.RegionOsa:           3,
			domain.RegionMonteverde:    4,
			domain.RegionLaFortuna:     4.5,
			domain.RegionGuanacaste:    4.5,
			domain.RegionSantaTeresa:   5,
			domain.RegionPuertoViejo:   6,
		},
	}
}

// IsVenue reports whether region r is the area the wedding is held in.
func (w Wedding) IsVenue(r domain.Region) bool {
	return strings.Contains(strings.ToLower(w.Location), strings.ToLower(string(r)))
}

// hoursFrom returns the drive time from r to the venue. The venue's own
// region is always zero hours away.
func (w Wedding) hoursFrom(r domain.Region) (float64, bool) {
	if w.IsVenue(r) {
		return 0, true
	}
	h, ok := w.DriveHours[r]
	return h, ok
}
