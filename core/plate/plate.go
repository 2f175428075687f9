// core/plate/plate.go
package plate

import (
	"errors"
	"fmt"
	"strings"
)

// Profile holds the calibration constants for one source-plate family.
type Profile struct {
	Type       string  // plate type as named by the caller, e.g. "384PP_AQ_BP"
	MinLoad    float64 // µL, smallest loadable volume per well
	MaxLoad    float64 // µL, largest loadable volume per well
	WellBudget float64 // µL usable per well before acoustic coupling fails
}

// ErrUnknownType marks a plate type outside the calibrated set.
var ErrUnknownType = errors.New("unknown source plate type")

// ProfileFor maps a plate-type name onto its calibration profile.
// Matching is by family substring, so vendor suffixes like "_AQ_BP"
// still select the right family.
func ProfileFor(plateType string) (Profile, error) {
	switch {
	case strings.Contains(plateType, "LDV"):
		return Profile{Type: plateType, MinLoad: 4.5, MaxLoad: 14, WellBudget: 9.5}, nil
	case strings.Contains(plateType, "384PP"):
		return Profile{Type: plateType, MinLoad: 20, MaxLoad: 65, WellBudget: 45}, nil
	}
	return Profile{}, fmt.Errorf("%w: %q", ErrUnknownType, plateType)
}
