// core/inventory/inventory.go
package inventory

import (
	"errors"
	"fmt"
	"sort"

	"whispr-core/plate"
	"whispr-core/volume"
)

// Entry is one source-plate stock: a reagent at one concentration,
// possibly spread across several physical wells. Wells are listed in
// rotation order; Volumes holds the declared load of each well.
type Entry struct {
	Label         string
	Wells         []string
	Concentration float64
	Volumes       []float64
}

// ErrUnknownReagent marks a recipe reagent with no inventory entry.
var ErrUnknownReagent = errors.New("reagent not in source inventory")

// RangeError reports a declared stock volume outside the plate type's
// loadable bounds.
type RangeError struct {
	Label    string
	Well     string
	Volume   float64
	Min, Max float64
}

func (e *RangeError) Error() string {
	bound := "below the minimum"
	limit := e.Min
	if e.Volume > e.Max {
		bound = "above the maximum"
		limit = e.Max
	}
	return fmt.Sprintf("source volume %.3g ul of %s (well %s) is %s loadable volume %.3g ul",
		e.Volume, e.Label, e.Well, bound, limit)
}

// ExhaustedError reports a reagent that cannot supply a required volume:
// no concentration tier registers a dispensable quantum, or every
// physical well has been drained mid-run.
type ExhaustedError struct {
	Label      string
	Target     float64 // target concentration when resolution failed
	OutOfWells bool
}

func (e *ExhaustedError) Error() string {
	if e.OutOfWells {
		return fmt.Sprintf("need more volume of %s to complete the run; add another well to the source plate", e.Label)
	}
	return fmt.Sprintf("no stock of %s is concentrated enough to dispense target %g at the instrument quantum", e.Label, e.Target)
}

// ValidateLoad checks every declared per-well volume in entries against
// the profile's loadable range. It is advisory and independent of the
// volume computation; run it over the full inventory before accepting a
// protocol.
func ValidateLoad(entries []Entry, p plate.Profile) error {
	for _, e := range entries {
		for i, v := range e.Volumes {
			well := ""
			if i < len(e.Wells) {
				well = e.Wells[i]
			}
			if v > p.MaxLoad || v < p.MinLoad {
				return &RangeError{Label: e.Label, Well: well, Volume: v, Min: p.MinLoad, Max: p.MaxLoad}
			}
		}
	}
	return nil
}

// Index groups inventory entries by label, each group pre-sorted by
// concentration descending. The sort is stable so entries at equal
// concentration keep declaration order and resolution is deterministic.
type Index struct {
	entries []Entry
	byLabel map[string][]*Entry
}

// NewIndex copies entries and builds the per-label concentration tiers.
func NewIndex(entries []Entry) *Index {
	ix := &Index{
		entries: append([]Entry(nil), entries...),
		byLabel: make(map[string][]*Entry),
	}
	for i := range ix.entries {
		e := &ix.entries[i]
		ix.byLabel[e.Label] = append(ix.byLabel[e.Label], e)
	}
	for _, tiers := range ix.byLabel {
		sort.SliceStable(tiers, func(i, j int) bool {
			return tiers[i].Concentration > tiers[j].Concentration
		})
	}
	return ix
}

// Entries returns the backing entry list in declaration order.
func (ix *Index) Entries() []Entry { return ix.entries }

// Tiers returns the entries for label, most concentrated first.
func (ix *Index) Tiers(label string) []*Entry { return ix.byLabel[label] }

// Resolution is the outcome of picking a stock tier for one target
// concentration: the entry to draw from and the quantized µL to move.
type Resolution struct {
	Entry  *Entry
	Volume float64
}

// Resolve picks the stock entry that satisfies target for label. Tiers
// are tried from the most concentrated down: a stock too dilute to
// register one quantization step is skipped in favor of the next tier.
// A zero target trivially resolves to the top tier at volume 0.
func (ix *Index) Resolve(label string, target float64) (Resolution, error) {
	tiers := ix.byLabel[label]
	if len(tiers) == 0 {
		return Resolution{}, fmt.Errorf("%w: %q", ErrUnknownReagent, label)
	}
	if target == 0 {
		return Resolution{Entry: tiers[0]}, nil
	}
	for _, tier := range tiers {
		v := volume.Quantize(10 * target / tier.Concentration)
		if v > 0 {
			return Resolution{Entry: tier, Volume: v}, nil
		}
	}
	return Resolution{}, &ExhaustedError{Label: label, Target: target}
}
