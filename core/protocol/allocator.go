// core/protocol/allocator.go
package protocol

import (
	"whispr-core/inventory"
	"whispr-core/plate"
)

// Allocator tracks how much has been drawn from each stock's active
// well during one protocol build, rotating to the stock's next well
// once the per-well usable budget would be crossed. State is owned by a
// single build pass and must not be reused across runs.
type Allocator struct {
	budget float64
	state  map[*inventory.Entry]*wellState
	order  []*inventory.Entry // entries in first-touch order, for reporting
}

type wellState struct {
	used  float64  // µL drawn from the active well
	wells []string // remaining wells, front is active
}

// NewAllocator sizes the per-well budget from the plate profile.
func NewAllocator(p plate.Profile) *Allocator {
	return &Allocator{budget: p.WellBudget, state: make(map[*inventory.Entry]*wellState)}
}

// Allocate charges v µL against entry and returns the well to draw
// from. When the active well cannot supply v within its usable budget
// it is dropped and usage restarts on the next well; running out of
// wells fails the run.
func (a *Allocator) Allocate(entry *inventory.Entry, v float64) (string, error) {
	st := a.state[entry]
	if st == nil {
		st = &wellState{wells: append([]string(nil), entry.Wells...)}
		a.state[entry] = st
		a.order = append(a.order, entry)
	}
	if st.used+v >= a.budget {
		st.used = 0
		st.wells = st.wells[1:]
		if len(st.wells) == 0 {
			return "", &inventory.ExhaustedError{Label: entry.Label, OutOfWells: true}
		}
	}
	st.used += v
	return st.wells[0], nil
}

// Used reports the µL drawn so far from entry's active well. Rotation
// resets this to the volume that triggered it, so at run end it is the
// load still needed on the freshest well of the stock.
func (a *Allocator) Used(entry *inventory.Entry) float64 {
	if st := a.state[entry]; st != nil {
		return st.used
	}
	return 0
}

// Touched returns the entries allocated from, in first-touch order.
func (a *Allocator) Touched() []*inventory.Entry { return a.order }
