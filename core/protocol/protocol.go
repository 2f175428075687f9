// core/protocol/protocol.go
package protocol

import (
	"fmt"
	"math"

	"whispr-core/inventory"
	"whispr-core/layout"
	"whispr-core/mix"
	"whispr-core/plate"
	"whispr-core/volume"
)

// Transfer is one instrument instruction: move VolumeNL nanoliters from
// a source well to a destination well.
type Transfer struct {
	SourcePlateName string
	SourcePlateType string
	SourceWell      string
	DestPlateName   string
	DestWell        string
	VolumeNL        float64
}

// LoadRow is operator guidance for one reagent: the least volume that
// must be loaded into the stock's active well and the most the plate
// accepts. Informational only.
type LoadRow struct {
	Label   string
	MinLoad float64
	MaxLoad float64
}

// Protocol is the output of one build: the ordered transfer list, the
// per-reagent load report, and any layout reactions that were skipped
// because the recipe batch does not cover them.
type Protocol struct {
	Transfers []Transfer
	Loads     []LoadRow
	Skipped   []string
}

// Params names the plates on either side of the run.
type Params struct {
	Plate           plate.Profile
	SourcePlateName string
	DestPlateName   string
}

// Build walks the destination layout and emits one transfer per nonzero
// (reaction, component, destination well) combination, drawing source
// wells from a fresh Allocator. Layout reactions with no volume-table
// row are collected in Skipped, not treated as errors: a layout may
// reference reactions outside the current batch.
func Build(table *mix.Table, grid *layout.Grid, ix *inventory.Index, params Params) (*Protocol, error) {
	alloc := NewAllocator(params.Plate)
	out := &Protocol{}

	emit := func(entry *inventory.Entry, v float64, destWell string) error {
		srcWell, err := alloc.Allocate(entry, v)
		if err != nil {
			return err
		}
		out.Transfers = append(out.Transfers, Transfer{
			SourcePlateName: params.SourcePlateName,
			SourcePlateType: params.Plate.Type,
			SourceWell:      srcWell,
			DestPlateName:   params.DestPlateName,
			DestWell:        destWell,
			VolumeNL:        volume.Nanoliters(v),
		})
		return nil
	}

	for _, asg := range grid.Assignments() {
		row, ok := table.Lookup(asg.Reaction)
		if !ok {
			out.Skipped = append(out.Skipped, asg.Reaction)
			continue
		}
		for _, destWell := range asg.Wells {
			for _, c := range row.Components {
				if c.Volume == 0 {
					continue
				}
				if err := emit(c.Source, c.Volume, destWell); err != nil {
					return nil, err
				}
			}
			if row.Water > 0 {
				res, err := ix.Resolve(mix.Diluent, 0)
				if err != nil {
					return nil, fmt.Errorf("diluent: %w", err)
				}
				if err := emit(res.Entry, row.Water, destWell); err != nil {
					return nil, err
				}
			}
		}
	}

	out.Loads = loadReport(alloc, params.Plate)
	return out, nil
}

// loadReport aggregates active-well usage per reagent label, in
// first-touch order. Min load is the plate's dead volume plus what the
// run still draws from the active well, shown to 2 decimals.
func loadReport(alloc *Allocator, p plate.Profile) []LoadRow {
	var labels []string
	used := make(map[string]float64)
	for _, entry := range alloc.Touched() {
		if _, seen := used[entry.Label]; !seen {
			labels = append(labels, entry.Label)
		}
		used[entry.Label] += alloc.Used(entry)
	}
	rows := make([]LoadRow, 0, len(labels))
	for _, label := range labels {
		rows = append(rows, LoadRow{
			Label:   label,
			MinLoad: math.Round((p.MinLoad+used[label])*100) / 100,
			MaxLoad: p.MaxLoad,
		})
	}
	return rows
}
