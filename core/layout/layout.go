// core/layout/layout.go
package layout

import "fmt"

// Grid is a destination-plate layout: a rectangle of reaction ids with
// empty cells unassigned. The same reaction id may occupy several cells
// (replicates); each cell receives its own transfer set.
type Grid struct {
	RowLabels []string // e.g. A..H
	ColLabels []string // e.g. 1..12
	cells     [][]string
}

// New builds a Grid from row-major cells. Every row must match the
// column label count; empty strings mark unassigned cells.
func New(rowLabels, colLabels []string, cells [][]string) (*Grid, error) {
	if len(cells) != len(rowLabels) {
		return nil, fmt.Errorf("layout has %d rows, expected %d", len(cells), len(rowLabels))
	}
	for i, row := range cells {
		if len(row) != len(colLabels) {
			return nil, fmt.Errorf("layout row %s has %d cells, expected %d", rowLabels[i], len(row), len(colLabels))
		}
	}
	copied := make([][]string, len(cells))
	for i, row := range cells {
		copied[i] = append([]string(nil), row...)
	}
	return &Grid{RowLabels: rowLabels, ColLabels: colLabels, cells: copied}, nil
}

// Assignment lists the destination wells holding one reaction.
type Assignment struct {
	Reaction string
	Wells    []string
}

// Assignments groups the grid by reaction: reactions in order of first
// appearance scanning row-major, wells of each reaction in plate order.
// Well ids are row label + column label, e.g. "A1".
func (g *Grid) Assignments() []Assignment {
	var order []string
	wells := make(map[string][]string)
	for r, row := range g.cells {
		for c, id := range row {
			if id == "" {
				continue
			}
			if _, seen := wells[id]; !seen {
				order = append(order, id)
			}
			wells[id] = append(wells[id], g.RowLabels[r]+g.ColLabels[c])
		}
	}
	out := make([]Assignment, 0, len(order))
	for _, id := range order {
		out = append(out, Assignment{Reaction: id, Wells: wells[id]})
	}
	return out
}
