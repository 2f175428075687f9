// core/mix/table.go
package mix

import (
	"fmt"

	"whispr-core/inventory"
	"whispr-core/volume"
)

// Diluent is the reagent label used to top reactions up to the fixed
// reaction volume. The source inventory must carry a stock under this
// label whenever any reaction needs topping up.
const Diluent = "Water"

// Recipe is the desired-concentration table: one row per reaction, one
// column per reagent. Reactions and Reagents preserve input order so
// every later stage iterates deterministically.
type Recipe struct {
	Reactions []string
	Reagents  []string
	Targets   map[string]map[string]float64
}

// Target returns the target concentration of reagent in reaction,
// treating absent cells as 0.
func (r Recipe) Target(reaction, reagent string) float64 {
	return r.Targets[reaction][reagent]
}

// Component is one resolved reagent addition within a reaction: the
// stock tier it resolved to and the quantized volume to transfer.
type Component struct {
	Label  string
	Source *inventory.Entry
	Volume float64
}

// Row is the volume breakdown of one reaction. Components follow the
// recipe's reagent order; Water is the diluent filling the gap up to
// volume.MaxReaction.
type Row struct {
	Reaction   string
	Components []Component
	Water      float64
}

// Table is the reaction × reagent volume table.
type Table struct {
	Rows       []Row
	byReaction map[string]*Row
}

// Lookup returns the row for a reaction id, if the recipe contained it.
func (t *Table) Lookup(reaction string) (*Row, bool) {
	r, ok := t.byReaction[reaction]
	return r, ok
}

// VolumeExceededError reports a reaction whose reagents alone overflow
// the fixed reaction volume.
type VolumeExceededError struct {
	Reaction string
	Total    float64
}

func (e *VolumeExceededError) Error() string {
	return fmt.Sprintf("reaction %s needs %.3f ul of reagents, exceeding the %.1f ul reaction volume; change the recipe and try again",
		e.Reaction, e.Total, volume.MaxReaction)
}

// BuildTable converts a concentration recipe into transfer volumes,
// resolving each cell against the stock index. Components record the
// tier they resolved to, so well allocation later draws from the right
// physical wells even when a dilute stock was promoted.
func BuildTable(recipe Recipe, ix *inventory.Index) (*Table, error) {
	t := &Table{byReaction: make(map[string]*Row, len(recipe.Reactions))}
	for _, reaction := range recipe.Reactions {
		row := Row{Reaction: reaction, Components: make([]Component, 0, len(recipe.Reagents))}
		total := 0.0
		for _, reagent := range recipe.Reagents {
			res, err := ix.Resolve(reagent, recipe.Target(reaction, reagent))
			if err != nil {
				return nil, fmt.Errorf("reaction %s: %w", reaction, err)
			}
			row.Components = append(row.Components, Component{
				Label:  reagent,
				Source: res.Entry,
				Volume: res.Volume,
			})
			total += res.Volume
		}
		if total > volume.MaxReaction {
			return nil, &VolumeExceededError{Reaction: reaction, Total: total}
		}
		row.Water = volume.MaxReaction - total
		t.Rows = append(t.Rows, row)
	}
	for i := range t.Rows {
		t.byReaction[t.Rows[i].Reaction] = &t.Rows[i]
	}
	return t, nil
}
