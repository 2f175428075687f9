// internal/tables/recipe.go
package tables

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"whispr-core/mix"
)

// ReadRecipe loads the reaction recipe CSV: first column holds reaction
// ids, remaining header cells name reagents, cells hold target
// concentrations. Blank cells mean 0.
func ReadRecipe(path string) (mix.Recipe, error) {
	var recipe mix.Recipe

	fh, err := os.Open(path)
	if err != nil {
		return recipe, err
	}
	defer func() { _ = fh.Close() }()

	r := csv.NewReader(fh)
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return recipe, fmt.Errorf("%s: %w", path, err)
	}
	if len(records) < 2 {
		return recipe, fmt.Errorf("%s: recipe needs a header row and at least one reaction", path)
	}

	for _, h := range records[0][1:] {
		reagent := strings.TrimSpace(h)
		if reagent == "" {
			return recipe, fmt.Errorf("%s: empty reagent column in header", path)
		}
		recipe.Reagents = append(recipe.Reagents, reagent)
	}

	recipe.Targets = make(map[string]map[string]float64, len(records)-1)
	for ln, rec := range records[1:] {
		line := ln + 2
		if len(rec) != len(recipe.Reagents)+1 {
			return recipe, fmt.Errorf("%s:%d has %d cells, expected %d", path, line, len(rec), len(recipe.Reagents)+1)
		}
		reaction := strings.TrimSpace(rec[0])
		if reaction == "" {
			return recipe, fmt.Errorf("%s:%d empty reaction id", path, line)
		}
		if _, dup := recipe.Targets[reaction]; dup {
			return recipe, fmt.Errorf("%s:%d duplicate reaction %s", path, line, reaction)
		}
		targets := make(map[string]float64, len(recipe.Reagents))
		for i, reagent := range recipe.Reagents {
			cell := strings.TrimSpace(rec[i+1])
			if cell == "" {
				continue
			}
			c, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return recipe, fmt.Errorf("%s:%d bad concentration for %s/%s: %q", path, line, reaction, reagent, cell)
			}
			if c < 0 {
				return recipe, fmt.Errorf("%s:%d negative concentration for %s/%s", path, line, reaction, reagent)
			}
			targets[reagent] = c
		}
		recipe.Reactions = append(recipe.Reactions, reaction)
		recipe.Targets[reaction] = targets
	}
	return recipe, nil
}
