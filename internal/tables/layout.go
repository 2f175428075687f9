// internal/tables/layout.go
package tables

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"whispr-core/layout"
)

// ReadLayout loads the destination-plate layout CSV: header cells name
// the plate columns, the first cell of each following row is the row
// letter, and the remaining cells hold reaction ids (blank = no
// reaction in that well).
func ReadLayout(path string) (*layout.Grid, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	r := csv.NewReader(fh)
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s: layout needs a header row and at least one plate row", path)
	}

	var cols []string
	for _, h := range records[0][1:] {
		cols = append(cols, strings.TrimSpace(h))
	}

	var rows []string
	var cells [][]string
	for ln, rec := range records[1:] {
		line := ln + 2
		if len(rec) != len(cols)+1 {
			return nil, fmt.Errorf("%s:%d has %d cells, expected %d", path, line, len(rec), len(cols)+1)
		}
		rowLabel := strings.TrimSpace(rec[0])
		if rowLabel == "" {
			return nil, fmt.Errorf("%s:%d empty row label", path, line)
		}
		row := make([]string, len(cols))
		for i := range cols {
			row[i] = strings.TrimSpace(rec[i+1])
		}
		rows = append(rows, rowLabel)
		cells = append(cells, row)
	}

	g, err := layout.New(rows, cols, cells)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
