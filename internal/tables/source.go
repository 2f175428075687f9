// internal/tables/source.go
package tables

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"whispr-core/inventory"
)

// ReadSource loads the source-plate inventory CSV. Expected header:
// Label,Well,Concentration,Volume. Well and Volume cells may hold
// comma-separated lists (quoted); a single volume against several wells
// applies to each of them.
func ReadSource(path string) ([]inventory.Entry, error) {
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
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: empty source plate file", path)
	}

	col, err := sourceColumns(records[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var entries []inventory.Entry
	for ln, rec := range records[1:] {
		line := ln + 2
		e := inventory.Entry{
			Label: strings.TrimSpace(rec[col["label"]]),
			Wells: splitList(rec[col["well"]]),
		}
		if e.Label == "" {
			return nil, fmt.Errorf("%s:%d empty label", path, line)
		}
		if len(e.Wells) == 0 {
			return nil, fmt.Errorf("%s:%d no source well for %s", path, line, e.Label)
		}
		e.Concentration, err = strconv.ParseFloat(strings.TrimSpace(rec[col["concentration"]]), 64)
		if err != nil || e.Concentration <= 0 {
			return nil, fmt.Errorf("%s:%d bad concentration for %s: %q", path, line, e.Label, rec[col["concentration"]])
		}
		for _, f := range splitList(rec[col["volume"]]) {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d bad volume for %s: %q", path, line, e.Label, f)
			}
			e.Volumes = append(e.Volumes, v)
		}
		switch {
		case len(e.Volumes) == 1 && len(e.Wells) > 1:
			// One declared volume covers every well.
			for len(e.Volumes) < len(e.Wells) {
				e.Volumes = append(e.Volumes, e.Volumes[0])
			}
		case len(e.Volumes) != len(e.Wells):
			return nil, fmt.Errorf("%s:%d %s lists %d wells but %d volumes", path, line, e.Label, len(e.Wells), len(e.Volumes))
		}
		entries = append(entries, e)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%s: no inventory rows", path)
	}
	return entries, nil
}

func sourceColumns(header []string) (map[string]int, error) {
	col := map[string]int{}
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, want := range []string{"label", "well", "concentration", "volume"} {
		if _, ok := col[want]; !ok {
			return nil, fmt.Errorf("missing %q column", want)
		}
	}
	return col, nil
}

// splitList splits a possibly comma-separated cell into trimmed parts,
// dropping empties.
func splitList(cell string) []string {
	var out []string
	for _, part := range strings.Split(cell, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
