// internal/output/picklist.go
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"whispr-core/protocol"
)

// Columns is the picklist header expected by the instrument software.
var Columns = []string{
	"Source Plate Name",
	"Source Plate Type",
	"Source Well",
	"Destination Plate Name",
	"Destination Well",
	"Transfer Volume",
}

// WritePicklist writes the transfer list as instrument-ready CSV.
func WritePicklist(w io.Writer, transfers []protocol.Transfer, header bool) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write(Columns); err != nil {
			return err
		}
	}
	for _, t := range transfers {
		rec := []string{
			t.SourcePlateName,
			t.SourcePlateType,
			t.SourceWell,
			t.DestPlateName,
			t.DestWell,
			strconv.FormatFloat(t.VolumeNL, 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteLoadReport prints the per-reagent operator guidance.
func WriteLoadReport(w io.Writer, loads []protocol.LoadRow) error {
	for _, l := range loads {
		_, err := fmt.Fprintf(w, "Load at least %g ul and maximum %g ul of %s\n", l.MinLoad, l.MaxLoad, l.Label)
		if err != nil {
			return err
		}
	}
	return nil
}
