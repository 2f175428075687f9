// internal/app/app.go
package app

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"whispr-core/inventory"
	"whispr-core/mix"
	"whispr-core/plate"
	"whispr-core/protocol"
	"whispr/internal/cli"
	"whispr/internal/output"
	"whispr/internal/tables"
	"whispr/internal/version"
)

// Run parses argv, builds the protocol and writes the picklist. It
// returns a process exit code: 0 ok, 1 validation/computation failure,
// 2 usage error, 3 write failure.
func Run(argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("whispr")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(stdout, "whispr version %s\n", version.Version)
		return 0
	}

	prof, err := plate.ProfileFor(opts.PlateType)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	entries, err := tables.ReadSource(opts.SourceFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	recipe, err := tables.ReadRecipe(opts.RecipeFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	grid, err := tables.ReadLayout(opts.LayoutFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	if err := inventory.ValidateLoad(entries, prof); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	ix := inventory.NewIndex(entries)
	table, err := mix.BuildTable(recipe, ix)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	proto, err := protocol.Build(table, grid, ix, protocol.Params{
		Plate:           prof,
		SourcePlateName: opts.SourcePlateName,
		DestPlateName:   opts.DestPlateName,
	})
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	if !opts.Quiet {
		for _, rxn := range proto.Skipped {
			_, _ = fmt.Fprintf(stderr, "WARN: layout reaction %s is not in the recipe; skipped\n", rxn)
		}
	}

	if err := writePicklist(stdout, opts, proto.Transfers); err != nil {
		if output.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}

	if !opts.Quiet {
		if err := output.WriteLoadReport(stderr, proto.Loads); err != nil && !output.IsBrokenPipe(err) {
			return 3
		}
	}
	return 0
}

func writePicklist(stdout io.Writer, opts cli.Options, transfers []protocol.Transfer) error {
	if opts.Output == "" || opts.Output == "-" {
		w := bufio.NewWriter(stdout)
		if err := output.WritePicklist(w, transfers, opts.Header); err != nil {
			return err
		}
		return w.Flush()
	}
	fh, err := os.Create(opts.Output)
	if err != nil {
		return err
	}
	if err := output.WritePicklist(fh, transfers, opts.Header); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}
