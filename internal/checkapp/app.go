// internal/checkapp/app.go
package checkapp

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"whispr-core/inventory"
	"whispr-core/plate"
	"whispr/internal/checkcli"
	"whispr/internal/tables"
	"whispr/internal/version"
)

// Run validates a source inventory against a plate profile. Exit codes
// match the generator: 0 ok, 1 range violation, 2 usage error.
func Run(argv []string, stdout, stderr io.Writer) int {
	fs := checkcli.NewFlagSet("whispr-check")
	fs.SetOutput(io.Discard)

	opts, err := checkcli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(stdout, "whispr-check version %s\n", version.Version)
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
	if err := inventory.ValidateLoad(entries, prof); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	if !opts.Quiet {
		wells := 0
		for _, e := range entries {
			wells += len(e.Wells)
		}
		_, _ = fmt.Fprintf(stdout, "%d entries across %d wells within %g-%g ul for %s\n",
			len(entries), wells, prof.MinLoad, prof.MaxLoad, prof.Type)
	}
	return 0
}
