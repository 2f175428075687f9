// internal/checkcli/options.go
package checkcli

import (
	"errors"
	"flag"
	"fmt"

	"whispr/internal/cli"
	"whispr/internal/version"
)

// Options holds the flags for the standalone inventory range check.
type Options struct {
	SourceFile string
	PlateType  string
	Quiet      bool
	Version    bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: source plate volume range check

Verifies that every declared source volume can be loaded on the chosen
plate type. Run it before generating a picklist with whispr.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.SourceFile, "source", "", "source plate CSV (Label,Well,Concentration,Volume) [*]")
	fs.StringVar(&opt.PlateType, "plate-type", cli.DefaultPlateType, "source plate calibration type ["+cli.DefaultPlateType+"]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "print nothing on success [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	if opt.SourceFile == "" {
		return opt, errors.New("--source is required")
	}
	return opt, nil
}
