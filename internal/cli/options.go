// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"whispr/internal/version"
)

// Defaults for plate naming; the instrument software matches on these
// unless the run says otherwise.
const (
	DefaultPlateType  = "384PP_AQ_BP"
	DefaultSourceName = "Source[1]"
	DefaultDestName   = "Destination[1]"
)

// Options holds all CLI flags for the protocol generator.
type Options struct {
	SourceFile string
	RecipeFile string
	LayoutFile string

	PlateType       string
	SourcePlateName string
	DestPlateName   string

	Output string // picklist path; "-" or empty writes to stdout
	Header bool   // true unless --no-header
	Quiet  bool   // suppress load report and warnings

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: acoustic liquid-handler picklist generator

Turns a desired-concentration recipe, a source-plate inventory and a
destination plate layout into an Echo-ready transfer picklist plus a
per-reagent load report.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.SourceFile, "source", "", "source plate CSV (Label,Well,Concentration,Volume) [*]")
	fs.StringVar(&opt.RecipeFile, "recipe", "", "reaction recipe CSV (reactions x target concentrations) [*]")
	fs.StringVar(&opt.LayoutFile, "layout", "", "destination plate layout CSV [*]")

	fs.StringVar(&opt.PlateType, "plate-type", DefaultPlateType, "source plate calibration type ["+DefaultPlateType+"]")
	fs.StringVar(&opt.SourcePlateName, "source-plate-name", DefaultSourceName, "source plate name in the picklist ["+DefaultSourceName+"]")
	fs.StringVar(&opt.DestPlateName, "dest-plate-name", DefaultDestName, "destination plate name in the picklist ["+DefaultDestName+"]")

	fs.StringVar(&opt.Output, "output", "-", "picklist output path ('-' = stdout) [-]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress picklist header row [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress load report and warnings [false]")

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
	opt.Header = !noHeader

	switch {
	case opt.SourceFile == "":
		return opt, errors.New("--source is required")
	case opt.RecipeFile == "":
		return opt, errors.New("--recipe is required")
	case opt.LayoutFile == "":
		return opt, errors.New("--layout is required")
	}
	if opt.PlateType == "" {
		return opt, errors.New("--plate-type must not be empty")
	}
	return opt, nil
}
