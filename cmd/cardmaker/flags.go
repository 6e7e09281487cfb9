package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	quiet   bool
	verbose bool
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common  commonFlags
	config  string
	output  string
	assets  string
	spell   string
	workers int
}

// makeConfigFlags holds flags for the make-config command.
type makeConfigFlags struct {
	common    commonFlags
	output    string
	overwrite bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-card details")
}

// parseGenerateFlags parses generate command flags and returns positional args.
func parseGenerateFlags(args []string) (*generateFlags, []string, error) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	f := &generateFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.StringVarP(&f.output, "output", "o", "", "output directory for card images")
	fs.StringVarP(&f.assets, "assets", "a", "", "directory searched for font and icon overrides")
	fs.StringVarP(&f.spell, "spell", "s", "", "render only the named spell")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printGenerateUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseMakeConfigFlags parses make-config command flags.
func parseMakeConfigFlags(args []string) (*makeConfigFlags, error) {
	fs := flag.NewFlagSet("make-config", flag.ContinueOnError)
	f := &makeConfigFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "config file path to write")
	fs.BoolVar(&f.overwrite, "overwrite", false, "replace an existing config file")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printMakeConfigUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}
