package main

import (
	"errors"
	"fmt"
	"os"

	cardmaker "github.com/egocarib/Spell-Card-Maker"
	"github.com/egocarib/Spell-Card-Maker/internal/fileutil"
	"github.com/egocarib/Spell-Card-Maker/internal/yamlutil"
)

// ErrConfigExists indicates make-config would clobber an existing file.
var ErrConfigExists = errors.New("config file already exists")

// runMakeConfig writes the default configuration to a YAML file the user
// can edit. Existing files are preserved unless --overwrite is given.
func runMakeConfig(args []string, env *Environment) error {
	flags, err := parseMakeConfigFlags(args)
	if err != nil {
		return err
	}
	env.applyVerbosity(flags.common.quiet, flags.common.verbose)

	path := flags.output
	if path == "" {
		path = cardmaker.DefaultConfigFileName
	}

	if fileutil.FileExists(path) && !flags.overwrite {
		return fmt.Errorf("%w: %s (pass --overwrite to replace it)", ErrConfigExists, path)
	}

	data, err := yamlutil.Marshal(cardmaker.DefaultConfig())
	if err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}
	// #nosec G306 -- config files are meant to be readable
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", path)
	}
	return nil
}
