package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cardmaker <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate      Generate spell card images from a dataset")
	fmt.Fprintln(w, "  make-config   Write the default configuration for editing")
	fmt.Fprintln(w, "  version       Show version information")
	fmt.Fprintln(w, "  help          Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'cardmaker help <command>' for details on a specific command.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cardmaker generate <dataset> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate spell card images from a CSV or YAML dataset.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  dataset    Spell dataset file (.csv, .yaml, or .yml)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <path>    Config file (default: card-config.yaml if present)")
	fmt.Fprintln(w, "  -o, --output <dir>     Output directory for card images")
	fmt.Fprintln(w, "  -a, --assets <dir>     Directory searched for font and icon overrides")
	fmt.Fprintln(w, "  -s, --spell <name>     Render only the named spell")
	fmt.Fprintln(w, "  -w, --workers <n>      Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -q, --quiet            Only show errors")
	fmt.Fprintln(w, "  -v, --verbose          Show per-card details")
}

// printMakeConfigUsage prints usage for the make-config command.
func printMakeConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cardmaker make-config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write the default configuration to a YAML file for editing.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>    Config file path (default: card-config.yaml)")
	fmt.Fprintln(w, "      --overwrite        Replace an existing config file")
	fmt.Fprintln(w, "  -q, --quiet            Only show errors")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "generate":
		printGenerateUsage(env.Stdout)
	case "make-config":
		printMakeConfigUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: cardmaker version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: cardmaker help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
