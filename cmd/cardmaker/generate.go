package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/disintegration/imaging"

	cardmaker "github.com/egocarib/Spell-Card-Maker"
	"github.com/egocarib/Spell-Card-Maker/internal/assets"
	"github.com/egocarib/Spell-Card-Maker/internal/dataset"
	"github.com/egocarib/Spell-Card-Maker/internal/fileutil"
	"github.com/egocarib/Spell-Card-Maker/internal/progress"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input dataset specified")
	ErrWriteImage         = errors.New("failed to write card image")
	ErrCardsFailed        = errors.New("some cards failed to generate")
	ErrSpellNotInDataset  = errors.New("spell not found in dataset")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// maxAutoWorkers caps the auto-sized worker count; rendering is CPU-bound
// and more workers than cores just thrash.
const maxAutoWorkers = 8

// cardResult holds the outcome of rendering one spell.
type cardResult struct {
	Spell    string
	Paths    []string
	Err      error
	Duration time.Duration
}

// runGenerate orchestrates the card generation batch.
func runGenerate(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseGenerateFlags(args)
	if err != nil {
		return err
	}
	env.applyVerbosity(flags.common.quiet, flags.common.verbose)

	if err := validateWorkers(flags.workers); err != nil {
		return err
	}
	if len(positional) == 0 {
		return fmt.Errorf("%w: pass a CSV or YAML spell dataset", ErrNoInput)
	}
	inputPath := positional[0]

	cfg, err := resolveConfig(flags.config, env)
	if err != nil {
		return err
	}

	spells, err := dataset.LoadFile(inputPath)
	if err != nil {
		return fmt.Errorf("loading %s: %w", inputPath, err)
	}
	if flags.spell != "" {
		spells, err = selectSpell(spells, flags.spell)
		if err != nil {
			return err
		}
	}
	env.Logger.Debug().Int("spells", len(spells)).Str("input", inputPath).Msg("dataset loaded")

	outputDir := resolveOutputDir(flags.output, cfg)
	if err := os.MkdirAll(outputDir, dirPermissions); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	chain, err := buildLoader(flags.assets)
	if err != nil {
		return err
	}
	composer, err := cardmaker.New(cfg, cardmaker.WithLoader(chain))
	if err != nil {
		return err
	}

	workers := resolveWorkers(flags.workers)
	if workers > len(spells) {
		workers = len(spells)
	}
	env.Logger.Debug().Int("workers", workers).Str("output", outputDir).Msg("starting batch")

	// The bar and the per-card log lines fight over the terminal, so the
	// bar only runs in the default output mode.
	var bar *progress.Bar
	if !flags.common.quiet && !flags.common.verbose {
		bar = progress.New(env.Stdout, len(spells))
	} else {
		bar = progress.New(nil, 0)
	}

	results := generateBatch(ctx, composer, spells, outputDir, workers, bar)
	bar.Finish()

	failed := reportResults(results, flags.common, env)
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrCardsFailed, failed, len(spells))
	}
	return ctx.Err()
}

// generateBatch renders spells concurrently over a fixed worker set. The
// composer and its resource cache are shared; each worker only allocates
// its own canvases.
func generateBatch(ctx context.Context, composer *cardmaker.Composer, spells []cardmaker.Spell, outputDir string, workers int, bar *progress.Bar) []cardResult {
	if len(spells) == 0 {
		return nil
	}

	results := make([]cardResult, len(spells))
	jobs := make(chan int, len(spells))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = cardResult{Spell: spells[idx].Name, Err: ctx.Err()}
					bar.Fail()
					continue
				}
				results[idx] = generateCard(composer, spells[idx], outputDir)
				if results[idx].Err != nil {
					bar.Fail()
				} else {
					bar.Advance()
				}
			}
		}()
	}

	for i := range spells {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// generateCard renders one spell and writes its card image(s).
func generateCard(composer *cardmaker.Composer, spell cardmaker.Spell, outputDir string) cardResult {
	start := time.Now()
	result := cardResult{Spell: spell.Name}

	images, err := composer.Compose(spell)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	base := fileutil.SanitizeFileName(spell.Name)
	if base == "" {
		base = "spell"
	}
	for i, img := range images {
		name := base + ".png"
		if i > 0 {
			name = fmt.Sprintf("%s-%d.png", base, i+1)
		}
		path := filepath.Join(outputDir, name)
		if err := imaging.Save(img, path); err != nil {
			result.Err = fmt.Errorf("%w: %s: %v", ErrWriteImage, path, err)
			result.Duration = time.Since(start)
			return result
		}
		result.Paths = append(result.Paths, path)
	}

	result.Duration = time.Since(start)
	return result
}

// resolveConfig loads the flagged config file, or the default config file
// from the working directory when present, or the built-in defaults.
func resolveConfig(path string, env *Environment) (*cardmaker.Config, error) {
	if path != "" {
		return cardmaker.LoadConfigFile(path)
	}
	if fileutil.FileExists(cardmaker.DefaultConfigFileName) {
		env.Logger.Debug().Str("config", cardmaker.DefaultConfigFileName).Msg("using config from working directory")
		return cardmaker.LoadConfigFile(cardmaker.DefaultConfigFileName)
	}
	return cardmaker.DefaultConfig(), nil
}

// buildLoader creates the asset chain: the override directory (or the
// working directory) first, then built-in assets.
func buildLoader(assetDir string) (*assets.Chain, error) {
	if assetDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			wd = "."
		}
		assetDir = wd
	}
	return assets.Default(assetDir, "")
}

// resolveOutputDir determines the output directory.
// Priority: explicit flag > config > "output".
func resolveOutputDir(flagOutput string, cfg *cardmaker.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	if cfg.General.OutputDirectory != "" {
		return cfg.General.OutputDirectory
	}
	return "output"
}

// selectSpell filters the dataset to the named spell, preferring an exact
// match before a case-insensitive one.
func selectSpell(spells []cardmaker.Spell, name string) ([]cardmaker.Spell, error) {
	for _, s := range spells {
		if s.Name == name {
			return []cardmaker.Spell{s}, nil
		}
	}
	for _, s := range spells {
		if strings.EqualFold(s.Name, name) {
			return []cardmaker.Spell{s}, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrSpellNotInDataset, name)
}

func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkerCount, n)
	}
	return nil
}

// resolveWorkers determines the worker count.
// Priority: explicit flag > GOMAXPROCS-based calculation.
func resolveWorkers(flagWorkers int) int {
	if flagWorkers > 0 {
		return flagWorkers
	}

	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	if n > maxAutoWorkers {
		return maxAutoWorkers
	}
	return n
}

// reportResults prints per-card outcomes and returns the failure count.
func reportResults(results []cardResult, common commonFlags, env *Environment) int {
	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.Spell, r.Err)
			continue
		}
		if common.verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.Spell, strings.Join(r.Paths, ", "), r.Duration.Round(time.Millisecond))
		}
	}
	if !common.quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "%d succeeded, %d failed\n", len(results)-failed, failed)
	}
	return failed
}
