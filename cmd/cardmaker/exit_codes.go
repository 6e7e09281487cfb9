package main

import (
	"errors"
	"os"

	cardmaker "github.com/egocarib/Spell-Card-Maker"
	"github.com/egocarib/Spell-Card-Maker/internal/assets"
	"github.com/egocarib/Spell-Card-Maker/internal/dataset"
)

// Exit codes for the cardmaker CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All cards generated
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or dataset
	ExitIO      = 3 // File not found, permission denied
	ExitRender  = 4 // Card rendering errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Rendering errors (exit 4)
	if errors.Is(err, cardmaker.ErrTextOverflow) ||
		errors.Is(err, cardmaker.ErrFontParse) ||
		errors.Is(err, cardmaker.ErrImageDecode) ||
		errors.Is(err, ErrCardsFailed) {
		return ExitRender
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, assets.ErrAssetRead) ||
		errors.Is(err, ErrWriteImage) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/dataset errors (exit 2)
	if errors.Is(err, cardmaker.ErrConfigNotFound) ||
		errors.Is(err, cardmaker.ErrConfigParse) ||
		errors.Is(err, cardmaker.ErrConfigValidation) ||
		errors.Is(err, cardmaker.ErrUnknownCategory) ||
		errors.Is(err, cardmaker.ErrEmptySpellName) ||
		errors.Is(err, cardmaker.ErrEmptySpellSchool) ||
		errors.Is(err, cardmaker.ErrInvalidColor) ||
		errors.Is(err, cardmaker.ErrResourceNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetPath) ||
		errors.Is(err, assets.ErrPathTraversal) ||
		errors.Is(err, assets.ErrInvalidBaseDir) ||
		errors.Is(err, dataset.ErrEmptyDataset) ||
		errors.Is(err, dataset.ErrMissingColumn) ||
		errors.Is(err, dataset.ErrBadRecord) ||
		errors.Is(err, dataset.ErrUnsupportedFormat) ||
		errors.Is(err, ErrSpellNotInDataset) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrConfigExists) {
		return ExitUsage
	}

	return ExitGeneral
}
