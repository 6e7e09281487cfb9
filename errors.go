package cardmaker

import (
	"errors"

	"github.com/egocarib/Spell-Card-Maker/internal/assets"
)

// Sentinel errors for card generation.
var (
	// ErrResourceNotFound indicates an icon or font referenced by the
	// configuration does not exist in any asset location.
	ErrResourceNotFound = assets.ErrAssetNotFound

	// ErrConfigValidation indicates the card configuration is structurally
	// invalid. The wrapped message names the first violation found.
	ErrConfigValidation = errors.New("invalid card configuration")

	// ErrConfigNotFound indicates the requested configuration file does not
	// exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrConfigParse indicates the configuration file could not be parsed.
	ErrConfigParse = errors.New("failed to parse config")

	// ErrUnknownCategory indicates a spell references a school, component,
	// or class with no entry in the configuration. The render fails rather
	// than substituting a default style.
	ErrUnknownCategory = errors.New("unknown category value")

	// ErrTextOverflow indicates text cannot fit its layout box even at the
	// minimum font size.
	ErrTextOverflow = errors.New("text cannot fit its layout box")

	// ErrEmptySpellName indicates a spell record without a name.
	ErrEmptySpellName = errors.New("spell name cannot be empty")

	// ErrEmptySpellSchool indicates a spell record without a school.
	ErrEmptySpellSchool = errors.New("spell school cannot be empty")

	// ErrFontParse indicates a font resource is not a valid TTF/OTF file.
	ErrFontParse = errors.New("failed to parse font")

	// ErrImageDecode indicates an image resource could not be decoded.
	ErrImageDecode = errors.New("failed to decode image")

	// ErrInvalidColor indicates a color value is not a recognized hex form.
	ErrInvalidColor = errors.New("invalid color")
)
