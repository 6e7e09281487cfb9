package assets

import (
	"errors"
	"fmt"
	"strings"
)

// Loader supplies asset bytes for a logical path such as
// "resources/images/evocation/icon.png". Implementations may read from disk,
// embedded data, or synthesize content on demand.
type Loader interface {
	// Load returns the asset content.
	// Returns ErrAssetNotFound if the loader does not have the asset and
	// ErrInvalidAssetPath if the logical path is malformed.
	Load(name string) ([]byte, error)
}

// PathResolver is implemented by loaders whose assets exist as real files.
type PathResolver interface {
	// Resolve returns the absolute path of the asset without reading it.
	Resolve(name string) (string, error)
}

// Chain tries each loader in order, falling through to the next only when
// the asset is not found. Validation and I/O errors stop the search.
type Chain struct {
	loaders []Loader
}

// NewChain creates a Chain over the given loaders. Order defines priority.
func NewChain(loaders ...Loader) *Chain {
	return &Chain{loaders: loaders}
}

// Default returns the canonical loader chain: overrides from overrideDir
// (usually the working directory), then the optional bundled asset directory,
// then built-in assets. Either directory may be empty to skip that tier.
func Default(overrideDir, bundledDir string) (*Chain, error) {
	var loaders []Loader
	for _, dir := range []string{overrideDir, bundledDir} {
		if dir == "" {
			continue
		}
		dl, err := NewDirLoader(dir)
		if err != nil {
			return nil, err
		}
		loaders = append(loaders, dl)
	}
	loaders = append(loaders, NewBuiltinLoader())
	return NewChain(loaders...), nil
}

// Load returns the asset from the first loader that has it.
func (c *Chain) Load(name string) ([]byte, error) {
	if err := ValidateAssetPath(name); err != nil {
		return nil, err
	}
	for _, l := range c.loaders {
		content, err := l.Load(name)
		if err == nil {
			return content, nil
		}
		if !errors.Is(err, ErrAssetNotFound) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrAssetNotFound, name)
}

// Resolve returns the absolute path of the first on-disk match. Loaders that
// do not store assets as files (the built-in tier) are skipped.
func (c *Chain) Resolve(name string) (string, error) {
	if err := ValidateAssetPath(name); err != nil {
		return "", err
	}
	for _, l := range c.loaders {
		pr, ok := l.(PathResolver)
		if !ok {
			continue
		}
		path, err := pr.Resolve(name)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, ErrAssetNotFound) {
			return "", err
		}
	}
	return "", fmt.Errorf("%w: %q", ErrAssetNotFound, name)
}

// IsBuiltin reports whether a logical path names a built-in asset.
func IsBuiltin(name string) bool {
	return strings.HasPrefix(name, builtinPrefix)
}

// Compile-time interface check.
var _ Loader = (*Chain)(nil)
