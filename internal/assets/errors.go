package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrAssetNotFound indicates no loader could supply the requested asset.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrInvalidAssetPath indicates the logical path is empty, absolute, or
	// contains traversal sequences.
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// ErrPathTraversal indicates an attempt to read outside a loader's base
	// directory.
	ErrPathTraversal = errors.New("path traversal detected")

	// ErrAssetRead indicates an I/O error occurred while reading an asset.
	ErrAssetRead = errors.New("failed to read asset")

	// ErrInvalidBaseDir indicates the configured base directory is not a
	// valid, readable directory.
	ErrInvalidBaseDir = errors.New("invalid base directory")
)
