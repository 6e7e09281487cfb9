package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DirLoader loads assets from a directory on the filesystem.
type DirLoader struct {
	baseDir string
}

// NewDirLoader creates a DirLoader rooted at baseDir.
// Returns ErrInvalidBaseDir if the path is not a valid, readable directory.
func NewDirLoader(baseDir string) (*DirLoader, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBaseDir)
	}

	absDir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseDir, err)
	}

	// Resolve symlinks in the base so containment checks compare real paths.
	if realDir, err := filepath.EvalSymlinks(absDir); err == nil {
		absDir = realDir
	}

	info, err := os.Stat(absDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBaseDir, absDir)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBaseDir, absDir)
	}

	return &DirLoader{baseDir: absDir}, nil
}

// Resolve returns the absolute path of the asset if it exists as a regular
// file under the base directory. Exact relative path match only — no
// extension guessing.
func (d *DirLoader) Resolve(name string) (string, error) {
	if err := ValidateAssetPath(name); err != nil {
		return "", err
	}

	filePath := filepath.Join(d.baseDir, filepath.FromSlash(name))
	if err := d.verifyContainment(filePath); err != nil {
		return "", err
	}

	info, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %q", ErrAssetNotFound, name)
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %q is a directory", ErrAssetNotFound, name)
	}

	return filePath, nil
}

// Load reads the asset content from disk.
func (d *DirLoader) Load(name string) ([]byte, error) {
	filePath, err := d.Resolve(name)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(filePath) // #nosec G304 -- path validated by Resolve
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return content, nil
}

// BaseDir returns the absolute base directory of the loader.
func (d *DirLoader) BaseDir() string {
	return d.baseDir
}

// verifyContainment ensures the resolved file path stays within baseDir even
// in the presence of symlinks.
func (d *DirLoader) verifyContainment(filePath string) error {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrPathTraversal)
	}

	if realPath, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = realPath
	}
	// If symlink resolution failed the file cannot be opened anyway; the
	// prefix check below still runs against the lexical path.

	if !strings.HasPrefix(absPath, d.baseDir+string(filepath.Separator)) {
		return fmt.Errorf("%w: path escapes base directory", ErrPathTraversal)
	}
	return nil
}

// Compile-time interface checks.
var (
	_ Loader       = (*DirLoader)(nil)
	_ PathResolver = (*DirLoader)(nil)
)
