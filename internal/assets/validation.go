package assets

import (
	"fmt"
	"path"
	"strings"
)

// ValidateAssetPath checks that a logical asset path is safe to resolve.
// Logical paths are slash-separated and relative; absolute paths, traversal
// sequences, backslashes, and null bytes are rejected.
func ValidateAssetPath(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidAssetPath)
	}
	if strings.ContainsAny(name, "\\\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetPath, name)
	}
	if path.IsAbs(name) {
		return fmt.Errorf("%w: %q is absolute", ErrInvalidAssetPath, name)
	}
	cleaned := path.Clean(name)
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return fmt.Errorf("%w: %q escapes the asset root", ErrInvalidAssetPath, name)
	}
	return nil
}
