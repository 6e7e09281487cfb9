// Package assets resolves the image and font resources referenced by a card
// configuration.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	Loader (interface)
//	    │
//	    ├── DirLoader     - loads from a directory on disk
//	    ├── BuiltinLoader - materializes built-in fonts and icons in memory
//	    └── Chain         - ordered loaders with first-match-wins fallback
//
// The canonical chain tries the user's working directory first, so any
// bundled asset can be overridden by dropping a file with the same relative
// path next to the binary, then an optional bundled asset directory, and
// finally the built-in assets.
//
// Built-in assets live under the reserved "builtin/" prefix. Fonts are served
// from the Go font family shipped with golang.org/x/image, and icons are
// synthesized letter glyphs, so the default configuration renders without a
// single file on disk. Selecting a built-in asset is an explicit
// configuration choice: a missing file never silently degrades to a
// built-in replacement.
//
// # Security
//
// Asset paths are validated to prevent path traversal. DirLoader resolves
// symlinks and verifies resolved paths stay within its base directory.
package assets
