package assets

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeAsset(t *testing.T, dir, rel, content string) string {
	t.Helper()
	full := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return full
}

func TestValidateAssetPath(t *testing.T) {
	valid := []string{
		"resources/images/evocation/icon.png",
		"builtin/fonts/main",
		"icon.png",
	}
	for _, name := range valid {
		if err := ValidateAssetPath(name); err != nil {
			t.Errorf("ValidateAssetPath(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{
		"",
		"/etc/passwd",
		"../outside.png",
		"a/../../b",
		"a\\b",
		"a\x00b",
	}
	for _, name := range invalid {
		if err := ValidateAssetPath(name); !errors.Is(err, ErrInvalidAssetPath) {
			t.Errorf("ValidateAssetPath(%q) = %v, want ErrInvalidAssetPath", name, err)
		}
	}
}

func TestDirLoader(t *testing.T) {
	t.Run("loads existing asset", func(t *testing.T) {
		dir := t.TempDir()
		writeAsset(t, dir, "resources/images/icon.png", "icon-bytes")

		dl, err := NewDirLoader(dir)
		if err != nil {
			t.Fatalf("NewDirLoader() error = %v", err)
		}
		content, err := dl.Load("resources/images/icon.png")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if string(content) != "icon-bytes" {
			t.Errorf("content = %q", content)
		}
	})

	t.Run("missing asset returns ErrAssetNotFound", func(t *testing.T) {
		dl, err := NewDirLoader(t.TempDir())
		if err != nil {
			t.Fatalf("NewDirLoader() error = %v", err)
		}
		if _, err := dl.Load("no/such/file.png"); !errors.Is(err, ErrAssetNotFound) {
			t.Errorf("error = %v, want ErrAssetNotFound", err)
		}
	})

	t.Run("no extension guessing", func(t *testing.T) {
		dir := t.TempDir()
		writeAsset(t, dir, "icon.png", "x")

		dl, _ := NewDirLoader(dir)
		if _, err := dl.Load("icon"); !errors.Is(err, ErrAssetNotFound) {
			t.Errorf("error = %v, want ErrAssetNotFound for partial match", err)
		}
	})

	t.Run("nonexistent base dir rejected", func(t *testing.T) {
		if _, err := NewDirLoader(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, ErrInvalidBaseDir) {
			t.Errorf("error = %v, want ErrInvalidBaseDir", err)
		}
	})

	t.Run("traversal rejected before disk access", func(t *testing.T) {
		dl, _ := NewDirLoader(t.TempDir())
		if _, err := dl.Load("../secret.png"); !errors.Is(err, ErrInvalidAssetPath) {
			t.Errorf("error = %v, want ErrInvalidAssetPath", err)
		}
	})

	t.Run("Resolve returns absolute path", func(t *testing.T) {
		dir := t.TempDir()
		full := writeAsset(t, dir, "fonts/title.ttf", "ttf")

		dl, _ := NewDirLoader(dir)
		got, err := dl.Resolve("fonts/title.ttf")
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		want, _ := filepath.EvalSymlinks(full)
		if got != want && got != full {
			t.Errorf("Resolve() = %q, want %q", got, full)
		}
		if !filepath.IsAbs(got) {
			t.Errorf("Resolve() = %q, want absolute path", got)
		}
	})
}

func TestChainPrefersOverride(t *testing.T) {
	override := t.TempDir()
	bundled := t.TempDir()
	writeAsset(t, override, "resources/icon.png", "override")
	writeAsset(t, bundled, "resources/icon.png", "bundled")

	chain, err := Default(override, bundled)
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	content, err := chain.Load("resources/icon.png")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if string(content) != "override" {
		t.Errorf("content = %q, want override copy", content)
	}

	path, err := chain.Resolve("resources/icon.png")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	resolvedOverride, _ := filepath.EvalSymlinks(override)
	if !isUnder(path, override) && !isUnder(path, resolvedOverride) {
		t.Errorf("Resolve() = %q, want path under override dir %q", path, override)
	}
}

func isUnder(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	return err == nil && !filepath.IsAbs(rel) && rel != ".." && !bytes.HasPrefix([]byte(rel), []byte(".."+string(filepath.Separator)))
}

func TestChainFallsBackToBundled(t *testing.T) {
	override := t.TempDir()
	bundled := t.TempDir()
	writeAsset(t, bundled, "resources/icon.png", "bundled")

	chain, err := Default(override, bundled)
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	content, err := chain.Load("resources/icon.png")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if string(content) != "bundled" {
		t.Errorf("content = %q, want bundled copy", content)
	}
}

func TestChainMissingEverywhere(t *testing.T) {
	chain, err := Default(t.TempDir(), "")
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if _, err := chain.Load("resources/absent.png"); !errors.Is(err, ErrAssetNotFound) {
		t.Errorf("error = %v, want ErrAssetNotFound", err)
	}
}

func TestBuiltinLoader(t *testing.T) {
	bl := NewBuiltinLoader()

	t.Run("fonts available", func(t *testing.T) {
		for _, name := range []string{
			"builtin/fonts/title",
			"builtin/fonts/main",
			"builtin/fonts/main-bold",
			"builtin/fonts/main-italic",
		} {
			content, err := bl.Load(name)
			if err != nil {
				t.Fatalf("Load(%q) error = %v", name, err)
			}
			if len(content) == 0 {
				t.Errorf("Load(%q) returned empty font data", name)
			}
		}
	})

	t.Run("school icon is decodable png", func(t *testing.T) {
		content, err := bl.Load("builtin/icons/school/evocation.png")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		img, err := png.Decode(bytes.NewReader(content))
		if err != nil {
			t.Fatalf("png.Decode() error = %v", err)
		}
		if img.Bounds().Dx() != schoolIconSize {
			t.Errorf("icon width = %d, want %d", img.Bounds().Dx(), schoolIconSize)
		}
	})

	t.Run("indicator icons render", func(t *testing.T) {
		for _, name := range []string{
			"builtin/icons/indicator/concentration.png",
			"builtin/icons/indicator/verbal.png",
			"builtin/icons/indicator/somatic.png",
			"builtin/icons/indicator/material.png",
			"builtin/icons/indicator/ritual.png",
			"builtin/icons/cast-strip.png",
		} {
			if _, err := bl.Load(name); err != nil {
				t.Errorf("Load(%q) error = %v", name, err)
			}
		}
	})

	t.Run("cached render is stable", func(t *testing.T) {
		a, err := bl.Load("builtin/icons/school/illusion.png")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		b, err := bl.Load("builtin/icons/school/illusion.png")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if !bytes.Equal(a, b) {
			t.Error("repeated loads returned different bytes")
		}
	})

	t.Run("non-builtin path not found", func(t *testing.T) {
		if _, err := bl.Load("resources/images/icon.png"); !errors.Is(err, ErrAssetNotFound) {
			t.Errorf("error = %v, want ErrAssetNotFound", err)
		}
	})

	t.Run("unknown builtin not found", func(t *testing.T) {
		if _, err := bl.Load("builtin/sounds/ding.wav"); !errors.Is(err, ErrAssetNotFound) {
			t.Errorf("error = %v, want ErrAssetNotFound", err)
		}
	})
}
