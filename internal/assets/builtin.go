package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"path"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Reserved prefix for assets served from memory instead of disk.
const builtinPrefix = "builtin/"

const (
	builtinFontDir = builtinPrefix + "fonts/"
	builtinIconDir = builtinPrefix + "icons/"
)

// Built-in icon dimensions, sized against the default 822x1122 template.
const (
	schoolIconSize    = 96
	indicatorIconSize = 56
	castStripWidth    = 600
	castStripHeight   = 84
)

// builtinFonts maps logical font names to the Go font family TTF data.
var builtinFonts = map[string][]byte{
	builtinFontDir + "title":       gosmallcaps.TTF,
	builtinFontDir + "main":        goregular.TTF,
	builtinFontDir + "main-bold":   gobold.TTF,
	builtinFontDir + "main-italic": goitalic.TTF,
}

// BuiltinLoader serves the bundled default assets: fonts from the embedded
// Go font family and icons synthesized as letter glyphs. Synthesized PNGs
// are cached after first render.
type BuiltinLoader struct {
	mu    sync.Mutex
	cache map[string][]byte
}

// NewBuiltinLoader creates a BuiltinLoader.
func NewBuiltinLoader() *BuiltinLoader {
	return &BuiltinLoader{cache: make(map[string][]byte)}
}

// Load returns built-in asset content. Logical paths outside the "builtin/"
// prefix are reported as not found so chained loaders keep searching.
func (b *BuiltinLoader) Load(name string) ([]byte, error) {
	if err := ValidateAssetPath(name); err != nil {
		return nil, err
	}
	if !IsBuiltin(name) {
		return nil, fmt.Errorf("%w: %q", ErrAssetNotFound, name)
	}

	if ttf, ok := builtinFonts[name]; ok {
		return ttf, nil
	}

	if strings.HasPrefix(name, builtinIconDir) {
		return b.loadIcon(name)
	}

	return nil, fmt.Errorf("%w: %q", ErrAssetNotFound, name)
}

func (b *BuiltinLoader) loadIcon(name string) ([]byte, error) {
	b.mu.Lock()
	cached, ok := b.cache[name]
	b.mu.Unlock()
	if ok {
		return cached, nil
	}

	img, err := renderBuiltinIcon(strings.TrimPrefix(name, builtinIconDir))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: encoding builtin icon: %v", ErrAssetRead, err)
	}
	content := buf.Bytes()

	b.mu.Lock()
	b.cache[name] = content
	b.mu.Unlock()

	return content, nil
}

// renderBuiltinIcon synthesizes an icon for the given sub-path, e.g.
// "school/evocation.png" or "indicator/ritual.png".
func renderBuiltinIcon(sub string) (image.Image, error) {
	switch {
	case sub == "cast-strip.png":
		return renderStrip(castStripWidth, castStripHeight), nil

	case strings.HasPrefix(sub, "school/"):
		letter, err := iconLetter(sub)
		if err != nil {
			return nil, err
		}
		// White glyph on transparency; the compositor draws the dark disc.
		return renderGlyph(letter, schoolIconSize, color.NRGBA{255, 255, 255, 255}, nil)

	case strings.HasPrefix(sub, "indicator/"):
		letter, err := iconLetter(sub)
		if err != nil {
			return nil, err
		}
		fg := color.NRGBA{40, 40, 40, 255}
		disc := color.NRGBA{225, 225, 225, 255}
		return renderGlyph(letter, indicatorIconSize, fg, &disc)

	default:
		return nil, fmt.Errorf("%w: %q", ErrAssetNotFound, builtinIconDir+sub)
	}
}

// iconLetter derives the glyph letter from the final path element:
// "school/evocation.png" -> 'E'.
func iconLetter(sub string) (rune, error) {
	base := strings.TrimSuffix(path.Base(sub), path.Ext(sub))
	for _, r := range base {
		return unicode.ToUpper(r), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidAssetPath, sub)
}

var (
	glyphFontOnce sync.Once
	glyphFont     *opentype.Font
	glyphFontErr  error
)

// renderGlyph draws a single centered capital letter on a square canvas,
// optionally over a filled disc.
func renderGlyph(letter rune, size int, fg color.NRGBA, disc *color.NRGBA) (image.Image, error) {
	glyphFontOnce.Do(func() {
		glyphFont, glyphFontErr = opentype.Parse(gobold.TTF)
	})
	if glyphFontErr != nil {
		return nil, fmt.Errorf("%w: parsing builtin glyph font: %v", ErrAssetRead, glyphFontErr)
	}

	face, err := opentype.NewFace(glyphFont, &opentype.FaceOptions{
		Size:    float64(size) * 0.62,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: creating glyph face: %v", ErrAssetRead, err)
	}
	defer face.Close()

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	if disc != nil {
		fillDisc(img, *disc)
	}

	text := string(letter)
	bounds, _ := font.BoundString(face, text)
	glyphW := (bounds.Max.X - bounds.Min.X).Ceil()
	glyphH := (bounds.Max.Y - bounds.Min.Y).Ceil()
	originX := (size-glyphW)/2 - bounds.Min.X.Floor()
	originY := (size-glyphH)/2 - bounds.Min.Y.Floor()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.P(originX, originY),
	}
	d.DrawString(text)

	return img, nil
}

// fillDisc fills the largest centered circle that fits the square image.
func fillDisc(img *image.NRGBA, c color.NRGBA) {
	size := img.Bounds().Dx()
	r := float64(size) / 2
	cx, cy := r-0.5, r-0.5
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			if dx*dx+dy*dy <= r*r {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}

// renderStrip draws the translucent backing bar behind the component
// indicator icons.
func renderStrip(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	fill := color.NRGBA{210, 205, 195, 140}
	draw.Draw(img, img.Bounds(), image.NewUniform(fill), image.Point{}, draw.Src)
	return img
}

// Compile-time interface check.
var _ Loader = (*BuiltinLoader)(nil)
