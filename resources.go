package cardmaker

import (
	"bytes"
	"fmt"
	"image"
	"sync"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font/opentype"

	"github.com/egocarib/Spell-Card-Maker/internal/assets"
)

// Resources decodes and caches the images and fonts referenced by a
// configuration. A single Resources value is intended to live for one batch
// so repeated spells reuse decoded icons and parsed fonts.
//
// Resources is safe for concurrent use. The mutex only guards cache map
// access; loading and decoding happen outside the lock, so a slow decode
// never blocks rendering that hits the cache. Two goroutines racing on the
// same cold asset may decode it twice; the second insert wins and both
// results are valid.
type Resources struct {
	loader assets.Loader

	mu     sync.Mutex
	images map[string]image.Image
	fonts  map[string]*opentype.Font
}

// NewResources creates a resource cache over the given loader.
func NewResources(loader assets.Loader) *Resources {
	return &Resources{
		loader: loader,
		images: make(map[string]image.Image),
		fonts:  make(map[string]*opentype.Font),
	}
}

// Image returns the decoded image for a logical asset path.
func (r *Resources) Image(name string) (image.Image, error) {
	r.mu.Lock()
	img, ok := r.images[name]
	r.mu.Unlock()
	if ok {
		return img, nil
	}

	content, err := r.loader.Load(name)
	if err != nil {
		return nil, err
	}
	img, err = imaging.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrImageDecode, name, err)
	}

	r.mu.Lock()
	r.images[name] = img
	r.mu.Unlock()
	return img, nil
}

// Font returns the parsed font for a logical asset path.
func (r *Resources) Font(name string) (*opentype.Font, error) {
	r.mu.Lock()
	fnt, ok := r.fonts[name]
	r.mu.Unlock()
	if ok {
		return fnt, nil
	}

	content, err := r.loader.Load(name)
	if err != nil {
		return nil, err
	}
	fnt, err = opentype.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrFontParse, name, err)
	}

	r.mu.Lock()
	r.fonts[name] = fnt
	r.mu.Unlock()
	return fnt, nil
}
