package cardmaker

import (
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/egocarib/Spell-Card-Maker/internal/assets"
	"github.com/egocarib/Spell-Card-Maker/internal/ruletext"
)

// Composer renders spell cards from a configuration. The configuration is
// read-only and the resource cache is concurrency-safe, so one Composer may
// be shared by parallel workers rendering independent spells.
type Composer struct {
	cfg *Config
	res *Resources
}

// Option configures a Composer.
type Option func(*Composer)

// WithLoader sets the asset loader used to resolve icons and fonts.
func WithLoader(loader assets.Loader) Option {
	return func(c *Composer) {
		c.res = NewResources(loader)
	}
}

// WithResources shares an existing resource cache, letting several composers
// reuse decoded assets within one batch.
func WithResources(res *Resources) Option {
	return func(c *Composer) {
		c.res = res
	}
}

// New creates a Composer, validating the configuration. Without options the
// asset chain searches the working directory for overrides before the
// built-in assets.
func New(cfg *Config, opts ...Option) (*Composer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil configuration", ErrConfigValidation)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Composer{cfg: cfg}
	for _, opt := range opts {
		opt(c)
	}

	if c.res == nil {
		wd, err := os.Getwd()
		if err != nil {
			wd = "."
		}
		chain, err := assets.Default(wd, "")
		if err != nil {
			return nil, err
		}
		c.res = NewResources(chain)
	}

	return c, nil
}

// Compose renders the card image(s) for one spell. Most spells yield a
// single image; rules text that overflows the body box even at the minimum
// font size continues onto additional cards marked with the template's
// continuation marker.
//
// Category lookups fail fast: an unknown school, component, or class is an
// error, never a default style. The caller owns the returned images; the
// Composer keeps no reference to them.
func (c *Composer) Compose(spell Spell) ([]image.Image, error) {
	if err := spell.Validate(); err != nil {
		return nil, err
	}

	school, err := c.cfg.SchoolStyle(spell.School)
	if err != nil {
		return nil, err
	}
	for _, cls := range spell.Classes {
		if !c.cfg.HasClass(cls) {
			return nil, fmt.Errorf("%w: class %q", ErrUnknownCategory, cls)
		}
	}

	mainFont, err := c.res.Font(c.cfg.Template.Fonts.Main)
	if err != nil {
		return nil, err
	}

	rules := ruletext.Prepare(spell.Rules, c.cfg.General.PreventLargeRuleText)
	pages, err := Paginate(mainFont, rules, c.cfg.Template.Rules)
	if err != nil {
		return nil, fmt.Errorf("fitting rules text for %q: %w", spell.Name, err)
	}

	images := make([]image.Image, 0, len(pages))
	for i, page := range pages {
		img, err := c.renderPage(&spell, school, page, i > 0)
		if err != nil {
			return nil, fmt.Errorf("rendering card for %q: %w", spell.Name, err)
		}
		images = append(images, img)
	}
	return images, nil
}

// Config returns the configuration the Composer renders with.
func (c *Composer) Config() *Config {
	return c.cfg
}

func spellHasClass(spell *Spell, class string) bool {
	for _, cls := range spell.Classes {
		if strings.EqualFold(cls, class) {
			return true
		}
	}
	return false
}
