package cardmaker

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/egocarib/Spell-Card-Maker/internal/yamlutil"
)

// DefaultConfigFileName is the filename used when materializing a default
// configuration for user customization.
const DefaultConfigFileName = "card-config.yaml"

// Config holds all configuration for spell card generation. It is treated as
// immutable once loaded: the renderer only ever reads it, so a single Config
// is safely shared across concurrent renders.
type Config struct {
	General   GeneralConfig            `yaml:"general"`
	Template  TemplateConfig           `yaml:"template"`
	School    map[string]CategoryStyle `yaml:"school" validate:"required,min=1,dive"`
	Component map[string]CategoryStyle `yaml:"component" validate:"required,min=1,dive"`
}

// GeneralConfig holds settings that are not tied to template geometry.
type GeneralConfig struct {
	// Classes defines the sidebar order and the complete highlight set. A
	// spell referencing a class outside this list fails to render.
	Classes []string `yaml:"classes" validate:"required,min=1,unique"`

	// PreventLargeRuleText pads short rules text with blank lines so the
	// fitted font size does not balloon on one-sentence spells.
	PreventLargeRuleText bool `yaml:"prevent_large_rule_text"`

	// OutputDirectory is the default directory for generated card images.
	OutputDirectory string `yaml:"output_directory"`
}

// CategoryStyle is one entry in a category table (school, component): the
// card colors and icon used when a spell references that category value.
type CategoryStyle struct {
	BgColor string `yaml:"bg_color" validate:"required,hexcolor"`
	FgColor string `yaml:"fg_color" validate:"required,hexcolor"`
	Icon    string `yaml:"img" validate:"required"`
}

// Box is a fixed rectangle of the card template.
type Box struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w" validate:"gt=0"`
	H int `yaml:"h" validate:"gt=0"`
}

// TextBox is a layout box that holds fitted text, carrying the font size
// bounds the Text Fitter shrinks within.
type TextBox struct {
	Box     `yaml:",inline"`
	MaxSize float64 `yaml:"max_size" validate:"gt=0"`
	MinSize float64 `yaml:"min_size" validate:"gt=0"`
}

// LabeledBox pairs a static label box with its data-driven value box.
type LabeledBox struct {
	Label TextBox `yaml:"label"`
	Value TextBox `yaml:"value"`
}

// Size is the pixel size of the card canvas.
type Size struct {
	W int `yaml:"w" validate:"gt=0"`
	H int `yaml:"h" validate:"gt=0"`
}

// Point is a fixed anchor position on the card template.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// TemplateConfig holds the card template geometry, colors, and fonts.
type TemplateConfig struct {
	Canvas    Size            `yaml:"canvas"`
	Title     TextBox         `yaml:"title"`
	Rules     TextBox         `yaml:"rules"`
	Colors    TemplateColors  `yaml:"colors"`
	Fonts     FontConfig      `yaml:"fonts"`
	Bars      BarsConfig      `yaml:"bars"`
	Icons     IconsConfig     `yaml:"icons"`
	ClassList ClassListConfig `yaml:"class_list"`
	Metadata  MetadataConfig  `yaml:"metadata"`

	// ContinuedMarker is appended to the title on continuation pages when a
	// spell's rules text spans multiple cards.
	ContinuedMarker string `yaml:"continued_marker"`
}

// TemplateColors holds the fixed (non-category) template colors.
type TemplateColors struct {
	Black string `yaml:"black" validate:"required,hexcolor"`
	Grey  string `yaml:"grey" validate:"required,hexcolor"`
}

// FontConfig names the font resources used by the template.
type FontConfig struct {
	Title      string `yaml:"title" validate:"required"`
	Main       string `yaml:"main" validate:"required"`
	MainBold   string `yaml:"main_bold" validate:"required"`
	MainItalic string `yaml:"main_italic" validate:"required"`
}

// BarsConfig positions the school-colored horizontal bars.
type BarsConfig struct {
	Top Box `yaml:"top"`
	Mid Box `yaml:"mid"`
}

// SchoolIconConfig positions the school icon disc at the card's upper left.
type SchoolIconConfig struct {
	CX     int `yaml:"cx"`
	CY     int `yaml:"cy"`
	Radius int `yaml:"radius" validate:"gt=0"`
}

// CastStripConfig positions the backing strip behind the component icons.
type CastStripConfig struct {
	Point `yaml:",inline"`
	Icon  string `yaml:"img" validate:"required"`
}

// IconsConfig holds icon placement for the template. Indicator positions are
// keyed by component name and must have a matching entry in the component
// category table.
type IconsConfig struct {
	School     SchoolIconConfig `yaml:"school"`
	CastStrip  CastStripConfig  `yaml:"cast_strip"`
	Indicators map[string]Point `yaml:"indicators" validate:"required,min=1"`
}

// ClassListConfig positions the class sidebar at the card's upper right.
type ClassListConfig struct {
	Box     `yaml:",inline"`
	MaxSize float64      `yaml:"max_size" validate:"gt=0"`
	MinSize float64      `yaml:"min_size" validate:"gt=0"`
	Marker  MarkerConfig `yaml:"marker"`
}

// MarkerConfig sizes the highlight bar drawn beside active class names.
type MarkerConfig struct {
	W       int     `yaml:"w" validate:"gt=0"`
	HPct    float64 `yaml:"h_pct" validate:"gt=0,lte=1"`
	YPadPct float64 `yaml:"y_pad_pct" validate:"gte=0,lt=1"`
}

// MetadataConfig positions the level, range, casting time, duration, and
// material cost text.
type MetadataConfig struct {
	Level        TextBox    `yaml:"level"`
	Range        LabeledBox `yaml:"range"`
	CastTime     LabeledBox `yaml:"cast_time"`
	Duration     LabeledBox `yaml:"duration"`
	MaterialCost TextBox    `yaml:"material_cost"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ParseConfig parses and validates configuration data. Unknown fields are
// rejected so typos surface at load time instead of rendering oddly.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfigFile reads and parses a configuration file.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return ParseConfig(data)
}

// Validate checks the configuration structure, reporting the first violation
// found.
func (c *Config) Validate() error {
	if err := c.validateClasses(); err != nil {
		return err
	}
	if len(c.School) == 0 {
		return fmt.Errorf("%w: school table is empty", ErrConfigValidation)
	}
	if len(c.Component) == 0 {
		return fmt.Errorf("%w: component table is empty", ErrConfigValidation)
	}

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			return fmt.Errorf("%w: field %s fails %q", ErrConfigValidation, first.Namespace(), first.Tag())
		}
		return fmt.Errorf("%w: %v", ErrConfigValidation, err)
	}

	for name := range c.Template.Icons.Indicators {
		if _, ok := c.Component[name]; !ok {
			return fmt.Errorf("%w: indicator %q has no component table entry", ErrConfigValidation, name)
		}
	}

	return c.validateTextBounds()
}

func (c *Config) validateClasses() error {
	if len(c.General.Classes) == 0 {
		return fmt.Errorf("%w: general.classes is empty", ErrConfigValidation)
	}
	seen := make(map[string]struct{}, len(c.General.Classes))
	for _, cls := range c.General.Classes {
		if cls == "" {
			return fmt.Errorf("%w: general.classes contains an empty name", ErrConfigValidation)
		}
		key := strings.ToLower(cls)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: duplicate class %q", ErrConfigValidation, cls)
		}
		seen[key] = struct{}{}
	}
	return nil
}

func (c *Config) validateTextBounds() error {
	boxes := []struct {
		name     string
		min, max float64
	}{
		{"template.title", c.Template.Title.MinSize, c.Template.Title.MaxSize},
		{"template.rules", c.Template.Rules.MinSize, c.Template.Rules.MaxSize},
		{"template.class_list", c.Template.ClassList.MinSize, c.Template.ClassList.MaxSize},
		{"template.metadata.level", c.Template.Metadata.Level.MinSize, c.Template.Metadata.Level.MaxSize},
		{"template.metadata.range.label", c.Template.Metadata.Range.Label.MinSize, c.Template.Metadata.Range.Label.MaxSize},
		{"template.metadata.range.value", c.Template.Metadata.Range.Value.MinSize, c.Template.Metadata.Range.Value.MaxSize},
		{"template.metadata.cast_time.label", c.Template.Metadata.CastTime.Label.MinSize, c.Template.Metadata.CastTime.Label.MaxSize},
		{"template.metadata.cast_time.value", c.Template.Metadata.CastTime.Value.MinSize, c.Template.Metadata.CastTime.Value.MaxSize},
		{"template.metadata.duration.label", c.Template.Metadata.Duration.Label.MinSize, c.Template.Metadata.Duration.Label.MaxSize},
		{"template.metadata.duration.value", c.Template.Metadata.Duration.Value.MinSize, c.Template.Metadata.Duration.Value.MaxSize},
		{"template.metadata.material_cost", c.Template.Metadata.MaterialCost.MinSize, c.Template.Metadata.MaterialCost.MaxSize},
	}
	for _, b := range boxes {
		if b.min > b.max {
			return fmt.Errorf("%w: %s min_size %.1f exceeds max_size %.1f", ErrConfigValidation, b.name, b.min, b.max)
		}
	}
	return nil
}

// SchoolStyle looks up the style for a spell's school. School keys are
// stored lowercase; lookups are case-insensitive.
func (c *Config) SchoolStyle(school string) (CategoryStyle, error) {
	style, ok := c.School[strings.ToLower(school)]
	if !ok {
		return CategoryStyle{}, fmt.Errorf("%w: school %q", ErrUnknownCategory, school)
	}
	return style, nil
}

// ComponentStyle looks up the style for a component indicator.
func (c *Config) ComponentStyle(name string) (CategoryStyle, error) {
	style, ok := c.Component[strings.ToLower(name)]
	if !ok {
		return CategoryStyle{}, fmt.Errorf("%w: component %q", ErrUnknownCategory, name)
	}
	return style, nil
}

// HasClass reports whether name is one of the configured classes,
// case-insensitively.
func (c *Config) HasClass(name string) bool {
	for _, cls := range c.General.Classes {
		if strings.EqualFold(cls, name) {
			return true
		}
	}
	return false
}
