// Package dataset loads spell records from CSV and YAML files.
//
// The CSV form is one spell per row under a header row; columns may appear
// in any order and unknown columns are ignored. The YAML form is a mapping
// of spell name to spell fields. Both forms produce the same records, and
// both fail fast on malformed rows instead of skipping them.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	cardmaker "github.com/egocarib/Spell-Card-Maker"
	"github.com/egocarib/Spell-Card-Maker/internal/yamlutil"
)

var (
	ErrEmptyDataset      = errors.New("dataset contains no spells")
	ErrMissingColumn     = errors.New("dataset header is missing a required column")
	ErrBadRecord         = errors.New("malformed dataset record")
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
)

// requiredColumns must all be present in a CSV header. The remaining known
// columns are optional and default to empty or false.
var requiredColumns = []string{"name", "level", "school", "classes", "rules"}

// LoadFile reads a spell dataset, dispatching on the file extension:
// .csv, .yaml, or .yml.
func LoadFile(path string) ([]cardmaker.Spell, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path) // #nosec G304 -- dataset path is user-provided
		if err != nil {
			return nil, fmt.Errorf("opening dataset: %w", err)
		}
		defer f.Close()
		return ParseCSV(f)
	case ".yaml", ".yml":
		data, err := os.ReadFile(path) // #nosec G304 -- dataset path is user-provided
		if err != nil {
			return nil, fmt.Errorf("reading dataset: %w", err)
		}
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ParseCSV reads spells from CSV data. The first row is the header; column
// order is free.
func ParseCSV(r io.Reader) ([]cardmaker.Spell, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyDataset
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrBadRecord, err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	var spells []cardmaker.Spell
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadRecord, line, err)
		}
		spell, err := rowToSpell(cols, row)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadRecord, line, err)
		}
		spells = append(spells, spell)
	}

	if len(spells) == 0 {
		return nil, ErrEmptyDataset
	}
	return spells, nil
}

func rowToSpell(cols map[string]int, row []string) (cardmaker.Spell, error) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	level, err := strconv.Atoi(field("level"))
	if err != nil {
		return cardmaker.Spell{}, fmt.Errorf("level %q is not a number", field("level"))
	}

	spell := cardmaker.Spell{
		Name:         field("name"),
		Level:        level,
		School:       field("school"),
		Classes:      splitClasses(field("classes")),
		Range:        field("range"),
		CastTime:     field("cast_time"),
		Duration:     field("duration"),
		MaterialText: field("material_text"),
		MaterialCost: field("material_cost"),
		Rules:        field("rules"),
		Source:       field("source"),
	}

	bools := []struct {
		col string
		dst *bool
	}{
		{"concentration", &spell.Concentration},
		{"ritual", &spell.Ritual},
		{"verbal", &spell.Verbal},
		{"somatic", &spell.Somatic},
		{"material", &spell.Material},
		{"material_costly", &spell.MaterialCostly},
		{"material_consumed", &spell.MaterialConsumed},
	}
	for _, b := range bools {
		v, err := parseBool(field(b.col))
		if err != nil {
			return cardmaker.Spell{}, fmt.Errorf("column %q: %v", b.col, err)
		}
		*b.dst = v
	}

	return spell, nil
}

// yamlSpell mirrors the CSV columns for the YAML dataset form. The spell
// name is the mapping key, not a field.
type yamlSpell struct {
	Level            int      `yaml:"level"`
	School           string   `yaml:"school"`
	Classes          []string `yaml:"classes"`
	Range            string   `yaml:"range"`
	CastTime         string   `yaml:"cast_time"`
	Duration         string   `yaml:"duration"`
	Concentration    bool     `yaml:"concentration"`
	Ritual           bool     `yaml:"ritual"`
	Verbal           bool     `yaml:"verbal"`
	Somatic          bool     `yaml:"somatic"`
	Material         bool     `yaml:"material"`
	MaterialCostly   bool     `yaml:"material_costly"`
	MaterialConsumed bool     `yaml:"material_consumed"`
	MaterialText     string   `yaml:"material_text"`
	MaterialCost     string   `yaml:"material_cost"`
	Rules            string   `yaml:"rules"`
	Source           string   `yaml:"source"`
}

// ParseYAML reads spells from a YAML mapping of spell name to fields.
// Records are returned sorted by name so batch output order is stable.
func ParseYAML(data []byte) ([]cardmaker.Spell, error) {
	var entries map[string]yamlSpell
	if err := yamlutil.UnmarshalStrict(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRecord, err)
	}
	if len(entries) == 0 {
		return nil, ErrEmptyDataset
	}

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	spells := make([]cardmaker.Spell, 0, len(names))
	for _, name := range names {
		e := entries[name]
		spells = append(spells, cardmaker.Spell{
			Name:             name,
			Level:            e.Level,
			School:           e.School,
			Classes:          e.Classes,
			Range:            e.Range,
			CastTime:         e.CastTime,
			Duration:         e.Duration,
			Concentration:    e.Concentration,
			Ritual:           e.Ritual,
			Verbal:           e.Verbal,
			Somatic:          e.Somatic,
			Material:         e.Material,
			MaterialCostly:   e.MaterialCostly,
			MaterialConsumed: e.MaterialConsumed,
			MaterialText:     e.MaterialText,
			MaterialCost:     e.MaterialCost,
			Rules:            e.Rules,
			Source:           e.Source,
		})
	}
	return spells, nil
}

func splitClasses(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	classes := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			classes = append(classes, p)
		}
	}
	return classes
}

// parseBool accepts the yes/no convention used by spell datasets alongside
// the usual true/false forms. Empty means false.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "", "no", "n", "false", "0":
		return false, nil
	case "yes", "y", "true", "1":
		return true, nil
	default:
		return false, fmt.Errorf("invalid boolean %q", s)
	}
}
