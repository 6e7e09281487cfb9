package cardmaker

import "fmt"

// Spell holds all of the data that defines a single spell: the name, level,
// school, rules text, and casting metadata drawn onto a card.
type Spell struct {
	Name             string   // Spell name
	Level            int      // Spell level (0 indicates a cantrip)
	School           string   // School associated with the spell, such as "Illusion"
	Classes          []string // Classes that have this spell on their spell list
	Range            string   // Range of the spell, such as "60 Feet"
	CastTime         string   // Cast time, such as "1 Action"
	Duration         string   // Duration of the spell, such as "1 Minute"
	Concentration    bool     // True if this spell requires concentration
	Ritual           bool     // True if this spell can be cast as a ritual
	Verbal           bool     // True if this spell has a verbal component
	Somatic          bool     // True if this spell has a somatic component
	Material         bool     // True if this spell has a material component
	MaterialCostly   bool     // True if the material component has a cost
	MaterialConsumed bool     // True if the material component is consumed
	MaterialText     string   // Description of the material component
	MaterialCost     string   // Cost of the material component, such as "100gp"
	Rules            string   // Spell description / rules text
	Source           string   // The rulebook or other source text for this spell
}

// Validate checks the fields the renderer cannot work without.
func (s *Spell) Validate() error {
	if s.Name == "" {
		return ErrEmptySpellName
	}
	if s.School == "" {
		return fmt.Errorf("%w: spell %q", ErrEmptySpellSchool, s.Name)
	}
	return nil
}

// LevelLabel returns the level text drawn next to the spell name.
func (s *Spell) LevelLabel() string {
	return fmt.Sprintf("Lv %d", s.Level)
}

// ComponentFlags returns the indicator component names set on the spell, in
// the fixed draw order used by the card template.
func (s *Spell) ComponentFlags() []string {
	flags := []struct {
		name string
		set  bool
	}{
		{"concentration", s.Concentration},
		{"verbal", s.Verbal},
		{"somatic", s.Somatic},
		{"material", s.Material},
		{"ritual", s.Ritual},
	}
	var names []string
	for _, f := range flags {
		if f.set {
			names = append(names, f.name)
		}
	}
	return names
}
