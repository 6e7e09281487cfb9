package cardmaker

import (
	"errors"
	"reflect"
	"testing"
)

func TestSpellValidate(t *testing.T) {
	spell := Spell{Name: "Fireball", School: "Evocation"}
	if err := spell.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	spell.Name = ""
	if err := spell.Validate(); !errors.Is(err, ErrEmptySpellName) {
		t.Errorf("Validate() error = %v, want ErrEmptySpellName", err)
	}

	spell.Name = "Fireball"
	spell.School = ""
	if err := spell.Validate(); !errors.Is(err, ErrEmptySpellSchool) {
		t.Errorf("Validate() error = %v, want ErrEmptySpellSchool", err)
	}
}

func TestLevelLabel(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{0, "Lv 0"},
		{1, "Lv 1"},
		{9, "Lv 9"},
	}
	for _, tt := range tests {
		s := Spell{Level: tt.level}
		if got := s.LevelLabel(); got != tt.want {
			t.Errorf("LevelLabel() = %q, want %q", got, tt.want)
		}
	}
}

func TestComponentFlags(t *testing.T) {
	tests := []struct {
		name  string
		spell Spell
		want  []string
	}{
		{"none", Spell{}, nil},
		{"verbal somatic", Spell{Verbal: true, Somatic: true}, []string{"verbal", "somatic"}},
		{
			"all in draw order",
			Spell{Concentration: true, Ritual: true, Verbal: true, Somatic: true, Material: true},
			[]string{"concentration", "verbal", "somatic", "material", "ritual"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spell.ComponentFlags(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ComponentFlags() = %v, want %v", got, tt.want)
			}
		})
	}
}
