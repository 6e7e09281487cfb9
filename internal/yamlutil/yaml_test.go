package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
}

func TestUnmarshal(t *testing.T) {
	t.Run("valid yaml", func(t *testing.T) {
		var s sample
		if err := Unmarshal([]byte("name: Fireball\nlevel: 3\n"), &s); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if s.Name != "Fireball" || s.Level != 3 {
			t.Errorf("got %+v, want {Fireball 3}", s)
		}
	})

	t.Run("valid json", func(t *testing.T) {
		var s sample
		if err := Unmarshal([]byte(`{"name": "Shield", "level": 1}`), &s); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if s.Name != "Shield" || s.Level != 1 {
			t.Errorf("got %+v, want {Shield 1}", s)
		}
	})

	t.Run("empty data returns ErrNilData", func(t *testing.T) {
		var s sample
		if err := Unmarshal(nil, &s); !errors.Is(err, ErrNilData) {
			t.Errorf("error = %v, want ErrNilData", err)
		}
	})

	t.Run("nil destination returns ErrNilDestination", func(t *testing.T) {
		if err := Unmarshal([]byte("name: x"), nil); !errors.Is(err, ErrNilDestination) {
			t.Errorf("error = %v, want ErrNilDestination", err)
		}
	})

	t.Run("oversized input returns ErrInputTooLarge", func(t *testing.T) {
		old := MaxInputSize
		MaxInputSize = 8
		defer func() { MaxInputSize = old }()

		var s sample
		err := Unmarshal([]byte("name: Fireball\n"), &s)
		if !errors.Is(err, ErrInputTooLarge) {
			t.Errorf("error = %v, want ErrInputTooLarge", err)
		}
	})
}

func TestUnmarshalStrict(t *testing.T) {
	t.Run("unknown field rejected", func(t *testing.T) {
		var s sample
		err := UnmarshalStrict([]byte("name: x\nbogus: y\n"), &s)
		if err == nil {
			t.Fatal("UnmarshalStrict() error = nil, want unknown field error")
		}
	})

	t.Run("known fields accepted", func(t *testing.T) {
		var s sample
		if err := UnmarshalStrict([]byte("name: x\nlevel: 2\n"), &s); err != nil {
			t.Fatalf("UnmarshalStrict() error = %v", err)
		}
	})
}

func TestMarshal(t *testing.T) {
	out, err := Marshal(sample{Name: "Mage Hand", Level: 0})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(out), "Mage Hand") {
		t.Errorf("output missing name: %q", out)
	}

	var round sample
	if err := Unmarshal(out, &round); err != nil {
		t.Fatalf("round-trip Unmarshal() error = %v", err)
	}
	if round.Name != "Mage Hand" || round.Level != 0 {
		t.Errorf("round trip = %+v", round)
	}
}
