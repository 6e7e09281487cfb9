package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	cardmaker "github.com/egocarib/Spell-Card-Maker"
	"github.com/egocarib/Spell-Card-Maker/internal/dataset"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"unexpected", errors.New("boom"), ExitGeneral},
		{"config not found", cardmaker.ErrConfigNotFound, ExitUsage},
		{"config validation", cardmaker.ErrConfigValidation, ExitUsage},
		{"unknown category", cardmaker.ErrUnknownCategory, ExitUsage},
		{"bad dataset", dataset.ErrBadRecord, ExitUsage},
		{"empty dataset", dataset.ErrEmptyDataset, ExitUsage},
		{"spell missing", ErrSpellNotInDataset, ExitUsage},
		{"config exists", ErrConfigExists, ExitUsage},
		{"no input", ErrNoInput, ExitIO},
		{"file missing", os.ErrNotExist, ExitIO},
		{"write failure", ErrWriteImage, ExitIO},
		{"text overflow", cardmaker.ErrTextOverflow, ExitRender},
		{"cards failed", ErrCardsFailed, ExitRender},
		{"wrapped", fmt.Errorf("loading: %w", cardmaker.ErrConfigParse), ExitUsage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
