package comparisonconfig

import (
	"math"
	"testing"

	"github.com/IgorBayerl/fdiff/internal/logging"
	"github.com/stretchr/testify/assert"
)

func TestNewDefaultConfiguration(t *testing.T) {
	cfg := NewDefaultConfiguration("out.txt", "expected.txt")

	assert.Equal(t, "out.txt", cfg.LeftFile())
	assert.Equal(t, "expected.txt", cfg.RightFile())
	assert.Equal(t, 0.05, cfg.Epsilon())
	assert.Equal(t, 10, cfg.MismatchLimit())
	assert.Equal(t, logging.Warning, cfg.VerbosityLevel())
	assert.NoError(t, Validate(cfg))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		epsilon float64
		limit   int
		wantErr bool
	}{
		{"strict epsilon", StrictEpsilon, DefaultMismatchLimit, false},
		{"zero epsilon means exact numbers", 0, DefaultMismatchLimit, false},
		{"zero limit stops on first mismatch", DefaultEpsilon, 0, false},
		{"negative epsilon", -0.1, DefaultMismatchLimit, true},
		{"nan epsilon", math.NaN(), DefaultMismatchLimit, true},
		{"infinite epsilon", math.Inf(1), DefaultMismatchLimit, true},
		{"negative limit", DefaultEpsilon, -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewComparisonConfiguration("a", "b", tt.epsilon, tt.limit, logging.Off)
			err := Validate(cfg)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
