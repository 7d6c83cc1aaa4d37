package comparisonconfig

import (
	"errors"
	"fmt"
	"math"

	"github.com/IgorBayerl/fdiff/internal/logging"
)

const (
	// DefaultEpsilon is the absolute tolerance used for numeric lines.
	DefaultEpsilon = 0.05
	// StrictEpsilon is the tighter tolerance for runs that need closer agreement.
	// Switch the CLI to it by editing the constant it passes, there is no flag.
	StrictEpsilon = 0.00005
	// DefaultMismatchLimit is how many mismatches are tolerated before the run is aborted.
	// The run stops on the first mismatch that takes the count above it.
	DefaultMismatchLimit = 10
	// DefaultVerbosity keeps routine progress off stderr; only failures are logged.
	DefaultVerbosity = logging.Warning
)

// ErrInvalidConfiguration is returned by Validate.
var ErrInvalidConfiguration = errors.New("invalid comparison configuration")

// IComparisonConfiguration defines the configuration of a comparison run.
type IComparisonConfiguration interface {
	LeftFile() string
	RightFile() string
	Epsilon() float64
	MismatchLimit() int
	VerbosityLevel() logging.VerbosityLevel
}

// ComparisonConfiguration is a concrete implementation of IComparisonConfiguration.
type ComparisonConfiguration struct {
	LFile  string
	RFile  string
	Eps    float64
	Limit  int
	VLevel logging.VerbosityLevel
}

func (cc *ComparisonConfiguration) LeftFile() string                       { return cc.LFile }
func (cc *ComparisonConfiguration) RightFile() string                      { return cc.RFile }
func (cc *ComparisonConfiguration) Epsilon() float64                       { return cc.Eps }
func (cc *ComparisonConfiguration) MismatchLimit() int                     { return cc.Limit }
func (cc *ComparisonConfiguration) VerbosityLevel() logging.VerbosityLevel { return cc.VLevel }

// NewComparisonConfiguration is a constructor for ComparisonConfiguration.
func NewComparisonConfiguration(
	leftFile string,
	rightFile string,
	epsilon float64,
	mismatchLimit int,
	verbosity logging.VerbosityLevel,
) *ComparisonConfiguration {
	return &ComparisonConfiguration{
		LFile:  leftFile,
		RFile:  rightFile,
		Eps:    epsilon,
		Limit:  mismatchLimit,
		VLevel: verbosity,
	}
}

// NewDefaultConfiguration returns the configuration the command-line tool runs with.
func NewDefaultConfiguration(leftFile, rightFile string) *ComparisonConfiguration {
	return NewComparisonConfiguration(leftFile, rightFile, DefaultEpsilon, DefaultMismatchLimit, DefaultVerbosity)
}

// Validate checks that the tolerance and limit are usable.
func Validate(cfg IComparisonConfiguration) error {
	if eps := cfg.Epsilon(); eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		return fmt.Errorf("%w: epsilon %v is not a non-negative finite number", ErrInvalidConfiguration, eps)
	}
	if cfg.MismatchLimit() < 0 {
		return fmt.Errorf("%w: mismatch limit %d is negative", ErrInvalidConfiguration, cfg.MismatchLimit())
	}
	return nil
}
