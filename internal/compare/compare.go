// Package compare checks that two line-oriented text files agree, allowing
// numeric lines to differ by a fixed absolute tolerance.
package compare

import (
	"errors"
	"fmt"
	"io"

	"github.com/IgorBayerl/fdiff/internal/comparisonconfig"
	"github.com/IgorBayerl/fdiff/internal/filereader"
	"github.com/IgorBayerl/fdiff/internal/filesystem"
	"github.com/IgorBayerl/fdiff/internal/utils"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ErrInputUnavailable is returned when one of the input files cannot be opened.
var ErrInputUnavailable = errors.New("input unavailable")

// LineSource yields successive lines of an input. After the input is
// exhausted it must keep returning "" with a nil error.
type LineSource interface {
	Next() (string, error)
}

// Comparator walks two inputs in lockstep and records the lines that differ.
type Comparator struct {
	fs      filesystem.Filesystem
	epsilon decimal.Decimal
	limit   int
	out     io.Writer
	logger  *zap.Logger
}

// NewComparator builds a Comparator from cfg. Inputs are opened on fsys and one
// diagnostic line per mismatch is written to out.
func NewComparator(cfg comparisonconfig.IComparisonConfiguration, fsys filesystem.Filesystem, out io.Writer, logger *zap.Logger) (*Comparator, error) {
	if err := comparisonconfig.Validate(cfg); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Comparator{
		fs:      fsys,
		epsilon: decimal.NewFromFloat(cfg.Epsilon()),
		limit:   cfg.MismatchLimit(),
		out:     out,
		logger:  logger,
	}, nil
}

// CompareFiles opens both paths and compares them. Both files are closed
// before it returns, whichever way the comparison ends.
func (c *Comparator) CompareFiles(leftPath, rightPath string) (result Result, err error) {
	left, err := filereader.Open(c.fs, leftPath)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInputUnavailable, err)
	}
	defer func() { err = multierr.Append(err, left.Close()) }()

	right, err := filereader.Open(c.fs, rightPath)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInputUnavailable, err)
	}
	defer func() { err = multierr.Append(err, right.Close()) }()

	result, err = c.Compare(left, right)
	if err != nil {
		return result, err
	}
	c.logger.Debug("comparison finished",
		zap.String("left", leftPath),
		zap.String("right", rightPath),
		zap.Int("lines", result.Lines),
		zap.Int("mismatches", len(result.Mismatches)),
		zap.Stringer("status", result.Status),
	)
	return result, nil
}

// Compare reads one line from each source per step until both strip to the
// empty string or the mismatch limit is exceeded.
func (c *Comparator) Compare(left, right LineSource) (Result, error) {
	var result Result
LineLoop:
	for {
		result.Lines++
		a, err := left.Next()
		if err != nil {
			return result, err
		}
		b, err := right.Next()
		if err != nil {
			return result, err
		}
		a = utils.TrimTrailingSpace(a)
		b = utils.TrimTrailingSpace(b)

		// Simultaneous end of input and a blank line on both sides look the same.
		if a == "" && b == "" {
			result.Status = StatusMatch
			return result, nil
		}
		if a == b {
			continue LineLoop
		}

		m, ok := c.compareLine(result.Lines, a, b)
		if ok {
			continue LineLoop
		}
		result.Mismatches = append(result.Mismatches, m)
		if _, err := fmt.Fprintln(c.out, m); err != nil {
			return result, fmt.Errorf("failed to write mismatch report: %w", err)
		}
		fields := []zap.Field{zap.Int("line", m.Line), zap.Stringer("kind", m.Kind)}
		if m.Kind == OutOfTolerance {
			fields = append(fields, zap.Stringer("delta", m.Delta), zap.Stringer("epsilon", c.epsilon))
		}
		c.logger.Debug("line mismatch", fields...)
		if len(result.Mismatches) > c.limit {
			c.logger.Debug("mismatch limit exceeded", zap.Int("line", result.Lines), zap.Int("limit", c.limit))
			result.Status = StatusThresholdExceeded
			return result, nil
		}
	}
}

// compareLine handles a pair of lines that are not textually equal.
// ok is true when both parse as numbers within epsilon of each other.
func (c *Comparator) compareLine(lineNo int, a, b string) (m Mismatch, ok bool) {
	m = Mismatch{Line: lineNo, Left: a, Right: b, Kind: NotNumeric}
	na, okA := utils.ParseDecimal(a)
	nb, okB := utils.ParseDecimal(b)
	if !okA || !okB {
		return m, false
	}
	delta := utils.AbsDifference(na, nb)
	if delta.LessThanOrEqual(c.epsilon) {
		return Mismatch{}, true
	}
	m.Kind = OutOfTolerance
	m.Delta = delta
	return m, false
}
