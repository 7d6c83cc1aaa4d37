package compare

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Status is the overall outcome of a comparison run.
type Status int

const (
	// StatusMatch means both inputs ended (or reached a common blank line)
	// without exceeding the mismatch limit. Mismatches may still have been reported.
	StatusMatch Status = iota
	// StatusThresholdExceeded means the run was stopped after too many mismatches.
	StatusThresholdExceeded
)

func (s Status) String() string {
	switch s {
	case StatusMatch:
		return "match"
	case StatusThresholdExceeded:
		return "threshold exceeded"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// ExitCode maps the status onto the process exit code.
func (s Status) ExitCode() int {
	if s == StatusMatch {
		return 0
	}
	return 1
}

// MismatchKind says why a line pair was reported.
type MismatchKind int

const (
	// NotNumeric: the lines differ and at least one of them is not a number.
	NotNumeric MismatchKind = iota
	// OutOfTolerance: both lines are numbers but further apart than epsilon.
	OutOfTolerance
)

func (k MismatchKind) String() string {
	switch k {
	case NotNumeric:
		return "not numeric"
	case OutOfTolerance:
		return "out of tolerance"
	}
	return fmt.Sprintf("MismatchKind(%d)", int(k))
}

// Mismatch is one reported line pair. Left and Right have trailing whitespace removed.
type Mismatch struct {
	Line  int
	Left  string
	Right string
	Kind  MismatchKind
	Delta decimal.Decimal // set for OutOfTolerance only
}

// String formats the mismatch the way it is reported: "line <N> : <left> != <right>".
func (m Mismatch) String() string {
	return fmt.Sprintf("line %d : %s != %s", m.Line, m.Left, m.Right)
}

// Result summarises a comparison run.
type Result struct {
	// Lines is the number of the last line pair examined.
	Lines      int
	Mismatches []Mismatch
	Status     Status
}
