package parser

import (
	"fmt"
	"strings"
)

// UnknownBankError means no parser is registered for a bank id. The whole
// statement is skipped and reported; there is nothing row-level to recover.
type UnknownBankError struct {
	Bank string
}

func (e *UnknownBankError) Error() string {
	return fmt.Sprintf("unknown bank %q", e.Bank)
}

// UnrecognizedFormatError means the statement header does not carry the
// column set the bank's parser expects.
type UnrecognizedFormatError struct {
	Bank    string
	Missing []string
}

func (e *UnrecognizedFormatError) Error() string {
	return fmt.Sprintf("%s statement missing expected columns: %s", e.Bank, strings.Join(e.Missing, ", "))
}

// MalformedRowError marks a single row that could not be turned into a
// transaction. Rows fail individually; the rest of the statement still
// parses.
type MalformedRowError struct {
	Line  int
	Field string
	Cause error
}

func (e *MalformedRowError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("row %d: bad %s: %v", e.Line, e.Field, e.Cause)
	}
	return fmt.Sprintf("row %d: missing %s", e.Line, e.Field)
}

func (e *MalformedRowError) Unwrap() error { return e.Cause }
