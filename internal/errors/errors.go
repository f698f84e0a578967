// Package errors provides sentinel errors and error types for the board
// interpreter. It defines the failure taxonomy and structured error types
// that preserve context while allowing inspection with errors.Is() and
// errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrMalformedNotation indicates a move string outside the recognised grammar.
	ErrMalformedNotation = errors.New("malformed notation")

	// ErrMalformedBoardDump indicates a board dump that is too short, lacks
	// its banner, or holds an unrecognised cell.
	ErrMalformedBoardDump = errors.New("malformed board dump")

	// ErrRosterOverflow indicates a dump holding more pieces of one kind than
	// a roster has slots for. It is reported wrapped with ErrMalformedBoardDump.
	ErrRosterOverflow = errors.New("roster overflow")

	// ErrDisambiguationMiss indicates no candidate piece was found for a move.
	// It is not fatal: the move still happened, only its animation is lost.
	ErrDisambiguationMiss = errors.New("no source piece found")

	// ErrMissingEcho indicates engine output without the expected move marker.
	ErrMissingEcho = errors.New("move echo not found")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownSession indicates a session id that is not registered.
	ErrUnknownSession = errors.New("unknown session")
)

// NotationError wraps notation failures with the offending text and the
// byte position where parsing stopped.
type NotationError struct {
	Err    error  // The underlying error
	Move   string // The move text being parsed
	Pos    int    // 0-based byte offset where parsing failed (-1 if not applicable)
	Reason string // What went wrong
}

// Error returns a formatted error message including all available context.
func (e *NotationError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("move %q", e.Move))
	if e.Pos >= 0 {
		parts = append(parts, fmt.Sprintf("offset %d", e.Pos))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the NotationError wrapper.
func (e *NotationError) Unwrap() error {
	return e.Err
}

// ParseError represents a board dump error with line and column context.
type ParseError struct {
	Err      error  // The underlying error
	Line     int    // Line number within the board block (1-based)
	Column   int    // Column number (1-based)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Line > 0 {
		loc := fmt.Sprintf("line %d", e.Line)
		if e.Column > 0 {
			loc += fmt.Sprintf(":%d", e.Column)
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
// It forwards to the standard library so callers need only this package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
