package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrMalformedNotation", ErrMalformedNotation, ErrMalformedNotation},
		{"ErrMalformedBoardDump", ErrMalformedBoardDump, ErrMalformedBoardDump},
		{"ErrRosterOverflow", ErrRosterOverflow, ErrRosterOverflow},
		{"ErrDisambiguationMiss", ErrDisambiguationMiss, ErrDisambiguationMiss},
		{"ErrMissingEcho", ErrMissingEcho, ErrMissingEcho},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
		{"ErrUnknownSession", ErrUnknownSession, ErrUnknownSession},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrMalformedNotation, ErrMalformedBoardDump) {
		t.Error("ErrMalformedNotation matches ErrMalformedBoardDump")
	}
	if errors.Is(ErrDisambiguationMiss, ErrMalformedNotation) {
		t.Error("ErrDisambiguationMiss matches ErrMalformedNotation")
	}
}

// TestRosterOverflowWrapping verifies an overflow is also a malformed dump
func TestRosterOverflowWrapping(t *testing.T) {
	err := fmt.Errorf("%w: %w", ErrMalformedBoardDump, ErrRosterOverflow)

	if !Is(err, ErrMalformedBoardDump) {
		t.Error("overflow should match ErrMalformedBoardDump")
	}
	if !Is(err, ErrRosterOverflow) {
		t.Error("overflow should match ErrRosterOverflow")
	}
}

// TestNotationError_Error verifies the error message format
func TestNotationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *NotationError
		contains []string
	}{
		{
			name: "full context",
			err: &NotationError{
				Err:    ErrMalformedNotation,
				Move:   "Nx",
				Pos:    2,
				Reason: "capture clause has no square",
			},
			contains: []string{`"Nx"`, "offset 2", "capture clause", "malformed notation"},
		},
		{
			name: "no position",
			err: &NotationError{
				Err:  ErrMalformedNotation,
				Move: "",
				Pos:  -1,
			},
			contains: []string{`move ""`, "malformed notation"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("NotationError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestNotationError_As verifies that errors.As works through extra wrapping
func TestNotationError_As(t *testing.T) {
	notationErr := &NotationError{
		Err:  ErrMalformedNotation,
		Move: "Zz9",
		Pos:  0,
	}

	wrapped := fmt.Errorf("hint failed: %w", notationErr)

	var extracted *NotationError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract NotationError")
	}
	if extracted.Move != "Zz9" {
		t.Errorf("extracted.Move = %q, want %q", extracted.Move, "Zz9")
	}
	if !errors.Is(wrapped, ErrMalformedNotation) {
		t.Error("errors.Is(wrapped, ErrMalformedNotation) = false, want true")
	}
}

// TestParseError_Error verifies ParseError formatting
func TestParseError_Error(t *testing.T) {
	err := &ParseError{
		Err:      ErrMalformedBoardDump,
		Line:     3,
		Column:   5,
		Expected: "piece letter or '.'",
		Got:      "'?'",
	}

	msg := err.Error()
	for _, s := range []string{"line 3:5", "expected piece letter", "malformed board dump"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("ParseError.Error() = %q, should contain %q", msg, s)
		}
	}
	if !errors.Is(err, ErrMalformedBoardDump) {
		t.Error("errors.Is(parseErr, ErrMalformedBoardDump) = false, want true")
	}
}

func TestParseError_Empty(t *testing.T) {
	if got := (&ParseError{}).Error(); got != "parse error" {
		t.Errorf("empty ParseError.Error() = %q, want %q", got, "parse error")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrMalformedBoardDump, "syncing board")

	if !errors.Is(wrapped, ErrMalformedBoardDump) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "syncing board") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should be nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrDisambiguationMiss, "move %q ply %d", "Rd1", 7)

	if !errors.Is(wrapped, ErrDisambiguationMiss) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "ply 7") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
