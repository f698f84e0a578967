package testutil

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/gnuchess-board-go/internal/chess"
)

// Only passing cases can run against a real *testing.T.

func TestAssertions_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3}, "value should be %d", 42)
	AssertNoError(t, nil)
	AssertError(t, errors.New("test error"), "expected error from %s", "operation")
	AssertContains(t, "hello world", "world")
	AssertNotContains(t, "hello world", "foo")
	AssertTrue(t, len("hello") == 5)
	AssertFalse(t, len("hello") == 0)
}

func TestAssertErrorIs_Success(t *testing.T) {
	base := errors.New("base")
	AssertErrorIs(t, fmt.Errorf("outer: %w", base), base)
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single non-string", []interface{}{42}, "42"},
		{"format with args", []interface{}{"value is %d", 42}, "value is 42"},
		{"non-string first arg", []interface{}{42, "ignored"}, "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStartingDump(t *testing.T) {
	dump := StartingDump(t)
	lines := strings.Split(dump, "\n")
	if lines[0] != "white  KQkq" {
		t.Errorf("banner = %q", lines[0])
	}
	if lines[1] != "r n b q k b n r " {
		t.Errorf("rank 8 = %q", lines[1])
	}
	if lines[8] != "R N B Q K B N R " {
		t.Errorf("rank 1 = %q", lines[8])
	}
}

func TestDumpAfter(t *testing.T) {
	dump := DumpAfter(t, "e4")
	AssertContains(t, dump, "black  KQkq\n")
	AssertContains(t, dump, ". . . . P . . . \n")
}

func TestOccupied(t *testing.T) {
	got := Occupied(chess.NewRegistry())
	if len(got) != 32 {
		t.Errorf("len = %d, want 32", len(got))
	}
	AssertEqual(t, got["e1"], "K")
	AssertEqual(t, got["d8"], "q")
}
