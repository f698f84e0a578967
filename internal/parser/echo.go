package parser

import (
	"strings"

	"github.com/lgbarn/gnuchess-board-go/internal/errors"
)

// ExtractEcho returns the move that follows marker in the engine output,
// up to the end of that line.
func ExtractEcho(output, marker string) (string, error) {
	i := strings.Index(output, marker)
	if i < 0 {
		return "", errors.Wrapf(errors.ErrMissingEcho, "looking for %q", marker)
	}
	rest := output[i+len(marker):]
	if j := strings.IndexByte(rest, '\n'); j >= 0 {
		rest = rest[:j]
	}
	move := strings.TrimSpace(rest)
	if move == "" {
		return "", errors.Wrap(errors.ErrMissingEcho, "empty move after marker")
	}
	return move, nil
}
