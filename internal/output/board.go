// Package output renders registries, parsed moves and session reports as
// text or JSON.
package output

import (
	"fmt"
	"strings"

	"github.com/lgbarn/gnuchess-board-go/internal/chess"
)

// BoardRows returns the registry as eight rows of cells, rank 8 first,
// using the engine's letters and '.' for empty squares.
func BoardRows(reg *chess.Registry) []string {
	var cells [chess.NumSquares]byte
	for i := range cells {
		cells[i] = '.'
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, p := range reg.OnBoard(colour) {
			cells[p.Square.Index()] = p.Kind.ColouredLetter(colour)
		}
	}

	rows := make([]string, chess.BoardSize)
	for r := range rows {
		var sb strings.Builder
		for c := 0; c < chess.BoardSize; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(cells[r*chess.BoardSize+c])
		}
		rows[r] = sb.String()
	}
	return rows
}

// FormatBoard draws the registry with rank and file labels.
func FormatBoard(reg *chess.Registry) string {
	var sb strings.Builder
	for r, row := range BoardRows(reg) {
		fmt.Fprintf(&sb, "%d  %s\n", chess.BoardSize-r, row)
	}
	sb.WriteString("\n   a b c d e f g h\n")
	return sb.String()
}

// FormatRoster lists every slot of both rosters, parked pieces included.
func FormatRoster(reg *chess.Registry) string {
	var sb strings.Builder
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		roster := reg.Roster(colour)
		for _, p := range roster {
			where := p.Square.String()
			if !p.OnBoard() {
				where = "off board"
			}
			fmt.Fprintf(&sb, "%-5s %2d %-6s %s\n", colour, p.Slot, p.Kind, where)
		}
	}
	return sb.String()
}

// FormatMove describes a parsed move on one line.
func FormatMove(m *chess.ParsedMove) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s %s", m.Text, m.Side, m.Piece)
	if m.IsCastle() {
		if m.Class == chess.KingsideCastle {
			sb.WriteString(" castles kingside")
		} else {
			sb.WriteString(" castles queenside")
		}
	}
	if from := m.From(); from != chess.NoSquare {
		fmt.Fprintf(&sb, " from %s", from)
	} else if m.FromCol != 0 {
		fmt.Fprintf(&sb, " from the %c-file", m.FromCol)
	}
	fmt.Fprintf(&sb, " to %s", m.To())
	if m.Capture {
		fmt.Fprintf(&sb, " capturing %s", m.CaptureTarget)
	}
	if m.Promotion {
		sb.WriteString(" promoting to Queen")
	}
	switch m.CheckStatus {
	case chess.Check:
		sb.WriteString(" with check")
	case chess.Checkmate:
		sb.WriteString(" with mate")
	}
	return sb.String()
}
