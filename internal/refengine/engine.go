// Package refengine answers gnuchess request scripts from an in-process game,
// printing the same kind of text gnuchess does. It lets the board interpreter
// be driven end to end without the gnuchess binary.
package refengine

import (
	"fmt"
	"strings"

	gochess "github.com/notnil/chess"
)

// Level controls how the engine picks its moves.
type Level int

const (
	// Hard prefers mates, then the most valuable capture, then checks.
	Hard Level = iota
	// Easy plays the first legal move.
	Easy
)

// Engine replays a script against a fresh game on every Run, the way a new
// gnuchess process is started for each request.
type Engine struct {
	start func(*gochess.Game)
}

// New returns an engine whose games start from the standard position.
func New() *Engine {
	return &Engine{}
}

// NewFromFEN returns an engine whose games start from the given position.
func NewFromFEN(fen string) (*Engine, error) {
	opt, err := gochess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("refengine: %w", err)
	}
	return &Engine{start: opt}, nil
}

func (e *Engine) newGame() *gochess.Game {
	if e.start == nil {
		return gochess.NewGame()
	}
	return gochess.NewGame(e.start)
}

// Run executes a newline separated script and returns everything the engine
// printed. Processing stops at "quit".
func (e *Engine) Run(script string) string {
	var out strings.Builder
	game := e.newGame()
	level := Hard

	for _, line := range strings.Split(script, "\n") {
		cmd := strings.TrimSpace(line)
		switch {
		case cmd == "":
		case cmd == "quit":
			return out.String()
		case cmd == "force", cmd == "force manual", cmd == "book on", cmd == "book off":
		case strings.HasPrefix(cmd, "depth"):
		case cmd == "easy":
			level = Easy
		case cmd == "hard":
			level = Hard
		case cmd == "new":
			game = e.newGame()
		case cmd == "show board":
			writeBoard(&out, game.Position())
		case cmd == "show game":
			writeGame(&out, game)
		case cmd == "go":
			play(&out, game, level)
		default:
			apply(&out, game, cmd)
		}
	}
	return out.String()
}

// DecodeMove reads a move in SAN ("Nf3", "O-O", "e8=Q") or coordinate
// ("g1f3", "e7e8q") form.
func DecodeMove(pos *gochess.Position, text string) (*gochess.Move, error) {
	if m, err := (gochess.AlgebraicNotation{}).Decode(pos, text); err == nil {
		return m, nil
	}
	m, err := (gochess.UCINotation{}).Decode(pos, strings.ToLower(text))
	if err != nil {
		return nil, fmt.Errorf("refengine: cannot decode %q", text)
	}
	return m, nil
}

func apply(out *strings.Builder, game *gochess.Game, text string) {
	m, err := DecodeMove(game.Position(), text)
	if err == nil {
		err = game.Move(m)
	}
	if err != nil {
		fmt.Fprintf(out, "Illegal move: %s\n", text)
		return
	}
	writeOutcome(out, game)
}

func play(out *strings.Builder, game *gochess.Game, level Level) {
	if game.Outcome() != gochess.NoOutcome {
		return
	}
	pos := game.Position()
	m := chooseMove(pos, game.ValidMoves(), level)
	if m == nil {
		return
	}
	san := gochess.AlgebraicNotation{}.Encode(pos, m)
	if err := game.Move(m); err != nil {
		return
	}
	fmt.Fprintf(out, "My move is : %s\n", san)
	writeOutcome(out, game)
}

func writeOutcome(out *strings.Builder, game *gochess.Game) {
	switch game.Outcome() {
	case gochess.WhiteWon:
		fmt.Fprintf(out, "1-0 {White wins by %s}\n", game.Method())
	case gochess.BlackWon:
		fmt.Fprintf(out, "0-1 {Black wins by %s}\n", game.Method())
	case gochess.Draw:
		fmt.Fprintf(out, "1/2-1/2 {Draw by %s}\n", game.Method())
	}
}
