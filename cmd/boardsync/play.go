package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/lgbarn/gnuchess-board-go/internal/chess"
	"github.com/lgbarn/gnuchess-board-go/internal/config"
	"github.com/lgbarn/gnuchess-board-go/internal/output"
	"github.com/lgbarn/gnuchess-board-go/internal/parser"
	"github.com/lgbarn/gnuchess-board-go/internal/session"
)

const playHelp = `Enter a move (e4, Nf3, exd5, O-O, e8=Q) or a command:
  hint   ask the engine for a move
  undo   take back the last move
  game   list the game so far
  board  show the board again
  new    start over
  save   save the move list
  quit   leave
`

// prompter reads the user's input.
type prompter interface {
	Line(label string) (string, error)
	Side() (chess.Colour, error)
}

// terminal reads input with promptui.
type terminal struct{}

func (terminal) Line(label string) (string, error) {
	prompt := promptui.Prompt{Label: label}
	return prompt.Run()
}

func (terminal) Side() (chess.Colour, error) {
	prompt := promptui.Select{
		Label: "Which side do you play?",
		Items: []string{"White", "Black"},
	}
	_, result, err := prompt.Run()
	if err != nil {
		return chess.White, err
	}
	return parseSide(result)
}

// player runs an interactive game.
type player struct {
	cfg    *config.Config
	engine session.Engine
	s      *session.Session
	in     prompter
	out    output.ReportWriter
	w      io.Writer
}

func runPlay(cfg *config.Config, e session.Engine) error {
	p := &player{cfg: cfg, engine: e, in: terminal{}, w: cfg.OutputFile}
	if cfg.Play.AgainstRobot && !*playBlack {
		side, err := p.in.Side()
		if err != nil {
			return err
		}
		cfg.Play.Human = side
	}
	return p.run()
}

func (p *player) run() error {
	p.s = session.New(p.cfg)
	p.out = output.NewReportWriter(p.w, p.cfg)
	defer p.out.Close()

	if err := p.start(); err != nil {
		return err
	}
	fmt.Fprint(p.w, playHelp)

	for {
		label := fmt.Sprintf("%d. %s", len(p.s.Moves())/2+1, p.s.ToMove())
		line, err := p.in.Line(label)
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, io.EOF) {
				return p.finish()
			}
			return err
		}
		done, err := p.handle(strings.TrimSpace(line))
		if err != nil {
			return err
		}
		if done {
			return p.finish()
		}
	}
}

// start opens a game or restores the saved one.
func (p *player) start() error {
	if p.cfg.RestoreFile == "" {
		return p.write(p.s.Start(p.engine)...)
	}
	moves, err := loadMoveList(p.cfg.RestoreFile)
	if err != nil {
		return fmt.Errorf("restoring %s: %w", p.cfg.RestoreFile, err)
	}
	p.cfg.Logf(config.Summary, "restored %d moves from %s\n", len(moves), p.cfg.RestoreFile)
	return p.write(p.s.Load(p.engine, moves))
}

// handle runs one line of input. done is true when the user quits.
func (p *player) handle(line string) (done bool, err error) {
	switch strings.ToLower(line) {
	case "":
		return false, nil
	case "quit", "exit":
		return true, nil
	case "help", "?":
		fmt.Fprint(p.w, playHelp)
		return false, nil
	case "hint":
		return false, p.write(p.s.Do(p.engine, session.Request{Kind: session.Hint}))
	case "game":
		return false, p.write(p.s.Do(p.engine, session.Request{Kind: session.ShowGame}))
	case "board":
		fmt.Fprint(p.w, output.FormatBoard(p.s.Registry()))
		return false, nil
	case "undo":
		r, ok := p.s.TakeBack(p.engine)
		if !ok {
			fmt.Fprintln(p.w, "Nothing to take back.")
			return false, nil
		}
		return false, p.write(r)
	case "new":
		return false, p.write(p.s.Start(p.engine)...)
	case "save":
		return false, p.save()
	}

	if _, err := parser.ParseMove(line, p.s.ToMove()); err != nil {
		fmt.Fprintf(p.w, "%v\n", err)
		return false, nil
	}
	return false, p.write(p.s.Play(p.engine, line)...)
}

func (p *player) write(reports ...*session.Report) error {
	for _, r := range reports {
		if err := p.out.WriteReport(p.s, r); err != nil {
			return err
		}
	}
	return p.out.Flush()
}

func (p *player) save() error {
	if p.cfg.SaveFile == "" {
		fmt.Fprintln(p.w, "No save file; start with -save <file>.")
		return nil
	}
	if err := saveMoveList(p.cfg.SaveFile, p.s); err != nil {
		return err
	}
	fmt.Fprintf(p.w, "Saved %d moves to %s\n", len(p.s.Moves()), p.cfg.SaveFile)
	return nil
}

// finish saves the move list when a save file is configured.
func (p *player) finish() error {
	if p.cfg.SaveFile == "" {
		return nil
	}
	return p.save()
}
