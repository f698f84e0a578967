package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/lgbarn/gnuchess-board-go/internal/session"
)

// loadMoveList reads a move list. JSON files hold {"moves": [...]}; any
// other file is whitespace separated movetext where move numbers and
// results are skipped.
func loadMoveList(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the command line
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return movesFromJSON(string(data))
	}
	return movesFromText(string(data)), nil
}

func movesFromJSON(data string) ([]string, error) {
	if !gjson.Valid(data) {
		return nil, fmt.Errorf("move list is not valid JSON")
	}
	value := gjson.Get(data, "moves")
	if !value.IsArray() {
		return nil, fmt.Errorf("move list has no \"moves\" array")
	}
	var moves []string
	for _, m := range value.Array() {
		moves = append(moves, m.String())
	}
	return moves, nil
}

func movesFromText(data string) []string {
	var moves []string
	for _, field := range strings.Fields(data) {
		if isMoveNumber(field) || isResult(field) {
			continue
		}
		// "1.e4" style
		if i := strings.LastIndexByte(field, '.'); i >= 0 && isMoveNumber(field[:i+1]) {
			field = field[i+1:]
		}
		moves = append(moves, field)
	}
	return moves
}

func isMoveNumber(s string) bool {
	digits := strings.TrimRight(s, ".")
	if digits == "" || digits == s {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}

func isResult(s string) bool {
	switch s {
	case "1-0", "0-1", "1/2-1/2", "*":
		return true
	}
	return false
}

// moveListJSON renders the session's moves in the format loadMoveList reads.
func moveListJSON(s *session.Session) (string, error) {
	doc := "{}"
	var err error
	if doc, err = sjson.Set(doc, "id", s.ID); err != nil {
		return "", err
	}
	if doc, err = sjson.Set(doc, "human", strings.ToLower(s.Config().Play.Human.String())); err != nil {
		return "", err
	}
	moves := s.Moves()
	if moves == nil {
		moves = []string{}
	}
	if doc, err = sjson.Set(doc, "moves", moves); err != nil {
		return "", err
	}
	return doc, nil
}

// saveMoveList writes the session's moves to path.
func saveMoveList(path string, s *session.Session) error {
	doc, err := moveListJSON(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(doc+"\n"), 0644) //nolint:gosec // G306: saved games are user files
}
