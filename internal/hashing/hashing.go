// Package hashing detects replayed games that end in the same position.
package hashing

import (
	"github.com/lgbarn/gnuchess-board-go/internal/chess"
)

// DuplicateDetector tracks the final positions seen so far.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist hash
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires the same number of moves
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// GameSignature identifies the final position of one game.
type GameSignature struct {
	Name string

	// Hash is the Zobrist hash of the final position
	Hash uint64
	// WeakHash is a fast hash for additional confidence
	WeakHash uint32
	// MoveCount is the number of half-moves in the game
	MoveCount int
}

// Sign builds the signature of a game from its final registry.
func Sign(name string, reg *chess.Registry, toMove chess.Colour, moveCount int) GameSignature {
	return GameSignature{
		Name:      name,
		Hash:      PositionHash(reg, toMove),
		WeakHash:  WeakHash(reg),
		MoveCount: moveCount,
	}
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector(exactMatch bool) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
	}
}

// CheckAndAdd records sig. When an earlier game ended in the same position
// it returns that game's name and true, and sig is not stored.
func (d *DuplicateDetector) CheckAndAdd(sig GameSignature) (original string, duplicate bool) {
	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return existing.Name, true
		}
	}

	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return "", false
}

func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.MoveCount != b.MoveCount {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.duplicateCount = 0
}
