package hashing

import (
	"math/rand"

	"github.com/lgbarn/gnuchess-board-go/internal/chess"
)

// zobristSeed fixes the key table so hashes are stable between runs.
const zobristSeed = 0x5eed1e55

var (
	zobristPieces [2][chess.NumPieceValues][chess.NumSquares]uint64
	zobristBlack  uint64
)

func init() {
	r := rand.New(rand.NewSource(zobristSeed)) //nolint:gosec // G404: hash keys, not secrets
	for c := range zobristPieces {
		for p := range zobristPieces[c] {
			for sq := range zobristPieces[c][p] {
				zobristPieces[c][p][sq] = r.Uint64()
			}
		}
	}
	zobristBlack = r.Uint64()
}

// PositionHash returns the Zobrist hash of the pieces on the board and the
// side to move. Pieces are hashed by kind, so two registries that hold the
// same position in different slots hash alike.
func PositionHash(reg *chess.Registry, toMove chess.Colour) uint64 {
	var hash uint64
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, p := range reg.OnBoard(colour) {
			hash ^= zobristPieces[colour][p.Kind][p.Square.Index()]
		}
	}
	if toMove == chess.Black {
		hash ^= zobristBlack
	}
	return hash
}

// WeakHash sums the board letters weighted by square. It is a second,
// independent check on a Zobrist match.
func WeakHash(reg *chess.Registry) uint32 {
	var hash uint32
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, p := range reg.OnBoard(colour) {
			hash += uint32(p.Kind.ColouredLetter(colour)) * uint32(p.Square.Index()+1)
		}
	}
	return hash
}
