// Package board implements the obstacle chess board: tiles with pieces,
// mines, trapdoors and walls, the game status line, and the canonical text
// format used for file storage.
package board

import (
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/chess"
)

// Tile is a single board square. A tile is empty of piece and obstacles by
// default; walls are stored as a bitset with the mirrored-neighbour
// invariant maintained by Board.NormaliseWalls.
type Tile struct {
	Piece    chess.Piece
	Mined    bool
	Trapdoor chess.TrapdoorState
	Walls    chess.Wall
}

// Occupied reports whether the tile holds a piece.
func (t Tile) Occupied() bool {
	return !t.Piece.IsEmpty()
}

// contentLetter returns the canonical character for the tile's piece or
// obstacle content, without wall prefixes.
func (t Tile) contentLetter() byte {
	if t.Occupied() {
		return t.Piece.Letter()
	}
	switch {
	case t.Mined && t.Trapdoor == chess.TrapdoorHidden:
		return 'X'
	case t.Mined:
		return 'M'
	case t.Trapdoor == chess.TrapdoorHidden:
		return 'D'
	case t.Trapdoor == chess.TrapdoorOpen:
		return 'O'
	default:
		return '.'
	}
}

// Canonical returns the tile's canonical text form: an optional '|' (west
// wall) and '_' (south wall) prefix followed by the content character.
// Only south and west walls are emitted; north and east are derived.
func (t Tile) Canonical() string {
	s := string(t.contentLetter())
	if t.Walls.Has(chess.WallSouth) {
		s = "_" + s
	}
	if t.Walls.Has(chess.WallWest) {
		s = "|" + s
	}
	return s
}

// tileFromLetter builds a tile from a content character, excluding wall
// modifiers. Returns false for unrecognized characters.
func tileFromLetter(c byte) (Tile, bool) {
	switch c {
	case '.':
		return Tile{}, true
	case 'M':
		return Tile{Mined: true}, true
	case 'D':
		return Tile{Trapdoor: chess.TrapdoorHidden}, true
	case 'O':
		return Tile{Trapdoor: chess.TrapdoorOpen}, true
	case 'X':
		return Tile{Mined: true, Trapdoor: chess.TrapdoorHidden}, true
	}
	if piece, ok := chess.PieceFromLetter(c); ok {
		return Tile{Piece: piece}, true
	}
	return Tile{}, false
}
