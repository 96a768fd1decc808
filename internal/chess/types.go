// Package chess provides the core value types for obstacle chess:
// players, pieces, positions, wall flags and trapdoor states.
package chess

// Player represents one of the two players.
type Player int

const (
	White Player = iota
	Black
)

// String returns the string representation of a player.
func (p Player) String() string {
	if p == White {
		return "White"
	}
	return "Black"
}

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == White {
		return Black
	}
	return White
}

// Forward returns the rank direction this player's pawns advance in:
// +1 for White, -1 for Black.
func (p Player) Forward() int {
	if p == White {
		return 1
	}
	return -1
}

// Canonical returns the status-line letter for a player ("w" or "b").
func (p Player) Canonical() string {
	if p == White {
		return "w"
	}
	return "b"
}

// PlayerFromString parses a status-line player letter.
func PlayerFromString(s string) (Player, bool) {
	switch s {
	case "w":
		return White, true
	case "b":
		return Black, true
	default:
		return White, false
	}
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	NoPiece PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the uppercase algebraic letter for a piece kind.
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts an algebraic letter (either case) to a piece kind.
func KindFromLetter(c byte) PieceKind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoPiece
	}
}

// Piece is a piece kind owned by a player. The zero value is "no piece".
// Pieces are immutable; promotion replaces the piece rather than mutating it.
type Piece struct {
	Kind  PieceKind
	Owner Player
}

// NewPiece creates a piece of the given kind for the given owner.
func NewPiece(kind PieceKind, owner Player) Piece {
	return Piece{Kind: kind, Owner: owner}
}

// IsEmpty reports whether p is the absence of a piece.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoPiece
}

// Letter returns the canonical board letter: uppercase for White,
// lowercase for Black.
func (p Piece) Letter() byte {
	c := p.Kind.Letter()
	if p.Owner == Black && c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	return c
}

// PieceFromLetter converts a board letter to a piece. Uppercase letters are
// White, lowercase Black. Returns false for non-piece characters.
func PieceFromLetter(c byte) (Piece, bool) {
	kind := KindFromLetter(c)
	if kind == NoPiece {
		return Piece{}, false
	}
	owner := White
	if c >= 'a' && c <= 'z' {
		owner = Black
	}
	return Piece{Kind: kind, Owner: owner}, true
}

// Wall is a bitset of wall flags on a single tile.
type Wall uint8

const (
	WallNone  Wall = 0
	WallNorth Wall = 1 << iota
	WallSouth
	WallEast
	WallWest
)

// Has reports whether all flags in w2 are present in w.
func (w Wall) Has(w2 Wall) bool {
	return w&w2 == w2
}

// String returns the set of wall flags as a space-separated string.
func (w Wall) String() string {
	if w == WallNone {
		return "NONE"
	}
	s := ""
	for _, f := range []struct {
		flag Wall
		name string
	}{
		{WallNorth, "NORTH"},
		{WallSouth, "SOUTH"},
		{WallEast, "EAST"},
		{WallWest, "WEST"},
	} {
		if w.Has(f.flag) {
			if s != "" {
				s += " "
			}
			s += f.name
		}
	}
	return s
}

// Opposite returns the mirrored flag held by the neighbouring tile across
// the same edge.
func (w Wall) Opposite() Wall {
	switch w {
	case WallNorth:
		return WallSouth
	case WallSouth:
		return WallNorth
	case WallEast:
		return WallWest
	case WallWest:
		return WallEast
	default:
		return WallNone
	}
}

// TrapdoorState is the state of a trapdoor on a tile.
type TrapdoorState int

const (
	NoTrapdoor TrapdoorState = iota
	TrapdoorHidden
	TrapdoorOpen
)

// String returns the string representation of a trapdoor state.
func (t TrapdoorState) String() string {
	switch t {
	case TrapdoorHidden:
		return "Hidden"
	case TrapdoorOpen:
		return "Open"
	default:
		return "None"
	}
}

// BoardSize is the width and height of the board.
const BoardSize = 8

// KnightOffsets are the eight knight jump vectors.
var KnightOffsets = [8]Position{
	{File: 1, Rank: 2}, {File: 2, Rank: 1},
	{File: 2, Rank: -1}, {File: 1, Rank: -2},
	{File: -1, Rank: -2}, {File: -2, Rank: -1},
	{File: -2, Rank: 1}, {File: -1, Rank: 2},
}

// OrthogonalDirs are the four rook directions.
var OrthogonalDirs = [4]Position{
	{File: 1}, {File: -1}, {Rank: 1}, {Rank: -1},
}

// DiagonalDirs are the four bishop directions.
var DiagonalDirs = [4]Position{
	{File: 1, Rank: 1}, {File: 1, Rank: -1},
	{File: -1, Rank: 1}, {File: -1, Rank: -1},
}

// AllDirs are the eight queen/king directions.
var AllDirs = [8]Position{
	{File: 1}, {File: -1}, {Rank: 1}, {Rank: -1},
	{File: 1, Rank: 1}, {File: 1, Rank: -1},
	{File: -1, Rank: 1}, {File: -1, Rank: -1},
}
