// Package move defines the move representation for obstacle chess and its
// canonical notation.
package move

import (
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/chess"
)

// Kind discriminates the variants of a Move.
type Kind int

const (
	// Simple is an ordinary move or capture.
	Simple Kind = iota
	// Promotion is a pawn move onto the far rank with a replacement piece.
	Promotion
	// KingCastle is a king-side castle.
	KingCastle
	// QueenCastle is a queen-side castle.
	QueenCastle
	// PlaceWall places a wall on the south or west edge of a tile.
	PlaceWall
	// PlaceMine places a mine during the obstacle phase.
	PlaceMine
	// PlaceTrapdoor places a hidden trapdoor during the obstacle phase.
	PlaceTrapdoor
	// Null is the pass move, legal only during the obstacle phase.
	Null
)

// String returns the name of the move kind.
func (k Kind) String() string {
	names := []string{
		"Simple", "Promotion", "KingCastle", "QueenCastle",
		"PlaceWall", "PlaceMine", "PlaceTrapdoor", "Null",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Move is a closed tagged union over the move kinds. Each variant uses only
// the fields relevant to it; a Move is constructed once and never mutated.
type Move struct {
	Kind   Kind
	Player chess.Player

	// Origin and Dest are set for Simple and Promotion moves; Origin alone
	// is set for the placement moves.
	Origin chess.Position
	Dest   chess.Position

	// Promote is the replacement piece kind for Promotion moves.
	Promote chess.PieceKind

	// Side is the wall edge for PlaceWall moves: chess.WallSouth or
	// chess.WallWest.
	Side chess.Wall
}

// NewSimple creates an ordinary move or capture.
func NewSimple(player chess.Player, origin, dest chess.Position) Move {
	return Move{Kind: Simple, Player: player, Origin: origin, Dest: dest}
}

// NewPromotion creates a promotion move.
func NewPromotion(player chess.Player, origin, dest chess.Position, kind chess.PieceKind) Move {
	return Move{Kind: Promotion, Player: player, Origin: origin, Dest: dest, Promote: kind}
}

// NewKingCastle creates a king-side castle for the given player.
func NewKingCastle(player chess.Player) Move {
	m := Move{Kind: KingCastle, Player: player}
	m.Origin, m.Dest = castleSquares(player, true)
	return m
}

// NewQueenCastle creates a queen-side castle for the given player.
func NewQueenCastle(player chess.Player) Move {
	m := Move{Kind: QueenCastle, Player: player}
	m.Origin, m.Dest = castleSquares(player, false)
	return m
}

// NewPlaceWall creates a wall placement on the given edge of origin.
// Only chess.WallSouth and chess.WallWest are accepted as authoritative.
func NewPlaceWall(player chess.Player, origin chess.Position, side chess.Wall) Move {
	return Move{Kind: PlaceWall, Player: player, Origin: origin, Dest: origin, Side: side}
}

// NewPlaceMine creates a mine placement at origin.
func NewPlaceMine(player chess.Player, origin chess.Position) Move {
	return Move{Kind: PlaceMine, Player: player, Origin: origin, Dest: origin}
}

// NewPlaceTrapdoor creates a trapdoor placement at origin.
func NewPlaceTrapdoor(player chess.Player, origin chess.Position) Move {
	return Move{Kind: PlaceTrapdoor, Player: player, Origin: origin, Dest: origin}
}

// NewNull creates the pass move.
func NewNull(player chess.Player) Move {
	return Move{Kind: Null, Player: player}
}

// castleSquares returns the king's origin and destination for a castle.
func castleSquares(player chess.Player, kingside bool) (chess.Position, chess.Position) {
	rank := 0
	if player == chess.Black {
		rank = 7
	}
	if kingside {
		return chess.Pos(4, rank), chess.Pos(6, rank)
	}
	return chess.Pos(4, rank), chess.Pos(2, rank)
}

// RookMove returns the rook's origin and destination for a castle move.
// The result is meaningful only for KingCastle and QueenCastle kinds.
func (m Move) RookMove() (chess.Position, chess.Position) {
	rank := m.Origin.Rank
	if m.Kind == KingCastle {
		return chess.Pos(7, rank), chess.Pos(5, rank)
	}
	return chess.Pos(0, rank), chess.Pos(3, rank)
}

// IsCastle reports whether m is a castling move.
func (m Move) IsCastle() bool {
	return m.Kind == KingCastle || m.Kind == QueenCastle
}

// IsPlacement reports whether m places a wall, mine or trapdoor.
func (m Move) IsPlacement() bool {
	switch m.Kind {
	case PlaceWall, PlaceMine, PlaceTrapdoor:
		return true
	default:
		return false
	}
}
