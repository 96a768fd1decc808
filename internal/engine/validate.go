package engine

import (
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/board"
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/chess"
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/errors"
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/move"
)

// ValidateMove checks m against the board's rules. A nil return means the
// move may be passed to Apply; any violation is reported as an illegal-move
// error carrying the move's canonical text.
func ValidateMove(b *board.Board, m move.Move) error {
	illegal := func() error { return errors.IllegalMove(m.String()) }

	if m.Player != b.State.ToMove {
		return illegal()
	}
	if m.Kind != move.Null && (!m.Origin.OnBoard() || !m.Dest.OnBoard()) {
		return illegal()
	}

	switch m.Kind {
	case move.PlaceWall:
		return validateWall(b, m)

	case move.PlaceMine:
		if b.PhasePly <= 0 || b.MinesLeft[m.Player] <= 0 {
			return illegal()
		}
		if m.Origin.Rank != 3 && m.Origin.Rank != 4 {
			return illegal()
		}
		if b.At(m.Origin).Mined {
			return illegal()
		}
		if mines, _ := b.CountObstacles(); mines >= 2 {
			return illegal()
		}

	case move.PlaceTrapdoor:
		if b.PhasePly <= 0 || b.TrapdoorsLeft[m.Player] <= 0 {
			return illegal()
		}
		if m.Origin.Rank < 2 || m.Origin.Rank > 5 {
			return illegal()
		}
		if b.At(m.Origin).Trapdoor != chess.NoTrapdoor {
			return illegal()
		}
		if _, trapdoors := b.CountObstacles(); trapdoors >= 2 {
			return illegal()
		}

	case move.Null:
		if b.PhasePly <= 0 {
			return illegal()
		}

	case move.KingCastle, move.QueenCastle:
		return validateCastle(b, m)

	case move.Promotion:
		actor := b.PieceAt(m.Origin)
		if actor.Kind != chess.Pawn || actor.Owner != m.Player {
			return illegal()
		}
		if m.Dest.Rank != promotionRank(m.Player) {
			return illegal()
		}
		if !destIn(LegalMoves(b, m.Origin), m.Dest) {
			return illegal()
		}

	case move.Simple:
		actor := b.PieceAt(m.Origin)
		if actor.IsEmpty() || actor.Owner != m.Player {
			return illegal()
		}
		// A pawn reaching its far rank must promote instead.
		if actor.Kind == chess.Pawn && m.Dest.Rank == promotionRank(m.Player) {
			return illegal()
		}
		if !destIn(LegalMoves(b, m.Origin), m.Dest) {
			return illegal()
		}
	}
	return nil
}

// validateWall checks a wall placement: an authoritative south or west edge
// that is not the board boundary, not already walled, with a wall in
// reserve.
func validateWall(b *board.Board, m move.Move) error {
	illegal := func() error { return errors.IllegalMove(m.String()) }

	if m.Side != chess.WallSouth && m.Side != chess.WallWest {
		return illegal()
	}
	if m.Side == chess.WallSouth && m.Origin.Rank == 0 {
		return illegal()
	}
	if m.Side == chess.WallWest && m.Origin.File == 0 {
		return illegal()
	}
	if b.State.WallReserve[m.Player] <= 0 {
		return illegal()
	}
	if b.At(m.Origin).Walls.Has(m.Side) {
		return illegal()
	}
	return nil
}

// validateCastle checks castling rights and the king's path: every square
// the king passes through, destination included, must be empty and free of
// enemy attack, and the king must not start in check.
func validateCastle(b *board.Board, m move.Move) error {
	illegal := func() error { return errors.IllegalMove(m.String()) }

	rights := b.State.Castling[m.Player]
	if m.Kind == move.KingCastle && !rights.King {
		return illegal()
	}
	if m.Kind == move.QueenCastle && !rights.Queen {
		return illegal()
	}

	if king := b.PieceAt(m.Origin); king.Kind != chess.King || king.Owner != m.Player {
		return illegal()
	}
	rookFrom, _ := m.RookMove()
	if rook := b.PieceAt(rookFrom); rook.Kind != chess.Rook || rook.Owner != m.Player {
		return illegal()
	}

	if InCheck(b, m.Player) {
		return illegal()
	}

	dir := m.Dest.Sub(m.Origin).Norm()
	for pos := m.Origin.Add(dir); ; pos = pos.Add(dir) {
		if b.At(pos).Occupied() {
			return illegal()
		}
		if len(AttackersOf(b, pos, m.Player.Opponent())) > 0 {
			return illegal()
		}
		if pos == m.Dest {
			break
		}
	}

	// Queen side, the rook also passes over the knight's square.
	if m.Kind == move.QueenCastle && b.At(chess.Pos(1, m.Origin.Rank)).Occupied() {
		return illegal()
	}
	return nil
}

// promotionRank is the far rank for a player's pawns.
func promotionRank(player chess.Player) int {
	if player == chess.White {
		return chess.BoardSize - 1
	}
	return 0
}

func destIn(moves []chess.Position, dest chess.Position) bool {
	for _, p := range moves {
		if p == dest {
			return true
		}
	}
	return false
}
