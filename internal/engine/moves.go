package engine

import (
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/board"
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/chess"
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/move"
)

// Moves returns the destinations the piece at pos could move to, without
// regard for the mover's own king. Self-captures and wall-blocked or
// piece-blocked paths are already excluded; king destinations under enemy
// attack are filtered here as well.
func Moves(b *board.Board, pos chess.Position) []chess.Position {
	actor := b.PieceAt(pos)
	if actor.IsEmpty() {
		return nil
	}

	switch actor.Kind {
	case chess.Pawn:
		return pawnMoves(b, pos, actor.Owner)
	case chess.Knight:
		return knightMoves(b, pos, actor.Owner)
	case chess.Bishop:
		return slidingMoves(b, pos, actor.Owner, chess.DiagonalDirs[:])
	case chess.Rook:
		return slidingMoves(b, pos, actor.Owner, chess.OrthogonalDirs[:])
	case chess.Queen:
		return slidingMoves(b, pos, actor.Owner, chess.AllDirs[:])
	case chess.King:
		return kingMoves(b, pos, actor.Owner)
	default:
		return nil
	}
}

// pawnStartRank is the rank a player's pawns start on.
func pawnStartRank(player chess.Player) int {
	if player == chess.White {
		return 1
	}
	return chess.BoardSize - 2
}

func pawnMoves(b *board.Board, pos chess.Position, player chess.Player) []chess.Position {
	var out []chess.Position
	forward := chess.Pos(0, player.Forward())

	// Forward steps require empty tiles and no wall across the edge.
	front := pos.Add(forward)
	if !b.WallBlocked(pos, forward) && !b.At(front).Occupied() {
		out = append(out, front)
		dfront := front.Add(forward)
		if pos.Rank == pawnStartRank(player) &&
			!b.WallBlocked(front, forward) && !b.At(dfront).Occupied() {
			out = append(out, dfront)
		}
	}

	// Diagonal captures, including the en-passant target.
	for _, df := range []int{-1, 1} {
		dir := chess.Pos(df, player.Forward())
		if b.WallBlocked(pos, dir) {
			continue
		}
		target := pos.Add(dir)
		if opp := b.PieceAt(target); !opp.IsEmpty() && opp.Owner != player {
			out = append(out, target)
		} else if b.State.HasEnPassant && target == b.State.EnPassant {
			out = append(out, target)
		}
	}
	return out
}

func knightMoves(b *board.Board, pos chess.Position, player chess.Player) []chess.Position {
	var out []chess.Position
	for _, off := range chess.KnightOffsets {
		target := pos.Add(off)
		if !target.OnBoard() {
			continue
		}
		if opp := b.PieceAt(target); opp.IsEmpty() || opp.Owner != player {
			out = append(out, target)
		}
	}
	return out
}

func slidingMoves(b *board.Board, pos chess.Position, player chess.Player, dirs []chess.Position) []chess.Position {
	var out []chess.Position
	for _, dir := range dirs {
		for _, target := range b.Run(pos, dir) {
			opp := b.PieceAt(target)
			if opp.IsEmpty() {
				out = append(out, target)
				continue
			}
			if opp.Owner != player {
				out = append(out, target)
			}
			break
		}
	}
	return out
}

// kingMoves generates one-step king destinations, discarding squares the
// opponent attacks. The king's own square is vacated for the attack check
// so it is not mistaken for a ray blocker.
func kingMoves(b *board.Board, pos chess.Position, player chess.Player) []chess.Position {
	ghost := b.Clone()
	ghost.ClearPiece(pos)

	var out []chess.Position
	for _, dir := range chess.AllDirs {
		if b.WallBlocked(pos, dir) {
			continue
		}
		target := pos.Add(dir)
		if opp := b.PieceAt(target); !opp.IsEmpty() && opp.Owner == player {
			continue
		}
		if len(AttackersOf(ghost, target, player.Opponent())) > 0 {
			continue
		}
		out = append(out, target)
	}
	return out
}

// LegalMoves filters Moves by provisionally applying each candidate and
// keeping only those that leave the mover's own king out of check.
func LegalMoves(b *board.Board, pos chess.Position) []chess.Position {
	actor := b.PieceAt(pos)
	if actor.IsEmpty() {
		return nil
	}

	var out []chess.Position
	for _, dest := range Moves(b, pos) {
		trial := b.Clone()
		movePiece(trial, pos, dest)
		if !InCheck(trial, actor.Owner) {
			out = append(out, dest)
		}
	}
	return out
}

// HasLegalMove reports whether player has at least one legal piece move.
// Castling counts: a position where the king's only way out is 0-0 is not
// stalemate.
func HasLegalMove(b *board.Board, player chess.Player) bool {
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			pos := chess.Pos(file, rank)
			if p := b.PieceAt(pos); p.IsEmpty() || p.Owner != player {
				continue
			}
			if len(LegalMoves(b, pos)) > 0 {
				return true
			}
		}
	}
	for _, m := range []move.Move{move.NewKingCastle(player), move.NewQueenCastle(player)} {
		if validateCastle(b, m) == nil {
			return true
		}
	}
	return false
}
