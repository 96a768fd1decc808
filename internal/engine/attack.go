// Package engine implements move generation, legality validation, state
// transition and terminal-condition detection for obstacle chess.
package engine

import (
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/board"
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/chess"
)

// AttackersOf returns the positions of every piece belonging to byPlayer
// that attacks pos. Sliding attacks stop at the first occupied tile or
// wall-blocked edge, whichever comes first. Knights jump walls; pawn and
// king attacks are blocked by a wall across the shared edge.
func AttackersOf(b *board.Board, pos chess.Position, byPlayer chess.Player) []chess.Position {
	var attackers []chess.Position

	// Adjacent kings and pawns.
	for _, dir := range chess.AllDirs {
		if b.WallBlocked(pos, dir) {
			continue
		}
		n := pos.Add(dir)
		p := b.PieceAt(n)
		if p.IsEmpty() || p.Owner != byPlayer {
			continue
		}
		switch p.Kind {
		case chess.King:
			attackers = append(attackers, n)
		case chess.Pawn:
			// A pawn attacks the two tiles diagonally ahead of it.
			delta := pos.Sub(n)
			if delta.Rank == byPlayer.Forward() && (delta.File == 1 || delta.File == -1) {
				attackers = append(attackers, n)
			}
		}
	}

	// Sliding pieces along rays.
	for _, dir := range chess.OrthogonalDirs {
		if a, ok := rayAttacker(b, pos, dir, byPlayer, chess.Rook); ok {
			attackers = append(attackers, a)
		}
	}
	for _, dir := range chess.DiagonalDirs {
		if a, ok := rayAttacker(b, pos, dir, byPlayer, chess.Bishop); ok {
			attackers = append(attackers, a)
		}
	}

	// Knights.
	for _, off := range chess.KnightOffsets {
		n := pos.Add(off)
		if !n.OnBoard() {
			continue
		}
		if p := b.PieceAt(n); p.Kind == chess.Knight && p.Owner == byPlayer {
			attackers = append(attackers, n)
		}
	}

	return attackers
}

// rayAttacker walks the wall-free run from pos along dir and reports the
// first occupant, if it is byPlayer's queen or the given slider kind.
func rayAttacker(b *board.Board, pos, dir chess.Position, byPlayer chess.Player, slider chess.PieceKind) (chess.Position, bool) {
	for _, p := range b.Run(pos, dir) {
		occ := b.PieceAt(p)
		if occ.IsEmpty() {
			continue
		}
		if occ.Owner == byPlayer && (occ.Kind == slider || occ.Kind == chess.Queen) {
			return p, true
		}
		break
	}
	return chess.Position{}, false
}

// InCheck reports whether player's king is attacked by the opponent.
func InCheck(b *board.Board, player chess.Player) bool {
	king, ok := b.FindKing(player)
	if !ok {
		return false
	}
	return len(AttackersOf(b, king, player.Opponent())) > 0
}
