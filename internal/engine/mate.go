package engine

import (
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/board"
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/chess"
)

// Checkmate reports the player in checkmate, if any. A player is mated when
// in check with no legal piece move, and no spare wall can be placed to cut
// the checking line.
func Checkmate(b *board.Board) (chess.Player, bool) {
	for _, player := range []chess.Player{chess.White, chess.Black} {
		if !InCheck(b, player) {
			continue
		}
		if HasLegalMove(b, player) {
			return player, false
		}
		if wallCanParry(b, player) {
			return player, false
		}
		return player, true
	}
	return chess.White, false
}

// wallCanParry reports whether the checked player could escape by spending
// a reserve wall. A single sliding attacker on a rank or file can always be
// walled off; a diagonal attacker only if a wall segment already exists
// somewhere along the checking run. Knights and double checks cannot be
// parried.
func wallCanParry(b *board.Board, player chess.Player) bool {
	if b.State.WallReserve[player] <= 0 {
		return false
	}

	king, ok := b.FindKing(player)
	if !ok {
		return false
	}
	attackers := AttackersOf(b, king, player.Opponent())
	if len(attackers) != 1 {
		return false
	}

	attacker := attackers[0]
	delta := king.Sub(attacker)
	switch {
	case delta.File == 0 || delta.Rank == 0:
		return true
	case delta.File == delta.Rank || delta.File == -delta.Rank:
		dir := delta.Norm()
		for pos := attacker; pos != king; pos = pos.Add(dir) {
			if b.At(pos).Walls != chess.WallNone {
				return true
			}
		}
		return b.At(king).Walls != chess.WallNone
	default:
		// Knight check; a wall cannot interrupt a jump.
		return false
	}
}

// Stalemate reports the player in stalemate, if any: no player is in check
// and the reported player has no legal piece move at all.
func Stalemate(b *board.Board) (chess.Player, bool) {
	if InCheck(b, chess.White) || InCheck(b, chess.Black) {
		return chess.White, false
	}
	for _, player := range []chess.Player{chess.White, chess.Black} {
		if !HasLegalMove(b, player) {
			return player, true
		}
	}
	return chess.White, false
}
