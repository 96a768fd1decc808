package move

import (
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/chess"
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/errors"
)

// Parse converts canonical move notation into a Move made by the given
// player. Anything that does not match the grammar exactly is rejected with
// an error carrying the offending text.
//
// The grammar (ASCII, case-sensitive):
//
//	e2-e4      ordinary move or capture
//	e7-e8=Q    promotion (letter case matches the mover)
//	0-0        king-side castle
//	0-0-0      queen-side castle
//	|e4  _e4   wall on the west / south edge of the tile
//	Me4  De4   mine / trapdoor placement
//	...        null move
func Parse(player chess.Player, text string) (Move, error) {
	switch {
	case text == "...":
		return NewNull(player), nil
	case text == "0-0":
		return NewKingCastle(player), nil
	case text == "0-0-0":
		return NewQueenCastle(player), nil
	case len(text) == 3 && text[0] == '|':
		if pos, ok := chess.PositionFromAlgebraic(text[1:]); ok {
			return NewPlaceWall(player, pos, chess.WallWest), nil
		}
	case len(text) == 3 && text[0] == '_':
		if pos, ok := chess.PositionFromAlgebraic(text[1:]); ok {
			return NewPlaceWall(player, pos, chess.WallSouth), nil
		}
	case len(text) == 3 && text[0] == 'M':
		if pos, ok := chess.PositionFromAlgebraic(text[1:]); ok {
			return NewPlaceMine(player, pos), nil
		}
	case len(text) == 5 && text[2] == '-':
		origin, ok1 := chess.PositionFromAlgebraic(text[:2])
		dest, ok2 := chess.PositionFromAlgebraic(text[3:])
		if ok1 && ok2 {
			return NewSimple(player, origin, dest), nil
		}
	case len(text) == 7 && text[2] == '-' && text[5] == '=':
		origin, ok1 := chess.PositionFromAlgebraic(text[:2])
		dest, ok2 := chess.PositionFromAlgebraic(text[3:5])
		if ok1 && ok2 && promotionCaseMatches(player, text[6]) {
			switch kind := chess.KindFromLetter(text[6]); kind {
			case chess.Knight, chess.Bishop, chess.Rook, chess.Queen:
				return NewPromotion(player, origin, dest, kind), nil
			}
		}
	case len(text) == 3 && text[0] == 'D':
		if pos, ok := chess.PositionFromAlgebraic(text[1:]); ok {
			return NewPlaceTrapdoor(player, pos), nil
		}
	}
	return Move{}, errors.IllegalMove(text)
}

// promotionCaseMatches checks that a promotion letter carries the case of
// its owner: uppercase for White, lowercase for Black.
func promotionCaseMatches(player chess.Player, c byte) bool {
	if player == chess.White {
		return c >= 'A' && c <= 'Z'
	}
	return c >= 'a' && c <= 'z'
}

// String returns the canonical notation for m.
func (m Move) String() string {
	switch m.Kind {
	case Null:
		return "..."
	case KingCastle:
		return "0-0"
	case QueenCastle:
		return "0-0-0"
	case PlaceWall:
		if m.Side == chess.WallWest {
			return "|" + m.Origin.Algebraic()
		}
		return "_" + m.Origin.Algebraic()
	case PlaceMine:
		return "M" + m.Origin.Algebraic()
	case PlaceTrapdoor:
		return "D" + m.Origin.Algebraic()
	case Promotion:
		letter := chess.NewPiece(m.Promote, m.Player).Letter()
		return m.Origin.Algebraic() + "-" + m.Dest.Algebraic() + "=" + string(letter)
	default:
		return m.Origin.Algebraic() + "-" + m.Dest.Algebraic()
	}
}
