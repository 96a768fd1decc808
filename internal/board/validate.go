package board

import (
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/chess"
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/errors"
)

// trapdoor and mine placement bands, as zero-indexed ranks.
var (
	trapdoorRanks = map[int]bool{2: true, 3: true, 4: true, 5: true}
	mineRanks     = map[int]bool{3: true, 4: true}
)

// pieceCensus tallies one player's pieces during validation.
type pieceCensus struct {
	counts     [chess.King + 1]int
	promotions int
	total      int
}

// Validate checks the board against the setup rules: obstacle counts and
// placement bands, per-player piece limits with promotion bookkeeping, and
// wall conservation. Squares are scanned from rank 8 down so the reported
// square is the first offending one in reading order.
func (b *Board) Validate() error {
	var (
		mines     int
		trapdoors int
		walls     int
		census    [2]pieceCensus
	)

	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < chess.BoardSize; file++ {
			pos := chess.Pos(file, rank)
			tile := b.At(pos)

			if tile.Trapdoor != chess.NoTrapdoor {
				trapdoors++
				if !trapdoorRanks[rank] || trapdoors > 2 {
					return errors.IllegalBoard(pos.Algebraic())
				}
			}

			if tile.Mined {
				mines++
				if !mineRanks[rank] || mines > 2 {
					return errors.IllegalBoard(pos.Algebraic())
				}
			}

			// Only south and west flags are counted; north and east are
			// mirrors of a neighbour's authoritative flag.
			if tile.Walls.Has(chess.WallSouth) {
				walls++
				if rank == 0 {
					return errors.IllegalBoard(pos.Algebraic())
				}
			}
			if tile.Walls.Has(chess.WallWest) {
				walls++
				if file == 0 {
					return errors.IllegalBoard(pos.Algebraic())
				}
			}
			if walls > TotalWalls {
				return errors.IllegalBoard(pos.Algebraic())
			}

			if !tile.Occupied() {
				continue
			}
			if err := census[tile.Piece.Owner].add(tile.Piece.Kind, pos); err != nil {
				return err
			}
		}
	}

	for _, player := range []chess.Player{chess.White, chess.Black} {
		corner := chess.Pos(chess.BoardSize-1, 0)
		if census[player].total > 16 {
			return errors.IllegalBoard(corner.Algebraic())
		}
		if census[player].counts[chess.King] < 1 {
			return errors.IllegalBoard(corner.Algebraic())
		}
	}

	if walls+b.State.WallReserve[chess.White]+b.State.WallReserve[chess.Black] != TotalWalls {
		return errors.ErrIllegalStatusLine
	}
	return nil
}

// add records one piece and enforces the per-kind limits. Surplus minor
// pieces, rooks and queens are accounted as promotions, which must be
// covered by missing pawns.
func (c *pieceCensus) add(kind chess.PieceKind, pos chess.Position) error {
	c.counts[kind]++
	c.total++
	allowed := 8 - c.counts[chess.Pawn]

	switch kind {
	case chess.Pawn:
		if c.counts[chess.Pawn] > 8 {
			return errors.IllegalBoard(pos.Algebraic())
		}
		allowed = 8 - c.counts[chess.Pawn]
		if allowed < c.promotions {
			return errors.IllegalBoard(pos.Algebraic())
		}
		if pos.Rank == 0 || pos.Rank == chess.BoardSize-1 {
			return errors.IllegalBoard(pos.Algebraic())
		}
	case chess.Knight, chess.Bishop, chess.Rook:
		if c.counts[kind] > 2 {
			c.promotions++
		}
	case chess.Queen:
		if c.counts[chess.Queen] > 1 {
			c.promotions++
		}
	case chess.King:
		if c.counts[chess.King] > 1 {
			return errors.IllegalBoard(pos.Algebraic())
		}
	}

	if c.promotions > allowed {
		return errors.IllegalBoard(pos.Algebraic())
	}
	return nil
}
