package board

import (
	"strings"

	"github.com/lo9ud/comsci-su-obstacle-chess/internal/chess"
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/errors"
)

// Canonical returns the board in canonical text form: eight lines of tiles
// from rank 8 down to rank 1, followed by the status line. The canonical
// form is unique, so parsing and reserializing a valid board is
// byte-identical.
func (b *Board) Canonical() string {
	var sb strings.Builder
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < chess.BoardSize; file++ {
			sb.WriteString(b.tiles[file][rank].Canonical())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(b.State.Canonical())
	return sb.String()
}

// Parse builds a board from its text form: eight tile lines (comments
// already stripped) and a ninth status line. The first line is rank 8.
// Obstacles found on the board consume the owning players' phase
// allowances so that board-wide caps cannot be exceeded by later
// placements.
func Parse(lines []string) (*Board, error) {
	if len(lines) < 9 {
		return nil, errors.ErrIllegalStatusLine
	}
	if len(lines) > 9 {
		return nil, errors.ErrIllegalStatusLine
	}

	b := New()
	for i, line := range lines[:chess.BoardSize] {
		rank := chess.BoardSize - 1 - i
		if err := b.parseRank(rank, line); err != nil {
			return nil, err
		}
	}

	state, err := StateFromString(lines[8])
	if err != nil {
		return nil, err
	}
	b.State = state

	b.NormaliseWalls()
	b.deductPlacedObstacles()
	return b, nil
}

// parseRank fills one rank of the grid from a tile line. Each tile is an
// optional run of '|' and '_' modifiers followed by a content character.
func (b *Board) parseRank(rank int, line string) error {
	file := 0
	var mods []byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == '|' || c == '_' {
			mods = append(mods, c)
			continue
		}

		errPos := chess.Pos(min(file, chess.BoardSize-1), rank)
		if file >= chess.BoardSize {
			return errors.IllegalBoard(errPos.Algebraic())
		}

		tile, ok := tileFromLetter(c)
		if !ok {
			return errors.IllegalBoard(errPos.Algebraic())
		}
		if err := applyWallModifiers(&tile, chess.Pos(file, rank), mods); err != nil {
			return errors.IllegalBoard(errPos.Algebraic())
		}
		b.tiles[file][rank] = tile
		file++
		mods = nil
	}

	// Short line, or modifiers trailing after the final tile.
	if file != chess.BoardSize || len(mods) > 0 {
		return errors.IllegalBoard(chess.Pos(chess.BoardSize-1, rank).Algebraic())
	}
	return nil
}

// applyWallModifiers sets the walls named by mods on the tile. Duplicate
// modifiers and walls on the board's west or south outer edge are rejected.
func applyWallModifiers(t *Tile, pos chess.Position, mods []byte) error {
	if len(mods) > 2 || (len(mods) == 2 && mods[0] == mods[1]) {
		return errors.ErrIllegalBoard
	}
	for _, m := range mods {
		switch m {
		case '|':
			if pos.File == 0 {
				return errors.ErrIllegalBoard
			}
			t.Walls |= chess.WallWest
		case '_':
			if pos.Rank == 0 {
				return errors.ErrIllegalBoard
			}
			t.Walls |= chess.WallSouth
		}
	}
	return nil
}

// deductPlacedObstacles consumes placement allowances for obstacles already
// on the board, charging both players' budgets in board order so the
// board-wide caps hold for later placements.
func (b *Board) deductPlacedObstacles() {
	mines, trapdoors := b.CountObstacles()
	for _, player := range []chess.Player{chess.White, chess.Black} {
		if mines > 0 && b.MinesLeft[player] > 0 {
			b.MinesLeft[player]--
			mines--
		}
		if trapdoors > 0 && b.TrapdoorsLeft[player] > 0 {
			b.TrapdoorsLeft[player]--
			trapdoors--
		}
	}
}
