package board

import (
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/chess"
)

// ObstaclePhasePly is the number of ply in the opening obstacle phase,
// during which mines, trapdoors and null moves are allowed.
const ObstaclePhasePly = 4

// TotalWalls is the number of walls in existence: on the board plus both
// players' reserves.
const TotalWalls = 6

// Board is the full game position: an 8x8 grid of tiles plus the status
// line state, the obstacle-phase counters and the turn counter.
//
// Boards have value semantics for copying: Clone returns an independent
// board, and the engine's state transition always operates on a clone,
// never on its input.
type Board struct {
	tiles [chess.BoardSize][chess.BoardSize]Tile

	// State is the status-line bookkeeping.
	State State

	// PhasePly is the number of obstacle-phase ply remaining. Every applied
	// move decrements it while it is positive.
	PhasePly int

	// MinesLeft and TrapdoorsLeft are each player's remaining obstacle
	// placements, indexed by player.
	MinesLeft     [2]int
	TrapdoorsLeft [2]int

	// Turn counts applied moves, starting at 1.
	Turn int
}

// New returns an empty board with standard state and a fresh obstacle phase.
func New() *Board {
	return &Board{
		State:         StandardState(),
		PhasePly:      ObstaclePhasePly,
		MinesLeft:     [2]int{1, 1},
		TrapdoorsLeft: [2]int{1, 1},
		Turn:          1,
	}
}

// Standard returns a board in the standard chess starting position.
func Standard() *Board {
	b := New()
	backRank := []chess.PieceKind{
		chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
		chess.King, chess.Bishop, chess.Knight, chess.Rook,
	}
	for file := 0; file < chess.BoardSize; file++ {
		b.tiles[file][0].Piece = chess.NewPiece(backRank[file], chess.White)
		b.tiles[file][1].Piece = chess.NewPiece(chess.Pawn, chess.White)
		b.tiles[file][6].Piece = chess.NewPiece(chess.Pawn, chess.Black)
		b.tiles[file][7].Piece = chess.NewPiece(backRank[file], chess.Black)
	}
	return b
}

// At returns the tile at pos. pos must be on the board.
func (b *Board) At(pos chess.Position) Tile {
	return b.tiles[pos.File][pos.Rank]
}

// SetTile replaces the tile at pos.
func (b *Board) SetTile(pos chess.Position, t Tile) {
	b.tiles[pos.File][pos.Rank] = t
}

// PieceAt returns the piece at pos; the zero piece if the tile is empty.
func (b *Board) PieceAt(pos chess.Position) chess.Piece {
	return b.tiles[pos.File][pos.Rank].Piece
}

// SetPiece places a piece at pos, leaving obstacles untouched.
func (b *Board) SetPiece(pos chess.Position, p chess.Piece) {
	b.tiles[pos.File][pos.Rank].Piece = p
}

// ClearPiece removes any piece at pos, leaving obstacles untouched.
func (b *Board) ClearPiece(pos chess.Position) {
	b.tiles[pos.File][pos.Rank].Piece = chess.Piece{}
}

// Clone returns a deep copy of the board. The grid is an array, so a value
// copy is sufficient; no tile is shared with the original.
func (b *Board) Clone() *Board {
	nb := *b
	return &nb
}

// FindKing returns the position of the given player's king. ok is false on
// boards with no such king (only possible before setup validation).
func (b *Board) FindKing(player chess.Player) (chess.Position, bool) {
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			p := b.tiles[file][rank].Piece
			if p.Kind == chess.King && p.Owner == player {
				return chess.Pos(file, rank), true
			}
		}
	}
	return chess.Position{}, false
}

// NormaliseWalls restores the mirrored-neighbour wall invariant: every wall
// flag gains its counterpart on the adjacent tile across the same edge.
// Idempotent; must run after construction and after any wall mutation.
func (b *Board) NormaliseWalls() {
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			pos := chess.Pos(file, rank)
			walls := b.tiles[file][rank].Walls
			for _, edge := range []struct {
				flag chess.Wall
				dir  chess.Position
			}{
				{chess.WallWest, chess.Pos(-1, 0)},
				{chess.WallEast, chess.Pos(1, 0)},
				{chess.WallSouth, chess.Pos(0, -1)},
				{chess.WallNorth, chess.Pos(0, 1)},
			} {
				if !walls.Has(edge.flag) {
					continue
				}
				if n := pos.Add(edge.dir); n.OnBoard() {
					b.tiles[n.File][n.Rank].Walls |= edge.flag.Opposite()
				}
			}
		}
	}
}

// AddWall sets a wall flag on pos and renormalises the board.
func (b *Board) AddWall(pos chess.Position, side chess.Wall) {
	b.tiles[pos.File][pos.Rank].Walls |= side
	b.NormaliseWalls()
}

// WallBlocked reports whether a single step from pos in dir is blocked: the
// step leaves the board, crosses a wall on the matching edge, or — for
// diagonal steps — crosses one of the corner wall configurations. A wall is
// a line segment between tiles, so a diagonal is blocked by a wall shared
// with either of the two straight neighbours.
func (b *Board) WallBlocked(pos, dir chess.Position) bool {
	dest := pos.Add(dir)
	if !dest.OnBoard() {
		return true
	}
	from := b.At(pos).Walls

	switch {
	case dir.Rank == 0: // horizontal
		if dir.File > 0 {
			return from.Has(chess.WallEast)
		}
		return from.Has(chess.WallWest)

	case dir.File == 0: // vertical
		if dir.Rank > 0 {
			return from.Has(chess.WallNorth)
		}
		return from.Has(chess.WallSouth)
	}

	// Diagonal: decompose the motion into its rank-component and
	// file-component walls on the source tile.
	rankWall := chess.WallSouth
	if dir.Rank > 0 {
		rankWall = chess.WallNorth
	}
	fileWall := chess.WallWest
	if dir.File > 0 {
		fileWall = chess.WallEast
	}

	// Tiles across the file and across the rank from the source.
	acrossFile := chess.Pos(dest.File, pos.Rank)
	acrossRank := chess.Pos(pos.File, dest.Rank)

	switch {
	case from.Has(rankWall) && from.Has(fileWall):
		return true
	case from.Has(rankWall) && b.At(acrossFile).Walls.Has(rankWall):
		return true
	case from.Has(fileWall) && b.At(acrossRank).Walls.Has(fileWall):
		return true
	case b.At(dest).Walls.Has(rankWall.Opposite()) && b.At(dest).Walls.Has(fileWall.Opposite()):
		return true
	}
	return false
}

// Run returns the wall-free prefix of the line from origin along dir: every
// position reachable without crossing a wall, out to the board edge. Pieces
// are not considered; callers filter occupants.
func (b *Board) Run(origin, dir chess.Position) []chess.Position {
	var out []chess.Position
	for cur := origin; !b.WallBlocked(cur, dir); cur = cur.Add(dir) {
		out = append(out, cur.Add(dir))
	}
	return out
}

// WallsOnBoard counts authoritative (south/west) wall flags in play.
func (b *Board) WallsOnBoard() int {
	n := 0
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			w := b.tiles[file][rank].Walls
			if w.Has(chess.WallSouth) {
				n++
			}
			if w.Has(chess.WallWest) {
				n++
			}
		}
	}
	return n
}

// CountObstacles returns the number of mines and trapdoors on the board.
func (b *Board) CountObstacles() (mines, trapdoors int) {
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			t := b.tiles[file][rank]
			if t.Mined {
				mines++
			}
			if t.Trapdoor != chess.NoTrapdoor {
				trapdoors++
			}
		}
	}
	return mines, trapdoors
}
