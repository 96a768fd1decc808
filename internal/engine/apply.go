package engine

import (
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/board"
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/chess"
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/move"
)

// Apply executes a validated move and returns the resulting board. The
// input board is never mutated; the result is always a clone.
func Apply(b *board.Board, m move.Move) *board.Board {
	nb := b.Clone()

	// The status line carries the clock as 0..100; past 100 the fifty-move
	// draw is already available, so the count saturates there.
	if nb.State.Clock++; nb.State.Clock > 100 {
		nb.State.Clock = 100
	}

	// A fresh double step re-establishes the target inside movePiece.
	nb.State.HasEnPassant = false

	switch m.Kind {
	case move.PlaceWall:
		nb.AddWall(m.Origin, m.Side)
		nb.State.WallReserve[m.Player]--

	case move.PlaceMine:
		t := nb.At(m.Origin)
		t.Mined = true
		nb.SetTile(m.Origin, t)
		nb.MinesLeft[m.Player]--

	case move.PlaceTrapdoor:
		t := nb.At(m.Origin)
		t.Trapdoor = chess.TrapdoorHidden
		nb.SetTile(m.Origin, t)
		nb.TrapdoorsLeft[m.Player]--

	case move.KingCastle, move.QueenCastle:
		applyCastle(nb, m)

	case move.Promotion:
		movePiece(nb, m.Origin, m.Dest)
		// Swallowed pieces are not replaced; promotion ranks cannot hold
		// mines or trapdoors on a valid board, so this only guards
		// unvalidated input.
		if nb.At(m.Dest).Occupied() {
			nb.SetPiece(m.Dest, chess.NewPiece(m.Promote, m.Player))
		}

	case move.Simple:
		movePiece(nb, m.Origin, m.Dest)

	case move.Null:
		// Pass.
	}

	if nb.PhasePly > 0 {
		nb.PhasePly--
	}
	nb.State.ToMove = nb.State.ToMove.Opponent()
	nb.Turn++
	return nb
}

// applyCastle relocates the king and rook directly.
func applyCastle(b *board.Board, m move.Move) {
	king := b.PieceAt(m.Origin)
	b.ClearPiece(m.Origin)
	b.SetPiece(m.Dest, king)

	rookFrom, rookTo := m.RookMove()
	rook := b.PieceAt(rookFrom)
	b.ClearPiece(rookFrom)
	b.SetPiece(rookTo, rook)

	b.State.ClearCastling(m.Player)
}

// movePiece relocates the piece at origin to dest in place, handling
// captures, en passant, castling-right loss, mine detonation and trapdoor
// falls. Reports whether a piece was captured.
func movePiece(b *board.Board, origin, dest chess.Position) bool {
	captured := false
	if b.At(dest).Occupied() {
		captured = true
		b.State.Clock = 0
	}

	actor := b.PieceAt(origin)
	switch actor.Kind {
	case chess.Pawn:
		b.State.Clock = 0
		if diff := dest.Rank - origin.Rank; diff == 2 || diff == -2 {
			b.State.HasEnPassant = true
			b.State.EnPassant = chess.Pos(origin.File, (origin.Rank+dest.Rank)/2)
		} else if !b.At(dest).Occupied() && dest.File != origin.File {
			// Diagonal onto an empty tile is an en-passant capture; the
			// victim sits one rank behind the destination.
			victim := chess.Pos(dest.File, origin.Rank)
			if b.At(victim).Occupied() {
				b.ClearPiece(victim)
				captured = true
			}
		}

	case chess.King:
		b.State.ClearCastling(actor.Owner)

	case chess.Rook:
		switch origin.File {
		case 0:
			b.State.Castling[actor.Owner].Queen = false
		case chess.BoardSize - 1:
			b.State.Castling[actor.Owner].King = false
		}
	}

	b.SetPiece(dest, actor)
	b.ClearPiece(origin)

	if b.At(dest).Mined {
		detonateMine(b, dest)
		return true
	}

	if t := b.At(dest); t.Trapdoor != chess.NoTrapdoor {
		t.Trapdoor = chess.TrapdoorOpen
		t.Piece = chess.Piece{}
		b.SetTile(dest, t)
		b.State.Clock = 0
	}

	return captured
}

// detonateMine clears the detonation tile and every neighbour the blast can
// reach. A wall across the shared edge shields the neighbour.
func detonateMine(b *board.Board, pos chess.Position) {
	t := b.At(pos)
	t.Piece = chess.Piece{}
	t.Mined = false
	b.SetTile(pos, t)

	for _, dir := range chess.AllDirs {
		if b.WallBlocked(pos, dir) {
			continue
		}
		b.ClearPiece(pos.Add(dir))
	}

	b.State.Clock = 0
}
