package engine

import (
	"strings"
	"testing"

	"github.com/lo9ud/comsci-su-obstacle-chess/internal/board"
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/chess"
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/testutil"
)

func TestApplyDoesNotMutateInput(t *testing.T) {
	b := board.Standard()
	before := b.Canonical()

	Apply(b, mustMove(t, chess.White, "e2-e4"))
	testutil.AssertEqual(t, b.Canonical(), before)
}

func TestApplySimpleMove(t *testing.T) {
	b := board.Standard()
	nb := Apply(b, mustMove(t, chess.White, "g1-f3"))

	testutil.AssertEqual(t, nb.PieceAt(mustPos(t, "f3")), chess.NewPiece(chess.Knight, chess.White))
	testutil.AssertTrue(t, !nb.At(mustPos(t, "g1")).Occupied(), "g1 vacated")
	testutil.AssertEqual(t, nb.State.ToMove, chess.Black)
	testutil.AssertEqual(t, nb.State.Clock, 1)
	testutil.AssertEqual(t, nb.Turn, 2)
	testutil.AssertEqual(t, nb.PhasePly, board.ObstaclePhasePly-1)
}

func TestApplyClockResets(t *testing.T) {
	b := board.Standard()

	// A pawn move resets the clock.
	nb := Apply(b, mustMove(t, chess.White, "e2-e4"))
	testutil.AssertEqual(t, nb.State.Clock, 0)

	// A capture resets it too; a quiet piece move increments.
	cap := mustBoard(t,
		"n...k...",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"R...K...",
		"w 3 3 - - - - - 7",
	)
	nb = Apply(cap, mustMove(t, chess.White, "a1-a8"))
	testutil.AssertEqual(t, nb.State.Clock, 0, "capture resets")
	nb = Apply(cap, mustMove(t, chess.White, "e1-e2"))
	testutil.AssertEqual(t, nb.State.Clock, 8, "quiet king move increments")
}

func TestApplyClockSaturates(t *testing.T) {
	b := mustBoard(t,
		"....k...",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"R...K...",
		"w 3 3 - - - - - 100",
	)

	// A quiet move at the limit keeps the clock at 100, so the board's own
	// canonical form stays parseable.
	nb := Apply(b, mustMove(t, chess.White, "a1-a4"))
	testutil.AssertEqual(t, nb.State.Clock, 100)

	_, err := board.Parse(strings.Split(nb.Canonical(), "\n"))
	testutil.AssertNoError(t, err, "round trip at the clock limit")
}

func TestApplyEnPassant(t *testing.T) {
	b := mustBoard(t,
		"....k...",
		"...p....",
		"........",
		"....P...",
		"........",
		"........",
		"........",
		"....K...",
		"b 3 3 - - - - - 0",
	)

	// The double step leaves a target behind the pawn.
	b = Apply(b, mustMove(t, chess.Black, "d7-d5"))
	testutil.AssertTrue(t, b.State.HasEnPassant, "target set")
	testutil.AssertEqual(t, b.State.EnPassant.Algebraic(), "d6")

	// Capturing onto the target removes the pawn behind it.
	b = Apply(b, mustMove(t, chess.White, "e5-d6"))
	testutil.AssertEqual(t, b.PieceAt(mustPos(t, "d6")), chess.NewPiece(chess.Pawn, chess.White))
	testutil.AssertTrue(t, !b.At(mustPos(t, "d5")).Occupied(), "captured pawn removed")
	testutil.AssertFalse(t, b.State.HasEnPassant, "target cleared")
}

func TestApplyCastle(t *testing.T) {
	b := mustBoard(t,
		"r...k..r",
		"pppppppp",
		"........",
		"........",
		"........",
		"........",
		"PPPPPPPP",
		"R...K..R",
		"w 3 3 + + + + - 0",
	)

	nb := Apply(b, mustMove(t, chess.White, "0-0"))
	testutil.AssertEqual(t, nb.PieceAt(mustPos(t, "g1")), chess.NewPiece(chess.King, chess.White))
	testutil.AssertEqual(t, nb.PieceAt(mustPos(t, "f1")), chess.NewPiece(chess.Rook, chess.White))
	testutil.AssertEqual(t, nb.State.Castling[chess.White], board.SideRights{})

	nb = Apply(nb, mustMove(t, chess.Black, "0-0-0"))
	testutil.AssertEqual(t, nb.PieceAt(mustPos(t, "c8")), chess.NewPiece(chess.King, chess.Black))
	testutil.AssertEqual(t, nb.PieceAt(mustPos(t, "d8")), chess.NewPiece(chess.Rook, chess.Black))
}

func TestApplyRookMoveClearsSingleRight(t *testing.T) {
	b := mustBoard(t,
		"r...k..r",
		"pppppppp",
		"........",
		"........",
		"........",
		"........",
		"PPPPPPPP",
		"R...K..R",
		"w 3 3 + + + + - 0",
	)

	nb := Apply(b, mustMove(t, chess.White, "h1-g1"))
	testutil.AssertEqual(t, nb.State.Castling[chess.White], board.SideRights{Queen: true})
}

func TestApplyPromotion(t *testing.T) {
	b := mustBoard(t,
		"....k...",
		".P......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"....K...",
		"w 3 3 - - - - - 3",
	)

	nb := Apply(b, mustMove(t, chess.White, "b7-b8=Q"))
	testutil.AssertEqual(t, nb.PieceAt(mustPos(t, "b8")), chess.NewPiece(chess.Queen, chess.White))
	testutil.AssertTrue(t, !nb.At(mustPos(t, "b7")).Occupied(), "b7 vacated")
	testutil.AssertEqual(t, nb.State.Clock, 0, "pawn move resets clock")
}

func TestApplyMineDetonation(t *testing.T) {
	b := mustBoard(t,
		"....k...",
		"........",
		"........",
		"..._n....",
		"...M....",
		"....P...",
		"........",
		"...RK...",
		"w 2 3 - - - - - 9",
	)

	// The rook drives onto the mine at d4. The blast clears the rook and
	// the e3 pawn, but the wall under d5 shields the knight.
	nb := Apply(b, mustMove(t, chess.White, "d1-d4"))

	testutil.AssertTrue(t, !nb.At(mustPos(t, "d4")).Occupied(), "detonation square cleared")
	testutil.AssertFalse(t, nb.At(mustPos(t, "d4")).Mined, "mine removed")
	testutil.AssertTrue(t, !nb.At(mustPos(t, "e3")).Occupied(), "unshielded neighbour cleared")
	testutil.AssertEqual(t, nb.PieceAt(mustPos(t, "d5")), chess.NewPiece(chess.Knight, chess.Black))
	testutil.AssertEqual(t, nb.State.Clock, 0)
}

func TestApplyTrapdoors(t *testing.T) {
	b := mustBoard(t,
		"....k...",
		"........",
		"........",
		"...D....",
		"........",
		"........",
		"........",
		"...RK...",
		"w 3 3 - - - - - 4",
	)

	// Landing on a hidden trapdoor opens it and swallows the piece.
	nb := Apply(b, mustMove(t, chess.White, "d1-d5"))
	testutil.AssertTrue(t, !nb.At(mustPos(t, "d5")).Occupied(), "piece swallowed")
	testutil.AssertEqual(t, nb.At(mustPos(t, "d5")).Trapdoor, chess.TrapdoorOpen)
	testutil.AssertEqual(t, nb.State.Clock, 0)

	// The open trapdoor stays hazardous.
	nb.SetPiece(mustPos(t, "d6"), chess.NewPiece(chess.Rook, chess.Black))
	nb2 := Apply(nb, mustMove(t, chess.Black, "d6-d5"))
	testutil.AssertTrue(t, !nb2.At(mustPos(t, "d5")).Occupied(), "second piece swallowed")
	testutil.AssertEqual(t, nb2.At(mustPos(t, "d5")).Trapdoor, chess.TrapdoorOpen)
}

func TestApplyPlacements(t *testing.T) {
	b := board.Standard()

	nb := Apply(b, mustMove(t, chess.White, "Md4"))
	testutil.AssertTrue(t, nb.At(mustPos(t, "d4")).Mined, "mine placed")
	testutil.AssertEqual(t, nb.MinesLeft[chess.White], 0)

	nb = Apply(nb, mustMove(t, chess.Black, "De6"))
	testutil.AssertEqual(t, nb.At(mustPos(t, "e6")).Trapdoor, chess.TrapdoorHidden)
	testutil.AssertEqual(t, nb.TrapdoorsLeft[chess.Black], 0)

	nb = Apply(nb, mustMove(t, chess.White, "_e4"))
	testutil.AssertTrue(t, nb.At(mustPos(t, "e4")).Walls.Has(chess.WallSouth), "wall placed")
	testutil.AssertTrue(t, nb.At(mustPos(t, "e3")).Walls.Has(chess.WallNorth), "wall mirrored")
	testutil.AssertEqual(t, nb.State.WallReserve[chess.White], 2)
}

func TestWallConservation(t *testing.T) {
	b := board.Standard()
	texts := []string{"_d4", "|e5", "Md4", "...", "_g3", "|b6", "_c5", "|f4"}

	for _, text := range texts {
		m := mustMove(t, b.State.ToMove, text)
		if err := ValidateMove(b, m); err != nil {
			continue
		}
		b = Apply(b, m)

		total := b.WallsOnBoard() +
			b.State.WallReserve[chess.White] + b.State.WallReserve[chess.Black]
		testutil.AssertEqual(t, total, board.TotalWalls, "after %s", text)
	}
}
