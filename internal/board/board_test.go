package board

import (
	"testing"

	"github.com/lo9ud/comsci-su-obstacle-chess/internal/chess"
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/testutil"
)

// mustPos parses an algebraic square, failing the test on bad input.
func mustPos(t *testing.T, s string) chess.Position {
	t.Helper()
	p, ok := chess.PositionFromAlgebraic(s)
	if !ok {
		t.Fatalf("bad square %q", s)
	}
	return p
}

func TestStandardBoard(t *testing.T) {
	b := Standard()

	testutil.AssertEqual(t, b.PieceAt(mustPos(t, "e1")), chess.NewPiece(chess.King, chess.White))
	testutil.AssertEqual(t, b.PieceAt(mustPos(t, "d8")), chess.NewPiece(chess.Queen, chess.Black))
	testutil.AssertEqual(t, b.PieceAt(mustPos(t, "b2")), chess.NewPiece(chess.Pawn, chess.White))
	testutil.AssertTrue(t, !b.At(mustPos(t, "e4")).Occupied(), "e4 empty")
	testutil.AssertEqual(t, b.State.Canonical(), "w 3 3 + + + + - 0")
}

func TestCloneIsIndependent(t *testing.T) {
	b := Standard()
	c := b.Clone()

	c.ClearPiece(mustPos(t, "e2"))
	c.State.Clock = 50

	testutil.AssertTrue(t, b.At(mustPos(t, "e2")).Occupied(), "original keeps its pawn")
	testutil.AssertEqual(t, b.State.Clock, 0)
}

func TestAddWallMirrorsNeighbour(t *testing.T) {
	b := New()
	b.AddWall(mustPos(t, "d4"), chess.WallSouth)
	b.AddWall(mustPos(t, "d4"), chess.WallWest)

	testutil.AssertTrue(t, b.At(mustPos(t, "d3")).Walls.Has(chess.WallNorth), "d3 north mirror")
	testutil.AssertTrue(t, b.At(mustPos(t, "c4")).Walls.Has(chess.WallEast), "c4 east mirror")
	testutil.AssertEqual(t, b.WallsOnBoard(), 2)
}

func TestNormaliseWallsIdempotent(t *testing.T) {
	b := New()
	b.AddWall(mustPos(t, "e5"), chess.WallSouth)

	before := b.Canonical()
	b.NormaliseWalls()
	b.NormaliseWalls()
	testutil.AssertEqual(t, b.Canonical(), before)
}

func TestWallBlocked(t *testing.T) {
	b := New()
	b.AddWall(mustPos(t, "d4"), chess.WallSouth) // wall between d3 and d4

	tests := []struct {
		name string
		from string
		dir  chess.Position
		want bool
	}{
		{"north into wall", "d3", chess.Pos(0, 1), true},
		{"south into wall", "d4", chess.Pos(0, -1), true},
		{"east along wall", "d3", chess.Pos(1, 0), false},
		{"unrelated square", "a1", chess.Pos(0, 1), false},
		{"off board north", "d8", chess.Pos(0, 1), true},
		{"off board west", "a4", chess.Pos(-1, 0), true},
		{"single wall spares the diagonal", "c3", chess.Pos(1, 1), false},
		{"diagonal from d3", "d3", chess.Pos(1, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.WallBlocked(mustPos(t, tt.from), tt.dir)
			if got != tt.want {
				t.Errorf("WallBlocked(%s, %v) = %v, want %v", tt.from, tt.dir, got, tt.want)
			}
		})
	}
}

func TestWallBlockedDiagonals(t *testing.T) {
	t.Run("corner pair", func(t *testing.T) {
		b := New()
		b.AddWall(mustPos(t, "d4"), chess.WallSouth)
		b.AddWall(mustPos(t, "d4"), chess.WallWest)

		// Both crossings of the c3/d4 corner are blocked.
		testutil.AssertTrue(t, b.WallBlocked(mustPos(t, "d4"), chess.Pos(-1, -1)), "d4 to c3")
		testutil.AssertTrue(t, b.WallBlocked(mustPos(t, "c3"), chess.Pos(1, 1)), "c3 to d4")

		// The opposite diagonal of the same corner stays open.
		testutil.AssertFalse(t, b.WallBlocked(mustPos(t, "d3"), chess.Pos(-1, 1)), "d3 to c4")
	})

	t.Run("two tile segment", func(t *testing.T) {
		b := New()
		b.AddWall(mustPos(t, "c4"), chess.WallSouth)
		b.AddWall(mustPos(t, "d4"), chess.WallSouth)

		// Diagonals crossing the middle of the segment are blocked.
		testutil.AssertTrue(t, b.WallBlocked(mustPos(t, "c3"), chess.Pos(1, 1)), "c3 to d4")
		testutil.AssertTrue(t, b.WallBlocked(mustPos(t, "d3"), chess.Pos(-1, 1)), "d3 to c4")
	})
}

func TestRunStopsAtWalls(t *testing.T) {
	b := New()
	b.AddWall(mustPos(t, "d5"), chess.WallSouth) // wall between d4 and d5

	run := b.Run(mustPos(t, "d1"), chess.Pos(0, 1))
	want := []chess.Position{
		mustPos(t, "d2"), mustPos(t, "d3"), mustPos(t, "d4"),
	}
	testutil.AssertEqual(t, run, want)

	// A wall directly against the origin truncates the run to nothing.
	blocked := b.Run(mustPos(t, "d4"), chess.Pos(0, 1))
	testutil.AssertEqual(t, len(blocked), 0)

	// An unwalled file runs to the board edge.
	open := b.Run(mustPos(t, "a1"), chess.Pos(0, 1))
	testutil.AssertEqual(t, len(open), 7)
}

func TestCountObstacles(t *testing.T) {
	b := mustParse(t, []string{
		"........",
		"....k...",
		"...D....",
		"..M.....",
		"....X...",
		"........",
		"....K...",
		"........",
		"w 3 3 - - - - - 0",
	})

	mines, trapdoors := b.CountObstacles()
	testutil.AssertEqual(t, mines, 2)
	testutil.AssertEqual(t, trapdoors, 2)
}
