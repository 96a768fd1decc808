package chess

import "fmt"

// Position is a board coordinate. File 0 is the a-file, Rank 0 is rank 1
// (White's back rank). Positions are immutable values and may also be used
// as direction vectors.
type Position struct {
	File int
	Rank int
}

// Pos is shorthand for constructing a Position.
func Pos(file, rank int) Position {
	return Position{File: file, Rank: rank}
}

// Add returns p + q.
func (p Position) Add(q Position) Position {
	return Position{File: p.File + q.File, Rank: p.Rank + q.Rank}
}

// Sub returns p - q.
func (p Position) Sub(q Position) Position {
	return Position{File: p.File - q.File, Rank: p.Rank - q.Rank}
}

// Scale returns p with both components multiplied by n.
func (p Position) Scale(n int) Position {
	return Position{File: p.File * n, Rank: p.Rank * n}
}

// Norm reduces p to a unit step: each component becomes -1, 0 or 1.
func (p Position) Norm() Position {
	return Position{File: sign(p.File), Rank: sign(p.Rank)}
}

// OnBoard reports whether p is a valid board coordinate.
func (p Position) OnBoard() bool {
	return p.File >= 0 && p.File < BoardSize && p.Rank >= 0 && p.Rank < BoardSize
}

// Algebraic returns the algebraic notation for p ("a1".."h8").
func (p Position) Algebraic() string {
	return string([]byte{byte('a' + p.File), byte('1' + p.Rank)})
}

// String returns the algebraic notation for on-board positions, or the raw
// coordinates for vectors.
func (p Position) String() string {
	if p.OnBoard() {
		return p.Algebraic()
	}
	return fmt.Sprintf("(%d,%d)", p.File, p.Rank)
}

// PositionFromAlgebraic parses algebraic notation ("a1".."h8").
func PositionFromAlgebraic(s string) (Position, bool) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Position{}, false
	}
	return Position{File: int(s[0] - 'a'), Rank: int(s[1] - '1')}, true
}

// Neighbours returns the 8-connected neighbours of p that are on the board.
func (p Position) Neighbours() []Position {
	out := make([]Position, 0, 8)
	for _, d := range AllDirs {
		if q := p.Add(d); q.OnBoard() {
			out = append(out, q)
		}
	}
	return out
}

// Line returns every board position strictly beyond origin along dir, out to
// the board edge. Walls and pieces do not truncate the line; that is the
// caller's concern.
func Line(origin, dir Position) []Position {
	var out []Position
	for p := origin.Add(dir); p.OnBoard(); p = p.Add(dir) {
		out = append(out, p)
	}
	return out
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
