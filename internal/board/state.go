package board

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lo9ud/comsci-su-obstacle-chess/internal/chess"
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/errors"
)

// SideRights holds one player's castling rights.
type SideRights struct {
	King  bool
	Queen bool
}

// State is the per-game bookkeeping carried on the board's status line:
// active player, wall reserves, castling rights, en-passant target and the
// halfmove clock.
type State struct {
	ToMove chess.Player

	// WallReserve is the number of walls each player still holds, indexed
	// by player. Walls in play plus both reserves always total six.
	WallReserve [2]int

	// Castling rights per player.
	Castling [2]SideRights

	// EnPassant is the capture target square left by the last double pawn
	// step, valid only when HasEnPassant is set.
	HasEnPassant bool
	EnPassant    chess.Position

	// Clock is the halfmove clock, reset by captures, pawn moves and
	// obstacle events. At 100 the fifty-move draw becomes available.
	Clock int
}

// StandardState returns the status of a fresh game: White to move, three
// walls in each reserve, full castling rights, clock at zero.
func StandardState() State {
	return State{
		ToMove:      chess.White,
		WallReserve: [2]int{3, 3},
		Castling: [2]SideRights{
			{King: true, Queen: true},
			{King: true, Queen: true},
		},
	}
}

// statusLineRe matches the canonical status line: player, two wall counts,
// four castling flags, an en-passant square or dash, and the clock.
var statusLineRe = regexp.MustCompile(
	`^(w|b) ([0-3]) ([0-3]) (\+|-) (\+|-) (\+|-) (\+|-) (-|[a-h][1-8]) (0|[1-9]\d*)$`)

// StateFromString parses a canonical status line.
func StateFromString(line string) (State, error) {
	m := statusLineRe.FindStringSubmatch(line)
	if m == nil {
		return State{}, errors.ErrIllegalStatusLine
	}

	var s State
	s.ToMove, _ = chess.PlayerFromString(m[1])
	s.WallReserve[chess.White], _ = strconv.Atoi(m[2])
	s.WallReserve[chess.Black], _ = strconv.Atoi(m[3])
	s.Castling[chess.White].King = m[4] == "+"
	s.Castling[chess.White].Queen = m[5] == "+"
	s.Castling[chess.Black].King = m[6] == "+"
	s.Castling[chess.Black].Queen = m[7] == "+"
	if m[8] != "-" {
		s.HasEnPassant = true
		s.EnPassant, _ = chess.PositionFromAlgebraic(m[8])
	}
	clock, _ := strconv.Atoi(m[9])
	if clock > 100 {
		return State{}, errors.ErrIllegalStatusLine
	}
	s.Clock = clock
	return s, nil
}

// Canonical returns the status line in canonical form.
func (s State) Canonical() string {
	var sb strings.Builder
	sb.WriteString(s.ToMove.Canonical())
	fmt.Fprintf(&sb, " %d %d", s.WallReserve[chess.White], s.WallReserve[chess.Black])
	for _, right := range []bool{
		s.Castling[chess.White].King, s.Castling[chess.White].Queen,
		s.Castling[chess.Black].King, s.Castling[chess.Black].Queen,
	} {
		if right {
			sb.WriteString(" +")
		} else {
			sb.WriteString(" -")
		}
	}
	if s.HasEnPassant {
		sb.WriteString(" " + s.EnPassant.Algebraic())
	} else {
		sb.WriteString(" -")
	}
	fmt.Fprintf(&sb, " %d", s.Clock)
	return sb.String()
}

// ClearCastling removes both castling rights for the given player.
func (s *State) ClearCastling(player chess.Player) {
	s.Castling[player] = SideRights{}
}
