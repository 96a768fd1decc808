package game

import (
	"strings"

	"github.com/google/uuid"

	"github.com/lo9ud/comsci-su-obstacle-chess/internal/board"
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/chess"
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/engine"
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/errors"
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/hashing"
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/move"
)

// Signal is a bitset of conditions raised by an applied move.
type Signal uint8

const (
	// SignalCheck means the player now to move is in check.
	SignalCheck Signal = 1 << iota
	// SignalCheckmate means the game ended in checkmate.
	SignalCheckmate
	// SignalStalemate means the game ended in stalemate.
	SignalStalemate
	// SignalIllegalMove means the mover left its own king in check. It
	// should not occur when validation is correct; it is detected anyway.
	SignalIllegalMove
	// SignalFiftyAvailable means the halfmove clock reached 100 and the
	// fifty-move draw may be claimed.
	SignalFiftyAvailable
	// SignalThreefoldAvailable means the current layout has occurred three
	// times and the repetition draw may be claimed.
	SignalThreefoldAvailable
)

// Has reports whether all bits in s2 are set in s.
func (s Signal) Has(s2 Signal) bool {
	return s&s2 == s2
}

// String returns the set signals as a space-separated list.
func (s Signal) String() string {
	if s == 0 {
		return "none"
	}
	var parts []string
	for _, f := range []struct {
		flag Signal
		name string
	}{
		{SignalCheck, "check"},
		{SignalCheckmate, "checkmate"},
		{SignalStalemate, "stalemate"},
		{SignalIllegalMove, "illegal move"},
		{SignalFiftyAvailable, "fifty available"},
		{SignalThreefoldAvailable, "threefold available"},
	} {
		if s.Has(f.flag) {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, " ")
}

// Terminal reports whether the signal ends the game.
func (s Signal) Terminal() bool {
	return s.Has(SignalCheckmate) || s.Has(SignalStalemate)
}

// entry is one history step: the board before the move, and the move.
type entry struct {
	prior *board.Board
	mv    move.Move
}

// Game holds the live board and its full history. Applied moves push the
// prior board onto the history stack; Undo and Redo shuttle entries between
// the history and redo stacks.
type Game struct {
	// ID uniquely identifies this game across sessions and relays.
	ID uuid.UUID

	current     *board.Board
	history     []entry
	redo        []entry
	sinks       []MoveSink
	repetitions *hashing.RepetitionTracker
	over        bool
}

// New creates a game over the given starting board.
func New(b *board.Board) *Game {
	g := &Game{
		ID:          uuid.New(),
		current:     b,
		repetitions: hashing.NewRepetitionTracker(),
	}
	g.repetitions.Record(b)
	return g
}

// Board returns the live board.
func (g *Game) Board() *board.Board {
	return g.current
}

// Over reports whether a terminal signal has been raised.
func (g *Game) Over() bool {
	return g.over
}

// AddSink registers a sink that receives every successfully applied move.
func (g *Game) AddSink(s MoveSink) {
	g.sinks = append(g.sinks, s)
}

// Validate checks the live board against the setup rules.
func (g *Game) Validate() error {
	return g.current.Validate()
}

// Canonical returns the live board in canonical text form.
func (g *Game) Canonical() string {
	return g.current.Canonical()
}

// PlayNext pulls one move from the source, validates it, applies it and
// returns the resulting signal set. Sources report exhaustion with
// errors.ErrSourceExhausted; any move pulled after the game has ended is an
// illegal move.
func (g *Game) PlayNext(src MoveSource) (Signal, error) {
	mv, err := src.Next(g.current.State.ToMove)
	if err != nil {
		return 0, err
	}
	return g.Play(mv)
}

// Play validates and applies a single move.
func (g *Game) Play(mv move.Move) (Signal, error) {
	if g.over {
		return 0, errors.IllegalMove(mv.String())
	}
	if err := engine.ValidateMove(g.current, mv); err != nil {
		return 0, err
	}

	next := engine.Apply(g.current, mv)
	g.history = append(g.history, entry{prior: g.current, mv: mv})
	g.redo = nil
	g.current = next
	occurrences := g.repetitions.Record(next)

	sig := g.signals(mv.Player, occurrences)
	for _, s := range g.sinks {
		if err := s.Send(mv); err != nil {
			// The move stays applied; only the relay failed.
			return sig, errors.Wrapf(err, "relaying %s", mv)
		}
	}
	return sig, nil
}

// signals computes the flag set for the board just produced by mover.
func (g *Game) signals(mover chess.Player, occurrences int) Signal {
	var s Signal

	if engine.InCheck(g.current, mover) {
		s |= SignalIllegalMove
	}
	if engine.InCheck(g.current, mover.Opponent()) {
		s |= SignalCheck
	}
	if _, mate := engine.Checkmate(g.current); mate {
		s |= SignalCheckmate
	} else if _, stale := engine.Stalemate(g.current); stale {
		s |= SignalStalemate
	}
	if g.current.State.Clock >= 100 {
		s |= SignalFiftyAvailable
	}
	if occurrences >= 3 {
		s |= SignalThreefoldAvailable
	}

	if s.Terminal() {
		g.over = true
	}
	return s
}

// ThreefoldRepetition reports whether the current layout has occurred at
// least three times over the game.
func (g *Game) ThreefoldRepetition() bool {
	return g.repetitions.Count(g.current) >= 3
}

// Undo reverts the most recent move, moving it to the redo stack. Reports
// false when there is nothing to undo.
func (g *Game) Undo() bool {
	if len(g.history) == 0 {
		return false
	}
	e := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	g.repetitions.Remove(g.current)
	g.redo = append(g.redo, entry{prior: g.current, mv: e.mv})
	g.current = e.prior
	g.over = false
	return true
}

// Redo reapplies the most recently undone move. Reports false when there is
// nothing to redo.
func (g *Game) Redo() bool {
	if len(g.redo) == 0 {
		return false
	}
	e := g.redo[len(g.redo)-1]
	g.redo = g.redo[:len(g.redo)-1]

	g.history = append(g.history, entry{prior: g.current, mv: e.mv})
	g.current = e.prior
	g.repetitions.Record(g.current)

	if _, mate := engine.Checkmate(g.current); mate {
		g.over = true
	} else if _, stale := engine.Stalemate(g.current); stale {
		g.over = true
	}
	return true
}

// Moves returns the moves applied so far, in play order.
func (g *Game) Moves() []move.Move {
	out := make([]move.Move, len(g.history))
	for i, e := range g.history {
		out[i] = e.mv
	}
	return out
}
