// Package output formats boards and the engine's line protocol.
package output

import (
	"fmt"
	"io"

	"github.com/lo9ud/comsci-su-obstacle-chess/internal/board"
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/game"
)

// Informational messages emitted on the INFO channel.
const (
	InfoCheck         = "check"
	InfoCheckmate     = "checkmate"
	InfoStalemate     = "stalemate"
	InfoDrawFifty     = "draw due to fifty moves"
	InfoDrawThreefold = "draw due to threefold repetition"
)

// Reporter writes the engine's diagnostic line protocol: errors prefixed
// with "ERROR: " and informational messages with "INFO: ".
type Reporter struct {
	w io.Writer
}

// NewReporter creates a reporter over w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Error writes an error line.
func (r *Reporter) Error(err error) {
	fmt.Fprintf(r.w, "ERROR: %s\n", err)
}

// Info writes an informational line.
func (r *Reporter) Info(msg string) {
	fmt.Fprintf(r.w, "INFO: %s\n", msg)
}

// Signals writes one informational line per raised game signal, in the
// severity order checkmate, check, stalemate, draws.
func (r *Reporter) Signals(s game.Signal) {
	switch {
	case s.Has(game.SignalCheckmate):
		r.Info(InfoCheckmate)
	case s.Has(game.SignalCheck):
		r.Info(InfoCheck)
	case s.Has(game.SignalStalemate):
		r.Info(InfoStalemate)
	}
	if s.Has(game.SignalFiftyAvailable) {
		r.Info(InfoDrawFifty)
	}
	if s.Has(game.SignalThreefoldAvailable) {
		r.Info(InfoDrawThreefold)
	}
}

// WriteBoard writes the board's canonical text form, with a trailing
// newline after the status line.
func WriteBoard(w io.Writer, b *board.Board) error {
	_, err := fmt.Fprintln(w, b.Canonical())
	return err
}
