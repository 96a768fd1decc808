// Package game owns the live board, move history with undo and redo, draw
// detection and the turn loop that pulls moves from a source.
package game

import (
	"bufio"
	"io"
	"strings"

	"github.com/lo9ud/comsci-su-obstacle-chess/internal/chess"
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/errors"
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/move"
)

// MoveSource supplies candidate moves for the turn loop. Next returns
// errors.ErrSourceExhausted once no further moves are available.
type MoveSource interface {
	Next(player chess.Player) (move.Move, error)
}

// ListSource replays a fixed list of move texts, parsing each against the
// player whose turn it is.
type ListSource struct {
	texts []string
	pos   int
}

// NewListSource creates a source over the given move texts. Blank lines and
// comment lines starting with '%' are dropped.
func NewListSource(texts []string) *ListSource {
	kept := make([]string, 0, len(texts))
	for _, t := range texts {
		t = strings.TrimRight(t, "\r\n")
		if t == "" || strings.HasPrefix(t, "%") {
			continue
		}
		kept = append(kept, t)
	}
	return &ListSource{texts: kept}
}

// ReadSource reads a move list from r in the game file format: one move per
// line, '%' lines are comments.
func ReadSource(r io.Reader) (*ListSource, error) {
	var texts []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		texts = append(texts, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading move list")
	}
	return NewListSource(texts), nil
}

// Next parses and returns the next move in the list.
func (s *ListSource) Next(player chess.Player) (move.Move, error) {
	if s.pos >= len(s.texts) {
		return move.Move{}, errors.ErrSourceExhausted
	}
	text := s.texts[s.pos]
	s.pos++
	return move.Parse(player, text)
}

// Remaining returns the number of moves not yet pulled.
func (s *ListSource) Remaining() int {
	return len(s.texts) - s.pos
}
