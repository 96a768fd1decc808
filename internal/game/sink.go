package game

import (
	"io"
	"strings"

	"github.com/lo9ud/comsci-su-obstacle-chess/internal/move"
)

// MoveSink receives moves as they are played, for recording or relaying.
type MoveSink interface {
	Send(m move.Move) error
}

// BufferSink accumulates moves and can dump them in the game file format.
type BufferSink struct {
	moves []move.Move
}

// NewBufferSink creates an empty sink.
func NewBufferSink() *BufferSink {
	return &BufferSink{}
}

// Send appends a move to the buffer.
func (s *BufferSink) Send(m move.Move) error {
	s.moves = append(s.moves, m)
	return nil
}

// Moves returns the recorded moves in play order.
func (s *BufferSink) Moves() []move.Move {
	return s.moves
}

// Dump writes the recorded moves to w, one canonical notation per line.
func (s *BufferSink) Dump(w io.Writer) error {
	var sb strings.Builder
	for _, m := range s.moves {
		sb.WriteString(m.String())
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
