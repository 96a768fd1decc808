package game

import (
	"strings"
	"testing"

	"github.com/lo9ud/comsci-su-obstacle-chess/internal/chess"
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/errors"
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/move"
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/testutil"
)

func TestReadSourceSkipsComments(t *testing.T) {
	input := "% obstacle phase\n...\n...\n\n% main line\ne2-e4\n"
	src, err := ReadSource(strings.NewReader(input))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, src.Remaining(), 3)

	m, err := src.Next(chess.White)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.Kind, move.Null)
}

func TestListSourceExhaustion(t *testing.T) {
	src := NewListSource([]string{"e2-e4"})

	_, err := src.Next(chess.White)
	testutil.AssertNoError(t, err)

	_, err = src.Next(chess.Black)
	testutil.AssertErrorIs(t, err, errors.ErrSourceExhausted)
}

func TestListSourceParsesForPlayer(t *testing.T) {
	src := NewListSource([]string{"e7-e8=x"})
	_, err := src.Next(chess.White)
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
}

func TestBufferSinkDump(t *testing.T) {
	sink := NewBufferSink()
	testutil.AssertNoError(t, sink.Send(move.NewNull(chess.White)))
	testutil.AssertNoError(t, sink.Send(move.NewKingCastle(chess.Black)))

	var sb strings.Builder
	testutil.AssertNoError(t, sink.Dump(&sb))
	testutil.AssertEqual(t, sb.String(), "...\n0-0\n")
}
