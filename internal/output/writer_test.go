package output

import (
	"strings"
	"testing"

	"github.com/lo9ud/comsci-su-obstacle-chess/internal/board"
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/errors"
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/game"
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/testutil"
)

func TestReporterLineProtocol(t *testing.T) {
	var sb strings.Builder
	rep := NewReporter(&sb)

	rep.Error(errors.IllegalMove("e2-e5"))
	rep.Info(InfoCheck)

	testutil.AssertEqual(t, sb.String(), "ERROR: illegal move at e2-e5\nINFO: check\n")
}

func TestReporterSignals(t *testing.T) {
	tests := []struct {
		name string
		sig  game.Signal
		want string
	}{
		{"check only", game.SignalCheck, "INFO: check\n"},
		{"checkmate wins over check", game.SignalCheck | game.SignalCheckmate, "INFO: checkmate\n"},
		{"stalemate", game.SignalStalemate, "INFO: stalemate\n"},
		{"fifty move draw", game.SignalFiftyAvailable, "INFO: draw due to fifty moves\n"},
		{"threefold draw", game.SignalThreefoldAvailable, "INFO: draw due to threefold repetition\n"},
		{"nothing", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			NewReporter(&sb).Signals(tt.sig)
			testutil.AssertEqual(t, sb.String(), tt.want)
		})
	}
}

func TestWriteBoard(t *testing.T) {
	var sb strings.Builder
	testutil.AssertNoError(t, WriteBoard(&sb, board.Standard()))

	testutil.AssertTrue(t, strings.HasPrefix(sb.String(), "rnbqkbnr\n"), "top rank first")
	testutil.AssertTrue(t, strings.HasSuffix(sb.String(), "w 3 3 + + + + - 0\n"), "status line last")
}
