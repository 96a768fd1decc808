// Command obstacle-chess reads a board file, optionally applies a game file
// of moves, and writes the resulting board.
//
// Usage:
//
//	obstacle-chess <input.board> <output.board> [moves.game]
//
// On any parse or validation failure an "ERROR: ..." line is emitted and no
// output file is written. Game signals (check, checkmate, draws) are
// reported as "INFO: ..." lines.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	stderrors "errors"

	"github.com/lo9ud/comsci-su-obstacle-chess/internal/board"
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/chess"
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/config"
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/errors"
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/game"
	"github.com/lo9ud/comsci-su-obstacle-chess/internal/output"
)

func main() {
	cfg := config.NewConfig()
	flag.IntVar(&cfg.Verbosity, "v", cfg.Verbosity, "verbosity: 0=errors only, 1=game signals, 2=commentary")
	flag.Parse()

	if err := cfg.FromArgs(flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "usage: %v\n", err)
		os.Exit(2)
	}

	if !run(cfg, output.NewReporter(os.Stdout)) {
		os.Exit(1)
	}
}

// run executes the board/game pipeline. Reports success; all failures have
// already been written to the reporter.
func run(cfg *config.Config, rep *output.Reporter) bool {
	lines, err := readLines(cfg.InputPath)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "cannot read %s: %v\n", cfg.InputPath, err)
		return false
	}
	if len(lines) == 0 {
		rep.Error(errors.IllegalBoard(chess.Pos(0, chess.BoardSize-1).Algebraic()))
		return false
	}

	b, err := board.Parse(lines)
	if err != nil {
		rep.Error(err)
		return false
	}

	g := game.New(b)
	if err := g.Validate(); err != nil {
		rep.Error(err)
		return false
	}

	if cfg.HasMoves() {
		if !playMoves(cfg, rep, g) {
			return false
		}
	}

	out, err := os.Create(cfg.OutputPath)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "cannot write %s: %v\n", cfg.OutputPath, err)
		return false
	}
	defer out.Close()
	if err := output.WriteBoard(out, g.Board()); err != nil {
		fmt.Fprintf(cfg.LogFile, "cannot write %s: %v\n", cfg.OutputPath, err)
		return false
	}
	return true
}

// playMoves pulls every move from the game file and applies it.
func playMoves(cfg *config.Config, rep *output.Reporter, g *game.Game) bool {
	f, err := os.Open(cfg.MovesPath)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "cannot read %s: %v\n", cfg.MovesPath, err)
		return false
	}
	defer f.Close()

	src, err := game.ReadSource(f)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "cannot read %s: %v\n", cfg.MovesPath, err)
		return false
	}

	record := game.NewBufferSink()
	g.AddSink(record)

	for {
		sig, err := g.PlayNext(src)
		if stderrors.Is(err, errors.ErrSourceExhausted) {
			if cfg.Verbosity >= 2 {
				fmt.Fprintf(cfg.LogFile, "applied %d moves:\n", len(record.Moves()))
				_ = record.Dump(cfg.LogFile)
			}
			return true
		}
		if err != nil {
			rep.Error(err)
			return false
		}
		if cfg.Verbosity >= 2 {
			fmt.Fprintf(cfg.LogFile, "turn %d: %s\n", g.Board().Turn, sig)
		}
		if cfg.Verbosity >= 1 {
			rep.Signals(sig)
		}
	}
}

// readLines loads a file, dropping '%' comment lines and blank lines.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}
