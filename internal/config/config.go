// Package config provides configuration for the obstacle chess CLI.
package config

import (
	"fmt"
	"io"
	"os"
)

// Config holds the program configuration.
type Config struct {
	// InputPath is the board file to read.
	InputPath string

	// OutputPath is the board file written on success.
	OutputPath string

	// MovesPath is the optional game file of moves to apply.
	MovesPath string

	// Verbosity controls informational output: 0=errors only,
	// 1=game signals, 2=running commentary.
	Verbosity int

	// LogFile receives diagnostic and informational messages.
	LogFile io.Writer
}

// NewConfig returns a Config with default settings.
func NewConfig() *Config {
	return &Config{
		Verbosity: 1,
		LogFile:   os.Stderr,
	}
}

// FromArgs fills the config from positional arguments:
// <input.board> <output.board> [moves.game].
func (c *Config) FromArgs(args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("expected <input.board> <output.board> [moves.game], got %d arguments", len(args))
	}
	c.InputPath = args[0]
	c.OutputPath = args[1]
	if len(args) == 3 {
		c.MovesPath = args[2]
	}
	return nil
}

// HasMoves reports whether a game file was supplied.
func (c *Config) HasMoves() bool {
	return c.MovesPath != ""
}
