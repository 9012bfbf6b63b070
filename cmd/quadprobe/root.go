// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gogama/quadtree/internal/scene"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// The quadprobe version number. Set at build.
var version = "v0.1.0"

const logLevelEnv = "QUADPROBE_LOG_LEVEL"

const (
	formatText = "text"
	formatJSON = "json"
)

// options holds the flags shared by every subcommand.
type options struct {
	logLevel      string
	format        string
	objectPerQuad int
	maxDepth      int

	log zerolog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	defaultLevel := os.Getenv(logLevelEnv)
	if defaultLevel == "" {
		defaultLevel = zerolog.InfoLevel.String()
	}

	cmd := &cobra.Command{
		Use:           "quadprobe",
		Short:         "Inspect quadtree collision candidates for a scene",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := zerolog.ParseLevel(opts.logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", opts.logLevel, err)
			}
			if opts.format != formatText && opts.format != formatJSON {
				return fmt.Errorf("invalid format %q (want %s or %s)", opts.format, formatText, formatJSON)
			}
			console := zerolog.ConsoleWriter{
				Out:        stderr,
				TimeFormat: time.RFC3339,
				NoColor:    !isTerminal(stderr),
			}
			opts.log = zerolog.New(console).
				Level(level).
				With().
				Timestamp().
				Str("cmd", cmd.Name()).
				Logger()
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", defaultLevel, "Log level (trace|debug|info|warn|error). Defaults to $"+logLevelEnv+".")
	flags.StringVar(&opts.format, "format", formatText, "Output format (text|json).")
	flags.IntVar(&opts.objectPerQuad, "object-per-quad", 0, "Override the scene's node capacity.")
	flags.IntVar(&opts.maxDepth, "max-depth", 0, "Override the scene's maximum tree depth.")

	cmd.AddCommand(newPairsCmd(opts))
	cmd.AddCommand(newStatsCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// loadScene loads the named scene file and applies any tree policy
// overrides given on the command line.
func (opts *options) loadScene(cmd *cobra.Command, name string) (*scene.Scene, error) {
	s, err := scene.LoadFile(name)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("object-per-quad") {
		s.Config.ObjectPerQuad = opts.objectPerQuad
	}
	if flags.Changed("max-depth") {
		s.Config.MaxDepth = opts.maxDepth
	}
	if err = s.Config.Validate(); err != nil {
		return nil, err
	}

	opts.log.Info().
		Str("file", name).
		Int("bodies", len(s.Bodies)).
		Stringer("bounds", s.Bounds).
		Int("objectPerQuad", s.Config.ObjectPerQuad).
		Int("maxDepth", s.Config.MaxDepth).
		Msg("scene loaded")

	return s, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the quadprobe version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
