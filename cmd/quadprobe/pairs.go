// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/gogama/quadtree/internal/scene"
	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"
)

func newPairsCmd(opts *options) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "pairs <scene.json>",
		Short: "List the candidate pairs the tree produces for a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.loadScene(cmd, args[0])
			if err != nil {
				return err
			}

			r := s.Evaluate()
			opts.log.Debug().
				Int("candidates", r.Candidates).
				Int("collisions", r.Collisions).
				Int("bruteForce", r.BruteForce).
				Msg("scene evaluated")
			if r.Bodies > 1 && r.Candidates == r.BruteForce {
				opts.log.Warn().Msg("tree did not prune any pairs")
			}

			if opts.format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), r)
			}
			return writePairs(cmd.OutOrStdout(), r, all)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "List non-colliding candidate pairs too.")

	return cmd
}

func writePairs(w io.Writer, r scene.Report, all bool) error {
	for _, p := range r.Pairs {
		if !p.Colliding && !all {
			continue
		}
		state := "candidate"
		if p.Colliding {
			state = "colliding"
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", p.A, p.B, state); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "bodies=%d bruteForce=%d candidates=%d collisions=%d\n",
		r.Bodies, r.BruteForce, r.Candidates, r.Collisions)
	return err
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
