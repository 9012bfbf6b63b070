// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/gogama/quadtree"
	"github.com/spf13/cobra"
)

func newStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <scene.json>",
		Short: "Describe the shape of the tree built for a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.loadScene(cmd, args[0])
			if err != nil {
				return err
			}

			st := s.Build().Stats()
			opts.log.Debug().Int("nodes", st.Nodes).Int("depth", st.Depth).Msg("tree built")

			if opts.format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), st)
			}
			return writeStats(cmd.OutOrStdout(), st)
		},
	}
}

func writeStats(w io.Writer, st quadtree.Stats) error {
	if _, err := fmt.Fprintf(w, "nodes=%d leaves=%d items=%d depth=%d\n", st.Nodes, st.Leaves, st.Items, st.Depth); err != nil {
		return err
	}
	for level, n := range st.Occupancy {
		if _, err := fmt.Fprintf(w, "level %d: %d\n", level, n); err != nil {
			return err
		}
	}
	return nil
}
