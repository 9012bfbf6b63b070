// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Command quadprobe loads a scene of rectangular bodies, indexes it with
// a quadtree and reports the collision candidates the tree produces.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "quadprobe:", err)
		os.Exit(1)
	}
}
