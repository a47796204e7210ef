// SPDX-License-Identifier: MIT

// Command dtinv computes motivic Donaldson–Thomas invariants of quivers.
//
// Usage:
//
//	dtinv partitions 1,2
//	dtinv dt -c kronecker.yaml 1,0 1,1 2,2
//	dtinv hn -c kronecker.yaml 2,2 --format json -v
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/dtinv/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
