// nxncube - CLI for scrambling, solving, and replaying NxN cube solves.
package main

import (
	"github.com/SeamusWaldron/nxncube/internal/cli"
)

func main() {
	cli.Execute()
}
