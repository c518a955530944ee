// Command baernuhr drives a Bärndütsch word clock on a 64x64 HUB75 panel.
package main

import (
	"os"

	"github.com/sgerber/baernuhr/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
