package main

import (
	"fmt"
	"os"

	"github.com/thruflo/keymode/internal/cli"
	"github.com/thruflo/keymode/internal/devloop"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(devloop.ExitCode(err))
	}
}
