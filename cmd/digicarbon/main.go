// Command digicarbon estimates digital carbon footprints from survey answers.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/digicarbon/digicarbon/internal/cli"
	"github.com/digicarbon/digicarbon/pkg/version"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the CLI with args and returns the process exit code.
func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := cli.NewRootCmd(version.GetVersion())
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
