package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/replicate/uuidtool/cli"
	"github.com/replicate/uuidtool/errors"
	"github.com/replicate/uuidtool/logging"
)

func main() {
	errors.Init()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, cli.NewRoot(), os.Stderr)
	stop()

	errors.Flush()
	_ = logging.Sync()
	os.Exit(code)
}

// run executes root and returns the process exit code.
func run(ctx context.Context, root *cobra.Command, stderr io.Writer) int {
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if !cli.IsUsageError(err) {
			errors.Report(err)
		}
		return 1
	}
	return 0
}
