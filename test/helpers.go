package test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func Context(t testing.TB) context.Context {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return ctx
}

// Output holds what a command wrote.
type Output struct {
	Stdout string
	Stderr string
}

// Execute runs cmd with args, feeding it stdin, and captures its output.
func Execute(t testing.TB, cmd *cobra.Command, stdin string, args ...string) (Output, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(Context(t))

	return Output{Stdout: stdout.String(), Stderr: stderr.String()}, err
}
