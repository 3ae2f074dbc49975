// Package cli implements the uuid command tree.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/replicate/uuidtool/logging"
	"github.com/replicate/uuidtool/version"
)

var logger = logging.New("cli")

// UsageError is returned when the command line itself is wrong: an unknown
// command or flag, a bad argument count or an invalid flag value.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

func IsUsageError(err error) bool {
	var usageErr *UsageError
	return errors.As(err, &usageErr)
}

func usageErrorf(format string, a ...any) error {
	return &UsageError{Err: fmt.Errorf(format, a...)}
}

// usageArgs wraps an argument validator so its failures are UsageErrors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &UsageError{Err: err}
		}
		return nil
	}
}

func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "uuid",
		Short:         "UUID utilities",
		Long:          "Generate, format, inspect and normalize UUIDs.",
		Version:       version.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: usageArgs(func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())
			}
			return nil
		}),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if level, _ := cmd.Flags().GetString("log-level"); level != "" {
				if err := logging.SetLevel(level); err != nil {
					return usageErrorf("invalid log level %q: %v", level, err)
				}
			}

			ctx := logging.AddFields(cmd.Context(), zap.String("command", cmd.Name()))
			cmd.SetContext(ctx)

			logging.With(ctx, logger).Debug("running command", zap.Strings("args", args))
			return nil
		},
	}

	root.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error); overrides LOG_LEVEL")

	root.AddCommand(
		newGenCommand(),
		newFmtCommand(),
		newInfoCommand(),
		newNilCommand(),
		newNormalizeCommand(),
	)

	return root
}
