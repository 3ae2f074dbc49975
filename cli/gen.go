package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/replicate/uuidtool/logging"
	"github.com/replicate/uuidtool/uuid"
)

func newGenCommand() *cobra.Command {
	var (
		flags      shapeFlags
		count      int
		timestamps bool
	)

	cmd := &cobra.Command{
		Use:   "gen [version]",
		Short: "Generate a new UUID",
		Long:  "Generate a new UUID. The version is v4 (random, the default) or v7 (time-ordered).",
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			token := uuid.SchemeRandom.String()
			if len(args) == 1 {
				token = args[0]
			}

			scheme, err := uuid.ParseScheme(token)
			if err != nil {
				return err
			}
			if count < 0 {
				return usageErrorf("count cannot be less than 0")
			}
			if timestamps && scheme != uuid.SchemeTimeOrderedRandom {
				return usageErrorf("--timestamps requires version %s", uuid.SchemeTimeOrderedRandom)
			}

			opts := flags.options()
			logging.With(cmd.Context(), logger).Debug("generating",
				zap.Stringer("scheme", scheme),
				zap.Stringer("shape", opts.Shape),
				zap.Int("count", count),
			)

			out := cmd.OutOrStdout()
			for i := 0; i < count; i++ {
				u, err := uuid.Generate(scheme)
				if err != nil {
					return err
				}

				line := uuid.Format(u, opts)
				if timestamps {
					ts, err := uuid.TimeFromV7(u)
					if err != nil {
						return fmt.Errorf("extracting timestamp: %w", err)
					}
					line += " " + ts.UTC().Format(time.RFC3339Nano)
				}

				if _, err := fmt.Fprintln(out, line); err != nil {
					return err
				}
			}
			return nil
		},
	}

	flags.register(cmd.Flags(), false)
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of UUIDs to generate")
	cmd.Flags().BoolVar(&timestamps, "timestamps", false, "print the embedded timestamp after each v7 UUID")

	return cmd
}
