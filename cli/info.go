package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/replicate/uuidtool/uuid"
)

func newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <uuid>",
		Short: "Display information about a UUID",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := uuid.Parse(args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), uuid.Inspect(u))
			return err
		},
	}
}
