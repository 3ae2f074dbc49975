package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/replicate/uuidtool/uuid"
)

func newNilCommand() *cobra.Command {
	var flags shapeFlags

	cmd := &cobra.Command{
		Use:   "nil",
		Short: "Print the nil UUID (00000000-0000-0000-0000-000000000000)",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), uuid.Format(uuid.Nil, flags.options()))
			return err
		},
	}

	flags.register(cmd.Flags(), false)

	return cmd
}
