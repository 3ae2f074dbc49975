package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/replicate/uuidtool/uuid"
)

func newNormalizeCommand() *cobra.Command {
	var canonical, hex bool

	cmd := &cobra.Command{
		Use:   "normalize <guid>",
		Short: "Normalize a .NET System.Guid to RFC 4122 byte order",
		Long: `Normalize a GUID written in .NET System.Guid byte order (as produced by
Guid.ToByteArray) to the RFC 4122 UUID with the same value. The result is
printed as 32 uppercase hex digits unless --canonical or --hex is given.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !canonical && !hex {
				s, err := uuid.NormalizeNativeOrder(args[0])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
				return err
			}

			u, err := uuid.DecodeNativeOrder(args[0])
			if err != nil {
				return err
			}

			opts := uuid.FormatOptions{Shape: uuid.ShapeCanonical, Uppercase: true}
			if hex {
				opts.Shape = uuid.ShapeHex
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), uuid.Format(u, opts))
			return err
		},
	}

	cmd.Flags().BoolVar(&canonical, "canonical", false, "output in canonical format (with hyphens)")
	cmd.Flags().BoolVar(&hex, "hex", false, "output with 0x hex prefix")

	return cmd
}
