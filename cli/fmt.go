package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/replicate/uuidtool/logging"
	"github.com/replicate/uuidtool/uuid"
)

func newFmtCommand() *cobra.Command {
	var flags shapeFlags

	cmd := &cobra.Command{
		Use:   "fmt [uuid]",
		Short: "Format an existing UUID",
		Long:  "Format an existing UUID. The UUID is read from the first line of stdin when not given as an argument.",
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.With(cmd.Context(), logger)

			var input string
			if len(args) == 1 {
				input = args[0]
			} else {
				log.Debug("reading uuid from stdin")
				line, err := readLine(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading from stdin: %w", err)
				}
				input = line
			}

			u, err := uuid.Parse(input)
			if err != nil {
				return err
			}

			opts := flags.options()
			log.Debug("formatting", zap.Stringer("shape", opts.Shape), zap.Bool("uppercase", opts.Uppercase))

			_, err = fmt.Fprintln(cmd.OutOrStdout(), uuid.Format(u, opts))
			return err
		},
	}

	flags.register(cmd.Flags(), true)

	return cmd
}

// readLine returns the first line of r without its line terminator. A final
// line without a newline is returned as is.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return line, nil
}
