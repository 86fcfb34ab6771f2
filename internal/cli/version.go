package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the release of the binary, set at link time with
// -ldflags "-X github.com/born-ml/tensore/internal/cli.Version=...".
var Version = "v0.0.1-dev"

// NewVersionCommand returns the command to get the tensore version
func NewVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Return the tensore version",
		Long:  "Return the tensore version.",
		RunE:  version,
		Args:  cobra.NoArgs,
	}

	return cmd
}

func version(cmd *cobra.Command, _ []string) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "tensore %s\n", Version)
	return err
}
