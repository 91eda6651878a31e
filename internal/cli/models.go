package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewModelsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the models the service would load",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := opts.loadRegistry(cmd.Context())
			if err != nil {
				return err
			}
			defer registry.Close()

			out := cmd.OutOrStdout()
			if registry.Len() == 0 {
				fmt.Fprintln(out, "No models loaded")
				return nil
			}
			for _, name := range registry.Names() {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
}
