package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/ressKim-io/intent-service/internal/usecase"
)

func NewPredictCommand(opts *options) *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Run every loaded model against a text and print the predictions",
		Long: `Run every loaded model against --text and print a JSON object keyed by model name.
Nothing is written to the log store.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := opts.loadRegistry(cmd.Context())
			if err != nil {
				return err
			}
			defer registry.Close()

			predictions, err := usecase.PredictAll(cmd.Context(), registry, text)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(predictions)
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Text to classify")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}
