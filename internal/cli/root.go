package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ressKim-io/intent-service/internal/adapter/model"
	"github.com/ressKim-io/intent-service/internal/domain/service"
	"github.com/ressKim-io/intent-service/internal/infrastructure/config"
)

type options struct {
	modelsDir string
	debug     bool
}

// NewRootCommand builds the intentctl command tree
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "intentctl",
		Short: "Intent Service CLI",
		Long: `intentctl inspects model artifacts and runs predictions offline,
using the same configuration and loader as the HTTP service.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.modelsDir, "models-dir", "", "Override models.dir")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging on stderr")

	rootCmd.AddCommand(NewModelsCommand(opts))
	rootCmd.AddCommand(NewPredictCommand(opts))

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (o *options) loadRegistry(ctx context.Context) (*service.Registry, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if o.modelsDir != "" {
		cfg.Models.Dir = o.modelsDir
	}

	log := zap.NewNop()
	if o.debug {
		if log, err = zap.NewDevelopment(); err != nil {
			return nil, fmt.Errorf("failed to initialize logger: %w", err)
		}
	}

	loadCtx, cancel := context.WithTimeout(ctx, cfg.Models.LoadTimeout)
	defer cancel()

	return model.NewLoader(cfg.Models.Extension, cfg.Models.LoadTimeout, log).LoadAll(loadCtx, cfg.Models.Dir), nil
}
