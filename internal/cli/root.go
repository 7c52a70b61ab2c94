package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

const serviceName = "catalog"

func Execute() {
	cmd := newRootCmd()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:          serviceName,
		Short:        "Product catalog HTTP service",
		SilenceUsage: true,
		RunE: func(c *cobra.Command, _ []string) error {
			return runServe(c.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (yaml, json, toml or .env); environment overrides it")

	cmd.AddCommand(serveCmd(&opts))
	cmd.AddCommand(productsCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}
