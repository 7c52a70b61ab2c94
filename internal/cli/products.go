package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"MiniCatalog/internal/buildinfo"
	"MiniCatalog/internal/catalog"
)

// productsCmd prints the same body GET /products serves.
func productsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "Print the catalog as JSON",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			products, err := catalog.NewDefaultCatalog().List(c.Context())
			if err != nil {
				return err
			}

			b, err := json.Marshal(products)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.OutOrStdout(), string(b))
			return err
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build info",
		Args:  cobra.NoArgs,
		Run: func(c *cobra.Command, _ []string) {
			fmt.Fprintln(c.OutOrStdout(), buildinfo.String())
		},
	}
}
