package cli

import "github.com/spf13/cobra"

// RootCmd returns the scaffold-service command tree.
func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "scaffold-service",
		Short: "Entity introspection and module scaffolding",
		Long: `scaffold-service resolves the columns of GORM entity sources against a
throwaway database connection and scaffolds admin modules from them.

Run 'serve' for the HTTP API, or 'parse' and 'create' for one-shot use.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("config", "", "Path of the YAML configuration file")

	rootCmd.AddCommand(ServeCmd())
	rootCmd.AddCommand(ParseCmd())
	rootCmd.AddCommand(CreateCmd())
	return rootCmd
}
