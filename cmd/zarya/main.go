package main

import (
	"os"

	"github.com/spf13/cobra"

	"zarya/internal/interfaces/cli/migrate"
	"zarya/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "zarya",
		Short: "Zarya - content and support platform",
		Long:  `Zarya serves the public content site, customer reviews, and the support ticket workflow.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
