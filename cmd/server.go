package cmd

import (
	"github.com/kdam/portfolio/internal/bootstrap"

	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		bootstrap.New().WithConfig(configPath).Run()
	},
}
