package main

import (
	"os"

	"github.com/spf13/cobra"

	"jackut/internal/transport/http"
)

var rootCmd = &cobra.Command{
	Use:   "jackut",
	Short: "Jackut social network server",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Jackut HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return http.Run()
	},
}

func main() {
	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
