package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "media-catalog",
	Short: "Content catalog and review service",
	Long: `media-catalog serves a catalog of titles grouped by category and
genre, with user reviews, review comments and derived title ratings.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
