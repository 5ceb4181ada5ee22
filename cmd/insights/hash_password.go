package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/visiblehq/visibility-insights/internal/config"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <password>",
	Short: "Hash a dashboard password for DASHBOARD_PASSWORD_HASH",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		hash, err := config.HashPassword(args[0])
		if err != nil {
			return err
		}
		fmt.Println(hash)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hashPasswordCmd)
}
