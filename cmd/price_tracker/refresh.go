package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Fetch prices from TGJU and store them",
	Long: `Runs the refresh policy once. Without --force the fetch is skipped
while the newest stored price is younger than the staleness window.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPool, svc, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer dbPool.Close()

		if force, _ := cmd.Flags().GetBool("force"); force {
			recorded, err := svc.Refresh.Refresh(cmd.Context())
			if err != nil {
				return fmt.Errorf("refresh failed: %w", err)
			}
			fmt.Printf("Recorded %d prices.\n", recorded)
			return nil
		}

		refreshed, err := svc.Refresh.RefreshIfStale(cmd.Context())
		if err != nil {
			return fmt.Errorf("refresh failed: %w", err)
		}
		if refreshed {
			fmt.Println("Prices refreshed.")
		} else {
			fmt.Println("Prices not refreshed (still fresh or upstream unavailable).")
		}
		return nil
	},
}

func init() {
	refreshCmd.Flags().Bool("force", false, "refresh even when stored prices are fresh")
}
