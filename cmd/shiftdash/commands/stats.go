package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// StatsCmd creates the stats command
func StatsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show per-member shift statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sync.LoadAll(app.Ctx); err != nil {
				return err
			}

			stats := app.Store.StatsList()
			if len(stats) == 0 {
				fmt.Println("No statistics yet")
				return nil
			}

			fmt.Printf("\n%-20s %12s %12s\n", "Member", "Total days", "Long shifts")
			for _, s := range stats {
				fmt.Printf("%-20s %12d %12d\n", s.MemberName, s.TotalDays, s.LongShiftCount)
			}
			fmt.Println()
			return nil
		},
	}
}
