package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// AssignCmd creates the assign command
func AssignCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "assign <date> <member_id>",
		Short: "Reassign the shift on a date to another member",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			memberID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("member id must be a number: %w", err)
			}

			if err := app.Sync.ReassignShift(app.Ctx, args[0], memberID); err != nil {
				return err
			}
			fmt.Printf("Shift on %s assigned to member %d\n", args[0], memberID)
			return nil
		},
	}
}
