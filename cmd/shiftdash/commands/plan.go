package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// PlanCmd creates the plan command group
func PlanCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate or clear the shift plan",
	}
	cmd.AddCommand(planGenerateCmd(app))
	cmd.AddCommand(planClearCmd(app))
	return cmd
}

func planGenerateCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "generate <start_date> <end_date>",
		Short: "Ask the service to generate shifts over a date range",
		Long:  `Ask the service to generate shifts over a date range (YYYY-MM-DD, inclusive). The generation algorithm runs server-side; the calendar refreshes with the result.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := app.Sync.GeneratePlan(app.Ctx, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Printf("%d shift plans created\n", created)
			return nil
		},
	}
}

func planClearCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every shift",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			if !yes && !confirm("Delete ALL shifts? This cannot be undone.") {
				fmt.Println("Aborted")
				return nil
			}

			if err := app.Sync.ClearShifts(app.Ctx); err != nil {
				return err
			}
			fmt.Println("All shifts cleared")
			return nil
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

// confirm asks a yes/no question on the terminal
func confirm(question string) bool {
	fmt.Printf("%s [y/N] ", question)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
