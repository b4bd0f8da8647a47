package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// MembersCmd creates the members command group
func MembersCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "members",
		Short: "Manage team members",
	}
	cmd.AddCommand(membersListCmd(app))
	cmd.AddCommand(membersAddCmd(app))
	cmd.AddCommand(membersRemoveCmd(app))
	return cmd
}

func membersListCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all team members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sync.LoadAll(app.Ctx); err != nil {
				return err
			}

			members := app.Store.MembersList()
			if len(members) == 0 {
				fmt.Println("No members added yet")
				return nil
			}

			fmt.Printf("\nFound %d members:\n\n", len(members))
			for _, m := range members {
				fmt.Printf("  %3d  %s\n", m.ID, m.Name)
			}
			return nil
		},
	}
}

func membersAddCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a team member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			member, err := app.Sync.CreateMember(app.Ctx, args[0])
			if err != nil {
				return err
			}
			if member != nil {
				fmt.Printf("Added member %s (id %d)\n", member.Name, member.ID)
			}
			return nil
		},
	}
}

func membersRemoveCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a team member",
		Long:  `Remove a team member. Shifts and leave days referencing the member stop appearing on the calendar once the removal is synced.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("member id must be a number: %w", err)
			}

			yes, _ := cmd.Flags().GetBool("yes")
			if !yes && !confirm(fmt.Sprintf("Delete member %d?", id)) {
				fmt.Println("Aborted")
				return nil
			}

			if err := app.Sync.DeleteMember(app.Ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed member %d\n", id)
			return nil
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
