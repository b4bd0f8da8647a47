package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/teambition/rrule-go"

	"github.com/ekaraca/shiftdash/pkg/core/dates"
)

// LeaveCmd creates the leave command group
func LeaveCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leave",
		Short: "Manage leave days",
	}
	cmd.AddCommand(leaveListCmd(app))
	cmd.AddCommand(leaveAddCmd(app))
	cmd.AddCommand(leaveRemoveCmd(app))
	return cmd
}

func leaveListCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List leave days in the displayed month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sync.LoadAll(app.Ctx); err != nil {
				return err
			}

			leaveDays := app.Store.LeaveDaysList()
			if len(leaveDays) == 0 {
				fmt.Println("No leave days in this month")
				return nil
			}

			members := app.Store.MembersList()
			names := make(map[int]string, len(members))
			for _, m := range members {
				names[m.ID] = m.Name
			}

			fmt.Printf("\nFound %d leave days:\n\n", len(leaveDays))
			for _, leave := range leaveDays {
				name := leave.MemberName
				if name == "" {
					name = names[leave.MemberID]
				}
				key, err := dates.ToKey(leave.LeaveDate)
				if err != nil {
					key = leave.LeaveDate
				}
				fmt.Printf("  %3d  %s  %s\n", leave.ID, key, name)
			}
			return nil
		},
	}
}

func leaveAddCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <member_id> <start_date> [end_date]",
		Short: "Record leave for a member",
		Long: `Record leave for a member over a date range (one record per day).
With --rrule, the recurrence rule is expanded into individual days instead,
starting from start_date; the rule must be bounded by COUNT or UNTIL.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			memberID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("member id must be a number: %w", err)
			}

			rule, _ := cmd.Flags().GetString("rrule")
			if rule != "" {
				keys, err := expandRecurrence(rule, args[1])
				if err != nil {
					return err
				}
				if err := app.Sync.AddLeaveDates(app.Ctx, memberID, keys); err != nil {
					return err
				}
				fmt.Printf("Recorded %d leave days\n", len(keys))
				return nil
			}

			endDate := args[1]
			if len(args) == 3 {
				endDate = args[2]
			}
			if err := app.Sync.AddLeave(app.Ctx, memberID, args[1], endDate); err != nil {
				return err
			}
			fmt.Printf("Recorded leave from %s to %s\n", args[1], endDate)
			return nil
		},
	}
	cmd.Flags().String("rrule", "", `Recurrence rule, e.g. "FREQ=WEEKLY;BYDAY=MO;COUNT=4"`)
	return cmd
}

func leaveRemoveCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a leave-day record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("leave day id must be a number: %w", err)
			}
			if err := app.Sync.RemoveLeave(app.Ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed leave day %d\n", id)
			return nil
		},
	}
}

// expandRecurrence turns a bounded RRULE anchored at startDate into day keys
func expandRecurrence(rule, startDate string) ([]string, error) {
	startKey, err := dates.ToKey(startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %w", err)
	}
	start, err := dates.Parse(startKey)
	if err != nil {
		return nil, err
	}

	r, err := rrule.StrToRRule(rule)
	if err != nil {
		return nil, fmt.Errorf("invalid rrule: %w", err)
	}
	opts := r.OrigOptions
	if opts.Count == 0 && opts.Until.IsZero() {
		return nil, fmt.Errorf("rrule must be bounded by COUNT or UNTIL")
	}
	opts.Dtstart = start
	bounded, err := rrule.NewRRule(opts)
	if err != nil {
		return nil, fmt.Errorf("invalid rrule: %w", err)
	}

	occurrences := bounded.All()
	if len(occurrences) == 0 {
		return nil, fmt.Errorf("rrule produces no dates")
	}

	keys := make([]string, 0, len(occurrences))
	for _, t := range occurrences {
		keys = append(keys, dates.Key(t))
	}
	return keys, nil
}
