package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ekaraca/shiftdash/pkg/core/export"
)

// ExportCmd creates the export command
func ExportCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the displayed month as csv, json, html or xlsx",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			outDir, _ := cmd.Flags().GetString("out")

			if err := navigateFromFlags(cmd, app); err != nil {
				return err
			}
			if err := app.Sync.LoadAll(app.Ctx); err != nil {
				return err
			}

			cursor := app.Store.Cursor()
			rows := export.ToRows(
				cursor,
				app.Store.ShiftsList(),
				app.Store.HolidayMap(),
				app.Store.LeaveDaysList(),
				app.Store.MembersList(),
			)

			var payload []byte
			switch format {
			case "csv":
				out, err := export.SerializeCSV(rows)
				if err != nil {
					return err
				}
				payload = []byte(out)
			case "json":
				out, err := export.SerializeJSON(cursor, rows)
				if err != nil {
					return err
				}
				payload = []byte(out)
			case "html":
				payload = []byte(export.SerializeTable(rows))
			case "xlsx":
				out, err := export.SerializeXLSX(cursor, rows)
				if err != nil {
					return err
				}
				payload = out
			default:
				return fmt.Errorf("unknown format %q (want csv, json, html or xlsx)", format)
			}

			path := filepath.Join(outDir, export.Filename(cursor, format))
			if err := os.WriteFile(path, payload, 0644); err != nil {
				return fmt.Errorf("failed to write export file: %w", err)
			}

			app.Logger.Info("export written",
				zap.String("path", path),
				zap.Int("rows", len(rows)))
			fmt.Printf("Wrote %s (%d rows)\n", path, len(rows))
			return nil
		},
	}
	cmd.Flags().StringP("format", "f", "csv", "Output format: csv, json, html or xlsx")
	cmd.Flags().StringP("out", "o", ".", "Directory to write the export file into")
	addCursorFlags(cmd)
	return cmd
}
