package cli

import (
	"fmt"

	"github.com/alexanderramin/mehil/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHolidaysCmd(app *App) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:     "holidays",
		Aliases: []string{"tatiller"},
		Short:   "Show the public holidays and judicial recess in effect",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if year < 0 || year > 9999 {
				return fmt.Errorf("invalid year %d", year)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHolidays(app.Deadlines.Calendar(), year))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Show concrete dates for this year")
	return cmd
}
