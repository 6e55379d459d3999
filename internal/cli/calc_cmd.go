package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mehil/internal/cli/formatter"
	"github.com/alexanderramin/mehil/internal/deadline"
	"github.com/spf13/cobra"
)

func newCalcCmd(app *App) *cobra.Command {
	flags := newRequestFlags()
	var interactive bool
	var saveTitle string

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute the last day of a procedural period",
		Long: `Compute the last day of a period that starts with a notification.

The notification day is not counted. A period ending in the judicial recess
(20 July - 31 August) is extended to 7 September, and a last day on a
weekend or public holiday moves to the next business day.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			today := app.now()

			var req deadline.Request
			var err error
			title := saveTitle
			if interactive || (!flags.changed(cmd.Flags()) && !cmd.Flags().Changed("save") && app.interactive()) {
				values := newCalcFormValues(today)
				if err := app.runForm(calcForm(values)); err != nil {
					return err
				}
				req, err = values.request(today)
				if title == "" {
					title = values.title
				}
			} else {
				req, err = flags.request(today)
			}
			if err != nil {
				return err
			}

			res, err := app.Deadlines.Calculate(ctx, req)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatResult(req, res))

			if strings.TrimSpace(title) == "" {
				return nil
			}
			saved, err := app.Agenda.Save(ctx, title, req)
			if err != nil {
				return fmt.Errorf("saving to agenda: %w", err)
			}
			fmt.Fprint(out, formatter.FormatSavedDeadline(saved, today))
			return nil
		},
	}

	flags.bind(cmd.Flags())
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Enter the inputs in a form")
	cmd.Flags().StringVar(&saveTitle, "save", "", "Also save the result to the agenda under this title")

	return cmd
}
