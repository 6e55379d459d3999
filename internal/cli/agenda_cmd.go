package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/mehil/internal/cli/formatter"
	"github.com/alexanderramin/mehil/internal/domain"
	"github.com/alexanderramin/mehil/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newAgendaCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "agenda",
		Aliases: []string{"ajanda"},
		Short:   "Manage saved deadlines",
	}

	cmd.AddCommand(
		newAgendaAddCmd(app),
		newAgendaListCmd(app),
		newAgendaRemoveCmd(app),
		newAgendaRefreshCmd(app),
		newAgendaExportCmd(app),
		newAgendaBrowseCmd(app),
	)

	return cmd
}

func newAgendaAddCmd(app *App) *cobra.Command {
	flags := newRequestFlags()

	cmd := &cobra.Command{
		Use:   "add TITLE...",
		Short: "Compute a deadline and save it under a title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			today := app.now()
			req, err := flags.request(today)
			if err != nil {
				return err
			}
			saved, err := app.Agenda.Save(cmd.Context(), strings.Join(args, " "), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSavedDeadline(saved, today))
			return nil
		},
	}

	flags.bind(cmd.Flags())
	return cmd
}

func newAgendaListCmd(app *App) *cobra.Command {
	var upcoming bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved deadlines",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			today := app.now()
			var entries []*domain.SavedDeadline
			var err error
			if upcoming {
				entries, err = app.Agenda.ListUpcoming(cmd.Context(), today)
			} else {
				entries, err = app.Agenda.List(cmd.Context())
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAgenda(entries, today))
			return nil
		},
	}

	cmd.Flags().BoolVar(&upcoming, "upcoming", false, "Only deadlines due today or later, soonest first")
	return cmd
}

func newAgendaRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Remove a saved deadline by ID or ID prefix",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := app.Agenda.Remove(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Silindi: %s %s\n", removed.Title, formatter.Dim("("+removed.DisplayID()+")"))
			return nil
		},
	}
}

func newAgendaRefreshCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Recompute every saved deadline against the active calendar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed, err := app.Agenda.Refresh(cmd.Context())
			if err != nil {
				return err
			}
			if changed == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Tüm son günler güncel.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d kaydın son günü güncellendi.\n", changed)
			return nil
		},
	}
}

func newAgendaExportCmd(app *App) *cobra.Command {
	var format, outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the agenda as Markdown or HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := service.ParseExportFormat(format)
			if err != nil {
				return err
			}
			if outPath == "" {
				return app.Agenda.Export(cmd.Context(), cmd.OutOrStdout(), f)
			}

			file, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("creating %s: %w", outPath, err)
			}
			if err := app.Agenda.Export(cmd.Context(), file, f); err != nil {
				file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Ajanda %s dosyasına yazıldı.\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "md", "Output format: md|html")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to FILE instead of stdout")
	return cmd
}

func newAgendaBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse saved deadlines interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(newAgendaBrowser(cmd.Context(), app), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}
