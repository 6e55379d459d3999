package cli

import (
	"time"

	"github.com/alexanderramin/mehil/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// App holds the services and terminal hooks used by CLI commands.
type App struct {
	Deadlines service.DeadlineService
	Agenda    service.AgendaService

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
	// RunForm runs a huh form; tests replace it to skip the terminal.
	RunForm func(*huh.Form) error
	// Now returns the current time; used for "today" defaults.
	Now func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) runForm(f *huh.Form) error {
	if a.RunForm != nil {
		return a.RunForm(f)
	}
	return f.Run()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "mehil" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "mehil",
		Short:         "Turkish procedural deadline calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCalcCmd(app),
		newAgendaCmd(app),
		newHolidaysCmd(app),
	)

	return root
}
