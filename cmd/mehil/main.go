package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/mehil/internal/cli"
	"github.com/alexanderramin/mehil/internal/config"
	"github.com/alexanderramin/mehil/internal/db"
	"github.com/alexanderramin/mehil/internal/repository"
	"github.com/alexanderramin/mehil/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	engine, err := cfg.Engine()
	if err != nil {
		return fmt.Errorf("loading calendar: %w", err)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	repo := repository.NewSQLiteSavedDeadlineRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Deadlines: service.NewDeadlineService(engine, observers...),
		Agenda:    service.NewAgendaService(repo, uow, engine, observers...),
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).ExecuteContext(context.Background())
}
