package main

import (
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	dbadapter "todolist/internal/adapter/db"
	"todolist/internal/app/service"
	"todolist/internal/config"
)

var Version = "dev"

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
	defer func() { _ = logger.Sync() }()

	cfg := config.LoadConfig()
	rootCmd := newRootCmd(func() (*sqlx.DB, error) {
		return dbadapter.ConnectDB(cfg)
	}, cfg.SortNullsLastAlways)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// services is built per command invocation.
type services struct {
	db       *sqlx.DB
	tasks    *service.TaskService
	transfer *service.TransferService
}

func (s *services) Close() {
	if err := s.db.Close(); err != nil {
		zap.L().Warn("failed to close database connection", zap.Error(err))
	}
}

type openDB func() (*sqlx.DB, error)

func newRootCmd(open openDB, nullsLastAlways bool) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "todoctl",
		Short:         "Operate on a todolist database: CSV export, import and stats",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("owner", "", "Owner id whose tasks are processed")
	_ = rootCmd.MarkPersistentFlagRequired("owner")

	connect := func() (*services, error) {
		db, err := open()
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		taskRepository := dbadapter.NewTaskRepository(db)
		categoryRepository := dbadapter.NewCategoryRepository(db)
		return &services{
			db: db,
			tasks: service.NewTaskService(taskRepository, categoryRepository,
				service.WithSorter(service.TaskSorter{NullsLastAlways: nullsLastAlways})),
			transfer: service.NewTransferService(taskRepository, dbadapter.NewUnitOfWork(db)),
		}, nil
	}

	rootCmd.AddCommand(exportCmd(connect))
	rootCmd.AddCommand(importCmd(connect))
	rootCmd.AddCommand(statsCmd(connect))
	return rootCmd
}

func ownerFlag(cmd *cobra.Command) (string, error) {
	owner, err := cmd.Flags().GetString("owner")
	if err != nil {
		return "", err
	}
	if owner == "" {
		return "", fmt.Errorf("--owner must not be empty")
	}
	return owner, nil
}
