package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/todoapi/todoapi/internal/api"
	"github.com/todoapi/todoapi/internal/domain"
	"github.com/todoapi/todoapi/internal/logging"
	"github.com/todoapi/todoapi/internal/server"
	"github.com/todoapi/todoapi/internal/store/sqlite"
)

type serveOptions struct {
	bind      string
	db        string
	seed      string
	rateLimit float64
	burst     int
}

func newServeCmd(opts *globalOptions) *cobra.Command {
	serveOpts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a local todo API server",
		Long: `Run a local server speaking the todo API, backed by SQLite.
Stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts, serveOpts)
		},
	}

	cmd.Flags().StringVar(&serveOpts.bind, "bind", server.DefaultAddress, "Address to bind the server to")
	cmd.Flags().StringVar(&serveOpts.db, "db", sqlite.MemoryDSN, "SQLite database file, or :memory:")
	cmd.Flags().StringVar(&serveOpts.seed, "seed", "", "JSON file with an array of tasks to load at startup")
	cmd.Flags().Float64Var(&serveOpts.rateLimit, "rate-limit", 0, "Requests per second allowed (0 disables the limit)")
	cmd.Flags().IntVar(&serveOpts.burst, "burst", 10, "Burst size for --rate-limit")

	return cmd
}

func runServe(ctx context.Context, opts *globalOptions, serveOpts *serveOptions) error {
	logger := logging.Component(opts.logger, "server")

	store, err := openStore(ctx, serveOpts)
	if err != nil {
		return err
	}

	srv := server.New(serveOpts.bind, store, api.RouterOptions{
		Logger:    logger,
		RateLimit: serveOpts.rateLimit,
		Burst:     serveOpts.burst,
	})

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		store.Close()
		return err
	}
	return nil
}

// openStore opens the database and applies the seed file, if any.
func openStore(ctx context.Context, serveOpts *serveOptions) (*sqlite.Store, error) {
	store, err := sqlite.Open(serveOpts.db)
	if err != nil {
		return nil, err
	}

	if serveOpts.seed != "" {
		tasks, err := loadSeed(serveOpts.seed)
		if err != nil {
			store.Close()
			return nil, err
		}
		if err := store.WithTx(ctx, func(repo *sqlite.TaskRepository) error {
			return repo.Seed(ctx, tasks)
		}); err != nil {
			store.Close()
			return nil, fmt.Errorf("seed %s: %w", serveOpts.seed, err)
		}
	}

	return store, nil
}

// loadSeed reads a JSON array of tasks and validates each one.
func loadSeed(path string) ([]domain.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var tasks []domain.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	for i := range tasks {
		if problems := tasks[i].Validate(); len(problems) > 0 {
			return nil, fmt.Errorf("seed file %s: task %d: %v", path, i, problems)
		}
	}

	return tasks, nil
}
