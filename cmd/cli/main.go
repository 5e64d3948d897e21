package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/nurse-roster/cmd/cli/commands"
	"github.com/jakechorley/nurse-roster/internal/config"
	"github.com/jakechorley/nurse-roster/pkg/db"
	"github.com/jakechorley/nurse-roster/pkg/events"
	"github.com/jakechorley/nurse-roster/pkg/postgres"
	"github.com/jakechorley/nurse-roster/pkg/redisstore"
	"github.com/jakechorley/nurse-roster/pkg/utils/logging"
)

var (
	env     string
	verbose bool
	app     = &commands.AppContext{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "roster",
		Short:        "Nurse roster CLI - Load, check and advance INRC-II instances",
		Long:         `A CLI tool for loading multi-stage nurse rostering instances, evaluating solved weeks and carrying their history forward.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app.Close()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (selects roster_config.<env>.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug messages to the console")

	rootCmd.AddCommand(commands.ValidateCmd(app))
	rootCmd.AddCommand(commands.EvaluateCmd(app))
	rootCmd.AddCommand(commands.AdvanceCmd(app))
	rootCmd.AddCommand(commands.HistoryCmd(app))
	rootCmd.AddCommand(commands.PublishCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, the history store and the event publisher
func initApp() error {
	var err error
	app.Ctx = context.Background()
	app.Env = env

	app.Logger, err = logging.InitLogger(env, logging.Options{Verbose: verbose})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Debug("Starting application", zap.String("environment", env))

	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded",
		zap.String("scenario", app.Cfg.ScenarioPath()),
		zap.Int("weeks", len(app.Cfg.WeekFiles)),
		zap.String("store", app.Cfg.Store.Backend))

	app.Store, err = openStore(app.Cfg.Store)
	if err != nil {
		return err
	}

	if app.Cfg.Events.AMQPURL != "" {
		app.Logger.Info("Connecting to message broker")
		publisher, err := events.Dial(app.Cfg.Events.AMQPURL, app.Cfg.Events.Queue, app.Logger)
		if err != nil {
			return fmt.Errorf("failed to connect to message broker: %w", err)
		}
		app.Publisher = publisher
		app.OnClose(publisher.Close)
	}

	return nil
}

// openStore connects to the configured history backend, nil when there is none
func openStore(cfg config.StoreConfig) (db.HistoryStore, error) {
	switch cfg.Backend {
	case config.BackendPostgres:
		app.Logger.Info("Connecting to PostgreSQL")
		store, err := postgres.Open(app.Ctx, cfg.PostgresDSN, app.Logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres store: %w", err)
		}
		app.OnClose(func() error {
			store.Close()
			return nil
		})
		return store, nil

	case config.BackendRedis:
		app.Logger.Info("Connecting to Redis", zap.String("addr", cfg.RedisAddr))
		store, err := redisstore.New(app.Ctx, redisstore.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open redis store: %w", err)
		}
		app.OnClose(store.Close)
		return store, nil

	default:
		return nil, nil
	}
}
