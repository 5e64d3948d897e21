package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/nurse-roster/internal/config"
	"github.com/jakechorley/nurse-roster/pkg/clients/sheetsclient"
	"github.com/jakechorley/nurse-roster/pkg/core/model"
	"github.com/jakechorley/nurse-roster/pkg/core/roster"
	"github.com/jakechorley/nurse-roster/pkg/core/services"
	"github.com/jakechorley/nurse-roster/pkg/db"
	"github.com/jakechorley/nurse-roster/pkg/events"
	"github.com/jakechorley/nurse-roster/pkg/instance"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Env       string
	Cfg       *config.Config
	Store     db.HistoryStore   // nil without a store backend
	Publisher *events.Publisher // nil without a broker
	Logger    *zap.Logger
	Ctx       context.Context

	sheets  *sheetsclient.Client
	closers []func() error
}

// OnClose registers fn to run when the application shuts down
func (a *AppContext) OnClose(fn func() error) {
	a.closers = append(a.closers, fn)
}

// Close releases connections in reverse order of opening and flushes the logger
func (a *AppContext) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && a.Logger != nil {
			a.Logger.Warn("Failed to close connection", zap.Error(err))
		}
	}
	a.closers = nil

	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
}

// weekPublisher returns the publisher as a service dependency, nil without a broker
func (a *AppContext) weekPublisher() services.WeekPublisher {
	if a.Publisher == nil {
		return nil
	}
	return a.Publisher
}

// sheetsClient connects to Google Sheets on first use
func (a *AppContext) sheetsClient() (*sheetsclient.Client, error) {
	if a.sheets != nil {
		return a.sheets, nil
	}

	oauthCfg, err := config.LoadOAuthClientWithEnv(a.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to load OAuth client config: %w", err)
	}

	a.Logger.Info("Initializing sheets client")
	client, err := sheetsclient.NewClient(a.Ctx, oauthCfg, a.Env, a.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}
	a.sheets = client
	return client, nil
}

// loadInstance loads the configured scenario positioned on the week entered by
// historyPath, or by the configured initial history when historyPath is empty
func (a *AppContext) loadInstance(historyPath string) (*services.LoadInstanceResult, error) {
	if historyPath == "" {
		historyPath = a.Cfg.InitialHistoryPath()
	}

	return services.LoadInstance(a.Ctx, services.InstancePaths{
		Scenario: a.Cfg.ScenarioPath(),
		History:  historyPath,
		WeekFile: a.Cfg.WeekPath,
	}, a.Cfg.StrictParsing, a.Logger)
}

// loadSolution reads the roster at path and checks it solves week
func loadSolution(scn *model.Scenario, path string, week int) (*roster.Roster, error) {
	solution, err := instance.LoadSolution(path, scn)
	if err != nil {
		return nil, fmt.Errorf("failed to load solution: %w", err)
	}
	if solution.Week != week {
		return nil, fmt.Errorf("solution %s is for week %d, the loaded history enters week %d", path, solution.Week, week)
	}
	return solution.Roster, nil
}
