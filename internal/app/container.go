// Package app provides the dependency injection container for the application.
package app

import (
	"os"

	"github.com/pomoplan/pomoplan/internal/domain"
	"github.com/pomoplan/pomoplan/internal/infra/chime"
	"github.com/pomoplan/pomoplan/internal/infra/config"
	"github.com/pomoplan/pomoplan/internal/infra/jsonstore"
	"github.com/pomoplan/pomoplan/internal/infra/logging"
	"github.com/pomoplan/pomoplan/internal/infra/planner"
	"github.com/pomoplan/pomoplan/internal/usecase"
)

// apiKeyEnv is the environment variable holding the Anthropic API key.
const apiKeyEnv = "ANTHROPIC_API_KEY"

// Config holds the application paths.
type Config struct {
	DataDir   string // Data directory (e.g., ~/.local/share/pomoplan)
	StorePath string // Path to tasks.json
	LogDir    string // Path to the logs directory
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks            domain.TaskRepository
	StoreInitializer domain.StoreInitializer
	Clock            domain.Clock
	Extractor        domain.PlanExtractor
	Chime            domain.ChimePlayer
	ConfigLoader     domain.ConfigLoader
	ConfigInit       domain.ConfigInitializer
	Logger           domain.Logger

	// The effective merged configuration
	AppConfig *domain.Config

	// Configuration paths
	Config Config
}

// New creates a new Container rooted at the user's data directory. The
// working directory is searched for a local config override.
func New(workDir string) (*Container, error) {
	dataDir, err := domain.DataDir()
	if err != nil {
		return nil, err
	}

	cfg := Config{
		DataDir:   dataDir,
		StorePath: domain.StorePath(dataDir),
		LogDir:    domain.LogDir(dataDir),
	}

	configLoader := config.NewLoader(workDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		// A broken config file should not brick the whole app.
		appConfig = domain.NewDefaultConfig()
	}

	logger := logging.New(cfg.LogDir, logging.ParseLevel(appConfig.Log.Level))

	store := jsonstore.New(cfg.StorePath)
	if err := store.Initialize(); err != nil {
		return nil, err
	}

	extractor := planner.New(
		os.Getenv(apiKeyEnv),
		logger,
		planner.WithModel(appConfig.Planner.Model),
		planner.WithMaxTokens(int64(appConfig.Planner.MaxTokens)),
	)

	return &Container{
		Tasks:            store,
		StoreInitializer: store,
		Clock:            domain.RealClock{},
		Extractor:        extractor,
		Chime:            chime.NewBell(os.Stdout),
		ConfigLoader:     configLoader,
		ConfigInit:       configLoader,
		Logger:           logger,
		AppConfig:        appConfig,
		Config:           cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(
	cfg Config,
	tasks domain.TaskRepository,
	storeInit domain.StoreInitializer,
	clock domain.Clock,
	extractor domain.PlanExtractor,
	chimePlayer domain.ChimePlayer,
	configLoader domain.ConfigLoader,
	logger domain.Logger,
) *Container {
	appConfig, err := configLoader.Load()
	if err != nil {
		appConfig = domain.NewDefaultConfig()
	}
	return &Container{
		Tasks:            tasks,
		StoreInitializer: storeInit,
		Clock:            clock,
		Extractor:        extractor,
		Chime:            chimePlayer,
		ConfigLoader:     configLoader,
		Logger:           logger,
		AppConfig:        appConfig,
		Config:           cfg,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if closer, ok := c.Logger.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// Settings returns the timer settings derived from the effective config.
func (c *Container) Settings() domain.Settings {
	return c.AppConfig.Settings()
}

// ReloadSettings re-reads the config files and returns the fresh timer
// settings. A load failure keeps the current config.
func (c *Container) ReloadSettings() domain.Settings {
	if appConfig, err := c.ConfigLoader.Load(); err == nil {
		c.AppConfig = appConfig
	}
	return c.Settings()
}

// UseCase factory methods

// NewTaskUseCase returns a new NewTask use case.
func (c *Container) NewTaskUseCase() *usecase.NewTask {
	return usecase.NewNewTask(c.Tasks, c.Clock, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}

// CompleteTaskUseCase returns a new CompleteTask use case.
func (c *Container) CompleteTaskUseCase() *usecase.CompleteTask {
	return usecase.NewCompleteTask(c.Tasks, c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks, c.Logger)
}

// RecordPomodoroUseCase returns a new RecordPomodoro use case.
func (c *Container) RecordPomodoroUseCase() *usecase.RecordPomodoro {
	return usecase.NewRecordPomodoro(c.Tasks, c.Logger)
}

// PlanTasksUseCase returns a new PlanTasks use case.
func (c *Container) PlanTasksUseCase() *usecase.PlanTasks {
	return usecase.NewPlanTasks(c.Tasks, c.Extractor, c.Clock, c.Logger)
}

// ImportTasksUseCase returns a new ImportTasks use case.
func (c *Container) ImportTasksUseCase() *usecase.ImportTasks {
	return usecase.NewImportTasks(c.Tasks, c.Clock, c.Logger)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigInit)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigLoader)
}
