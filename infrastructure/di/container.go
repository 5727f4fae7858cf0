package di

import (
	"fmt"
	"time"

	"github.com/enoch85/ge-spot-sub001/domain"
	"github.com/enoch85/ge-spot-sub001/domain/repository"
	"github.com/enoch85/ge-spot-sub001/infrastructure/config"
	"github.com/enoch85/ge-spot-sub001/infrastructure/logging"
	infraRepo "github.com/enoch85/ge-spot-sub001/infrastructure/repository"
	"github.com/enoch85/ge-spot-sub001/infrastructure/service"
	"github.com/enoch85/ge-spot-sub001/interface/cli"
	"github.com/enoch85/ge-spot-sub001/interface/presenter"
	"github.com/enoch85/ge-spot-sub001/usecase/impl"
	usecase "github.com/enoch85/ge-spot-sub001/usecase/interface"
)

// Container is the dependency injection container
type Container struct {
	// Configuration
	config *config.AppConfig

	// Repositories
	lookupRepo  repository.LookupRepository
	metricsRepo repository.MetricsRepository

	// Timezone resolution
	timezoneResolver *service.TimezoneResolverImpl
	systemTZ         *time.Location
	targetTZ         *time.Location
	areaTZ           *time.Location

	// Use Cases
	timestampService  usecase.TimestampService
	transitionService usecase.TransitionService
	resampleService   usecase.ResampleService
	intervalService   usecase.IntervalService
	conversionService usecase.ConversionService
	metricsService    usecase.MetricsService

	// Presenters
	consolePresenter presenter.ConsolePresenter
	jsonPresenter    presenter.JSONPresenter

	// Controllers
	cliController *cli.CLIController

	// Logging
	loggerFactory domain.LoggerFactory
	logger        domain.Logger

	// Options
	debugMode bool
}

// ContainerOption is a function that configures the container
type ContainerOption func(*Container)

// WithDebugMode sets the debug mode
func WithDebugMode(debug bool) ContainerOption {
	return func(c *Container) {
		c.debugMode = debug
	}
}

// NewContainer creates a new DI container
func NewContainer(opts ...ContainerOption) (*Container, error) {
	container := &Container{}

	for _, opt := range opts {
		opt(container)
	}

	if err := container.initConfig(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := container.initLogging(); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	if err := container.initRepositories(); err != nil {
		return nil, fmt.Errorf("failed to initialize repositories: %w", err)
	}

	if err := container.initTimezones(); err != nil {
		return nil, fmt.Errorf("failed to initialize timezones: %w", err)
	}

	if err := container.initUseCases(); err != nil {
		return nil, fmt.Errorf("failed to initialize use cases: %w", err)
	}

	if err := container.initPresenters(); err != nil {
		return nil, fmt.Errorf("failed to initialize presenters: %w", err)
	}

	if err := container.initControllers(); err != nil {
		return nil, fmt.Errorf("failed to initialize controllers: %w", err)
	}

	return container, nil
}

// initConfig loads and validates configuration
func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	if c.debugMode {
		cfg.Logging.Debug = true
	}

	c.config = cfg
	return nil
}

// initLogging initializes logging components
func (c *Container) initLogging() error {
	if c.config.Logging == nil {
		c.config.Logging = config.DefaultConfig().Logging
	}

	c.loggerFactory = logging.NewLoggerFactory(c.config.Logging)
	c.logger = c.loggerFactory.CreateLogger("gespot")

	return nil
}

// initRepositories initializes repository implementations
func (c *Container) initRepositories() error {
	if c.lookupRepo == nil && c.config.Engine.LookupFile != "" {
		c.lookupRepo = infraRepo.NewJSONLookupRepository(c.config.Engine.LookupFile)
	}

	if c.metricsRepo == nil {
		if c.config.Prometheus != nil && c.config.Prometheus.RemoteWriteURL != "" {
			metricsRepo, err := infraRepo.NewPrometheusMetricsRepository(c.config.Prometheus)
			if err != nil {
				return fmt.Errorf("failed to create metrics repository: %w", err)
			}
			c.metricsRepo = metricsRepo
		} else {
			c.metricsRepo = infraRepo.NewNoOpMetricsRepository()
		}
	}

	return nil
}

// initTimezones builds the resolver and resolves the three fixed zones
// the engine runs against
func (c *Container) initTimezones() error {
	var lookups *repository.LookupTables
	if c.lookupRepo != nil {
		tables, err := c.lookupRepo.Load()
		if err != nil {
			return err
		}
		lookups = tables
	}

	c.timezoneResolver = service.NewTimezoneResolverImpl(lookups, c.CreateLogger("timezone"))
	c.systemTZ = c.timezoneResolver.DetectSystemTimezone()

	if c.config.Engine.TargetTimezone != "" {
		targetTZ, err := c.timezoneResolver.Resolve(c.config.Engine.TargetTimezone)
		if err != nil {
			return err
		}
		c.targetTZ = targetTZ
	} else {
		c.targetTZ = c.systemTZ
	}

	areaTZ, err := c.timezoneResolver.Resolve(c.config.Engine.Area)
	if err != nil {
		return err
	}
	c.areaTZ = areaTZ

	return nil
}

// initUseCases initializes use case implementations
func (c *Container) initUseCases() error {
	c.timestampService = impl.NewTimestampServiceImpl(c.timezoneResolver, c.CreateLogger("timestamp"))
	c.transitionService = impl.NewTransitionServiceImpl(c.CreateLogger("transition"))
	c.resampleService = impl.NewResampleServiceImpl(c.CreateLogger("resample"))

	intervalService, err := impl.NewIntervalServiceImpl(
		c.systemTZ,
		c.areaTZ,
		c.config.Mode(),
		c.config.Granularity(),
		c.transitionService,
		c.CreateLogger("interval"),
	)
	if err != nil {
		return err
	}
	c.intervalService = intervalService

	c.conversionService = impl.NewConversionServiceImpl(
		c.timestampService,
		c.transitionService,
		c.resampleService,
		c.timezoneResolver,
		c.targetTZ,
		c.config.Granularity(),
		c.CreateLogger("conversion"),
	)

	if _, noop := c.metricsRepo.(*infraRepo.NoOpMetricsRepository); noop {
		c.metricsService = impl.NewNoOpMetricsService()
	} else {
		c.metricsService = impl.NewMetricsServiceImpl(c.metricsRepo, c.CreateLogger("metrics"))
	}

	return nil
}

// initPresenters initializes presenter implementations
func (c *Container) initPresenters() error {
	c.consolePresenter = presenter.NewConsolePresenter()
	c.jsonPresenter = presenter.NewJSONPresenter()
	return nil
}

// initControllers initializes controller implementations
func (c *Container) initControllers() error {
	c.cliController = cli.NewCLIController(
		c.conversionService,
		c.intervalService,
		c.metricsService,
		c.consolePresenter,
		c.jsonPresenter,
		c.targetTZ.String(),
		c.config.Granularity(),
	)
	return nil
}

// Close releases container resources
func (c *Container) Close() error {
	var firstErr error

	if c.metricsService != nil {
		if err := c.metricsService.Close(); err != nil {
			firstErr = err
		}
	}

	if shutdowner, ok := c.logger.(interface{ Shutdown() error }); ok {
		if err := shutdowner.Shutdown(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// GetConfig returns the application configuration
func (c *Container) GetConfig() *config.AppConfig {
	return c.config
}

// GetTimezoneResolver returns the timezone resolver
func (c *Container) GetTimezoneResolver() repository.TimezoneResolver {
	return c.timezoneResolver
}

// GetTimestampService returns the timestamp parsing service
func (c *Container) GetTimestampService() usecase.TimestampService {
	return c.timestampService
}

// GetTransitionService returns the DST transition service
func (c *Container) GetTransitionService() usecase.TransitionService {
	return c.transitionService
}

// GetResampleService returns the granularity resampling service
func (c *Container) GetResampleService() usecase.ResampleService {
	return c.resampleService
}

// GetIntervalService returns the interval resolution service
func (c *Container) GetIntervalService() usecase.IntervalService {
	return c.intervalService
}

// GetConversionService returns the timezone conversion service
func (c *Container) GetConversionService() usecase.ConversionService {
	return c.conversionService
}

// GetMetricsService returns the metrics service
func (c *Container) GetMetricsService() usecase.MetricsService {
	return c.metricsService
}

// GetMetricsRepository returns the metrics repository
func (c *Container) GetMetricsRepository() repository.MetricsRepository {
	return c.metricsRepo
}

// GetConsolePresenter returns the console presenter
func (c *Container) GetConsolePresenter() presenter.ConsolePresenter {
	return c.consolePresenter
}

// GetJSONPresenter returns the JSON presenter
func (c *Container) GetJSONPresenter() presenter.JSONPresenter {
	return c.jsonPresenter
}

// GetCLIController returns the CLI controller
func (c *Container) GetCLIController() *cli.CLIController {
	return c.cliController
}

// GetLoggerFactory returns the logger factory
func (c *Container) GetLoggerFactory() domain.LoggerFactory {
	return c.loggerFactory
}

// GetLogger returns the main logger
func (c *Container) GetLogger() domain.Logger {
	return c.logger
}

// CreateLogger creates a new logger for a specific component
func (c *Container) CreateLogger(component string) domain.Logger {
	if c.loggerFactory == nil {
		return &logging.NoOpLogger{}
	}
	return c.loggerFactory.CreateLogger(component)
}

// ContainerBuilder builds a container with selected components replaced,
// used by tests and embedding callers
type ContainerBuilder struct {
	config      *config.AppConfig
	metricsRepo repository.MetricsRepository
	lookupRepo  repository.LookupRepository
}

// NewContainerBuilder creates a new container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{}
}

// WithConfig sets a custom configuration
func (b *ContainerBuilder) WithConfig(cfg *config.AppConfig) *ContainerBuilder {
	b.config = cfg
	return b
}

// WithMetricsRepository sets a custom metrics repository
func (b *ContainerBuilder) WithMetricsRepository(repo repository.MetricsRepository) *ContainerBuilder {
	b.metricsRepo = repo
	return b
}

// WithLookupRepository sets a custom lookup repository
func (b *ContainerBuilder) WithLookupRepository(repo repository.LookupRepository) *ContainerBuilder {
	b.lookupRepo = repo
	return b
}

// Build builds the container with custom components
func (b *ContainerBuilder) Build() (*Container, error) {
	container := &Container{
		metricsRepo: b.metricsRepo,
		lookupRepo:  b.lookupRepo,
	}

	if b.config != nil {
		if err := b.config.Validate(); err != nil {
			return nil, fmt.Errorf("failed to validate config: %w", err)
		}
		container.config = b.config
	} else {
		if err := container.initConfig(); err != nil {
			return nil, fmt.Errorf("failed to initialize config: %w", err)
		}
	}

	if err := container.initLogging(); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	if err := container.initRepositories(); err != nil {
		return nil, fmt.Errorf("failed to initialize repositories: %w", err)
	}

	if err := container.initTimezones(); err != nil {
		return nil, fmt.Errorf("failed to initialize timezones: %w", err)
	}

	if err := container.initUseCases(); err != nil {
		return nil, fmt.Errorf("failed to initialize use cases: %w", err)
	}

	if err := container.initPresenters(); err != nil {
		return nil, fmt.Errorf("failed to initialize presenters: %w", err)
	}

	if err := container.initControllers(); err != nil {
		return nil, fmt.Errorf("failed to initialize controllers: %w", err)
	}

	return container, nil
}
