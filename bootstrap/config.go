// Package bootstrap wires the ambient stack (config, logger, telemetry,
// connections) to the command and query use cases and exposes the
// long-lived processes cmd/lotcore starts.
package bootstrap

import (
	"github.com/foodtrace/lotcore/adapters/mongodb"
	"github.com/foodtrace/lotcore/adapters/postgres"
	"github.com/foodtrace/lotcore/adapters/rabbitmq"
	"github.com/foodtrace/lotcore/adapters/redis"
	"github.com/foodtrace/lotcore/common"
	"github.com/foodtrace/lotcore/common/mlog"
	"github.com/foodtrace/lotcore/common/mmongo"
	"github.com/foodtrace/lotcore/common/mopentelemetry"
	"github.com/foodtrace/lotcore/common/mpostgres"
	"github.com/foodtrace/lotcore/common/mrabbitmq"
	"github.com/foodtrace/lotcore/common/mredis"
	"github.com/foodtrace/lotcore/common/mzap"
	servicecommand "github.com/foodtrace/lotcore/services/command"
	servicequery "github.com/foodtrace/lotcore/services/query"
)

// ApplicationName identifies this process in logs and telemetry resources.
const ApplicationName = "lotcore"

// Config is the top level configuration for the process. DatabaseURL is the
// only value the core commands themselves require; the rest is ambient
// wiring that no-ops when absent.
type Config struct {
	EnvName  string `env:"ENV_NAME"`
	LogLevel string `env:"LOG_LEVEL"`

	DatabaseURL    string `env:"DATABASE_URL"`
	MigrationsPath string `env:"MIGRATIONS_PATH"`

	MongoURI    string `env:"MONGO_URI"`
	MongoDBName string `env:"MONGO_DB_NAME"`

	RedisURL string `env:"REDIS_URL"`

	RabbitMQURL      string `env:"RABBITMQ_URL"`
	RabbitMQExchange string `env:"RABBITMQ_EXCHANGE"`

	OtelServiceVersion string `env:"OTEL_RESOURCE_SERVICE_VERSION"`

	OfflinePollSeconds int64 `env:"OFFLINE_POLL_SECONDS"`
}

// Options carries dependency-injected collaborators for InitServersWithOptions.
type Options struct {
	Logger mlog.Logger
}

// Service is the application glue: everything cmd/lotcore needs to run one
// process composed of independent long-lived components.
type Service struct {
	*Reconciler
	*Migrator
	Query     *servicequery.UseCase
	Logger    mlog.Logger
	Telemetry *mopentelemetry.Telemetry
}

// Run starts every registered component in its own goroutine and blocks
// until all of them return.
func (s *Service) Run() {
	common.NewLauncher(
		common.WithLogger(s.Logger),
		common.RunApp("Migration Runner", s.Migrator),
		common.RunApp("Offline Reconciler", s.Reconciler),
	).Run()
}

// InitServers builds a Service using a freshly initialized logger.
func InitServers() (*Service, error) {
	return InitServersWithOptions(&Options{Logger: mzap.InitializeLogger()})
}

// InitServersWithOptions builds a Service, reading Config from the
// environment and constructing every connection, repository, and use case
// the reconciler and migration runner need.
func InitServersWithOptions(opts *Options) (*Service, error) {
	cfg := &Config{}

	if err := common.SetConfigFromEnvVars(cfg); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = mzap.InitializeLogger()
	}

	telemetry := (&mopentelemetry.Telemetry{
		ServiceName:    ApplicationName,
		ServiceVersion: common.GetenvOrDefault("OTEL_RESOURCE_SERVICE_VERSION", "dev"),
		DeploymentEnv:  common.GetenvOrDefault("ENV_NAME", "local"),
	}).InitializeTelemetry()

	pgConn := &mpostgres.PostgresConnection{
		ConnectionStringPrimary: cfg.DatabaseURL,
		ConnectionStringReplica: cfg.DatabaseURL,
		PrimaryDBName:           "lotcore",
		ReplicaDBName:           "lotcore",
		MigrationsPath:          common.GetenvOrDefault("MIGRATIONS_PATH", "migrations"),
	}

	cmdUseCase := &servicecommand.UseCase{
		Connection:      pgConn,
		LotRepo:         postgres.NewLotPostgreSQLRepository(pgConn),
		MovementRepo:    postgres.NewMovementPostgreSQLRepository(pgConn),
		EventRepo:       postgres.NewEventPostgreSQLRepository(pgConn),
		ProductionRepo:  postgres.NewProductionPostgreSQLRepository(pgConn),
		QARepo:          postgres.NewQAPostgreSQLRepository(pgConn),
		ReservationRepo: postgres.NewReservationPostgreSQLRepository(pgConn),
		SaleRepo:        postgres.NewSalePostgreSQLRepository(pgConn),
		LotCodeRepo:     postgres.NewLotCodePostgreSQLRepository(pgConn),
		ReferenceRepo:   postgres.NewReferencePostgreSQLRepository(pgConn),
		OfflineRepo:     postgres.NewOfflinePostgreSQLRepository(pgConn),
	}

	queryUseCase := &servicequery.UseCase{
		Connection:      pgConn,
		LotRepo:         cmdUseCase.LotRepo,
		MovementRepo:    cmdUseCase.MovementRepo,
		EventRepo:       cmdUseCase.EventRepo,
		ProductionRepo:  cmdUseCase.ProductionRepo,
		ReservationRepo: cmdUseCase.ReservationRepo,
		SaleRepo:        cmdUseCase.SaleRepo,
		ReferenceRepo:   cmdUseCase.ReferenceRepo,
	}

	if cfg.RedisURL != "" {
		redisConn := &mredis.RedisConnection{ConnectionStringSource: cfg.RedisURL, Logger: logger}
		cache := redis.NewAvailabilityCache(redisConn)
		cmdUseCase.Cache = cache
		queryUseCase.Cache = cache
	}

	if cfg.RabbitMQURL != "" {
		rabbitConn := &mrabbitmq.RabbitMQConnection{
			ConnectionStringSource: cfg.RabbitMQURL,
			Exchange:               common.GetenvOrDefault("RABBITMQ_EXCHANGE", "lotcore.events"),
			Logger:                 logger,
		}
		cmdUseCase.Events = rabbitmq.NewEventPublisher(rabbitConn)
	}

	if cfg.MongoURI != "" {
		mongoConn := &mmongo.MongoConnection{
			ConnectionStringSource: cfg.MongoURI,
			Database:               common.GetenvOrDefault("MONGO_DB_NAME", "lotcore"),
		}
		archive := mongodb.NewComplianceArchive(mongoConn)
		cmdUseCase.Archive = archive
		queryUseCase.Archive = archive
	}

	pollInterval := cfg.OfflinePollSeconds
	if pollInterval <= 0 {
		pollInterval = 5
	}

	return &Service{
		Reconciler: NewReconciler(cmdUseCase, pollInterval, logger),
		Migrator:   NewMigrator(pgConn, logger),
		Query:      queryUseCase,
		Logger:     logger,
		Telemetry:  telemetry,
	}, nil
}
