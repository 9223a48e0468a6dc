package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	apigrpc "phiCalc/internal/api/grpc"
	apihttp "phiCalc/internal/api/http"
	"phiCalc/internal/api/http/controllers/css"
	scaleController "phiCalc/internal/api/http/controllers/scale"
	"phiCalc/internal/api/http/controllers/system"
	"phiCalc/internal/api/http/middlewares"
	"phiCalc/internal/infrastructure/click"
	"phiCalc/internal/infrastructure/kafka"
	"phiCalc/internal/infrastructure/mongo"
	"phiCalc/internal/infrastructure/pg"
	"phiCalc/internal/infrastructure/redis"
	"phiCalc/internal/infrastructure/tokens"
	"phiCalc/internal/pkg/golden"
	"phiCalc/internal/pkg/logger"
	"phiCalc/internal/ports"
	scaleUsecase "phiCalc/internal/usecase/scale"
	"phiCalc/internal/usecase/stats"
)

const shutdownTimeout = 10 * time.Second

// App — приложение, хранит только конфиг.
type App struct {
	cfg Config
}

// New создаёт приложение с конфигом (зависимости подключаются в Run).
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// closer — отложенное закрытие ресурса с именем для лога.
type closer struct {
	name string
	fn   func() error
}

// Run подключает хранилище, Redis, Kafka и ClickHouse, запускает HTTP, gRPC и консьюмер
// аналитики (блокирующий вызов до SIGINT/SIGTERM).
func (a *App) Run() error {
	log := logger.New(a.cfg.Log)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var closers []closer
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i].fn(); err != nil {
				log.Warn("close failed", "component", closers[i].name, "error", err)
			}
		}
	}()

	repo, closeRepo, err := a.storage(ctx, log)
	if err != nil {
		return err
	}
	closers = append(closers, closer{"storage", closeRepo})

	rdb, err := redis.New(ctx, &a.cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	closers = append(closers, closer{"redis", rdb.Close})

	ch, err := click.New(ctx, &a.cfg.ClickHouse)
	if err != nil {
		return fmt.Errorf("clickhouse: %w", err)
	}
	closers = append(closers, closer{"clickhouse", ch.Close})
	analytics := click.NewOperationWriter(ch)
	if err := analytics.EnsureTable(ctx); err != nil {
		return fmt.Errorf("clickhouse ensure table: %w", err)
	}

	sheetTokens, err := tokens.NewStore(a.cfg.Server.TokensFile, log)
	if err != nil {
		return fmt.Errorf("tokens: %w", err)
	}
	go func() {
		if err := sheetTokens.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Warn("tokens watch stopped", "error", err)
		}
	}()

	producer := kafka.NewProducer(&a.cfg.Kafka)
	closers = append(closers, closer{"kafka producer", producer.Close})

	phi := golden.NewPowerCache()
	cache := redis.NewCache(rdb, a.cfg.Redis.TTL, log)
	uc := scaleUsecase.New(phi, repo, cache, producer, analytics, log)

	consumer := kafka.NewConsumer(&a.cfg.Kafka, uc, log)
	closers = append(closers, closer{"kafka consumer", consumer.Close})
	go func() {
		if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("kafka consumer failed", "error", err)
		}
	}()

	reporter := stats.New(analytics, middlewares.SetOperationsByKind, log)
	go func() {
		if err := reporter.Run(ctx, a.cfg.Stats); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("stats reporter failed", "error", err)
		}
	}()

	grpcAddr := a.cfg.Grpc.Addr()
	grpcSrv := apigrpc.NewServer(grpcAddr, uc, log)
	go func() {
		if err := grpcSrv.Start(); err != nil {
			log.Error("grpc server failed", "error", err)
		}
	}()

	srv := apihttp.NewServer(a.cfg.Server, log)
	srv.AddController(
		system.New(map[string]system.Pinger{
			"storage":    repo,
			"redis":      rdb,
			"clickhouse": ch,
		}, log),
		scaleController.New(uc, analytics, log),
		css.New(phi, sheetTokens, uc, log))

	log.Info("application started",
		"http", a.cfg.Server.Host+":"+a.cfg.Server.Port,
		"grpc", grpcAddr,
		"storage", a.cfg.Storage.Driver)

	if err := srv.Start(ctx); err != nil {
		return err
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return grpcSrv.Stop(shutdownCtx)
}

// storage подключает хранилище истории по PHICALC_STORAGE_DRIVER.
func (a *App) storage(ctx context.Context, log *slog.Logger) (ports.IOperationRepository, func() error, error) {
	switch a.cfg.Storage.Driver {
	case StorageMongo:
		cli, err := mongo.New(ctx, &a.cfg.Mongo)
		if err != nil {
			return nil, nil, fmt.Errorf("mongo: %w", err)
		}
		if err := cli.EnsureIndexes(ctx); err != nil {
			_ = cli.Disconnect(context.Background())
			return nil, nil, err
		}
		disconnect := func() error {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return cli.Disconnect(ctx)
		}
		return mongo.NewOperationRepo(cli, log), disconnect, nil
	default:
		db, err := pg.New(ctx, &a.cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("db: %w", err)
		}
		if err := pg.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		return pg.NewOperationRepo(db, log), db.Close, nil
	}
}
