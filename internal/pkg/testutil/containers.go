// Package testutil содержит хелперы интеграционных тестов: контейнеры testcontainers
// для PostgreSQL, Redis, MongoDB и ClickHouse. Каждый Start* живёт до конца теста.
package testutil

import (
	"context"
	"log/slog"
	"net"
	"os"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/clickhouse"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

const startupTimeout = 2 * time.Minute

// Endpoint — адрес проброшенного порта контейнера.
type Endpoint struct {
	Host string
	Port string
}

// Addr возвращает "host:port".
func (e Endpoint) Addr() string {
	return net.JoinHostPort(e.Host, e.Port)
}

// Postgres — подключение к тестовому PostgreSQL.
type Postgres struct {
	Endpoint
	User     string
	Password string
	DBName   string
}

// Mongo — подключение к тестовой MongoDB.
type Mongo struct {
	Endpoint
}

// URI возвращает строку подключения для mongo-driver.
func (m Mongo) URI() string {
	return "mongodb://" + m.Addr()
}

// ClickHouse — подключение к тестовому ClickHouse (нативный протокол).
type ClickHouse struct {
	Endpoint
	User     string
	Password string
	Database string
}

// SkipShort пропускает интеграционный тест в режиме -short.
func SkipShort(t testing.TB) {
	t.Helper()
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}
}

// Logger — логгер для интеграционных тестов.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// started регистрирует остановку контейнера и возвращает адрес порта port.
// Ошибка запуска валит тест.
func started(t testing.TB, ctx context.Context, name string, c testcontainers.Container, runErr error, port nat.Port) Endpoint {
	t.Helper()
	if runErr != nil {
		t.Fatalf("%s container: %v", name, runErr)
	}
	t.Cleanup(func() {
		if err := c.Terminate(context.Background()); err != nil {
			t.Logf("terminate %s: %v", name, err)
		}
	})

	host, err := c.Host(ctx)
	if err != nil {
		t.Fatalf("%s host: %v", name, err)
	}
	mapped, err := c.MappedPort(ctx, port)
	if err != nil {
		t.Fatalf("%s port %s: %v", name, port, err)
	}
	return Endpoint{Host: host, Port: mapped.Port()}
}

func startupContext(t testing.TB) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	t.Cleanup(cancel)
	return ctx
}

// StartPostgres поднимает PostgreSQL 16 на время теста.
func StartPostgres(t testing.TB) Postgres {
	t.Helper()
	ctx := startupContext(t)
	pg := Postgres{User: "test", Password: "test", DBName: "phicalc_test"}

	c, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase(pg.DBName),
		postgres.WithUsername(pg.User),
		postgres.WithPassword(pg.Password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		),
	)
	pg.Endpoint = started(t, ctx, "postgres", c, err, "5432/tcp")
	return pg
}

// StartRedis поднимает Redis 7 на время теста.
func StartRedis(t testing.TB) Endpoint {
	t.Helper()
	ctx := startupContext(t)
	c, err := redis.Run(ctx, "redis:7-alpine",
		testcontainers.WithWaitStrategy(wait.ForLog("Ready to accept connections")),
	)
	return started(t, ctx, "redis", c, err, "6379/tcp")
}

// StartMongo поднимает MongoDB 7 на время теста.
func StartMongo(t testing.TB) Mongo {
	t.Helper()
	ctx := startupContext(t)
	c, err := mongodb.Run(ctx, "mongo:7",
		testcontainers.WithWaitStrategy(wait.ForLog("Waiting for connections")),
	)
	return Mongo{Endpoint: started(t, ctx, "mongo", c, err, "27017/tcp")}
}

// StartClickHouse поднимает ClickHouse 24 на время теста.
func StartClickHouse(t testing.TB) ClickHouse {
	t.Helper()
	ctx := startupContext(t)
	ch := ClickHouse{User: "default", Database: "default"}

	c, err := clickhouse.Run(ctx, "clickhouse/clickhouse-server:24-alpine",
		clickhouse.WithUsername(ch.User),
		clickhouse.WithPassword(ch.Password),
		clickhouse.WithDatabase(ch.Database),
	)
	ch.Endpoint = started(t, ctx, "clickhouse", c, err, "9000/tcp")
	return ch
}

