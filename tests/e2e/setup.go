//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"hotel-reservation/cmd/bootstrap"
	"hotel-reservation/cmd/bootstrap/components"
	"hotel-reservation/internal/infra/db"
	"hotel-reservation/internal/infra/repository"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/usecase/shared"
	"hotel-reservation/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
	pgPort     = "5432/tcp"
)

var (
	pgOnce      sync.Once
	pgContainer testcontainers.Container
	pgErr       error
)

// environment is one isolated database plus the fx graph serving it.
type environment struct {
	pool   *pgxpool.Pool
	router *gin.Engine
	cfg    config.Config
	uow    shared.UnitOfWork
	jobs   *repository.NotificationRepository
}

func setupEnvironment(t *testing.T) environment {
	t.Helper()
	gin.SetMode(gin.TestMode)

	host, port := postgresEndpoint(t)
	dbCfg := createDatabase(t, host, port)
	require.NoError(t, migrate(dbCfg), "マイグレーションに失敗")

	pool, cleanup, err := db.Connect(dbCfg)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(cleanup)

	env := environment{pool: pool}
	app := fx.New(
		fx.Supply(pool, testConfig(dbCfg)),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.CacheModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		bootstrap.BrokerModule,
		fx.Populate(&env.router, &env.cfg, &env.uow, &env.jobs),
		fx.NopLogger,
	)

	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(startCtx), "fxアプリケーションの起動に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})

	return env
}

// testConfig keeps Redis and AMQP off: the catalog cache, the rate limiter
// and the relay loop are bypassed, and outbox rows stay queued for assertions.
func testConfig(dbCfg config.DBConfig) config.Config {
	cfg := config.NewTestConfig()
	cfg.DB = dbCfg
	cfg.Redis.Addr = ""
	cfg.Broker.URL = ""
	return cfg
}

// ------------------------------------------------------------
// PostgreSQL: コンテナはプロセス内で共有し、データベースはスイート毎に作る
// ------------------------------------------------------------
func postgresEndpoint(t *testing.T) (string, nat.Port) {
	t.Helper()
	pgOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		pgContainer, pgErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{pgPort},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
				Cmd: []string{
					"postgres",
					"-c", "fsync=off",
					"-c", "full_page_writes=off",
					"-c", "synchronous_commit=off",
					"-c", "max_connections=200",
				},
				WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
					return adminDSN(host, port)
				}).WithStartupTimeout(time.Minute),
				Labels: map[string]string{"purpose": "hotel-reservation-e2e"},
			},
			Started: true,
		})
	})
	require.NoError(t, pgErr, "PostgreSQLコンテナの起動に失敗")

	ctx := context.Background()
	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, nat.Port(pgPort))
	require.NoError(t, err)
	return host, port
}

func adminDSN(host string, port nat.Port) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())
}

func createDatabase(t *testing.T, host string, port nat.Port) config.DBConfig {
	t.Helper()
	name := "hotel_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	admin, err := pgxpool.New(ctx, adminDSN(host, port))
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	// 並列スイートが同時にテンプレートDBを使うと CREATE DATABASE が失敗することがある
	for attempt := 1; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
		if err == nil || attempt == 5 {
			break
		}
		slog.Warn("データベース作成を再試行中", "attempt", attempt, "error", err.Error())
		time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
	}
	require.NoError(t, err, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN(host, port))
		if err != nil {
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     host,
		Port:     port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
	}
}

// migrate applies every migrations/*.sql in name order, the same files
// cmd/migrate hands to atlas.
func migrate(dbCfg config.DBConfig) error {
	dir, err := migrationsDir()
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return err
	}
	slices.Sort(files)

	pool, cleanup, err := db.Connect(dbCfg)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, f := range files {
		sql, err := os.ReadFile(f)
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("migration %s: %w", filepath.Base(f), err)
		}
	}
	return nil
}

// migrationsDir walks up from the package under test to the module root.
func migrationsDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return filepath.Join(dir, "migrations"), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found above %s", dir)
		}
		dir = parent
	}
}

// ------------------------------------------------------------
// E2Eテストスイートで共通のセットアップ
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
	UoW    shared.UnitOfWork
	Jobs   *repository.NotificationRepository
}

func (s *SharedSuite) SetupSuite() {
	env := setupEnvironment(s.T())
	s.DB = env.pool
	s.Router = env.router
	s.Config = env.cfg
	s.UoW = env.uow
	s.Jobs = env.jobs
}

// SetupSubTest gives every s.Run an empty database.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "データベースの初期化に失敗")
}
