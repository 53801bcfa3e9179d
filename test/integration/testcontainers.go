package integration

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	migrationsfs "github.com/doodlesbykumbi/feedback-in-go/db"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/accounts"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/feedback"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/server"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/server/endpoints"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/server/render"
	gormstore "github.com/doodlesbykumbi/feedback-in-go/pkg/server/store/gorm"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/session"
)

const (
	serverPort    = "18080"
	sessionSecret = "integration-test-secret-0123456789ab"
)

// TestContext holds all the resources needed for integration tests
type TestContext struct {
	DB          *gorm.DB
	Container   testcontainers.Container
	ServerURL   string
	DatabaseURL string
}

// NewTestContext starts a PostgreSQL testcontainer, migrates the schema
// and runs the server in-process.
func NewTestContext(ctx context.Context) (*TestContext, error) {
	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("feedback_test"),
		tcpostgres.WithUsername("feedback"),
		tcpostgres.WithPassword("feedback"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	host, err := pgContainer.Host(ctx)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}
	port, err := pgContainer.MappedPort(ctx, "5432")
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}
	connStr := fmt.Sprintf("postgres://feedback:feedback@%s:%s/feedback_test?sslmode=disable", host, port.Port())

	if err := runMigrations(connStr); err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	serverURL := "http://127.0.0.1:" + serverPort
	if err := startInlineServer(db); err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to start server: %w", err)
	}

	if err := waitForServer(serverURL, 30*time.Second); err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("server failed to become ready: %w", err)
	}

	return &TestContext{
		DB:          db,
		Container:   pgContainer,
		ServerURL:   serverURL,
		DatabaseURL: connStr,
	}, nil
}

// Close tears down the container.
func (tc *TestContext) Close(ctx context.Context) {
	if err := tc.Container.Terminate(ctx); err != nil {
		log.Printf("failed to terminate container: %v", err)
	}
}

// runMigrations applies the embedded migrations to the test database.
func runMigrations(dbURL string) error {
	migrationsFS, err := fs.Sub(migrationsfs.Migrations, "migrations")
	if err != nil {
		return err
	}

	d, err := iofs.New(migrationsFS, ".")
	if err != nil {
		return err
	}

	m, err := migrate.NewWithSourceInstance("iofs", d, dbURL)
	if err != nil {
		return err
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

// startInlineServer starts the server in-process (no binary needed)
func startInlineServer(db *gorm.DB) error {
	renderer, err := render.New()
	if err != nil {
		return err
	}

	s := server.NewServer(
		db,
		session.NewManager([]byte(sessionSecret)),
		renderer,
		accounts.NewService(gormstore.NewAccountsStore(db)),
		feedback.NewService(gormstore.NewFeedbackStore(db)),
		gormstore.NewHealthStore(db),
		"127.0.0.1",
		serverPort,
	)
	endpoints.RegisterAll(s)

	go func() {
		_ = s.Start()
	}()

	return nil
}

func waitForServer(serverURL string, timeout time.Duration) error {
	client := &http.Client{Timeout: 2 * time.Second}
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		resp, err := client.Get(serverURL + "/health")
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(250 * time.Millisecond)
	}

	return fmt.Errorf("server at %s did not become ready within %s", serverURL, timeout)
}
