//go:build integration_test || all_tests

package integration_testing

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/2beens/gymtracker/internal"
	"github.com/2beens/gymtracker/internal/config"
	"github.com/2beens/gymtracker/internal/db"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	log "github.com/sirupsen/logrus"
)

const (
	serverPort = 9000
	serverHost = "localhost"

	postgresPassword = "postgres"
	postgresDBName   = "gymtracker"
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

// Stack is a running server backed by dockerized postgres and redis.
type Stack struct {
	DB        *sql.DB
	RedisPort string

	dockerPool *dockertest.Pool
	server     *internal.Server
	teardown   []func()
}

func NewStack(ctx context.Context) (_ *Stack, err error) {
	s := &Stack{}
	defer func() {
		if err != nil {
			s.Cleanup()
		}
	}()

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	s.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not create new dockertest pool: %w", err)
	}
	s.dockerPool.MaxWait = 2 * time.Minute

	if err = s.dockerPool.Client.Ping(); err != nil {
		return nil, fmt.Errorf("could not ping dockertest pool: %w", err)
	}

	s.RedisPort, err = s.redisSetup()
	if err != nil {
		return nil, fmt.Errorf("failed to setup redis: %w", err)
	}
	log.Debug("redis setup successful")

	pgPort, err := s.postgresSetup()
	if err != nil {
		return nil, fmt.Errorf("failed to setup postgres: %w", err)
	}
	log.Debug("postgres setup successful")

	cfg := testConfig(s.RedisPort, pgPort)
	s.server, err = internal.NewServer(ctx, internal.NewServerParams{
		Config:           cfg,
		VersionInfo:      "test-version-info",
		PostgresPassword: postgresPassword,
	})
	if err != nil {
		return nil, fmt.Errorf("new server: %w", err)
	}

	s.server.Serve(cfg.Host, cfg.Port)
	log.Debug("server started")

	return s, nil
}

func (s *Stack) Cleanup() {
	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			log.Errorf("test stack db close: %s", err)
		}
	}
	if s.server != nil {
		s.server.GracefulShutdown()
	}
	for i := len(s.teardown) - 1; i >= 0; i-- {
		s.teardown[i]()
	}
}

func testConfig(redisPort, postgresPort string) *config.Config {
	return &config.Config{
		Environment:                 "test",
		Host:                        serverHost,
		Port:                        serverPort,
		LogLevel:                    "debug",
		LogsPath:                    os.TempDir(),
		LogToStdout:                 true,
		PostgresHost:                "localhost",
		PostgresPort:                postgresPort,
		PostgresDBName:              postgresDBName,
		PostgresUser:                "postgres",
		RedisHost:                   "localhost",
		RedisPort:                   redisPort,
		PrometheusMetricsHost:       "localhost",
		PrometheusMetricsPort:       "9002",
		LoginRateLimitAllowedPerMin: 100,
		SessionTTL:                  config.Duration{Duration: time.Hour},
		Timezone:                    "America/Sao_Paulo",
	}
}

func (s *Stack) redisSetup() (string, error) {
	redisResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %w", err)
	}

	s.teardown = append(s.teardown, func() {
		if err := redisResource.Close(); err != nil {
			log.Errorf("redis teardown: %s", err)
		}
	})

	return redisResource.GetPort("6379/tcp"), nil
}

func (s *Stack) postgresSetup() (string, error) {
	pgResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_PASSWORD=" + postgresPassword,
			"POSTGRES_DB=" + postgresDBName,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("dockerpool run postgres: %w", err)
	}

	s.teardown = append(s.teardown, func() {
		if err := pgResource.Close(); err != nil {
			log.Errorf("postgres teardown: %s", err)
		}
	})

	pgPort := pgResource.GetPort("5432/tcp")
	dsn := fmt.Sprintf(
		"postgres://postgres:%s@localhost:%s/%s?sslmode=disable",
		postgresPassword, pgPort, postgresDBName,
	)

	if err := s.dockerPool.Retry(func() error {
		var err error
		s.DB, err = sql.Open("postgres", dsn)
		if err != nil {
			return err
		}
		return s.DB.Ping()
	}); err != nil {
		return "", fmt.Errorf("connect to db: %w", err)
	}

	if _, err := s.DB.Exec(db.Schema); err != nil {
		return "", fmt.Errorf("run schema: %w", err)
	}

	return pgPort, nil
}
