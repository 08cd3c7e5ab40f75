package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymlog/internal"
	"github.com/2beens/gymlog/internal/config"
	"github.com/2beens/gymlog/internal/logging"
	"github.com/2beens/gymlog/pkg"
)

// secrets never live in config.toml, only in the process env or the env file.
type secrets struct {
	jwtSecret        string
	redisPassword    string
	dbUser           string
	dbPassword       string
	sentryDSN        string
	honeycombEnabled bool
}

func secretsFromEnv() (secrets, error) {
	s := secrets{
		jwtSecret:        os.Getenv("GYMLOG_JWT_SECRET"),
		redisPassword:    os.Getenv("GYMLOG_REDIS_PASS"),
		dbUser:           os.Getenv("GYMLOG_DB_USER"),
		dbPassword:       os.Getenv("GYMLOG_DB_PASSWORD"),
		sentryDSN:        os.Getenv("SENTRY_DSN"),
		honeycombEnabled: os.Getenv("HONEYCOMB_ENABLED") == "true",
	}
	if s.jwtSecret == "" {
		return s, errors.New("jwt secret not set, use GYMLOG_JWT_SECRET")
	}
	return s, nil
}

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	envFile := flag.String("env-file", ".env", "optional dotenv file with secrets")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load env file %s: %s", *envFile, err)
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	sec, err := secretsFromEnv()
	if err != nil {
		log.Fatalln(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      *env,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        sec.sentryDSN,
		SentryServerName: "gymlog-service",
	})
	log.Warnf("---->> running in [%s] environment, port %d", *env, cfg.Port)

	if sec.redisPassword == "" {
		log.Warnln("redis password not set, use GYMLOG_REDIS_PASS")
	}
	if sec.honeycombEnabled {
		if os.Getenv("HONEYCOMB_API_KEY") == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
		if os.Getenv("OTEL_SERVICE_NAME") == "" {
			log.Warnln("OTEL_SERVICE_NAME env var not set")
		}
	}

	versionInfo, err := tryGetLastCommitHash()
	if err != nil {
		log.Tracef("no version info: %s", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			VersionInfo:             versionInfo,
			JWTSecret:               sec.jwtSecret,
			RedisPassword:           sec.redisPassword,
			DBUser:                  sec.dbUser,
			DBPassword:              sec.dbPassword,
			HoneycombTracingEnabled: sec.honeycombEnabled,
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(cfg.Host, cfg.Port)

	<-ctx.Done()
	log.Warnln("shutdown signal received, stopping ...")
	server.GracefulShutdown()
}

// tryGetLastCommitHash assumes the binary runs from within the git checkout.
func tryGetLastCommitHash() (string, error) {
	stdout, err := exec.Command("git", "rev-parse", "--short", "HEAD").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(pkg.BytesToString(stdout)), nil
}
