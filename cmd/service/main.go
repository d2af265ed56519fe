package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/2beens/lifedash/internal"
	"github.com/2beens/lifedash/internal/config"
	"github.com/2beens/lifedash/internal/logging"
	"github.com/2beens/lifedash/pkg"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development | ddev | dockerdev ]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	envFile := flag.String("env-file", ".env", "optional dotenv file with secrets")
	flag.Parse()

	// real env vars win over the dotenv file
	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warnf("load env file [%s]: %s", *envFile, err)
	}

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	sentryDSN := ""
	if cfg.SentryEnabled {
		sentryDSN = os.Getenv("SENTRY_DSN")
	}
	logging.Setup(logging.Options{
		FilePath:    cfg.LogsPath,
		AlsoStdout:  cfg.LogToStdout,
		Level:       cfg.LogLevel,
		Environment: cfg.Environment,
		SentryDSN:   sentryDSN,
	})

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)

	versionInfo, err := tryGetLastCommitHash()
	if err != nil {
		log.Tracef("failed to get last commit hash / version info: %s", err)
	} else {
		log.Tracef("running version: %s", versionInfo)
	}

	dbPassword := os.Getenv("LIFEDASH_DB_PASSWORD")
	if dbPassword == "" {
		log.Errorf("db password not set. use LIFEDASH_DB_PASSWORD")
	}

	redisPassword := os.Getenv("LIFEDASH_REDIS_PASS")
	if redisPassword == "" {
		log.Errorf("redis password not set. use LIFEDASH_REDIS_PASS")
	}

	// optional, creates the owner account on first start
	adminUsername := os.Getenv("LIFEDASH_ADMIN_USERNAME")
	adminPasswordHash := os.Getenv("LIFEDASH_ADMIN_PASSWORD_HASH")
	if adminUsername == "" || adminPasswordHash == "" {
		log.Debugln("admin bootstrap skipped, LIFEDASH_ADMIN_USERNAME or LIFEDASH_ADMIN_PASSWORD_HASH not set")
	}

	googleClientID := os.Getenv("GOOGLE_CLIENT_ID")
	googleClientSecret := os.Getenv("GOOGLE_CLIENT_SECRET")
	googleRedirectURI := os.Getenv("GOOGLE_REDIRECT_URI")
	if googleClientID == "" || googleClientSecret == "" || googleRedirectURI == "" {
		log.Errorf("google oauth not configured, calendar sync off. use GOOGLE_CLIENT_ID, GOOGLE_CLIENT_SECRET and GOOGLE_REDIRECT_URI")
	}

	alphaVantageAPIKey := os.Getenv("ALPHA_VANTAGE_API_KEY")
	if alphaVantageAPIKey == "" {
		log.Errorf("alpha vantage API key not set, use ALPHA_VANTAGE_API_KEY env var to set it")
	}
	twelveDataAPIKey := os.Getenv("TWELVE_DATA_API_KEY")
	if twelveDataAPIKey == "" {
		log.Errorf("twelve data API key not set, use TWELVE_DATA_API_KEY env var to set it")
	}

	if otelServiceName := os.Getenv("OTEL_SERVICE_NAME"); otelServiceName == "" {
		log.Warnln("OTEL_SERVICE_NAME env var not set")
	}

	honeycombEnabled := os.Getenv("HONEYCOMB_ENABLED") == "true"
	if honeycombEnabled {
		if honeycombApiKey := os.Getenv("HONEYCOMB_API_KEY"); honeycombApiKey == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			VersionInfo:             versionInfo,
			DBPassword:              dbPassword,
			RedisPassword:           redisPassword,
			HoneycombTracingEnabled: honeycombEnabled,
			AdminUsername:           adminUsername,
			AdminPasswordHash:       adminPasswordHash,
			GoogleClientID:          googleClientID,
			GoogleClientSecret:      googleClientSecret,
			GoogleRedirectURL:       googleRedirectURI,
			AlphaVantageAPIKey:      alphaVantageAPIKey,
			TwelveDataAPIKey:        twelveDataAPIKey,
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(ctx, cfg.Host, cfg.Port)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	cancel()

	server.GracefulShutdown()
}

// tryGetLastCommitHash assumes the binary runs from the project root.
func tryGetLastCommitHash() (string, error) {
	cmd := exec.Command("/usr/bin/git", "rev-parse", "HEAD")
	stdout, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return pkg.BytesToString(stdout), nil
}
