package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/2beens/lifedash/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	rotateAtMegabytes = 50
	sentryServerName  = "lifedash-service"
)

// Options controls where the service logs go and which entries reach sentry.
type Options struct {
	// FilePath empty means stdout only; ".log" is appended when missing.
	FilePath    string
	AlsoStdout  bool
	Level       string
	JSON        bool
	Environment string
	// SentryDSN empty disables the sentry hook.
	SentryDSN  string
	ServerName string
	// 0 keeps all rotated files
	MaxBackups int
}

func Setup(opts Options) {
	if opts.JSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	logrus.SetLevel(GetLevel(opts.Level))

	if opts.SentryDSN != "" {
		if err := initSentry(opts); err != nil {
			logrus.Errorf("sentry init: %s", err)
		} else {
			logrus.AddHook(NewSentryHook([]logrus.Level{
				logrus.PanicLevel,
				logrus.FatalLevel,
				logrus.ErrorLevel,
			}))
			logrus.Infof("sentry hook added [env: %s]", opts.Environment)
		}
	}

	out, desc := output(opts)
	logrus.SetOutput(out)
	logrus.Infof("logs output: %s", desc)
}

func initSentry(opts Options) error {
	serverName := opts.ServerName
	if serverName == "" {
		serverName = sentryServerName
	}
	return sentry.Init(sentry.ClientOptions{
		Dsn:              opts.SentryDSN,
		Environment:      opts.Environment,
		ServerName:       serverName,
		TracesSampleRate: 1.0,
	})
}

// output picks the log writer and a short description of it for the startup line.
func output(opts Options) (io.Writer, string) {
	if opts.FilePath == "" {
		return os.Stdout, "stdout"
	}

	path := opts.FilePath
	if filepath.Ext(path) != ".log" {
		path += ".log"
	}
	rotating := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    rotateAtMegabytes,
		MaxBackups: opts.MaxBackups,
		Compress:   true,
	}

	if !opts.AlsoStdout {
		return rotating, path
	}
	return pkg.NewCombinedWriter(os.Stdout, rotating), path + " + stdout"
}

// GetLevel parses a logrus level name, falling back to trace for unknown names.
func GetLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.TraceLevel
	}
	return lvl
}
