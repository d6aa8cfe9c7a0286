package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"

	"github.com/limbo/goalkeeper/pkg/cleanup"
)

// Init sets up the default slog logger. Development uses text output with debug level,
// otherwise JSON with info level. With a sentry DSN errors are also sent to Sentry.
func Init(isDev bool, sentryDSN string) *slog.Logger {
	return initWithWriter(os.Stdout, isDev, sentryDSN)
}

func initWithWriter(w io.Writer, isDev bool, sentryDSN string) *slog.Logger {
	handlers := make([]slog.Handler, 0, 2)
	if isDev {
		handlers = append(handlers, slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	} else {
		handlers = append(handlers, slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	if sentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              sentryDSN,
			TracesSampleRate: 1.0,
		})
		if err == nil {
			handlers = append(handlers, slogsentry.Option{Level: slog.LevelError}.NewSentryHandler())
			cleanup.Register(&cleanup.Job{
				Name: "flushing sentry",
				F: func() error {
					if !sentry.Flush(2 * time.Second) {
						return errors.New("sentry flush timed out")
					}
					return nil
				},
			})
		}
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = slogmulti.Fanout(handlers...)
	} else {
		handler = handlers[0]
	}
	log := slog.New(handler)
	slog.SetDefault(log)
	if sentryDSN != "" && len(handlers) == 1 {
		log.Warn("sentry init failed, errors are logged locally only")
	}
	return log
}
