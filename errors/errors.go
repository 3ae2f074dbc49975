// Package errors reports unexpected failures to Sentry.
//
// Invalid input (a malformed UUID, an unknown version token) is the user's
// to fix and is never reported; everything else, such as a failing random
// source or an unreadable stdin, is.
package errors

import (
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"

	"github.com/replicate/uuidtool/logging"
	"github.com/replicate/uuidtool/uuid"
	"github.com/replicate/uuidtool/version"
)

const flushTimeout = 2 * time.Second

var logger = logging.New("errors")

func Init() {
	sentryDSN := os.Getenv("SENTRY_DSN")
	if sentryDSN == "" {
		logger.Debug("SENTRY_DSN not set: skipping Sentry initialization")
		return
	}
	initSentry(sentry.ClientOptions{Dsn: sentryDSN})
}

func initSentry(opts sentry.ClientOptions) {
	logger.Info("Initializing Sentry")
	opts.AttachStacktrace = true
	opts.Release = version.Version()
	if err := sentry.Init(opts); err != nil {
		logger.Sugar().Warnf("Failed to initialize Sentry client: %v", err)
	}
}

// Report sends err to Sentry unless it is nil or an input error, and reports
// whether it did.
func Report(err error) bool {
	if err == nil || uuid.IsInputError(err) {
		return false
	}
	logger.Debug("reporting error", zap.Error(err))
	sentry.CaptureException(err)
	return true
}

// Flush waits for queued events to be delivered.
func Flush() {
	sentry.Flush(flushTimeout)
}
