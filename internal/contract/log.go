package contract

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	logger   = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	loggerMu sync.RWMutex

	// exitFunc is swapped in tests.
	exitFunc = os.Exit
)

// InitLogger configures the process-wide logger. A nil writer means stderr.
func InitLogger(level zerolog.Level, w io.Writer) {
	if w == nil {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Logger returns the process-wide logger.
func Logger() *zerolog.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	l := logger
	return &l
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	Logger().Error().Err(err).Msg("Fatal " + msg)
	exitFunc(1)
}

// LogError logs an error without exiting.
func LogError(msg string, err error) {
	Logger().Error().Err(err).Msg(msg)
}

// LogWarn logs a warning message.
func LogWarn(msg string, err error) {
	Logger().Warn().Err(err).Msg(msg)
}

// LogInfo logs an informational message.
func LogInfo(msg string) {
	Logger().Info().Msg(msg)
}
