package medusa

import (
	"os"

	"github.com/op/go-logging"
)

const logModule = "medusa"

var log = logging.MustGetLogger(logModule)

var stderrFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:.4s} %{module} ▶ %{message}`,
)

// SetupLogging sends package logs to stderr at defaultLevel. The
// MEDUSA_LOG_LEVEL environment variable (CRITICAL, ERROR, WARNING, NOTICE,
// INFO or DEBUG) takes precedence when set.
func SetupLogging(defaultLevel logging.Level) *logging.Logger {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, stderrFormat)
	leveled := logging.AddModuleLevel(formatted)

	level := defaultLevel
	if env := os.Getenv("MEDUSA_LOG_LEVEL"); env != "" {
		if l, err := logging.LogLevel(env); err == nil {
			level = l
		}
	}
	leveled.SetLevel(level, logModule)
	logging.SetBackend(leveled)
	return log
}
