package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
// Until Init is called it logs at info level to stderr with the default formatter.
var Log = logrus.New()

// Init configures the global logger from the environment.
// It should be called once at startup, in main.go or in a test's TestMain.
//
//	LOG_LEVEL  - logrus level name, "info" by default ("debug" traces tracer and pathfinder work)
//	LOG_FORMAT - "json" for machine-readable output, anything else for colored text
func Init() {
	InitWithOutput(os.Stdout)
}

// InitWithOutput is Init with an explicit sink. Tests pass io.Discard or a buffer.
func InitWithOutput(out io.Writer) {
	level, err := logrus.ParseLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   out == os.Stdout,
		})
	}

	Log.SetOutput(out)
}

// Component returns an entry tagged with the subsystem name, the way every
// system in this module labels its log lines.
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
