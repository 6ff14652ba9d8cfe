package configs

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the application logger. JSON output in production so the lines are
// ingestable; colored text locally.
var Log = logrus.New()

func InitLogger() {
	Log.SetOutput(os.Stdout)
	if IsProduction() {
		Log.SetFormatter(&logrus.JSONFormatter{})
		Log.SetLevel(logrus.InfoLevel)
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		Log.SetLevel(logrus.DebugLevel)
	}
}
