package helpers

import (
	"io"

	"github.com/sirupsen/logrus"
)

// ConfigureLogging routes diagnostic logs to writer at debug level when verbose,
// otherwise at warn level.
func ConfigureLogging(writer io.Writer, verbose bool) {
	logrus.SetOutput(writer)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)

		return
	}

	logrus.SetLevel(logrus.WarnLevel)
}
