package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. Messages follow the "[area][layer] event"
// convention, identifiers go into fields.
var Log = logrus.New()

func init() {
	Log.SetOutput(os.Stdout)
	Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// Configure sets the level ("debug", "info", ...) and format ("text" or "json").
func Configure(level, format string) error {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return err
	}
	Log.SetLevel(lvl)

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		Log.SetFormatter(&logrus.JSONFormatter{})
	default:
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}

var (
	writerOnce sync.Once
	writer     io.Writer
)

// Writer exposes the logger as an io.Writer at info level, for gin.
// The same pipe is shared by every caller.
func Writer() io.Writer {
	writerOnce.Do(func() {
		writer = Log.WriterLevel(logrus.InfoLevel)
	})
	return writer
}
