package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the shared logger for the client. Until Init runs it writes
// nowhere, so library use without a log file stays silent.
var Logger = logrus.New()

var once sync.Once

func init() {
	Logger.SetOutput(io.Discard)
}

// Init points the logger at a rotating file. CLI output never goes through
// here; the log file is for request traces and failure diagnostics.
func Init(path string) error {
	var initErr error
	once.Do(func() {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			initErr = err
			return
		}
		Logger.SetOutput(&lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
		Logger.SetLevel(logrus.InfoLevel)
	})
	return initErr
}

// SetVerbose additionally mirrors log entries to stderr.
func SetVerbose() {
	Logger.SetLevel(logrus.DebugLevel)
	Logger.AddHook(&stderrHook{})
}

type stderrHook struct{}

func (*stderrHook) Levels() []logrus.Level { return logrus.AllLevels }

func (*stderrHook) Fire(entry *logrus.Entry) error {
	line, err := entry.Bytes()
	if err != nil {
		return err
	}
	_, err = os.Stderr.Write(line)
	return err
}
