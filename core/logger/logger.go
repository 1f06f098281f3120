package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	if os.Getenv("LOG_LEVEL") == "debug" {
		log.SetLevel(logrus.DebugLevel)
	}
}

// fields converts alternating key/value arguments into logrus fields.
// A trailing odd argument (commonly a bare error) is logged under "error".
func fields(args []any) logrus.Fields {
	f := logrus.Fields{}
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = "arg"
		}
		f[key] = args[i+1]
	}
	if len(args)%2 == 1 {
		f["error"] = args[len(args)-1]
	}
	return f
}

func Info(msg string, args ...any) {
	log.WithFields(fields(args)).Info(msg)
}

func Warn(msg string, args ...any) {
	log.WithFields(fields(args)).Warn(msg)
}

func Error(msg string, args ...any) {
	log.WithFields(fields(args)).Error(msg)
}

func Debug(msg string, args ...any) {
	log.WithFields(fields(args)).Debug(msg)
}
