package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"estatehub/internal/config"
)

// New builds a logrus logger from the log configuration. Unknown levels fall
// back to info; format "json" selects the JSON formatter, anything else text.
func New(cfg config.LogConfig) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if strings.EqualFold(cfg.Format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l
}

// LogError logs err with the module/function context used across services.
func LogError(l logrus.FieldLogger, module, funcName string, data any, err error) {
	fields := logrus.Fields{
		"module":   module,
		"funcName": funcName,
	}
	if data != nil {
		fields["data"] = data
	}
	l.WithFields(fields).Error(err.Error())
}
