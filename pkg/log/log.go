// Package log initialize and configure a logrus logger.
package log

import (
	"github.com/sirupsen/logrus"
)

const (
	outputStdout = "stdout"
	outputStderr = "stderr"
	outputSyslog = "syslog"
	outputTest   = "test"

	syslogTag = "gitutility"
)

// New initialize logrus and return a new logger. logOutput is one of
// stdout, stderr (the default), syslog (needs logServer) or test.
func New(logLevel string, logServer string, logOutput string) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}

	output, hook, err := getOutput(logServer, logOutput)
	if err != nil {
		return nil, err
	}

	formatter := &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	}

	log := &logrus.Logger{
		Out:       output,
		Formatter: formatter,
		Hooks:     make(logrus.LevelHooks),
		Level:     level,
	}

	if hook != nil {
		log.Hooks.Add(hook)
	}

	return log, nil
}
