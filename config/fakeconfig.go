package config

import (
	"io"

	"github.com/sirupsen/logrus"
)

// FakeConfig returns a configuration struct working in dir, with a silent
// logger, for unit tests
func FakeConfig(dir string) *GuConfig {
	logger := logrus.New()
	logger.Out = io.Discard

	return &GuConfig{
		Logger:  logger,
		WorkDir: dir,
	}
}
