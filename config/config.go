package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

var appFs = afero.NewOsFs()

// GuConfig is the configuration struct, shared by all subcommands
type GuConfig struct {
	// When DryRun is true, we log but don't run git commands
	DryRun bool

	// Logger should be used to send all logs
	Logger *logrus.Logger

	// WorkDir is where git commands are run. Empty means the current directory.
	WorkDir string

	// CreateDir asks to create WorkDir when missing
	CreateDir bool

	// Timeout bounds every git command. Set to 0 to wait forever.
	Timeout time.Duration
}

// Init checks (and optionally creates) the working directory
func (c *GuConfig) Init() error {
	if c.WorkDir == "" {
		return nil
	}

	if c.CreateDir && !c.DryRun {
		err := appFs.MkdirAll(c.WorkDir, 0700)
		if err != nil {
			return fmt.Errorf("failed to create %s: %v", c.WorkDir, err)
		}
	}

	// better fail early, git would only report a spawn error
	exists, err := afero.DirExists(appFs, c.WorkDir)
	if err != nil {
		return fmt.Errorf("can't stat working directory %s: %v", c.WorkDir, err)
	}
	if !exists {
		return fmt.Errorf("working directory %s doesn't exist", c.WorkDir)
	}

	c.Logger.Debugf("using working directory %s", c.WorkDir)
	return nil
}

// Context returns the context git commands should run with
func (c *GuConfig) Context() (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return context.WithCancel(context.Background())
	}

	return context.WithTimeout(context.Background(), c.Timeout)
}
