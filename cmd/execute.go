package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bpineau/gitutility/config"
	"github.com/bpineau/gitutility/pkg/git"
	glog "github.com/bpineau/gitutility/pkg/log"
)

const appName = "gitutility"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   appName,
	Short: "Run git commands from scripts",
	Long: "Run git commands in a given directory, reporting failures " +
		"with the failed command line and git's error output.",

	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	// set here rather than in RootCmd's literal: loadConfigFile refers to RootCmd
	RootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return loadConfigFile()
	}
}

// Execute adds all child commands to the root command and sets their flags.
func Execute() error {
	return RootCmd.Execute()
}

func newConfig() (*config.GuConfig, error) {
	logger, err := glog.New(viper.GetString("log-level"), viper.GetString("log-server"), viper.GetString("log-output"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize the logger: %v", err)
	}

	conf := &config.GuConfig{
		DryRun:    viper.GetBool("dry-run"),
		Logger:    logger,
		WorkDir:   viper.GetString("work-dir"),
		CreateDir: viper.GetBool("create-dir"),
		Timeout:   time.Duration(viper.GetInt("timeout")) * time.Second,
	}

	if err = conf.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize the configuration: %v", err)
	}

	return conf, nil
}

func newUtility(conf *config.GuConfig) (*git.Utility, error) {
	opts := []git.Option{git.WithLogger(conf.Logger)}
	if conf.DryRun {
		opts = append(opts, git.WithExecutor(&dryRunExecutor{logger: conf.Logger}))
	}

	return git.New(conf.WorkDir, opts...)
}

// dryRunExecutor only logs the commands it's asked to run
type dryRunExecutor struct {
	logger *logrus.Logger
}

func (d *dryRunExecutor) Exec(ctx context.Context, dir, program string, args ...string) (git.Result, error) {
	d.logger.Infof("dry-run: would run %s %s in %s", program, strings.Join(args, " "), dir)
	return git.Result{}, nil
}
