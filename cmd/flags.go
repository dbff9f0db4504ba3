package cmd

import (
	"log"

	"github.com/spf13/viper"
)

var (
	cfgFile   string
	workDir   string
	createDir bool
	timeout   int
	dryRun    bool
	logLevel  string
	logOutput string
	logServer string
)

func bindPFlag(key string, cmd string) {
	if err := viper.BindPFlag(key, RootCmd.PersistentFlags().Lookup(cmd)); err != nil {
		log.Fatal("Failed to bind cli argument:", err)
	}
}

func init() {
	RootCmd.AddCommand(versionCmd)
	RootCmd.AddCommand(runCmd)
	RootCmd.AddCommand(dirtyCmd)
	RootCmd.AddCommand(cloneCmd)

	RootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Configuration file (default: "+appName+".yaml in /etc/"+appName+", $HOME or .)")

	RootCmd.PersistentFlags().StringVarP(&workDir, "work-dir", "w", "", "Directory to run git in (default: current directory)")
	bindPFlag("work-dir", "work-dir")

	RootCmd.PersistentFlags().BoolVar(&createDir, "create-dir", false, "Create the working directory if missing")
	bindPFlag("create-dir", "create-dir")

	RootCmd.PersistentFlags().IntVarP(&timeout, "timeout", "t", 0, "Timeout for git commands, in seconds (0 to disable)")
	bindPFlag("timeout", "timeout")

	RootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "d", false, "Dry-run mode: log git commands but don't run them")
	bindPFlag("dry-run", "dry-run")

	RootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "v", "info", "Log level")
	bindPFlag("log-level", "log-level")

	RootCmd.PersistentFlags().StringVarP(&logOutput, "log-output", "o", "stderr", "Log output")
	bindPFlag("log-output", "log-output")

	RootCmd.PersistentFlags().StringVarP(&logServer, "log-server", "r", "", "Log server (if using syslog)")
	bindPFlag("log-server", "log-server")
}
