package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bpineau/gitutility/config"
)

var (
	runCmd = &cobra.Command{
		Use:   "run -- <git arguments>",
		Short: "Run a git command and print its output",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := newConfig()
			if err != nil {
				return err
			}
			return runGit(conf, cmd.OutOrStdout(), args)
		},
	}

	dirtyCmd = &cobra.Command{
		Use:   "dirty",
		Short: "Print true if the working directory has uncommitted changes, false otherwise",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := newConfig()
			if err != nil {
				return err
			}
			return dirty(conf, cmd.OutOrStdout())
		},
	}

	cloneCmd = &cobra.Command{
		Use:   "clone <repository url>",
		Short: "Clone a repository under the working directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := newConfig()
			if err != nil {
				return err
			}
			return clone(conf, args[0])
		},
	}
)

func runGit(conf *config.GuConfig, out io.Writer, args []string) error {
	repo, err := newUtility(conf)
	if err != nil {
		return err
	}

	ctx, cancel := conf.Context()
	defer cancel()

	output, err := repo.Run(ctx, args...)
	if err != nil {
		return err
	}

	_, err = io.WriteString(out, output)
	return err
}

func dirty(conf *config.GuConfig, out io.Writer) error {
	repo, err := newUtility(conf)
	if err != nil {
		return err
	}

	ctx, cancel := conf.Context()
	defer cancel()

	changed, err := repo.HasUncommittedChanges(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, changed)
	return err
}

func clone(conf *config.GuConfig, url string) error {
	repo, err := newUtility(conf)
	if err != nil {
		return err
	}

	ctx, cancel := conf.Context()
	defer cancel()

	return repo.Clone(ctx, url)
}
