package git

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Program is the executable we spawn, searched in $PATH
const Program = "git"

type logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
}

type nullLogger struct{}

func (nullLogger) Debugf(format string, args ...interface{}) {}
func (nullLogger) Infof(format string, args ...interface{})  {}

// Utility runs git commands in a working directory bound at creation time.
// It's safe for concurrent use.
type Utility struct {
	dir    string
	exec   Executor
	logger logger
}

// Option customizes a Utility at creation time
type Option func(*Utility)

// WithExecutor replaces the default os/exec based process runner
func WithExecutor(e Executor) Option {
	return func(u *Utility) {
		u.exec = e
	}
}

// WithLogger sets a logger receiving a trace of the commands we run.
// A nil interface keeps the silent default; a typed nil pointer must not be passed.
func WithLogger(l logger) Option {
	return func(u *Utility) {
		if l != nil {
			u.logger = l
		}
	}
}

// New instantiate a git Utility working in dir. An empty dir means
// the current working directory, as resolved now.
func New(dir string, opts ...Option) (*Utility, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("can't find the current directory: %v", err)
		}
		dir = cwd
	}

	u := &Utility{
		dir:    dir,
		exec:   OsExecutor{},
		logger: nullLogger{},
	}

	for _, opt := range opts {
		opt(u)
	}

	return u, nil
}

// Dir returns the directory git commands are run in
func (u *Utility) Dir() string {
	return u.dir
}

// Run executes git with args and returns its standard output, as is.
// A git failure is returned as an *Error.
func (u *Utility) Run(ctx context.Context, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	u.logger.Debugf("running git %s in %s", strings.Join(args, " "), u.dir)

	res, err := u.exec.Exec(ctx, u.dir, Program, args...)
	if err != nil {
		return "", newError(args, res, err)
	}

	if res.ExitCode != 0 {
		return "", newError(args, res, nil)
	}

	return string(res.Stdout), nil
}

// HasUncommittedChanges tells whether git status reports anything at all
func (u *Utility) HasUncommittedChanges(ctx context.Context) (bool, error) {
	out, err := u.Run(ctx, "status", "--porcelain")
	if err != nil {
		return false, err
	}

	return out != "", nil
}

// Clone clones repositoryURL under the working directory. The target
// directory name is picked by git.
func (u *Utility) Clone(ctx context.Context, repositoryURL string) error {
	_, err := u.Run(ctx, "clone", repositoryURL)
	if err != nil {
		return err
	}

	u.logger.Infof("cloned %s in %s", repositoryURL, u.dir)
	return nil
}
