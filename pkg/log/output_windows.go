//go:build windows
// +build windows

package log

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func getOutput(logServer string, logOutput string) (io.Writer, logrus.Hook, error) {
	switch logOutput {
	case outputSyslog:
		return nil, nil, fmt.Errorf("syslog output isn't supported on Windows")
	case outputTest:
		_, hook := test.NewNullLogger()
		return io.Discard, hook, nil
	case outputStdout:
		return os.Stdout, nil, nil
	default:
		return os.Stderr, nil, nil
	}
}
