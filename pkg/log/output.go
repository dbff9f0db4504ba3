//go:build !windows
// +build !windows

package log

import (
	"fmt"
	"io"
	"log/syslog"
	"os"

	"github.com/sirupsen/logrus"
	ls "github.com/sirupsen/logrus/hooks/syslog"
	"github.com/sirupsen/logrus/hooks/test"
)

// syslog entries are sent over udp, nothing is written locally
func syslogOutput(logServer string) (io.Writer, logrus.Hook, error) {
	if logServer == "" {
		return nil, nil, fmt.Errorf("syslog output needs a log server (ie. 127.0.0.1:514)")
	}

	hook, err := ls.NewSyslogHook("udp", logServer, syslog.LOG_INFO, syslogTag)
	if err != nil {
		return nil, nil, fmt.Errorf("can't reach syslog server %s: %v", logServer, err)
	}

	return io.Discard, hook, nil
}

func getOutput(logServer string, logOutput string) (io.Writer, logrus.Hook, error) {
	switch logOutput {
	case outputSyslog:
		return syslogOutput(logServer)
	case outputTest:
		_, hook := test.NewNullLogger()
		return io.Discard, hook, nil
	case outputStdout:
		return os.Stdout, nil, nil
	default:
		return os.Stderr, nil, nil
	}
}
