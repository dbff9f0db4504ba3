package git

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

type execCall struct {
	dir     string
	program string
	args    []string
}

type fakeExecutor struct {
	sync.Mutex
	calls  []execCall
	result Result
	err    error
}

func (f *fakeExecutor) Exec(ctx context.Context, dir, program string, args ...string) (Result, error) {
	f.Lock()
	defer f.Unlock()
	f.calls = append(f.calls, execCall{dir: dir, program: program, args: args})
	return f.result, f.err
}

func (f *fakeExecutor) lastCall() execCall {
	f.Lock()
	defer f.Unlock()
	return f.calls[len(f.calls)-1]
}

func newFake(t *testing.T, fake *fakeExecutor) *Utility {
	t.Helper()
	repo, err := New("/srv/repos/app", WithExecutor(fake))
	if err != nil {
		t.Fatal(err)
	}
	return repo
}

func TestRunPassthrough(t *testing.T) {
	fake := &fakeExecutor{result: Result{Stdout: []byte("  M a.go\r\n?? b c\n\n")}}
	repo := newFake(t, fake)

	args := []string{"log", "--format=%H $(whoami)", "*.go; rm -rf /"}
	out, err := repo.Run(context.Background(), args...)
	if err != nil {
		t.Fatalf("Run shouldn't fail on a zero exit code: %v", err)
	}

	if out != "  M a.go\r\n?? b c\n\n" {
		t.Errorf("Run should return stdout untouched, got %q", out)
	}

	call := fake.lastCall()
	if call.dir != "/srv/repos/app" || call.program != "git" {
		t.Errorf("unexpected exec call: %+v", call)
	}

	if len(call.args) != len(args) {
		t.Fatalf("expected %d args, got %v", len(args), call.args)
	}
	for i := range args {
		if call.args[i] != args[i] {
			t.Errorf("arg %d should be passed verbatim: want %q, got %q", i, args[i], call.args[i])
		}
	}
}

func TestRunFailureMessage(t *testing.T) {
	fake := &fakeExecutor{result: Result{
		ExitCode: 128,
		Stdout:   []byte("ignored"),
		Stderr:   []byte("fatal: 'origin' does not appear to be a git repository\nfatal: Could not read from remote repository.\n"),
	}}
	repo := newFake(t, fake)

	// a nil context is accepted
	var ctx context.Context
	out, err := repo.Run(ctx, "push", "origin", "main")
	if out != "" {
		t.Errorf("a failed Run shouldn't return any output, got %q", out)
	}

	want := "Failed to run `git push origin main`: fatal: 'origin' does not appear to be a git repository\n" +
		"fatal: Could not read from remote repository.\n"
	if err == nil || err.Error() != want {
		t.Fatalf("unexpected error message:\nwant %q\ngot  %v", want, err)
	}

	gerr, ok := err.(*Error)
	if !ok {
		t.Fatalf("Run should return an *Error, got %T", err)
	}
	if gerr.ExitCode != 128 || gerr.IsSpawnFailure() || errors.Unwrap(err) != nil {
		t.Errorf("unexpected error content: %+v", gerr)
	}
}

func TestRunSpawnFailure(t *testing.T) {
	boom := errors.New("fork/exec: resource temporarily unavailable")
	repo := newFake(t, &fakeExecutor{result: Result{ExitCode: -1}, err: boom})

	_, err := repo.Run(context.Background(), "status")
	if err == nil || err.Error() != "Failed to run `git status`: fork/exec: resource temporarily unavailable" {
		t.Errorf("unexpected error message: %v", err)
	}

	if !errors.Is(err, boom) {
		t.Errorf("spawn failures should unwrap to their cause")
	}

	gerr := err.(*Error)
	if !gerr.IsSpawnFailure() || gerr.ExitCode != -1 {
		t.Errorf("unexpected error content: %+v", gerr)
	}
}

func TestHasUncommittedChanges(t *testing.T) {
	cases := []struct {
		stdout string
		want   bool
	}{
		{"", false},
		{"?? new.txt\n", true},
		{" M modified.go\n", true},
		{"\n", true},
		{"   ", true},
	}

	for _, c := range cases {
		fake := &fakeExecutor{result: Result{Stdout: []byte(c.stdout)}}
		repo := newFake(t, fake)

		changed, err := repo.HasUncommittedChanges(context.Background())
		if err != nil {
			t.Errorf("HasUncommittedChanges shouldn't fail: %v", err)
		}
		if changed != c.want {
			t.Errorf("HasUncommittedChanges on %q: want %v, got %v", c.stdout, c.want, changed)
		}

		call := fake.lastCall()
		if len(call.args) != 2 || call.args[0] != "status" || call.args[1] != "--porcelain" {
			t.Errorf("HasUncommittedChanges should run git status --porcelain, ran %v", call.args)
		}
	}

	fake := &fakeExecutor{result: Result{ExitCode: 128, Stderr: []byte("fatal: not a git repository")}}
	_, err := newFake(t, fake).HasUncommittedChanges(context.Background())
	if err == nil || err.Error() != "Failed to run `git status --porcelain`: fatal: not a git repository" {
		t.Errorf("HasUncommittedChanges should return Run's error unchanged, got %v", err)
	}
}

func TestCloneWithFake(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	fake := &fakeExecutor{}
	repo, err := New("/srv/repos", WithExecutor(fake), WithLogger(logger))
	if err != nil {
		t.Fatal(err)
	}

	url := "https://github.com/utilityjs/git-test.git"
	if err = repo.Clone(context.Background(), url); err != nil {
		t.Errorf("Clone shouldn't fail: %v", err)
	}

	call := fake.lastCall()
	if len(call.args) != 2 || call.args[0] != "clone" || call.args[1] != url {
		t.Errorf("Clone should run git clone <url>, ran %v", call.args)
	}

	if len(hook.Entries) != 2 {
		t.Errorf("expected a debug trace and an info log, got %d entries", len(hook.Entries))
	}
	if hook.LastEntry().Message != "cloned "+url+" in /srv/repos" {
		t.Errorf("unexpected log entry: %s", hook.LastEntry().Message)
	}

	fake.result = Result{ExitCode: 128, Stderr: []byte("fatal: repository not found\n")}
	err = repo.Clone(context.Background(), url)
	want := "Failed to run `git clone " + url + "`: fatal: repository not found\n"
	if err == nil || err.Error() != want {
		t.Errorf("Clone should return Run's error unchanged, got %v", err)
	}
}

func TestConcurrentRuns(t *testing.T) {
	fake := &fakeExecutor{result: Result{Stdout: []byte("ok")}}
	repo := newFake(t, fake)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.Run(context.Background(), "status"); err != nil {
				t.Errorf("concurrent Run failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if len(fake.calls) != 32 {
		t.Errorf("expected one process per call, got %d", len(fake.calls))
	}

	for _, call := range fake.calls {
		if call.dir != repo.Dir() {
			t.Errorf("working directory changed under concurrent use: %s", call.dir)
		}
	}
}

func TestErrorKeepsFailedCommandLine(t *testing.T) {
	fake := &fakeExecutor{result: Result{ExitCode: 1, Stderr: []byte("boom")}}
	repo := newFake(t, fake)

	args := []string{"push", "origin"}
	_, err := repo.Run(context.Background(), args...)
	args[1] = "upstream"

	if err == nil || err.Error() != "Failed to run `git push origin`: boom" {
		t.Errorf("error should report the command as it ran, got %v", err)
	}

	if gerr := err.(*Error); gerr.Args[1] != "origin" {
		t.Errorf("error args changed along with the caller's slice: %v", gerr.Args)
	}
}

func TestNilLogger(t *testing.T) {
	fake := &fakeExecutor{result: Result{Stdout: []byte("ok")}}
	repo, err := New("/srv/repos", WithExecutor(fake), WithLogger(nil))
	if err != nil {
		t.Fatal(err)
	}

	if _, err = repo.Run(context.Background(), "status"); err != nil {
		t.Errorf("a nil logger should fall back to the silent one: %v", err)
	}

	if err = repo.Clone(context.Background(), "https://example.invalid/repo.git"); err != nil {
		t.Errorf("a nil logger should fall back to the silent one: %v", err)
	}
}
