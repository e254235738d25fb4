package batch

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Runner executes a composed command line and returns its combined
// stdout/stderr. A non-nil error indicates a non-zero exit status or a
// failure to start the command.
type Runner interface {
	CombinedOutput(ctx context.Context, command string) ([]byte, error)
}

// shellRunner runs the command line through /bin/sh.
type shellRunner struct{}

var _ Runner = shellRunner{}

func (shellRunner) CombinedOutput(ctx context.Context, command string) ([]byte, error) {
	return exec.CommandContext(ctx, "/bin/sh", "-c", command).CombinedOutput()
}

// Run configures a single command execution. Zero or more knobs may be
// chained before Execute:
//
//	var lines []string
//	st := obj.Cmd().Attempts(3).Sink(&lines).Execute(ctx, "ls", "-la")
type Run struct {
	obj      *Object
	attempts int
	delay    time.Duration
	sink     *[]string
}

// Cmd starts a per-call execution builder seeded from the object's
// retry attribute.
func (o *Object) Cmd() *Run {
	return &Run{obj: o, attempts: o.retry}
}

// Attempts overrides the maximum number of execution attempts for this
// call. Values below 1 are coerced to 1.
func (r *Run) Attempts(n int) *Run {
	if n < 1 {
		n = 1
	}
	r.attempts = n
	return r
}

// Delay sets the pause between attempts. The default is no pause.
func (r *Run) Delay(d time.Duration) *Run {
	r.delay = d
	return r
}

// Sink supplies a slice that receives the captured output lines,
// regardless of the echo setting.
func (r *Run) Sink(s *[]string) *Run {
	r.sink = s
	return r
}

// Execute joins parts with single spaces, logs the composed command at
// info level, and runs it up to the configured number of attempts,
// stopping at the first zero exit status. The final attempt's combined
// output is split into lines: each line is echoed at info level when the
// echo attribute is set, and appended to the sink when one was supplied.
// A non-zero final status escalates through the object's error policy.
func (r *Run) Execute(ctx context.Context, parts ...string) Status {
	o := r.obj
	command := strings.Join(parts, " ")
	o.log.Infof("batch: executing %q", command)

	var output []byte
	operation := func() error {
		out, err := o.runner.CombinedOutput(ctx, command)
		output = out
		return err
	}

	var err error
	if r.attempts > 1 {
		b := backoff.WithContext(backoff.NewConstantBackOff(r.delay), ctx)
		err = backoff.Retry(operation, backoff.WithMaxRetries(b, uint64(r.attempts-1)))
	} else {
		err = operation()
	}

	for _, line := range splitLines(string(output)) {
		if o.echo {
			o.log.Info(line)
		}
		if r.sink != nil {
			*r.sink = append(*r.sink, line)
		}
	}

	if err != nil {
		return o.Escalate(fmt.Sprintf("batch: command %q failed after %d attempt(s): %v", command, r.attempts, err))
	}
	return OK
}

// Execute runs the command with the object's retry attribute and no
// output sink. See Run.Execute.
func (o *Object) Execute(ctx context.Context, parts ...string) Status {
	return o.Cmd().Execute(ctx, parts...)
}

var newlines = regexp.MustCompile(`\n+`)

// splitLines splits captured output on runs of newlines. Consecutive
// newlines collapse, so blank lines never reach the caller.
func splitLines(s string) []string {
	var lines []string
	for _, line := range newlines.Split(s, -1) {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
