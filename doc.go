// Package batch is a small convenience layer for writing batch scripts
// in Go: shell command execution with retry and optional output capture,
// file and directory deletion with existence checks, and a per-object
// configuration record controlling echo, failure escalation, header
// prefix, and retry count.
//
// Basic usage:
//
//	b := batch.New()
//	b.Execute(context.Background(), "make", "clean")
//
// Configured usage:
//
//	b := batch.New("echo", true, "retry", 3, "fatal", false)
//	if b.Execute(context.Background(), "rsync", "-a", src, dst) != batch.OK {
//		// failure was logged as a warning; decide what to do
//	}
//
// Per-call overrides and output capture:
//
//	var lines []string
//	b.Cmd().Attempts(5).Sink(&lines).Execute(ctx, "git", "status", "--short")
//
// Failures flow through a single escalation point: when the object's
// fatal attribute is true (the default) an operational failure terminates
// the process through the logger; when false it is logged as a warning
// and the call returns Warned so the script can continue.
package batch
