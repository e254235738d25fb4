package batch

import (
	"fmt"
	"io"
	"time"
)

// WriteHeader writes a two-line generated-by banner to w: the object's
// prefix, then the current local time. A nil writer is a programming
// error and panics; write failures escalate through the object's error
// policy.
func (o *Object) WriteHeader(w io.Writer) Status {
	if w == nil {
		panic("batch: WriteHeader requires an open writer")
	}
	if _, err := fmt.Fprintf(w, "generated by %s\n", o.prefix); err != nil {
		return o.Escalate(fmt.Sprintf("batch: header write failed: %v", err))
	}
	if _, err := fmt.Fprintf(w, "timestamp %s\n", time.Now().Format(time.ANSIC)); err != nil {
		return o.Escalate(fmt.Sprintf("batch: header write failed: %v", err))
	}
	return OK
}
