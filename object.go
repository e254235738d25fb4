package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// Attribute names recognized by Get and Set.
const (
	AttrEcho   = "echo"
	AttrFatal  = "fatal"
	AttrPrefix = "prefix"
	AttrRetry  = "retry"
	AttrID     = "id"
)

var (
	idSeq     atomic.Int64
	liveCount atomic.Int64
)

// Object is a configuration record for batch-script operations. Each
// instance carries its own echo/fatal/prefix/retry settings and the
// collaborators (logger, command runner, filesystem) its operations use.
type Object struct {
	echo   bool
	fatal  bool
	prefix string
	retry  int
	id     int64

	log    logrus.FieldLogger
	runner Runner
	fs     Filesystem
	closed bool
}

// New creates an Object with default attributes, then applies the given
// ordered (name, value) override pairs; later pairs win. It panics on an
// odd number of pairs, a non-string name, a nil value, an unknown
// attribute name, or a value of the wrong type. Logging goes to the
// logrus standard logger; use NewWithLogger to inject one.
func New(pairs ...any) *Object {
	return NewWithLogger(logrus.StandardLogger(), pairs...)
}

// NewWithLogger is New with an explicit logger.
func NewWithLogger(log logrus.FieldLogger, pairs ...any) *Object {
	o := &Object{
		fatal:  true,
		prefix: filepath.Base(os.Args[0]),
		retry:  1,
		id:     idSeq.Add(1),
		log:    log,
		runner: shellRunner{},
		fs:     osFS{},
	}
	liveCount.Add(1)
	o.apply(pairs)
	return o
}

func (o *Object) apply(pairs []any) {
	if len(pairs)%2 != 0 {
		panic(fmt.Sprintf("batch: attribute %v has no value", pairs[len(pairs)-1]))
	}
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Sprintf("batch: attribute name must be a string, got %T", pairs[i]))
		}
		if pairs[i+1] == nil {
			panic(fmt.Sprintf("batch: attribute %q has a nil value", name))
		}
		o.Set(name, pairs[i+1])
	}
}

// Close marks the object as torn down and releases it from the live
// instance count. It is idempotent.
func (o *Object) Close() {
	if o.closed {
		return
	}
	o.closed = true
	liveCount.Add(-1)
}

// Live reports how many constructed Objects have not been closed.
// Diagnostic only.
func Live() int64 {
	return liveCount.Load()
}

// Get returns the current value of the named attribute. Unknown names
// are a programming error and panic.
func (o *Object) Get(name string) any {
	switch name {
	case AttrEcho:
		return o.echo
	case AttrFatal:
		return o.fatal
	case AttrPrefix:
		return o.prefix
	case AttrRetry:
		return o.retry
	case AttrID:
		return o.id
	default:
		panic(fmt.Sprintf("batch: unknown attribute %q", name))
	}
}

// Set stores value under the named attribute and returns the stored
// value. Unknown names and mismatched value types are programming errors
// and panic. A retry below 1 is coerced to 1.
func (o *Object) Set(name string, value any) any {
	switch name {
	case AttrEcho:
		o.echo = attrValue[bool](name, value)
	case AttrFatal:
		o.fatal = attrValue[bool](name, value)
	case AttrPrefix:
		o.prefix = attrValue[string](name, value)
	case AttrRetry:
		n := attrValue[int](name, value)
		if n < 1 {
			n = 1
		}
		o.retry = n
		value = n
	case AttrID:
		o.id = attrInt64(name, value)
		value = o.id
	default:
		panic(fmt.Sprintf("batch: unknown attribute %q", name))
	}
	o.log.Debugf("batch: set %s = %v", name, value)
	return value
}

func attrValue[T any](name string, value any) T {
	v, ok := value.(T)
	if !ok {
		panic(fmt.Sprintf("batch: attribute %q expects %T, got %T", name, v, value))
	}
	return v
}

func attrInt64(name string, value any) int64 {
	switch v := value.(type) {
	case int:
		return int64(v)
	case int64:
		return v
	default:
		panic(fmt.Sprintf("batch: attribute %q expects an integer, got %T", name, value))
	}
}

// Echo reports whether command output is echoed to the log.
func (o *Object) Echo() bool { return o.echo }

// SetEcho sets echo and returns the object for chaining.
func (o *Object) SetEcho(v bool) *Object {
	o.Set(AttrEcho, v)
	return o
}

// Fatal reports whether operational failures terminate the process.
func (o *Object) Fatal() bool { return o.fatal }

// SetFatal sets fatal and returns the object for chaining.
func (o *Object) SetFatal(v bool) *Object {
	o.Set(AttrFatal, v)
	return o
}

// Prefix returns the label used in generated headers.
func (o *Object) Prefix() string { return o.prefix }

// SetPrefix sets prefix and returns the object for chaining.
func (o *Object) SetPrefix(v string) *Object {
	o.Set(AttrPrefix, v)
	return o
}

// Retry returns the maximum number of execution attempts.
func (o *Object) Retry() int { return o.retry }

// SetRetry sets retry and returns the object for chaining. Values below
// 1 are coerced to 1.
func (o *Object) SetRetry(v int) *Object {
	o.Set(AttrRetry, v)
	return o
}

// ID returns the object's construction-time identity.
func (o *Object) ID() int64 { return o.id }

// WithRunner replaces the command runner. Intended for tests and for
// callers that route execution through something other than /bin/sh.
func (o *Object) WithRunner(r Runner) *Object {
	o.runner = r
	return o
}

// WithFilesystem replaces the filesystem collaborator used by DeletePath.
func (o *Object) WithFilesystem(fs Filesystem) *Object {
	o.fs = fs
	return o
}
