package batch

// Status is the outcome of an operation that can fail operationally.
type Status int

const (
	// OK means the operation succeeded.
	OK Status = iota
	// Warned means the operation failed, the failure was logged as a
	// warning, and execution may continue (fatal attribute was false).
	Warned
	// Aborted means the failure was reported as fatal. The process
	// normally terminates inside Escalate; this value is only observed
	// when the logger's exit function returns, as in tests.
	Aborted
)

func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case Warned:
		return "warned"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Escalate routes an operational failure through the object's
// error-reporting policy. With fatal set, the message is logged at fatal
// level, which terminates the process through the logger. Otherwise the
// message is logged as a warning and Warned is returned so the caller
// can continue.
func (o *Object) Escalate(msg string) Status {
	if o.fatal {
		o.log.Fatal(msg)
		return Aborted
	}
	o.log.Warn(msg)
	return Warned
}
