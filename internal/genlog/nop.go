package genlog

// nopLogger discards everything; used by tests and by callers that want a
// deterministic, silent run without reconfiguring zerolog's writer.
type nopLogger struct{}

// NewNop returns a Logger that discards all messages.
func NewNop() Logger { return nopLogger{} }

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
