package c2p

// Logger receives diagnostics from parsers, the argument parser and
// transforms. Messages may span multiple lines (positional errors carry a
// caret excerpt on the lines after the first).
type Logger interface {
	Error(msg string)
	Warning(msg string)
	Info(msg string)
}

// NopLogger drops all three channels.
type NopLogger struct{}

func (NopLogger) Error(string)   {}
func (NopLogger) Warning(string) {}
func (NopLogger) Info(string)    {}

// Discard is the logger used whenever a caller passes nil.
var Discard Logger = NopLogger{}

// Or returns lg unless it is nil, in which case it returns Discard.
func Or(lg Logger) Logger {
	if lg == nil {
		return Discard
	}
	return lg
}

// CallbackLogger adapts up to three independent callbacks to Logger.
// A nil callback silently drops its channel.
type CallbackLogger struct {
	OnError   func(msg string)
	OnWarning func(msg string)
	OnInfo    func(msg string)
}

func (l CallbackLogger) Error(msg string) {
	if l.OnError != nil {
		l.OnError(msg)
	}
}

func (l CallbackLogger) Warning(msg string) {
	if l.OnWarning != nil {
		l.OnWarning(msg)
	}
}

func (l CallbackLogger) Info(msg string) {
	if l.OnInfo != nil {
		l.OnInfo(msg)
	}
}
