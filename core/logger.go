package core

// Logger is any service that can log diagnostic messages.
// Errors surfaced to the user are also logged here; nothing is silently swallowed.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
