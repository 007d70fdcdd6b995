package domain

// Logger defines the logging contract for the emitter.
type Logger interface {
	Info(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}
