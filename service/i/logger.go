package i

// Logger is the logging surface services write to.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
}
