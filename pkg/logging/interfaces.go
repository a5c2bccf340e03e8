package logging

// Logger provides logging functionality with structured fields
type Logger interface {
	Info(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Debug(msg string, fields map[string]interface{})
	WithContext(ctx map[string]interface{}) Logger
}

// LoggerFactory creates loggers for the different parts of the application
type LoggerFactory interface {
	CreateLogger(component string) Logger
	CreateHTTPLogger(requestID string) Logger
	CreateRepositoryLogger(store string) Logger
	CreateServiceLogger(service string) Logger
}
