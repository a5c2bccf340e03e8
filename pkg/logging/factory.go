package logging

// ZapLoggerFactory creates zap-backed loggers
type ZapLoggerFactory struct {
	level string
}

// NewZapLoggerFactory creates a factory producing loggers at the given level
func NewZapLoggerFactory(level string) *ZapLoggerFactory {
	return &ZapLoggerFactory{level: level}
}

// CreateLogger creates a logger for a generic component
func (f *ZapLoggerFactory) CreateLogger(component string) Logger {
	return NewZapLogger(component, f.level)
}

// CreateHTTPLogger creates a logger carrying the request id
func (f *ZapLoggerFactory) CreateHTTPLogger(requestID string) Logger {
	return NewZapLogger("http", f.level).WithContext(map[string]interface{}{
		"request_id": requestID,
	})
}

// CreateRepositoryLogger creates a logger for a data store
func (f *ZapLoggerFactory) CreateRepositoryLogger(store string) Logger {
	return NewZapLogger("repository", f.level).WithContext(map[string]interface{}{
		"store": store,
	})
}

// CreateServiceLogger creates a logger for a domain service
func (f *ZapLoggerFactory) CreateServiceLogger(service string) Logger {
	return NewZapLogger("service", f.level).WithContext(map[string]interface{}{
		"service": service,
	})
}
