package logger

// Instance is a logging backend. Backends receive a message plus
// alternating key/value pairs.
type Instance interface {
	Log(message string, keyvals ...any)
	Debug(message string, keyvals ...any)
	Info(message string, keyvals ...any)
	Warn(message string, keyvals ...any)
	Error(message string, keyvals ...any)
	Fatal(message string, keyvals ...any)
}

type dispatcher struct {
	instances []Instance
}

var global *dispatcher

// Init sets up the process-wide logger with one or more backends.
// Call once from main before any logging happens.
func Init(instances ...Instance) {
	global = &dispatcher{instances: instances}
}

// Log writes at the default level.
func Log(message string, keyvals ...any) {
	if global == nil {
		return
	}
	for _, instance := range global.instances {
		instance.Log(message, keyvals...)
	}
}

// Debug writes at DEBUG level.
func Debug(message string, keyvals ...any) {
	if global == nil {
		return
	}
	for _, instance := range global.instances {
		instance.Debug(message, keyvals...)
	}
}

// Info writes at INFO level.
func Info(message string, keyvals ...any) {
	if global == nil {
		return
	}
	for _, instance := range global.instances {
		instance.Info(message, keyvals...)
	}
}

// Warn writes at WARN level.
func Warn(message string, keyvals ...any) {
	if global == nil {
		return
	}
	for _, instance := range global.instances {
		instance.Warn(message, keyvals...)
	}
}

// Error writes at ERROR level.
func Error(message string, keyvals ...any) {
	if global == nil {
		return
	}
	for _, instance := range global.instances {
		instance.Error(message, keyvals...)
	}
}

// Fatal writes at FATAL level and terminates the process.
func Fatal(message string, keyvals ...any) {
	if global == nil {
		return
	}
	for _, instance := range global.instances {
		instance.Fatal(message, keyvals...)
	}
}
