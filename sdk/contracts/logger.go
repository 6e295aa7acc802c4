package contracts

// LogLevel represents the severity level for logging.
type LogLevel int

const (
	// InfoLevel indicates informational messages that highlight progress.
	InfoLevel LogLevel = iota
	// DebugLevel indicates messages useful for troubleshooting.
	DebugLevel
	// ErrorLevel indicates serious issues that need attention.
	ErrorLevel
	// WarnLevel indicates potentially harmful situations.
	WarnLevel
	// FatalLevel indicates errors after which the application aborts.
	FatalLevel
)

// Field is a single structured logging attribute.
type Field struct {
	Key   string
	Value any
}

// String builds a string log field.
func String(key, val string) Field { return Field{Key: key, Value: val} }

// Int builds an int log field.
func Int(key string, val int) Field { return Field{Key: key, Value: val} }

// Uint8 builds a uint8 log field.
func Uint8(key string, val uint8) Field { return Field{Key: key, Value: val} }

// Uint64 builds a uint64 log field.
func Uint64(key string, val uint64) Field { return Field{Key: key, Value: val} }

// Err builds an error log field.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger provides methods for recording messages at different levels.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)

	SetLevel(level LogLevel)
}
