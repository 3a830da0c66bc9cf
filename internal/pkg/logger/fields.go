package logger

import "go.uber.org/zap"

// Field is a zap field; callers build them here without importing zap
type Field = zap.Field

// Field constructors
var (
	String   = zap.String
	Strings  = zap.Strings
	Int      = zap.Int
	Float64  = zap.Float64
	Bool     = zap.Bool
	Duration = zap.Duration
	Any      = zap.Any
	Err      = zap.Error
)

// Count logs a counter such as a failure streak under key
func Count(key string, n uint32) Field {
	return zap.Int64(key, int64(n))
}
