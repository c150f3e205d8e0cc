package log

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string
	Mode         string // "production" or "debug"
	Encoding     string // "console" or "json"
	ColorEnabled bool
}

type ctxKey string

const (
	// SessionIDKey is the context key under which the request session id is stored.
	SessionIDKey ctxKey = "session_id"

	// RequestIDKey is the context key for a per-request correlation id.
	RequestIDKey ctxKey = "request_id"

	ModeProduction = "production"
	EncodingJSON   = "json"
)
