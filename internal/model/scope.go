package model

// Scope identifies the caller of a use case.
// Every task read or write is filtered by SessionID.
type Scope struct {
	SessionID string
}

// NewScope builds a Scope for the given session.
func NewScope(sessionID string) Scope {
	return Scope{SessionID: sessionID}
}

const (
	EnvironmentProduction  = "production"
	EnvironmentDevelopment = "development"
)
