package auth

// APIKeyGate checks the static X-API-Key header value against the configured
// key. It is a second factor next to the bearer token; neither replaces the
// other. Stateless, safe for concurrent use.
type APIKeyGate struct {
	key string
}

func NewAPIKeyGate(key string) *APIKeyGate {
	return &APIKeyGate{key: key}
}

// Check reports whether value matches the configured key. A missing header
// (empty value) and a wrong value are both rejected; callers never learn which.
func (g *APIKeyGate) Check(value string) bool {
	return value != "" && value == g.key
}
