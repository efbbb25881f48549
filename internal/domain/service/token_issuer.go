package service

// TokenIssuer generates opaque bearer tokens.
type TokenIssuer interface {
	// Issue returns a new unguessable token.
	Issue() (string, error)
}
