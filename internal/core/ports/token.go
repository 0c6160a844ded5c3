package ports

// TokenIssuer mints a signed session token bound to a user id.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// TokenVerifier checks a session token and returns the user id it was
// issued for. Malformed, forged and expired tokens are all rejected with
// the same error.
type TokenVerifier interface {
	Verify(token string) (string, error)
}
