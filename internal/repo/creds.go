package repo

// CredentialStore is the persisted client state, read fresh on every request.
// The contract is deliberately narrow: bearer token, remembered username and
// the remember-me flag. Everything else is server-owned and refetched.
type CredentialStore interface {
	SaveToken(token string) error
	LoadToken() (string, error)
	ClearToken() error

	SaveUsername(username string) error
	LoadUsername() (string, error)
	ClearUsername() error

	SetRememberMe(on bool) error
	RememberMe() bool
}
