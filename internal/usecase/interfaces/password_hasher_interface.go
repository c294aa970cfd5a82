package interfaces

// IPasswordHasher hides the password hashing scheme from the login flow.
type IPasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil when password matches hash.
	Compare(hash, password string) error
}
