package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher derives and checks stored password credentials.
//
// A stored credential has the form "<hex-hash>.<hex-salt>". Anything else,
// including a value without the separator, never verifies.
type PasswordHasher interface {
	// Hash derives a credential from plain using a fresh random salt.
	// Two calls with the same input return different credentials.
	Hash(plain string) (string, error)

	// Verify reports whether plain matches the stored credential.
	// It never panics on malformed input.
	Verify(plain, credential string) bool
}

// TokenGenerator produces unguessable opaque identifiers for sessions and
// invitation links.
type TokenGenerator interface {
	// Generate returns 32 random bytes encoded as lowercase hex.
	Generate() (string, error)
}
