// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// credentialSeparator splits the derived key from the salt in a stored credential.
const credentialSeparator = "."

// ErrRandomSource is returned when the OS CSPRNG cannot be read.
var ErrRandomSource = errors.New("random source unavailable")

// scryptHasher is the private implementation of [PasswordHasher].
type scryptHasher struct {
	// scrypt cost parameters. Stored in the struct so tests can lower them.
	n       int
	r       int
	p       int
	keyLen  int
	saltLen int

	random io.Reader
}

// NewPasswordHasher constructs a [PasswordHasher] using scrypt with
// N=16384, r=8, p=1, a 64-byte derived key and a 16-byte salt.
func NewPasswordHasher() PasswordHasher {
	return &scryptHasher{
		n:       16384,
		r:       8,
		p:       1,
		keyLen:  64,
		saltLen: 16,
		random:  rand.Reader,
	}
}

// Hash implements [PasswordHasher].
func (s *scryptHasher) Hash(plain string) (string, error) {
	salt := make([]byte, s.saltLen)
	if _, err := io.ReadFull(s.random, salt); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRandomSource, err)
	}

	derived, err := s.derive(plain, salt)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(derived) + credentialSeparator + hex.EncodeToString(salt), nil
}

// Verify implements [PasswordHasher]. Credentials without exactly one
// separator, or with non-hex parts, are rejected without deriving a key.
func (s *scryptHasher) Verify(plain, credential string) bool {
	hashHex, saltHex, found := strings.Cut(credential, credentialSeparator)
	if !found || hashHex == "" || saltHex == "" || strings.Contains(saltHex, credentialSeparator) {
		return false
	}

	stored, err := hex.DecodeString(hashHex)
	if err != nil {
		return false
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}

	derived, err := s.derive(plain, salt)
	if err != nil {
		return false
	}

	if len(derived) != len(stored) {
		return false
	}
	return subtle.ConstantTimeCompare(derived, stored) == 1
}

func (s *scryptHasher) derive(plain string, salt []byte) ([]byte, error) {
	derived, err := scrypt.Key([]byte(plain), salt, s.n, s.r, s.p, s.keyLen)
	if err != nil {
		return nil, fmt.Errorf("scrypt key derivation: %w", err)
	}
	return derived, nil
}
