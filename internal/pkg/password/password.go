package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// Algorithm is the only hash algorithm this package produces
	Algorithm = "pbkdf2-sha256"

	// DefaultIterations is the PBKDF2 iteration count for new hashes
	DefaultIterations = 600000

	saltLength = 16
	keyLength  = 32
)

var ErrMalformedHash = errors.New("malformed password hash")

// Hash is a parsed password hash. The stored form is a single delimited
// string; this struct keeps the fields explicit.
type Hash struct {
	Algorithm  string
	Iterations int
	Salt       []byte
	Key        []byte
}

// Encode renders the hash as algorithm$iterations$salt$key with the binary
// parts base64 encoded.
func (h *Hash) Encode() string {
	return fmt.Sprintf("%s$%d$%s$%s",
		h.Algorithm,
		h.Iterations,
		base64.RawStdEncoding.EncodeToString(h.Salt),
		base64.RawStdEncoding.EncodeToString(h.Key),
	)
}

// Parse decodes a stored hash string into its fields
func Parse(encoded string) (*Hash, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 4 {
		return nil, ErrMalformedHash
	}
	if parts[0] != Algorithm {
		return nil, ErrMalformedHash
	}

	iterations, err := strconv.Atoi(parts[1])
	if err != nil || iterations < 1 {
		return nil, ErrMalformedHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[2])
	if err != nil || len(salt) == 0 {
		return nil, ErrMalformedHash
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil || len(key) == 0 {
		return nil, ErrMalformedHash
	}

	return &Hash{
		Algorithm:  parts[0],
		Iterations: iterations,
		Salt:       salt,
		Key:        key,
	}, nil
}

// Generate derives a salted PBKDF2 hash for a password and returns its
// encoded form for storage. Plaintext is never persisted.
func Generate(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	h := &Hash{
		Algorithm:  Algorithm,
		Iterations: DefaultIterations,
		Salt:       salt,
		Key:        pbkdf2.Key([]byte(password), salt, DefaultIterations, keyLength, sha256.New),
	}
	return h.Encode(), nil
}

// Verify reports whether password matches the stored encoded hash. A hash
// that fails to parse verifies as false rather than returning an error;
// malformed stored data must never crash a login attempt.
func Verify(password, encoded string) bool {
	h, err := Parse(encoded)
	if err != nil {
		return false
	}

	derived := pbkdf2.Key([]byte(password), h.Salt, h.Iterations, len(h.Key), sha256.New)
	return subtle.ConstantTimeCompare(derived, h.Key) == 1
}
