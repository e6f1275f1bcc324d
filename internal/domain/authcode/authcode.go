// Package authcode generates and verifies the short one-time codes two
// parties exchange verbally to prove physical co-presence.
//
// Codes are deliberately short and fixed-width (spoken or shown in person),
// so the expiry window enforced server-side, not the keyspace, is the main
// defense against guessing. Only the SHA-256 digest of a code is ever
// persisted; verification compares digest to digest in constant time.
package authcode

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math/big"
)

// Length is the fixed width of a generated code.
const Length = 6

var codeSpace = big.NewInt(1_000_000)

// Generate returns a new random numeric code, zero-padded to Length digits.
// The caller hands the plaintext to the issuing party and must not persist it.
func Generate() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", Length, n.Int64()), nil
}

// Hash returns the hex-encoded SHA-256 digest of a code plaintext. This is
// the only form in which a code is stored.
func Hash(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// Matches reports whether the submitted plaintext hashes to storedHash.
// The comparison is constant-time over the digests.
func Matches(storedHash, submitted string) bool {
	stored, err := hex.DecodeString(storedHash)
	if err != nil {
		return false
	}
	sum := sha256.Sum256([]byte(submitted))
	return subtle.ConstantTimeCompare(stored, sum[:]) == 1
}
