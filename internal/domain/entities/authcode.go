package entities

import "time"

// AuthCode is the persisted half of a proof-of-presence handshake code.
//
// The plaintext is generated once, handed to the issuing party, and never
// stored; only its SHA-256 digest is persisted. Verification compares digest
// to digest. Consumed is one-way: a consumed code never verifies again, even
// with the correct plaintext.
//
// ExpiresAt is nil for codes issued before expiry tracking existed; those
// legacy codes never expire and are only retired by consumption.

type AuthCode struct {
	Hash      string     `json:"hash"`
	IssuedAt  time.Time  `json:"issued_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Consumed  bool       `json:"consumed"`
}

// Expired reports whether the code's validity window has passed. Expiry is
// evaluated lazily at verification time; there is no background sweep.
func (c AuthCode) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && now.After(*c.ExpiresAt)
}

// Live reports whether the code can still be verified: not consumed and not
// expired at the given instant.
func (c AuthCode) Live(now time.Time) bool {
	return !c.Consumed && !c.Expired(now)
}
