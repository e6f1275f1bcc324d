package authcode

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestGenerate(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		code, err := Generate()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(code) != Length {
			t.Fatalf("expected %d digits, got %q", Length, code)
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("non-digit in code %q", code)
			}
		}
		seen[code] = true
	}
	// 200 draws from a million-code space colliding down to a handful would
	// indicate a broken source.
	if len(seen) < 150 {
		t.Fatalf("suspiciously few distinct codes: %d", len(seen))
	}
}

func TestHash(t *testing.T) {
	sum := sha256.Sum256([]byte("482193"))
	want := hex.EncodeToString(sum[:])
	if got := Hash("482193"); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestMatches(t *testing.T) {
	h := Hash("482193")

	if !Matches(h, "482193") {
		t.Fatalf("expected correct plaintext to match")
	}
	if Matches(h, "482194") {
		t.Fatalf("expected wrong plaintext to fail")
	}
	if Matches("not-hex", "482193") {
		t.Fatalf("expected malformed stored hash to fail closed")
	}
	if Matches(h, "") {
		t.Fatalf("expected empty plaintext to fail")
	}
}
