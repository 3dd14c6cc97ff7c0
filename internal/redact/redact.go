// Package redact hides password material before it reaches logs or reports.
package redact

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	maskRune     = '*'
	emptyMarker  = "(empty)"
	fingerprintN = 12
	keySize      = 32

	fingerprintPrefix = "hmac:"
)

// Mask keeps reveal runes at each end of password and stars the rest.
// Passwords too short to keep at least one hidden rune per revealed rune are
// fully starred.
func Mask(password string, reveal int) string {
	if password == "" {
		return emptyMarker
	}
	runes := []rune(password)
	n := len(runes)
	if reveal < 0 || reveal > n/4 {
		reveal = 0
	}

	var b strings.Builder
	b.Grow(len(password))
	for i, r := range runes {
		if i < reveal || i >= n-reveal {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(maskRune)
	}
	return b.String()
}

// Fingerprinter derives short keyed digests for correlating passwords inside
// a report without making them reversible by a plain dictionary hash.
type Fingerprinter struct {
	key []byte
}

// NewFingerprinter returns a Fingerprinter keyed with key. An empty key is
// replaced by a random one, so fingerprints only correlate within one run.
func NewFingerprinter(key []byte) (*Fingerprinter, error) {
	if len(key) == 0 {
		key = make([]byte, keySize)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("redact.NewFingerprinter: %w", err)
		}
	}
	return &Fingerprinter{key: append([]byte(nil), key...)}, nil
}

// Fingerprint returns the truncated HMAC-SHA256 of password.
func (f *Fingerprinter) Fingerprint(password string) string {
	mac := hmac.New(sha256.New, f.key)
	mac.Write([]byte(password))
	return fingerprintPrefix + hex.EncodeToString(mac.Sum(nil))[:fingerprintN]
}

// Length returns the rune length used by Mask.
func Length(password string) int {
	return utf8.RuneCountInString(password)
}
