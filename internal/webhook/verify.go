// Package webhook verifies signed events from the hosted auth provider.
// The provider signs payloads svix-style: HMAC-SHA256 over
// "{id}.{timestamp}.{body}" with a base64 secret carried after a "whsec_"
// prefix, and a signature header holding space-separated "v1,<base64>"
// entries.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const secretPrefix = "whsec_"

var (
	ErrInvalidTimestamp = errors.New("webhook: invalid timestamp header")
	ErrExpiredTimestamp = errors.New("webhook: timestamp outside of tolerance")
	ErrNoMatchingSig    = errors.New("webhook: no matching signature found")
)

type Verifier struct {
	key       []byte
	tolerance time.Duration
}

func NewVerifier(secret string, tolerance time.Duration) (*Verifier, error) {
	key, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(secret, secretPrefix))
	if err != nil {
		return nil, fmt.Errorf("webhook: decode secret: %w", err)
	}

	return &Verifier{
		key:       key,
		tolerance: tolerance,
	}, nil
}

func (v *Verifier) sign(id string, timestamp string, payload []byte) string {
	mac := hmac.New(sha256.New, v.key)
	mac.Write([]byte(id))
	mac.Write([]byte("."))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Verify checks the timestamp tolerance and the v1 signature list against
// the raw request body. All three header values must be non-empty; presence
// is the caller's concern.
func (v *Verifier) Verify(payload []byte, id string, timestamp string, signature string) error {
	unix, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return ErrInvalidTimestamp
	}

	sent := time.Unix(unix, 0)
	if diff := time.Since(sent); diff > v.tolerance || diff < -v.tolerance {
		return ErrExpiredTimestamp
	}

	expected := v.sign(id, timestamp, payload)
	for _, candidate := range strings.Split(signature, " ") {
		version, sig, found := strings.Cut(candidate, ",")
		if !found || version != "v1" {
			continue
		}
		if hmac.Equal([]byte(sig), []byte(expected)) {
			return nil
		}
	}

	return ErrNoMatchingSig
}
