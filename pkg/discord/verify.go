package discord

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"unicode/utf8"
)

const (
	TimestampHeader = "X-Signature-Timestamp"
	SignatureHeader = "X-Signature-Ed25519"
)

var (
	// ErrConfig means that the configured public key is unusable.
	// This is a startup condition, not a per-request failure.
	ErrConfig = errors.New("invalid public key configuration")
	// ErrBadRequest means that a signature header is missing or malformed.
	ErrBadRequest = errors.New("bad request")
	// ErrUnauthorized means that the signature does not match the request.
	ErrUnauthorized = errors.New("signature verification failed")
)

// Verifier authenticates inbound interaction webhooks with an application's
// public key. It is immutable after construction, and safe for concurrent use.
type Verifier struct {
	key ed25519.PublicKey
}

// ParsePublicKey decodes a hex-encoded Ed25519 public key,
// as shown in the application's page in the Discord developer portal.
func ParsePublicKey(hexKey string) (ed25519.PublicKey, error) {
	b, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed hex", ErrConfig)
	}
	if len(b) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrConfig, len(b), ed25519.PublicKeySize)
	}
	return ed25519.PublicKey(b), nil
}

func NewVerifier(hexKey string) (*Verifier, error) {
	key, err := ParsePublicKey(hexKey)
	if err != nil {
		return nil, err
	}
	return &Verifier{key: key}, nil
}

// Verify implements https://discord.com/developers/docs/interactions/overview#setting-up-an-endpoint-validating-security-request-headers.
// The signed message is the timestamp header followed by the body exactly
// as received, so the body must not be re-encoded before calling this.
func (v *Verifier) Verify(headers http.Header, body []byte) error {
	ts, err := requiredHeader(headers, TimestampHeader)
	if err != nil {
		return err
	}

	s, err := requiredHeader(headers, SignatureHeader)
	if err != nil {
		return err
	}

	sig, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("%w: malformed %s header", ErrBadRequest, SignatureHeader)
	}
	if len(sig) != ed25519.SignatureSize {
		return fmt.Errorf("%w: %s header is %d bytes, want %d", ErrBadRequest, SignatureHeader, len(sig), ed25519.SignatureSize)
	}

	msg := make([]byte, 0, len(ts)+len(body))
	msg = append(msg, ts...)
	msg = append(msg, body...)

	if !ed25519.Verify(v.key, msg, sig) {
		return ErrUnauthorized
	}

	return nil
}

// Verify is a one-shot combination of [ParsePublicKey] and [Verifier.Verify].
// Long-running servers should call [NewVerifier] once instead.
func Verify(body []byte, headers http.Header, hexKey string) error {
	v, err := NewVerifier(hexKey)
	if err != nil {
		return err
	}
	return v.Verify(headers, body)
}

func requiredHeader(headers http.Header, name string) (string, error) {
	v := headers.Get(name)
	if v == "" {
		return "", fmt.Errorf("%w: missing %s header", ErrBadRequest, name)
	}
	if !utf8.ValidString(v) {
		return "", fmt.Errorf("%w: non-UTF-8 %s header", ErrBadRequest, name)
	}
	return v, nil
}
