package billing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	apperrors "yolo-transcript/internal/app/errors"
)

// SignatureHeader is the header carrying the payment provider signature
const SignatureHeader = "Paddle-Signature"

// Signature is a parsed "ts=...;h1=..." header
type Signature struct {
	Timestamp string
	Hashes    []string
}

// ParseSignature splits the header into its timestamp and h1 hashes
func ParseSignature(header string) (*Signature, error) {
	sig := &Signature{}
	for _, part := range strings.Split(header, ";") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch key {
		case "ts":
			sig.Timestamp = value
		case "h1":
			if value != "" {
				sig.Hashes = append(sig.Hashes, value)
			}
		}
	}
	if sig.Timestamp == "" || len(sig.Hashes) == 0 {
		return nil, apperrors.Wrap(apperrors.ErrInvalidSignature, "missing ts or h1")
	}
	return sig, nil
}

// ComputeSignature returns hex(HMAC-SHA256(secret, "{ts}:{body}"))
func ComputeSignature(timestamp string, body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte(":"))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks the header against the raw request body. A
// positive tolerance rejects timestamps older than now - tolerance.
func VerifySignature(header string, body []byte, secret string, now time.Time, tolerance time.Duration) error {
	if secret == "" {
		return apperrors.Wrap(apperrors.ErrInvalidSignature, "webhook secret not configured")
	}
	sig, err := ParseSignature(header)
	if err != nil {
		return err
	}

	if tolerance > 0 {
		ts, err := strconv.ParseInt(sig.Timestamp, 10, 64)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInvalidSignature, "malformed timestamp")
		}
		if now.Sub(time.Unix(ts, 0)) > tolerance {
			return apperrors.Wrap(apperrors.ErrInvalidSignature, "timestamp outside tolerance")
		}
	}

	expected := []byte(ComputeSignature(sig.Timestamp, body, secret))
	for _, h := range sig.Hashes {
		if hmac.Equal(expected, []byte(strings.ToLower(h))) {
			return nil
		}
	}
	return apperrors.Wrap(apperrors.ErrInvalidSignature, "hash mismatch")
}

// SignHeader builds a header value for body, used by tests and tooling
func SignHeader(body []byte, secret string, at time.Time) string {
	ts := strconv.FormatInt(at.Unix(), 10)
	return "ts=" + ts + ";h1=" + ComputeSignature(ts, body, secret)
}
