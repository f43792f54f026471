package binance

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Signer produces the request signatures Binance requires on signed
// endpoints. It stores the secret as []byte to allow memory wiping.
type Signer struct {
	secretKey []byte
}

// NewSigner creates a new signer.
func NewSigner(secretKey string) *Signer {
	return &Signer{secretKey: []byte(secretKey)}
}

// Wipe clears the secret from memory. The signer is unusable afterwards.
func (s *Signer) Wipe() {
	if s == nil {
		return
	}
	for i := range s.secretKey {
		s.secretKey[i] = 0
	}
}

// Sign computes the hex-encoded HMAC-SHA256 of the encoded parameter
// string, appended by the caller as the `signature` parameter.
func (s *Signer) Sign(payload string) string {
	mac := hmac.New(sha256.New, s.secretKey)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
