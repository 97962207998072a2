package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"
)

// CredentialTTL is how long a minted credential stays valid.
const CredentialTTL = 2 * time.Hour

// CodeLength is the number of digits in a challenge code.
const CodeLength = 6

// RoleAdmin marks a credential that may call the /admin endpoints.
const RoleAdmin = "admin"

var ErrInvalidCredential = errors.New("invalid or expired credential")

// Claims are the fields embedded in a signed credential. The credential is
// self-contained: nothing is stored server-side, validity is determined by
// signature and expiry alone.
type Claims struct {
	Identity    string `json:"identity"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role,omitempty"`
	IssuedAt    int64  `json:"iat"`
	ExpiresAt   int64  `json:"exp"`
}

// MintCredential issues a signed credential for a verified identity.
// Pass role RoleAdmin to grant admin privileges, or "" for a plain voter.
func MintCredential(secret, identity, displayName, role string) (string, error) {
	now := time.Now()
	return SignClaims(secret, Claims{
		Identity:    identity,
		DisplayName: displayName,
		Role:        role,
		IssuedAt:    now.Unix(),
		ExpiresAt:   now.Add(CredentialTTL).Unix(),
	})
}

// SignClaims encodes and signs an explicit claim set. MintCredential is the
// normal entry point; this exists so expiry edge cases can be exercised.
func SignClaims(secret string, claims Claims) (string, error) {
	payload, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("failed to encode claims: %w", err)
	}
	encoded := base64.RawURLEncoding.EncodeToString(payload)
	return encoded + "." + sign(secret, encoded), nil
}

// ValidateCredential checks signature and expiry and returns the embedded
// claims. Any malformed, tampered, or expired credential fails with
// ErrInvalidCredential; callers never learn which.
func ValidateCredential(secret, credential string) (Claims, error) {
	encoded, sig, ok := strings.Cut(credential, ".")
	if !ok {
		return Claims{}, ErrInvalidCredential
	}
	if !hmac.Equal([]byte(sig), []byte(sign(secret, encoded))) {
		return Claims{}, ErrInvalidCredential
	}

	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return Claims{}, ErrInvalidCredential
	}
	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return Claims{}, ErrInvalidCredential
	}
	if time.Now().Unix() > claims.ExpiresAt {
		return Claims{}, ErrInvalidCredential
	}
	return claims, nil
}

func sign(secret, payload string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(payload))
	return strings.TrimRight(base64.URLEncoding.EncodeToString(h.Sum(nil)), "=")
}

// GenerateCode creates a fixed-length numeric challenge code from a secure
// random source. The first digit is never zero so the length is stable.
func GenerateCode() (string, error) {
	// 100000..999999 for CodeLength == 6
	min := int64(1)
	for i := 1; i < CodeLength; i++ {
		min *= 10
	}
	n, err := rand.Int(rand.Reader, big.NewInt(9*min))
	if err != nil {
		return "", fmt.Errorf("failed to generate challenge code: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+min), nil
}
