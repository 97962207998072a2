/*
Package auth provides signed credentials and challenge-code generation.

# Credentials

A credential is a self-contained signed token: base64url-encoded JSON claims
joined with an HMAC-SHA256 signature over the encoded payload.

	credential, err := auth.MintCredential(secret, "alice@example.com", "Alice", "")
	claims, err := auth.ValidateCredential(secret, credential)

Nothing is stored server-side. Validity is signature + expiry at
presentation time, which lets any process holding the secret verify
independently. Credentials expire after CredentialTTL (2 hours).

Claims carry identity, display name, and an optional role. Role
auth.RoleAdmin gates the /admin endpoints.

# Challenge Codes

Six-digit numeric codes from crypto/rand:

	code, err := auth.GenerateCode()

The first digit is never zero, so every code is exactly CodeLength digits.
*/
package auth
