/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3011)
  - Env: "development" or "production" (default: development)
  - TokenSecret: Secret for credential signing (required)
  - AdminEmail: Identity granted the admin role on verification (optional)
  - AllowedOrigin: CORS origin for browsers and the live channel
  - SMTPHost/SMTPPort/SMTPUser/SMTPPass/SMTPFrom: challenge-code delivery,
    required in production only

# CLI Flags

	-p              Server port
	-e              Environment
	--origin        Allowed CORS origin
	--token-secret  Credential signing secret
	--admin-email   Admin identity

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	APP_ENV        → -e
	ALLOWED_ORIGIN → --origin
	TOKEN_SECRET   → --token-secret
	ADMIN_EMAIL    → --admin-email
	EMAIL_HOST, EMAIL_PORT, EMAIL_USER, EMAIL_PASS, EMAIL_FROM (env only)

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - TOKEN_SECRET must be provided
  - the EMAIL_* settings must be provided when APP_ENV=production
*/
package cliparse
