/*
Package notify delivers challenge codes to voters.

Production uses SMTPNotifier (plain-auth relay, configured from EMAIL_*
settings). Development uses LogNotifier, which logs the code; development
mode also returns the code inline in the /challenge response as debugCode.

A delivery failure is an internal error to the caller; it does not consume
or invalidate the issued challenge, so re-requesting simply overwrites it.
*/
package notify
