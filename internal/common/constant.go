// Package common contains shared constants and sentinel errors used across
// IPMS client components.
package common

const (
	// AuthorizationHeaderName carries the bearer access token on every
	// authenticated request.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix precedes the access token in the Authorization header.
	BearerPrefix = "Bearer "

	// RequestIDHeaderName tags each outbound request for log correlation.
	RequestIDHeaderName = "X-Request-ID"
)
