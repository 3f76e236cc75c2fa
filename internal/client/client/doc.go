// Package client talks to the IPMS REST backend.
//
// One Client holds the base URL, the HTTP transport chain and the session's
// TokenSource. Resources are described by an Endpoint and accessed through
// the generic Resource type; resource-specific calls (stock movements, order
// approval, payment links) live on thin wrappers around it.
//
// Every call is single-shot: no retries, no deduplication, no cancellation of
// an older request when a newer one starts. Failures come back as
// *RequestError (non-2xx) or *NetworkError (transport), both carrying the
// user-facing banner text; see UserMessage.
package client
