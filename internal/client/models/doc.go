// Package models holds the client-side copies of backend records and the
// small response envelopes the IPMS API returns. Values are snapshots: the
// backend owns them and every fetch replaces them wholesale.
package models
