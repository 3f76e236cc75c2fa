// Package common defines shared constants and sentinel errors used across
// the IPMS client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Session errors.
	ErrNoSession    = errors.New("no stored session")
	ErrUnauthorized = errors.New("unauthorized")

	// UI flow errors.
	ErrExportInProgress = errors.New("export already in progress")
	ErrDialogClosed     = errors.New("dialog is not open")
	ErrUnknownRoute     = errors.New("unknown route")
	ErrUnknownFilter    = errors.New("unknown filter")
)
