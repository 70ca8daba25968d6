package domain

import "errors"

// Error message string constants - single source of truth for error messages
const (
	ErrMsgPlayerIDMissing  = "player identifier missing"
	ErrMsgPlayerIDInvalid  = "invalid player identifier"
	ErrMsgNetworkNotFound  = "network profile not found"
	ErrMsgStoreUnavailable = "ledger store unavailable"
	ErrMsgRecordConflict   = "concurrent ledger update"
)

// Sentinel domain errors.
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrPlayerIDMissing indicates no player identifier alias resolved to a value.
	ErrPlayerIDMissing = errors.New(ErrMsgPlayerIDMissing)

	// ErrPlayerIDInvalid indicates the identifier failed input validation.
	ErrPlayerIDInvalid = errors.New(ErrMsgPlayerIDInvalid)

	// ErrNetworkNotFound indicates an unknown network profile name.
	ErrNetworkNotFound = errors.New(ErrMsgNetworkNotFound)

	// ErrStoreUnavailable indicates the ledger store read or write did not
	// complete. Callers must not infer whether the mutation was applied.
	ErrStoreUnavailable = errors.New(ErrMsgStoreUnavailable)

	// ErrRecordConflict indicates an atomic update lost its optimistic race
	// too many times in a row.
	ErrRecordConflict = errors.New(ErrMsgRecordConflict)
)
