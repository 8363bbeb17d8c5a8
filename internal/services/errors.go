package services

import "github.com/pkg/errors"

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrWrongStep           = errors.New("intent not allowed on the current screen")
	ErrUnknownField        = errors.New("unknown field")
	ErrUnknownOption       = errors.New("unknown option")
	ErrInvalidDraft        = errors.New("draft has field errors")
	ErrSubmitInFlight      = errors.New("a submission is already in flight")
	ErrSenderNotConfigured = errors.New("remote collector URL is not configured")
	ErrNothingToExport     = errors.New("no applications to export")
	ErrApplicationNotFound = errors.New("application not found")
	ErrDigestDisabled      = errors.New("candidate digest is disabled")
)
