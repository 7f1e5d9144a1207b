package domain

import "errors"

var (
	ErrPreferencesNotFound = errors.New("preferences not found")
	ErrInvalidPreferences  = errors.New("invalid preferences")
	ErrUpstreamUnavailable = errors.New("could not fetch rates from upstream")
)
