package client

import "errors"

var (
	// ErrLoginRequired means the action needs a signed-in user; surfaced as a
	// login prompt before any network call is made.
	ErrLoginRequired = errors.New("login required")

	// ErrSubscriptionRequired means the server or a pre-flight check rejected
	// the action for lack of an active subscription; surfaced as an upgrade
	// prompt, not a generic error.
	ErrSubscriptionRequired = errors.New("subscription required")

	// ErrSubmitPending means a coaching request for this record is already in
	// flight; the new attempt is a no-op.
	ErrSubmitPending = errors.New("submit already in progress")

	// ErrCoachFailed is the generic failure for a coaching request.
	ErrCoachFailed = errors.New("coaching request failed")

	// ErrCacheMiss is returned by cache stores for absent keys.
	ErrCacheMiss = errors.New("cache key not found")
)
