package client

// Session is the explicit session context threaded into every core call.
// There is deliberately no ambient "current user": reconciliation and sync
// take the session as a value so tests can simulate several users at once.
type Session struct {
	UserID string
	Token  string
}

// Authenticated reports whether a user is signed in.
func (s Session) Authenticated() bool {
	return s.UserID != ""
}

// CacheUserID returns the user id used to scope local cache keys; anonymous
// sessions share the "local" bucket.
func (s Session) CacheUserID() string {
	if s.UserID == "" {
		return "local"
	}
	return s.UserID
}

// Entitlement is the combined authenticated + subscribed state gating remote
// sync and coaching requests.
type Entitlement struct {
	Authenticated bool
	Subscribed    bool
}

// CanSync reports whether remote writes are allowed.
func (e Entitlement) CanSync() bool {
	return e.Authenticated && e.Subscribed
}
