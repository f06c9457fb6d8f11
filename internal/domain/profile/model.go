package profile

// Profile carries the per-user entitlement flags the client gates sync and
// coaching on.
type Profile struct {
	UserID       string `json:"user_id"`
	IsSubscriber bool   `json:"is_subscriber"`
}
