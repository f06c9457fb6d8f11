package fitlog

import "fmt"

// Category selects which of the two log books a record belongs to. Workout
// and eating logs share one implementation; the category only decides the
// remote collection, the local cache key and the allowed entry kinds.
type Category string

const (
	CategoryWorkout Category = "workout"
	CategoryEating  Category = "eating"
)

var entryKinds = map[Category][]string{
	CategoryWorkout: {"Strength", "Cardio", "Fitness"},
	CategoryEating:  {"Breakfast", "Lunch", "Dinner", "Snack"},
}

// Validate reports whether the category is one of the known log books.
func (c Category) Validate() error {
	switch c {
	case CategoryWorkout, CategoryEating:
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownCategory, c)
}

// Collection returns the remote document collection name for this category.
func (c Category) Collection() string {
	return string(c) + "Logs"
}

// CacheKey returns the local cache key for a user's records. An empty user
// id maps to the shared anonymous key so signed-out edits survive locally.
func (c Category) CacheKey(userID string) string {
	if userID == "" {
		userID = "local"
	}
	return c.Collection() + ":" + userID
}

// Other returns the opposite category, used to pull the cross-domain
// recent-activity summary into coaching requests.
func (c Category) Other() Category {
	if c == CategoryWorkout {
		return CategoryEating
	}
	return CategoryWorkout
}

// EntryKinds lists the entry kinds a record of this category may contain.
func (c Category) EntryKinds() []string {
	return entryKinds[c]
}

// ValidKind reports whether kind is an allowed entry kind for the category.
func (c Category) ValidKind(kind string) bool {
	for _, k := range entryKinds[c] {
		if k == kind {
			return true
		}
	}
	return false
}
