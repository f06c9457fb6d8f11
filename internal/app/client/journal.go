package client

import (
	"context"
	"encoding/json"

	"golang.org/x/exp/slog"

	"hartlog/internal/domain/journal"
)

const journalCollection = "userJournal"

func personalKey(userID string) string { return "personalGoals:" + userID }
func goalsKey(userID string) string    { return "goals:" + userID }
func memoriesKey(userID string) string { return "memories:" + userID }

// personalKeyLegacy is the old global cache key from before journals were
// namespaced per user.
const personalKeyLegacy = "personalGoals"

// JournalService mirrors the user's goals and memories between the local
// cache and the userJournal remote document, remote preferred.
type JournalService struct {
	cache  CacheStore
	remote RemoteStore
	log    *slog.Logger
}

func NewJournalService(cache CacheStore, remote RemoteStore, log *slog.Logger) *JournalService {
	return &JournalService{
		cache:  cache,
		remote: remote,
		log:    log.With("component", "journal"),
	}
}

// Load assembles the journal for a session: the per-user cache first, the
// split legacy keys and then the old global key as fallbacks, and finally
// the remote document overriding field-wise when it has content. Signed-out
// sessions get an empty journal.
func (j *JournalService) Load(ctx context.Context, sess Session) journal.Data {
	var data journal.Data
	if !sess.Authenticated() {
		return data
	}

	data = j.loadLocal(ctx, sess.UserID)

	if doc, err := j.remote.Get(ctx, journalCollection, sess.UserID); err == nil && doc != nil {
		var remote journal.Data
		if err := json.Unmarshal(doc.Body, &remote); err != nil {
			j.log.Warn("journal document corrupt", "error", err)
		} else {
			if len(journal.Normalize(remote.Goals)) > 0 {
				data.Goals = remote.Goals
			}
			if len(journal.Normalize(remote.Memories)) > 0 {
				data.Memories = remote.Memories
			}
		}
	}

	return data
}

func (j *JournalService) loadLocal(ctx context.Context, userID string) journal.Data {
	var data journal.Data
	if raw, err := j.cache.Get(ctx, personalKey(userID)); err == nil {
		if err := json.Unmarshal(raw, &data); err != nil {
			j.log.Warn("journal cache corrupt", "key", personalKey(userID), "error", err)
		}
	}
	if !data.Empty() {
		return data
	}

	// Split per-field keys used by older client versions.
	data = journal.Data{
		Goals:    j.readItemList(ctx, goalsKey(userID)),
		Memories: j.readItemList(ctx, memoriesKey(userID)),
	}
	if !data.Empty() {
		return data
	}

	// Last resort: the pre-namespacing global key.
	data = journal.Data{}
	if raw, err := j.cache.Get(ctx, personalKeyLegacy); err == nil {
		if err := json.Unmarshal(raw, &data); err != nil {
			j.log.Warn("legacy journal cache corrupt", "error", err)
		}
	}
	return data
}

func (j *JournalService) readItemList(ctx context.Context, key string) []journal.Item {
	raw, err := j.cache.Get(ctx, key)
	if err != nil {
		return nil
	}
	var items []journal.Item
	if err := json.Unmarshal(raw, &items); err != nil {
		j.log.Warn("journal list corrupt", "key", key, "error", err)
		return nil
	}
	return items
}

// Save writes the journal to the per-user cache key and to the remote
// document. Unlike log sync this is not subscription-gated: any signed-in
// user keeps a cloud journal.
func (j *JournalService) Save(ctx context.Context, sess Session, data journal.Data) error {
	if !sess.Authenticated() {
		return ErrLoginRequired
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	if err := j.cache.Put(ctx, personalKey(sess.UserID), raw); err != nil {
		j.log.Warn("journal cache write failed", "error", err)
	}
	if err := j.remote.Upsert(ctx, journalCollection, sess.UserID, data); err != nil {
		j.log.Warn("journal remote write failed", "error", err)
	}
	return nil
}

// ContextText renders the coaching context block for a session.
func (j *JournalService) ContextText(ctx context.Context, sess Session) string {
	data := j.Load(ctx, sess)
	return journal.ContextText(journal.Normalize(data.Goals), journal.Normalize(data.Memories))
}
