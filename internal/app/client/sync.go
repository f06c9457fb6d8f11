package client

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"hartlog/internal/domain/fitlog"
)

// SyncEngine keeps a category's record list mirrored between the local cache
// and the remote document store. The local write always happens; the remote
// pass runs only when the session is entitled. The two writes are
// independent keyed upserts, so repeating either is safe.
type SyncEngine struct {
	cache  CacheStore
	remote RemoteStore
	log    *slog.Logger
}

func NewSyncEngine(cache CacheStore, remote RemoteStore, log *slog.Logger) *SyncEngine {
	return &SyncEngine{
		cache:  cache,
		remote: remote,
		log:    log.With("component", "sync"),
	}
}

// Load produces the authoritative record list for a category: remote
// preferred, local fallback, reconciled and id-corrected. Read failures on
// either side degrade to an empty source; an unauthenticated session loads
// nothing. When reconciliation had to fix identifiers the corrected list is
// written through to the local cache only; the remote store is never
// touched on the load path.
func (s *SyncEngine) Load(ctx context.Context, sess Session, cat fitlog.Category) []fitlog.Record {
	if !sess.Authenticated() {
		return []fitlog.Record{}
	}

	local := s.readCache(ctx, cat.CacheKey(sess.UserID))
	remote := s.readRemote(ctx, sess, cat)

	list, changed := fitlog.Reconcile(local, remote)
	if changed {
		s.writeCache(ctx, cat.CacheKey(sess.UserID), list)
	}
	return list
}

// Persist writes the authoritative list to the local cache and, when the
// session is entitled, upserts every record to the remote store as a batch
// of independent per-record writes awaited together. Newly assigned remote
// handles are mirrored back into the returned list and re-cached, so every
// later write targets the same remote document.
func (s *SyncEngine) Persist(ctx context.Context, sess Session, cat fitlog.Category, list []fitlog.Record, ent Entitlement) []fitlog.Record {
	s.writeCache(ctx, cat.CacheKey(sess.CacheUserID()), list)

	if !ent.CanSync() || sess.UserID == "" {
		return list
	}

	out := make([]fitlog.Record, len(list))
	copy(out, list)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		synced  int
		changed bool
	)
	for i := range out {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			rec := out[i]
			handle := rec.Handle(sess.UserID)
			if err := s.remote.Upsert(ctx, cat.Collection(), handle, remoteBody(rec, sess.UserID)); err != nil {
				s.log.Warn("remote upsert failed",
					"collection", cat.Collection(), "handle", handle, "error", err)
				return
			}

			mu.Lock()
			defer mu.Unlock()
			synced++
			if out[i].RemoteHandle != handle || out[i].OwnerID != sess.UserID {
				out[i].RemoteHandle = handle
				out[i].OwnerID = sess.UserID
				changed = true
			}
		}(i)
	}
	wg.Wait()

	s.log.Debug("remote sync finished",
		"collection", cat.Collection(), "records", len(out), "synced", synced)

	if changed {
		s.writeCache(ctx, cat.CacheKey(sess.UserID), out)
	}
	return out
}

// Remove deletes a record from the list and the local cache synchronously;
// the remote document is deleted best-effort and a failure there never rolls
// back the local deletion.
func (s *SyncEngine) Remove(ctx context.Context, sess Session, cat fitlog.Category, list []fitlog.Record, id string) []fitlog.Record {
	var removed *fitlog.Record
	out := make([]fitlog.Record, 0, len(list))
	for _, rec := range list {
		if rec.ID == id {
			r := rec
			removed = &r
			continue
		}
		out = append(out, rec)
	}

	s.writeCache(ctx, cat.CacheKey(sess.CacheUserID()), out)

	if removed != nil && sess.Authenticated() {
		handle := removed.Handle(sess.UserID)
		if err := s.remote.Delete(ctx, cat.Collection(), handle); err != nil {
			s.log.Warn("remote delete failed",
				"collection", cat.Collection(), "handle", handle, "error", err)
		}
	}
	return out
}

func (s *SyncEngine) readCache(ctx context.Context, key string) []fitlog.Record {
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if err != ErrCacheMiss {
			s.log.Warn("cache read failed", "key", key, "error", err)
		}
		return nil
	}

	var list []fitlog.Record
	if err := json.Unmarshal(raw, &list); err != nil {
		s.log.Warn("cache entry corrupt", "key", key, "error", err)
		return nil
	}
	return list
}

func (s *SyncEngine) writeCache(ctx context.Context, key string, list []fitlog.Record) {
	raw, err := json.Marshal(list)
	if err != nil {
		s.log.Warn("marshal records", "key", key, "error", err)
		return
	}
	if err := s.cache.Put(ctx, key, raw); err != nil {
		s.log.Warn("cache write failed", "key", key, "error", err)
	}
}

func (s *SyncEngine) readRemote(ctx context.Context, sess Session, cat fitlog.Category) []fitlog.Record {
	docs, err := s.remote.Query(ctx, cat.Collection(), sess.UserID)
	if err != nil {
		s.log.Warn("remote query failed", "collection", cat.Collection(), "error", err)
		return nil
	}

	records := make([]fitlog.Record, 0, len(docs))
	for _, doc := range docs {
		rec, err := decodeRemoteRecord(doc)
		if err != nil {
			s.log.Warn("remote document corrupt",
				"collection", cat.Collection(), "handle", doc.Handle, "error", err)
			continue
		}
		records = append(records, rec)
	}
	return records
}

// decodeRemoteRecord turns a stored document back into a record, keeping the
// document handle for later targeted writes and reconstructing a missing id
// from the composed handle.
func decodeRemoteRecord(doc RemoteDocument) (fitlog.Record, error) {
	var rec fitlog.Record
	if err := json.Unmarshal(doc.Body, &rec); err != nil {
		return fitlog.Record{}, err
	}

	if rec.ID == "" {
		if _, id, ok := strings.Cut(doc.Handle, "_"); ok {
			rec.ID = id
		} else {
			rec.ID = doc.Handle
		}
	}
	rec.RemoteHandle = doc.Handle
	if rec.Date.IsZero() {
		rec.Date = time.Now()
	}
	return rec, nil
}

// remoteBody is the document body as written to the remote store: owner
// stamped in, date kept in its canonical RFC 3339 form, and the handle
// itself left out of the stored fields.
func remoteBody(rec fitlog.Record, ownerID string) fitlog.Record {
	rec.OwnerID = ownerID
	rec.RemoteHandle = ""
	return rec
}
