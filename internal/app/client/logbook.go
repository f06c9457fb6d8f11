package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"hartlog/internal/domain/fitlog"
)

// LogBook is an in-memory working copy of one category's records. Mutations
// write through the sync engine so the cache and remote copies keep up.
type LogBook struct {
	app *App
	cat fitlog.Category
	log *slog.Logger

	mu      sync.Mutex
	records []fitlog.Record
}

func newLogBook(app *App, cat fitlog.Category) *LogBook {
	return &LogBook{
		app: app,
		cat: cat,
		log: app.log.With("component", "logbook", "category", string(cat)),
	}
}

func (b *LogBook) Category() fitlog.Category { return b.cat }

// Refresh reconciles cache and remote state into the working copy.
func (b *LogBook) Refresh(ctx context.Context) {
	records := b.app.sync.Load(ctx, b.app.session, b.cat)

	b.mu.Lock()
	b.records = records
	b.mu.Unlock()
}

// Records returns a copy of the working set.
func (b *LogBook) Records() []fitlog.Record {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]fitlog.Record, len(b.records))
	copy(out, b.records)
	return out
}

func (b *LogBook) Record(id string) (fitlog.Record, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i := fitlog.Find(b.records, id); i >= 0 {
		return b.records[i], nil
	}
	return fitlog.Record{}, fitlog.ErrNotFound
}

// Add prepends a fresh record and persists.
func (b *LogBook) Add(ctx context.Context) (fitlog.Record, error) {
	rec := fitlog.NewRecord()

	b.mu.Lock()
	b.records = append([]fitlog.Record{rec}, b.records...)
	b.mu.Unlock()

	return rec, b.persist(ctx)
}

// AddEntry appends one entry to a record. The entry kind must belong to the
// book's category.
func (b *LogBook) AddEntry(ctx context.Context, id string, entry fitlog.Entry) error {
	if !b.cat.ValidKind(entry.Kind) {
		return fmt.Errorf("%w: %q", fitlog.ErrInvalidKind, entry.Kind)
	}
	if err := b.update(id, func(rec *fitlog.Record) error {
		rec.Entries = append(rec.Entries, entry)
		return nil
	}); err != nil {
		return err
	}
	return b.persist(ctx)
}

// RemoveEntry drops the entry at index from a record.
func (b *LogBook) RemoveEntry(ctx context.Context, id string, index int) error {
	if err := b.update(id, func(rec *fitlog.Record) error {
		if index < 0 || index >= len(rec.Entries) {
			return fmt.Errorf("entry index %d out of range", index)
		}
		rec.Entries = append(rec.Entries[:index], rec.Entries[index+1:]...)
		return nil
	}); err != nil {
		return err
	}
	return b.persist(ctx)
}

func (b *LogBook) SetDate(ctx context.Context, id string, date time.Time) error {
	if err := b.update(id, func(rec *fitlog.Record) error {
		rec.Date = date
		return nil
	}); err != nil {
		return err
	}
	return b.persist(ctx)
}

func (b *LogBook) ToggleCollapse(ctx context.Context, id string) error {
	if err := b.update(id, func(rec *fitlog.Record) error {
		rec.Collapsed = !rec.Collapsed
		return nil
	}); err != nil {
		return err
	}
	return b.persist(ctx)
}

// Remove deletes a record locally and, when signed in, remotely.
func (b *LogBook) Remove(ctx context.Context, id string) error {
	b.mu.Lock()
	if fitlog.Find(b.records, id) < 0 {
		b.mu.Unlock()
		return fitlog.ErrNotFound
	}
	list := make([]fitlog.Record, len(b.records))
	copy(list, b.records)
	b.mu.Unlock()

	out := b.app.sync.Remove(ctx, b.app.session, b.cat, list, id)

	b.mu.Lock()
	b.records = out
	b.mu.Unlock()
	return nil
}

// Submit sends one record to the coach and stores the feedback on it.
// Requires a signed-in, subscribed session; a record with a request already
// in flight is refused rather than queued.
func (b *LogBook) Submit(ctx context.Context, id string) (string, error) {
	if !b.app.session.Authenticated() {
		return "", ErrLoginRequired
	}
	ent, err := b.app.Entitlement(ctx)
	if err != nil {
		return "", err
	}
	if !ent.Subscribed {
		return "", ErrSubscriptionRequired
	}

	b.mu.Lock()
	i := fitlog.Find(b.records, id)
	if i < 0 {
		b.mu.Unlock()
		return "", fitlog.ErrNotFound
	}
	rec := b.records[i]
	if len(rec.Entries) == 0 {
		b.mu.Unlock()
		return "", fitlog.ErrNoEntries
	}
	if rec.Submit() == fitlog.SubmitPending {
		b.mu.Unlock()
		return "", ErrSubmitPending
	}
	b.records[i] = rec.WithSubmit(fitlog.SubmitPending)
	b.mu.Unlock()

	defer b.clearSubmit(id)

	userContext := b.app.journal.ContextText(ctx, b.app.session)
	recentOther := b.recentOther(ctx)

	feedback, err := b.app.http.Chat(ctx, buildCoachRequest(b.cat, rec, userContext, recentOther))
	if err != nil {
		return "", err
	}

	b.mu.Lock()
	i = fitlog.Find(b.records, id)
	if i < 0 {
		// The record was deleted while the request was in flight.
		b.mu.Unlock()
		b.log.Warn("feedback dropped, record removed during submit", "id", id)
		return feedback, nil
	}
	b.records[i].Feedback = feedback
	b.mu.Unlock()

	if err := b.persist(ctx); err != nil {
		return feedback, err
	}
	return feedback, nil
}

// recentOther summarizes the counterpart category for the coach prompt.
func (b *LogBook) recentOther(ctx context.Context) string {
	other := b.cat.Other()
	records := b.app.sync.Load(ctx, b.app.session, other)
	return fitlog.RecentSummary(other, records, time.Now(), 7, 3)
}

func (b *LogBook) clearSubmit(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i := fitlog.Find(b.records, id); i >= 0 {
		b.records[i] = b.records[i].WithSubmit(fitlog.SubmitIdle)
	}
}

func (b *LogBook) update(id string, fn func(*fitlog.Record) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := fitlog.Find(b.records, id)
	if i < 0 {
		return fitlog.ErrNotFound
	}
	return fn(&b.records[i])
}

func (b *LogBook) persist(ctx context.Context) error {
	ent, err := b.app.Entitlement(ctx)
	if err != nil {
		return err
	}

	b.mu.Lock()
	records := make([]fitlog.Record, len(b.records))
	copy(records, b.records)
	b.mu.Unlock()

	persisted := b.app.sync.Persist(ctx, b.app.session, b.cat, records, ent)

	// Mirror back any remote handles assigned during the write, without
	// clobbering edits that landed in the meantime.
	b.mu.Lock()
	for _, p := range persisted {
		if i := fitlog.Find(b.records, p.ID); i >= 0 {
			b.records[i].RemoteHandle = p.RemoteHandle
			b.records[i].OwnerID = p.OwnerID
		}
	}
	b.mu.Unlock()
	return nil
}
