package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"hartlog/internal/app/client/config"
	"hartlog/internal/domain/fitlog"
	"hartlog/internal/domain/journal"
)

// entitlementTTL bounds how stale a cached profile may get before the next
// call re-fetches it.
const entitlementTTL = 30 * time.Second

type ctxKey string

// AppKey is the context key commands use to reach the shared App.
const AppKey ctxKey = "app"

// FromContext returns the App a command runner stored in its context.
func FromContext(ctx context.Context) (*App, error) {
	app, ok := ctx.Value(AppKey).(*App)
	if !ok || app == nil {
		return nil, fmt.Errorf("application not initialized")
	}
	return app, nil
}

// App ties the client together: configuration, local cache, remote store
// and the per-category log books.
type App struct {
	config  *config.Config
	log     *slog.Logger
	http    *httpClient
	cache   CacheStore
	sync    *SyncEngine
	journal *JournalService
	session Session

	workouts *LogBook
	meals    *LogBook

	mu         sync.Mutex
	ent        Entitlement
	entFetched time.Time
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	httpCl, err := NewHTTPClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create http client: %w", err)
	}

	var cache CacheStore
	sqlite, err := NewSQLiteStorage(cfg.DataPath)
	if err != nil {
		log.Warn("sqlite cache unavailable, falling back to memory", "error", err)
		cache = NewMemoryStorage()
	} else {
		cache = sqlite
	}

	app := &App{
		config: cfg,
		log:    log,
		http:   httpCl,
		cache:  cache,
		session: Session{
			UserID: cfg.UserID,
			Token:  cfg.Token,
		},
	}
	app.http.SetToken(cfg.Token)
	app.sync = NewSyncEngine(cache, httpCl, log)
	app.journal = NewJournalService(cache, httpCl, log)
	app.workouts = newLogBook(app, fitlog.CategoryWorkout)
	app.meals = newLogBook(app, fitlog.CategoryEating)

	return app, nil
}

func (a *App) Session() Session { return a.session }

func (a *App) Book(cat fitlog.Category) (*LogBook, error) {
	switch cat {
	case fitlog.CategoryWorkout:
		return a.workouts, nil
	case fitlog.CategoryEating:
		return a.meals, nil
	default:
		return nil, fmt.Errorf("%w: %q", fitlog.ErrUnknownCategory, cat)
	}
}

func (a *App) Workouts() *LogBook { return a.workouts }
func (a *App) Meals() *LogBook    { return a.meals }

// Entitlement reports whether the session may sync and submit. The profile
// is fetched at most once per TTL; a fetch failure on a signed-in session
// degrades to authenticated-but-unsubscribed rather than blocking reads.
func (a *App) Entitlement(ctx context.Context) (Entitlement, error) {
	if !a.session.Authenticated() {
		return Entitlement{}, nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.entFetched.IsZero() && time.Since(a.entFetched) < entitlementTTL {
		return a.ent, nil
	}

	profile, err := a.http.FetchProfile(ctx)
	if err != nil {
		a.log.Warn("profile fetch failed", "error", err)
		a.ent = Entitlement{Authenticated: true}
		a.entFetched = time.Now()
		return a.ent, nil
	}

	a.ent = Entitlement{Authenticated: true, Subscribed: profile.IsSubscriber}
	a.entFetched = time.Now()
	return a.ent, nil
}

// WatchEntitlement polls the profile until ctx is cancelled and delivers a
// value whenever the entitlement changes. The current value is sent first.
func (a *App) WatchEntitlement(ctx context.Context, interval time.Duration) <-chan Entitlement {
	ch := make(chan Entitlement, 1)
	go func() {
		defer close(ch)

		last, _ := a.Entitlement(ctx)
		ch <- last

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				a.RefreshEntitlement()
				ent, err := a.Entitlement(ctx)
				if err != nil || ent == last {
					continue
				}
				last = ent
				select {
				case ch <- ent:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return ch
}

// RefreshEntitlement drops the cached profile so the next check re-fetches.
func (a *App) RefreshEntitlement() {
	a.mu.Lock()
	a.entFetched = time.Time{}
	a.mu.Unlock()
}

func (a *App) HealthCheck(ctx context.Context) error {
	return a.http.HealthCheck(ctx)
}

func (a *App) Journal(ctx context.Context) journal.Data {
	return a.journal.Load(ctx, a.session)
}

func (a *App) SaveJournal(ctx context.Context, data journal.Data) error {
	return a.journal.Save(ctx, a.session, data)
}

func (a *App) Close() error {
	return a.cache.Close()
}
