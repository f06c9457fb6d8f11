// The cloud side of the journaling client:
// per-user document collections backing log sync, entitlement lookup, and
// the subscription-gated AI coaching proxy.
//
// GET    /api/health                                     # liveness (public)
// GET    /api/profile                                    # entitlement flags (auth)
// GET    /api/collections/{collection}/documents         # list own documents (auth)
// GET    /api/collections/{collection}/documents/{handle}
// PUT    /api/collections/{collection}/documents/{handle}
// DELETE /api/collections/{collection}/documents/{handle}
// POST   /ai/groq-chat                                   # coaching proxy (auth + subscription)

package api

import (
	aiAPI "hartlog/internal/app/server/api/http/ai"
	collectionAPI "hartlog/internal/app/server/api/http/collection"
	healthAPI "hartlog/internal/app/server/api/http/health"
	"hartlog/internal/app/server/api/http/middleware"
	"hartlog/internal/app/server/api/http/middleware/auth"
	"hartlog/internal/app/server/api/http/middleware/logger"
	profileAPI "hartlog/internal/app/server/api/http/profile"
	"hartlog/internal/app/server/config"
	"hartlog/internal/domain/document"
	"hartlog/internal/domain/profile"
	"hartlog/internal/domain/session"
	"hartlog/internal/infrastructure/storage/postgres"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health     *healthAPI.Handler
	Profile    *profileAPI.Handler
	Collection *collectionAPI.Handler
	AI         *aiAPI.Handler
}

// New builds a *chi.Mux with every operation registered through huma.
func New(storage *postgres.Storage, cfg *config.Config, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	humaConfig := huma.DefaultConfig("HartLog API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, humaConfig)

	h := handlers(storage, cfg, log)
	h.Health.SetupRoutes(API)
	h.Profile.SetupRoutes(API)
	h.Collection.SetupRoutes(API)
	h.AI.SetupRoutes(API)

	return mux
}

func handlers(storage *postgres.Storage, cfg *config.Config, log *slog.Logger) *Handlers {
	sessionRepo := postgres.NewSessionRepository(storage, log)
	sessionService := session.NewService(sessionRepo, log)
	authMW := auth.New(sessionService, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	profileRepo := postgres.NewProfileRepository(storage, log)
	profileService := profile.NewService(profileRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	profileHandler := profileAPI.NewHandler(profileService, log, middlewares.GetAllAndClear())

	documentRepo := postgres.NewDocumentRepository(storage, log)
	documentService := document.NewService(documentRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	collectionHandler := collectionAPI.NewHandler(documentService, log, middlewares.GetAllAndClear())

	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	aiHandler := aiAPI.NewHandler(profileService, cfg, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:     healthHandler,
		Profile:    profileHandler,
		Collection: collectionHandler,
		AI:         aiHandler,
	}
}
