package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"jackut/internal/handler"
	"jackut/internal/httputil"
	authmw "jackut/internal/transport/http/middleware"
)

// RouterConfig holds the dependencies needed to create routes
type RouterConfig struct {
	AuthHandler      *handler.AuthHandler
	ProfileHandler   *handler.ProfileHandler
	FriendHandler    *handler.FriendHandler
	MessageHandler   *handler.MessageHandler
	CommunityHandler *handler.CommunityHandler
	RelationHandler  *handler.RelationHandler
	SystemHandler    *handler.SystemHandler
}

// NewRouter creates and configures a new Chi router with all route groups
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, 200, map[string]string{"status": "ok"})
	})

	// Public routes - no session required
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.AuthHandler.Register)
		r.Post("/login", cfg.AuthHandler.Login)
	})

	r.Route("/users/{login}", func(r chi.Router) {
		r.Get("/attributes/{name}", cfg.ProfileHandler.GetAttribute)
		r.Get("/friends", cfg.FriendHandler.List)
		r.Get("/friends/{friend}", cfg.FriendHandler.Check)
		r.Get("/communities", cfg.CommunityHandler.UserCommunities)
		r.Get("/idols/{idol}", cfg.RelationHandler.CheckFan)
		r.Get("/fans", cfg.RelationHandler.Fans)

		// Mutations against another user require a session
		r.Group(func(r chi.Router) {
			r.Use(authmw.Auth)
			r.Post("/friends", cfg.FriendHandler.Add)
			r.Post("/messages", cfg.MessageHandler.Send)
			r.Post("/idols", cfg.RelationHandler.AddIdol)
			r.Post("/crushes", cfg.RelationHandler.AddCrush)
			r.Post("/enemies", cfg.RelationHandler.AddEnemy)
		})
	})

	r.Get("/communities/{name}", cfg.CommunityHandler.Get)

	// Lifecycle operations of the scripted-harness surface
	r.Post("/system/reset", cfg.SystemHandler.Reset)
	r.Post("/system/shutdown", cfg.SystemHandler.Shutdown)

	// Session-owner routes
	r.Group(func(r chi.Router) {
		r.Use(authmw.Auth)

		r.Put("/profile", cfg.ProfileHandler.EditProfile)
		r.Post("/messages/read", cfg.MessageHandler.Read)

		r.Post("/communities", cfg.CommunityHandler.Create)
		r.Post("/communities/{name}/join", cfg.CommunityHandler.Join)
		r.Post("/communities/{name}/messages", cfg.CommunityHandler.Broadcast)
		r.Post("/communities/messages/read", cfg.CommunityHandler.Read)

		r.Get("/crushes", cfg.RelationHandler.Crushes)
		r.Get("/crushes/{login}", cfg.RelationHandler.CheckCrush)

		r.Delete("/account", cfg.SystemHandler.RemoveAccount)
	})

	return r
}
