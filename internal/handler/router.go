package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/donatehub/donatehub-go/internal/middleware"
	"github.com/donatehub/donatehub-go/internal/service"
)

// Services are the business services the API exposes.
type Services struct {
	Auth      *service.AuthService
	Campaigns *service.CampaignService
	Comments  *service.CommentService
	Contacts  *service.ContactService
}

// RouterConfig tunes the public rate limit.
type RouterConfig struct {
	RateLimitRPS   float64
	RateLimitBurst int

	// TrustProxyHeaders takes the client address from X-Forwarded-For or
	// X-Real-IP. Rate limiting keys on the resulting address, so enable it
	// only behind a proxy that overwrites those headers.
	TrustProxyHeaders bool
}

// NewRouter wires every route. ctx bounds background work owned by the
// router, such as rate limiter cleanup.
func NewRouter(ctx context.Context, svc Services, cfg RouterConfig) http.Handler {
	authHandler := NewAuthHandler(svc.Auth)
	campaignHandler := NewCampaignHandler(svc.Campaigns)
	commentHandler := NewCommentHandler(svc.Comments)
	contactHandler := NewContactHandler(svc.Contacts)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	if cfg.TrustProxyHeaders {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/campaigns", campaignHandler.HandleList)
	r.Get("/campaigns/{id}", campaignHandler.HandleGet)
	r.Get("/campaigns/{id}/comments", commentHandler.HandleList)
	r.Get("/campaigns/{id}/comments/{commentId}", commentHandler.HandleGet)
	r.Get("/campaigns/{id}/contacts/{contactId}", contactHandler.HandleGet)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Post("/sign-up", authHandler.HandleSignUp)
		r.Post("/sign-in", authHandler.HandleSignIn)
		r.Post("/campaigns/{id}/contacts", contactHandler.HandleCreate)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.BearerAuth(svc.Auth))

		r.Delete("/sign-out", authed(authHandler.HandleSignOut))
		r.Patch("/change-password", authed(authHandler.HandleChangePassword))
		r.Get("/users/me", authed(authHandler.HandleMe))

		r.Post("/campaigns", authed(campaignHandler.HandleCreate))
		r.Patch("/campaigns/{id}", authed(campaignHandler.HandleUpdate))
		r.Delete("/campaigns/{id}", authed(campaignHandler.HandleDelete))
		r.Post("/campaigns/favorites/{id}", authed(campaignHandler.HandleFavorite))
		r.Patch("/campaigns/favorites/{id}", authed(campaignHandler.HandleUnfavorite))

		r.Post("/campaigns/{id}/comments", authed(commentHandler.HandleCreate))
		r.Patch("/comments/{id}", authed(commentHandler.HandleUpdate))
		r.Delete("/campaigns/{id}/comments/{commentId}", authed(commentHandler.HandleDelete))
	})

	return r
}
