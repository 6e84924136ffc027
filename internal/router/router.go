package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/campuspulse/survey-gateway/internal/auth"
	"github.com/campuspulse/survey-gateway/internal/handler"
	mw "github.com/campuspulse/survey-gateway/internal/middleware"
)

func New(assertionSecret string, sessionH *handler.SessionHandler, surveyH *handler.SurveyHandler) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS)

	r.Get("/healthz", handler.Health)

	r.Route("/api", func(r chi.Router) {
		// Everything under /api sits behind Cloudflare Access.
		r.Use(auth.Middleware(assertionSecret))

		r.Get("/session", sessionH.Session)
		r.Get("/qualtrics", surveyH.Responses)
	})

	return r
}
