package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

func NewHandler(
	topicHandler *TopicVotingHandler,
	sessionHandler *SessionHandler,
	voteHandler *VoteHandler,
	allowedOrigins []string,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("welcome"))
		})

		r.Route("/topics", func(r chi.Router) {
			r.Post("/", topicHandler.CreateTopicVoting)
			r.Get("/", topicHandler.ListTopicVotings)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", topicHandler.GetTopicVoting)
				r.Post("/sessions", sessionHandler.OpenSession)
				r.Post("/votes", voteHandler.CastVote)
				r.Get("/result", voteHandler.GetResult)
			})
		})
	})

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: false,
	})

	return c.Handler(r)
}
