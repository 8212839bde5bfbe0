package server

import (
	"net/http"
	"time"

	"github.com/csconnell/hipchat-plugin/cmd/hipchatd/config"
	"github.com/csconnell/hipchat-plugin/pkg/notifications"
	"github.com/csconnell/hipchat-plugin/pkg/server/session"
	"github.com/csconnell/hipchat-plugin/pkg/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
)

func SetupRouter(
	config *config.Config,
	store *store.Store,
	notifier *notifications.ActiveNotifier,
	eventsProcessed *prometheus.CounterVec,
	perf *prometheus.HistogramVec,
) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.NoCache)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(middleware.WithValue("store", store))
	r.Use(middleware.WithValue("notifier", notifier))
	r.Use(middleware.WithValue("eventsProcessed", eventsProcessed))
	r.Use(middleware.WithValue("perf", perf))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8888", config.Host},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Group(func(r chi.Router) {
		r.Use(session.SetUser())
		r.Use(session.MustUser())
		r.Post("/api/builds/{event}", buildEvent)
		r.Get("/api/projects/{project}/config", getJobConfig)
		r.Post("/api/projects/{project}/config", saveJobConfig)
		r.Get("/api/projects/{project}/builds", getBuilds)
		r.Get("/api/configs", getJobConfigs)
	})

	r.Group(func(r chi.Router) {
		r.Use(session.SetUser())
		r.Use(session.MustAdmin())
		r.Get("/api/user/{login}", getUser)
		r.Post("/api/user", saveUser)
		r.Delete("/api/user/{login}", deleteUser)
		r.Get("/api/users", getUsers)
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return r
}
