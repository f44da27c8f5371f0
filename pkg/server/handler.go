package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mydash/dashcache/pkg/dash"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler serves dashboard widgets their data.
type Handler struct {
	mux *chi.Mux
	svc dash.Service
}

func NewHandler(cfg *Config) (*Handler, error) {
	svc, err := BuildService(cfg)
	if err != nil {
		return nil, err
	}

	h := &Handler{
		mux: chi.NewRouter(),
		svc: svc,
	}
	h.mux.Use(middleware.RequestID)
	h.mux.Use(middleware.RealIP)
	h.mux.Use(Logger)

	h.mux.Get("/dashboard/profile", h.Profile)
	h.mux.Get("/dashboard/attributes", h.Attributes)
	h.mux.Get("/dashboard/workouts", h.Workouts)
	h.mux.Get("/dashboard/tasks", h.Tasks)
	h.mux.Get("/dashboard/habits", h.Habits)
	h.mux.Handle("/metrics", promhttp.Handler())

	return h, nil
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h Handler) Profile(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Profile(r.Context())
	h.respond(w, r, "Profile", res, err)
}

func (h Handler) Attributes(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Attributes(r.Context())
	h.respond(w, r, "Attributes", res, err)
}

func (h Handler) Workouts(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Workouts(r.Context())
	h.respond(w, r, "Workouts", res, err)
}

func (h Handler) Tasks(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Tasks(r.Context())
	h.respond(w, r, "Tasks", res, err)
}

func (h Handler) Habits(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Habits(r.Context())
	h.respond(w, r, "Habits", res, err)
}

func (h Handler) respond(w http.ResponseWriter, r *http.Request, op string, res any, err error) {
	if err != nil {
		slog.Error("service."+op,
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("error", err.Error()),
		)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		slog.Error("encoding response", slog.String("error", err.Error()))
	}
}
