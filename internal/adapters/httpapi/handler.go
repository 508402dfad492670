package httpapi

import (
	"io/fs"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"mergington/internal/ports/input"
	"mergington/internal/ports/output"
)

// Handler serves the activities API using the activity use case.
type Handler struct {
	activityUseCase input.ActivityUseCase
	localizer       output.Localizer
	gatherer        prometheus.Gatherer
	logger          *zap.Logger
}

// NewHandler creates a Handler. gatherer may be nil, in which case /metrics
// is not mounted.
func NewHandler(
	activityUseCase input.ActivityUseCase,
	localizer output.Localizer,
	gatherer prometheus.Gatherer,
	logger *zap.Logger,
) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		activityUseCase: activityUseCase,
		localizer:       localizer,
		gatherer:        gatherer,
		logger:          logger,
	}
}

// Routes returns the HTTP routes wrapped in the request logger.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.handleRoot)
	mux.HandleFunc("GET /static/index.html", h.handleIndex)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFiles())))
	mux.HandleFunc("GET /activities", h.handleListActivities)
	mux.HandleFunc("POST /activities/{name}/signup", h.handleSignup)
	mux.HandleFunc("DELETE /activities/{name}/unregister", h.handleUnregister)
	mux.HandleFunc("GET /healthz", h.handleHealth)
	if h.gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
	}

	return logRequests(h.logger, mux)
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

// handleIndex serves the page directly: http.FileServer redirects any
// ".../index.html" request to "./".
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := fs.ReadFile(staticFiles(), "index.html")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

func (h *Handler) handleListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.activityUseCase.ListActivities(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, activities)
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	email, ok := h.emailParam(w, r)
	if !ok {
		return
	}
	msg, err := h.activityUseCase.Signup(r.Context(), h.locale(r), name, email)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}

func (h *Handler) handleUnregister(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	email, ok := h.emailParam(w, r)
	if !ok {
		return
	}
	msg, err := h.activityUseCase.Unregister(r.Context(), h.locale(r), name, email)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// emailParam returns the decoded email query value. The value is opaque: an
// empty value is accepted, only a missing parameter is rejected.
func (h *Handler) emailParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	q := r.URL.Query()
	if !q.Has("email") {
		writeDetail(w, http.StatusUnprocessableEntity, h.localizer.T(h.locale(r), "error.email_required", nil))
		return "", false
	}
	return q.Get("email"), true
}

func (h *Handler) locale(r *http.Request) string {
	return h.localizer.Match(r.Header.Get("Accept-Language"))
}

func staticFiles() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("httpapi: static files: " + err.Error())
	}
	return sub
}
