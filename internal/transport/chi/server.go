package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/zentrail/parkchat/internal/domain"
	logpkg "github.com/zentrail/parkchat/internal/logger"
	chatuc "github.com/zentrail/parkchat/internal/usecase/chat"
	healthuc "github.com/zentrail/parkchat/internal/usecase/health"
	"github.com/zentrail/parkchat/internal/version"
)

// Error codes returned in JSON error responses.
const (
	codeBadRequest       = "bad_request"
	codeStoreUnavailable = "store_unavailable"
	codeEmbeddingError   = "embedding_provider_error"
	codeInternalError    = "internal_error"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the chatbot over HTTP. Handlers log through the per-request
// logger stored in the context by the wide-event middleware.
type Server struct {
	chat          *chatuc.Service
	health        *healthuc.Service
	metrics       http.Handler
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(chat *chatuc.Service, health *healthuc.Service) *Server {
	s := &Server{
		chat:    chat,
		health:  health,
		metrics: promhttp.Handler(),
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrStoreUnavailable, http.StatusServiceUnavailable, codeStoreUnavailable),
		sentinelHandler(domain.ErrEmbeddingProviderError, http.StatusBadGateway, codeEmbeddingError),
	}
	return s
}

// Register mounts all routes on the given router.
func (s *Server) Register(r chi.Router) {
	r.Get("/", s.Root)
	r.Post("/chat", s.Chat)
	r.Get("/health", s.HealthCheck)
	r.Method(http.MethodGet, "/metrics", s.metrics)
}

type chatRequest struct {
	Query    string `json:"query"`
	ParkCode string `json:"parkCode,omitempty"`
}

type chatResponse struct {
	Response      string        `json:"response"`
	RelevantParks []parkSummary `json:"relevant_parks"`
}

type parkSummary struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Activities  []activityItem `json:"activities"`
}

type activityItem struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Root handles GET /. API information for probes and humans.
func (s *Server) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to the National Parks Chatbot API",
		"version": version.Version,
	})
}

// Chat handles POST /chat.
func (s *Server) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Query is required")
		return
	}

	result, err := s.chat.Respond(r.Context(), req.Query, req.ParkCode)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, chatResultToDTO(result))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status == healthuc.Unhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

func chatResultToDTO(result domain.ChatResult) chatResponse {
	parks := make([]parkSummary, 0, len(result.Parks))
	for _, p := range result.Parks {
		activities := make([]activityItem, 0, len(p.Activities))
		for _, a := range p.Activities {
			activities = append(activities, activityItem{ID: a.ID, Name: a.Name})
		}
		parks = append(parks, parkSummary{
			Name:        p.Name,
			Description: p.Description,
			Activities:  activities,
		})
	}
	return chatResponse{Response: result.Response, RelevantParks: parks}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrStoreUnavailable,
		domain.ErrEmbeddingProviderError,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	logger := logpkg.FromContext(r.Context())
	logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
