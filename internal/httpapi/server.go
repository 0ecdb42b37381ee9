package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"modelgw/internal/ollama"
	"modelgw/pkg/types"
)

// HealthMessage is the fixed payload of GET /. Kept verbatim from the
// original container so existing probes keep matching.
const HealthMessage = "Ollama LLM container is up"

// Service defines the methods required by the HTTP API layer.
type Service interface {
	// Respond never fails; failures come back as "Error: ..." text.
	Respond(ctx context.Context, model, prompt string) string
	// ListInstalled returns the backend's installed models.
	ListInstalled(ctx context.Context) ([]string, error)
}

// NewMux builds the gateway's HTTP handler.
func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
		}))
	}
	r.Use(MetricsMiddleware)
	r.Use(RequestLogger)
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	// The two generate endpoints are intentionally identical: /ask is the
	// newer name, /generate remains for tooling that already depends on it.
	r.Post("/generate", handleGenerate(svc))
	r.Post("/ask", handleGenerate(svc))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, types.HealthResponse{Message: HealthMessage})
	})

	r.Get("/models", func(w http.ResponseWriter, r *http.Request) {
		models, err := svc.ListInstalled(r.Context())
		if err != nil {
			status := http.StatusInternalServerError
			if ollama.IsBackendUnavailable(err) {
				status = http.StatusBadGateway
			}
			writeJSONError(w, status, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, types.ModelsResponse{Models: models})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}

// handleGenerate serves POST /generate and POST /ask.
//
// @Summary      Generate a completion
// @Description  Resolves the model (default substitution, on-demand pull) and generates text. Generation failures still return 200 with an "Error: ..." response string; 500 is reserved for transport-level failures.
// @Accept       json
// @Produce      json
// @Param        request body types.GenerateRequest true "model and prompt"
// @Success      200 {object} types.GenerateResponse
// @Failure      500 {object} types.ErrorResponse
// @Router       /generate [post]
func handleGenerate(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		var req types.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			// The only path on which a request fails outright: a body the
			// transport layer could not parse.
			writeJSONError(w, http.StatusInternalServerError, "invalid JSON body")
			return
		}

		// Tie the handler to both the request and server lifetime so
		// shutdown abandons in-flight backend calls.
		ctx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()

		answer := svc.Respond(ctx, req.Model, req.Prompt)
		writeJSON(w, http.StatusOK, types.GenerateResponse{Response: answer})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
