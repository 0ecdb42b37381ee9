package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"modelgw/internal/ollama"
	"modelgw/pkg/types"
)

type mockService struct {
	answer  string
	listed  []string
	listErr error

	lastModel  string
	lastPrompt string
}

func (m *mockService) Respond(ctx context.Context, model, prompt string) string {
	m.lastModel = model
	m.lastPrompt = prompt
	return m.answer
}

func (m *mockService) ListInstalled(ctx context.Context) ([]string, error) {
	return m.listed, m.listErr
}

func postJSON(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(w, req)
	return w
}

func TestGenerateHandler(t *testing.T) {
	svc := &mockService{answer: "generated text"}
	r := NewMux(svc)
	w := postJSON(t, r, "/generate", `{"model":"mistral","prompt":"Hi"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var body types.GenerateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if body.Response != "generated text" {
		t.Fatalf("response=%q", body.Response)
	}
	if svc.lastModel != "mistral" || svc.lastPrompt != "Hi" {
		t.Fatalf("service saw model=%q prompt=%q", svc.lastModel, svc.lastPrompt)
	}
}

func TestGenerateAndAskAreIdentical(t *testing.T) {
	svc := &mockService{answer: "same answer"}
	r := NewMux(svc)
	body := `{"model":"m","prompt":"p"}`
	a := postJSON(t, r, "/generate", body)
	b := postJSON(t, r, "/ask", body)
	if a.Code != b.Code {
		t.Fatalf("codes differ: %d vs %d", a.Code, b.Code)
	}
	if !bytes.Equal(a.Body.Bytes(), b.Body.Bytes()) {
		t.Fatalf("bodies differ: %q vs %q", a.Body.String(), b.Body.String())
	}
}

func TestGenerate_FallbackTextStillHTTP200(t *testing.T) {
	svc := &mockService{answer: "Error: Unable to generate response using model 'x'. boom"}
	r := NewMux(svc)
	w := postJSON(t, r, "/generate", `{"prompt":"Hi"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("generation failure must not change status: %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Error: Unable to generate response") {
		t.Fatalf("body=%q", w.Body.String())
	}
}

func TestGenerate_BadJSONIs500WithDetail(t *testing.T) {
	svc := &mockService{}
	r := NewMux(svc)
	w := postJSON(t, r, "/generate", "not-json")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d", w.Code)
	}
	var body types.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if body.Detail == "" {
		t.Fatal("missing detail")
	}
}

func TestGenerate_BodyTooLargeIs500(t *testing.T) {
	svc := &mockService{}
	r := NewMux(svc)
	big := make([]byte, (1<<20)+10)
	for i := range big {
		big[i] = 'a'
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/generate", bytes.NewReader(big))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestGenerate_EmptyPromptIsNotRejected(t *testing.T) {
	// Non-empty prompts are expected but not enforced; the backend decides.
	svc := &mockService{answer: "ok"}
	r := NewMux(svc)
	w := postJSON(t, r, "/generate", `{"model":"m"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestHealthRoot(t *testing.T) {
	// Health is static and independent of backend state.
	svc := &mockService{listErr: errors.New("backend down")}
	r := NewMux(svc)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var body types.HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if body.Message != "Ollama LLM container is up" {
		t.Fatalf("message=%q", body.Message)
	}
}

func TestModelsHandler(t *testing.T) {
	svc := &mockService{listed: []string{"a", "b"}}
	r := NewMux(svc)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/models", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var body types.ModelsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(body.Models) != 2 {
		t.Fatalf("models=%v", body.Models)
	}
}

func TestModelsHandler_BackendDownIs502(t *testing.T) {
	svc := &mockService{listErr: ollama.ErrBackendUnavailable(errors.New("connection refused"))}
	r := NewMux(svc)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/models", nil))
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestHealthz(t *testing.T) {
	svc := &mockService{}
	r := NewMux(svc)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	svc := &mockService{}
	r := NewMux(svc)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
}
