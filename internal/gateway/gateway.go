package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"modelgw/internal/ollama"
)

// Gateway is the single entry point for text generation. Respond never
// fails: every internal error terminates in a fallback message embedded in
// the returned string.
type Gateway struct {
	client   ollama.Client
	resolver *Resolver
	log      zerolog.Logger
}

// New builds a Gateway. The backend client is injected so tests can supply
// a double.
func New(client ollama.Client, defaultModel string, log zerolog.Logger) *Gateway {
	return &Gateway{
		client:   client,
		resolver: NewResolver(client, defaultModel, log),
		log:      log,
	}
}

// Respond resolves model, generates a completion for prompt, and returns the
// text verbatim. On any failure it returns a message of the form
//
//	Error: Unable to generate response using model '<id>'. <detail>
//
// where <id> is the model the failure concerns and <detail> is the backend's
// message. The result is never empty.
func (g *Gateway) Respond(ctx context.Context, model, prompt string) string {
	text, resolved, err := g.respond(ctx, model, prompt)
	if err != nil {
		g.log.Error().Err(err).Str("model", resolved).Msg("error generating response")
		responsesTotal.WithLabelValues("fallback").Inc()
		return fallbackMessage(resolved, err)
	}
	responsesTotal.WithLabelValues("ok").Inc()
	return text
}

// respond is the fail-fast core: it returns typed errors from the ollama
// package, alongside the model identifier the attempt concerned. Keeping
// this split from Respond preserves the failure kind for tests and future
// callers; only the outermost boundary flattens it to text.
func (g *Gateway) respond(ctx context.Context, model, prompt string) (string, string, error) {
	resolved, err := g.resolver.Resolve(ctx, model)
	if err != nil {
		return "", resolved, err
	}
	g.log.Info().Str("model", resolved).Msg("generating response")
	start := time.Now()
	text, err := g.client.Generate(ctx, resolved, prompt)
	if err != nil {
		return "", resolved, err
	}
	generationDuration.Observe(time.Since(start).Seconds())
	return text, resolved, nil
}

// ListInstalled exposes the backend's installed-model list to front ends.
func (g *Gateway) ListInstalled(ctx context.Context) ([]string, error) {
	return g.client.List(ctx)
}

func fallbackMessage(model string, err error) string {
	return fmt.Sprintf("Error: Unable to generate response using model '%s'. %s", model, err)
}
