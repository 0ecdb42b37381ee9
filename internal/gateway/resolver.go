package gateway

import (
	"context"

	"github.com/rs/zerolog"

	"modelgw/internal/ollama"
)

// LegacyModelPlaceholder is the sentinel older clients send to mean "use the
// server default". Kept recognized alongside an absent model field.
const LegacyModelPlaceholder = "local-model"

// Resolver turns a requested model identifier into a usable one, pulling the
// model from the backend when it is not installed.
type Resolver struct {
	client       ollama.Client
	defaultModel string
	pulls        *pullGroup
	log          zerolog.Logger
}

// NewResolver builds a Resolver around the given backend client.
func NewResolver(client ollama.Client, defaultModel string, log zerolog.Logger) *Resolver {
	return &Resolver{
		client:       client,
		defaultModel: defaultModel,
		pulls:        newPullGroup(),
		log:          log,
	}
}

// Resolve returns the model identifier to generate with. The returned
// identifier is meaningful even on error: it names the model the failure
// concerns.
//
// Policy: a failed listing call downgrades to the default model for this
// request only, with no pull attempt (the default is likely present, and
// blocking on a broken listing helps nobody). A failed pull propagates:
// that decision belongs to the caller.
func (r *Resolver) Resolve(ctx context.Context, requested string) (string, error) {
	model := requested
	if model == "" || model == LegacyModelPlaceholder {
		model = r.defaultModel
	}

	installed, err := r.client.List(ctx)
	if err != nil {
		r.log.Warn().Err(err).Str("model", model).
			Msg("could not list installed models, using default model")
		return r.defaultModel, nil
	}

	if !contains(installed, model) {
		r.log.Warn().Str("model", model).
			Msg("model not found locally, attempting to pull")
		if err := r.pulls.Do(ctx, model, r.client.Pull); err != nil {
			pullsTotal.WithLabelValues("error").Inc()
			return model, err
		}
		pullsTotal.WithLabelValues("ok").Inc()
	}
	return model, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
