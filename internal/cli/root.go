// Package cli implements the `ask` command line front end: a one-shot query
// against the generation gateway, printing either raw text or a JSON
// envelope for scripting.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"modelgw/internal/config"
	"modelgw/internal/gateway"
	"modelgw/internal/ollama"
	"modelgw/pkg/types"
)

// Responder is the part of the gateway the CLI needs.
type Responder interface {
	Respond(ctx context.Context, model, prompt string) string
}

// Options customizes command construction, mainly for tests.
type Options struct {
	// Out receives the answer. Defaults to os.Stdout.
	Out io.Writer
	// NewResponder builds the gateway. Defaults to a real gateway over the
	// configured backend.
	NewResponder func(cfg config.Config, log zerolog.Logger) Responder
}

// NewRootCmd builds the ask command.
func NewRootCmd(opts Options) *cobra.Command {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.NewResponder == nil {
		opts.NewResponder = func(cfg config.Config, log zerolog.Logger) Responder {
			client := ollama.NewHTTPClient(cfg.OllamaBaseURL(), log)
			return gateway.New(client, cfg.DefaultModel, log)
		}
	}

	var (
		model    string
		asJSON   bool
		cfgPath  string
		logLevel string
	)

	root := &cobra.Command{
		Use:           "ask <prompt>",
		Short:         "Query the running Ollama LLM",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Config{}
			if cfgPath != "" {
				var err error
				if cfg, err = config.Load(cfgPath); err != nil {
					return err
				}
			}
			cfg = cfg.FromEnv().ApplyDefaults()
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}

			log := NewLogger(cfg.LogLevel)
			answer := opts.NewResponder(cfg, log).Respond(cmd.Context(), model, args[0])

			if asJSON {
				return json.NewEncoder(opts.Out).Encode(types.GenerateResponse{Response: answer})
			}
			_, err := fmt.Fprintln(opts.Out, answer)
			return err
		},
	}

	root.Flags().StringVar(&model, "model", gateway.LegacyModelPlaceholder,
		"Model identifier (the placeholder resolves to the server default)")
	root.Flags().BoolVar(&asJSON, "json", false,
		"Output response as JSON for scripting purposes")
	root.Flags().StringVar(&cfgPath, "config", "",
		"Optional config file (.yaml/.json/.toml)")
	root.Flags().StringVar(&logLevel, "log-level", "",
		"Log level: debug|info|warn|error")

	return root
}

// NewLogger builds the colorized stderr logger used by both binaries.
func NewLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger()
}
