package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"modelgw/internal/config"
	"modelgw/internal/gateway"
	"modelgw/internal/httpapi"
	"modelgw/internal/ollama"
)

func main() {
	addr := flag.String("addr", "", "HTTP listen address, e.g. :8000 (defaults GATEWAY_ADDR or :8000)")
	cfgPath := flag.String("config", "", "Optional config file (.yaml/.json/.toml)")
	defaultModel := flag.String("default-model", "", "Default model id when request omits model (defaults DEFAULT_MODEL)")
	logLevel := flag.String("log-level", "", "Log level: debug|info|warn|error")
	flag.Parse()

	cfg := config.Config{}
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg = cfg.FromEnv()
	// Flags win over both file and environment.
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *defaultModel != "" {
		cfg.DefaultModel = *defaultModel
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	cfg = cfg.ApplyDefaults()

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger()
	httpapi.SetLogger(log)

	client := ollama.NewHTTPClient(cfg.OllamaBaseURL(), log)
	gw := gateway.New(client, cfg.DefaultModel, log)

	baseCtx, cancelBase := context.WithCancel(context.Background())
	httpapi.SetBaseContext(baseCtx)

	srv := &http.Server{Addr: cfg.Addr, Handler: httpapi.NewMux(gw)}

	go func() {
		log.Info().Str("addr", cfg.Addr).Str("ollama", cfg.OllamaBaseURL()).
			Str("default_model", cfg.DefaultModel).Msg("modelgw listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	cancelBase()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown error")
	}
}
