package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	j "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	jp "github.com/reoring/jsonparser"
	"github.com/reoring/jsonparser/examples/formula"
	"github.com/reoring/jsonparser/internal/config"
	"github.com/reoring/jsonparser/middleware"
)

func newServeCmd(cfg *config.Config, log *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the built-in schemas over HTTP",
		Long: `Serve POST /v1/check/{schema} for every built-in schema.

A body that parses is answered with 200 and a summary of the value. A body
that does not fit the schema is answered with 422 and the list of errors.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := &http.Server{
				Addr:         ":" + cfg.Port,
				Handler:      newRouter(cfg.ParseOpt(), log),
				ReadTimeout:  30 * time.Second,
				WriteTimeout: 30 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Info("starting jsonparser", "port", cfg.Port)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-cmd.Context().Done():
			}

			log.Info("shutting down...")
			ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	}

	cmd.Flags().StringVar(&cfg.Port, "port", cfg.Port, "listen port")

	return cmd
}

func newRouter(opt jp.ParseOpt, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(chimw.RequestID)
	r.Use(requestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/v1/check", func(r chi.Router) {
		r.With(middleware.Parse(formula.Parse, log, opt)).Post("/formula", summarize(formula.Formula.String))
		r.With(middleware.Parse(formula.ParseRecord, log, opt)).Post("/record", summarize(showRecord))
		r.With(middleware.Parse(formula.ParseSheet, log, opt)).Post("/sheet", summarize(showSheet))
	})

	return r
}

// summarize answers with the value stored by middleware.Parse.
func summarize[T any](show func(T) string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, ok := middleware.ValueFromContext[T](r.Context())
		if !ok {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "no parsed value"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "value": show(v)})
	}
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"request_id", chimw.GetReqID(r.Context()),
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	j.NewEncoder(w).Encode(body)
}
