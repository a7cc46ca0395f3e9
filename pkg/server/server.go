package server

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/calyx-ui/calyx/internal/config"
	"github.com/calyx-ui/calyx/pkg/render"
)

// PageFunc produces the page for a request.
type PageFunc func(r *http.Request) render.Page

// Server is the Calyx HTTP server. It renders registered pages with
// hydration IDs stamped, serves static assets, and in development mode runs
// the live-reload endpoint.
type Server struct {
	cfg    *config.Config
	reload *ReloadServer
	logger zerolog.Logger
	pages  map[string]PageFunc

	httpServer *http.Server
}

// New creates a server over the given configuration. A nil configuration
// gets the defaults.
func New(cfg *config.Config) *Server {
	if cfg == nil {
		cfg = config.New()
	}
	return &Server{
		cfg:    cfg,
		reload: NewReloadServer(),
		logger: log.With().Str("component", "server").Logger(),
		pages:  make(map[string]PageFunc),
	}
}

// Page registers a page at the given route pattern.
func (s *Server) Page(pattern string, fn PageFunc) {
	s.pages[pattern] = fn
}

// Reload returns the live-reload server so build tooling can push
// notifications.
func (s *Server) Reload() *ReloadServer {
	return s.reload
}

// Handler builds the HTTP handler: registered pages, static assets, and the
// operational endpoints the configuration enables.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(s.requestLogger)
	if s.cfg.Server.Metrics {
		r.Use(Metrics())
	}
	if s.cfg.Server.Tracing {
		r.Use(Tracing())
	}

	if s.cfg.Server.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}
	if s.cfg.Server.Dev {
		r.Handle(ReloadPath, s.reload)
	}
	if s.cfg.Static.Dir != "" {
		fs := http.StripPrefix(s.cfg.Static.Prefix, http.FileServer(http.Dir(s.cfg.Static.Dir)))
		r.Handle(s.cfg.Static.Prefix+"*", fs)
	}

	for pattern, fn := range s.pages {
		r.Get(pattern, s.pageHandler(pattern, fn))
	}

	return r
}

// pageHandler renders a page per request. Each request gets a fresh
// renderer so hydration IDs start from h1, matching what a hydrating client
// will assign.
func (s *Server) pageHandler(pattern string, fn PageFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := fn(r)

		renderer := render.New(render.Config{Pretty: s.cfg.Build.Pretty})
		var buf bytes.Buffer
		if err := renderer.RenderPage(&buf, page); err != nil {
			RecordRenderError(pattern)
			s.logger.Error().Err(err).Str("page", pattern).Msg("render failed")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		RecordRender()

		body := buf.Bytes()
		if s.cfg.Server.Dev {
			body = injectReloadScript(body)
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(body)
	}
}

// injectReloadScript places the live-reload client just before </body>.
func injectReloadScript(body []byte) []byte {
	idx := bytes.LastIndex(body, []byte("</body>"))
	if idx < 0 {
		return append(body, []byte(ReloadClientScript)...)
	}
	out := make([]byte, 0, len(body)+len(ReloadClientScript))
	out = append(out, body[:idx]...)
	out = append(out, []byte(ReloadClientScript)...)
	out = append(out, body[idx:]...)
	return out
}

// requestLogger logs each request with its status and duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The reload socket stays open for the life of the page; logging it
		// per-request is noise.
		if strings.HasPrefix(r.URL.Path, "/_calyx/") {
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// Run starts the server and blocks until the context is cancelled, then
// shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.cfg.Addr()).Bool("dev", s.cfg.Server.Dev).Msg("listening")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.reload.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}
