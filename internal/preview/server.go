// Package preview serves the bundled site locally, reloading connected
// browsers when the served files change. It carries no application routes:
// the contact endpoint belongs to whatever backend the site deploys against.
package preview

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sitewire/sitewire/internal/config"
)

// Server is the dev preview server.
type Server struct {
	cfg        config.PreviewConfig
	hub        *hub
	router     chi.Router
	httpServer *http.Server
	watcher    *watcher
}

// New creates a preview server for the configured directory.
func New(cfg config.PreviewConfig) *Server {
	s := &Server{
		cfg: cfg,
		hub: newHub(),
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAllOrigins {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/livereload", s.handleLivereload)

	// Static files (must be registered after the reserved routes). HTML
	// responses get the livereload client injected.
	fileServer := http.FileServer(http.Dir(s.cfg.Dir))
	r.Handle("/*", injectReload(fileServer))

	return r
}

// Handler returns the assembled router.
func (s *Server) Handler() http.Handler { return s.router }

// Start begins watching the served directory and listening on the
// configured port. It blocks until the listener fails or is shut down.
func (s *Server) Start() error {
	w, err := newWatcher(s.cfg.Dir, func() {
		s.hub.broadcast("reload")
	})
	if err != nil {
		return fmt.Errorf("preview: watching %s: %w", s.cfg.Dir, err)
	}
	s.watcher = w

	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	if s.cfg.Open {
		go openBrowser(fmt.Sprintf("http://localhost:%d", s.cfg.Port))
	}

	log.Printf("preview: serving %s on %s", s.cfg.Dir, addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the watcher, disconnects clients, and drains the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.watcher != nil {
		s.watcher.close()
	}
	s.hub.closeAll()
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// openBrowser launches the system browser for the given URL.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		log.Printf("preview: open browser: %v", err)
	}
}
