// Package http exposes the state containers over a local JSON API
// consumed by the web dashboard.
package http

import (
	"net/http"
	"time"

	applog "fincouples/internal/log"
	"fincouples/internal/state"
)

type Server struct {
	http.Server
	contas     *state.Contas
	categorias *state.Categorias
	logger     *applog.Logger
}

func NewServer(addr string, contas *state.Contas, categorias *state.Categorias, logger *applog.Logger) *Server {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}

	s := &Server{
		contas:     contas,
		categorias: categorias,
		logger:     logger.WithComponent(applog.ComponentHTTP),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleReady)
	mux.HandleFunc("/api/contas", s.withSecurityHeaders(s.handleContas))
	mux.HandleFunc("/api/contas/", s.withSecurityHeaders(s.handleContaByID))
	mux.HandleFunc("/api/contas/saldo", s.withSecurityHeaders(s.handleSaldoGeral))
	mux.HandleFunc("/api/categorias", s.withSecurityHeaders(s.handleCategorias))
	mux.HandleFunc("/api/categorias/", s.withSecurityHeaders(s.handleCategoriaByID))

	handler := applog.Middleware(logger)(
		applog.RequestIDMiddleware(requestID)(
			s.withRequestLogging(mux)))

	s.Server = http.Server{
		Addr:           addr,
		Handler:        handler,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16, // 64KB
	}

	return s
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// statusRecorder captures the response code for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) withRequestLogging(next http.Handler) http.Handler {
	sl := applog.NewStructuredLogger(s.logger)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ip := clientIP(r)
		sl.LogHTTPStart(r.Context(), r, ip)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		sl.LogHTTPEnd(r.Context(), r, rec.status, time.Since(start).Milliseconds(), ip)
	})
}

func (s *Server) withSecurityHeaders(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Cache-Control", "no-store")
		next(w, r)
	}
}
