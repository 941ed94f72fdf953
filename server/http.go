package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"
)

// HTTP wraps the standard server with an address helper and graceful
// shutdown.
type HTTP struct {
	srv *http.Server
}

func NewHTTP(host string, port int, handler http.Handler) *HTTP {
	addr := net.JoinHostPort(host, fmt.Sprintf("%d", port))
	return &HTTP{srv: &http.Server{Addr: addr, Handler: handler}}
}

func (h *HTTP) Addr() string { return h.srv.Addr }

// ListenAndServe blocks until the server stops.
func (h *HTTP) ListenAndServe() error {
	if err := h.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (h *HTTP) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return h.srv.Shutdown(ctx)
}
