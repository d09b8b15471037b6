package httpserver

import (
	"net/http"
	"time"
)

// New builds an HTTP server sized for the deletion workflow. Confirming a
// request anonymizes every dependent record within the handler, so the write
// timeout leaves room for the scrub to finish under load.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
