package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
)

type FitflixHttpServer struct {
	router           *Router
	muxRouter        *mux.Router
	addr             string
	shutdownDeadline time.Duration
}

func NewFitflixHttpServer(router *Router, muxRouter *mux.Router, addr string, shutdownDeadline time.Duration) *FitflixHttpServer {
	return &FitflixHttpServer{
		router:           router,
		muxRouter:        muxRouter,
		addr:             addr,
		shutdownDeadline: shutdownDeadline,
	}
}

// Start serves until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts
// down gracefully.
func (s *FitflixHttpServer) Start(ctx context.Context) error {
	s.router.RegisterRoutes()

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}

	srv := &http.Server{
		Handler:           s.muxRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("[FitflixHttpServer] Starting server on %s", listener.Addr())
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("[FitflixHttpServer] Shutting down the server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownDeadline)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("[FitflixHttpServer] Server exiting")
	return nil
}
