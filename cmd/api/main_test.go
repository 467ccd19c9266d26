package main

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/99minutos/user-roles-api/pkg/logger"
)

func TestShutdown_StopsServerAndCancelsContext(t *testing.T) {
	logger.Reset()
	t.Cleanup(logger.Reset)
	logger.Init(logger.Options{Output: io.Discard})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	server := &http.Server{
		Handler:           http.NotFoundHandler(),
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
	served := make(chan error, 1)
	go func() { served <- server.Serve(ln) }()

	ctx, cancel := context.WithCancel(context.Background())
	shutdown(cancel, server, time.Second)

	select {
	case err := <-served:
		if !errors.Is(err, http.ErrServerClosed) {
			t.Fatalf("expected ErrServerClosed, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
	if ctx.Err() == nil {
		t.Fatal("expected context to be cancelled")
	}
}
