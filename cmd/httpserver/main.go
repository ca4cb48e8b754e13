package main

import (
	"bulletin/adapters/httpserver"
	"bulletin/config"
	"bulletin/domain/services/memory"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
)

func main() {
	config.Load()

	cfg, err := config.Server()
	if err != nil {
		log.Fatal(err)
	}

	storage := memory.NewStorage()
	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: httpserver.NewServer(storage),
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- errors.Wrap(err, "listen")
		}
	}()

	select {
	case err := <-errCh:
		log.Fatal(err)
	case <-ch:
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(errors.Wrap(err, "shutdown"))
	}
	log.Printf("stopped with %d posts discarded", storage.CountPosts())
}
