// Command api runs the demo payment front end: it initiates signed eSewa
// payments and validates the callback the gateway redirects back with.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"esewa-payment/esewa"
	"esewa-payment/internal/config"
	"esewa-payment/internal/web"
)

func main() {
	cfg, err := config.Load(os.Getenv("ESEWA_CONFIG"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	red := cfg.Redacted()
	log.Printf("CONFIG: listen_addr=%s environment=%s product_code=%s secret_key=%s",
		red.ListenAddr, red.Environment, red.ProductCode, red.SecretKey)

	client := esewa.NewClientWithTransport(cfg.Env(), &http.Client{Timeout: cfg.RequestTimeout})
	server := web.NewServer(cfg, client)

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: server.Handler(),
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	log.Printf("server started on %s (gateway: %s)", cfg.ListenAddr, cfg.Env().FormURL())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Fatal("server forced to shutdown:", err)
	}

	log.Println("server exited")
}
